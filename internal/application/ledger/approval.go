package ledger

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// ApprovalUseCase finaliza movimientos pendientes del libro mayor.
// Máquina de estados: PENDING → {APPROVED, REJECTED}, terminal. La transición
// ocurre exactamente una vez; un segundo intento sobre la misma transacción
// falla con ErrInvalidState sin tocar nada.
type ApprovalUseCase struct {
	txRunner TxRunner
	notifier Notifier
}

// NewApprovalUseCase construye el motor de aprobación. notifier puede ser nil.
func NewApprovalUseCase(txRunner TxRunner, notifier Notifier) *ApprovalUseCase {
	return &ApprovalUseCase{txRunner: txRunner, notifier: notifier}
}

// Approve aplica el delta de stock del movimiento y marca la transacción como
// APPROVED, como una sola unidad atómica bajo el TxRunner. IN suma qty; OUT
// resta qty con piso en cero (el déficit se recorta en silencio; ver
// DESIGN.md). Devuelve el ítem con su stock resultante.
//
// Si el stock resultante queda en o por debajo del mínimo se emite el evento
// de stock bajo, fuera de la sección crítica.
func (uc *ApprovalUseCase) Approve(ctx context.Context, transactionID string) (*dto.ItemResponse, error) {
	var updated *entity.Item
	err := uc.txRunner.Run(ctx, func(txRepo repository.TransactionRepository, itemRepo repository.ItemRepository) error {
		tx, err := txRepo.GetByID(transactionID)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.ErrNotFound
		}
		// revalidar PENDING bajo el lock: el chequeo optimista se fija una vez
		// y se actúa una vez
		if !tx.IsPending() {
			return domain.ErrInvalidState
		}
		item, err := itemRepo.GetByID(tx.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		switch tx.Kind {
		case entity.MovementIN:
			item.Stock += tx.Qty
		case entity.MovementOUT:
			item.Stock -= tx.Qty
			if item.Stock < 0 {
				item.Stock = 0
			}
		default:
			return domain.ErrInvalidInput
		}
		item.UpdatedAt = time.Now()
		tx.Status = entity.StatusApproved

		if err := itemRepo.Upsert(item); err != nil {
			return err
		}
		if err := txRepo.Update(tx); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated.IsLowStock() && uc.notifier != nil {
		uc.notifier.LowStock(updated)
	}
	return dto.ToItemResponse(updated), nil
}

// Reject marca la transacción como REJECTED sin efecto alguno sobre el stock.
// Mismas condiciones de error que Approve.
func (uc *ApprovalUseCase) Reject(ctx context.Context, transactionID string) (*dto.TransactionResponse, error) {
	var rejected *dto.TransactionResponse
	err := uc.txRunner.Run(ctx, func(txRepo repository.TransactionRepository, itemRepo repository.ItemRepository) error {
		tx, err := txRepo.GetByID(transactionID)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.ErrNotFound
		}
		if !tx.IsPending() {
			return domain.ErrInvalidState
		}
		tx.Status = entity.StatusRejected
		if err := txRepo.Update(tx); err != nil {
			return err
		}
		item, err := itemRepo.GetByID(tx.ItemID)
		if err != nil {
			return err
		}
		rejected = dto.ToTransactionResponse(tx, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rejected, nil
}
