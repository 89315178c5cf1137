// Package ledger contiene el núcleo del sistema: el libro mayor de
// movimientos de stock y el motor de aprobación que los finaliza.
package ledger

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// MovementUseCase registra solicitudes de movimiento en el libro mayor y
// sirve las vistas de pendientes e historial. Registrar un movimiento no
// tiene efecto sobre el stock: el movimiento es provisional hasta que el
// motor de aprobación lo decide.
type MovementUseCase struct {
	items    repository.ItemRepository
	txs      repository.TransactionRepository
	txRunner TxRunner
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(items repository.ItemRepository, txs repository.TransactionRepository, txRunner TxRunner) *MovementUseCase {
	return &MovementUseCase{items: items, txs: txs, txRunner: txRunner}
}

// RequestMovement valida y agrega una solicitud PENDING al libro mayor.
//
// Precondiciones: el ítem existe, qty > 0 y, para OUT, qty no supera el stock
// actual (chequeo al momento de la solicitud; la aprobación revalida bajo
// lock). Cualquier violación retorna un error de validación y no crea
// registro alguno. La verificación del ítem y el append corren en la misma
// sección crítica que el borrado de ítems, así que el libro nunca gana una
// referencia a un ítem recién eliminado.
func (uc *MovementUseCase) RequestMovement(ctx context.Context, in dto.RequestMovementRequest, requestedBy string) (*dto.TransactionResponse, error) {
	if !entity.ValidMovementKind(in.Kind) {
		return nil, domain.ErrInvalidInput
	}
	if in.Qty <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	date := now
	if in.Date != "" {
		parsed, err := time.Parse(dateLayout, in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}

	var out *dto.TransactionResponse
	err := uc.txRunner.Run(ctx, func(txRepo repository.TransactionRepository, itemRepo repository.ItemRepository) error {
		item, err := itemRepo.GetByID(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrInvalidInput // referencia de ítem ausente
		}
		if in.Kind == entity.MovementOUT && in.Qty > item.Stock {
			return domain.ErrInsufficientStock
		}

		tx := &entity.Transaction{
			ID:          uuid.New().String(),
			Date:        date,
			Kind:        in.Kind,
			ItemID:      item.ID,
			Qty:         in.Qty,
			Batch:       strings.TrimSpace(in.Batch),
			Info:        strings.TrimSpace(in.Info),
			RequestedBy: requestedBy,
			Status:      entity.StatusPending,
			CreatedAt:   now,
		}
		if err := txRepo.Append(tx); err != nil {
			return err
		}
		out = dto.ToTransactionResponse(tx, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListPending devuelve las transacciones PENDING en orden de inserción,
// para la superficie de verificación del revisor.
func (uc *MovementUseCase) ListPending() ([]dto.TransactionResponse, error) {
	txs, err := uc.txs.List()
	if err != nil {
		return nil, err
	}
	byID, err := uc.itemsByID()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0)
	for _, t := range txs {
		if t.IsPending() {
			out = append(out, *dto.ToTransactionResponse(t, byID[t.ItemID]))
		}
	}
	return out, nil
}

// ListAll devuelve el historial completo, filtrado por tipo de movimiento si
// kind es IN u OUT, y por búsqueda de texto (insensible a mayúsculas, sobre
// nombre y código del ítem, lote y solicitante). Orden: fecha descendente,
// estable en empates (orden de inserción).
func (uc *MovementUseCase) ListAll(kind, search string) ([]dto.TransactionResponse, error) {
	txs, err := uc.txs.List()
	if err != nil {
		return nil, err
	}
	byID, err := uc.itemsByID()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(search))
	out := make([]dto.TransactionResponse, 0)
	for _, t := range txs {
		if entity.ValidMovementKind(kind) && t.Kind != kind {
			continue
		}
		r := dto.ToTransactionResponse(t, byID[t.ItemID])
		if q != "" {
			haystack := strings.ToLower(r.ItemName + " " + r.ItemCode + " " + r.Batch + " " + r.RequestedBy)
			if !strings.Contains(haystack, q) {
				continue
			}
		}
		out = append(out, *r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (uc *MovementUseCase) itemsByID() (map[string]*entity.Item, error) {
	items, err := uc.items.List()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return byID, nil
}
