package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para ítems. El stock no se edita desde aquí:
// solo lo muta el motor de aprobación al finalizar un movimiento. Las
// escrituras corren bajo el TxRunner para que el chequeo de unicidad del
// código y el guard de borrado actúen sobre el mismo estado que escriben.
type ItemUseCase struct {
	items    repository.ItemRepository
	txRunner TxRunner
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(items repository.ItemRepository, txRunner TxRunner) *ItemUseCase {
	return &ItemUseCase{items: items, txRunner: txRunner}
}

// List lista los ítems, filtrados por búsqueda sobre nombre y código
// (insensible a mayúsculas) si search no está vacío.
func (uc *ItemUseCase) List(search string) ([]dto.ItemResponse, error) {
	items, err := uc.items.List()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(search))
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		if q != "" &&
			!strings.Contains(strings.ToLower(it.Name), q) &&
			!strings.Contains(strings.ToLower(it.Code), q) {
			continue
		}
		out = append(out, *dto.ToItemResponse(it))
	}
	return out, nil
}

// GetByID obtiene un ítem por ID, o (nil, nil) si no existe.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.items.GetByID(id)
	if err != nil {
		return nil, err
	}
	return dto.ToItemResponse(item), nil
}

// Upsert crea (ID vacío) o edita un ítem a partir del patch. El patch se
// valida como una unidad antes de aplicar nada: código único entre IDs
// distintos, tipo conocido, mínimo no negativo y categoría existente. En
// ediciones el stock actual se arrastra intacto. Todo corre en la misma
// sección crítica, así que dos patches concurrentes con el mismo código
// jamás pasan ambos el chequeo de unicidad.
func (uc *ItemUseCase) Upsert(ctx context.Context, in dto.ItemPatch) (*dto.ItemResponse, error) {
	var out *dto.ItemResponse
	err := uc.txRunner.Run(ctx, func(
		items repository.ItemRepository,
		categories repository.CategoryRepository,
		_ repository.UserRepository,
		_ repository.TransactionRepository,
	) error {
		now := time.Now()
		var item *entity.Item
		if in.ID == "" {
			if in.Code == nil || in.Name == nil || in.Category == nil || in.Type == nil {
				return domain.ErrInvalidInput
			}
			item = &entity.Item{ID: uuid.New().String(), CreatedAt: now}
		} else {
			existing, err := items.GetByID(in.ID)
			if err != nil {
				return err
			}
			if existing == nil {
				return domain.ErrNotFound
			}
			item = existing // stock se conserva tal cual
		}

		if in.Code != nil {
			code := strings.TrimSpace(*in.Code)
			if code == "" {
				return domain.ErrInvalidInput
			}
			other, err := items.GetByCode(code)
			if err != nil {
				return err
			}
			if other != nil && other.ID != item.ID {
				return domain.ErrDuplicate
			}
			item.Code = code
		}
		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return domain.ErrInvalidInput
			}
			item.Name = name
		}
		if in.Type != nil {
			if !entity.ValidItemType(*in.Type) {
				return domain.ErrInvalidInput
			}
			item.Type = *in.Type
		}
		if in.Min != nil {
			if *in.Min < 0 {
				return domain.ErrInvalidInput
			}
			item.Min = *in.Min
		}
		if in.Category != nil {
			cat, err := categories.GetByName(*in.Category)
			if err != nil {
				return err
			}
			if cat == nil {
				return domain.ErrInvalidInput
			}
			item.Category = cat.Name
		}
		if in.Barcode != nil {
			item.Barcode = strings.TrimSpace(*in.Barcode)
		}
		item.UpdatedAt = now

		if err := items.Upsert(item); err != nil {
			return err
		}
		out = dto.ToItemResponse(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un ítem. Falla con ErrConflict si alguna transacción del
// libro mayor lo referencia, sin importar su estado: el libro es la pista de
// auditoría y no admite referencias huérfanas. El chequeo y el borrado corren
// en la misma sección crítica que las solicitudes de movimiento.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		items repository.ItemRepository,
		_ repository.CategoryRepository,
		_ repository.UserRepository,
		txs repository.TransactionRepository,
	) error {
		item, err := items.GetByID(id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		referenced, err := txs.ExistsByItem(id)
		if err != nil {
			return err
		}
		if referenced {
			return domain.ErrConflict
		}
		return items.Delete(id)
	})
}
