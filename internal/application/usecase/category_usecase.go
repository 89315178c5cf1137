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

// CategoryUseCase casos de uso CRUD para categorías. Las escrituras corren
// bajo el TxRunner: unicidad del nombre, cascada de renombre y guard de
// borrado actúan sobre el mismo estado que escriben.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	txRunner   TxRunner
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, txRunner TxRunner) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, txRunner: txRunner}
}

// List lista las categorías en orden de inserción.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	categories, err := uc.categories.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, *dto.ToCategoryResponse(c))
	}
	return out, nil
}

// Upsert crea (ID vacío) o renombra una categoría. El nombre es único:
// colisión con otro ID falla con ErrDuplicate. Al renombrar, los ítems que
// referencian el nombre anterior se actualizan en la misma unidad, para que
// ninguna referencia quede colgando.
func (uc *CategoryUseCase) Upsert(ctx context.Context, in dto.CategoryPatch) (*dto.CategoryResponse, error) {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	name := strings.TrimSpace(*in.Name)

	var out *dto.CategoryResponse
	err := uc.txRunner.Run(ctx, func(
		items repository.ItemRepository,
		categories repository.CategoryRepository,
		_ repository.UserRepository,
		_ repository.TransactionRepository,
	) error {
		now := time.Now()
		var category *entity.Category
		if in.ID == "" {
			category = &entity.Category{ID: uuid.New().String(), CreatedAt: now}
		} else {
			existing, err := categories.GetByID(in.ID)
			if err != nil {
				return err
			}
			if existing == nil {
				return domain.ErrNotFound
			}
			category = existing
		}

		other, err := categories.GetByName(name)
		if err != nil {
			return err
		}
		if other != nil && other.ID != category.ID {
			return domain.ErrDuplicate
		}

		oldName := category.Name
		category.Name = name
		category.UpdatedAt = now
		if err := categories.Upsert(category); err != nil {
			return err
		}

		if oldName != "" && oldName != name {
			if err := renameItemCategory(items, oldName, name, now); err != nil {
				return err
			}
		}
		out = dto.ToCategoryResponse(category)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// renameItemCategory propaga el renombre de una categoría a los ítems que la
// referencian por nombre.
func renameItemCategory(items repository.ItemRepository, oldName, newName string, now time.Time) error {
	all, err := items.List()
	if err != nil {
		return err
	}
	for _, it := range all {
		if it.Category != oldName {
			continue
		}
		it.Category = newName
		it.UpdatedAt = now
		if err := items.Upsert(it); err != nil {
			return err
		}
	}
	return nil
}

// Delete elimina una categoría. Falla con ErrConflict si algún ítem la
// referencia por nombre.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		items repository.ItemRepository,
		categories repository.CategoryRepository,
		_ repository.UserRepository,
		_ repository.TransactionRepository,
	) error {
		category, err := categories.GetByID(id)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}
		all, err := items.List()
		if err != nil {
			return err
		}
		for _, it := range all {
			if it.Category == category.Name {
				return domain.ErrConflict
			}
		}
		return categories.Delete(id)
	})
}
