package kvstore

import (
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre el Store
// clave-valor. Con inTx el repo asume que el TxRunner ya sostiene el lock.
type ItemRepo struct {
	s    *Store
	inTx bool
}

// NewItemRepository construye el adaptador de persistencia para ítems.
func NewItemRepository(s *Store) *ItemRepo {
	return &ItemRepo{s: s}
}

func (r *ItemRepo) begin() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

// List devuelve los ítems en orden de inserción.
func (r *ItemRepo) List() ([]*entity.Item, error) {
	defer r.begin()()
	return r.s.readItems(), nil
}

// GetByID devuelve el ítem o (nil, nil) si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	defer r.begin()()
	for _, it := range r.s.readItems() {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

// GetByCode devuelve el ítem con ese código o (nil, nil) si no existe.
func (r *ItemRepo) GetByCode(code string) (*entity.Item, error) {
	defer r.begin()()
	for _, it := range r.s.readItems() {
		if it.Code == code {
			return it, nil
		}
	}
	return nil, nil
}

// Upsert reemplaza el ítem con el mismo ID o lo agrega al final.
func (r *ItemRepo) Upsert(item *entity.Item) error {
	defer r.begin()()
	items := r.s.readItems()
	for i, it := range items {
		if it.ID == item.ID {
			items[i] = item
			return r.s.writeItems(items)
		}
	}
	return r.s.writeItems(append(items, item))
}

// Delete elimina el ítem por ID. ErrNotFound si no existe.
func (r *ItemRepo) Delete(id string) error {
	defer r.begin()()
	items := r.s.readItems()
	for i, it := range items {
		if it.ID == id {
			return r.s.writeItems(append(items[:i], items[i+1:]...))
		}
	}
	return domain.ErrNotFound
}
