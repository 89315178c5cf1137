package kvstore

import (
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre el Store.
// Con inTx el repo asume que el runner ya sostiene el lock.
type CategoryRepo struct {
	s    *Store
	inTx bool
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(s *Store) *CategoryRepo {
	return &CategoryRepo{s: s}
}

func (r *CategoryRepo) begin() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

// List devuelve las categorías en orden de inserción.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	defer r.begin()()
	return r.s.readCategories(), nil
}

// GetByID devuelve la categoría o (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	defer r.begin()()
	for _, c := range r.s.readCategories() {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

// GetByName devuelve la categoría con ese nombre o (nil, nil) si no existe.
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	defer r.begin()()
	for _, c := range r.s.readCategories() {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

// Upsert reemplaza la categoría con el mismo ID o la agrega al final.
func (r *CategoryRepo) Upsert(category *entity.Category) error {
	defer r.begin()()
	categories := r.s.readCategories()
	for i, c := range categories {
		if c.ID == category.ID {
			categories[i] = category
			return r.s.writeCategories(categories)
		}
	}
	return r.s.writeCategories(append(categories, category))
}

// Delete elimina la categoría por ID. ErrNotFound si no existe.
func (r *CategoryRepo) Delete(id string) error {
	defer r.begin()()
	categories := r.s.readCategories()
	for i, c := range categories {
		if c.ID == id {
			return r.s.writeCategories(append(categories[:i], categories[i+1:]...))
		}
	}
	return domain.ErrNotFound
}
