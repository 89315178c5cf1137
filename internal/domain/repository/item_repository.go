package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
// List devuelve los ítems en orden de inserción (orden canónico del almacén).
// GetByID y GetByCode devuelven (nil, nil) si el ítem no existe.
type ItemRepository interface {
	List() ([]*entity.Item, error)
	GetByID(id string) (*entity.Item, error)
	GetByCode(code string) (*entity.Item, error)
	Upsert(item *entity.Item) error
	Delete(id string) error
}
