package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	List() ([]*entity.Category, error)
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Upsert(category *entity.Category) error
	Delete(id string) error
}
