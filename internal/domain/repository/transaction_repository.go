package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// TransactionRepository define el puerto de persistencia para el libro mayor
// de movimientos. El libro es append-only: no hay Delete, solo Append y
// Update (este último reservado al motor de aprobación para la transición de
// estado).
type TransactionRepository interface {
	List() ([]*entity.Transaction, error)
	GetByID(id string) (*entity.Transaction, error)
	Append(tx *entity.Transaction) error
	Update(tx *entity.Transaction) error
	// ExistsByItem indica si algún registro del libro, en cualquier estado,
	// referencia al ítem. Bloquea la eliminación del ítem (el libro es la
	// pista de auditoría).
	ExistsByItem(itemID string) (bool, error)
}
