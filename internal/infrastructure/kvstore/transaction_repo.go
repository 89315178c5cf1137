package kvstore

import (
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre el
// Store. El libro es append-only: Update solo reemplaza registros existentes
// (transición de estado), nunca los elimina.
type TransactionRepo struct {
	s    *Store
	inTx bool
}

// NewTransactionRepository construye el adaptador de persistencia para el libro mayor.
func NewTransactionRepository(s *Store) *TransactionRepo {
	return &TransactionRepo{s: s}
}

func (r *TransactionRepo) begin() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

// List devuelve las transacciones en orden de inserción.
func (r *TransactionRepo) List() ([]*entity.Transaction, error) {
	defer r.begin()()
	return r.s.readTransactions(), nil
}

// GetByID devuelve la transacción o (nil, nil) si no existe.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	defer r.begin()()
	for _, t := range r.s.readTransactions() {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

// Append agrega la transacción al final del libro.
func (r *TransactionRepo) Append(tx *entity.Transaction) error {
	defer r.begin()()
	txs := r.s.readTransactions()
	return r.s.writeTransactions(append(txs, tx))
}

// Update reemplaza la transacción con el mismo ID. ErrNotFound si no existe.
func (r *TransactionRepo) Update(tx *entity.Transaction) error {
	defer r.begin()()
	txs := r.s.readTransactions()
	for i, t := range txs {
		if t.ID == tx.ID {
			txs[i] = tx
			return r.s.writeTransactions(txs)
		}
	}
	return domain.ErrNotFound
}

// ExistsByItem indica si algún registro del libro referencia al ítem,
// sin importar su estado.
func (r *TransactionRepo) ExistsByItem(itemID string) (bool, error) {
	defer r.begin()()
	for _, t := range r.s.readTransactions() {
		if t.ItemID == itemID {
			return true, nil
		}
	}
	return false, nil
}
