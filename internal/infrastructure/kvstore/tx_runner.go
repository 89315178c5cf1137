package kvstore

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// TxRunner ejecuta una función bajo el lock global del Store, pasando
// repositorios atados a esa sección crítica. Garantiza que la relectura del
// estado PENDING y la escritura de (status, stock) del motor de aprobación
// sean una sola unidad sin estado intermedio observable.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el Store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run toma el lock, construye los repos atados y ejecuta fn.
func (t *TxRunner) Run(ctx context.Context, fn func(txRepo repository.TransactionRepository, itemRepo repository.ItemRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return fn(&TransactionRepo{s: t.s, inTx: true}, &ItemRepo{s: t.s, inTx: true})
}

// MasterTxRunner ejecuta las secuencias verificar-escribir de los maestros
// (ítems, categorías, usuarios) bajo el mismo lock global que el motor de
// aprobación. Los chequeos de unicidad y los guards de borrado se fijan y
// actúan como una sola unidad: dos escritores concurrentes nunca pasan el
// mismo chequeo.
type MasterTxRunner struct {
	s *Store
}

// NewMasterTxRunner construye el runner de maestros sobre el Store.
func NewMasterTxRunner(s *Store) *MasterTxRunner {
	return &MasterTxRunner{s: s}
}

// Run toma el lock, construye los repos atados y ejecuta fn.
func (t *MasterTxRunner) Run(ctx context.Context, fn func(
	items repository.ItemRepository,
	categories repository.CategoryRepository,
	users repository.UserRepository,
	txs repository.TransactionRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return fn(
		&ItemRepo{s: t.s, inTx: true},
		&CategoryRepo{s: t.s, inTx: true},
		&UserRepo{s: t.s, inTx: true},
		&TransactionRepo{s: t.s, inTx: true},
	)
}
