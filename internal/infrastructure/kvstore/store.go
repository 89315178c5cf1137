package kvstore

import (
	"sync"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// Store envuelve un Driver con un lock global. Toda secuencia
// leer-modificar-escribir de los repositorios corre bajo este lock, y el
// TxRunner lo sostiene durante la unidad atómica (estado de transacción +
// stock del ítem) del motor de aprobación.
type Store struct {
	mu  sync.Mutex
	drv Driver
}

// NewStore construye el Store sobre el driver dado.
func NewStore(drv Driver) *Store {
	return &Store{drv: drv}
}

// Close cierra el driver subyacente.
func (s *Store) Close() error {
	return s.drv.Close()
}

// ── lecturas/escrituras crudas por colección (sin lock; lo toma el repo) ──────

func (s *Store) readItems() []*entity.Item {
	var items []*entity.Item
	s.drv.Load(KeyItems, &items)
	return items
}

func (s *Store) writeItems(items []*entity.Item) error {
	return s.drv.Save(KeyItems, items)
}

func (s *Store) readCategories() []*entity.Category {
	var categories []*entity.Category
	s.drv.Load(KeyCategories, &categories)
	return categories
}

func (s *Store) writeCategories(categories []*entity.Category) error {
	return s.drv.Save(KeyCategories, categories)
}

func (s *Store) readUsers() []*entity.User {
	var users []*entity.User
	s.drv.Load(KeyUsers, &users)
	return users
}

func (s *Store) writeUsers(users []*entity.User) error {
	return s.drv.Save(KeyUsers, users)
}

func (s *Store) readTransactions() []*entity.Transaction {
	var txs []*entity.Transaction
	s.drv.Load(KeyTransactions, &txs)
	return txs
}

func (s *Store) writeTransactions(txs []*entity.Transaction) error {
	return s.drv.Save(KeyTransactions, txs)
}
