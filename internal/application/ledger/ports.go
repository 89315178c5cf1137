package ledger

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de la sección crítica del almacén de
// datos, pasando repositorios atados a ella. Garantiza atomicidad para el
// motor de aprobación: la relectura del estado PENDING y la escritura de
// (status de transacción, stock del ítem) forman una sola unidad sin estado
// intermedio observable.
type TxRunner interface {
	Run(ctx context.Context, fn func(txRepo repository.TransactionRepository, itemRepo repository.ItemRepository) error) error
}

// Notifier recibe el evento de stock bajo que emite el motor de aprobación
// cuando el stock resultante queda en o por debajo del mínimo del ítem.
type Notifier interface {
	LowStock(item *entity.Item)
}
