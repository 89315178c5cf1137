// Package notify adaptador de notificaciones de stock bajo: log estructurado
// más contador Prometheus. El núcleo solo conoce el puerto ledger.Notifier.
package notify

import (
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/pkg/logger"
	"github.com/tu-usuario/almacen-pro/pkg/metrics"
)

// LowStockNotifier implementación de ledger.Notifier.
type LowStockNotifier struct {
	log *logger.Logger
}

// New construye el notificador.
func New(log *logger.Logger) *LowStockNotifier {
	return &LowStockNotifier{log: log}
}

// LowStock registra el evento y lo cuenta.
func (n *LowStockNotifier) LowStock(item *entity.Item) {
	metrics.LowStockEvents.Inc()
	n.log.Warn().
		Str("code", item.Code).
		Str("name", item.Name).
		Int("stock", item.Stock).
		Int("min", item.Min).
		Msg("stock en o por debajo del mínimo")
}
