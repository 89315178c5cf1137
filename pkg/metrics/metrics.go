// Package metrics colectores Prometheus de la aplicación, expuestos en
// /metrics. Los contadores son de observabilidad: el estado de negocio
// (stock, pendientes) siempre se deriva del almacén, nunca de aquí.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MovementsRequested movimientos registrados en el libro, por tipo.
	MovementsRequested = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "almacen_movements_requested_total",
		Help: "Movimientos de stock solicitados, por tipo (IN/OUT).",
	}, []string{"kind"})

	// MovementsDecided decisiones del motor de aprobación, por resultado.
	MovementsDecided = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "almacen_movements_decided_total",
		Help: "Movimientos decididos por el motor de aprobación, por resultado (approved/rejected).",
	}, []string{"outcome"})

	// LowStockEvents eventos de stock bajo emitidos por el motor de aprobación.
	LowStockEvents = promauto.NewCounter(prometheus.CounterOpts{
		Name: "almacen_low_stock_events_total",
		Help: "Notificaciones de stock bajo emitidas al aprobar movimientos.",
	})

	// LowStockItems ítems actualmente en o por debajo de su mínimo
	// (se fija con el recálculo del reporte, no se incrementa).
	LowStockItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "almacen_low_stock_items",
		Help: "Ítems con stock en o por debajo del mínimo configurado.",
	})
)
