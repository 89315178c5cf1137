package dto

import "time"

// DashboardSummary totales derivados del inventario. Todo se recalcula en
// cada consulta; nada es un contador incremental.
type DashboardSummary struct {
	TotalItems        int `json:"total_items"`
	RawMaterialStock  int `json:"raw_material_stock"`
	FinishedGoodStock int `json:"finished_good_stock"`
	LowStockCount     int `json:"low_stock_count"`
	PendingMovements  int `json:"pending_movements"`
}

// Estados de disponibilidad para la vista de producción.
const (
	AvailabilitySafe     = "SAFE"
	AvailabilityLow      = "LOW"
	AvailabilityCritical = "CRITICAL"
)

// ProductionRow fila de la vista de disponibilidad de materia prima.
type ProductionRow struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Stock  int    `json:"stock"`
	Min    int    `json:"min"`
	Status string `json:"status"` // SAFE, LOW, CRITICAL
}

// ExportDocument documento de exportación JSON del inventario completo.
type ExportDocument struct {
	Items        []ItemResponse        `json:"items"`
	Transactions []TransactionResponse `json:"transactions"`
	ExportedAt   time.Time             `json:"exportedAt"`
}
