// Package report contiene las vistas derivadas de solo lectura: contador de
// stock bajo, dashboard, disponibilidad de producción y exportaciones.
// Ninguna muta estado y todas se recalculan en cada consulta.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// UseCase consultas derivadas sobre ítems y libro mayor.
type UseCase struct {
	items repository.ItemRepository
	txs   repository.TransactionRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(items repository.ItemRepository, txs repository.TransactionRepository) *UseCase {
	return &UseCase{items: items, txs: txs}
}

// LowStockItems devuelve los ítems con stock en o por debajo de su mínimo.
// Es el filtro vivo stock ≤ min: el contador mostrado es siempre la longitud
// de esta secuencia recién calculada, nunca un contador incrementado aparte.
func (uc *UseCase) LowStockItems() ([]dto.ItemResponse, error) {
	items, err := uc.items.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0)
	for _, it := range items {
		if it.IsLowStock() {
			out = append(out, *dto.ToItemResponse(it))
		}
	}
	return out, nil
}

// Dashboard totales del inventario para la vista principal.
func (uc *UseCase) Dashboard() (*dto.DashboardSummary, error) {
	items, err := uc.items.List()
	if err != nil {
		return nil, err
	}
	txs, err := uc.txs.List()
	if err != nil {
		return nil, err
	}
	summary := &dto.DashboardSummary{TotalItems: len(items)}
	for _, it := range items {
		switch it.Type {
		case entity.ItemTypeRawMaterial:
			summary.RawMaterialStock += it.Stock
		case entity.ItemTypeFinishedGood:
			summary.FinishedGoodStock += it.Stock
		}
		if it.IsLowStock() {
			summary.LowStockCount++
		}
	}
	for _, t := range txs {
		if t.IsPending() {
			summary.PendingMovements++
		}
	}
	return summary, nil
}

// ProductionAvailability disponibilidad de materia prima para producción.
// CRITICAL si stock ≤ min, LOW si stock ≤ 1.5×min, SAFE en el resto.
func (uc *UseCase) ProductionAvailability() ([]dto.ProductionRow, error) {
	items, err := uc.items.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductionRow, 0)
	for _, it := range items {
		if it.Type != entity.ItemTypeRawMaterial {
			continue
		}
		status := dto.AvailabilitySafe
		switch {
		case it.Stock <= it.Min:
			status = dto.AvailabilityCritical
		case it.Stock*2 <= it.Min*3: // stock ≤ 1.5×min sin aritmética flotante
			status = dto.AvailabilityLow
		}
		out = append(out, dto.ProductionRow{
			Code:   it.Code,
			Name:   it.Name,
			Stock:  it.Stock,
			Min:    it.Min,
			Status: status,
		})
	}
	return out, nil
}

// ExportJSON construye el documento {items, transactions, exportedAt}.
func (uc *UseCase) ExportJSON() (*dto.ExportDocument, error) {
	items, err := uc.items.List()
	if err != nil {
		return nil, err
	}
	txs, err := uc.txs.List()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Item, len(items))
	doc := &dto.ExportDocument{
		Items:        make([]dto.ItemResponse, 0, len(items)),
		Transactions: make([]dto.TransactionResponse, 0, len(txs)),
		ExportedAt:   time.Now(),
	}
	for _, it := range items {
		byID[it.ID] = it
		doc.Items = append(doc.Items, *dto.ToItemResponse(it))
	}
	for _, t := range txs {
		doc.Transactions = append(doc.Transactions, *dto.ToTransactionResponse(t, byID[t.ItemID]))
	}
	return doc, nil
}

// WriteItemsCSV escribe el reporte de ítems como CSV (escapado RFC4180 vía
// encoding/csv).
func (uc *UseCase) WriteItemsCSV(w io.Writer) error {
	items, err := uc.items.List()
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Code", "Name", "Category", "Type", "Stock", "Min"}); err != nil {
		return fmt.Errorf("escribir encabezado csv: %w", err)
	}
	for _, it := range items {
		row := []string{it.Code, it.Name, it.Category, it.Type, strconv.Itoa(it.Stock), strconv.Itoa(it.Min)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("escribir fila csv: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTransactionsCSV escribe el historial del libro mayor como CSV.
func (uc *UseCase) WriteTransactionsCSV(w io.Writer) error {
	items, err := uc.items.List()
	if err != nil {
		return err
	}
	txs, err := uc.txs.List()
	if err != nil {
		return err
	}
	byID := make(map[string]*entity.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	cw := csv.NewWriter(w)
	header := []string{"Date", "Kind", "ItemCode", "ItemName", "Qty", "Batch", "Info", "RequestedBy", "Status"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("escribir encabezado csv: %w", err)
	}
	for _, t := range txs {
		code, name := "", ""
		if it := byID[t.ItemID]; it != nil {
			code, name = it.Code, it.Name
		}
		row := []string{
			t.Date.Format("2006-01-02"), t.Kind, code, name,
			strconv.Itoa(t.Qty), t.Batch, t.Info, t.RequestedBy, t.Status,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("escribir fila csv: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
