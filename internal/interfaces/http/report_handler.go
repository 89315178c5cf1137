package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/report"
	"github.com/tu-usuario/almacen-pro/pkg/metrics"
)

// ReportHandler maneja las vistas derivadas de solo lectura: stock bajo,
// dashboard, disponibilidad de producción y exportaciones.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// LowStock godoc
// @Summary      Ítems con stock en o por debajo del mínimo
// @Description  Recalculado en vivo en cada consulta; el contador es len(items).
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStockItems()
	if err != nil {
		return writeDomainError(c, err)
	}
	metrics.LowStockItems.Set(float64(len(out)))
	return c.JSON(out)
}

// Dashboard totales del inventario.
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard()
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Production disponibilidad de materia prima para producción.
func (h *ReportHandler) Production(c *fiber.Ctx) error {
	out, err := h.uc.ProductionAvailability()
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// ExportJSON godoc
// @Summary      Exportar inventario y libro mayor como JSON
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ExportDocument
// @Router       /api/export.json [get]
func (h *ReportHandler) ExportJSON(c *fiber.Ctx) error {
	out, err := h.uc.ExportJSON()
	if err != nil {
		return writeDomainError(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="almacen.json"`)
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar como CSV
// @Description  ?report=items (por defecto) o ?report=transactions.
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Param        report  query  string  false  "items | transactions"
// @Success      200  {string}  string
// @Router       /api/export.csv [get]
func (h *ReportHandler) ExportCSV(c *fiber.Ctx) error {
	var buf bytes.Buffer
	var err error
	name := "items.csv"
	switch c.Query("report", "items") {
	case "items":
		err = h.uc.WriteItemsCSV(&buf)
	case "transactions":
		name = "transactions.csv"
		err = h.uc.WriteTransactionsCSV(&buf)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "report debe ser items o transactions"})
	}
	if err != nil {
		return writeDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(buf.Bytes())
}
