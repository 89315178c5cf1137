package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/ledger"
	"github.com/tu-usuario/almacen-pro/pkg/metrics"
)

// LedgerHandler maneja las peticiones HTTP del libro mayor de movimientos:
// solicitud, pendientes, historial y decisiones del motor de aprobación.
type LedgerHandler struct {
	movements *ledger.MovementUseCase
	approval  *ledger.ApprovalUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(movements *ledger.MovementUseCase, approval *ledger.ApprovalUseCase) *LedgerHandler {
	return &LedgerHandler{movements: movements, approval: approval}
}

// RequestMovement godoc
// @Summary      Registrar una solicitud de movimiento
// @Description  Agrega un registro PENDING al libro; el stock no cambia hasta aprobar.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RequestMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *LedgerHandler) RequestMovement(c *fiber.Ctx) error {
	var in dto.RequestMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.movements.RequestMovement(c.Context(), in, GetUsername(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	metrics.MovementsRequested.WithLabelValues(out.Kind).Inc()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPending godoc
// @Summary      Listar movimientos pendientes
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/movements/pending [get]
func (h *LedgerHandler) ListPending(c *fiber.Ctx) error {
	out, err := h.movements.ListPending()
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Historial del libro mayor
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        kind    query  string  false  "IN u OUT"
// @Param        search  query  string  false  "Búsqueda por ítem, lote o solicitante"
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/movements [get]
func (h *LedgerHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.movements.ListAll(c.Query("kind"), c.Query("search"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar un movimiento pendiente
// @Description  Aplica el delta de stock y marca APPROVED, atómicamente.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/approve [post]
func (h *LedgerHandler) Approve(c *fiber.Ctx) error {
	out, err := h.approval.Approve(c.Context(), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	metrics.MovementsDecided.WithLabelValues("approved").Inc()
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar un movimiento pendiente
// @Description  Marca REJECTED sin efecto sobre el stock.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/reject [post]
func (h *LedgerHandler) Reject(c *fiber.Ctx) error {
	out, err := h.approval.Reject(c.Context(), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	metrics.MovementsDecided.WithLabelValues("rejected").Inc()
	return c.JSON(out)
}
