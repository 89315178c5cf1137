package dto

import (
	"time"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// RequestMovementRequest body para POST /api/movements.
// Date en formato 2006-01-02; vacía = fecha actual.
type RequestMovementRequest struct {
	Kind   string `json:"kind"` // IN, OUT
	ItemID string `json:"item_id"`
	Qty    int    `json:"qty"`
	Date   string `json:"date,omitempty"`
	Batch  string `json:"batch,omitempty"`
	Info   string `json:"info,omitempty"` // origen para IN, destino para OUT
}

// TransactionResponse representación de un registro del libro mayor,
// enriquecida con código y nombre del ítem para las vistas de historial.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Kind        string    `json:"kind"`
	ItemID      string    `json:"item_id"`
	ItemCode    string    `json:"item_code,omitempty"`
	ItemName    string    `json:"item_name,omitempty"`
	Qty         int       `json:"qty"`
	Batch       string    `json:"batch,omitempty"`
	Info        string    `json:"info,omitempty"`
	RequestedBy string    `json:"requested_by"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToTransactionResponse convierte el registro del libro a su representación
// de respuesta, enriquecida con código y nombre del ítem (item puede ser nil).
func ToTransactionResponse(t *entity.Transaction, item *entity.Item) *TransactionResponse {
	r := &TransactionResponse{
		ID:          t.ID,
		Date:        t.Date,
		Kind:        t.Kind,
		ItemID:      t.ItemID,
		Qty:         t.Qty,
		Batch:       t.Batch,
		Info:        t.Info,
		RequestedBy: t.RequestedBy,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
	}
	if item != nil {
		r.ItemCode = item.Code
		r.ItemName = item.Name
	}
	return r
}
