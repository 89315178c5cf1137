package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementIN  = "IN"  // entrada
	MovementOUT = "OUT" // salida
)

// ValidMovementKind indica si k es un tipo de movimiento conocido.
func ValidMovementKind(k string) bool {
	return k == MovementIN || k == MovementOUT
}

// Estados del ciclo de vida de una transacción.
// PENDING → {APPROVED, REJECTED}; los estados finales son terminales.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Transaction representa una solicitud de movimiento de stock en el libro
// mayor. El libro es append-only: las transacciones nunca se eliminan y el
// estado se muta exactamente una vez, por el motor de aprobación.
type Transaction struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"` // fecha solicitada del movimiento
	Kind        string    `json:"kind"` // IN, OUT
	ItemID      string    `json:"item_id"`
	Qty         int       `json:"qty"` // siempre > 0
	Batch       string    `json:"batch,omitempty"`
	Info        string    `json:"info,omitempty"` // origen para IN, destino para OUT
	RequestedBy string    `json:"requested_by"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsPending indica si la transacción sigue a la espera de decisión.
func (t *Transaction) IsPending() bool {
	return t.Status == StatusPending
}
