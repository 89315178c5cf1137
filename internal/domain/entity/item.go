package entity

import "time"

// Tipos de ítem del almacén.
const (
	ItemTypeRawMaterial  = "RAW_MATERIAL"  // materia prima
	ItemTypeFinishedGood = "FINISHED_GOOD" // producto terminado
)

// ValidItemType indica si t es un tipo de ítem conocido.
func ValidItemType(t string) bool {
	return t == ItemTypeRawMaterial || t == ItemTypeFinishedGood
}

// Item representa un artículo del almacén. Stock nunca es negativo y solo lo
// muta el motor de aprobación al finalizar un movimiento; las ediciones del
// formulario lo arrastran sin tocarlo.
type Item struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"` // código legible, único
	Name      string    `json:"name"`
	Category  string    `json:"category"` // referencia por nombre a Category
	Type      string    `json:"type"`     // RAW_MATERIAL, FINISHED_GOOD
	Stock     int       `json:"stock"`
	Min       int       `json:"min"` // umbral mínimo de stock
	Barcode   string    `json:"barcode,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsLowStock indica si el stock está en o por debajo del mínimo configurado.
func (i *Item) IsLowStock() bool {
	return i.Stock <= i.Min
}
