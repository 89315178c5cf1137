package dto

import (
	"time"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// ItemPatch estructura de parcheo para crear o editar un ítem: id + campos a
// cambiar (nil = sin cambio). Se valida como una unidad antes de aplicar.
// No incluye Stock: las ediciones del formulario jamás tocan el stock, que
// solo muta el motor de aprobación.
type ItemPatch struct {
	ID       string  `json:"id,omitempty"` // vacío = crear
	Code     *string `json:"code,omitempty"`
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Type     *string `json:"type,omitempty"`
	Min      *int    `json:"min,omitempty"`
	Barcode  *string `json:"barcode,omitempty"`
}

// ItemResponse representación de un ítem en respuestas.
type ItemResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Type      string    `json:"type"`
	Stock     int       `json:"stock"`
	Min       int       `json:"min"`
	Barcode   string    `json:"barcode,omitempty"`
	LowStock  bool      `json:"low_stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToItemResponse convierte la entidad a su representación de respuesta.
func ToItemResponse(i *entity.Item) *ItemResponse {
	if i == nil {
		return nil
	}
	return &ItemResponse{
		ID:        i.ID,
		Code:      i.Code,
		Name:      i.Name,
		Category:  i.Category,
		Type:      i.Type,
		Stock:     i.Stock,
		Min:       i.Min,
		Barcode:   i.Barcode,
		LowStock:  i.IsLowStock(),
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
