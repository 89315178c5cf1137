package dto

import (
	"time"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// CategoryPatch parcheo para crear o renombrar una categoría.
type CategoryPatch struct {
	ID   string  `json:"id,omitempty"` // vacío = crear
	Name *string `json:"name,omitempty"`
}

// CategoryResponse representación de una categoría en respuestas.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCategoryResponse convierte la entidad a su representación de respuesta.
func ToCategoryResponse(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
