package entity

import "time"

// Category representa una categoría de ítems. Los ítems la referencian por
// nombre, por lo que el nombre es único y la categoría no puede eliminarse
// mientras algún ítem la use.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
