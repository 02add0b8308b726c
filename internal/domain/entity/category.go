package entity

import "time"

// Category representa una categoría de productos.
type Category struct {
	ID          int64
	Name        string // único
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Derivado: cantidad de productos que referencian la categoría.
	// Solo lo pobla la consulta de listado (GROUP BY + COUNT).
	ProductCount int64
}
