package entity

import "time"

// Supplier representa un proveedor.
type Supplier struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Derivado: cantidad de productos asociados (solo en listado).
	ProductCount int64
}
