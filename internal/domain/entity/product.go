package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. El esquema de almacenamiento
// usa nombres en español (productos.nombre, precio, inventario, ...); los
// repositorios hacen el scan y la capa de DTOs expone los nombres en inglés.
type Product struct {
	ID          int64
	Name        string
	SKU         string // único en todo el catálogo
	Description string
	CategoryID  *int64 // nullable
	SupplierID  *int64 // nullable
	Price       decimal.Decimal
	Stock       int64
	MinStock    int64
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Nombres de las entidades referenciadas, poblados solo por las consultas
	// de lectura con LEFT JOIN (list/get). Nil en create/update.
	CategoryName *string
	SupplierName *string
}
