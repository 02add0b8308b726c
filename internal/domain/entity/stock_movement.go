package entity

import "time"

// Tipos de movimiento tal como los persiste el esquema (dos valores).
const (
	StorageMovementIn  = "ENTRADA"
	StorageMovementOut = "SALIDA"
)

// Tipos de movimiento expuestos por la API (tres valores).
const (
	MovementKindIn     = "IN"
	MovementKindOut    = "OUT"
	MovementKindAdjust = "ADJUSTMENT"
)

// movementKinds es la tabla cerrada de traducción almacenamiento → API.
var movementKinds = map[string]string{
	StorageMovementIn:  MovementKindIn,
	StorageMovementOut: MovementKindOut,
}

// MovementKindFromStorage traduce el tipo persistido al enum de la API.
// Cualquier valor no reconocido cae en ADJUSTMENT.
func MovementKindFromStorage(storageType string) string {
	if kind, ok := movementKinds[storageType]; ok {
		return kind
	}
	return MovementKindAdjust
}

// StockMovement es el registro de auditoría de un cambio de inventario.
// Quantity es el delta con signo: positivo para entradas, negativo para salidas.
type StockMovement struct {
	ID        int64
	ProductID int64
	Quantity  int64
	Type      string // ENTRADA | SALIDA (valor de almacenamiento)
	Notes     string
	CreatedAt time.Time

	// Nombre del producto, poblado solo por la consulta de movimientos
	// recientes (LEFT JOIN productos).
	ProductName *string
}
