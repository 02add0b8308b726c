package dto

import (
	"time"

	"github.com/jhoicas/inventario-backend/internal/domain/entity"
)

// MovementResponse salida de un movimiento de stock. MovementType es el enum
// de la API (IN/OUT/ADJUSTMENT), no el valor de almacenamiento.
type MovementResponse struct {
	ID           int64     `json:"id"`
	ProductID    int64     `json:"product_id"`
	Quantity     int64     `json:"quantity"`
	MovementType string    `json:"movement_type"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	ProductName  *string   `json:"product_name,omitempty"`
}

// ToMovementResponse mapea la entidad traduciendo el tipo de movimiento con
// la tabla cerrada de entity (ENTRADA→IN, SALIDA→OUT, resto→ADJUSTMENT).
func ToMovementResponse(m entity.StockMovement) MovementResponse {
	return MovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		Quantity:     m.Quantity,
		MovementType: entity.MovementKindFromStorage(m.Type),
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		ProductName:  m.ProductName,
	}
}
