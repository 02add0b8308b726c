package repository

import (
	"context"

	"github.com/jhoicas/inventario-backend/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para StockMovement.
// Los movimientos son un registro de auditoría: solo se insertan, nunca se
// actualizan ni borran desde la aplicación.
type MovementRepository interface {
	// Create inserta el movimiento y completa ID y CreatedAt.
	Create(ctx context.Context, movement *entity.StockMovement) error
}
