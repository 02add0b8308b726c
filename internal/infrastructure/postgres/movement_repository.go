package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-backend/internal/domain/entity"
	"github.com/jhoicas/inventario-backend/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL
// (usable con pool o tx). Los movimientos se insertan siempre dentro de la
// misma transacción que la escritura de producto que los origina.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO movimientos_stock (producto_id, cantidad, tipo_movimiento, notas)
		VALUES ($1, $2, $3, $4)
		RETURNING id, creado_en`
	err := r.q.QueryRow(ctx, query,
		movement.ProductID, movement.Quantity, movement.Type, movement.Notes,
	).Scan(&movement.ID, &movement.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}
