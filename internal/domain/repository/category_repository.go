package repository

import (
	"context"

	"github.com/jhoicas/inventario-backend/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	// List devuelve todas las categorías con product_count, ordenadas por nombre.
	List(ctx context.Context) ([]entity.Category, error)
	// Create inserta la categoría y completa ID y timestamps.
	// Devuelve domain.ErrDuplicate si el nombre ya existe.
	Create(ctx context.Context, category *entity.Category) error
	// Update reemplaza nombre y descripción; nil si el id no existe.
	Update(ctx context.Context, category *entity.Category) (*entity.Category, error)
	// Delete elimina por id; false si ninguna fila coincidió.
	Delete(ctx context.Context, id int64) (bool, error)
}
