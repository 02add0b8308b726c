package repository

import (
	"context"

	"github.com/jhoicas/inventario-backend/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos de lectura devuelven nil (sin error) cuando el id no existe.
type ProductRepository interface {
	// List devuelve todos los productos con category_name y supplier_name
	// (LEFT JOIN), ordenados por creado_en descendente.
	List(ctx context.Context) ([]entity.Product, error)
	// GetByID devuelve el producto con nombres de categoría y proveedor.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// Create inserta el producto y completa ID/CreatedAt/UpdatedAt desde la
	// fila insertada. Devuelve domain.ErrDuplicate si el SKU ya existe.
	Create(ctx context.Context, product *entity.Product) error
	// StockForUpdate lee el inventario actual bloqueando la fila (FOR UPDATE).
	// Devuelve nil si el producto no existe. Solo tiene sentido dentro de una
	// transacción.
	StockForUpdate(ctx context.Context, id int64) (*int64, error)
	// Update reemplaza los campos mutables y devuelve la fila resultante,
	// o nil si el id no existe. Devuelve domain.ErrDuplicate si el SKU choca.
	Update(ctx context.Context, product *entity.Product) (*entity.Product, error)
	// Delete elimina por id; false si ninguna fila coincidió.
	Delete(ctx context.Context, id int64) (bool, error)
}
