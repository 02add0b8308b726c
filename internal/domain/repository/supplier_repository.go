package repository

import (
	"context"

	"github.com/jhoicas/inventario-backend/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	// List devuelve todos los proveedores con product_count, ordenados por nombre.
	List(ctx context.Context) ([]entity.Supplier, error)
	// Create inserta el proveedor y completa ID y timestamps.
	Create(ctx context.Context, supplier *entity.Supplier) error
	// Update reemplaza los campos mutables; nil si el id no existe.
	Update(ctx context.Context, supplier *entity.Supplier) (*entity.Supplier, error)
	// Delete elimina por id; false si ninguna fila coincidió.
	Delete(ctx context.Context, id int64) (bool, error)
}
