package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/inventario-backend/internal/domain/entity"
	"github.com/jhoicas/inventario-backend/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
// A diferencia de categorías, proveedores no tiene constraint de unicidad.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// List devuelve todos los proveedores con su cantidad de productos, ordenados por nombre.
func (r *SupplierRepo) List(ctx context.Context) ([]entity.Supplier, error) {
	query := `
		SELECT s.id, s.nombre, COALESCE(s.email, ''), COALESCE(s.telefono, ''), COALESCE(s.direccion, ''),
		       s.creado_en, s.actualizado_en, COUNT(p.id) AS product_count
		FROM proveedores s
		LEFT JOIN productos p ON s.id = p.proveedor_id
		GROUP BY s.id
		ORDER BY s.nombre ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var list []entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address,
			&s.CreatedAt, &s.UpdatedAt, &s.ProductCount); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		INSERT INTO proveedores (nombre, email, telefono, direccion)
		VALUES ($1, $2, $3, $4)
		RETURNING id, creado_en, actualizado_en`
	err := r.q.QueryRow(ctx, query, supplier.Name, supplier.Email, supplier.Phone, supplier.Address).
		Scan(&supplier.ID, &supplier.CreatedAt, &supplier.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// Update reemplaza los campos mutables. Devuelve nil si el id no existe.
func (r *SupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) (*entity.Supplier, error) {
	query := `
		UPDATE proveedores
		SET nombre = $1, email = $2, telefono = $3, direccion = $4, actualizado_en = NOW()
		WHERE id = $5
		RETURNING id, nombre, COALESCE(email, ''), COALESCE(telefono, ''), COALESCE(direccion, ''),
		          creado_en, actualizado_en`
	var updated entity.Supplier
	err := r.q.QueryRow(ctx, query,
		supplier.Name, supplier.Email, supplier.Phone, supplier.Address, supplier.ID,
	).Scan(&updated.ID, &updated.Name, &updated.Email, &updated.Phone, &updated.Address,
		&updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update supplier: %w", err)
	}
	return &updated, nil
}

// Delete elimina un proveedor por ID. Devuelve false si ninguna fila coincidió.
func (r *SupplierRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM proveedores WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete supplier: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
