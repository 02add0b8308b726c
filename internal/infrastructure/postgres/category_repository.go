package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/inventario-backend/internal/domain"
	"github.com/jhoicas/inventario-backend/internal/domain/entity"
	"github.com/jhoicas/inventario-backend/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// List devuelve todas las categorías con su cantidad de productos, ordenadas por nombre.
func (r *CategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	query := `
		SELECT c.id, c.nombre, COALESCE(c.descripcion, ''), c.creado_en, c.actualizado_en,
		       COUNT(p.id) AS product_count
		FROM categorias c
		LEFT JOIN productos p ON c.id = p.categoria_id
		GROUP BY c.id
		ORDER BY c.nombre ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt, &c.ProductCount); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Create persiste una nueva categoría. Devuelve domain.ErrDuplicate si el
// nombre ya existe (constraint único sobre categorias.nombre).
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categorias (nombre, descripcion)
		VALUES ($1, $2)
		RETURNING id, creado_en, actualizado_en`
	err := r.q.QueryRow(ctx, query, category.Name, category.Description).
		Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// Update reemplaza nombre y descripción. Devuelve nil si el id no existe.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	query := `
		UPDATE categorias
		SET nombre = $1, descripcion = $2, actualizado_en = NOW()
		WHERE id = $3
		RETURNING id, nombre, COALESCE(descripcion, ''), creado_en, actualizado_en`
	var updated entity.Category
	err := r.q.QueryRow(ctx, query, category.Name, category.Description, category.ID).
		Scan(&updated.ID, &updated.Name, &updated.Description, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return &updated, nil
}

// Delete elimina una categoría por ID. Devuelve false si ninguna fila coincidió.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
