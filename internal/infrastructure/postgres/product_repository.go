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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). El esquema usa columnas en español; el renombrado
// a la API ocurre en la capa de DTOs.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productJoinedColumns = `
	p.id, p.nombre, p.sku, COALESCE(p.descripcion, ''), p.categoria_id, p.proveedor_id,
	p.precio, p.inventario, p.inventario_minimo, COALESCE(p.url_imagen, ''),
	p.creado_en, p.actualizado_en,
	c.nombre AS category_name, s.nombre AS supplier_name`

// List devuelve todos los productos con los nombres de categoría y proveedor,
// ordenados del más reciente al más antiguo.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	query := `
		SELECT ` + productJoinedColumns + `
		FROM productos p
		LEFT JOIN categorias c ON p.categoria_id = c.id
		LEFT JOIN proveedores s ON p.proveedor_id = s.id
		ORDER BY p.creado_en DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := scanJoinedProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por ID con nombres de categoría y proveedor.
// Devuelve nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
		SELECT ` + productJoinedColumns + `
		FROM productos p
		LEFT JOIN categorias c ON p.categoria_id = c.id
		LEFT JOIN proveedores s ON p.proveedor_id = s.id
		WHERE p.id = $1`
	var p entity.Product
	if err := scanJoinedProduct(r.q.QueryRow(ctx, query, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Create persiste un nuevo producto. ID y timestamps los genera la base;
// se copian de vuelta a la entidad desde RETURNING.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO productos (nombre, sku, descripcion, categoria_id, proveedor_id, precio, inventario, inventario_minimo, url_imagen)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, creado_en, actualizado_en`
	err := r.q.QueryRow(ctx, query,
		product.Name, product.SKU, product.Description, product.CategoryID, product.SupplierID,
		product.Price, product.Stock, product.MinStock, product.ImageURL,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// StockForUpdate lee el inventario actual bloqueando la fila hasta el fin de
// la transacción. Devuelve nil si el producto no existe.
func (r *ProductRepo) StockForUpdate(ctx context.Context, id int64) (*int64, error) {
	var stock int64
	err := r.q.QueryRow(ctx, `SELECT inventario FROM productos WHERE id = $1 FOR UPDATE`, id).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock product stock: %w", err)
	}
	return &stock, nil
}

// Update reemplaza todos los campos mutables y devuelve la fila resultante,
// o nil si el id no existe.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	query := `
		UPDATE productos
		SET nombre = $1, sku = $2, descripcion = $3, categoria_id = $4, proveedor_id = $5,
		    precio = $6, inventario = $7, inventario_minimo = $8, url_imagen = $9,
		    actualizado_en = NOW()
		WHERE id = $10
		RETURNING id, nombre, sku, COALESCE(descripcion, ''), categoria_id, proveedor_id,
		          precio, inventario, inventario_minimo, COALESCE(url_imagen, ''),
		          creado_en, actualizado_en`
	var updated entity.Product
	err := r.q.QueryRow(ctx, query,
		product.Name, product.SKU, product.Description, product.CategoryID, product.SupplierID,
		product.Price, product.Stock, product.MinStock, product.ImageURL, product.ID,
	).Scan(
		&updated.ID, &updated.Name, &updated.SKU, &updated.Description,
		&updated.CategoryID, &updated.SupplierID, &updated.Price, &updated.Stock,
		&updated.MinStock, &updated.ImageURL, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return &updated, nil
}

// Delete elimina un producto por ID. Devuelve false si ninguna fila coincidió.
func (r *ProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// scanJoinedProduct escanea una fila del SELECT con LEFT JOIN de categoría y proveedor.
func scanJoinedProduct(row pgx.Row, p *entity.Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.SKU, &p.Description, &p.CategoryID, &p.SupplierID,
		&p.Price, &p.Stock, &p.MinStock, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
		&p.CategoryName, &p.SupplierName,
	)
}
