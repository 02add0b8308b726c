package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/inventario-backend/internal/domain/entity"
	"github.com/jhoicas/inventario-backend/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para el reporte de estadísticas del inventario.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// CountProducts cuenta todos los productos.
func (r *StatsRepo) CountProducts(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM productos`)
}

// CountCategories cuenta todas las categorías.
func (r *StatsRepo) CountCategories(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM categorias`)
}

// CountSuppliers cuenta todos los proveedores.
func (r *StatsRepo) CountSuppliers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM proveedores`)
}

// CountLowStock cuenta productos por debajo de su inventario mínimo.
func (r *StatsRepo) CountLowStock(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM productos WHERE inventario < inventario_minimo`)
}

func (r *StatsRepo) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("stats count: %w", err)
	}
	return n, nil
}

// TotalStockValue devuelve SUM(precio * inventario) de todos los productos.
// COALESCE devuelve cero con el catálogo vacío.
func (r *StatsRepo) TotalStockValue(ctx context.Context) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(precio * inventario), 0) FROM productos`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("stats stock value: %w", err)
	}
	return total, nil
}

// RecentMovements devuelve los últimos movimientos con el nombre del producto.
// El nombre puede ser NULL si el producto fue eliminado.
func (r *StatsRepo) RecentMovements(ctx context.Context, limit int) ([]entity.StockMovement, error) {
	const query = `
		SELECT sm.id, sm.producto_id, sm.cantidad, sm.tipo_movimiento, COALESCE(sm.notas, ''),
		       sm.creado_en, p.nombre AS product_name
		FROM movimientos_stock sm
		LEFT JOIN productos p ON sm.producto_id = p.id
		ORDER BY sm.creado_en DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("stats recent movements: %w", err)
	}
	defer rows.Close()

	var list []entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Quantity, &m.Type, &m.Notes,
			&m.CreatedAt, &m.ProductName); err != nil {
			return nil, fmt.Errorf("stats scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// CategoryDistribution devuelve la cantidad de productos por categoría,
// de mayor a menor.
func (r *StatsRepo) CategoryDistribution(ctx context.Context) ([]repository.CategoryCount, error) {
	const query = `
		SELECT c.nombre AS name, COUNT(p.id) AS value
		FROM categorias c
		LEFT JOIN productos p ON c.id = p.categoria_id
		GROUP BY c.id, c.nombre
		ORDER BY value DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats category distribution: %w", err)
	}
	defer rows.Close()

	var list []repository.CategoryCount
	for rows.Next() {
		var row repository.CategoryCount
		if err := rows.Scan(&row.Name, &row.Count); err != nil {
			return nil, fmt.Errorf("stats scan distribution: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// StockTrend agrega entradas (cantidad) y salidas (valor absoluto) por día
// calendario dentro de la ventana de los últimos `days` días, relativa al
// reloj del servidor de base de datos.
func (r *StatsRepo) StockTrend(ctx context.Context, days int) ([]repository.DailyStockTrend, error) {
	const query = `
		SELECT DATE(creado_en) AS fecha,
		       SUM(CASE WHEN tipo_movimiento = 'ENTRADA' THEN cantidad ELSE 0 END) AS entradas,
		       SUM(CASE WHEN tipo_movimiento = 'SALIDA' THEN ABS(cantidad) ELSE 0 END) AS salidas
		FROM movimientos_stock
		WHERE creado_en >= NOW() - make_interval(days => $1)
		GROUP BY DATE(creado_en)
		ORDER BY fecha ASC`
	rows, err := r.pool.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("stats stock trend: %w", err)
	}
	defer rows.Close()

	var list []repository.DailyStockTrend
	for rows.Next() {
		var row repository.DailyStockTrend
		if err := rows.Scan(&row.Date, &row.In, &row.Out); err != nil {
			return nil, fmt.Errorf("stats scan trend: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
