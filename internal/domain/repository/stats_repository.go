package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-backend/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CategoryCount una categoría con su cantidad de productos (distribución).
type CategoryCount struct {
	Name  string
	Count int64
}

// DailyStockTrend entradas y salidas agregadas de un día calendario.
// Out es el valor absoluto de las salidas (siempre >= 0).
type DailyStockTrend struct {
	Date time.Time
	In   int64
	Out  int64
}

// StatsRepository consultas de solo lectura para el reporte de estadísticas.
type StatsRepository interface {
	CountProducts(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)
	CountSuppliers(ctx context.Context) (int64, error)
	// CountLowStock cuenta productos con inventario < inventario_minimo.
	CountLowStock(ctx context.Context) (int64, error)
	// TotalStockValue devuelve SUM(precio * inventario), cero si no hay filas.
	TotalStockValue(ctx context.Context) (decimal.Decimal, error)
	// RecentMovements devuelve los últimos `limit` movimientos con el nombre
	// del producto, ordenados por creado_en descendente.
	RecentMovements(ctx context.Context, limit int) ([]entity.StockMovement, error)
	// CategoryDistribution devuelve la cantidad de productos por categoría,
	// ordenada de mayor a menor.
	CategoryDistribution(ctx context.Context) ([]CategoryCount, error)
	// StockTrend agrega entradas y salidas por día dentro de la ventana de
	// los últimos `days` días (reloj del servidor de base de datos),
	// ordenado por fecha ascendente.
	StockTrend(ctx context.Context, days int) ([]DailyStockTrend, error)
}
