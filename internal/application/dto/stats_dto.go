package dto

import "github.com/shopspring/decimal"

// StatsResponse reporte compuesto de GET /api/stats. Las claves en camelCase
// son el contrato que consume el dashboard.
type StatsResponse struct {
	TotalProducts        int64                      `json:"totalProducts"`
	TotalCategories      int64                      `json:"totalCategories"`
	TotalSuppliers       int64                      `json:"totalSuppliers"`
	LowStockProducts     int64                      `json:"lowStockProducts"`
	TotalStockValue      decimal.Decimal            `json:"totalStockValue"`
	RecentMovements      []MovementResponse         `json:"recentMovements"`
	CategoryDistribution []CategoryDistributionItem `json:"categoryDistribution"`
	StockTrends          []StockTrendPoint          `json:"stockTrends"`
}

// CategoryDistributionItem una categoría y su cantidad de productos.
type CategoryDistributionItem struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// StockTrendPoint entradas y salidas agregadas de un día de la ventana de
// tendencia. Date es la etiqueta corta localizada ("5 sept").
type StockTrendPoint struct {
	Date string `json:"date"`
	In   int64  `json:"in"`
	Out  int64  `json:"out"`
}
