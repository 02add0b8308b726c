package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-backend/internal/application/dto"
	"github.com/jhoicas/inventario-backend/internal/domain/entity"
	"github.com/jhoicas/inventario-backend/internal/domain/repository"
)

const (
	recentMovementsLimit = 10 // movimientos del widget de actividad reciente
	trendWindowDays      = 7  // ventana de la tendencia de stock
)

// StatsUseCase arma el reporte compuesto de estadísticas del inventario.
//
// Fuente de datos: StatsRepository (consultas read-only e independientes).
// Cualquier consulta que falle aborta el reporte completo: no hay resultados
// parciales.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// GetStats construye el StatsResponse.
//
// Las ocho consultas se lanzan en paralelo (una goroutine por consulta, como
// son independientes entre sí el orden de llegada no importa) y se recogen
// todas antes de armar la respuesta.
func (uc *StatsUseCase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	type countResult struct {
		n   int64
		err error
	}

	productsCh := make(chan countResult, 1)
	categoriesCh := make(chan countResult, 1)
	suppliersCh := make(chan countResult, 1)
	lowStockCh := make(chan countResult, 1)

	go func() {
		n, err := uc.repo.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountCategories(ctx)
		categoriesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountSuppliers(ctx)
		suppliersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountLowStock(ctx)
		lowStockCh <- countResult{n, err}
	}()

	valueCh := make(chan error, 1)
	movementsCh := make(chan error, 1)
	distributionCh := make(chan error, 1)
	trendCh := make(chan error, 1)

	out := &dto.StatsResponse{}

	go func() {
		total, err := uc.repo.TotalStockValue(ctx)
		out.TotalStockValue = total
		valueCh <- err
	}()

	var recent []entity.StockMovement
	go func() {
		var err error
		recent, err = uc.repo.RecentMovements(ctx, recentMovementsLimit)
		movementsCh <- err
	}()

	var distribution []repository.CategoryCount
	go func() {
		var err error
		distribution, err = uc.repo.CategoryDistribution(ctx)
		distributionCh <- err
	}()

	var trend []repository.DailyStockTrend
	go func() {
		var err error
		trend, err = uc.repo.StockTrend(ctx, trendWindowDays)
		trendCh <- err
	}()

	products := <-productsCh
	categories := <-categoriesCh
	suppliers := <-suppliersCh
	lowStock := <-lowStockCh
	valueErr := <-valueCh
	movementsErr := <-movementsCh
	distributionErr := <-distributionCh
	trendErr := <-trendCh

	for _, err := range []error{
		products.err, categories.err, suppliers.err, lowStock.err,
		valueErr, movementsErr, distributionErr, trendErr,
	} {
		if err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	out.TotalProducts = products.n
	out.TotalCategories = categories.n
	out.TotalSuppliers = suppliers.n
	out.LowStockProducts = lowStock.n

	out.RecentMovements = make([]dto.MovementResponse, 0, len(recent))
	for _, m := range recent {
		out.RecentMovements = append(out.RecentMovements, dto.ToMovementResponse(m))
	}

	out.CategoryDistribution = make([]dto.CategoryDistributionItem, 0, len(distribution))
	for _, row := range distribution {
		out.CategoryDistribution = append(out.CategoryDistribution, dto.CategoryDistributionItem{
			Name:  row.Name,
			Value: row.Count,
		})
	}

	out.StockTrends = make([]dto.StockTrendPoint, 0, len(trend))
	for _, day := range trend {
		out.StockTrends = append(out.StockTrends, dto.StockTrendPoint{
			Date: shortSpanishDate(day.Date),
			In:   day.In,
			Out:  day.Out,
		})
	}

	return out, nil
}

// Abreviaturas de mes es-ES (CLDR), para la etiqueta corta de la tendencia.
var spanishMonths = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sept", "oct", "nov", "dic",
}

// shortSpanishDate formatea una fecha como "5 sept" (día y mes corto es-ES).
func shortSpanishDate(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), spanishMonths[t.Month()-1])
}
