package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-backend/internal/application/usecase"
	"github.com/jhoicas/inventario-backend/pkg/logger"
)

// StatsHandler maneja GET /api/stats.
type StatsHandler struct {
	uc  *usecase.StatsUseCase
	log *logger.Logger
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *usecase.StatsUseCase, log *logger.Logger) *StatsHandler {
	return &StatsHandler{uc: uc, log: log}
}

// GetStats godoc
// @Summary      Estadísticas del inventario
// @Description  Totales, stock bajo, valor del inventario, movimientos recientes, distribución por categoría y tendencia de 7 días.
// @Tags         stats
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Msg("obtener estadísticas")
		return internalError(c, "No se pudieron obtener las estadísticas")
	}
	return c.JSON(out)
}
