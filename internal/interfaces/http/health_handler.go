package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-backend/internal/application/dto"
)

// Pinger verifica la conexión a la base de datos (lo implementa pgxpool.Pool).
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler maneja GET /api/health.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler construye el handler.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Failure      500  {object}  dto.HealthResponse
// @Router       /api/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	if err := h.db.Ping(c.UserContext()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.HealthResponse{
			Status:   "error",
			Database: "disconnected",
		})
	}
	return c.JSON(dto.HealthResponse{Status: "ok", Database: "connected"})
}
