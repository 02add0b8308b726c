package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-backend/internal/application/dto"
)

// parseID lee el parámetro :id de la ruta como entero. Devuelve false (y ya
// escribió el 400) si no es numérico.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido"})
		return 0, false
	}
	return id, true
}

func internalError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: message})
}

func conflict(c *fiber.Ctx, message string) error {
	// La API histórica responde 400 (no 409) a las violaciones de unicidad.
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: message})
}
