package dto

import (
	"time"

	"github.com/jhoicas/inventario-backend/internal/domain/entity"
)

// CategoryRequest entrada para crear o actualizar una categoría.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryResponse salida de una categoría. ProductCount solo aparece en el
// listado (derivado del GROUP BY); create/update lo omiten.
type CategoryResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	ProductCount *int64    `json:"product_count,omitempty"`
}

// ToCategoryResponse mapea la entidad sin el contador derivado (create/update).
func ToCategoryResponse(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCategoryListItem mapea la entidad incluyendo product_count (listado).
func ToCategoryListItem(c entity.Category) CategoryResponse {
	out := *ToCategoryResponse(&c)
	count := c.ProductCount
	out.ProductCount = &count
	return out
}
