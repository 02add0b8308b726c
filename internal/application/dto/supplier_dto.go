package dto

import (
	"time"

	"github.com/jhoicas/inventario-backend/internal/domain/entity"
)

// SupplierRequest entrada para crear o actualizar un proveedor.
type SupplierRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SupplierResponse salida de un proveedor. ProductCount solo en el listado.
type SupplierResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	ProductCount *int64    `json:"product_count,omitempty"`
}

// ToSupplierResponse mapea la entidad sin el contador derivado (create/update).
func ToSupplierResponse(s *entity.Supplier) *SupplierResponse {
	if s == nil {
		return nil
	}
	return &SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToSupplierListItem mapea la entidad incluyendo product_count (listado).
func ToSupplierListItem(s entity.Supplier) SupplierResponse {
	out := *ToSupplierResponse(&s)
	count := s.ProductCount
	out.ProductCount = &count
	return out
}
