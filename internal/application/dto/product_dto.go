package dto

import (
	"time"

	"github.com/jhoicas/inventario-backend/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear o actualizar un producto. La API habla
// inglés; la traducción a las columnas en español del esquema ocurre en los
// repositorios.
type ProductRequest struct {
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Description string          `json:"description"`
	CategoryID  *int64          `json:"category_id"`
	SupplierID  *int64          `json:"supplier_id"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	MinStock    int64           `json:"min_stock"`
	ImageURL    string          `json:"image_url"`
}

// ProductResponse salida de un producto. CategoryName y SupplierName solo
// aparecen en list/get (vienen del LEFT JOIN); create/update los omiten.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Description  string          `json:"description"`
	CategoryID   *int64          `json:"category_id"`
	SupplierID   *int64          `json:"supplier_id"`
	Price        decimal.Decimal `json:"price"`
	Stock        int64           `json:"stock"`
	MinStock     int64           `json:"min_stock"`
	ImageURL     string          `json:"image_url"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	CategoryName *string         `json:"category_name,omitempty"`
	SupplierName *string         `json:"supplier_name,omitempty"`
}

// ToProductResponse mapea la entidad a la forma de la API. Es la única pieza
// que conoce el contrato de renombrado producto→API completo.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		SupplierID:   p.SupplierID,
		Price:        p.Price,
		Stock:        p.Stock,
		MinStock:     p.MinStock,
		ImageURL:     p.ImageURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		CategoryName: p.CategoryName,
		SupplierName: p.SupplierName,
	}
}

// ToEntity construye la entidad de dominio desde la petición.
func (r ProductRequest) ToEntity() *entity.Product {
	return &entity.Product{
		Name:        r.Name,
		SKU:         r.SKU,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		SupplierID:  r.SupplierID,
		Price:       r.Price,
		Stock:       r.Stock,
		MinStock:    r.MinStock,
		ImageURL:    r.ImageURL,
	}
}
