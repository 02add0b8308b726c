package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-backend/internal/application/dto"
	"github.com/jhoicas/inventario-backend/internal/domain/entity"
)

func ptr[T any](v T) *T { return &v }

// El contrato de renombrado completo producto→API, verificado sobre el JSON
// serializado (las claves son el contrato, no los nombres de campo Go).
func TestToProductResponse_NombresDeCampo(t *testing.T) {
	decimal.MarshalJSONWithoutQuotes = true // como lo fija cmd/api/main.go

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	p := &entity.Product{
		ID:           7,
		Name:         "Widget",
		SKU:          "W1",
		Description:  "un widget",
		CategoryID:   ptr(int64(3)),
		SupplierID:   nil,
		Price:        decimal.RequireFromString("9.99"),
		Stock:        10,
		MinStock:     2,
		ImageURL:     "http://img/w1.png",
		CreatedAt:    now,
		UpdatedAt:    now,
		CategoryName: ptr("Herramientas"),
	}

	raw, err := json.Marshal(dto.ToProductResponse(p))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))

	for _, key := range []string{
		"id", "name", "sku", "description", "category_id", "supplier_id",
		"price", "stock", "min_stock", "image_url", "created_at", "updated_at",
		"category_name",
	} {
		assert.Contains(t, got, key)
	}
	// supplier_name se omite cuando no vino del JOIN
	assert.NotContains(t, got, "supplier_name")

	// Los numéricos comparan como números sin importar su representación de almacenamiento
	assert.Equal(t, 9.99, got["price"])
	assert.Equal(t, float64(10), got["stock"])
	assert.Equal(t, float64(2), got["min_stock"])
	assert.Nil(t, got["supplier_id"]) // FK nullable pasa como null
}

// create/update no traen product_count; el listado sí.
func TestToCategoryResponse_ContadorSoloEnListado(t *testing.T) {
	c := entity.Category{ID: 1, Name: "Cables", ProductCount: 4}

	raw, err := json.Marshal(dto.ToCategoryResponse(&c))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "product_count")

	item := dto.ToCategoryListItem(c)
	require.NotNil(t, item.ProductCount)
	assert.Equal(t, int64(4), *item.ProductCount)
}

func TestToSupplierListItem_IncluyeContador(t *testing.T) {
	s := entity.Supplier{ID: 2, Name: "ACME", ProductCount: 0}
	item := dto.ToSupplierListItem(s)
	require.NotNil(t, item.ProductCount)
	assert.Zero(t, *item.ProductCount)
}

// El tipo de movimiento sale traducido al enum de la API.
func TestToMovementResponse_TraduceTipo(t *testing.T) {
	in := dto.ToMovementResponse(entity.StockMovement{ID: 1, Quantity: 5, Type: entity.StorageMovementIn})
	assert.Equal(t, "IN", in.MovementType)

	out := dto.ToMovementResponse(entity.StockMovement{ID: 2, Quantity: -3, Type: entity.StorageMovementOut})
	assert.Equal(t, "OUT", out.MovementType)
	assert.Equal(t, int64(-3), out.Quantity)

	raro := dto.ToMovementResponse(entity.StockMovement{ID: 3, Type: "legacy"})
	assert.Equal(t, "ADJUSTMENT", raro.MovementType)
}
