package usecase_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-backend/internal/application/dto"
	"github.com/jhoicas/inventario-backend/internal/application/usecase"
	"github.com/jhoicas/inventario-backend/internal/domain"
	"github.com/jhoicas/inventario-backend/internal/domain/entity"
	"github.com/jhoicas/inventario-backend/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	seq      int64
	products map[int64]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]*entity.Product{}}
}

func (f *fakeProductRepo) skuTaken(sku string, selfID int64) bool {
	for id, p := range f.products {
		if p.SKU == sku && id != selfID {
			return true
		}
	}
	return false
}

func (f *fakeProductRepo) List(context.Context) ([]entity.Product, error) {
	ids := make([]int64, 0, len(f.products))
	for id := range f.products {
		ids = append(ids, id)
	}
	// más reciente primero, como el ORDER BY creado_en DESC
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	list := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		list = append(list, *f.products[id])
	}
	return list, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if f.skuTaken(p.SKU, 0) {
		return domain.ErrDuplicate
	}
	f.seq++
	p.ID = f.seq
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) StockForUpdate(_ context.Context, id int64) (*int64, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	stock := p.Stock
	return &stock, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) (*entity.Product, error) {
	current, ok := f.products[p.ID]
	if !ok {
		return nil, nil
	}
	if f.skuTaken(p.SKU, p.ID) {
		return nil, domain.ErrDuplicate
	}
	updated := *p
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = time.Now()
	f.products[p.ID] = &updated
	cp := updated
	return &cp, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64) (bool, error) {
	_, ok := f.products[id]
	delete(f.products, id)
	return ok, nil
}

type fakeMovementRepo struct {
	movements []entity.StockMovement
}

func (f *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	m.ID = int64(len(f.movements) + 1)
	m.CreatedAt = time.Now()
	f.movements = append(f.movements, *m)
	return nil
}

// fakeTxRunner ejecuta el callback directo sobre los fakes (sin transacción real).
type fakeTxRunner struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	repository.ProductRepository, repository.MovementRepository,
) error) error {
	return fn(f.products, f.movements)
}

func newProductUseCase() (*usecase.ProductUseCase, *fakeProductRepo, *fakeMovementRepo) {
	products := newFakeProductRepo()
	movements := &fakeMovementRepo{}
	uc := usecase.NewProductUseCase(products, &fakeTxRunner{products: products, movements: movements})
	return uc, products, movements
}

func productRequest(sku string, stock int64) dto.ProductRequest {
	return dto.ProductRequest{
		Name:     "Widget",
		SKU:      sku,
		Price:    decimal.RequireFromString("9.99"),
		Stock:    stock,
		MinStock: 2,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Crear con stock=N registra exactamente un movimiento ENTRADA de cantidad N.
func TestProductCreate_RegistraMovimientoInicial(t *testing.T) {
	uc, _, movements := newProductUseCase()

	out, err := uc.Create(context.Background(), productRequest("W1", 10))
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, int64(10), out.Stock)
	// la respuesta de create no trae los nombres del JOIN
	assert.Nil(t, out.CategoryName)
	assert.Nil(t, out.SupplierName)

	require.Len(t, movements.movements, 1)
	m := movements.movements[0]
	assert.Equal(t, out.ID, m.ProductID)
	assert.Equal(t, int64(10), m.Quantity)
	assert.Equal(t, entity.StorageMovementIn, m.Type)
	assert.Equal(t, "Stock inicial", m.Notes)
}

// El movimiento inicial se registra aunque el stock inicial sea cero.
func TestProductCreate_StockCeroTambienRegistra(t *testing.T) {
	uc, _, movements := newProductUseCase()

	_, err := uc.Create(context.Background(), productRequest("W0", 0))
	require.NoError(t, err)
	require.Len(t, movements.movements, 1)
	assert.Zero(t, movements.movements[0].Quantity)
	assert.Equal(t, entity.StorageMovementIn, movements.movements[0].Type)
}

// SKU duplicado: el segundo create falla con ErrDuplicate y no deja rastro.
func TestProductCreate_SKUDuplicado(t *testing.T) {
	uc, products, movements := newProductUseCase()

	_, err := uc.Create(context.Background(), productRequest("W1", 5))
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), productRequest("W1", 8))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	assert.Len(t, products.products, 1)
	assert.Len(t, movements.movements, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

// Subir el stock de N a M registra un movimiento ENTRADA con delta M-N.
func TestProductUpdate_DeltaPositivo(t *testing.T) {
	uc, _, movements := newProductUseCase()

	created, err := uc.Create(context.Background(), productRequest("W1", 10))
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), created.ID, productRequest("W1", 15))
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, int64(15), out.Stock)

	require.Len(t, movements.movements, 2)
	m := movements.movements[1]
	assert.Equal(t, int64(5), m.Quantity)
	assert.Equal(t, entity.StorageMovementIn, m.Type)
	assert.Equal(t, "Ajuste de inventario", m.Notes)
}

// Bajar el stock registra SALIDA con delta negativo.
func TestProductUpdate_DeltaNegativo(t *testing.T) {
	uc, _, movements := newProductUseCase()

	created, err := uc.Create(context.Background(), productRequest("W1", 10))
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), created.ID, productRequest("W1", 7))
	require.NoError(t, err)
	require.NotNil(t, out)

	require.Len(t, movements.movements, 2)
	m := movements.movements[1]
	assert.Equal(t, int64(-3), m.Quantity)
	assert.Equal(t, entity.StorageMovementOut, m.Type)
}

// Stock sin cambio: ningún movimiento nuevo.
func TestProductUpdate_SinCambioDeStock(t *testing.T) {
	uc, _, movements := newProductUseCase()

	created, err := uc.Create(context.Background(), productRequest("W1", 10))
	require.NoError(t, err)

	req := productRequest("W1", 10)
	req.Name = "Widget renombrado"
	out, err := uc.Update(context.Background(), created.ID, req)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Widget renombrado", out.Name)

	assert.Len(t, movements.movements, 1) // solo el inicial
}

// Producto inexistente: nil sin error (el handler responde 404).
func TestProductUpdate_NoExiste(t *testing.T) {
	uc, _, movements := newProductUseCase()

	out, err := uc.Update(context.Background(), 999, productRequest("W1", 3))
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Empty(t, movements.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete / List
// ──────────────────────────────────────────────────────────────────────────────

func TestProductDelete(t *testing.T) {
	uc, _, _ := newProductUseCase()

	created, err := uc.Create(context.Background(), productRequest("W1", 1))
	require.NoError(t, err)

	deleted, err := uc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = uc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestProductList_MasRecientePrimero(t *testing.T) {
	uc, _, _ := newProductUseCase()

	first, err := uc.Create(context.Background(), productRequest("W1", 1))
	require.NoError(t, err)
	second, err := uc.Create(context.Background(), productRequest("W2", 2))
	require.NoError(t, err)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}
