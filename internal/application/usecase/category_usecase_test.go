package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-backend/internal/application/dto"
	"github.com/jhoicas/inventario-backend/internal/application/usecase"
	"github.com/jhoicas/inventario-backend/internal/domain"
	"github.com/jhoicas/inventario-backend/internal/domain/entity"
)

type fakeCategoryRepo struct {
	seq        int64
	categories map[int64]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[int64]*entity.Category{}}
}

func (f *fakeCategoryRepo) nameTaken(name string, selfID int64) bool {
	for id, c := range f.categories {
		if c.Name == name && id != selfID {
			return true
		}
	}
	return false
}

func (f *fakeCategoryRepo) List(context.Context) ([]entity.Category, error) {
	list := make([]entity.Category, 0, len(f.categories))
	for _, c := range f.categories {
		list = append(list, *c)
	}
	return list, nil
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	if f.nameTaken(c.Name, 0) {
		return domain.ErrDuplicate
	}
	f.seq++
	c.ID = f.seq
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	f.categories[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) (*entity.Category, error) {
	current, ok := f.categories[c.ID]
	if !ok {
		return nil, nil
	}
	if f.nameTaken(c.Name, c.ID) {
		return nil, domain.ErrDuplicate
	}
	updated := *c
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = time.Now()
	f.categories[c.ID] = &updated
	cp := updated
	return &cp, nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id int64) (bool, error) {
	_, ok := f.categories[id]
	delete(f.categories, id)
	return ok, nil
}

// Nombre duplicado rechazado en create y update.
func TestCategory_NombreDuplicado(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	_, err := uc.Create(context.Background(), dto.CategoryRequest{Name: "Cables"})
	require.NoError(t, err)
	other, err := uc.Create(context.Background(), dto.CategoryRequest{Name: "Herramientas"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CategoryRequest{Name: "Cables"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Update(context.Background(), other.ID, dto.CategoryRequest{Name: "Cables"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Update sobre id inexistente devuelve nil sin error (404 en el handler).
func TestCategory_UpdateNoExiste(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	out, err := uc.Update(context.Background(), 42, dto.CategoryRequest{Name: "X"})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// El listado trae product_count; create no.
func TestCategory_ContadorEnListado(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CategoryRequest{Name: "Cables"})
	require.NoError(t, err)
	assert.Nil(t, created.ProductCount)

	repo.categories[created.ID].ProductCount = 3

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].ProductCount)
	assert.Equal(t, int64(3), *list[0].ProductCount)
}

func TestCategory_Delete(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	created, err := uc.Create(context.Background(), dto.CategoryRequest{Name: "Cables"})
	require.NoError(t, err)

	deleted, err := uc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = uc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
