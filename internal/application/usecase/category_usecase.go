package usecase

import (
	"context"

	"github.com/jhoicas/inventario-backend/internal/application/dto"
	"github.com/jhoicas/inventario-backend/internal/domain/entity"
	"github.com/jhoicas/inventario-backend/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías. Sin efectos sobre el
// stock; la unicidad del nombre la reporta el repositorio como ErrDuplicate.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve todas las categorías con product_count, ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.ToCategoryListItem(c))
	}
	return items, nil
}

// Create inserta una categoría. Devuelve domain.ErrDuplicate si el nombre existe.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category := &entity.Category{Name: in.Name, Description: in.Description}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(category), nil
}

// Update reemplaza nombre y descripción. Devuelve nil si el id no existe.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	updated, err := uc.repo.Update(ctx, &entity.Category{ID: id, Name: in.Name, Description: in.Description})
	if err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(updated), nil
}

// Delete elimina una categoría por ID. Devuelve false si no existía.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}
