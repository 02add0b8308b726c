package usecase

import (
	"context"

	"github.com/jhoicas/inventario-backend/internal/application/dto"
	"github.com/jhoicas/inventario-backend/internal/domain/entity"
	"github.com/jhoicas/inventario-backend/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// List devuelve todos los proveedores con product_count, ordenados por nombre.
func (uc *SupplierUseCase) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.ToSupplierListItem(s))
	}
	return items, nil
}

// Create inserta un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	supplier := &entity.Supplier{Name: in.Name, Email: in.Email, Phone: in.Phone, Address: in.Address}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return dto.ToSupplierResponse(supplier), nil
}

// Update reemplaza los campos mutables. Devuelve nil si el id no existe.
func (uc *SupplierUseCase) Update(ctx context.Context, id int64, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	updated, err := uc.repo.Update(ctx, &entity.Supplier{
		ID: id, Name: in.Name, Email: in.Email, Phone: in.Phone, Address: in.Address,
	})
	if err != nil {
		return nil, err
	}
	return dto.ToSupplierResponse(updated), nil
}

// Delete elimina un proveedor por ID. Devuelve false si no existía.
func (uc *SupplierUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}
