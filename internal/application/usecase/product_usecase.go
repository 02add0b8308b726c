package usecase

import (
	"context"

	"github.com/jhoicas/inventario-backend/internal/application/dto"
	"github.com/jhoicas/inventario-backend/internal/domain/entity"
	"github.com/jhoicas/inventario-backend/internal/domain/repository"
)

// Notas de los movimientos generados por el ciclo de vida del producto.
const (
	initialStockNote    = "Stock inicial"
	stockAdjustmentNote = "Ajuste de inventario"
)

// ProductUseCase casos de uso CRUD para productos. Las escrituras que generan
// movimiento de stock (create, update) corren dentro de una transacción: el
// producto y su registro de auditoría se persisten juntos o no se persisten.
type ProductUseCase struct {
	repo repository.ProductRepository
	tx   TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, tx TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, tx: tx}
}

// List devuelve todos los productos con nombres de categoría y proveedor,
// del más reciente al más antiguo.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for i := range list {
		items = append(items, *dto.ToProductResponse(&list[i]))
	}
	return items, nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// Create inserta el producto y su movimiento inicial (ENTRADA, cantidad =
// stock inicial) en una sola transacción. Devuelve domain.ErrDuplicate si el
// SKU ya existe. La respuesta no trae category_name/supplier_name.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	product := in.ToEntity()
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, movements repository.MovementRepository) error {
		if err := products.Create(ctx, product); err != nil {
			return err
		}
		return movements.Create(ctx, &entity.StockMovement{
			ProductID: product.ID,
			Quantity:  product.Stock,
			Type:      entity.StorageMovementIn,
			Notes:     initialStockNote,
		})
	})
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// Update reemplaza los campos mutables. Si el stock cambia, registra un
// movimiento con el delta (ENTRADA si sube, SALIDA si baja) en la misma
// transacción. La lectura del stock actual bloquea la fila (FOR UPDATE), así
// dos updates concurrentes no pueden calcular el delta sobre un valor viejo.
// Devuelve nil si el producto no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) (*dto.ProductResponse, error) {
	var updated *entity.Product
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, movements repository.MovementRepository) error {
		currentStock, err := products.StockForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if currentStock == nil {
			return nil // no existe; el rollback no tiene nada que deshacer
		}
		delta := in.Stock - *currentStock

		product := in.ToEntity()
		product.ID = id
		updated, err = products.Update(ctx, product)
		if err != nil {
			return err
		}
		if updated == nil || delta == 0 {
			return nil
		}

		movementType := entity.StorageMovementIn
		if delta < 0 {
			movementType = entity.StorageMovementOut
		}
		return movements.Create(ctx, &entity.StockMovement{
			ProductID: id,
			Quantity:  delta,
			Type:      movementType,
			Notes:     stockAdjustmentNote,
		})
	})
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponse(updated), nil
}

// Delete elimina un producto por ID. Devuelve false si no existía.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}
