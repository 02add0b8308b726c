package usecase

import (
	"context"

	"github.com/jhoicas/inventario-backend/internal/domain/repository"
)

// TxRunner ejecuta el callback con repositorios atados a una misma
// transacción. Commit si fn devuelve nil; rollback en caso contrario.
// Lo implementa la infraestructura (postgres.TxRunner).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
