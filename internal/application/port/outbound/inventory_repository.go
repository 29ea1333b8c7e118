package outbound

import (
	"context"

	"github.com/DioGolang/StockFlow/internal/domain/entity"
)

// InventoryRepository persists Inventory aggregates. Absence is
// signalled with a nil entity and nil error; the service layer turns
// that into a typed NotFound failure. Implementations never manage
// transaction lifecycle.
type InventoryRepository interface {
	Create(ctx context.Context, inv *entity.Inventory) (entity.ProductID, error)
	GetAll(ctx context.Context) ([]*entity.Inventory, error)
	GetByID(ctx context.Context, id entity.ProductID) (*entity.Inventory, error)
	Update(ctx context.Context, inv *entity.Inventory) error
	Delete(ctx context.Context, id entity.ProductID) error
}
