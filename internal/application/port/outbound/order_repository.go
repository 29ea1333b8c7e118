package outbound

import (
	"context"

	"github.com/DioGolang/StockFlow/internal/domain/entity"
)

// OrderRepository persists Order aggregates. Create inserts the parent
// row first, then the detail rows stamped with the generated id; both
// statements run on the session the repository was constructed with,
// so atomicity of the aggregate write is the Unit of Work's concern.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) (entity.OrderID, error)
	GetByID(ctx context.Context, id entity.OrderID) (*entity.Order, error)
}
