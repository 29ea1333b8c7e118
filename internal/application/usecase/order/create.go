package order

import (
	"context"
	"fmt"

	"github.com/DioGolang/StockFlow/internal/application/port/outbound"
	"github.com/DioGolang/StockFlow/internal/domain/entity"
	"github.com/DioGolang/StockFlow/pkg/events"
	"github.com/DioGolang/StockFlow/pkg/logger"
	"github.com/DioGolang/StockFlow/pkg/result"
)

type CreateUseCaseImpl struct {
	Uow             outbound.UnitOfWork
	OrderCreated    events.Event
	EventDispatcher events.EventDispatcher
	Logger          logger.Logger
}

func NewCreateUseCase(uow outbound.UnitOfWork, created events.Event, dispatcher events.EventDispatcher, log logger.Logger) *CreateUseCaseImpl {
	return &CreateUseCaseImpl{
		Uow:             uow,
		OrderCreated:    created,
		EventDispatcher: dispatcher,
		Logger:          log,
	}
}

// Execute places an order in one transaction: every item decreases its
// inventory with the price snapshotted at order time, the aggregate is
// inserted, an audit entry is written. Any item failure aborts the
// whole order and rolls back the partial stock decrements. The
// order-created event is published only after commit.
func (uc *CreateUseCaseImpl) Execute(ctx context.Context, input CreateInput) (result.Result[CreateOutput], error) {
	if len(input.Items) == 0 {
		return result.Err[CreateOutput](result.BusinessRule("EmptyOrder", "order must contain at least one item")), nil
	}

	orderRes := entity.NewOrder(input.CustomerID)
	if orderRes.IsFailure() {
		return result.ErrOf[CreateOutput](orderRes), nil
	}
	order := orderRes.Value()

	out, err := outbound.Execute(ctx, uc.Uow, func(p outbound.RepositoryProvider) (result.Result[CreateOutput], error) {
		for _, item := range input.Items {
			idRes := entity.NewProductID(item.ProductID)
			if idRes.IsFailure() {
				return result.ErrOf[CreateOutput](idRes), nil
			}

			inv, err := p.Inventory().GetByID(ctx, idRes.Value())
			if err != nil {
				return result.Result[CreateOutput]{}, err
			}
			if inv == nil {
				return result.Err[CreateOutput](result.NotFoundf("product %d not found", item.ProductID)), nil
			}

			if res := inv.Decrease(item.Quantity); res.IsFailure() {
				return result.ErrOf[CreateOutput](res), nil
			}
			if err := p.Inventory().Update(ctx, inv); err != nil {
				return result.Result[CreateOutput]{}, err
			}

			// price snapshot: the detail keeps the inventory price at order time
			if res := order.AddDetail(inv.ID(), item.Quantity, inv.UnitPrice()); res.IsFailure() {
				return result.ErrOf[CreateOutput](res), nil
			}
		}

		id, err := p.Order().Create(ctx, order)
		if err != nil {
			return result.Result[CreateOutput]{}, err
		}

		audit := entity.NewAuditLogRecord("ORDER_CREATED", fmt.Sprintf(
			"order %d created for customer %d: %d items, total %.2f",
			id.Int64(), order.CustomerID(), len(order.Details()), order.TotalAmount(),
		))
		if err := p.AuditLog().Insert(ctx, audit.Value()); err != nil {
			return result.Result[CreateOutput]{}, err
		}

		return result.Ok(CreateOutput{OrderID: id.Int64(), TotalAmount: order.TotalAmount()}), nil
	})
	if err != nil || out.IsFailure() {
		return out, err
	}

	// post-commit work stays outside the transactional boundary; a
	// publish failure must not undo a committed order
	uc.OrderCreated.SetPayload(out.Value())
	if dispatchErr := uc.EventDispatcher.Dispatch(ctx, uc.OrderCreated); dispatchErr != nil {
		uc.Logger.Warn(ctx, "order created event not published",
			logger.Any("order_id", out.Value().OrderID),
			logger.WithError(dispatchErr),
		)
	}

	return out, nil
}
