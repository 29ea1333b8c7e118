package inventory

import (
	"context"
	"fmt"

	"github.com/DioGolang/StockFlow/internal/application/port/outbound"
	"github.com/DioGolang/StockFlow/internal/domain/entity"
	"github.com/DioGolang/StockFlow/pkg/result"
)

type CreateUseCaseImpl struct {
	Uow outbound.UnitOfWork
}

func NewCreateUseCase(uow outbound.UnitOfWork) *CreateUseCaseImpl {
	return &CreateUseCaseImpl{Uow: uow}
}

func (uc *CreateUseCaseImpl) Execute(ctx context.Context, input CreateInput) (result.Result[Output], error) {
	invRes := entity.NewInventory(input.ProductName, input.Stock, input.UnitPrice)
	if invRes.IsFailure() {
		return result.ErrOf[Output](invRes), nil
	}
	inv := invRes.Value()

	return outbound.Execute(ctx, uc.Uow, func(p outbound.RepositoryProvider) (result.Result[Output], error) {
		id, err := p.Inventory().Create(ctx, inv)
		if err != nil {
			return result.Result[Output]{}, err
		}

		audit := entity.NewAuditLogRecord("INVENTORY_CREATED", fmt.Sprintf(
			"product %d (%s) created with stock %d at %.2f",
			id.Int64(), inv.Name(), inv.Stock(), inv.UnitPrice(),
		))
		if err := p.AuditLog().Insert(ctx, audit.Value()); err != nil {
			return result.Result[Output]{}, err
		}

		return result.Ok(Output{
			ProductID:   id.Int64(),
			ProductName: inv.Name(),
			Stock:       inv.Stock(),
			UnitPrice:   inv.UnitPrice(),
		}), nil
	})
}
