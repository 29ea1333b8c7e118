package inventory

import (
	"context"
	"fmt"

	"github.com/DioGolang/StockFlow/internal/application/port/outbound"
	"github.com/DioGolang/StockFlow/internal/domain/entity"
	"github.com/DioGolang/StockFlow/pkg/result"
)

type UpdateUseCaseImpl struct {
	Uow outbound.UnitOfWork
}

func NewUpdateUseCase(uow outbound.UnitOfWork) *UpdateUseCaseImpl {
	return &UpdateUseCaseImpl{Uow: uow}
}

func (uc *UpdateUseCaseImpl) Execute(ctx context.Context, input UpdateInput) (result.Result[Output], error) {
	idRes := entity.NewProductID(input.ProductID)
	if idRes.IsFailure() {
		return result.ErrOf[Output](idRes), nil
	}

	return outbound.Execute(ctx, uc.Uow, func(p outbound.RepositoryProvider) (result.Result[Output], error) {
		inv, err := p.Inventory().GetByID(ctx, idRes.Value())
		if err != nil {
			return result.Result[Output]{}, err
		}
		if inv == nil {
			return result.Err[Output](result.NotFoundf("product %d not found", input.ProductID)), nil
		}

		if res := inv.Update(input.ProductName, input.Stock, input.UnitPrice); res.IsFailure() {
			return result.ErrOf[Output](res), nil
		}
		if err := p.Inventory().Update(ctx, inv); err != nil {
			return result.Result[Output]{}, err
		}

		audit := entity.NewAuditLogRecord("INVENTORY_UPDATED", fmt.Sprintf(
			"product %d (%s) updated: stock %d, price %.2f",
			inv.ID().Int64(), inv.Name(), inv.Stock(), inv.UnitPrice(),
		))
		if err := p.AuditLog().Insert(ctx, audit.Value()); err != nil {
			return result.Result[Output]{}, err
		}

		return result.Ok(Output{
			ProductID:   inv.ID().Int64(),
			ProductName: inv.Name(),
			Stock:       inv.Stock(),
			UnitPrice:   inv.UnitPrice(),
		}), nil
	})
}
