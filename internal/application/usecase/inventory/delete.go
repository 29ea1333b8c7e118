package inventory

import (
	"context"
	"fmt"

	"github.com/DioGolang/StockFlow/internal/application/port/outbound"
	"github.com/DioGolang/StockFlow/internal/domain/entity"
	"github.com/DioGolang/StockFlow/pkg/result"
)

type DeleteUseCaseImpl struct {
	Uow outbound.UnitOfWork
}

func NewDeleteUseCase(uow outbound.UnitOfWork) *DeleteUseCaseImpl {
	return &DeleteUseCaseImpl{Uow: uow}
}

func (uc *DeleteUseCaseImpl) Execute(ctx context.Context, input DeleteInput) (result.Result[result.Unit], error) {
	idRes := entity.NewProductID(input.ProductID)
	if idRes.IsFailure() {
		return result.ErrOf[result.Unit](idRes), nil
	}

	return outbound.Execute(ctx, uc.Uow, func(p outbound.RepositoryProvider) (result.Result[result.Unit], error) {
		inv, err := p.Inventory().GetByID(ctx, idRes.Value())
		if err != nil {
			return result.Result[result.Unit]{}, err
		}
		if inv == nil {
			return result.Err[result.Unit](result.NotFoundf("product %d not found", input.ProductID)), nil
		}

		if err := p.Inventory().Delete(ctx, idRes.Value()); err != nil {
			return result.Result[result.Unit]{}, err
		}

		audit := entity.NewAuditLogRecord("INVENTORY_DELETED", fmt.Sprintf(
			"product %d (%s) deleted", inv.ID().Int64(), inv.Name(),
		))
		if err := p.AuditLog().Insert(ctx, audit.Value()); err != nil {
			return result.Result[result.Unit]{}, err
		}

		return result.Empty(), nil
	})
}
