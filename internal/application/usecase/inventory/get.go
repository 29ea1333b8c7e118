package inventory

import (
	"context"

	"github.com/DioGolang/StockFlow/internal/application/port/outbound"
	"github.com/DioGolang/StockFlow/internal/domain/entity"
	"github.com/DioGolang/StockFlow/pkg/result"
)

// Read paths run against the plain connection, no transaction.

type GetUseCaseImpl struct {
	InventoryRepository outbound.InventoryRepository
}

func NewGetUseCase(repo outbound.InventoryRepository) *GetUseCaseImpl {
	return &GetUseCaseImpl{InventoryRepository: repo}
}

func (uc *GetUseCaseImpl) Execute(ctx context.Context, input GetInput) (result.Result[Output], error) {
	idRes := entity.NewProductID(input.ProductID)
	if idRes.IsFailure() {
		return result.ErrOf[Output](idRes), nil
	}

	inv, err := uc.InventoryRepository.GetByID(ctx, idRes.Value())
	if err != nil {
		return result.Result[Output]{}, err
	}
	if inv == nil {
		return result.Err[Output](result.NotFoundf("product %d not found", input.ProductID)), nil
	}
	return result.Ok(toOutput(inv)), nil
}

type ListUseCaseImpl struct {
	InventoryRepository outbound.InventoryRepository
}

func NewListUseCase(repo outbound.InventoryRepository) *ListUseCaseImpl {
	return &ListUseCaseImpl{InventoryRepository: repo}
}

func (uc *ListUseCaseImpl) Execute(ctx context.Context) (result.Result[[]Output], error) {
	all, err := uc.InventoryRepository.GetAll(ctx)
	if err != nil {
		return result.Result[[]Output]{}, err
	}
	out := make([]Output, 0, len(all))
	for _, inv := range all {
		out = append(out, toOutput(inv))
	}
	return result.Ok(out), nil
}

func toOutput(inv *entity.Inventory) Output {
	return Output{
		ProductID:   inv.ID().Int64(),
		ProductName: inv.Name(),
		Stock:       inv.Stock(),
		UnitPrice:   inv.UnitPrice(),
	}
}
