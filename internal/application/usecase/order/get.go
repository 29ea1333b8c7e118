package order

import (
	"context"

	"github.com/DioGolang/StockFlow/internal/application/port/outbound"
	"github.com/DioGolang/StockFlow/internal/domain/entity"
	"github.com/DioGolang/StockFlow/pkg/result"
)

// GetUseCaseImpl is a read path; it runs against the plain connection
// with no transaction.
type GetUseCaseImpl struct {
	OrderRepository outbound.OrderRepository
}

func NewGetUseCase(repo outbound.OrderRepository) *GetUseCaseImpl {
	return &GetUseCaseImpl{OrderRepository: repo}
}

func (uc *GetUseCaseImpl) Execute(ctx context.Context, input GetInput) (result.Result[GetOutput], error) {
	idRes := entity.NewOrderID(input.OrderID)
	if idRes.IsFailure() {
		return result.ErrOf[GetOutput](idRes), nil
	}

	order, err := uc.OrderRepository.GetByID(ctx, idRes.Value())
	if err != nil {
		return result.Result[GetOutput]{}, err
	}
	if order == nil {
		return result.Err[GetOutput](result.NotFoundf("order %d not found", input.OrderID)), nil
	}

	details := order.Details()
	out := GetOutput{
		OrderID:     order.ID().Int64(),
		CustomerID:  order.CustomerID(),
		CreatedAt:   order.CreatedAt(),
		Details:     make([]DetailOutput, 0, len(details)),
		TotalAmount: order.TotalAmount(),
	}
	for _, d := range details {
		out.Details = append(out.Details, DetailOutput{
			ProductID: d.ProductID().Int64(),
			Quantity:  d.Quantity(),
			UnitPrice: d.UnitPrice(),
			SubTotal:  d.SubTotal(),
		})
	}
	return result.Ok(out), nil
}
