package order

import (
	"context"

	"github.com/DioGolang/StockFlow/pkg/result"
)

type CreateUseCase interface {
	Execute(ctx context.Context, input CreateInput) (result.Result[CreateOutput], error)
}

type GetUseCase interface {
	Execute(ctx context.Context, input GetInput) (result.Result[GetOutput], error)
}
