package inventory

import (
	"context"

	"github.com/DioGolang/StockFlow/pkg/result"
)

type CreateUseCase interface {
	Execute(ctx context.Context, input CreateInput) (result.Result[Output], error)
}

type UpdateUseCase interface {
	Execute(ctx context.Context, input UpdateInput) (result.Result[Output], error)
}

type DeleteUseCase interface {
	Execute(ctx context.Context, input DeleteInput) (result.Result[result.Unit], error)
}

type GetUseCase interface {
	Execute(ctx context.Context, input GetInput) (result.Result[Output], error)
}

type ListUseCase interface {
	Execute(ctx context.Context) (result.Result[[]Output], error)
}
