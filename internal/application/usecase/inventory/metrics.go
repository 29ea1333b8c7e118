package inventory

import (
	"context"
	"time"

	"github.com/DioGolang/StockFlow/pkg/metrics"
	"github.com/DioGolang/StockFlow/pkg/result"
)

type CreateMetricsDecorator struct {
	Next    CreateUseCase
	Metrics metrics.Metrics
}

func (d *CreateMetricsDecorator) Execute(ctx context.Context, input CreateInput) (result.Result[Output], error) {
	start := time.Now()
	out, err := d.Next.Execute(ctx, input)
	d.Metrics.RecordUseCaseExecution("CreateInventory", err == nil && out.IsSuccess(), time.Since(start))
	return out, err
}

type UpdateMetricsDecorator struct {
	Next    UpdateUseCase
	Metrics metrics.Metrics
}

func (d *UpdateMetricsDecorator) Execute(ctx context.Context, input UpdateInput) (result.Result[Output], error) {
	start := time.Now()
	out, err := d.Next.Execute(ctx, input)
	d.Metrics.RecordUseCaseExecution("UpdateInventory", err == nil && out.IsSuccess(), time.Since(start))
	return out, err
}

type DeleteMetricsDecorator struct {
	Next    DeleteUseCase
	Metrics metrics.Metrics
}

func (d *DeleteMetricsDecorator) Execute(ctx context.Context, input DeleteInput) (result.Result[result.Unit], error) {
	start := time.Now()
	out, err := d.Next.Execute(ctx, input)
	d.Metrics.RecordUseCaseExecution("DeleteInventory", err == nil && out.IsSuccess(), time.Since(start))
	return out, err
}
