package order

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

func (d *CreateMetricsDecorator) Execute(ctx context.Context, input CreateInput) (result.Result[CreateOutput], error) {
	start := time.Now()
	out, err := d.Next.Execute(ctx, input)
	success := err == nil && out.IsSuccess()
	d.Metrics.RecordUseCaseExecution("CreateOrder", success, time.Since(start))
	if success {
		d.Metrics.RecordOrderCreated("success")
	} else {
		d.Metrics.RecordOrderCreated("failure")
	}
	return out, err
}
