package event

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/DioGolang/StockFlow/internal/application/usecase/order"
	"github.com/DioGolang/StockFlow/pkg/logger"
)

// NewOrderCreatedHandler returns the worker-side handler for
// orders.created notifications. The order is already committed by the
// time the event is published, so all this does is acknowledge it out
// of band (notification log); it must never touch the sales transaction.
func NewOrderCreatedHandler(l logger.Logger) MessageHandler {
	return func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
		var out order.CreateOutput
		if err := json.Unmarshal(msg, &out); err != nil {
			return fmt.Errorf("decode order created payload: %w", err)
		}

		if out.OrderID <= 0 {
			return fmt.Errorf("order created payload missing order_id")
		}

		span := trace.SpanFromContext(ctx)
		span.SetAttributes(attribute.Int64("order.id", out.OrderID))

		l.Info(ctx, "Order notification processed",
			logger.Int64("order_id", out.OrderID),
			logger.Float64("total_amount", out.TotalAmount),
		)
		return nil
	}
}
