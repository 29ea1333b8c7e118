package event

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"github.com/DioGolang/StockFlow/pkg/metrics"
)

// WrapResilientConsumer bounds handler execution with a timeout and a
// circuit breaker and records the outcome.
func WrapResilientConsumer(
	m metrics.Metrics,
	handlerName string,
	timeout time.Duration,
	cb *gobreaker.CircuitBreaker,
	next MessageHandler,
) MessageHandler {
	return func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
		start := time.Now()

		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		_, err := cb.Execute(func() (interface{}, error) {
			return nil, next(ctx, msg, headers)
		})

		if errors.Is(err, gobreaker.ErrOpenState) {
			m.RecordUseCaseExecution(handlerName, false, time.Since(start))
			return err
		}

		success := err == nil
		m.RecordUseCaseExecution(handlerName, success, time.Since(start))
		if success {
			m.IncEventsConsumed("success")
		} else {
			m.IncEventsConsumed("failure")
		}

		return err
	}
}
