package event

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/DioGolang/StockFlow/pkg/logger"
)

type RedisIdempotencyStore interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
	Del(ctx context.Context, key string) error
}

// WrapIdempotency drops redelivered events by claiming a per-event key
// in Redis before running next. Fail closed: if Redis is unreachable
// the delivery is nacked rather than risk a duplicate side effect.
func WrapIdempotency(
	log logger.Logger,
	store RedisIdempotencyStore,
	handlerName string,
	ttl time.Duration,
	next MessageHandler,
) MessageHandler {

	return func(ctx context.Context, msg []byte, headers map[string]interface{}) error {

		var eventID string
		if v, ok := headers["x-event-id"]; ok {
			eventID = fmt.Sprintf("%v", v)
		}
		if eventID == "" {
			hash := sha256.Sum256(msg)
			eventID = fmt.Sprintf("hash:%x", hash)
		}

		key := fmt.Sprintf("dedup:%s:%s", handlerName, eventID)

		saved, err := store.SetNX(ctx, key, "processing", ttl)
		if err != nil {
			log.Error(ctx, "Redis unavailable for idempotency check",
				logger.WithError(err))
			return fmt.Errorf("idempotency store unavailable: %w", err)
		}

		if !saved {
			log.Info(ctx, "Duplicate event dropped by idempotency guard",
				logger.String("handler", handlerName),
				logger.String("event_id", eventID),
			)
			return nil
		}

		err = next(ctx, msg, headers)
		if err != nil {
			// Release the key so a redelivery can be reprocessed.
			log.Warn(ctx, "Handler logic failed, releasing idempotency lock",
				logger.String("key", key),
				logger.WithError(err),
			)
			if delErr := store.Del(ctx, key); delErr != nil {
				log.Error(ctx, "Failed to release idempotency lock",
					logger.String("key", key),
					logger.WithError(delErr),
				)
			}
		}

		return err
	}
}
