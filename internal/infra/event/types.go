package event

import "context"

// ExchangeName and routing keys for domain events.
const (
	Exchange        = "amq.direct"
	OrderCreatedKey = "orders.created"
)

type MessageHandler func(ctx context.Context, msg []byte, headers map[string]interface{}) error
