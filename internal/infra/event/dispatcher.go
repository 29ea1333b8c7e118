package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"

	"github.com/DioGolang/StockFlow/pkg/events"
	"github.com/DioGolang/StockFlow/pkg/metrics"
	carrier "github.com/DioGolang/StockFlow/pkg/otel"
)

// Dispatcher publishes domain events to RabbitMQ. It runs only after
// the owning transaction has committed; the Unit of Work never holds a
// transaction open across a publish.
type Dispatcher struct {
	RabbitMQChannel *amqp.Channel
	Metrics         metrics.Metrics
}

func NewDispatcher(ch *amqp.Channel, m metrics.Metrics) *Dispatcher {
	return &Dispatcher{RabbitMQChannel: ch, Metrics: m}
}

func (ed *Dispatcher) Dispatch(ctx context.Context, event events.Event) error {
	headers := make(amqp.Table)
	headers["x-event-id"] = uuid.New().String()
	otel.GetTextMapPropagator().Inject(ctx, carrier.AMQPHeadersCarrier(headers))

	payload, err := json.Marshal(event.GetPayload())
	if err != nil {
		return err
	}

	err = ed.RabbitMQChannel.PublishWithContext(
		ctx,
		Exchange,
		event.GetName(),
		false,
		false,
		amqp.Publishing{
			Headers:     headers,
			ContentType: "application/json",
			Timestamp:   time.Now(),
			Body:        payload,
		})
	if ed.Metrics != nil {
		if err != nil {
			ed.Metrics.IncEventsPublished("failure")
		} else {
			ed.Metrics.IncEventsPublished("success")
		}
	}
	return err
}

func (ed *Dispatcher) Register(eventName string, handler events.EventHandler) error { return nil }
func (ed *Dispatcher) Remove(eventName string, handler events.EventHandler) error   { return nil }
func (ed *Dispatcher) Has(eventName string, handler events.EventHandler) bool       { return false }
func (ed *Dispatcher) Clear()                                                       {}
