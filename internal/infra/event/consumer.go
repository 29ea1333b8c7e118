package event

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/DioGolang/StockFlow/pkg/logger"
	carrier "github.com/DioGolang/StockFlow/pkg/otel"
)

// Consumer drains order notifications from RabbitMQ and feeds each
// delivery through a MessageHandler pipeline (idempotency, circuit
// breaker, then the real handler). A failed handler nacks without
// requeue; redeliveries are dealt with by the broker's DLX policy.
type Consumer struct {
	Conn    *amqp.Connection
	Handler MessageHandler
	Logger  logger.Logger
}

func NewConsumer(conn *amqp.Connection, handler MessageHandler, l logger.Logger) *Consumer {
	return &Consumer{
		Conn:    conn,
		Handler: handler,
		Logger:  l,
	}
}

// Start blocks consuming queueName until ctx is cancelled or the
// delivery channel closes.
func (c *Consumer) Start(ctx context.Context, queueName string) error {
	ch, err := c.Conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := c.setupTopology(ch, queueName); err != nil {
		return fmt.Errorf("error when configuring topology: %w", err)
	}

	msgs, err := ch.Consume(
		queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	c.Logger.Info(ctx, "[*] Waiting for messages. To exit press CTRL+C",
		logger.String("queue", queueName),
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			c.handleDelivery(queueName, d)
		}
	}
}

func (c *Consumer) handleDelivery(queueName string, d amqp.Delivery) {
	amqpCarrier := carrier.AMQPHeadersCarrier(d.Headers)
	ctx := otel.GetTextMapPropagator().Extract(context.Background(), amqpCarrier)

	tracer := otel.GetTracerProvider().Tracer("worker-tracer")
	ctx, span := tracer.Start(ctx, "ProcessOrderCreated", trace.WithAttributes(
		attribute.String("queue.name", queueName),
		attribute.String("messaging.message_id", d.MessageId),
	))
	defer span.End()

	c.Logger.Info(ctx, "Received message from queue",
		logger.String("queue", queueName),
	)

	if err := c.Handler(ctx, d.Body, d.Headers); err != nil {
		c.Logger.Error(ctx, "Handler failed, discarding delivery", logger.WithError(err))
		span.RecordError(err)
		_ = d.Nack(false, false)
		return
	}

	_ = d.Ack(false)
}

func (c *Consumer) setupTopology(ch *amqp.Channel, queueName string) error {
	_, err := ch.QueueDeclare(
		queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}
	return ch.QueueBind(queueName, OrderCreatedKey, Exchange, false, nil)
}
