package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker"
	"golang.org/x/sync/errgroup"

	"github.com/DioGolang/StockFlow/configs"
	"github.com/DioGolang/StockFlow/internal/infra/event"
	"github.com/DioGolang/StockFlow/internal/infra/storage"
	"github.com/DioGolang/StockFlow/pkg/logger"
	"github.com/DioGolang/StockFlow/pkg/metrics"
	"github.com/DioGolang/StockFlow/pkg/otel"
)

const (
	serviceName    = "stockflow-worker"
	queueName      = "orders.created"
	handlerName    = "OrderCreatedNotification"
	handlerTimeout = 5 * time.Second
	dedupeTTL      = 24 * time.Hour
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	config, err := configs.LoadConfig(".")
	if err != nil {
		panic(err)
	}

	log := logger.NewLogger(serviceName, config.IsProd())

	shutdownTracer, err := otel.InitProvider(ctx, serviceName, config.OtelCollector)
	if err != nil {
		log.Warn(ctx, "Tracing disabled, collector unreachable", logger.WithError(err))
	} else {
		defer shutdownTracer()
	}

	conn, err := amqp.Dial(config.AMQPURL)
	if err != nil {
		panic(err)
	}
	defer conn.Close()

	redisStore, err := storage.Connect(ctx, config.RedisHost+":"+config.RedisPort, "", 0)
	if err != nil {
		panic(err)
	}
	defer redisStore.Close()

	registry := prometheus.NewRegistry()
	m := metrics.NewPrometheusMetrics(registry, serviceName)

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    handlerName,
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	handler := event.NewOrderCreatedHandler(log)
	handler = event.WrapResilientConsumer(m, handlerName, handlerTimeout, cb, handler)
	handler = event.WrapIdempotency(log, redisStore, handlerName, dedupeTTL, handler)

	consumer := event.NewConsumer(conn, handler, log)

	metricsSrv := &http.Server{
		Addr:              ":9091",
		Handler:           promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return consumer.Start(gCtx, queueName)
	})

	g.Go(func() error {
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return metricsSrv.Shutdown(shutdownCtx)
	})

	log.Info(ctx, "Worker started", logger.String("queue", queueName))

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error(context.Background(), "Worker stopped with error", logger.WithError(err))
		return
	}
	log.Info(context.Background(), "Worker stopped")
}
