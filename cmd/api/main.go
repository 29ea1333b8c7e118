package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/riandyrn/otelchi"

	"github.com/DioGolang/StockFlow/configs"
	auditusecase "github.com/DioGolang/StockFlow/internal/application/usecase/audit"
	"github.com/DioGolang/StockFlow/internal/application/usecase/inventory"
	"github.com/DioGolang/StockFlow/internal/application/usecase/order"
	"github.com/DioGolang/StockFlow/internal/infra/database"
	"github.com/DioGolang/StockFlow/internal/infra/event"
	"github.com/DioGolang/StockFlow/internal/infra/web/handler"
	"github.com/DioGolang/StockFlow/internal/infra/web/middleware"
	"github.com/DioGolang/StockFlow/pkg/events"
	"github.com/DioGolang/StockFlow/pkg/logger"
	"github.com/DioGolang/StockFlow/pkg/metrics"
	"github.com/DioGolang/StockFlow/pkg/otel"
)

const serviceName = "stockflow-api"

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

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	db, err := sql.Open(config.DBDriver, dsn)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err = db.PingContext(ctx); err != nil {
		panic(err)
	}
	if err = database.Migrate(ctx, db); err != nil {
		panic(err)
	}

	amqpConn, err := amqp.Dial(config.AMQPURL)
	if err != nil {
		panic(err)
	}
	defer amqpConn.Close()

	amqpCh, err := amqpConn.Channel()
	if err != nil {
		panic(err)
	}
	defer amqpCh.Close()

	registry := prometheus.NewRegistry()
	m := metrics.NewPrometheusMetrics(registry, serviceName)

	dispatcher := event.NewDispatcher(amqpCh, m)

	uow := database.NewUnitOfWork(db)
	inventoryRepo := database.NewInventoryRepository(db)
	orderRepo := database.NewOrderRepository(db)
	auditRepo := database.NewAuditLogRepository(db)

	createOrder := order.CreateUseCase(&order.CreateMetricsDecorator{
		Next:    order.NewCreateUseCase(uow, events.NewBaseEvent(event.OrderCreatedKey), dispatcher, log),
		Metrics: m,
	})
	getOrder := order.NewGetUseCase(orderRepo)

	createInventory := inventory.CreateUseCase(&inventory.CreateMetricsDecorator{
		Next:    inventory.NewCreateUseCase(uow),
		Metrics: m,
	})
	updateInventory := inventory.UpdateUseCase(&inventory.UpdateMetricsDecorator{
		Next:    inventory.NewUpdateUseCase(uow),
		Metrics: m,
	})
	deleteInventory := inventory.DeleteUseCase(&inventory.DeleteMetricsDecorator{
		Next:    inventory.NewDeleteUseCase(uow),
		Metrics: m,
	})
	getInventory := inventory.NewGetUseCase(inventoryRepo)
	listInventory := inventory.NewListUseCase(inventoryRepo)

	listAudit := auditusecase.NewListUseCase(auditRepo)

	inventoryHandler := handler.NewInventoryHandler(createInventory, updateInventory, deleteInventory, getInventory, listInventory)
	orderHandler := handler.NewOrderHandler(createOrder, getOrder)
	auditHandler := handler.NewAuditHandler(listAudit)

	limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: config.RateLimitRPS,
		Burst:             config.RateLimitBurst,
		CleanupInterval:   time.Minute,
		ClientTimeout:     3 * time.Minute,
	})

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.MetricsWrapper(m))
	r.Use(limiter.Handler(log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/inventory", inventoryHandler.Create)
		r.Get("/inventory", inventoryHandler.List)
		r.Get("/inventory/{id}", inventoryHandler.Get)
		r.Put("/inventory/{id}", inventoryHandler.Update)
		r.Delete("/inventory/{id}", inventoryHandler.Delete)

		r.Post("/orders", orderHandler.Create)
		r.Get("/orders/{id}", orderHandler.Get)

		r.Get("/audit", auditHandler.List)
	})

	r.Handle("/healthz", handler.NewHealthHandler(serviceName,
		handler.WithPostgres(db),
		handler.WithRabbitMQ(config.AMQPURL),
	))
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              ":" + config.WebServerPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info(ctx, "Server running", logger.String("port", config.WebServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "Server failed", logger.WithError(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Graceful shutdown failed", logger.WithError(err))
		os.Exit(1)
	}
	log.Info(shutdownCtx, "Server stopped")
}
