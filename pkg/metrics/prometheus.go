package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Prometheus struct {
	orderCreated    *prometheus.CounterVec
	useCaseTotal    *prometheus.CounterVec
	useCaseDuration *prometheus.HistogramVec
	httpDuration    *prometheus.HistogramVec
	eventsPublished *prometheus.CounterVec
	eventsConsumed  *prometheus.CounterVec
}

func NewPrometheusMetrics(reg prometheus.Registerer, serviceName string) *Prometheus {
	m := &Prometheus{
		orderCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "stockflow_order_created_total",
			Help:        "Total orders created.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
		useCaseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_usecase_total",
			Help:        "Total number of Use Case executions.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"use_case", "status"}),
		useCaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_usecase_duration_seconds",
			Help:        "Use Case execution latency.",
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"use_case", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_http_duration_seconds",
			Help:        "Duration of HTTP requests.",
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"method", "path", "status_code"}),
		eventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_events_published_total",
			Help:        "Total domain events published.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
		eventsConsumed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_events_consumed_total",
			Help:        "Total domain events consumed.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
	}

	reg.MustRegister(
		m.orderCreated,
		m.useCaseTotal,
		m.useCaseDuration,
		m.httpDuration,
		m.eventsPublished,
		m.eventsConsumed,
	)
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

func (p *Prometheus) RecordOrderCreated(status string) {
	p.orderCreated.WithLabelValues(status).Inc()
}

func (p *Prometheus) RecordUseCaseExecution(useCase string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	p.useCaseTotal.WithLabelValues(useCase, status).Inc()
	p.useCaseDuration.WithLabelValues(useCase, status).Observe(duration.Seconds())
}

func (p *Prometheus) ObserveHTTPRequestDuration(method, path, code string, duration float64) {
	p.httpDuration.WithLabelValues(method, path, code).Observe(duration)
}

func (p *Prometheus) IncEventsPublished(status string) {
	p.eventsPublished.WithLabelValues(status).Inc()
}

func (p *Prometheus) IncEventsConsumed(status string) {
	p.eventsConsumed.WithLabelValues(status).Inc()
}
