package metrics

import "time"

type Metrics interface {
	// Business
	RecordOrderCreated(status string)
	RecordUseCaseExecution(useCaseName string, success bool, duration time.Duration)

	// Infrastructure
	ObserveHTTPRequestDuration(method, path, statusCode string, duration float64)
	IncEventsPublished(status string)
	IncEventsConsumed(status string)
}
