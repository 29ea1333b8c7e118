package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/DioGolang/StockFlow/pkg/metrics"
)

// Status code strings for 100-599 are pre-allocated to keep
// strconv.Itoa off the hot path.
var statusStrings [600]string

func init() {
	for i := 100; i < 600; i++ {
		statusStrings[i] = strconv.Itoa(i)
	}
}

func getStatusString(code int) string {
	if code >= 100 && code < 600 {
		return statusStrings[code]
	}
	return strconv.Itoa(code)
}

func MetricsWrapper(m metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				path := chi.RouteContext(r.Context()).RoutePattern()
				if path == "" {
					path = "unknown"
				}
				m.ObserveHTTPRequestDuration(r.Method, path, getStatusString(ww.Status()), time.Since(start).Seconds())
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
