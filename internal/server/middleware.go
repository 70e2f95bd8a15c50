package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Render outcome labels.
const (
	kindDocument    = "document"
	kindCertificate = "certificate"

	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

// Prometheus metrics for monitoring HTTP requests and render outcomes.
var (
	requestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docforge_http_requests_total",
			Help: "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "docforge_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	renderCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docforge_renders_total",
			Help: "PDF render attempts by document kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)
)

// loggingMiddleware logs request details and collects request metrics.
func (h *Handler) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap ResponseWriter to capture the status code actually returned
		wrapped := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)

		h.logger.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration", duration,
		)

		path := r.URL.Path
		if path == "" {
			path = "/"
		}
		requestCount.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.status)).Inc()
		requestDuration.WithLabelValues(r.Method, path).Observe(duration.Seconds())
	})
}

// statusRecorder wraps http.ResponseWriter to capture the HTTP status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}
