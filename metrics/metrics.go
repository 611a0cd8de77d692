// Package metrics exposes the Prometheus collectors for the metrics engine:
// view refresh counts and durations, per-view and per-entity row gauges, and
// HTTP request metrics for the API surface.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ViewRefreshCounter counts view refreshes by outcome
	ViewRefreshCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kpi_view_refresh_total",
			Help: "Total number of KPI view refreshes",
		},
		[]string{"view", "outcome"},
	)

	// ViewRefreshDurationHistogram records refresh duration in seconds
	ViewRefreshDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kpi_view_refresh_duration_seconds",
			Help:    "Duration of KPI view refreshes in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"view"},
	)

	// ViewRowsGauge tracks the row count of the latest refresh per view
	ViewRowsGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "kpi_view_rows",
			Help: "Rows produced by the latest refresh of each KPI view",
		},
		[]string{"view"},
	)

	// EntityRowsGauge tracks entity store row counts per table
	EntityRowsGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "entity_store_rows",
			Help: "Rows held in the entity store per table",
		},
		[]string{"entity"},
	)

	// RequestCounter counts all HTTP requests with labels
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	// RequestDurationHistogram records request duration in seconds
	RequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)
)

var registerOnce sync.Once

// Register registers all collectors with the default registry. Safe to call
// more than once; only the first call registers.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(ViewRefreshCounter)
		prometheus.MustRegister(ViewRefreshDurationHistogram)
		prometheus.MustRegister(ViewRowsGauge)
		prometheus.MustRegister(EntityRowsGauge)
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDurationHistogram)
	})
}

// ObserveViewRefresh records one refresh attempt for a view.
func ObserveViewRefresh(view string, took time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	ViewRefreshCounter.WithLabelValues(view, outcome).Inc()
	ViewRefreshDurationHistogram.WithLabelValues(view).Observe(took.Seconds())
}

// SetViewRows records the row count of a view's latest refresh.
func SetViewRows(view string, rows int) {
	ViewRowsGauge.WithLabelValues(view).Set(float64(rows))
}

// SetEntityRows records the entity store's current row counts.
func SetEntityRows(counts map[string]int) {
	for entity, n := range counts {
		EntityRowsGauge.WithLabelValues(entity).Set(float64(n))
	}
}

// HTTPMetrics holds configuration for HTTP metrics collection
type HTTPMetrics struct {
	ServiceName string
}

// NewHTTPMetrics creates a new HTTP metrics collector for a specific service
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	Register()
	return &HTTPMetrics{ServiceName: serviceName}
}

// Middleware creates a Fiber middleware function that records HTTP request metrics
func (m *HTTPMetrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		method := c.Method()
		path := c.Route().Path
		statusStr := strconv.Itoa(status)

		RequestCounter.WithLabelValues(m.ServiceName, method, path, statusStr).Inc()

		duration := time.Since(start).Seconds()
		RequestDurationHistogram.WithLabelValues(m.ServiceName, method, path, statusStr).Observe(duration)

		return err
	}
}

// GetPrometheusHandler returns an HTTP handler for exposing Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}
