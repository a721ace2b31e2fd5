package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter metrics
var (
	// Login counters
	LoginCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "farm_login_total",
			Help: "Total number of login attempts",
		},
	)

	// Registration counters
	RegisterCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "farm_register_total",
			Help: "Total number of user registrations",
		},
	)

	// HTTP request counter by endpoint and status
	HTTPRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "farm_http_requests_total",
			Help: "Total number of HTTP requests by endpoint and status",
		},
		[]string{"endpoint", "method", "status"},
	)

	// Error counters
	AuthErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "farm_auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"type"}, // type can be "invalid_token", "user_not_found", etc.
	)

	// Collection operation counter
	CollectionOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "farm_collection_operations_total",
			Help: "Total number of operations on farm record collections",
		},
		[]string{"collection", "operation"}, // operation is "list", "get", "create", "update", "delete"
	)

	// Dashboard snapshot counter
	DashboardSnapshotCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "farm_dashboard_snapshots_total",
			Help: "Total number of dashboard snapshot computations",
		},
	)

	// Dashboard query failure counter
	DashboardQueryFailureCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "farm_dashboard_query_failures_total",
			Help: "Total number of failed dashboard fan-out queries",
		},
		[]string{"query"},
	)

	// External API call counter
	ExternalAPICounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "farm_external_api_calls_total",
			Help: "Total number of outbound external API calls",
		},
		[]string{"provider", "outcome"}, // outcome is "success" or "error"
	)
)

// Histogram metrics
var (
	// Request duration
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "farm_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	// Database operation duration
	DBOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "farm_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // operation can be "query", "insert", "update", "delete"
	)

	// Dashboard snapshot duration
	DashboardSnapshotDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "farm_dashboard_snapshot_duration_seconds",
			Help:    "Duration of dashboard snapshot computations in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Gauge metrics
var (
	// System info
	InfoGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "farm_info",
			Help: "Information about the farm service",
		},
		[]string{"version"},
	)
)

func init() {
	// Register counters
	prometheus.MustRegister(LoginCounter)
	prometheus.MustRegister(RegisterCounter)
	prometheus.MustRegister(HTTPRequestCounter)
	prometheus.MustRegister(AuthErrorCounter)
	prometheus.MustRegister(CollectionOperationCounter)
	prometheus.MustRegister(DashboardSnapshotCounter)
	prometheus.MustRegister(DashboardQueryFailureCounter)
	prometheus.MustRegister(ExternalAPICounter)

	// Register histograms
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(DBOperationDuration)
	prometheus.MustRegister(DashboardSnapshotDuration)

	// Register gauges
	prometheus.MustRegister(InfoGauge)

	// Set initial service info
	InfoGauge.With(prometheus.Labels{"version": "1.0.0"}).Set(1)
}

// GetPrometheusHandler returns an HTTP handler for the Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}

// TrackDBOperation measures database operation durations
func TrackDBOperation(operation string) func(time.Time) {
	startTime := time.Now()
	return func(endTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DBOperationDuration.With(prometheus.Labels{
			"operation": operation,
		}).Observe(duration)
	}
}

// RecordAuthError records an authentication error by type
func RecordAuthError(errorType string) {
	AuthErrorCounter.With(prometheus.Labels{"type": errorType}).Inc()
}

// RecordCollectionOperation records a CRUD operation on a record collection
func RecordCollectionOperation(collection, operation string) {
	CollectionOperationCounter.With(prometheus.Labels{
		"collection": collection,
		"operation":  operation,
	}).Inc()
}

// RecordExternalAPICall records the outcome of an outbound API call
func RecordExternalAPICall(provider string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	ExternalAPICounter.With(prometheus.Labels{
		"provider": provider,
		"outcome":  outcome,
	}).Inc()
}

// MetricsMiddleware creates a middleware function that captures metrics for each request
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Execute the request handler
			err := next(c)

			// Record request duration
			duration := time.Since(start).Seconds()
			status := strconv.Itoa(c.Response().Status)
			endpoint := c.Path()
			method := c.Request().Method

			RequestDuration.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Observe(duration)

			HTTPRequestCounter.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Inc()

			return err
		}
	}
}
