// Package metrics provides Prometheus metrics for the Notion CMS MCP server.
// It tracks tool calls, content API latency and status codes, and batch sizes.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "notion_cms_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})

	// ContentAPILatency measures content API call latency by operation
	ContentAPILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "content_api_latency_seconds",
		Help:      "Content API call latency by operation",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	// ContentAPIRequestsTotal counts content API requests
	ContentAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "content_api_requests_total",
		Help:      "Total content API requests by operation and status",
	}, []string{"operation", "status"})

	// ContentAPIErrors counts content API errors by HTTP status code
	ContentAPIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "content_api_errors_total",
		Help:      "Content API errors by operation and HTTP status code (0 for transport errors)",
	}, []string{"operation", "status_code"})

	// BatchSize tracks how many slugs each batch fetch fans out to
	BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "batch_size",
		Help:      "Number of slugs per batch fetch",
		Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250},
	})

	// ContentSize tracks response body sizes
	ContentSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "content_size_bytes",
		Help:      "Response body size distribution in bytes",
		Buckets:   []float64{100, 1000, 10000, 50000, 100000, 250000, 500000, 1000000},
	}, []string{"operation"})
)

// RecordRequest records a completed tool call with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordAPICall records a content API call. statusCode is the HTTP status
// for error responses and 0 for transport failures; it is ignored on success.
func RecordAPICall(operation string, duration float64, success bool, statusCode int) {
	status := "success"
	if !success {
		status = "error"
	}
	ContentAPIRequestsTotal.WithLabelValues(operation, status).Inc()
	ContentAPILatency.WithLabelValues(operation).Observe(duration)
	if !success {
		ContentAPIErrors.WithLabelValues(operation, strconv.Itoa(statusCode)).Inc()
	}
}

// RecordBatch records the fan-out width of a batch fetch
func RecordBatch(size int) {
	BatchSize.Observe(float64(size))
}

// RecordContentSize records the size of a response body
func RecordContentSize(operation string, bytes int) {
	ContentSize.WithLabelValues(operation).Observe(float64(bytes))
}
