// Package metrics provides Prometheus metrics for the analysis API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "analysis"
)

// HTTP metrics
var (
	// HTTPRequestsTotal counts HTTP requests by method, route pattern, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration tracks HTTP request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	// HTTPRequestsInFlight tracks concurrent HTTP requests.
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)
)

// Domain metrics
var (
	// RecordsMutatedTotal counts successful writes by resource and operation.
	RecordsMutatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_mutated_total",
			Help:      "Total records created, updated or deleted",
		},
		[]string{"resource", "op"},
	)

	// ReferentialWarningsTotal counts deletes that removed or detached dependent records.
	ReferentialWarningsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "referential_warnings_total",
			Help:      "Deletes that affected dependent records",
		},
		[]string{"resource"},
	)
)

// Mutation operations
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// RecordMutation increments the mutation counter for resource and op
func RecordMutation(resource, op string) {
	RecordsMutatedTotal.WithLabelValues(resource, op).Inc()
}

// RecordReferentialWarning increments the referential warning counter for resource
func RecordReferentialWarning(resource string) {
	ReferentialWarningsTotal.WithLabelValues(resource).Inc()
}
