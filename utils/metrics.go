package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of active HTTP requests",
		},
	)

	// Database Metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "collection"},
	)

	// Notes Metrics
	NotesOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notes_operations_total",
			Help: "Total number of note operations",
		},
		[]string{"operation"}, // create, update, delete, restore
	)

	// Change feed metrics
	FeedEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_events_total",
			Help: "Total number of change feed events published",
		},
		[]string{"type"}, // insert, update, delete
	)

	FeedSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "feed_subscribers",
			Help: "Current number of open change feed subscriptions",
		},
	)

	// AI proxy metrics
	AIProxyCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_proxy_calls_total",
			Help: "Total number of AI proxy calls",
		},
		[]string{"capability", "outcome"},
	)

	// File storage metrics
	FileUploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "file_uploads_total",
			Help: "Total number of file uploads",
		},
		[]string{"outcome"}, // ok, rejected, failed
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by type",
		},
		[]string{"type"},
	)
)

// TrackDBOperation tracks database operation duration
func TrackDBOperation(operation, collection string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, collection))
}

// TrackNoteOperation increments the notes operation counter
func TrackNoteOperation(operation string) {
	NotesOperationsTotal.WithLabelValues(operation).Inc()
}

// TrackFeedEvent increments the feed event counter
func TrackFeedEvent(eventType string) {
	FeedEventsTotal.WithLabelValues(eventType).Inc()
}

// TrackAICall records an AI proxy call outcome
func TrackAICall(capability, outcome string) {
	AIProxyCalls.WithLabelValues(capability, outcome).Inc()
}

// TrackFileUpload records a file upload outcome
func TrackFileUpload(outcome string) {
	FileUploadsTotal.WithLabelValues(outcome).Inc()
}

// TrackError increments the error counter by type
func TrackError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}
