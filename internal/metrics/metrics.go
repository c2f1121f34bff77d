package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring the application.
// It includes a counter of directory operations by outcome, a gauge with the
// current number of records, histograms for search latency and result size,
// and request counters for the HTTP API.
type Metrics struct {
	Operations      *prometheus.CounterVec
	Records         prometheus.Gauge
	SearchDuration  prometheus.Histogram
	SearchResults   prometheus.Histogram
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	ValidationFails prometheus.Counter
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		Operations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hestia_directory_operations_total",
			Help: "Total directory operations by kind and outcome.",
		}, []string{"operation", "status"}), // operation: 'search', 'append', 'remove', 'move'
		Records: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "hestia_directory_records",
			Help: "Number of employee records currently held in the directory.",
		}),
		SearchDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "hestia_search_duration_seconds",
			Help:    "Duration of directory searches.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		SearchResults: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "hestia_search_results",
			Help:    "Number of records returned by a search.",
			Buckets: prometheus.LinearBuckets(0, 5, 10),
		}),
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hestia_http_requests_total",
			Help: "Total HTTP API requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		HTTPDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hestia_http_request_duration_seconds",
			Help:    "Duration of HTTP API requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ValidationFails: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "hestia_entry_validation_failures_total",
			Help: "Total employee entries rejected because a field was empty.",
		}),
	}

	for _, op := range []string{"search", "append", "remove", "move"} {
		metrics.Operations.WithLabelValues(op, "success")
	}
	metrics.Operations.WithLabelValues("remove", "failure")
	metrics.Operations.WithLabelValues("move", "failure")

	return metrics
}
