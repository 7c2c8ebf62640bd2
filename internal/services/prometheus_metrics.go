package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	SearchOutcomeSuccess = "success"
	SearchOutcomeInvalid = "invalid"
	SearchOutcomeError   = "error"

	SearchSourceForm    = "form"
	SearchSourceSaved   = "saved"
	SearchSourceSession = "session"
)

type PrometheusMetrics struct {
	searchRequests        *prometheus.CounterVec
	searchDuration        *prometheus.HistogramVec
	searchResults         *prometheus.HistogramVec
	savedSearchOperations *prometheus.CounterVec
}

// NewPrometheusMetrics registers the search metrics with reg. Pass
// prometheus.DefaultRegisterer to expose them on /metrics.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		searchRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_search_requests_total",
				Help: "Total number of transaction searches by source and outcome",
			},
			[]string{"source", "outcome"},
		),
		searchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "transaction_search_duration_milliseconds",
				Help:    "Transaction search duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"source"},
		),
		searchResults: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "transaction_search_matches",
				Help:    "Number of transactions matched per search",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"source"},
		),
		savedSearchOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "saved_search_operations_total",
				Help: "Total number of saved search operations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
	}
}

func (m *PrometheusMetrics) RecordSearch(source, outcome string, duration time.Duration) {
	m.searchRequests.WithLabelValues(source, outcome).Inc()
	m.searchDuration.WithLabelValues(source).Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordSearchResults(source string, total int64) {
	m.searchResults.WithLabelValues(source).Observe(float64(total))
}

func (m *PrometheusMetrics) RecordSavedSearchOperation(operation, outcome string) {
	m.savedSearchOperations.WithLabelValues(operation, outcome).Inc()
}
