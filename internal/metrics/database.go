package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DatabaseMetrics tracks document store operation metrics
type DatabaseMetrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewDatabaseMetrics initializes database metrics with the collector
func NewDatabaseMetrics(collector *Collector) *DatabaseMetrics {
	return &DatabaseMetrics{
		operations: collector.RegisterCounter(
			MetricDBOperations,
			"Total database operations",
			[]string{LabelCollection, LabelOperation},
		),
		duration: collector.RegisterHistogram(
			MetricDBOperationSeconds,
			"Database operation latency",
			[]string{LabelCollection, LabelOperation},
			[]float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		),
	}
}

// RecordOperation records one database operation against a logical collection.
// The operation counter and latency histogram are always updated together.
func (m *DatabaseMetrics) RecordOperation(collection, operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(collection, operation).Inc()
	m.duration.WithLabelValues(collection, operation).Observe(duration.Seconds())
}
