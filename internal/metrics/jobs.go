package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// JobDescriptionMetrics tracks job description metrics
type JobDescriptionMetrics struct {
	created *prometheus.CounterVec
	total   prometheus.Gauge
}

// NewJobDescriptionMetrics initializes job description metrics with the collector
func NewJobDescriptionMetrics(collector *Collector) *JobDescriptionMetrics {
	return &JobDescriptionMetrics{
		created: collector.RegisterCounter(
			MetricJobDescriptionsCreated,
			"Total number of job descriptions created",
			[]string{LabelStatus},
		),
		total: collector.RegisterScalarGauge(
			MetricJobDescriptionsTotal,
			"Total number of job descriptions in the system",
		),
	}
}

// RecordCreated records a job description creation attempt
func (m *JobDescriptionMetrics) RecordCreated(success bool) {
	if m == nil {
		return
	}
	m.created.WithLabelValues(statusLabel(success)).Inc()
}

// SetJobDescriptionCount overwrites the total job description count gauge
func (m *JobDescriptionMetrics) SetJobDescriptionCount(count int64) {
	if m == nil {
		return
	}
	m.total.Set(float64(count))
}
