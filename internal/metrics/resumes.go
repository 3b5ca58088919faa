package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ResumeMetrics tracks resume upload and parsing metrics
type ResumeMetrics struct {
	uploads       *prometheus.CounterVec
	parseDuration *prometheus.HistogramVec
	resumesTotal  prometheus.Gauge
}

// NewResumeMetrics initializes resume metrics with the collector
func NewResumeMetrics(collector *Collector) *ResumeMetrics {
	return &ResumeMetrics{
		uploads: collector.RegisterCounter(
			MetricResumeUploads,
			"Total number of resumes uploaded",
			[]string{LabelStatus, LabelFileType},
		),
		parseDuration: collector.RegisterHistogram(
			MetricResumeParseSeconds,
			"Time spent parsing resume files",
			[]string{LabelFileType},
			[]float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
		),
		resumesTotal: collector.RegisterScalarGauge(
			MetricResumesTotal,
			"Total number of resumes in the system",
		),
	}
}

// RecordUpload records a resume upload attempt
func (m *ResumeMetrics) RecordUpload(success bool, fileType string) {
	if m == nil {
		return
	}
	m.uploads.WithLabelValues(statusLabel(success), fileType).Inc()
}

// RecordParse records the duration of a resume parse
func (m *ResumeMetrics) RecordParse(fileType string, duration time.Duration) {
	if m == nil {
		return
	}
	m.parseDuration.WithLabelValues(fileType).Observe(duration.Seconds())
}

// SetResumeCount overwrites the total resume count gauge
func (m *ResumeMetrics) SetResumeCount(count int64) {
	if m == nil {
		return
	}
	m.resumesTotal.Set(float64(count))
}
