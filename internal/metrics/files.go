package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// FileMetrics tracks blob storage metrics
type FileMetrics struct {
	storageBytes *prometheus.GaugeVec
	operations   *prometheus.CounterVec
}

// NewFileMetrics initializes file storage metrics with the collector
func NewFileMetrics(collector *Collector) *FileMetrics {
	return &FileMetrics{
		storageBytes: collector.RegisterGauge(
			MetricFileStorageBytes,
			"Total file storage used in GridFS",
			[]string{LabelType},
		),
		operations: collector.RegisterCounter(
			MetricFileOperations,
			"Total file operations",
			[]string{LabelOperation, LabelStatus},
		),
	}
}

// RecordOperation records a file operation (upload, download, delete)
func (m *FileMetrics) RecordOperation(operation string, success bool) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, statusLabel(success)).Inc()
}

// SetStorageBytes overwrites the storage usage gauge for a storage category
func (m *FileMetrics) SetStorageBytes(storageType string, bytes int64) {
	if m == nil {
		return
	}
	m.storageBytes.WithLabelValues(storageType).Set(float64(bytes))
}
