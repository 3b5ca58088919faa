package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AppInfo describes the running application for the info metric
type AppInfo struct {
	Version     string
	Service     string
	Environment string
}

// Registry bundles every business instrument of the backend. It is built
// once at process start and passed by reference to the components that
// record metrics; tests construct their own isolated instance.
type Registry struct {
	Resumes         *ResumeMetrics
	JobDescriptions *JobDescriptionMetrics
	Matching        *MatchingMetrics
	Users           *UserMetrics
	Workflows       *WorkflowMetrics
	Files           *FileMetrics
	Database        *DatabaseMetrics

	collector *Collector
}

// NewRegistry declares every instrument exactly once against the collector
// and exposes the application info metric
func NewRegistry(collector *Collector, info AppInfo) *Registry {
	appInfo := promauto.With(collector.GetRegistry()).NewGauge(prometheus.GaugeOpts{
		Name: MetricAppInfo,
		Help: "HR Backend API application information",
		ConstLabels: prometheus.Labels{
			"version":     info.Version,
			"service":     info.Service,
			"environment": info.Environment,
		},
	})
	appInfo.Set(1)

	return &Registry{
		Resumes:         NewResumeMetrics(collector),
		JobDescriptions: NewJobDescriptionMetrics(collector),
		Matching:        NewMatchingMetrics(collector),
		Users:           NewUserMetrics(collector),
		Workflows:       NewWorkflowMetrics(collector),
		Files:           NewFileMetrics(collector),
		Database:        NewDatabaseMetrics(collector),
		collector:       collector,
	}
}

// Collector returns the collector backing this registry
func (r *Registry) Collector() *Collector {
	return r.collector
}
