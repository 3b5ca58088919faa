package metrics

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// WorkflowMetrics tracks workflow execution metrics
type WorkflowMetrics struct {
	started    *prometheus.CounterVec
	completed  *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	inProgress prometheus.Gauge
}

// NewWorkflowMetrics initializes workflow metrics with the collector
func NewWorkflowMetrics(collector *Collector) *WorkflowMetrics {
	return &WorkflowMetrics{
		started: collector.RegisterCounter(
			MetricWorkflowsStarted,
			"Total workflows started",
			[]string{LabelType},
		),
		completed: collector.RegisterCounter(
			MetricWorkflowsCompleted,
			"Total workflows completed",
			[]string{LabelStatus},
		),
		duration: collector.RegisterHistogram(
			MetricWorkflowSeconds,
			"Total workflow execution time",
			[]string{LabelResumeCount},
			[]float64{30, 60, 120, 300, 600, 900, 1800},
		),
		inProgress: collector.RegisterScalarGauge(
			MetricWorkflowsInProgress,
			"Number of workflows currently in progress",
		),
	}
}

// RecordStarted records a workflow start and raises the in-progress gauge
func (m *WorkflowMetrics) RecordStarted(workflowType string) {
	if m == nil {
		return
	}
	m.started.WithLabelValues(workflowType).Inc()
	m.inProgress.Inc()
}

// RecordCompleted records a workflow completion and lowers the in-progress gauge
func (m *WorkflowMetrics) RecordCompleted(status string) {
	if m == nil {
		return
	}
	m.completed.WithLabelValues(status).Inc()
	m.inProgress.Dec()
}

// RecordDuration records the total execution time of a workflow, labeled by
// the number of resumes it processed
func (m *WorkflowMetrics) RecordDuration(resumeCount int, duration time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(strconv.Itoa(resumeCount)).Observe(duration.Seconds())
}

// Record is the composite recording operation: started raises the started
// counter and the in-progress gauge; completed raises the completed counter
// and lowers the in-progress gauge. A start without an eventual completion
// leaves the in-progress gauge permanently elevated, which is a contract on
// callers; Start/Complete on a WorkflowExecution handle avoids the problem.
func (m *WorkflowMetrics) Record(started, completed bool, status, workflowType string) {
	if m == nil {
		return
	}
	if started {
		m.RecordStarted(workflowType)
	}
	if completed {
		m.RecordCompleted(status)
	}
}

// WorkflowExecution is a handle for one in-flight workflow. It pairs the
// start and completion updates so the in-progress gauge cannot drift from
// unmatched or repeated completion calls.
type WorkflowExecution struct {
	ID           string
	WorkflowType string
	StartedAt    time.Time

	metrics     *WorkflowMetrics
	resumeCount atomic.Int64
	done        atomic.Bool
}

// StartWorkflow records a workflow start and returns a handle that must be
// completed exactly once
func (m *WorkflowMetrics) StartWorkflow(workflowType string) *WorkflowExecution {
	m.RecordStarted(workflowType)
	return &WorkflowExecution{
		ID:           uuid.NewString(),
		WorkflowType: workflowType,
		StartedAt:    time.Now(),
		metrics:      m,
	}
}

// SetResumeCount sets the number of resumes processed, used as the duration
// histogram label on completion
func (e *WorkflowExecution) SetResumeCount(count int) {
	if e == nil {
		return
	}
	e.resumeCount.Store(int64(count))
}

// Complete records the workflow completion and its duration. Only the first
// call has any effect; repeated calls cannot double-count completions or
// decrement the in-progress gauge below its true value.
func (e *WorkflowExecution) Complete(status string) {
	if e == nil || !e.done.CompareAndSwap(false, true) {
		return
	}
	e.metrics.RecordCompleted(status)
	e.metrics.RecordDuration(int(e.resumeCount.Load()), time.Since(e.StartedAt))
}
