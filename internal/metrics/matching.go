package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MatchingMetrics tracks resume-JD matching and AI agent metrics
type MatchingMetrics struct {
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	aiCalls       *prometheus.CounterVec
	aiLatency     *prometheus.HistogramVec
	scores        prometheus.Histogram
	fitCategories *prometheus.GaugeVec
}

// NewMatchingMetrics initializes matching metrics with the collector
func NewMatchingMetrics(collector *Collector) *MatchingMetrics {
	return &MatchingMetrics{
		requests: collector.RegisterCounter(
			MetricMatchingRequests,
			"Total number of resume-JD matching requests",
			[]string{LabelStatus, LabelSource},
		),
		duration: collector.RegisterHistogram(
			MetricMatchingSeconds,
			"Time spent on AI matching operations",
			[]string{LabelBatchSize},
			[]float64{1.0, 5.0, 10.0, 30.0, 60.0, 120.0, 300.0, 600.0},
		),
		aiCalls: collector.RegisterCounter(
			MetricAIAgentCalls,
			"Total calls to AI Agent service",
			[]string{LabelEndpoint, LabelStatus},
		),
		aiLatency: collector.RegisterHistogram(
			MetricAIAgentLatency,
			"Latency of AI Agent API calls",
			[]string{LabelEndpoint},
			[]float64{1.0, 5.0, 10.0, 30.0, 60.0, 120.0, 300.0},
		),
		scores: collector.RegisterScalarHistogram(
			MetricMatchScores,
			"Distribution of resume match scores",
			[]float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		),
		fitCategories: collector.RegisterGauge(
			MetricCandidatesByFit,
			"Number of candidates by fit category",
			[]string{LabelCategory},
		),
	}
}

// RecordRequest records a matching request. Source is "manual" or "auto".
func (m *MatchingMetrics) RecordRequest(success bool, source string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(statusLabel(success), source).Inc()
}

// RecordBatch records the duration of a matching batch
func (m *MatchingMetrics) RecordBatch(batchSize int, duration time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(strconv.Itoa(batchSize)).Observe(duration.Seconds())
}

// RecordAIAgentCall records a call to the AI agent service. The call counter
// and the latency histogram are always updated together so that call counts
// and latency samples stay consistent.
func (m *MatchingMetrics) RecordAIAgentCall(endpoint string, success bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.aiCalls.WithLabelValues(endpoint, statusLabel(success)).Inc()
	m.aiLatency.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordMatchScore records a single match score observation. Scores are
// expected in the 0-100 range; out-of-range values land in the nearest bucket.
func (m *MatchingMetrics) RecordMatchScore(score float64) {
	if m == nil {
		return
	}
	m.scores.Observe(score)
}

// UpdateFitCategories overwrites the three fit category gauge series with a
// snapshot. Callers compute the current totals themselves; this is not a delta.
func (m *MatchingMetrics) UpdateFitCategories(bestFit, partialFit, notFit int) {
	if m == nil {
		return
	}
	m.fitCategories.WithLabelValues(FitCategoryBest).Set(float64(bestFit))
	m.fitCategories.WithLabelValues(FitCategoryPartial).Set(float64(partialFit))
	m.fitCategories.WithLabelValues(FitCategoryNone).Set(float64(notFit))
}
