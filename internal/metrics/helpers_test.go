package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

// findFamily gathers the collector's registry and returns the named metric
// family, failing the test if it is absent.
func findFamily(t *testing.T, collector *Collector, name string) *dto.MetricFamily {
	t.Helper()
	families, err := collector.GetRegistry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	t.Fatalf("metric family not found: %s", name)
	return nil
}

// findMetric returns the series of a family whose labels match exactly the
// given subset, failing the test if none matches.
func findMetric(t *testing.T, mf *dto.MetricFamily, labels map[string]string) *dto.Metric {
	t.Helper()
	for _, m := range mf.GetMetric() {
		matched := 0
		for _, lp := range m.GetLabel() {
			if want, ok := labels[lp.GetName()]; ok && lp.GetValue() == want {
				matched++
			}
		}
		if matched == len(labels) {
			return m
		}
	}
	t.Fatalf("no series of %s matches labels %v", mf.GetName(), labels)
	return nil
}

func counterValue(t *testing.T, collector *Collector, name string, labels map[string]string) float64 {
	t.Helper()
	m := findMetric(t, findFamily(t, collector, name), labels)
	require.NotNil(t, m.GetCounter())
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, collector *Collector, name string, labels map[string]string) float64 {
	t.Helper()
	m := findMetric(t, findFamily(t, collector, name), labels)
	require.NotNil(t, m.GetGauge())
	return m.GetGauge().GetValue()
}

func histogram(t *testing.T, collector *Collector, name string, labels map[string]string) *dto.Histogram {
	t.Helper()
	m := findMetric(t, findFamily(t, collector, name), labels)
	require.NotNil(t, m.GetHistogram())
	return m.GetHistogram()
}

// bucketCount returns the cumulative count of the first bucket whose upper
// bound is at least the given value.
func bucketCount(t *testing.T, h *dto.Histogram, upperBound float64) uint64 {
	t.Helper()
	for _, b := range h.GetBucket() {
		if b.GetUpperBound() >= upperBound {
			return b.GetCumulativeCount()
		}
	}
	t.Fatalf("no bucket with upper bound >= %v", upperBound)
	return 0
}
