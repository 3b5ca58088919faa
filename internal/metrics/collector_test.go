package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollector(t *testing.T) {
	collector := NewCollector()
	require.NotNil(t, collector)
	assert.NotNil(t, collector.GetRegistry())
}

func TestRegisterCounter(t *testing.T) {
	collector := NewCollector()
	counter := collector.RegisterCounter("test_counter", "Test counter", []string{"label1"})
	require.NotNil(t, counter)

	// Verify it's registered
	registry := collector.GetRegistry()
	err := registry.Register(counter)
	// Should fail because it's already registered
	assert.Error(t, err)
}

func TestRegisterGauge(t *testing.T) {
	collector := NewCollector()
	gauge := collector.RegisterGauge("test_gauge", "Test gauge", []string{"label1"})
	require.NotNil(t, gauge)

	registry := collector.GetRegistry()
	err := registry.Register(gauge)
	assert.Error(t, err)
}

func TestRegisterHistogram(t *testing.T) {
	collector := NewCollector()
	buckets := []float64{0.1, 0.5, 1.0, 2.5, 5.0}
	histogram := collector.RegisterHistogram("test_histogram", "Test histogram", []string{"label1"}, buckets)
	require.NotNil(t, histogram)

	registry := collector.GetRegistry()
	err := registry.Register(histogram)
	assert.Error(t, err)
}

func TestRegisterHistogram_DefaultBuckets(t *testing.T) {
	collector := NewCollector()
	histogram := collector.RegisterHistogram("test_histogram_default", "Test histogram", []string{"label1"}, nil)
	require.NotNil(t, histogram)

	registry := collector.GetRegistry()
	err := registry.Register(histogram)
	assert.Error(t, err)
}

func TestRegisterScalarInstruments(t *testing.T) {
	collector := NewCollector()

	gauge := collector.RegisterScalarGauge("test_scalar_gauge", "Test gauge")
	require.NotNil(t, gauge)
	gauge.Set(42)

	scalarHist := collector.RegisterScalarHistogram("test_scalar_histogram", "Test histogram", []float64{1, 2, 3})
	require.NotNil(t, scalarHist)
	scalarHist.Observe(1.5)

	assert.Equal(t, float64(42), gaugeValue(t, collector, "test_scalar_gauge", nil))

	h := histogram(t, collector, "test_scalar_histogram", nil)
	assert.Equal(t, uint64(1), h.GetSampleCount())
}

// Declaring the same instrument name twice is a programming error and must
// abort startup instead of continuing with a partially-built registry.
func TestRegisterDuplicateNamePanics(t *testing.T) {
	collector := NewCollector()
	collector.RegisterCounter("test_duplicate", "Test counter", []string{"label1"})

	require.Panics(t, func() {
		collector.RegisterCounter("test_duplicate", "Test counter", []string{"label1"})
	})
}

func TestGetRegistry(t *testing.T) {
	collector := NewCollector()
	registry := collector.GetRegistry()
	require.NotNil(t, registry)

	// Should be able to gather metrics (even if empty)
	_, err := registry.Gather()
	assert.NoError(t, err)
}
