package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserMetrics(t *testing.T) {
	collector := NewCollector()
	metrics := NewUserMetrics(collector)
	require.NotNil(t, metrics)
}

func TestUserMetrics_RecordLogin(t *testing.T) {
	collector := NewCollector()
	metrics := NewUserMetrics(collector)

	metrics.RecordLogin(true)
	metrics.RecordLogin(false)
	metrics.RecordLogin(true)

	assert.Equal(t, float64(2), counterValue(t, collector, MetricUserLogins,
		map[string]string{LabelStatus: StatusSuccess}))
	assert.Equal(t, float64(1), counterValue(t, collector, MetricUserLogins,
		map[string]string{LabelStatus: StatusFailed}))
}

// Concurrent increments to the same series must be linearizable: 1000
// concurrent callers yield exactly 1000, no lost updates.
func TestUserMetrics_ConcurrentLogins(t *testing.T) {
	collector := NewCollector()
	metrics := NewUserMetrics(collector)

	const callers = 1000
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			metrics.RecordLogin(true)
		}()
	}
	wg.Wait()

	assert.Equal(t, float64(callers), counterValue(t, collector, MetricUserLogins,
		map[string]string{LabelStatus: StatusSuccess}))
}

func TestUserMetrics_RecordRegistration(t *testing.T) {
	collector := NewCollector()
	metrics := NewUserMetrics(collector)

	metrics.RecordRegistration(true)

	assert.Equal(t, float64(1), counterValue(t, collector, MetricUserRegistrations,
		map[string]string{LabelStatus: StatusSuccess}))
}

func TestUserMetrics_SetActiveUsers(t *testing.T) {
	collector := NewCollector()
	metrics := NewUserMetrics(collector)

	metrics.SetActiveUsers(17)
	assert.Equal(t, float64(17), gaugeValue(t, collector, MetricActiveUsers, nil))

	metrics.SetActiveUsers(3)
	assert.Equal(t, float64(3), gaugeValue(t, collector, MetricActiveUsers, nil))
}

func TestUserMetrics_NilSafety(t *testing.T) {
	var metrics *UserMetrics

	// Should not panic
	metrics.RecordLogin(true)
	metrics.RecordRegistration(false)
	metrics.SetActiveUsers(1)
}
