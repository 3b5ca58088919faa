package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// UserMetrics tracks user authentication metrics
type UserMetrics struct {
	logins        *prometheus.CounterVec
	registrations *prometheus.CounterVec
	activeUsers   prometheus.Gauge
}

// NewUserMetrics initializes user metrics with the collector
func NewUserMetrics(collector *Collector) *UserMetrics {
	return &UserMetrics{
		logins: collector.RegisterCounter(
			MetricUserLogins,
			"Total user login attempts",
			[]string{LabelStatus},
		),
		registrations: collector.RegisterCounter(
			MetricUserRegistrations,
			"Total user registrations",
			[]string{LabelStatus},
		),
		activeUsers: collector.RegisterScalarGauge(
			MetricActiveUsers,
			"Number of currently active users",
		),
	}
}

// RecordLogin records a user login attempt
func (m *UserMetrics) RecordLogin(success bool) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(statusLabel(success)).Inc()
}

// RecordRegistration records a user registration attempt
func (m *UserMetrics) RecordRegistration(success bool) {
	if m == nil {
		return
	}
	m.registrations.WithLabelValues(statusLabel(success)).Inc()
}

// SetActiveUsers overwrites the active user count gauge
func (m *UserMetrics) SetActiveUsers(count int64) {
	if m == nil {
		return
	}
	m.activeUsers.Set(float64(count))
}
