package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error {
	return p.err
}

func TestNewServer_Defaults(t *testing.T) {
	collector := NewCollector()
	server := NewServer(":9090", "", collector.GetRegistry(), nil)
	require.NotNil(t, server)
	assert.Equal(t, "/metrics", server.path)
	assert.False(t, server.Ready())
}

func TestServer_HandleHealth(t *testing.T) {
	server := NewServer(":9090", "/metrics", NewCollector().GetRegistry(), nil)

	rec := httptest.NewRecorder()
	server.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestServer_HandleReady(t *testing.T) {
	tests := []struct {
		name       string
		pinger     Pinger
		wantCode   int
		wantStatus string
	}{
		{"no pinger", nil, http.StatusOK, "ready"},
		{"pinger healthy", stubPinger{}, http.StatusOK, "ready"},
		{"pinger failing", stubPinger{err: errors.New("connection refused")}, http.StatusServiceUnavailable, "not ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(":9090", "/metrics", NewCollector().GetRegistry(), tt.pinger)

			rec := httptest.NewRecorder()
			server.handleReady(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantStatus)
		})
	}
}

func TestServer_StartStop(t *testing.T) {
	collector := NewCollector()
	server := NewServer("127.0.0.1:0", "/metrics", collector.GetRegistry(), nil)

	ctx := context.Background()
	require.NoError(t, server.Start(ctx))
	assert.True(t, server.Ready())

	// Starting twice is a no-op
	require.NoError(t, server.Start(ctx))

	require.NoError(t, server.Stop(ctx))
	assert.False(t, server.Ready())

	// Stopping twice is a no-op
	require.NoError(t, server.Stop(ctx))
}
