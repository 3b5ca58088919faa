package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URL)
	assert.Equal(t, "pod_1", cfg.Mongo.Database)
	assert.Equal(t, 100, cfg.Limits.FreePlanResumeLimit)
	assert.Equal(t, int64(5), cfg.Limits.MaxFileSizeMB)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9090", cfg.Metrics.Addr)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "production", cfg.Environment)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb+srv://cluster0.abc.mongodb.net")
	t.Setenv("DATABASE_NAME", "hr_staging")
	t.Setenv("MAX_FILE_SIZE_MB", "10")
	t.Setenv("METRICS_ADDR", ":9100")
	t.Setenv("ENVIRONMENT", "staging")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb+srv://cluster0.abc.mongodb.net", cfg.Mongo.URL)
	assert.Equal(t, "hr_staging", cfg.Mongo.Database)
	assert.Equal(t, int64(10), cfg.Limits.MaxFileSizeMB)
	assert.Equal(t, ":9100", cfg.Metrics.Addr)
	assert.Equal(t, "staging", cfg.Environment)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Mongo:  MongoConfig{URL: "mongodb://localhost:27017", Database: "pod_1"},
			Limits: LimitsConfig{FreePlanResumeLimit: 100, MaxFileSizeMB: 5},
			Logging: LoggingConfig{
				Level:  "info",
				Format: "json",
			},
			Metrics: MetricsConfig{Enabled: true, Addr: ":9090", Path: "/metrics"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty mongo url", func(c *Config) { c.Mongo.URL = "" }, "mongodb url cannot be empty"},
		{"bad mongo scheme", func(c *Config) { c.Mongo.URL = "postgres://localhost" }, "must start with"},
		{"empty database", func(c *Config) { c.Mongo.Database = "" }, "database name cannot be empty"},
		{"zero resume limit", func(c *Config) { c.Limits.FreePlanResumeLimit = 0 }, "resume limit"},
		{"zero file size", func(c *Config) { c.Limits.MaxFileSizeMB = 0 }, "max file size"},
		{"bad log level", func(c *Config) { c.Logging.Level = "chatty" }, "invalid log level"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "invalid log format"},
		{"metrics enabled without addr", func(c *Config) { c.Metrics.Addr = "" }, "metrics address"},
		{"tracing enabled without endpoint", func(c *Config) { c.Tracing.Enabled = true }, "tracing endpoint"},
		{"bad tracing exporter", func(c *Config) {
			c.Tracing.Enabled = true
			c.Tracing.Endpoint = "localhost:4317"
			c.Tracing.ExporterType = "udp"
		}, "tracing exporter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestMaxFileSizeBytes(t *testing.T) {
	limits := LimitsConfig{MaxFileSizeMB: 5}
	assert.Equal(t, int64(5*1024*1024), limits.MaxFileSizeBytes())
}
