package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config represents the application configuration
type Config struct {
	// Deployment environment name, exposed on the app info metric
	Environment string `env:"ENVIRONMENT" envDefault:"production"`

	// Document store configuration
	Mongo MongoConfig

	// Per-deployment plan limits
	Limits LimitsConfig

	// Logging configuration
	Logging LoggingConfig

	// Metrics configuration
	Metrics MetricsConfig

	// Tracing configuration
	Tracing TracingConfig
}

// MongoConfig holds document store connection configuration
type MongoConfig struct {
	// MongoDB connection string
	URL string `env:"MONGODB_URL" envDefault:"mongodb://localhost:27017"`

	// Database name
	Database string `env:"DATABASE_NAME" envDefault:"pod_1"`
}

// LimitsConfig holds per-deployment plan limits
type LimitsConfig struct {
	// Maximum resume count under the free plan
	FreePlanResumeLimit int `env:"FREE_PLAN_RESUME_LIMIT" envDefault:"100"`

	// Maximum upload size in MB
	MaxFileSizeMB int64 `env:"MAX_FILE_SIZE_MB" envDefault:"5"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	// Log level: "debug", "info", "warn", "error"
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Log format: "json", "text"
	Format string `env:"LOG_FORMAT" envDefault:"json"`

	// Log file path (empty for stdout)
	Output string `env:"LOG_OUTPUT" envDefault:""`

	// Enable log rotation
	Rotation bool `env:"LOG_ROTATION" envDefault:"true"`

	// Max log file size in MB
	MaxSize int `env:"LOG_MAX_SIZE" envDefault:"100"`

	// Number of backup files to keep
	MaxBackups int `env:"LOG_MAX_BACKUPS" envDefault:"7"`

	// Max age in days
	MaxAge int `env:"LOG_MAX_AGE" envDefault:"30"`
}

// MetricsConfig holds metrics-related configuration
type MetricsConfig struct {
	// Enable the Prometheus scrape server
	Enabled bool `env:"METRICS_ENABLED" envDefault:"true"`

	// Scrape server address
	Addr string `env:"METRICS_ADDR" envDefault:":9090"`

	// Scrape path
	Path string `env:"METRICS_PATH" envDefault:"/metrics"`
}

// TracingConfig holds OpenTelemetry tracing configuration
type TracingConfig struct {
	// Enable OpenTelemetry tracing
	Enabled bool `env:"TRACING_ENABLED" envDefault:"false"`

	// OTLP endpoint
	Endpoint string `env:"TRACING_ENDPOINT" envDefault:""`

	// Skip TLS verification for the OTLP exporter
	Insecure bool `env:"TRACING_INSECURE" envDefault:"false"`

	// Exporter type: "grpc" or "http"
	ExporterType string `env:"TRACING_EXPORTER" envDefault:"grpc"`
}

// Load loads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Mongo.URL == "" {
		return fmt.Errorf("mongodb url cannot be empty")
	}

	if !strings.HasPrefix(c.Mongo.URL, "mongodb://") && !strings.HasPrefix(c.Mongo.URL, "mongodb+srv://") {
		return fmt.Errorf("mongodb url must start with mongodb:// or mongodb+srv://")
	}

	if c.Mongo.Database == "" {
		return fmt.Errorf("database name cannot be empty")
	}

	if c.Limits.FreePlanResumeLimit <= 0 {
		return fmt.Errorf("free plan resume limit must be greater than zero")
	}

	if c.Limits.MaxFileSizeMB <= 0 {
		return fmt.Errorf("max file size must be greater than zero")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	validLogFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validLogFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return fmt.Errorf("metrics address cannot be empty when metrics are enabled")
	}

	if c.Tracing.Enabled {
		if c.Tracing.Endpoint == "" {
			return fmt.Errorf("tracing endpoint is required when tracing is enabled")
		}
		if c.Tracing.ExporterType != "grpc" && c.Tracing.ExporterType != "http" {
			return fmt.Errorf("invalid tracing exporter type: %s", c.Tracing.ExporterType)
		}
	}

	return nil
}

// MaxFileSizeBytes returns the upload size limit in bytes
func (c *LimitsConfig) MaxFileSizeBytes() int64 {
	return c.MaxFileSizeMB * 1024 * 1024
}
