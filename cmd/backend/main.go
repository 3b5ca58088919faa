package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hrmatch/backend/internal/config"
	"github.com/hrmatch/backend/internal/database"
	"github.com/hrmatch/backend/internal/filestore"
	"github.com/hrmatch/backend/internal/logger"
	"github.com/hrmatch/backend/internal/metrics"
	"github.com/hrmatch/backend/internal/tracing"
	"github.com/hrmatch/backend/internal/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.Init(&logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Output:     cfg.Logging.Output,
		Rotation:   cfg.Logging.Rotation,
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.WithComponent("main")
	log.Info().
		Str("environment", cfg.Environment).
		Msg(version.String())

	tracingProvider, err := tracing.NewProvider(tracing.Config{
		Enabled:        cfg.Tracing.Enabled,
		ServiceName:    "hr-backend",
		ServiceVersion: version.Version,
		Endpoint:       cfg.Tracing.Endpoint,
		Insecure:       cfg.Tracing.Insecure,
		ExporterType:   cfg.Tracing.ExporterType,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	collector := metrics.NewCollector()
	registry := metrics.NewRegistry(collector, metrics.AppInfo{
		Version:     version.Version,
		Service:     "backend-api",
		Environment: cfg.Environment,
	})

	connectCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Connect(connectCtx, cfg.Mongo, registry.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Ping(connectCtx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info().Str("database", db.Name()).Msg("Database connection established")

	files := filestore.NewStore(db, cfg.Limits, registry.Files)
	if err := files.RefreshUsage(connectCtx); err != nil {
		log.Warn().Err(err).Msg("Failed to refresh file storage usage")
	}

	var metricsServer *metrics.Server
	if cfg.Metrics.Enabled {
		metricsServer = metrics.NewServer(cfg.Metrics.Addr, cfg.Metrics.Path, collector.GetRegistry(), db)
		if err := metricsServer.Start(context.Background()); err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if metricsServer != nil {
		if err := metricsServer.Stop(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("Error stopping metrics server")
		}
	}
	if err := db.Close(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Error closing database connection")
	}
	if err := tracingProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Error shutting down tracing provider")
	}

	log.Info().Msg("HR backend stopped")
	return nil
}
