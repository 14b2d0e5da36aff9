// Package bootstrap wires pulseboard's components from configuration.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jonesrussell/pulseboard/infrastructure/logger"
	"github.com/jonesrussell/pulseboard/infrastructure/profiling"
	"github.com/jonesrussell/pulseboard/internal/board"
	"github.com/jonesrussell/pulseboard/internal/collector"
	"github.com/jonesrussell/pulseboard/internal/config"
	"github.com/jonesrussell/pulseboard/internal/events"
	"github.com/jonesrussell/pulseboard/internal/sentiment"
	"github.com/jonesrussell/pulseboard/internal/telemetry"
)

// App holds the long-lived components shared by every request.
type App struct {
	Config    *config.Config
	Logger    logger.Logger
	Metrics   *telemetry.Provider
	Boards    *board.Service
	Publisher *events.Publisher
	Version   string
}

// NewApp builds the collector, classifier, metrics and optional publisher.
func NewApp(ctx context.Context, cfg *config.Config, log logger.Logger, version string) (*App, error) {
	metrics := telemetry.NewProvider()

	coll, err := collector.FromConfig(cfg.Collector, log, metrics)
	if err != nil {
		return nil, fmt.Errorf("create collector: %w", err)
	}

	classifier := sentiment.New(cfg.Classifier.NegativeKeywords)
	log.Info("Classifier ready", logger.Strings("negative_keywords", classifier.Keywords()))

	opts := []board.Option{board.WithMetrics(metrics)}
	publisher := SetupEventPublisher(ctx, cfg, log, metrics)
	if publisher != nil {
		opts = append(opts, board.WithPublisher(publisher))
	}

	return &App{
		Config:    cfg,
		Logger:    log,
		Metrics:   metrics,
		Boards:    board.NewService(coll, classifier, log, opts...),
		Publisher: publisher,
		Version:   version,
	}, nil
}

// Close releases the Redis connection, if any.
func (a *App) Close() {
	if err := a.Publisher.Close(); err != nil {
		a.Logger.Warn("Failed to close event publisher", logger.Error(err))
	}
}

// Serve runs the HTTP server until ctx is cancelled or a shutdown signal arrives.
func Serve(ctx context.Context, configPath string, debug bool, version string) error {
	cfg, err := LoadConfig(configPath, debug)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := CreateLogger(cfg, version)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if pprofServer := profiling.StartPprofServer(log); pprofServer != nil {
		defer func() { _ = pprofServer.Close() }()
	}

	app, err := NewApp(ctx, cfg, log, version)
	if err != nil {
		return err
	}
	defer app.Close()

	server, err := SetupHTTPServer(app)
	if err != nil {
		return fmt.Errorf("failed to set up server: %w", err)
	}

	log.Info("Collecting from",
		logger.String("url", cfg.Collector.URL),
		logger.String("strategy", cfg.Collector.Strategy),
	)

	if runErr := server.Run(ctx); runErr != nil {
		log.Error("Server error", logger.Error(runErr))
		return fmt.Errorf("server error: %w", runErr)
	}

	log.Info("Server exited")
	return nil
}
