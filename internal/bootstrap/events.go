package bootstrap

import (
	"context"

	"github.com/jonesrussell/pulseboard/infrastructure/logger"
	infraredis "github.com/jonesrussell/pulseboard/infrastructure/redis"
	"github.com/jonesrussell/pulseboard/internal/config"
	"github.com/jonesrussell/pulseboard/internal/events"
	"github.com/jonesrussell/pulseboard/internal/telemetry"
)

// SetupEventPublisher returns a publisher when events are enabled and Redis
// answers, nil otherwise. An unreachable Redis is not a startup error.
func SetupEventPublisher(
	ctx context.Context,
	cfg *config.Config,
	log logger.Logger,
	metrics *telemetry.Provider,
) *events.Publisher {
	if !cfg.Events.Enabled {
		return nil
	}

	client, err := infraredis.NewClient(ctx, infraredis.Config{
		Address:  cfg.Events.RedisAddress,
		Password: cfg.Events.RedisPassword,
		DB:       cfg.Events.RedisDB,
	})
	if err != nil {
		log.Warn("Redis not available, events disabled", logger.Error(err))
		return nil
	}

	log.Info("Event publisher initialized",
		logger.String("redis_address", cfg.Events.RedisAddress),
		logger.String("stream", cfg.Events.Stream),
	)
	return events.NewPublisher(client, cfg.Events.Stream, log, metrics)
}
