package api

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	infracontext "github.com/jonesrussell/pulseboard/infrastructure/context"
	infragin "github.com/jonesrussell/pulseboard/infrastructure/gin"
	"github.com/jonesrussell/pulseboard/infrastructure/logger"
	inframetrics "github.com/jonesrussell/pulseboard/infrastructure/metrics"
	"github.com/jonesrussell/pulseboard/internal/config"
	"github.com/jonesrussell/pulseboard/internal/presenter"
	"github.com/jonesrussell/pulseboard/internal/telemetry"
)

const serviceName = "pulseboard"

// Pinger is an optional dependency reported by /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the components the HTTP server serves.
type Deps struct {
	Boards  BoardBuilder
	Metrics *telemetry.Provider
	// Events is nil when event publishing is disabled.
	Events  Pinger
	Version string
}

// NewServer builds the HTTP server with health, metrics, page and API routes.
func NewServer(cfg *config.Config, deps Deps, log logger.Logger) (*infragin.Server, error) {
	tmpl, err := presenter.Templates()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	handler := NewBoardHandler(deps.Boards, deps.Version)

	builder := infragin.NewServerBuilder(serviceName, cfg.Server.Port).
		WithLogger(log).
		WithHost(cfg.Server.Host).
		WithDebug(cfg.Debug).
		WithVersion(deps.Version).
		WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.IdleTimeout).
		WithRoutes(func(router *gin.Engine) {
			router.SetHTMLTemplate(tmpl)
			SetupRoutes(router, handler, deps.Metrics)
		})

	if deps.Events != nil {
		builder = builder.WithHealthCheck("redis", infragin.PingHealthChecker(
			"redis",
			infragin.HealthStatusDegraded,
			func() error {
				ctx, cancel := infracontext.WithPingTimeout(context.Background())
				defer cancel()
				return deps.Events.Ping(ctx)
			},
		))
	}

	return builder.Build(), nil
}

// SetupRoutes registers the service routes on router.
func SetupRoutes(router *gin.Engine, handler *BoardHandler, metrics *telemetry.Provider) {
	if metrics != nil {
		router.Use(inframetrics.NewHTTPMetrics(metrics.Registry(), serviceName).Middleware())
	}

	router.GET("/", handler.Index)

	v1 := router.Group("/api/v1")
	v1.GET("/posts", handler.Posts)

	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}
}
