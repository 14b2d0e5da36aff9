// Package collector fetches the listing page and extracts its item titles.
package collector

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	infrahttp "github.com/jonesrussell/pulseboard/infrastructure/http"
	"github.com/jonesrussell/pulseboard/infrastructure/logger"
	"github.com/jonesrussell/pulseboard/internal/config"
	"github.com/jonesrussell/pulseboard/internal/telemetry"
)

// Source is an extraction strategy: one fetch, one list of raw items.
type Source interface {
	FetchRawItems(ctx context.Context) ([]string, error)
}

// ParseError reports a body that could not be parsed at all. A body that
// parses but has no matching elements is not an error.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }

// DefaultMaxBodyBytes caps a response body when no limit is configured.
const DefaultMaxBodyBytes = 5 << 20

// ErrUnknownStrategy is returned by NewSource for an unsupported strategy.
var ErrUnknownStrategy = errors.New("unknown collector strategy")

// NewSource builds the Source selected by cfg.Strategy over client.
func NewSource(cfg config.CollectorConfig, client *http.Client) (Source, error) {
	f := &fetcher{
		client:       client,
		userAgent:    cfg.UserAgent,
		maxBodyBytes: cfg.MaxBodyBytes,
	}
	if f.maxBodyBytes <= 0 {
		f.maxBodyBytes = DefaultMaxBodyBytes
	}

	switch cfg.Strategy {
	case config.StrategyHTML, "":
		f.accept = htmlAccept
		selector := cfg.Selector
		if selector == "" {
			selector = DefaultSelector
		}
		return &HTMLSource{url: cfg.URL, selector: selector, fetcher: f}, nil
	case config.StrategyFeed:
		f.accept = feedAccept
		return &FeedSource{url: cfg.URL, fetcher: f}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, cfg.Strategy)
	}
}

// NewHTTPClient returns the shared outbound client for cfg.
func NewHTTPClient(cfg config.CollectorConfig) *http.Client {
	return infrahttp.NewClient(&infrahttp.ClientConfig{
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
	})
}

// Collector turns a Source into a failure-free list of titles.
type Collector struct {
	source   Source
	target   string
	strategy string
	log      logger.Logger
	metrics  *telemetry.Provider
}

// Params configures New. Logger and Metrics may be nil.
type Params struct {
	Source   Source
	Target   string
	Strategy string
	Logger   logger.Logger
	Metrics  *telemetry.Provider
}

// New creates a Collector.
func New(p Params) *Collector {
	if p.Logger == nil {
		p.Logger = logger.NewNop()
	}
	if p.Strategy == "" {
		p.Strategy = config.StrategyHTML
	}
	return &Collector{
		source:   p.Source,
		target:   p.Target,
		strategy: p.Strategy,
		log:      p.Logger.With(logger.String("target", p.Target), logger.String("strategy", p.Strategy)),
		metrics:  p.Metrics,
	}
}

// FromConfig builds the client, Source and Collector for cfg.
func FromConfig(cfg config.CollectorConfig, log logger.Logger, metrics *telemetry.Provider) (*Collector, error) {
	source, err := NewSource(cfg, NewHTTPClient(cfg))
	if err != nil {
		return nil, err
	}
	return New(Params{
		Source:   source,
		Target:   cfg.URL,
		Strategy: cfg.Strategy,
		Logger:   log,
		Metrics:  metrics,
	}), nil
}

// Target returns the collected URL.
func (c *Collector) Target() string { return c.target }

// Collect fetches and extracts once. Any failure is logged and reported as an
// empty, non-nil slice; errors never reach the caller.
func (c *Collector) Collect(ctx context.Context) []string {
	start := time.Now()

	items, err := c.source.FetchRawItems(ctx)
	duration := time.Since(start)

	if err != nil {
		result := telemetry.ResultFetchError
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			result = telemetry.ResultParseError
		}

		fields := []logger.Field{
			logger.Error(err),
			logger.Duration("duration", duration),
		}
		var fetchErr *FetchError
		if errors.As(err, &fetchErr) && fetchErr.StatusCode > 0 {
			fields = append(fields, logger.Int("status_code", fetchErr.StatusCode))
		}
		c.log.Error("Collection failed", fields...)
		c.metrics.RecordCollect(c.strategy, result, 0, duration)
		return []string{}
	}

	if len(items) == 0 {
		c.log.Warn("Collection returned no items", logger.Duration("duration", duration))
		c.metrics.RecordCollect(c.strategy, telemetry.ResultEmpty, 0, duration)
		return []string{}
	}

	c.log.Info("Collected items",
		logger.Int("count", len(items)),
		logger.Duration("duration", duration),
	)
	for i, item := range items {
		c.log.Debug("Collected item", logger.Int("index", i), logger.String("text", item))
	}
	c.metrics.RecordCollect(c.strategy, telemetry.ResultOK, len(items), duration)

	return items
}
