// Package config loads pulseboard's service configuration.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/andybalholm/cascadia"

	infraconfig "github.com/jonesrussell/pulseboard/infrastructure/config"
)

const (
	StrategyHTML = "html"
	StrategyFeed = "feed"

	defaultServerHost     = "127.0.0.1"
	defaultServerPort     = 5000
	defaultURL            = "https://news.ycombinator.com/"
	defaultSelector       = "span.titleline > a, a.titlelink"
	defaultUserAgent      = "SocialImpactPrototype/1.0"
	defaultCollectTimeout = 10 * time.Second
	defaultMaxBodyBytes   = 5 << 20
	defaultRedisAddress   = "localhost:6379"
	defaultEventsStream   = "pulseboard-events"
)

// DefaultNegativeKeywords is the built-in negative keyword list.
var DefaultNegativeKeywords = []string{
	"hate", "toxic", "unhealthy", "misinformation", "harmful", "dangerous",
}

// Config is the root service configuration.
type Config struct {
	Debug      bool                      `env:"APP_DEBUG" yaml:"debug"`
	Server     infraconfig.ServerConfig  `yaml:"server"`
	Collector  CollectorConfig           `yaml:"collector"`
	Classifier ClassifierConfig          `yaml:"classifier"`
	Logging    infraconfig.LoggingConfig `yaml:"logging"`
	Events     EventsConfig              `yaml:"events"`
}

// CollectorConfig selects and tunes the title source.
type CollectorConfig struct {
	Strategy     string        `env:"COLLECTOR_STRATEGY"   yaml:"strategy"`
	URL          string        `env:"COLLECTOR_URL"        yaml:"url"`
	Selector     string        `env:"COLLECTOR_SELECTOR"   yaml:"selector"`
	UserAgent    string        `env:"COLLECTOR_USER_AGENT" yaml:"user_agent"`
	Timeout      time.Duration `env:"COLLECTOR_TIMEOUT"    yaml:"timeout"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
}

// ClassifierConfig holds the keyword rule.
type ClassifierConfig struct {
	NegativeKeywords []string `env:"NEGATIVE_KEYWORDS" yaml:"negative_keywords"`
}

// EventsConfig controls the optional Redis Streams publisher.
type EventsConfig struct {
	Enabled       bool   `env:"EVENTS_ENABLED" yaml:"enabled"`
	RedisAddress  string `env:"REDIS_ADDRESS"  yaml:"redis_address"`
	RedisPassword string `env:"REDIS_PASSWORD" yaml:"redis_password"`
	RedisDB       int    `env:"REDIS_DB"       yaml:"redis_db"`
	Stream        string `env:"EVENTS_STREAM"  yaml:"stream"`
}

// Load reads path (which may not exist), applies defaults and env overrides,
// and validates the result.
func Load(path string) (*Config, error) {
	cfg, err := infraconfig.LoadWithDefaults(path, setDefaults)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no file or env is present.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Validate reports every invalid field, joined.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Server.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, err)
	}

	switch c.Collector.Strategy {
	case StrategyHTML, StrategyFeed:
	default:
		errs = append(errs, &infraconfig.ValidationError{
			Field:   "collector.strategy",
			Message: fmt.Sprintf("unknown strategy %q (want %s or %s)", c.Collector.Strategy, StrategyHTML, StrategyFeed),
		})
	}
	if c.Collector.Strategy == StrategyHTML && c.Collector.Selector != "" {
		if _, err := cascadia.Compile(c.Collector.Selector); err != nil {
			errs = append(errs, &infraconfig.ValidationError{
				Field:   "collector.selector",
				Message: fmt.Sprintf("invalid CSS selector: %v", err),
			})
		}
	}
	if err := infraconfig.ValidateHTTPURL("collector.url", c.Collector.URL); err != nil {
		errs = append(errs, err)
	}
	if c.Collector.Timeout <= 0 {
		errs = append(errs, &infraconfig.ValidationError{Field: "collector.timeout", Message: "must be positive"})
	}
	if c.Collector.MaxBodyBytes <= 0 {
		errs = append(errs, &infraconfig.ValidationError{Field: "collector.max_body_bytes", Message: "must be positive"})
	}

	if c.Events.Enabled {
		if err := infraconfig.ValidateRequired("events.redis_address", c.Events.RedisAddress); err != nil {
			errs = append(errs, err)
		}
		if err := infraconfig.ValidateRequired("events.stream", c.Events.Stream); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func setDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = defaultServerHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultServerPort
	}
	cfg.Server.SetDefaults()
	cfg.Logging.SetDefaults()

	if cfg.Collector.Strategy == "" {
		cfg.Collector.Strategy = StrategyHTML
	}
	if cfg.Collector.URL == "" {
		cfg.Collector.URL = defaultURL
	}
	if cfg.Collector.Selector == "" {
		cfg.Collector.Selector = defaultSelector
	}
	if cfg.Collector.UserAgent == "" {
		cfg.Collector.UserAgent = defaultUserAgent
	}
	if cfg.Collector.Timeout == 0 {
		cfg.Collector.Timeout = defaultCollectTimeout
	}
	if cfg.Collector.MaxBodyBytes == 0 {
		cfg.Collector.MaxBodyBytes = defaultMaxBodyBytes
	}

	if cfg.Classifier.NegativeKeywords == nil {
		cfg.Classifier.NegativeKeywords = append([]string(nil), DefaultNegativeKeywords...)
	}

	if cfg.Events.RedisAddress == "" {
		cfg.Events.RedisAddress = defaultRedisAddress
	}
	if cfg.Events.Stream == "" {
		cfg.Events.Stream = defaultEventsStream
	}
}
