package bootstrap

import (
	"fmt"

	infraconfig "github.com/jonesrussell/pulseboard/infrastructure/config"
	"github.com/jonesrussell/pulseboard/infrastructure/logger"
	"github.com/jonesrussell/pulseboard/internal/config"
)

const (
	serviceName       = "pulseboard"
	defaultConfigPath = "config.yml"
)

// ConfigPath returns flagPath, else CONFIG_PATH, else config.yml.
func ConfigPath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return infraconfig.GetConfigPath(defaultConfigPath)
}

// LoadConfig loads and validates configuration. debug forces debug mode on.
func LoadConfig(path string, debug bool) (*config.Config, error) {
	cfg, err := config.Load(ConfigPath(path))
	if err != nil {
		return nil, err
	}
	if debug {
		cfg.Debug = true
	}
	return cfg, nil
}

// CreateLogger builds the service logger tagged with service and version.
// outputPaths defaults to stdout.
func CreateLogger(cfg *config.Config, version string, outputPaths ...string) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Debug,
		OutputPaths: outputPaths,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(
		logger.String("service", serviceName),
		logger.String("version", version),
	), nil
}
