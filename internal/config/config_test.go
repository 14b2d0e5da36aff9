package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/pulseboard/internal/config"
)

// chdirTemp isolates tests from any .env files in the package directory.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	dir := chdirTemp(t)

	cfg, err := config.Load(filepath.Join(dir, "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, config.StrategyHTML, cfg.Collector.Strategy)
	assert.Equal(t, "https://news.ycombinator.com/", cfg.Collector.URL)
	assert.Equal(t, "SocialImpactPrototype/1.0", cfg.Collector.UserAgent)
	assert.Equal(t, 10*time.Second, cfg.Collector.Timeout)
	assert.Equal(t, int64(5<<20), cfg.Collector.MaxBodyBytes)
	assert.Equal(t, config.DefaultNegativeKeywords, cfg.Classifier.NegativeKeywords)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Events.Enabled)
	assert.Equal(t, "pulseboard-events", cfg.Events.Stream)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 8080
collector:
  strategy: feed
  url: https://hnrss.org/frontpage
  timeout: 3s
classifier:
  negative_keywords: [scam]
`), 0o600))

	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("NEGATIVE_KEYWORDS", "fraud, spam")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, config.StrategyFeed, cfg.Collector.Strategy)
	assert.Equal(t, "https://hnrss.org/frontpage", cfg.Collector.URL)
	assert.Equal(t, 3*time.Second, cfg.Collector.Timeout)
	assert.Equal(t, []string{"fraud", "spam"}, cfg.Classifier.NegativeKeywords)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "defaults valid", mutate: func(*config.Config) {}},
		{
			name:    "bad port",
			mutate:  func(c *config.Config) { c.Server.Port = 70000 },
			wantErr: "server.port",
		},
		{
			name:    "unknown strategy",
			mutate:  func(c *config.Config) { c.Collector.Strategy = "xpath" },
			wantErr: "collector.strategy",
		},
		{
			name:    "non http url",
			mutate:  func(c *config.Config) { c.Collector.URL = "ftp://example.com" },
			wantErr: "collector.url",
		},
		{
			name:    "unparseable selector",
			mutate:  func(c *config.Config) { c.Collector.Selector = "span.titleline > a[" },
			wantErr: "collector.selector",
		},
		{
			name: "selector ignored for feeds",
			mutate: func(c *config.Config) {
				c.Collector.Strategy = config.StrategyFeed
				c.Collector.Selector = "span.titleline > a["
			},
		},
		{
			name:    "zero timeout",
			mutate:  func(c *config.Config) { c.Collector.Timeout = -time.Second },
			wantErr: "collector.timeout",
		},
		{
			name:    "bad log level",
			mutate:  func(c *config.Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name: "events without stream",
			mutate: func(c *config.Config) {
				c.Events.Enabled = true
				c.Events.Stream = ""
			},
			wantErr: "events.stream",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
