package collector_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/pulseboard/internal/collector"
	"github.com/jonesrussell/pulseboard/internal/config"
	"github.com/jonesrussell/pulseboard/internal/telemetry"
)

const rssFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>Hacker News: Front Page</title>
<link>https://news.ycombinator.com/</link>
<item><title>Show HN: A toxic-free forum</title><link>https://a.example</link></item>
<item><title>   </title><link>https://b.example</link></item>
<item><title>Go 1.25 released</title><link>https://c.example</link></item>
</channel></rss>`

const atomFeed = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
<title>Example</title>
<entry><title>First entry</title><link href="https://a.example"/><id>1</id></entry>
<entry><title>Second entry</title><link href="https://b.example"/><id>2</id></entry>
</feed>`

func TestExtractFeed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want []string
	}{
		{name: "rss skips blank titles", body: rssFeed, want: []string{"Show HN: A toxic-free forum", "Go 1.25 released"}},
		{name: "atom", body: atomFeed, want: []string{"First entry", "Second entry"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := collector.ExtractFeed([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractFeed_NotAFeed(t *testing.T) {
	t.Parallel()

	_, err := collector.ExtractFeed([]byte("definitely not xml"))

	var parseErr *collector.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestCollect_FeedStrategy(t *testing.T) {
	t.Parallel()

	var gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssFeed))
	}))
	t.Cleanup(srv.Close)

	cfg := collectorConfig(srv.URL)
	cfg.Strategy = config.StrategyFeed
	c, metrics := newCollector(t, cfg)

	items := c.Collect(context.Background())

	assert.Equal(t, []string{"Show HN: A toxic-free forum", "Go 1.25 released"}, items)
	assert.Contains(t, gotAccept, "application/rss+xml")
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.Metrics.CollectTotal.WithLabelValues("feed", telemetry.ResultOK)), 0)
}

func TestCollect_FeedParseErrorIsEmpty(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<<<"))
	}))
	t.Cleanup(srv.Close)

	cfg := collectorConfig(srv.URL)
	cfg.Strategy = config.StrategyFeed
	c, metrics := newCollector(t, cfg)

	assert.Empty(t, c.Collect(context.Background()))
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.Metrics.CollectTotal.WithLabelValues("feed", telemetry.ResultParseError)), 0)
}
