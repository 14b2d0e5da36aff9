// Package telemetry exposes pulseboard's Prometheus metrics.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jonesrussell/pulseboard/internal/domain"
)

const namespace = "pulseboard"

// Collection outcomes recorded by RecordCollect.
const (
	ResultOK         = "ok"
	ResultFetchError = "fetch_error"
	ResultEmpty      = "empty"
	ResultParseError = "parse_error"
)

// Metrics holds the pulseboard collectors.
type Metrics struct {
	CollectTotal      *prometheus.CounterVec
	CollectDuration   *prometheus.HistogramVec
	ItemsCollected    prometheus.Gauge
	ItemsClassified   *prometheus.CounterVec
	EventsPublished   *prometheus.CounterVec
	BoardBuildSeconds prometheus.Histogram
}

// Provider owns a registry and its metrics. A nil *Provider records nothing,
// so components can run without metrics in tests.
type Provider struct {
	registry *prometheus.Registry
	Metrics  *Metrics
}

// NewProvider registers the pulseboard metrics plus Go runtime and process
// collectors on a fresh registry.
func NewProvider() *Provider {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Provider{
		registry: reg,
		Metrics:  initMetrics(promauto.With(reg)),
	}
}

func initMetrics(factory promauto.Factory) *Metrics {
	return &Metrics{
		CollectTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collect_total",
			Help:      "Collection attempts by strategy and result (ok, fetch_error, parse_error, empty)",
		}, []string{"strategy", "result"}),

		CollectDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "collect_duration_seconds",
			Help:      "Time to fetch and extract the listing page",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"strategy"}),

		ItemsCollected: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_collect_items",
			Help:      "Number of items returned by the most recent collection",
		}),

		ItemsClassified: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_classified_total",
			Help:      "Classified items by label",
		}, []string{"label"}),

		EventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Board events sent to the Redis stream by result",
		}, []string{"result"}),

		BoardBuildSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "board_build_duration_seconds",
			Help:      "End-to-end time to collect and classify one board",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// Registry returns the provider's registry.
func (p *Provider) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// RecordCollect records one collection attempt.
func (p *Provider) RecordCollect(strategy, result string, items int, duration time.Duration) {
	if p == nil {
		return
	}
	p.Metrics.CollectTotal.WithLabelValues(strategy, result).Inc()
	p.Metrics.CollectDuration.WithLabelValues(strategy).Observe(duration.Seconds())
	p.Metrics.ItemsCollected.Set(float64(items))
}

// RecordClassified counts one classified item.
func (p *Provider) RecordClassified(label domain.Label) {
	if p == nil {
		return
	}
	p.Metrics.ItemsClassified.WithLabelValues(string(label)).Inc()
}

// RecordBoardBuild observes the time to build one board.
func (p *Provider) RecordBoardBuild(duration time.Duration) {
	if p == nil {
		return
	}
	p.Metrics.BoardBuildSeconds.Observe(duration.Seconds())
}

// RecordEventPublished counts a publish attempt; err nil means success.
func (p *Provider) RecordEventPublished(err error) {
	if p == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	p.Metrics.EventsPublished.WithLabelValues(result).Inc()
}
