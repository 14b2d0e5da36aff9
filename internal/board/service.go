// Package board runs one collect-and-classify pass and assembles the result.
package board

import (
	"context"
	"time"

	infracontext "github.com/jonesrussell/pulseboard/infrastructure/context"
	"github.com/jonesrussell/pulseboard/infrastructure/logger"
	"github.com/jonesrussell/pulseboard/internal/domain"
	"github.com/jonesrussell/pulseboard/internal/telemetry"
)

// Collector yields the raw titles for one pass. It never fails; a failed
// fetch is an empty slice.
type Collector interface {
	Collect(ctx context.Context) []string
	Target() string
}

// Classifier labels one title.
type Classifier interface {
	ClassifyItem(text string) domain.ClassifiedItem
}

// Publisher announces a built board. Implementations swallow their own errors.
type Publisher interface {
	PublishBoard(ctx context.Context, b *domain.Board, requestID string)
}

// Service builds boards. It holds no per-request state.
type Service struct {
	collector  Collector
	classifier Classifier
	publisher  Publisher
	metrics    *telemetry.Provider
	log        logger.Logger
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithPublisher sets the event publisher.
func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithMetrics sets the metrics provider.
func WithMetrics(m *telemetry.Provider) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service.
func NewService(c Collector, cl Classifier, log logger.Logger, opts ...Option) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	s := &Service{
		collector:  c,
		classifier: cl,
		log:        log,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build collects once and classifies every item in order. The board is
// marked degraded when nothing was collected.
func (s *Service) Build(ctx context.Context) *domain.Board {
	start := time.Now()

	raw := s.collector.Collect(ctx)

	items := make([]domain.ClassifiedItem, 0, len(raw))
	for _, text := range raw {
		item := s.classifier.ClassifyItem(text)
		s.metrics.RecordClassified(item.Label)
		items = append(items, item)
	}

	b := domain.NewBoard(s.collector.Target(), s.now().UTC(), items)
	b.Degraded = len(raw) == 0
	s.metrics.RecordBoardBuild(time.Since(start))

	s.log.Info("Board built",
		logger.String("source", b.Source),
		logger.Int("total", b.Counts.Total),
		logger.Int("negative", b.Counts.Negative),
		logger.Bool("degraded", b.Degraded),
		logger.Duration("duration", time.Since(start)),
	)

	if s.publisher != nil {
		s.publisher.PublishBoard(ctx, b, infracontext.RequestID(ctx))
	}

	return b
}
