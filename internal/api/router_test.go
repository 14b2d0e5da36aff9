package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/pulseboard/infrastructure/logger"
	"github.com/jonesrussell/pulseboard/internal/api"
	"github.com/jonesrussell/pulseboard/internal/config"
	"github.com/jonesrussell/pulseboard/internal/domain"
	"github.com/jonesrussell/pulseboard/internal/telemetry"
)

type stubBoards struct {
	board *domain.Board
	calls int
}

func (s *stubBoards) Build(context.Context) *domain.Board {
	s.calls++
	return s.board
}

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("connection refused") }

var collectedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T, b *domain.Board, events api.Pinger) (http.Handler, *stubBoards) {
	t.Helper()

	boards := &stubBoards{board: b}
	srv, err := api.NewServer(config.Default(), api.Deps{
		Boards:  boards,
		Metrics: telemetry.NewProvider(),
		Events:  events,
		Version: "test",
	}, logger.NewNop())
	require.NoError(t, err)

	return srv.Router(), boards
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, http.NoBody))
	return w
}

func TestIndex_RendersItems(t *testing.T) {
	b := domain.NewBoard("https://news.ycombinator.com/", collectedAt, []domain.ClassifiedItem{
		{Text: "I love this community", Label: domain.LabelNeutral},
		{Text: "This platform spreads misinformation daily", Label: domain.LabelNegative, Keywords: []string{"misinformation"}},
	})
	router, boards := newTestServer(t, b, nil)

	w := get(router, "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "I love this community")
	assert.Contains(t, w.Body.String(), "This platform spreads misinformation daily")
	assert.Equal(t, 1, boards.calls)
}

func TestIndex_EmptyBoardIs200(t *testing.T) {
	b := domain.NewBoard("https://news.ycombinator.com/", collectedAt, nil)
	b.Degraded = true
	router, _ := newTestServer(t, b, nil)

	w := get(router, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No posts were collected")
}

func TestPosts_JSON(t *testing.T) {
	b := domain.NewBoard("https://news.ycombinator.com/", collectedAt, []domain.ClassifiedItem{
		{Text: "HATEFUL content", Label: domain.LabelNegative, Keywords: []string{"hate"}},
	})
	router, _ := newTestServer(t, b, nil)

	w := get(router, "/api/v1/posts")
	require.Equal(t, http.StatusOK, w.Code)

	var got domain.Board
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "https://news.ycombinator.com/", got.Source)
	assert.Equal(t, 1, got.Counts.Negative)
	require.Len(t, got.Items, 1)
	assert.Equal(t, domain.LabelNegative, got.Items[0].Label)
	assert.Equal(t, []string{"hate"}, got.Items[0].Keywords)
}

func TestPosts_EmptyItemsIsArray(t *testing.T) {
	router, _ := newTestServer(t, domain.NewBoard("src", collectedAt, nil), nil)

	w := get(router, "/api/v1/posts")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"items":[]`)
}

func TestMetricsAndHealth(t *testing.T) {
	router, _ := newTestServer(t, domain.NewBoard("src", collectedAt, nil), nil)

	metrics := get(router, "/metrics")
	assert.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), "go_goroutines")

	health := get(router, "/health")
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Contains(t, health.Body.String(), `"service":"pulseboard"`)
}

func TestHealth_RedisDownIsDegraded(t *testing.T) {
	router, _ := newTestServer(t, domain.NewBoard("src", collectedAt, nil), failingPinger{})

	w := get(router, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}
