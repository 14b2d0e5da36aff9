package presenter_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/pulseboard/internal/domain"
	"github.com/jonesrussell/pulseboard/internal/presenter"
)

func TestRender_Items(t *testing.T) {
	t.Parallel()

	b := domain.NewBoard("https://news.ycombinator.com/", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), []domain.ClassifiedItem{
		{Text: "I love this community", Label: domain.LabelNeutral},
		{Text: "Toxic <script>alert(1)</script>", Label: domain.LabelNegative, Keywords: []string{"toxic"}},
	})

	var buf bytes.Buffer
	require.NoError(t, presenter.Render(&buf, presenter.Page{Board: b, Version: "v1.2.3"}))
	out := buf.String()

	assert.Contains(t, out, "I love this community")
	assert.Contains(t, out, "label-negative")
	assert.Contains(t, out, "(toxic)")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "<script>alert")
	assert.Contains(t, out, "Negative: 1")
	assert.Contains(t, out, "v1.2.3")
	assert.NotContains(t, out, "No posts were collected")
}

func TestRender_EmptyBoard(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, presenter.Render(&buf, presenter.Page{Board: domain.NewBoard("https://news.ycombinator.com/", time.Now(), nil)}))

	assert.Contains(t, buf.String(), "No posts were collected")
	assert.Contains(t, buf.String(), "Total: 0")
}

func TestTemplates_WithGin(t *testing.T) {
	t.Parallel()

	tmpl, err := presenter.Templates()
	require.NoError(t, err)

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, presenter.IndexTemplate, presenter.Page{Board: domain.NewBoard("src", time.Time{}, nil)})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "collected never")
}
