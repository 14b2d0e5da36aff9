// Package api exposes boards over HTTP.
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/pulseboard/internal/domain"
	"github.com/jonesrussell/pulseboard/internal/presenter"
)

// BoardBuilder builds one board per call.
type BoardBuilder interface {
	Build(ctx context.Context) *domain.Board
}

// BoardHandler serves the board page and its JSON form.
type BoardHandler struct {
	boards  BoardBuilder
	version string
}

// NewBoardHandler builds a handler that collects a fresh board per request.
func NewBoardHandler(boards BoardBuilder, version string) *BoardHandler {
	return &BoardHandler{
		boards:  boards,
		version: version,
	}
}

// Index handles GET /. It responds 200 even when nothing was collected.
func (h *BoardHandler) Index(c *gin.Context) {
	b := h.boards.Build(c.Request.Context())

	c.HTML(http.StatusOK, presenter.IndexTemplate, presenter.Page{
		Board:   b,
		Version: h.version,
	})
}

// Posts handles GET /api/v1/posts.
func (h *BoardHandler) Posts(c *gin.Context) {
	c.JSON(http.StatusOK, h.boards.Build(c.Request.Context()))
}
