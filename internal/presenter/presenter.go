// Package presenter renders boards as HTML.
package presenter

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/jonesrussell/pulseboard/internal/domain"
)

// IndexTemplate is the name of the board page template.
const IndexTemplate = "index.html"

//go:embed templates/*.html
var templatesFS embed.FS

// Page is the data passed to IndexTemplate.
type Page struct {
	Board   *domain.Board
	Version string
}

var funcs = template.FuncMap{
	"formatTime": func(t time.Time) string {
		if t.IsZero() {
			return "never"
		}
		return t.UTC().Format(time.RFC1123)
	},
	"join": strings.Join,
}

// Templates parses the embedded templates. The result is safe for concurrent
// execution and is meant to be handed to gin.Engine.SetHTMLTemplate.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// Render writes the board page to w without going through gin.
func Render(w io.Writer, page Page) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}
	if err := tmpl.ExecuteTemplate(w, IndexTemplate, page); err != nil {
		return fmt.Errorf("render %s: %w", IndexTemplate, err)
	}
	return nil
}
