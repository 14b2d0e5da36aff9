package bootstrap

import (
	infragin "github.com/jonesrussell/pulseboard/infrastructure/gin"
	"github.com/jonesrussell/pulseboard/internal/api"
)

// SetupHTTPServer creates the HTTP server for app.
func SetupHTTPServer(app *App) (*infragin.Server, error) {
	deps := api.Deps{
		Boards:  app.Boards,
		Metrics: app.Metrics,
		Version: app.Version,
	}
	if app.Publisher != nil {
		deps.Events = app.Publisher
	}
	return api.NewServer(app.Config, deps, app.Logger)
}
