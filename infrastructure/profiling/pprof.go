// Package profiling exposes net/http/pprof on a loopback-only side port.
package profiling

import (
	"errors"
	"net"
	"net/http"
	"net/http/pprof"
	"os"
	"time"

	"github.com/jonesrussell/pulseboard/infrastructure/logger"
)

const (
	defaultPprofPort  = "6060"
	readHeaderTimeout = 5 * time.Second
)

// Enabled reports whether ENABLE_PROFILING=true.
func Enabled() bool {
	return os.Getenv("ENABLE_PROFILING") == "true"
}

// Addr returns the loopback pprof address, honouring PPROF_PORT.
func Addr() string {
	port := os.Getenv("PPROF_PORT")
	if port == "" {
		port = defaultPprofPort
	}
	return net.JoinHostPort("localhost", port)
}

// NewMux returns a mux serving the standard /debug/pprof endpoints.
func NewMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return mux
}

// StartPprofServer serves pprof in the background when profiling is enabled.
// It returns the server so callers can close it on shutdown, or nil when disabled.
func StartPprofServer(log logger.Logger) *http.Server {
	if !Enabled() {
		return nil
	}

	srv := &http.Server{
		Addr:              Addr(),
		Handler:           NewMux(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info("Starting pprof server",
			logger.String("address", srv.Addr),
			logger.String("profiles", "http://"+srv.Addr+"/debug/pprof/"),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("pprof server error", logger.Error(err))
		}
	}()

	return srv
}
