package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
	"github.com/paperiq-labs/paperiq-cli/internal/logger"
)

// maxBodyBytes caps the request body for the analyze endpoint.
const maxBodyBytes = 1 << 20 // 1 MiB

// Server is the HTTP API server for PaperIQ.
type Server struct {
	ports    *Ports
	settings domain.ServerSettings
	limiter  *rate.Limiter
	handler  http.Handler
}

// NewServer creates a new HTTP server with the given ports.
// Server settings come from the settings port, falling back to defaults
// when no settings service is wired.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	settings := domain.DefaultAppSettings().Server
	if ports.Settings != nil {
		app, err := ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("loading settings: %w", err)
		}
		settings = app.Server
	}

	s := &Server{
		ports:    ports,
		settings: settings,
		limiter:  rate.NewLimiter(rate.Limit(settings.RateLimit), settings.Burst),
	}
	s.handler = s.routes()

	return s, nil
}

// Handler returns the root HTTP handler. Exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.settings.Addr
}

// Run starts the HTTP server on the configured address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.settings.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	logger.Info("Serving HTTP API on http://%s", s.settings.Addr)
	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// routes builds the request mux.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /analyze", s.rateLimited(s.handleAnalyze))
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /history", s.rateLimited(s.handleHistoryList))
	mux.HandleFunc("GET /history/{id}", s.rateLimited(s.handleHistoryGet))
	mux.HandleFunc("DELETE /history/{id}", s.rateLimited(s.handleHistoryDelete))

	if s.settings.UIEnabled {
		mux.HandleFunc("GET /{$}", s.handleUI)
	}

	return mux
}

// rateLimited wraps a handler with the shared request limiter.
func (s *Server) rateLimited(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "Rate limit exceeded. Try again shortly.")
			return
		}
		next(w, r)
	}
}
