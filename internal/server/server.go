// Package server exposes a ready poet over HTTP.
//
// # Endpoints
//
//   - POST /render   {"input": "..."} → {"output": "..."}
//   - GET  /bridge   ?prev=..&cur=.. → best bridge word and all candidates
//   - GET  /stats    graph size and request counters
//   - GET  /healthz  liveness probe
//
// POST /render rejects inputs longer than 64 KiB (MaxInputLength in
// pkg/errors) with 400 INVALID_INPUT. That limit bounds request bodies only; the poet renders input
// of any length, as the CLI does.
//
// The poet is never mutated after construction, so handlers share it across
// request goroutines without locking.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/wordbridge/pkg/observability"
	"github.com/matzehuels/wordbridge/pkg/poet"
)

const (
	// shutdownTimeout bounds graceful shutdown after the context is cancelled.
	shutdownTimeout = 5 * time.Second

	// requestTimeout bounds a single request.
	requestTimeout = 10 * time.Second
)

// Server serves a single poet.
type Server struct {
	poet     *poet.Poet
	logger   *log.Logger
	counters *observability.Counters
	router   chi.Router
}

// New creates a Server for p. counters may be nil, in which case /stats
// reports only the graph size.
func New(p *poet.Poet, logger *log.Logger, counters *observability.Counters) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{poet: p, logger: logger, counters: counters}
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", s.handleHealth)
	r.Get("/stats", s.handleStats)
	r.Get("/bridge", s.handleBridge)
	r.Post("/render", s.handleRender)
	return r
}

// Serve listens on addr and serves until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.serveListener(ctx, ln)
}

func (s *Server) serveListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.logger.Info("Serving", "addr", ln.Addr().String(), "graph", s.poet.String())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("Server stopped")
	return nil
}
