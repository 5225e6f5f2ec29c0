// Package server exposes maze generation over HTTP.
//
// Routes:
//
//	GET /healthz              build information
//	GET /v1/maze              a rendered maze (svg, json, txt, dot, png, pdf)
//	GET /v1/maze/compare      BFS and DFS statistics for one maze
//
// Query parameters rows, columns, seed, mode, format, size and visualize
// override the server defaults per request. Each request carves its own grid,
// so handlers share nothing but the read-only defaults and the render cache.
// Requests with a seed are deterministic and their renderings are cached.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/mazewalk/pkg/cache"
	"github.com/matzehuels/mazewalk/pkg/pipeline"
)

const (
	// DefaultRequestTimeout bounds a single maze request.
	DefaultRequestTimeout = 30 * time.Second

	shutdownTimeout = 5 * time.Second
)

// Config configures a [Server].
type Config struct {
	Addr     string           // Address to listen on
	Defaults pipeline.Options // Values used when a query parameter is absent
	Timeout  time.Duration    // Per-request timeout; zero means DefaultRequestTimeout
	Cache    cache.Cache      // Renderings of seeded mazes; nil disables caching
	CacheTTL time.Duration    // Lifetime of cached renderings; zero keeps them until evicted
}

// Server serves the maze API.
type Server struct {
	addr     string
	runner   *pipeline.Runner
	logger   *log.Logger
	defaults pipeline.Options
	timeout  time.Duration
	cache    cache.Cache
	cacheTTL time.Duration
	router   chi.Router
}

// New creates a server that builds mazes with runner.
func New(runner *pipeline.Runner, logger *log.Logger, cfg Config) *Server {
	if logger == nil {
		logger = runner.Logger
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultRequestTimeout
	}
	if cfg.Cache == nil {
		cfg.Cache = cache.NewNullCache()
	}
	s := &Server{
		addr:     cfg.Addr,
		runner:   runner,
		logger:   logger,
		defaults: cfg.Defaults,
		timeout:  cfg.Timeout,
		cache:    cfg.Cache,
		cacheTTL: cfg.CacheTTL,
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))

	r.Get("/healthz", s.health)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/maze", s.maze)
		r.Get("/maze/compare", s.compare)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Code: "NOT_FOUND", Message: "no route for " + r.URL.Path})
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("server stopped")
	return ctx.Err()
}
