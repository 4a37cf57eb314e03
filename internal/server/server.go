// Package server exposes the layout pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz                  liveness
//	GET  /version                  build information
//	GET  /metrics                  Prometheus metrics
//	GET  /api/v1/vibes             vibe catalog
//	GET  /api/v1/vibes/{id}        one vibe (aliases resolve)
//	POST /api/v1/layouts           generate one layout
//	POST /api/v1/layouts/best      best-of-N (count defaults to DefaultBestCount)
//	POST /api/v1/layouts/quick     defaults-filled generation
//	POST /api/v1/score             re-score an existing layout
//
// Errors are JSON: {"error":{"code":"INVALID_CANVAS","message":"..."}}.
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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/vibegrid/pkg/pipeline"
)

// Server defaults.
const (
	DefaultBestCount    = 10
	DefaultRequestLimit = 30 * time.Second
	maxBodyBytes        = 1 << 20
)

// Options configures a Server.
type Options struct {
	Addr            string
	ShutdownTimeout time.Duration
	MaxBestCount    int

	// Registry is served on /metrics. Nil disables the endpoint.
	Registry *prometheus.Registry
}

// Server is the HTTP API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	opts   Options
}

// New creates a server around runner.
func New(runner *pipeline.Runner, logger *log.Logger, opts Options) *Server {
	if logger == nil {
		logger = runner.Logger
	}
	if opts.MaxBestCount <= 0 {
		opts.MaxBestCount = pipeline.DefaultMaxCount
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	return &Server{runner: runner, logger: logger, opts: opts}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(DefaultRequestLimit))

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	if s.opts.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.opts.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/vibes", s.handleListVibes)
		r.Get("/vibes/{id}", s.handleGetVibe)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			r.Use(limitBody)
			r.Post("/layouts", s.handleGenerate)
			r.Post("/layouts/best", s.handleBest)
			r.Post("/layouts/quick", s.handleQuick)
			r.Post("/score", s.handleScore)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errNotFound("no route for %s %s", r.Method, r.URL.Path))
	})
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := s.httpServer(ctx)

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", s.opts.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("server forced to shutdown", "err", err)
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

// httpServer builds the listener config. Requests inherit ctx's values but
// not its cancellation, so Shutdown can drain in-flight work.
func (s *Server) httpServer(ctx context.Context) *http.Server {
	base := context.WithoutCancel(ctx)
	return &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return base },
	}
}

func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}
