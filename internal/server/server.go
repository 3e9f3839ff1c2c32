// Package server exposes the kb_Msuite JSON-RPC endpoint and a small REST
// API for parameter schema discovery, validation and the run history.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/me/msuite/internal/cmdline"
	"github.com/me/msuite/internal/config"
	"github.com/me/msuite/internal/logging"
	"github.com/me/msuite/internal/store"
	"github.com/me/msuite/internal/validate"
)

// Version is reported by the status method and the health endpoint.
const Version = "0.0.1"

// Server is the msuite HTTP server.
type Server struct {
	router    chi.Router
	logger    *slog.Logger
	config    config.ServerConfig
	startTime time.Time
	validator *validate.Validator
	builder   *cmdline.Builder
	runner    ToolRunner
	store     store.Store
}

// Option configures optional Server dependencies.
type Option func(*Server)

// WithRunner sets the ToolRunner that receives validated records. The
// default is a DryRunRunner.
func WithRunner(runner ToolRunner) Option {
	return func(s *Server) {
		s.runner = runner
	}
}

// WithStore records every run call in st and serves the run history.
func WithStore(st store.Store) Option {
	return func(s *Server) {
		s.store = st
	}
}

// New creates a new Server with all routes registered.
func New(cfg config.ServerConfig, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		logger:    logging.Component(logger, "server"),
		config:    cfg,
		startTime: time.Now(),
		validator: validate.NewValidator(logger),
		builder:   cmdline.NewBuilder(cfg.CheckM, cfg.ScratchDir),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.runner == nil {
		s.runner = NewDryRunRunner(s.builder, logger)
	}

	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))

	// KBase SDK clients post every call to the root as well as to /rpc.
	r.Post("/", s.handleRPC)
	r.Post("/rpc", s.handleRPC)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/", s.handleDiscovery)
		r.Get("/health", s.handleHealth)

		r.Route("/params", func(r chi.Router) {
			r.Get("/", s.handleListKinds)
			r.Get("/{kind}", s.handleGetKind)
			r.Post("/{kind}/validate", s.handleValidate)
		})

		r.Route("/runs", func(r chi.Router) {
			r.Get("/", s.handleListRuns)
			r.Get("/{id}", s.handleGetRun)
		})
	})
}
