// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Every dashboard route lives under the catalog base path, e.g. /antiquewarehouse.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/migrationboard/internal/auth"
	"github.com/taibuivan/migrationboard/internal/catalog"
	"github.com/taibuivan/migrationboard/internal/platform/apperr"
	"github.com/taibuivan/migrationboard/internal/platform/config"
	"github.com/taibuivan/migrationboard/internal/platform/constants"
	"github.com/taibuivan/migrationboard/internal/platform/middleware"
	"github.com/taibuivan/migrationboard/internal/platform/respond"
	"github.com/taibuivan/migrationboard/internal/report"
	"github.com/taibuivan/migrationboard/internal/urlmap"
	"github.com/taibuivan/migrationboard/internal/web"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler and always returns 200 if the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler and returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Session opens and closes dashboard sessions.
	Session *auth.Handler

	// Catalog serves categories, products and quality counters.
	Catalog *catalog.Handler

	// URLs serves the redirect list.
	URLs *urlmap.Handler

	// Reports serves the overview and the PDF report.
	Reports *report.Handler

	// Web renders the HTML dashboard.
	Web *web.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups. The rate limiter's cleanup loop runs until ctx
// is cancelled.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.SessionVerifier, h Handlers) *Server {
	limiter := middleware.NewRateLimiter(constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst)
	go limiter.Cleanup(ctx)

	r := NewRouter(cfg, log, limiter, verifier, h)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// NewRouter builds the routing tree without starting a server.
func NewRouter(cfg *config.Config, log *slog.Logger, limiter *middleware.RateLimiter, verifier middleware.SessionVerifier, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	base := cfg.BasePath()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(limiter.Middleware)
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier, cfg.SessionCookie))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	r.Get("/", func(writer http.ResponseWriter, request *http.Request) {
		http.Redirect(writer, request, base+"/", http.StatusFound)
	})

	r.Route(base, func(dashboard chi.Router) {

		// # Application API
		// JSON API under a versioned prefix. Only the session routes are public.
		dashboard.Route("/api/v1", func(api chi.Router) {
			api.NotFound(func(writer http.ResponseWriter, request *http.Request) {
				respond.Error(writer, request, apperr.NotFound("Route"))
			})

			h.Session.RegisterRoutes(api)

			api.Group(func(gated chi.Router) {
				gated.Use(middleware.RequireSession)
				h.Catalog.RegisterRoutes(gated)
				h.URLs.RegisterRoutes(gated)
				h.Reports.RegisterRoutes(gated)
			})
		})

		// # HTML Dashboard
		h.Web.RegisterRoutes(dashboard)
	})

	return r
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
