// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It is the composition root for the chi router.
  - Only this package and cmd/api import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/userapi/internal/platform/apperr"
	"github.com/taibuivan/userapi/internal/platform/config"
	"github.com/taibuivan/userapi/internal/platform/constants"
	"github.com/taibuivan/userapi/internal/platform/middleware"
	"github.com/taibuivan/userapi/internal/platform/respond"
	"github.com/taibuivan/userapi/internal/users/auth"
	"github.com/taibuivan/userapi/internal/users/collection"
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
	// Liveness is the /health handler; 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler; 200 when all stores are reachable.
	Readiness http.HandlerFunc

	// Auth serves registration and login.
	Auth *auth.Handler

	// Favourites and History serve the two per-user collections.
	Favourites *collection.Handler
	History    *collection.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups. ctx bounds the rate limiter's cleanup loop.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	limiter := middleware.NewRateLimiter(constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst)
	go limiter.Run(ctx, constants.RateLimitCleanupInterval)

	// # Middleware Chain
	r.Use(chimw.SetHeader(constants.HeaderContentType, constants.ContentTypeJSON))
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(limiter.Handler)
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(chimw.CleanPath)

	r.NotFound(routeNotFound)
	r.MethodNotAllowed(methodNotAllowed)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/user", func(api chi.Router) {
		api.Mount("/", h.Auth.Routes())

		// Everything below requires "Authorization: jwt <token>".
		api.Group(func(protected chi.Router) {
			protected.Use(middleware.Authenticate(verifier))
			protected.Mount("/favourites", h.Favourites.Routes())
			protected.Mount("/history", h.History.Routes())
		})
	})

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

// Handler exposes the fully wired router.
func (s *Server) Handler() http.Handler {
	return s.router
}

func routeNotFound(writer http.ResponseWriter, request *http.Request) {
	respond.Error(writer, request, apperr.RouteNotFound())
}

func methodNotAllowed(writer http.ResponseWriter, request *http.Request) {
	respond.Error(writer, request, apperr.MethodNotAllowed())
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
