package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Spigel00/work-force-matchup/internal/app"
	"github.com/Spigel00/work-force-matchup/internal/auth"
	"github.com/Spigel00/work-force-matchup/internal/config"
	"github.com/Spigel00/work-force-matchup/internal/http/handlers"
	"github.com/Spigel00/work-force-matchup/internal/middleware"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, a *app.App, logger *slog.Logger) *Server {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           Routes(cfg.CORSOrigins, a, tokens, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Routes builds the router for the whole HTTP surface.
func Routes(corsOrigins []string, a *app.App, tokens *auth.TokenManager, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(corsOrigins))
	r.Use(middleware.Authenticate(tokens, logger))

	handlers.NewHealthHandler(time.Now()).Register(r)
	handlers.NewAuthHandler(a, tokens).Register(r)
	handlers.NewJobsHandler(a).Register(r)
	handlers.NewWorkersHandler(a).Register(r)
	handlers.NewEmployersHandler(a).Register(r)
	handlers.NewDataHandler(a).Register(r)

	return r
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
