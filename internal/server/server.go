// Package server wires the application together: router, middleware, the
// session store, the listing engines, and graceful startup/shutdown. It is
// the composition root; every dependency is assembled here and nowhere else.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/raiyan/alumni-network/internal/auth"
	"github.com/raiyan/alumni-network/internal/directory"
	"github.com/raiyan/alumni-network/internal/events"
	"github.com/raiyan/alumni-network/internal/handler"
	"github.com/raiyan/alumni-network/internal/jobs"
	"github.com/raiyan/alumni-network/internal/middleware"
	sqliteRepo "github.com/raiyan/alumni-network/internal/repository/sqlite"
	"github.com/raiyan/alumni-network/internal/session"
)

// Config holds everything the server needs from the environment.
type Config struct {
	Port      int
	DBPath    string
	JWTSecret string
	// Latency is the simulated backend round trip for login/register.
	// Zero disables it; main defaults it to session.DefaultLatency.
	Latency time.Duration
}

// Server owns the router and the resources that need closing on shutdown.
type Server struct {
	router   *chi.Mux
	config   Config
	logger   *slog.Logger
	db       *sqliteRepo.DB
	sessions *session.Store
}

// New assembles the dependency chain:
//
//	sqlite.DB → session.Store → AuthHandler
//	directory/events/jobs engines → listing handlers
//
// Handlers never touch the database; the store owns persistence.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("token service: %w", err)
	}

	sessions := session.New(db, session.Config{Latency: cfg.Latency}, logger)

	// Restore whatever session the slot holds. Never fails: a corrupt or
	// unreadable slot degrades to unauthenticated. The store logs the
	// outcome itself.
	sessions.Restore(context.Background())

	s := &Server{
		router:   chi.NewRouter(),
		config:   cfg,
		logger:   logger,
		db:       db,
		sessions: sessions,
	}
	s.setupRoutes(tokens)

	return s, nil
}

// Sessions exposes the store for callers that embed the server (tests,
// future CLI entry points).
func (s *Server) Sessions() *session.Store {
	return s.sessions
}

func (s *Server) setupRoutes(tokens *auth.TokenService) {
	// Global middleware, in order: request ID first so the logger can use
	// it, recoverer last so a panic in any handler becomes a 500.
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(chimiddleware.Recoverer)

	authHandler := handler.NewAuthHandler(s.sessions, tokens, s.logger)
	dirHandler := handler.NewDirectoryHandler(directory.New(), s.logger)
	eventsHandler := handler.NewEventsHandler(events.New(), s.logger)
	jobsHandler := handler.NewJobsHandler(jobs.New(), s.logger)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/logout", authHandler.HandleLogout)

		r.With(auth.RequireAuth(tokens)).Get("/me", authHandler.HandleMe)

		// Listings are public. Jobs get OptionalAuth so a logged-in
		// caller's saved markers ride along.
		r.Get("/alumni", dirHandler.HandleList)
		r.Get("/alumni/filters", dirHandler.HandleFilters)
		r.Get("/alumni/{id}", dirHandler.HandleGet)

		r.Get("/events", eventsHandler.HandleList)
		r.Get("/events/{id}", eventsHandler.HandleGet)

		r.With(auth.OptionalAuth(tokens)).Get("/jobs", jobsHandler.HandleList)
		r.Get("/jobs/filters", jobsHandler.HandleFilters)
		r.Get("/jobs/{id}", jobsHandler.HandleGet)

		// Actions require a session.
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(tokens))
			r.Post("/events/{id}/register", eventsHandler.HandleRegister)
			r.Post("/jobs/{id}/save", jobsHandler.HandleSave)
			r.Post("/jobs/{id}/apply", jobsHandler.HandleApply)
		})
	})
}

// Handler returns the assembled router. Tests drive it with httptest
// instead of binding a port.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, drain in-flight requests, close
// the database so the WAL is flushed.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
