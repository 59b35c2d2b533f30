// Package server implements spec §6.5's read-only query HTTP surface,
// grounded on pkg/server/server.go's chi-router-plus-graceful-shutdown
// shape, trimmed of everything tied to a mutable document store.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/graphql-go/graphql"

	"github.com/alyson-g/text-retrieval-engine/internal/logging"
	"github.com/alyson-g/text-retrieval-engine/internal/reader"
	"github.com/alyson-g/text-retrieval-engine/internal/tokenizer"
)

// Server is the HTTP surface in front of one index build's artifacts.
type Server struct {
	config        Config
	router        *chi.Mux
	httpSrv       *http.Server
	scorer        *reader.Scorer
	tokenizer     *tokenizer.Tokenizer
	logger        *logging.Logger
	progress      *ProgressHub
	graphqlSchema graphql.Schema
	startTime     time.Time
}

// New builds a Server over an already-loaded Scorer. tok must use the
// same tokenizer mode the index was built with, or query terms will
// not match lexicon entries.
func New(cfg Config, scorer *reader.Scorer, tok *tokenizer.Tokenizer) (*Server, error) {
	s := &Server{
		config:    cfg,
		router:    chi.NewRouter(),
		scorer:    scorer,
		tokenizer: tok,
		logger:    logging.New(),
		startTime: time.Now(),
	}

	if cfg.EnableProgress {
		s.progress = NewProgressHub()
	}

	s.setupMiddleware()
	s.setupRoutes()

	if cfg.EnableGraphQL {
		schema, err := s.buildGraphQLSchema()
		if err != nil {
			return nil, fmt.Errorf("server: build graphql schema: %w", err)
		}
		s.graphqlSchema = schema
		s.router.Post("/graphql", s.handleGraphQL)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s, nil
}

// Progress returns the hub served on /ingest/progress, or nil if
// progress streaming was not enabled. cmd/indexer does not use this
// hub; it broadcasts on its own hub served by ServeProgressOnly.
func (s *Server) Progress() *ProgressHub {
	return s.progress
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)

	if s.config.EnableLogging {
		s.router.Use(middleware.Logger)
	}
	if s.config.EnableCORS {
		s.router.Use(s.corsMiddleware)
	}

	s.router.Use(s.requestSizeLimitMiddleware)
	s.router.Use(middleware.Timeout(60 * time.Second))
}

func (s *Server) setupRoutes() {
	s.router.Get("/_health", s.handleHealth)
	s.router.Post("/query", s.handleQuery)

	if s.config.EnableProgress {
		s.router.Get("/ingest/progress", s.progress.HandleWebSocket)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":     true,
		"uptime": time.Since(s.startTime).String(),
	})
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := "*"
		if len(s.config.AllowedOrigins) > 0 {
			origin = s.config.AllowedOrigins[0]
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestSizeLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxRequestSize)
		next.ServeHTTP(w, r)
	})
}

// Start runs the HTTP server until it errors or receives an interrupt
// signal, then shuts down gracefully.
func (s *Server) Start() error {
	s.logger.Info("🚀", "query server starting on http://%s", s.httpSrv.Addr)

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		s.logger.Warn("received signal: %v", sig)
		return s.Shutdown()
	}
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown() error {
	s.logger.Info("🛑", "shutting down query server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpSrv.Shutdown(ctx); err != nil {
		s.logger.Error("shutdown error: %v", err)
		return err
	}

	s.logger.Info("✅", "query server shutdown complete")
	return nil
}
