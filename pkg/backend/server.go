// Package backend provides the HTTP server for the animal fact service:
// route setup, the middleware chain, and graceful shutdown.
package backend

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cecil-the-coder/animal-fact-kit/pkg/backend/handlers"
	"github.com/cecil-the-coder/animal-fact-kit/pkg/backend/middleware"
	"github.com/cecil-the-coder/animal-fact-kit/pkg/backendtypes"
	"github.com/cecil-the-coder/animal-fact-kit/pkg/facts"
	"github.com/cecil-the-coder/animal-fact-kit/pkg/registry"
)

// Server ties the fact service, registry, and HTTP plumbing together
type Server struct {
	config     backendtypes.BackendConfig
	httpServer *http.Server
	service    *facts.Service
	registry   *registry.Registry
	mux        *http.ServeMux
}

// NewServer creates a server over an already-populated registry
func NewServer(config backendtypes.BackendConfig, service *facts.Service, reg *registry.Registry) *Server {
	s := &Server{
		config:   config,
		service:  service,
		registry: reg,
		mux:      http.NewServeMux(),
	}

	s.setupRoutes()

	return s
}

// setupRoutes registers all HTTP routes with their corresponding handlers
func (s *Server) setupRoutes() {
	factHandler := handlers.NewFactHandler(s.service, s.registry, s.config.Facts.DefaultAnimal)
	healthHandler := handlers.NewHealthHandler(s.config.Server.Version)

	s.mux.HandleFunc("/fact", factHandler.GetFact)
	s.mux.HandleFunc("/health-check", healthHandler.HealthCheck)
}

// Handler returns the fully wrapped handler, exposed for tests
func (s *Server) Handler() http.Handler {
	return s.applyMiddleware(s.mux)
}

// Start starts the HTTP server and begins listening for requests
func (s *Server) Start() error {
	handler := s.applyMiddleware(s.mux)

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	log.Printf("Starting server on %s (version: %s)", addr, s.config.Server.Version)
	log.Printf("Registered %d animal kind(s):", s.registry.Len())
	for _, kind := range s.registry.Kinds() {
		log.Printf("  - %s", kind)
	}

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down server...")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}

// applyMiddleware builds the middleware chain and applies it to the handler
// Middleware is applied in reverse order (last applied runs first)
func (s *Server) applyMiddleware(h http.Handler) http.Handler {
	// Execution order: Recovery -> Logging -> RequestID -> RateLimit -> CORS -> Handler

	if s.config.CORS.Enabled {
		h = middleware.CORS(middleware.CORSConfig{
			AllowedOrigins: s.config.CORS.AllowedOrigins,
			AllowedMethods: s.config.CORS.AllowedMethods,
			AllowedHeaders: s.config.CORS.AllowedHeaders,
		})(h)
	}

	if s.config.RateLimit.Enabled {
		h = middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: s.config.RateLimit.RequestsPerSecond,
			Burst:             s.config.RateLimit.Burst,
		})(h)
	}

	// Apply request ID middleware (always enabled)
	h = middleware.RequestID(h)

	// Apply logging middleware (always enabled)
	h = middleware.Logging(h)

	// Apply recovery middleware (always enabled, outermost)
	h = middleware.Recovery(h)

	return h
}

// ListenAndServeWithGracefulShutdown starts the server and handles graceful shutdown
// This is a convenience method that starts the server and waits for shutdown signal
func (s *Server) ListenAndServeWithGracefulShutdown(shutdownSignal <-chan struct{}) error {
	errChan := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-shutdownSignal:
		timeout := s.config.Server.ShutdownTimeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return s.Shutdown(ctx)
	}
}
