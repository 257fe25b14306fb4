// Package server defines the core Server struct that composes the app's main dependencies.
//
// It contains the initialization logic to spin up the HTTP server
// and handles graceful shutdowns.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - the outbound HTTP client shared by every collaborator client
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/deppfellow/generic-tools/internal/config"
	"github.com/deppfellow/generic-tools/internal/lib/httpclient"
	"github.com/rs/zerolog"

	loggerPkg "github.com/deppfellow/generic-tools/internal/logger"
)

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself. It holds:
//   - the config
//   - the logger(s)
//   - the outbound HTTP client
//   - an internal *http.Server used to listen and serve requests
type Server struct {
	// Config holds all environment/config values for the app.
	Config *config.Config

	// Logger is the application's main structured logger.
	Logger *zerolog.Logger

	// LoggerService optionally holds the New Relic application instance.
	// If New Relic is disabled, this may exist but contain nil nrApp.
	LoggerService *loggerPkg.LoggerService

	// HTTPClient is used for every call to an external service.
	// Its transport is pooled and, with New Relic enabled, instrumented.
	HTTPClient *http.Client

	// httpServer is configured in SetupHTTPServer and started in Start().
	httpServer *http.Server
}

// New constructs a Server and initializes core dependencies.
//
// It does NOT start the HTTP server. That is done in SetupHTTPServer + Start.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	if err := os.MkdirAll(cfg.Integration.Media.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare media output directory: %w", err)
	}

	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		HTTPClient:    httpclient.New(cfg.HTTPClient, loggerService.GetApplication()),
	}, nil
}

// SetupHTTPServer configures the internal net/http server.
//
// The router is passed in as handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    ":" + s.Config.Server.Port,
		Handler: handler,

		// Config stores int values, interpreted here as seconds.
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It blocks until the server stops.
//
// It requires SetupHTTPServer to be called first. A graceful Shutdown is
// not reported as an error.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server and its dependencies.
//
// It stops accepting connections, waits for inflight requests until
// ctx expires, then releases idle outbound connections and flushes
// New Relic data.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if s.HTTPClient != nil {
		s.HTTPClient.CloseIdleConnections()
	}
	s.LoggerService.Shutdown()

	return nil
}
