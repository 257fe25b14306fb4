package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/generic-tools/internal/config"
	"github.com/deppfellow/generic-tools/internal/handler"
	"github.com/deppfellow/generic-tools/internal/logger"
	"github.com/deppfellow/generic-tools/internal/router"
	"github.com/deppfellow/generic-tools/internal/server"
	"github.com/deppfellow/generic-tools/internal/service"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const flagShutdownTimeout = "shutdown-timeout"

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server. Configuration is read from TOOLS_ environment
variables and an optional .env file in the working directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			timeout, err := cmd.Flags().GetDuration(flagShutdownTimeout)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, timeout)
		},
	}

	cmd.Flags().Duration(flagShutdownTimeout, 30*time.Second, "time to wait for inflight requests on shutdown")
	return cmd
}

func serve(ctx context.Context, shutdownTimeout time.Duration) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)
	if err != nil {
		log.Warn().Err(err).Msg("continuing without New Relic")
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		return errors.Wrap(err, "failed to initialize server")
	}

	services, err := service.NewServices(srv)
	if err != nil {
		return errors.Wrap(err, "failed to create services")
	}

	handlers := handler.NewHandlers(srv, services)
	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return errors.Wrap(err, "failed to start server")
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
	return nil
}
