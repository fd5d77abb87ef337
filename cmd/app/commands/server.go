package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/allisson/imagevault/internal/app"
	"github.com/allisson/imagevault/internal/config"
	appHTTP "github.com/allisson/imagevault/internal/http"
)

// RunServer starts the HTTP and metrics servers with graceful shutdown.
// Configuration is validated up front: a missing signing secret in
// production is a startup failure, never a silent fallback. Blocks until
// SIGINT/SIGTERM or a fatal server error.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()
	secretConfigured := cfg.AuthSecret != ""
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("starting server", slog.String("version", version))
	if !secretConfigured {
		logger.Warn("AUTH_SECRET not set, using an insecure development secret")
	}

	defer closeContainer(container, logger)

	server, err := container.HTTPServer()
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	serverErr := make(chan error, 2)
	go func() {
		if err := server.Start(ctx); err != nil {
			serverErr <- fmt.Errorf("api server error: %w", err)
		}
	}()

	if metricsServer != nil {
		go func() {
			if err := metricsServer.Start(ctx); err != nil {
				serverErr <- fmt.Errorf("metrics server error: %w", err)
			}
		}()
	}

	var cause error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case cause = <-serverErr:
		logger.Error("server error, initiating shutdown", slog.Any("error", cause))
	}

	return shutdownServers(cfg, server, metricsServer, cause)
}

// shutdownServers gracefully stops both servers within the configured timeout.
func shutdownServers(
	cfg *config.Config,
	server *appHTTP.Server,
	metricsServer *appHTTP.MetricsServer,
	cause error,
) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.DBConnMaxLifetime)
	defer cancel()

	var shutdownErrors []error
	if cause != nil {
		shutdownErrors = append(shutdownErrors, cause)
	}

	if err := server.Shutdown(shutdownCtx); err != nil {
		shutdownErrors = append(shutdownErrors, fmt.Errorf("api server shutdown: %w", err))
	}

	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return errors.Join(shutdownErrors...)
	}
	return nil
}
