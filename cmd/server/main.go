// Command server runs the construction company registry API.
//
// Startup order matters: configuration, then logging, then the database
// (including migrations), then the HTTP server. A failure in any stage
// logs the cause and exits non-zero so orchestrators restart the process.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osconstruct/construct-api/internal/api"
	"github.com/osconstruct/construct-api/internal/api/middleware"
	"github.com/osconstruct/construct-api/internal/config"
	"github.com/osconstruct/construct-api/internal/platform/logger"
	"github.com/osconstruct/construct-api/internal/platform/postgres"
	"github.com/osconstruct/construct-api/internal/redact"
	"github.com/osconstruct/construct-api/internal/service/auth"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", redact.Error(err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("configuration loaded",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", "error", redact.Error(err))
		}
	}()
	log.Info("database connection established")

	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	log.Info("database migrations applied")

	tokens, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("creating token service: %w", err)
	}

	router := newRouter(routerDeps{
		cfg:       cfg,
		db:        db,
		tokens:    tokens,
		passwords: auth.NewBcryptVerifier(),
		validator: api.NewValidator(),
		authMW:    middleware.NewAuthMiddleware(tokens, cfg.Auth),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutdown signal received, draining connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
