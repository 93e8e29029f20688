package app

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/akulagin/codeshare-server/internal/config"
	"github.com/akulagin/codeshare-server/internal/core"
	"github.com/akulagin/codeshare-server/internal/store"
	"github.com/akulagin/codeshare-server/internal/store/sqlite"
	transporthttp "github.com/akulagin/codeshare-server/internal/transport/http"
)

// App wires together the room directory, session manager, and transport.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	sessions        *core.SessionManager
	directory       store.Directory
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg *config.Config, logger *zerolog.Logger) (*App, error) {
	directory, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init room directory: %w", err)
	}

	logger.Info().Str("db_path", cfg.DatabasePath).Msg("room directory initialized")

	sessions := core.NewSessionManager(logger)
	server := transporthttp.NewServer(sessions, directory, cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		sessions:        sessions,
		directory:       directory,
		log:             logger,
	}, nil
}

// Run starts the HTTP server and blocks until context cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		a.cleanup()
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.cleanup()
			return err
		}

		a.cleanup()
		return <-serverErr
	}
}

// cleanup closes the room directory and other resources.
func (a *App) cleanup() {
	if a.directory != nil {
		if err := a.directory.Close(); err != nil {
			a.log.Warn().Err(err).Msg("failed to close room directory")
		} else {
			a.log.Info().Msg("room directory closed")
		}
	}
}
