package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/akulagin/codeshare-server/internal/app"
	"github.com/akulagin/codeshare-server/internal/config"
	"github.com/akulagin/codeshare-server/internal/log"
)

func main() {
	var (
		configPath string
		overrides  config.Config
	)

	root := &cobra.Command{
		Use:          "codeshare-server",
		Short:        "Collaborative code editor backend",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			bootLogger := log.New("info")

			cfg, path, err := config.Load(bootLogger, configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg.UpdateFrom(overrides)

			logger := log.New(cfg.LogLevel)
			logger.Info().Str("config", path).Str("addr", cfg.Addr).Msg("starting codeshare server")

			application, err := app.New(&cfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := application.Run(ctx); err != nil {
				return fmt.Errorf("server exited: %w", err)
			}
			logger.Info().Msg("server stopped")
			return nil
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "path to config file")
	root.Flags().StringVar(&overrides.Addr, "addr", "", "HTTP listen address")
	root.Flags().StringVar(&overrides.DatabasePath, "db", "", "path to the SQLite database")
	root.Flags().StringVar(&overrides.LogLevel, "log-level", "", "log level (debug, info, warn, error)")

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
