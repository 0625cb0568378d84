package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"personal-task-management/config"
	_ "personal-task-management/docs" // Swagger docs
	"personal-task-management/pkg/log"
	pkgSqlite "personal-task-management/pkg/sqlite"
)

// version is set at build time using -ldflags.
var version = "dev"

// @title       Personal Task Management API
// @description Hierarchical task lists with subtasks, daily stats and an optional Google Calendar mirror.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "api",
		Short:         "Personal task management API",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newCalendarAuthCommand(),
	)
	return root
}

// bootstrap loads config, builds the logger and opens the database.
func bootstrap(ctx context.Context) (*config.Config, log.Logger, *pkgSqlite.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	db, err := pkgSqlite.Open(ctx, pkgSqlite.Config{
		Path:        cfg.Database.Path,
		BusyTimeout: cfg.Database.BusyTimeout,
	}, logger)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, logger, db, nil
}
