package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"personal-task-management/internal/httpserver"
	"personal-task-management/pkg/datemath"
	"personal-task-management/pkg/gcalendar"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Apply pending migrations and start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	// 1. Configuration, logger, storage
	cfg, logger, db, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info(ctx, "Starting Personal Task Management...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	if err := db.Migrate(ctx); err != nil {
		logger.Error(ctx, "Failed to migrate database: ", err)
		return err
	}

	// 2. Task domain dependencies
	dateMathParser, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	srvCfg := httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		DB:              db,
		InternalKey:     cfg.Auth.InternalKey,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		DateMath:        dateMathParser,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
	}

	// Google Calendar client (optional)
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			srvCfg.Calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}
	if cfg.Auth.InternalKey == "" {
		logger.Warn(ctx, "auth.internal_key is empty: X-User-ID is trusted without a gateway key")
	}

	// 3. HTTP Server
	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return err
	}

	// 4. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return err
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}
