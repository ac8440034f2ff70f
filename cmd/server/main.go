// Package main implements the entry point for the tasks API server,
// which serves create, list, update and delete operations over tasks
// stored in PostgreSQL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
)

// main is the entry point for the tasks-api server.
// It loads configuration, sets up logging, connects to the database,
// applies migrations and serves HTTP until SIGINT or SIGTERM.
func main() {
	migrateCmd := flag.String(
		"migrate",
		"",
		"Run a database migration command and exit (up, up-by-one, down, reset, status, version)",
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *migrateCmd); err != nil {
		slog.Error("Application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run wires the process together. With a non-empty migrateCmd it only runs
// that migration command against the configured database.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := initializeApp()
	if err != nil {
		return err
	}
	log := slog.Default()

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if migrateCmd != "" {
		defer func() { _ = db.Close() }()
		return runMigrations(ctx, db, migrateCmd, log)
	}

	if err := runMigrations(ctx, db, "up", log); err != nil {
		_ = db.Close()
		return err
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// initializeApp loads configuration and sets up structured logging.
// Returns the loaded config and any initialization error.
func initializeApp() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel}); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Any("allowed_origins", cfg.Server.AllowedOrigins))

	return cfg, nil
}
