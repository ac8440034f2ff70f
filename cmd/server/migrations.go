package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/platform/postgres"
	"github.com/phrazzld/tasks-api/internal/redact"
)

// runMigrations executes a goose command against db using the embedded
// migrations. Every log line of one run carries the same correlation ID.
func runMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	migrationLogger := logger.With(
		slog.String("correlation_id", uuid.New().String()),
		slog.String("command", command),
	)

	startTime := time.Now()
	migrationLogger.Info("Starting migration operation")

	if err := postgres.Migrate(ctx, db, command, migrationLogger); err != nil {
		migrationLogger.Error("Migration failed",
			slog.String("error", redact.Error(err)),
			slog.Duration("duration", time.Since(startTime)))
		return fmt.Errorf("migration %q failed: %w", command, err)
	}

	migrationLogger.Info("Migration operation completed",
		slog.Duration("duration", time.Since(startTime)))
	return nil
}
