package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/migrate"
)

// handleMigrations runs one goose command against db. Every log line of the
// run shares a correlation id.
func handleMigrations(
	ctx context.Context,
	cfg *config.Config,
	db *sql.DB,
	command string,
	logger *slog.Logger,
) error {
	log := logger.With(
		"correlation_id", uuid.New().String(),
		"command", command,
		"driver", cfg.Database.Driver)

	start := time.Now()
	log.Info("starting migration operation")

	if err := migrate.Run(ctx, db, cfg.Database.Driver, command, log); err != nil {
		log.Error("migration operation failed",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	log.Info("migration operation completed", "duration_ms", time.Since(start).Milliseconds())
	return nil
}
