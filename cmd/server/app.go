package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/events"
	"github.com/phrazzld/todo-api/internal/platform/migrate"
	"github.com/phrazzld/todo-api/internal/platform/postgres"
	"github.com/phrazzld/todo-api/internal/platform/sqlite"
	"github.com/phrazzld/todo-api/internal/seed"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
)

// application holds the shared dependencies of the server and owns their
// cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	taskStore     store.TaskStore
	categoryStore store.CategoryStore

	catalog      *service.CategoryCatalog
	codec        *service.TaskCodec
	taskService  service.TaskService
	eventEmitter *events.InMemoryEventEmitter
	seeder       *seed.Seeder
}

// newApplication wires stores, services and the seeder over db.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	switch cfg.Database.Driver {
	case migrate.DriverPostgres:
		app.taskStore = postgres.NewPostgresTaskStore(db, logger)
		app.categoryStore = postgres.NewPostgresCategoryStore(db, logger)
	case migrate.DriverSQLite:
		app.taskStore = sqlite.NewTaskStore(db, logger)
		app.categoryStore = sqlite.NewCategoryStore(db, logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.NewLoggingHandler(logger))

	var err error
	app.catalog, err = service.NewCategoryCatalog(app.categoryStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create category catalog: %w", err)
	}
	app.codec = service.NewTaskCodec(app.catalog)

	app.taskService, err = service.NewTaskService(app.taskStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	app.seeder, err = seed.NewSeeder(db, app.categoryStore, app.taskService, app.codec, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create seeder: %w", err)
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// Run seeds the database when enabled and serves HTTP until ctx is
// cancelled or the process is signalled.
func (app *application) Run(ctx context.Context) error {
	if app.config.Seed.Enabled {
		if err := app.seeder.Run(ctx); err != nil {
			app.cleanup()
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}
	app.logger.Info("application shutdown completed")
}
