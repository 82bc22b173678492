package seed

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
)

// DefaultCategories is the fixed category catalog.
var DefaultCategories = []string{"Work", "Personal", "Shopping", "Health", "Learning", "Other"}

//go:embed sample_tasks.json
var sampleTasksJSON []byte

// SampleTasks returns the sample task payloads in insertion order.
func SampleTasks() ([]service.TaskPayload, error) {
	var payloads []service.TaskPayload
	if err := json.Unmarshal(sampleTasksJSON, &payloads); err != nil {
		return nil, fmt.Errorf("failed to parse sample tasks: %w", err)
	}
	return payloads, nil
}

// Seeder inserts the default categories and sample tasks.
type Seeder struct {
	db         *sql.DB
	categories store.CategoryStore
	tasks      service.TaskService
	codec      *service.TaskCodec
	logger     *slog.Logger
}

// NewSeeder creates a Seeder. Categories are written through categories
// inside a transaction on db; tasks go through the lifecycle service.
func NewSeeder(
	db *sql.DB,
	categories store.CategoryStore,
	tasks service.TaskService,
	codec *service.TaskCodec,
	logger *slog.Logger,
) (*Seeder, error) {
	switch {
	case db == nil:
		return nil, errors.New("db cannot be nil")
	case categories == nil:
		return nil, errors.New("categories cannot be nil")
	case tasks == nil:
		return nil, errors.New("tasks cannot be nil")
	case codec == nil:
		return nil, errors.New("codec cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{
		db:         db,
		categories: categories,
		tasks:      tasks,
		codec:      codec,
		logger:     logger.With("component", "seeder"),
	}, nil
}

// Run seeds categories, then sample tasks. Existing rows are left alone.
func (s *Seeder) Run(ctx context.Context) error {
	ctx = logger.WithLogger(ctx, s.logger)

	if err := s.seedCategories(ctx); err != nil {
		return err
	}
	return s.seedTasks(ctx)
}

func (s *Seeder) seedCategories(ctx context.Context) error {
	inserted := 0
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		categories := s.categories.WithTx(tx)
		for _, name := range DefaultCategories {
			_, err := categories.GetByName(ctx, name)
			if err == nil {
				continue
			}
			if !store.IsNotFoundError(err) {
				return fmt.Errorf("failed to look up category %q: %w", name, err)
			}
			if err := categories.Create(ctx, &domain.Category{Name: name}); err != nil {
				return fmt.Errorf("failed to insert category %q: %w", name, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("sample categories inserted", "inserted", inserted)
	return nil
}

func (s *Seeder) seedTasks(ctx context.Context) error {
	payloads, err := SampleTasks()
	if err != nil {
		return err
	}

	inserted := 0
	for _, payload := range payloads {
		title, _ := payload.Title.Get()

		_, err := s.tasks.GetByTitle(ctx, title)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrTaskNotFound) {
			return fmt.Errorf("failed to look up task %q: %w", title, err)
		}

		patch, err := s.codec.Decode(ctx, payload)
		if err != nil {
			return fmt.Errorf("failed to decode sample task %q: %w", title, err)
		}
		if _, err := s.tasks.Create(ctx, patch.NewTask()); err != nil {
			return fmt.Errorf("failed to insert sample task %q: %w", title, err)
		}
		inserted++
	}

	s.logger.Info("sample tasks inserted", "inserted", inserted)
	return nil
}
