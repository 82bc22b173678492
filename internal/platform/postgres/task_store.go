package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/store"
)

const taskColumns = `
	t.id, t.uuid, t.title, t.description, t.priority, t.status,
	c.id, c.name, t.completed, t.due_date, t.reminder_at,
	t.created_at, t.updated_at`

const taskFrom = `
	FROM tasks t
	JOIN categories c ON c.id = t.category_id`

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// WithTx implements store.TaskStore.WithTx
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{
		db:     tx,
		logger: s.logger,
	}
}

// GetByUUID implements store.TaskStore.GetByUUID
func (s *PostgresTaskStore) GetByUUID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving task by uuid", slog.String("task_uuid", id.String()))

	row := s.db.QueryRowContext(ctx, `SELECT`+taskColumns+taskFrom+` WHERE t.uuid = $1`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.String("task_uuid", id.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by uuid",
			slog.String("error", err.Error()),
			slog.String("task_uuid", id.String()))
		return nil, MapError(err)
	}
	return task, nil
}

// GetByTitle implements store.TaskStore.GetByTitle
func (s *PostgresTaskStore) GetByTitle(ctx context.Context, title string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx, `SELECT`+taskColumns+taskFrom+` WHERE t.title = $1`, title)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by title",
			slog.String("error", err.Error()),
			slog.String("title", title))
		return nil, MapError(err)
	}
	return task, nil
}

// FindByCategoryName implements store.TaskStore.FindByCategoryName
func (s *PostgresTaskStore) FindByCategoryName(ctx context.Context, name string) ([]*domain.Task, error) {
	return s.queryTasks(ctx, "find by category",
		`SELECT`+taskColumns+taskFrom+` WHERE c.name = $1 ORDER BY t.created_at, t.id`, name)
}

// FindByStatus implements store.TaskStore.FindByStatus
func (s *PostgresTaskStore) FindByStatus(ctx context.Context, status domain.Status) ([]*domain.Task, error) {
	return s.queryTasks(ctx, "find by status",
		`SELECT`+taskColumns+taskFrom+` WHERE t.status = $1 ORDER BY t.created_at, t.id`, string(status))
}

// FindByDueDate implements store.TaskStore.FindByDueDate
func (s *PostgresTaskStore) FindByDueDate(ctx context.Context, date time.Time) ([]*domain.Task, error) {
	return s.queryTasks(ctx, "find by due date",
		`SELECT`+taskColumns+taskFrom+` WHERE t.due_date = $1::date ORDER BY t.created_at, t.id`,
		date.Format(domain.DateLayout))
}

// Search implements store.TaskStore.Search
func (s *PostgresTaskStore) Search(ctx context.Context, keyword string) ([]*domain.Task, error) {
	return s.queryTasks(ctx, "search",
		`SELECT`+taskColumns+taskFrom+`
		WHERE t.title ILIKE $1 ESCAPE '\' OR t.description ILIKE $1 ESCAPE '\'
		ORDER BY t.created_at, t.id`,
		containsPattern(keyword))
}

// ListOrderedByCreatedAt implements store.TaskStore.ListOrderedByCreatedAt
func (s *PostgresTaskStore) ListOrderedByCreatedAt(ctx context.Context) ([]*domain.Task, error) {
	return s.queryTasks(ctx, "list",
		`SELECT`+taskColumns+taskFrom+` ORDER BY t.created_at, t.id`)
}

// Create implements store.TaskStore.Create
// It validates the task, inserts it and assigns the surrogate id.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("task_uuid", task.UUID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO tasks (uuid, title, description, priority, status, category_id,
			completed, due_date, reminder_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::date, $9, $10, $11)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		task.UUID,
		task.Title,
		task.Description,
		string(task.Priority),
		string(task.Status),
		task.Category.ID,
		task.Completed,
		dateParam(task.DueDate),
		task.ReminderAt,
		task.CreatedAt,
		task.UpdatedAt,
	).Scan(&task.ID)
	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_uuid", task.UUID.String()))
		return MapError(err)
	}

	log.Debug("task inserted",
		slog.String("task_uuid", task.UUID.String()),
		slog.Int64("task_id", task.ID))
	return nil
}

// Update implements store.TaskStore.Update
// It overwrites every mutable column of the row identified by task.ID.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.String("task_uuid", task.UUID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE tasks
		SET title = $1, description = $2, priority = $3, status = $4, category_id = $5,
			completed = $6, due_date = $7::date, reminder_at = $8, updated_at = $9
		WHERE id = $10
	`
	result, err := s.db.ExecContext(ctx, query,
		task.Title,
		task.Description,
		string(task.Priority),
		string(task.Status),
		task.Category.ID,
		task.Completed,
		dateParam(task.DueDate),
		task.ReminderAt,
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_uuid", task.UUID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		log.Debug("task not found for update", slog.String("task_uuid", task.UUID.String()))
		return err
	}
	return nil
}

// DeleteByUUID implements store.TaskStore.DeleteByUUID
func (s *PostgresTaskStore) DeleteByUUID(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE uuid = $1`, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_uuid", id.String()))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

func (s *PostgresTaskStore) queryTasks(ctx context.Context, op, query string, args ...any) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query tasks",
			slog.String("operation", op),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	tasks := []*domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row",
				slog.String("operation", op),
				slog.String("error", err.Error()))
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("tasks queried", slog.String("operation", op), slog.Int("count", len(tasks)))
	return tasks, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task        domain.Task
		priority    string
		status      string
		description sql.NullString
		dueDate     sql.NullTime
		reminderAt  sql.NullTime
		updatedAt   sql.NullTime
	)

	err := row.Scan(
		&task.ID,
		&task.UUID,
		&task.Title,
		&description,
		&priority,
		&status,
		&task.Category.ID,
		&task.Category.Name,
		&task.Completed,
		&dueDate,
		&reminderAt,
		&task.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Priority = domain.Priority(priority)
	task.Status = domain.Status(status)
	task.CreatedAt = task.CreatedAt.UTC()
	if description.Valid {
		task.Description = &description.String
	}
	if dueDate.Valid {
		d := domain.DateOf(dueDate.Time)
		task.DueDate = &d
	}
	if reminderAt.Valid {
		r := reminderAt.Time.UTC()
		task.ReminderAt = &r
	}
	if updatedAt.Valid {
		u := updatedAt.Time.UTC()
		task.UpdatedAt = &u
	}
	return &task, nil
}

func dateParam(d *time.Time) any {
	if d == nil {
		return nil
	}
	return d.Format(domain.DateLayout)
}
