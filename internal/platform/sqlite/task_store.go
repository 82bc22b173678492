package sqlite

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

const selectTasks = `
	SELECT t.id, t.uuid, t.title, t.description, t.priority, t.status,
		c.id, c.name, t.completed, t.due_date, t.reminder_at,
		t.created_at, t.updated_at
	FROM tasks t
	JOIN categories c ON c.id = t.category_id`

const orderByCreation = ` ORDER BY t.created_at, t.id`

// TaskStore implements store.TaskStore on SQLite.
type TaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewTaskStore creates a SQLite TaskStore over a connection or transaction.
// If logger is nil, a default logger will be used.
func NewTaskStore(db store.DBTX, logger *slog.Logger) *TaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

var _ store.TaskStore = (*TaskStore)(nil)

// WithTx implements store.TaskStore.WithTx
func (s *TaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &TaskStore{db: tx, logger: s.logger}
}

// GetByUUID implements store.TaskStore.GetByUUID
func (s *TaskStore) GetByUUID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return s.getOne(ctx, selectTasks+` WHERE t.uuid = ?`, id.String())
}

// GetByTitle implements store.TaskStore.GetByTitle
func (s *TaskStore) GetByTitle(ctx context.Context, title string) (*domain.Task, error) {
	return s.getOne(ctx, selectTasks+` WHERE t.title = ?`, title)
}

// FindByCategoryName implements store.TaskStore.FindByCategoryName
func (s *TaskStore) FindByCategoryName(ctx context.Context, name string) ([]*domain.Task, error) {
	return s.queryTasks(ctx, selectTasks+` WHERE c.name = ?`+orderByCreation, name)
}

// FindByStatus implements store.TaskStore.FindByStatus
func (s *TaskStore) FindByStatus(ctx context.Context, status domain.Status) ([]*domain.Task, error) {
	return s.queryTasks(ctx, selectTasks+` WHERE t.status = ?`+orderByCreation, string(status))
}

// FindByDueDate implements store.TaskStore.FindByDueDate
func (s *TaskStore) FindByDueDate(ctx context.Context, date time.Time) ([]*domain.Task, error) {
	return s.queryTasks(ctx, selectTasks+` WHERE t.due_date = ?`+orderByCreation,
		date.Format(domain.DateLayout))
}

// Search implements store.TaskStore.Search. SQLite's LIKE folds ASCII case only.
func (s *TaskStore) Search(ctx context.Context, keyword string) ([]*domain.Task, error) {
	pattern := containsPattern(keyword)
	return s.queryTasks(ctx,
		selectTasks+` WHERE t.title LIKE ? ESCAPE '\' OR t.description LIKE ? ESCAPE '\'`+orderByCreation,
		pattern, pattern)
}

// ListOrderedByCreatedAt implements store.TaskStore.ListOrderedByCreatedAt
func (s *TaskStore) ListOrderedByCreatedAt(ctx context.Context) ([]*domain.Task, error) {
	return s.queryTasks(ctx, selectTasks+orderByCreation)
}

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("task_uuid", task.UUID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (uuid, title, description, priority, status, category_id,
			completed, due_date, reminder_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.UUID.String(),
		task.Title,
		task.Description,
		string(task.Priority),
		string(task.Status),
		task.Category.ID,
		task.Completed,
		dateValue(task.DueDate),
		nullableTimestamp(task.ReminderAt),
		formatTimestamp(task.CreatedAt),
		nullableTimestamp(task.UpdatedAt),
	)
	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_uuid", task.UUID.String()))
		return MapError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted task id: %w", err)
	}
	task.ID = id

	log.Debug("task inserted",
		slog.String("task_uuid", task.UUID.String()),
		slog.Int64("task_id", task.ID))
	return nil
}

// Update implements store.TaskStore.Update
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.String("task_uuid", task.UUID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, description = ?, priority = ?, status = ?, category_id = ?,
			completed = ?, due_date = ?, reminder_at = ?, updated_at = ?
		WHERE id = ?`,
		task.Title,
		task.Description,
		string(task.Priority),
		string(task.Status),
		task.Category.ID,
		task.Completed,
		dateValue(task.DueDate),
		nullableTimestamp(task.ReminderAt),
		nullableTimestamp(task.UpdatedAt),
		task.ID,
	)
	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_uuid", task.UUID.String()))
		return MapError(err)
	}

	return checkRowsAffected(result, store.ErrTaskNotFound)
}

// DeleteByUUID implements store.TaskStore.DeleteByUUID
func (s *TaskStore) DeleteByUUID(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE uuid = ?`, id.String())
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_uuid", id.String()))
		return MapError(err)
	}
	return checkRowsAffected(result, store.ErrTaskNotFound)
}

func (s *TaskStore) getOne(ctx context.Context, query string, arg any) (*domain.Task, error) {
	task, err := scanTask(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get task",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return task, nil
}

func (s *TaskStore) queryTasks(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query tasks", slog.String("error", err.Error()))
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
			log.Error("failed to scan task row", slog.String("error", err.Error()))
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task        domain.Task
		rawUUID     string
		priority    string
		status      string
		description sql.NullString
		dueDate     sql.NullString
		reminderAt  sql.NullString
		createdAt   string
		updatedAt   sql.NullString
	)

	if err := row.Scan(
		&task.ID,
		&rawUUID,
		&task.Title,
		&description,
		&priority,
		&status,
		&task.Category.ID,
		&task.Category.Name,
		&task.Completed,
		&dueDate,
		&reminderAt,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(rawUUID)
	if err != nil {
		return nil, fmt.Errorf("malformed stored uuid %q: %w", rawUUID, err)
	}
	task.UUID = id
	task.Priority = domain.Priority(priority)
	task.Status = domain.Status(status)

	if task.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, err
	}
	if description.Valid {
		task.Description = &description.String
	}
	if dueDate.Valid {
		d, err := time.Parse(domain.DateLayout, dueDate.String)
		if err != nil {
			return nil, fmt.Errorf("malformed stored date %q: %w", dueDate.String, err)
		}
		task.DueDate = &d
	}
	if reminderAt.Valid {
		r, err := parseTimestamp(reminderAt.String)
		if err != nil {
			return nil, err
		}
		task.ReminderAt = &r
	}
	if updatedAt.Valid {
		u, err := parseTimestamp(updatedAt.String)
		if err != nil {
			return nil, err
		}
		task.UpdatedAt = &u
	}
	return &task, nil
}

func dateValue(d *time.Time) any {
	if d == nil {
		return nil
	}
	return d.Format(domain.DateLayout)
}
