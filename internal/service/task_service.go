package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/events"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/store"
)

// TaskService defines the lifecycle operations on tasks.
type TaskService interface {
	// ListOrdered returns every task by ascending creation time.
	ListOrdered(ctx context.Context) ([]*domain.Task, error)

	// GetByID returns the task with the given external identifier.
	// A malformed identifier fails with domain.ErrInvalidTask before the
	// store is consulted.
	GetByID(ctx context.Context, id string) (*domain.Task, error)

	// GetByTitle returns the task with exactly this title.
	GetByTitle(ctx context.Context, title string) (*domain.Task, error)

	// Search returns tasks whose title or description contains keyword.
	Search(ctx context.Context, keyword string) ([]*domain.Task, error)

	// ListByCategory returns tasks in the named category.
	ListByCategory(ctx context.Context, name string) ([]*domain.Task, error)

	// ListByStatus returns tasks in the given status.
	ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Task, error)

	// ListByDueDate returns tasks due on the calendar date of date.
	ListByDueDate(ctx context.Context, date time.Time) ([]*domain.Task, error)

	// Create persists a new task and returns it as stored.
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// Update merges patch into the task it identifies and returns the result.
	Update(ctx context.Context, patch domain.TaskPatch) (*domain.Task, error)

	// Delete removes the task with the given external identifier.
	Delete(ctx context.Context, id string) error
}

// Option configures a task service.
type Option func(*taskServiceImpl)

// WithClock replaces the time source used for creation and update stamps.
func WithClock(now func() time.Time) Option {
	return func(s *taskServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

type taskServiceImpl struct {
	tasks   store.TaskStore
	emitter events.EventEmitter
	logger  *slog.Logger
	now     func() time.Time
}

var _ TaskService = (*taskServiceImpl)(nil)

// NewTaskService creates a TaskService. A nil emitter discards events.
func NewTaskService(
	tasks store.TaskStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
	opts ...Option,
) (TaskService, error) {
	if tasks == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "tasks cannot be nil"}
	}
	if emitter == nil {
		emitter = events.NoopEmitter{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &taskServiceImpl{
		tasks:   tasks,
		emitter: emitter,
		logger:  logger.With("component", "task_service"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *taskServiceImpl) ListOrdered(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.tasks.ListOrderedByCreatedAt(ctx)
	if err != nil {
		return nil, s.storeFailure(ctx, "list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

func (s *taskServiceImpl) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	taskUUID, err := parseTaskID(id)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.GetByUUID(ctx, taskUUID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, domain.TaskNotFoundError(id)
		}
		return nil, s.storeFailure(ctx, "get_task", "failed to retrieve task", err, "task_uuid", id)
	}
	return task, nil
}

func (s *taskServiceImpl) GetByTitle(ctx context.Context, title string) (*domain.Task, error) {
	task, err := s.tasks.GetByTitle(ctx, title)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, domain.TaskNotFoundByTitleError(title)
		}
		return nil, s.storeFailure(ctx, "get_task_by_title", "failed to retrieve task", err, "title", title)
	}
	return task, nil
}

func (s *taskServiceImpl) Search(ctx context.Context, keyword string) ([]*domain.Task, error) {
	tasks, err := s.tasks.Search(ctx, keyword)
	if err != nil {
		return nil, s.storeFailure(ctx, "search_tasks", "failed to search tasks", err, "keyword", keyword)
	}
	return tasks, nil
}

func (s *taskServiceImpl) ListByCategory(ctx context.Context, name string) ([]*domain.Task, error) {
	tasks, err := s.tasks.FindByCategoryName(ctx, name)
	if err != nil {
		return nil, s.storeFailure(ctx, "list_by_category", "failed to list tasks", err, "category", name)
	}
	return tasks, nil
}

func (s *taskServiceImpl) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Task, error) {
	if !status.Valid() {
		return nil, domain.NewInvalidTaskError("Invalid status: %s", status)
	}
	tasks, err := s.tasks.FindByStatus(ctx, status)
	if err != nil {
		return nil, s.storeFailure(ctx, "list_by_status", "failed to list tasks", err, "status", status)
	}
	return tasks, nil
}

func (s *taskServiceImpl) ListByDueDate(ctx context.Context, date time.Time) ([]*domain.Task, error) {
	tasks, err := s.tasks.FindByDueDate(ctx, domain.DateOf(date))
	if err != nil {
		return nil, s.storeFailure(ctx, "list_by_due_date", "failed to list tasks", err,
			"due_date", date.Format(domain.DateLayout))
	}
	return tasks, nil
}

func (s *taskServiceImpl) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if task == nil {
		return nil, domain.NewInvalidTaskError("task cannot be nil")
	}

	created := *task
	created.ID = 0
	if created.UUID == uuid.Nil {
		created.UUID = uuid.New()
	}
	if created.Status == "" {
		created.Status = domain.StatusTodo
	}
	created.CreatedAt = domain.NormalizeTimestamp(s.now())
	created.UpdatedAt = nil
	if created.DueDate != nil {
		d := domain.DateOf(*created.DueDate)
		created.DueDate = &d
	}
	if created.ReminderAt != nil {
		r := domain.NormalizeTimestamp(*created.ReminderAt)
		created.ReminderAt = &r
	}

	if err := created.Validate(); err != nil {
		log.Debug("rejected invalid task", "error", err)
		return nil, err
	}

	if err := s.tasks.Create(ctx, &created); err != nil {
		return nil, s.writeFailure(ctx, "create_task", "failed to save task", &created, err)
	}

	log.Info("task created", "title", created.Title, "task_uuid", created.UUID.String())
	s.emit(ctx, events.TypeTaskCreated, &created, created.CreatedAt)

	return &created, nil
}

func (s *taskServiceImpl) Update(ctx context.Context, patch domain.TaskPatch) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	taskUUID, ok := patch.UUID.Get()
	if !ok || taskUUID == uuid.Nil {
		return nil, domain.NewInvalidTaskError("Task uuid is required for update")
	}

	task, err := s.tasks.GetByUUID(ctx, taskUUID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, domain.TaskNotFoundError(taskUUID.String())
		}
		return nil, s.storeFailure(ctx, "update_task", "failed to retrieve task", err,
			"task_uuid", taskUUID.String())
	}

	patch.ApplyTo(task)

	stamp := domain.NormalizeTimestamp(s.now())
	previous := task.CreatedAt
	if task.UpdatedAt != nil {
		previous = *task.UpdatedAt
	}
	if !stamp.After(previous) {
		stamp = previous.Add(time.Microsecond)
	}
	task.UpdatedAt = &stamp

	if err := task.Validate(); err != nil {
		log.Debug("rejected invalid update", "error", err, "task_uuid", taskUUID.String())
		return nil, err
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		if store.IsNotFoundError(err) {
			return nil, domain.TaskNotFoundError(taskUUID.String())
		}
		return nil, s.writeFailure(ctx, "update_task", "failed to save task", task, err)
	}

	log.Info("task updated", "title", task.Title, "task_uuid", taskUUID.String())
	s.emit(ctx, events.TypeTaskUpdated, task, stamp)

	return task, nil
}

func (s *taskServiceImpl) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.tasks.DeleteByUUID(ctx, task.UUID); err != nil {
		if store.IsNotFoundError(err) {
			return domain.TaskNotFoundError(id)
		}
		return s.storeFailure(ctx, "delete_task", "failed to delete task", err, "task_uuid", id)
	}

	log.Info("task deleted", "title", task.Title, "task_uuid", task.UUID.String())
	s.emit(ctx, events.TypeTaskDeleted, task, domain.NormalizeTimestamp(s.now()))

	return nil
}

// writeFailure classifies a failed insert or update.
func (s *taskServiceImpl) writeFailure(
	ctx context.Context,
	operation, message string,
	task *domain.Task,
	err error,
) error {
	switch {
	case errors.Is(err, store.ErrTitleExists):
		return domain.TaskAlreadyExistsError(task.Title)
	case store.IsDuplicateError(err):
		return &domain.Error{
			Kind:    domain.ErrTaskAlreadyExists,
			Message: "Task already exists with uuid: " + task.UUID.String(),
		}
	case errors.Is(err, store.ErrInvalidEntity):
		return domain.NewInvalidTaskError("Task references unknown data: %s", task.Title)
	}
	return s.storeFailure(ctx, operation, message, err, "task_uuid", task.UUID.String())
}

func (s *taskServiceImpl) storeFailure(
	ctx context.Context,
	operation, message string,
	err error,
	attrs ...any,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Error(message, append([]any{"error", err, "operation", operation}, attrs...)...)
	return NewTaskServiceError(operation, message, err)
}

func (s *taskServiceImpl) emit(ctx context.Context, eventType string, task *domain.Task, at time.Time) {
	event := events.NewTaskEvent(eventType, task.UUID, task.Title, at)
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to emit task event",
			"error", err,
			"event_type", eventType,
			"task_uuid", task.UUID.String())
	}
}

func parseTaskID(id string) (uuid.UUID, error) {
	if strings.TrimSpace(id) == "" {
		return uuid.Nil, domain.InvalidUUIDError(id)
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domain.InvalidUUIDError(id)
	}
	return parsed, nil
}
