package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// Every listing returns an empty, non-nil slice when nothing matches.
type TaskStore interface {
	// GetByUUID retrieves a task by its external identifier.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByUUID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// GetByTitle retrieves a task by its exact title.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByTitle(ctx context.Context, title string) (*domain.Task, error)

	// FindByCategoryName lists the tasks whose category has exactly this name.
	FindByCategoryName(ctx context.Context, name string) ([]*domain.Task, error)

	// FindByStatus lists the tasks in the given status.
	FindByStatus(ctx context.Context, status domain.Status) ([]*domain.Task, error)

	// FindByDueDate lists the tasks due on the calendar date of date.
	FindByDueDate(ctx context.Context, date time.Time) ([]*domain.Task, error)

	// Search lists the tasks whose title or description contains keyword,
	// ignoring case. Wildcard characters in keyword match literally.
	Search(ctx context.Context, keyword string) ([]*domain.Task, error)

	// ListOrderedByCreatedAt lists every task by ascending creation time,
	// ties broken by insertion order.
	ListOrderedByCreatedAt(ctx context.Context) ([]*domain.Task, error)

	// Create inserts a new task and assigns task.ID.
	// Returns ErrDuplicate if the title or UUID is taken and ErrInvalidEntity
	// if the task fails validation or references an unknown category.
	Create(ctx context.Context, task *domain.Task) error

	// Update overwrites the stored task identified by task.ID.
	// Returns ErrTaskNotFound if no such row exists.
	Update(ctx context.Context, task *domain.Task) error

	// DeleteByUUID removes the task with the given external identifier.
	// Returns ErrTaskNotFound if the task does not exist.
	DeleteByUUID(ctx context.Context, id uuid.UUID) error

	// WithTx returns a TaskStore bound to the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
