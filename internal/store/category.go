package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/todo-api/internal/domain"
)

// CategoryStore defines the interface for category persistence.
// Categories are written only by startup seeding.
type CategoryStore interface {
	// GetByName retrieves a category by exact, case-sensitive name.
	// Returns ErrCategoryNotFound if no category has that name.
	GetByName(ctx context.Context, name string) (*domain.Category, error)

	// Create inserts a category and assigns category.ID.
	// Returns ErrDuplicate if the name is taken.
	Create(ctx context.Context, category *domain.Category) error

	// List returns every category ordered by id.
	List(ctx context.Context) ([]*domain.Category, error)

	// WithTx returns a CategoryStore bound to the provided transaction.
	WithTx(tx *sql.Tx) CategoryStore
}
