package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

// CategoryResolver looks categories up by name.
type CategoryResolver interface {
	Resolve(ctx context.Context, name string) (*domain.Category, error)
}

// CategoryCatalog resolves category names against the category store.
// It exposes no write path.
type CategoryCatalog struct {
	categories store.CategoryStore
	logger     *slog.Logger
}

var _ CategoryResolver = (*CategoryCatalog)(nil)

// NewCategoryCatalog creates a CategoryCatalog over categories.
func NewCategoryCatalog(categories store.CategoryStore, logger *slog.Logger) (*CategoryCatalog, error) {
	if categories == nil {
		return nil, &TaskServiceError{Operation: "create_catalog", Message: "categories cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryCatalog{
		categories: categories,
		logger:     logger.With("component", "category_catalog"),
	}, nil
}

// Resolve returns the category with exactly this name. A miss fails with
// domain.ErrCategoryNotFound.
func (c *CategoryCatalog) Resolve(ctx context.Context, name string) (*domain.Category, error) {
	category, err := c.categories.GetByName(ctx, name)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, domain.CategoryNotFoundError(name)
		}
		c.logger.Error("failed to resolve category", "error", err, "category", name)
		return nil, NewTaskServiceError("resolve_category", "failed to load category", err)
	}
	return category, nil
}
