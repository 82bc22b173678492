package mocks

import (
	"context"
	"time"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service"
)

// MockTaskService is a function-field mock of service.TaskService.
// Unset functions return zero values.
type MockTaskService struct {
	ListOrderedFn    func(ctx context.Context) ([]*domain.Task, error)
	GetByIDFn        func(ctx context.Context, id string) (*domain.Task, error)
	GetByTitleFn     func(ctx context.Context, title string) (*domain.Task, error)
	SearchFn         func(ctx context.Context, keyword string) ([]*domain.Task, error)
	ListByCategoryFn func(ctx context.Context, name string) ([]*domain.Task, error)
	ListByStatusFn   func(ctx context.Context, status domain.Status) ([]*domain.Task, error)
	ListByDueDateFn  func(ctx context.Context, date time.Time) ([]*domain.Task, error)
	CreateFn         func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	UpdateFn         func(ctx context.Context, patch domain.TaskPatch) (*domain.Task, error)
	DeleteFn         func(ctx context.Context, id string) error
}

var _ service.TaskService = (*MockTaskService)(nil)

// ListOrdered calls ListOrderedFn.
func (m *MockTaskService) ListOrdered(ctx context.Context) ([]*domain.Task, error) {
	if m.ListOrderedFn != nil {
		return m.ListOrderedFn(ctx)
	}
	return []*domain.Task{}, nil
}

// GetByID calls GetByIDFn.
func (m *MockTaskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

// GetByTitle calls GetByTitleFn.
func (m *MockTaskService) GetByTitle(ctx context.Context, title string) (*domain.Task, error) {
	if m.GetByTitleFn != nil {
		return m.GetByTitleFn(ctx, title)
	}
	return nil, nil
}

// Search calls SearchFn.
func (m *MockTaskService) Search(ctx context.Context, keyword string) ([]*domain.Task, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, keyword)
	}
	return []*domain.Task{}, nil
}

// ListByCategory calls ListByCategoryFn.
func (m *MockTaskService) ListByCategory(ctx context.Context, name string) ([]*domain.Task, error) {
	if m.ListByCategoryFn != nil {
		return m.ListByCategoryFn(ctx, name)
	}
	return []*domain.Task{}, nil
}

// ListByStatus calls ListByStatusFn.
func (m *MockTaskService) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Task, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return []*domain.Task{}, nil
}

// ListByDueDate calls ListByDueDateFn.
func (m *MockTaskService) ListByDueDate(ctx context.Context, date time.Time) ([]*domain.Task, error) {
	if m.ListByDueDateFn != nil {
		return m.ListByDueDateFn(ctx, date)
	}
	return []*domain.Task{}, nil
}

// Create calls CreateFn.
func (m *MockTaskService) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return task, nil
}

// Update calls UpdateFn.
func (m *MockTaskService) Update(ctx context.Context, patch domain.TaskPatch) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, patch)
	}
	return nil, nil
}

// Delete calls DeleteFn.
func (m *MockTaskService) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
