package mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockTaskStore is a mock of store.TaskStore for use with testify/mock
type MockTaskStore struct {
	mock.Mock
}

var _ store.TaskStore = (*MockTaskStore)(nil)

func (m *MockTaskStore) task(args mock.Arguments) (*domain.Task, error) {
	if task, ok := args.Get(0).(*domain.Task); ok {
		return task, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskStore) tasks(args mock.Arguments) ([]*domain.Task, error) {
	if tasks, ok := args.Get(0).([]*domain.Task); ok {
		return tasks, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByUUID is a mock implementation of store.TaskStore.GetByUUID
func (m *MockTaskStore) GetByUUID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return m.task(m.Called(ctx, id))
}

// GetByTitle is a mock implementation of store.TaskStore.GetByTitle
func (m *MockTaskStore) GetByTitle(ctx context.Context, title string) (*domain.Task, error) {
	return m.task(m.Called(ctx, title))
}

// FindByCategoryName is a mock implementation of store.TaskStore.FindByCategoryName
func (m *MockTaskStore) FindByCategoryName(ctx context.Context, name string) ([]*domain.Task, error) {
	return m.tasks(m.Called(ctx, name))
}

// FindByStatus is a mock implementation of store.TaskStore.FindByStatus
func (m *MockTaskStore) FindByStatus(ctx context.Context, status domain.Status) ([]*domain.Task, error) {
	return m.tasks(m.Called(ctx, status))
}

// FindByDueDate is a mock implementation of store.TaskStore.FindByDueDate
func (m *MockTaskStore) FindByDueDate(ctx context.Context, date time.Time) ([]*domain.Task, error) {
	return m.tasks(m.Called(ctx, date))
}

// Search is a mock implementation of store.TaskStore.Search
func (m *MockTaskStore) Search(ctx context.Context, keyword string) ([]*domain.Task, error) {
	return m.tasks(m.Called(ctx, keyword))
}

// ListOrderedByCreatedAt is a mock implementation of store.TaskStore.ListOrderedByCreatedAt
func (m *MockTaskStore) ListOrderedByCreatedAt(ctx context.Context) ([]*domain.Task, error) {
	return m.tasks(m.Called(ctx))
}

// Create is a mock implementation of store.TaskStore.Create
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

// Update is a mock implementation of store.TaskStore.Update
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

// DeleteByUUID is a mock implementation of store.TaskStore.DeleteByUUID
func (m *MockTaskStore) DeleteByUUID(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// WithTx returns the same mock; transactions are not modelled.
func (m *MockTaskStore) WithTx(_ *sql.Tx) store.TaskStore {
	return m
}
