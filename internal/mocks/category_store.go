package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockCategoryStore is a mock of store.CategoryStore for use with testify/mock
type MockCategoryStore struct {
	mock.Mock
}

var _ store.CategoryStore = (*MockCategoryStore)(nil)

// GetByName is a mock implementation of store.CategoryStore.GetByName
func (m *MockCategoryStore) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	if c, ok := args.Get(0).(*domain.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create is a mock implementation of store.CategoryStore.Create
func (m *MockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

// List is a mock implementation of store.CategoryStore.List
func (m *MockCategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if cs, ok := args.Get(0).([]*domain.Category); ok {
		return cs, args.Error(1)
	}
	return nil, args.Error(1)
}

// WithTx returns the same mock; transactions are not modelled.
func (m *MockCategoryStore) WithTx(_ *sql.Tx) store.CategoryStore {
	return m
}
