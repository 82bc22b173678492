package mocks

import (
	"context"

	"github.com/phrazzld/todo-api/internal/events"
	"github.com/stretchr/testify/mock"
)

// MockEventEmitter is a mock of events.EventEmitter for use with testify/mock
type MockEventEmitter struct {
	mock.Mock
}

var _ events.EventEmitter = (*MockEventEmitter)(nil)

// EmitEvent is a mock implementation of events.EventEmitter.EmitEvent
func (m *MockEventEmitter) EmitEvent(ctx context.Context, event *events.TaskEvent) error {
	return m.Called(ctx, event).Error(0)
}
