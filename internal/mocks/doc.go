// Package mocks provides centralized mock implementations for testing.
//
// Store mocks use testify/mock so tests can assert on the calls made,
// including that a call never happened:
//
//	tasks := &mocks.MockTaskStore{}
//	tasks.On("GetByUUID", mock.Anything, id).Return(nil, store.ErrTaskNotFound)
//	...
//	tasks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
//
// MockTaskService uses function fields instead, which keeps table-driven
// handler tests short.
package mocks
