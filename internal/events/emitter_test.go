package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler is a test double that records the events it receives.
type recordingHandler struct {
	mu     sync.Mutex
	events []*TaskEvent
	err    error
}

func (h *recordingHandler) HandleEvent(_ context.Context, event *TaskEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
	return h.err
}

func newEvent() *TaskEvent {
	return NewTaskEvent(TypeTaskCreated, uuid.New(), "Gym session",
		time.Date(2025, 7, 25, 9, 0, 0, 0, time.UTC))
}

func TestInMemoryEventEmitter(t *testing.T) {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("emit event with no handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(discard)
		assert.NoError(t, emitter.EmitEvent(context.Background(), newEvent()))
	})

	t.Run("emit event with successful handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(discard)
		h1, h2 := &recordingHandler{}, &recordingHandler{}
		emitter.RegisterHandler(h1)
		emitter.RegisterHandler(h2)

		event := newEvent()
		require.NoError(t, emitter.EmitEvent(context.Background(), event))

		assert.Equal(t, []*TaskEvent{event}, h1.events)
		assert.Equal(t, []*TaskEvent{event}, h2.events)
	})

	t.Run("emit event with failing handlers returns first error", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(discard)
		first := &recordingHandler{err: errors.New("first failure")}
		second := &recordingHandler{err: errors.New("second failure")}
		ok := &recordingHandler{}
		emitter.RegisterHandler(first)
		emitter.RegisterHandler(second)
		emitter.RegisterHandler(ok)

		err := emitter.EmitEvent(context.Background(), newEvent())

		assert.EqualError(t, err, "first failure")
		assert.Len(t, ok.events, 1, "later handlers still receive the event")
	})

	t.Run("handler func adapter", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(nil)
		var got *TaskEvent
		emitter.RegisterHandler(EventHandlerFunc(func(_ context.Context, e *TaskEvent) error {
			got = e
			return nil
		}))

		event := newEvent()
		require.NoError(t, emitter.EmitEvent(context.Background(), event))
		assert.Same(t, event, got)
	})
}

func TestLoggingHandler(t *testing.T) {
	log, buf := logger.NewBufferLogger()
	handler := NewLoggingHandler(log)
	event := newEvent()

	require.NoError(t, handler.HandleEvent(context.Background(), event))

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "task.created", entries[0]["event_type"])
	assert.Equal(t, event.TaskUUID.String(), entries[0]["task_uuid"])
	assert.Equal(t, "task_events", entries[0]["component"])
}

func TestNoopEmitter(t *testing.T) {
	assert.NoError(t, NoopEmitter{}.EmitEvent(context.Background(), newEvent()))
}
