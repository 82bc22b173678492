package events

import (
	"context"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/platform/logger"
)

// LoggingHandler writes one INFO record per event.
type LoggingHandler struct {
	logger *slog.Logger
}

// NewLoggingHandler returns a handler that logs through logger, or through
// the request-scoped logger when the context carries one.
func NewLoggingHandler(l *slog.Logger) *LoggingHandler {
	if l == nil {
		l = slog.Default()
	}
	return &LoggingHandler{logger: l.With(slog.String("component", "task_events"))}
}

// HandleEvent implements EventHandler.
func (h *LoggingHandler) HandleEvent(ctx context.Context, event *TaskEvent) error {
	log := logger.FromContextOrDefault(ctx, h.logger)
	log.InfoContext(ctx, "task event",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.String("task_uuid", event.TaskUUID.String()),
		slog.String("title", event.Title),
		slog.Time("occurred_at", event.OccurredAt))
	return nil
}
