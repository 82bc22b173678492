package redact_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/todo-api/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "plain message",
			input:    "Task not found with uuid: 3f2c1a8e-1b7d-4d0e-9a51-6f1c2b3d4e5f",
			expected: "Task not found with uuid: 3f2c1a8e-1b7d-4d0e-9a51-6f1c2b3d4e5f",
		},
		{
			name:     "postgres url",
			input:    "failed to connect to postgres://todo:s3cret@db/todo",
			expected: "failed to connect to [REDACTED_CREDENTIAL]db/todo",
		},
		{
			name:     "key value dsn",
			input:    "dial failed: password=hunter2 dbname=todo",
			expected: "dial failed: [REDACTED_CREDENTIAL] dbname=todo",
		},
		{
			name:     "sqlite dsn",
			input:    "unable to open file:todo.db?_foreign_keys=on",
			expected: "unable to open [REDACTED_PATH]",
		},
		{
			name:     "sql statement",
			input:    "query failed: SELECT id FROM tasks WHERE uuid = $1",
			expected: "query failed: [REDACTED_SQL]",
		},
		{
			name:     "unix path",
			input:    "open /var/lib/todo/data.db: permission denied",
			expected: "open [REDACTED_PATH]: permission denied",
		},
		{
			name:     "host and port",
			input:    "dial tcp localhost:5432: connection refused",
			expected: "dial tcp [REDACTED_HOST]: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, redact.String(tt.input))
		})
	}
}

func TestError(t *testing.T) {
	assert.Equal(t, "", redact.Error(nil))

	wrapped := fmt.Errorf("task service list_tasks failed: %w",
		errors.New("dial tcp db.internal:5432: i/o timeout"))
	got := redact.Error(wrapped)
	assert.NotContains(t, got, "db.internal")
	assert.Contains(t, got, "list_tasks")
}

func TestErrorAttr(t *testing.T) {
	attr := redact.ErrorAttr(errors.New("password=abc123 rejected"))
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "[REDACTED_CREDENTIAL] rejected", attr.Value.String())
}
