package domain

import (
	"errors"
	"fmt"
)

// Error kinds of the task tracker. Every failure surfaced by the core wraps
// exactly one of these; callers classify with errors.Is.
var (
	// ErrInvalidTask is returned when a task or an identifier fails validation.
	ErrInvalidTask = errors.New("invalid task")

	// ErrTaskNotFound is returned when no task matches the requested identifier.
	ErrTaskNotFound = errors.New("task not found")

	// ErrCategoryNotFound is returned when a category name cannot be resolved.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrTaskAlreadyExists is returned when a write would break title uniqueness.
	ErrTaskAlreadyExists = errors.New("task already exists")
)

// Error carries a client-facing message together with its kind.
type Error struct {
	// Kind is one of the package sentinels.
	Kind error
	// Message is safe to show to API clients.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the kind so errors.Is works against the sentinels.
func (e *Error) Unwrap() error {
	return e.Kind
}

// NewInvalidTaskError builds an ErrInvalidTask error with a formatted message.
func NewInvalidTaskError(format string, args ...any) error {
	return &Error{Kind: ErrInvalidTask, Message: fmt.Sprintf(format, args...)}
}

// InvalidUUIDError reports an identifier that is not a UUID.
func InvalidUUIDError(raw string) error {
	return NewInvalidTaskError("Invalid UUID format: %s", raw)
}

// TaskNotFoundError reports a missing task by external identifier.
func TaskNotFoundError(id string) error {
	return &Error{Kind: ErrTaskNotFound, Message: "Task not found with uuid: " + id}
}

// TaskNotFoundByTitleError reports a missing task by title.
func TaskNotFoundByTitleError(title string) error {
	return &Error{Kind: ErrTaskNotFound, Message: "Task not found with title: " + title}
}

// CategoryNotFoundError reports an unknown category name.
func CategoryNotFoundError(name string) error {
	return &Error{Kind: ErrCategoryNotFound, Message: "Category not found with name: " + name}
}

// TaskAlreadyExistsError reports a title collision.
func TaskAlreadyExistsError(title string) error {
	return &Error{Kind: ErrTaskAlreadyExists, Message: "Task already exists with title: " + title}
}

// Message returns the client-facing message of err when it carries one.
func Message(err error) (string, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Message, true
	}
	return "", false
}
