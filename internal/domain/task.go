package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Priority ranks how urgent a task is.
type Priority string

// Possible priority values
const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Status tracks where a task is in its workflow.
type Status string

// Possible status values
const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// Length bounds enforced by Validate, in runes.
const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 1000
)

// DateLayout is the wire and storage layout of calendar dates.
const DateLayout = "2006-01-02"

// ParsePriority maps the exact enum name to a Priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.Valid() {
		return "", NewInvalidTaskError("Invalid priority: %s", s)
	}
	return p, nil
}

// Valid reports whether p is one of the defined priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// ParseStatus maps the exact enum name to a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", NewInvalidTaskError("Invalid status: %s", s)
	}
	return st, nil
}

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// Task is a unit of work tracked by the system. ID is the store-assigned
// surrogate key and never leaves the process; UUID is the external identity.
type Task struct {
	ID          int64
	UUID        uuid.UUID
	Title       string  `validate:"required,max=255"`
	Description *string `validate:"omitempty,max=1000"`
	Priority    Priority
	Status      Status
	Category    Category
	Completed   bool
	DueDate     *time.Time
	ReminderAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks required fields, enum membership and length bounds.
// Every failure wraps ErrInvalidTask.
func (t *Task) Validate() error {
	if t.UUID == uuid.Nil {
		return NewInvalidTaskError("task uuid cannot be empty")
	}

	if strings.TrimSpace(t.Title) == "" {
		return NewInvalidTaskError("task title cannot be empty")
	}

	if err := validate.Struct(t); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return NewInvalidTaskError("%s", describeFieldError(verrs[0]))
		}
		return NewInvalidTaskError("task validation failed: %v", err)
	}

	if !t.Priority.Valid() {
		return NewInvalidTaskError("Invalid priority: %s", t.Priority)
	}

	if !t.Status.Valid() {
		return NewInvalidTaskError("Invalid status: %s", t.Status)
	}

	if err := t.Category.Validate(); err != nil {
		return err
	}

	return nil
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("task %s cannot be empty", field)
	case "max":
		return fmt.Sprintf("task %s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("task %s failed %s validation", field, fe.Tag())
	}
}

// DateOf returns the calendar date of t as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NormalizeTimestamp converts t to UTC at microsecond precision, the finest
// resolution both storage backends keep.
func NormalizeTimestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
