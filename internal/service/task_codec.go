package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
)

// TimestampLayout renders instants on the wire: local ISO date-time in UTC
// with up to microsecond precision and trailing zeros trimmed.
const TimestampLayout = "2006-01-02T15:04:05.999999"

// reminderLayouts are tried in order when decoding reminderDateTime.
// Inputs without a zone are read as UTC.
var reminderLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// TaskPayload is the wire representation of a task. Every field tells an
// omitted key apart from an explicit null.
type TaskPayload struct {
	UUID             domain.Field[string] `json:"uuid"`
	Title            domain.Field[string] `json:"title"`
	Description      domain.Field[string] `json:"description"`
	Priority         domain.Field[string] `json:"priority"`
	CategoryName     domain.Field[string] `json:"categoryName"`
	Completed        domain.Field[bool]   `json:"completed"`
	Status           domain.Field[string] `json:"status"`
	DueDate          domain.Field[string] `json:"dueDate"`
	ReminderDateTime domain.Field[string] `json:"reminderDateTime"`
	CreatedAt        domain.Field[string] `json:"createdAt"`
	UpdatedAt        domain.Field[string] `json:"updatedAt"`
}

// TaskCodec converts between TaskPayload and the domain model.
type TaskCodec struct {
	categories CategoryResolver
}

// NewTaskCodec creates a TaskCodec resolving category names through categories.
func NewTaskCodec(categories CategoryResolver) *TaskCodec {
	if categories == nil {
		panic("categories cannot be nil")
	}
	return &TaskCodec{categories: categories}
}

// Decode validates p and converts it to a patch. The category is resolved
// first, so an unknown name fails before anything else is looked at.
// createdAt and updatedAt are store-managed and ignored.
func (c *TaskCodec) Decode(ctx context.Context, p TaskPayload) (domain.TaskPatch, error) {
	var patch domain.TaskPatch

	if p.CategoryName.Present {
		if name, ok := p.CategoryName.Get(); ok {
			category, err := c.categories.Resolve(ctx, name)
			if err != nil {
				return domain.TaskPatch{}, err
			}
			patch.Category = domain.Set(*category)
		} else {
			patch.Category = domain.Null[domain.Category]()
		}
	}

	if raw, ok := p.UUID.Get(); ok && strings.TrimSpace(raw) != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domain.TaskPatch{}, domain.InvalidUUIDError(raw)
		}
		patch.UUID = domain.Set(id)
	}

	patch.Title = p.Title
	patch.Description = p.Description
	patch.Completed = p.Completed

	var err error
	if patch.Priority, err = decodeField(p.Priority, domain.ParsePriority); err != nil {
		return domain.TaskPatch{}, err
	}
	if patch.Status, err = decodeField(p.Status, domain.ParseStatus); err != nil {
		return domain.TaskPatch{}, err
	}
	if patch.DueDate, err = decodeField(p.DueDate, parseDueDate); err != nil {
		return domain.TaskPatch{}, err
	}
	if patch.ReminderAt, err = decodeField(p.ReminderDateTime, parseReminder); err != nil {
		return domain.TaskPatch{}, err
	}

	return patch, nil
}

// Encode renders t for the wire. Unset optional values become null.
func (c *TaskCodec) Encode(t *domain.Task) TaskPayload {
	p := TaskPayload{
		UUID:             domain.Set(t.UUID.String()),
		Title:            domain.Set(t.Title),
		Description:      domain.FromPtr(t.Description),
		Priority:         domain.Set(string(t.Priority)),
		CategoryName:     domain.Set(t.Category.Name),
		Completed:        domain.Set(t.Completed),
		Status:           domain.Set(string(t.Status)),
		DueDate:          domain.Null[string](),
		ReminderDateTime: domain.Null[string](),
		CreatedAt:        domain.Set(formatTimestamp(t.CreatedAt)),
		UpdatedAt:        domain.Null[string](),
	}
	if t.DueDate != nil {
		p.DueDate = domain.Set(t.DueDate.Format(domain.DateLayout))
	}
	if t.ReminderAt != nil {
		p.ReminderDateTime = domain.Set(formatTimestamp(*t.ReminderAt))
	}
	if t.UpdatedAt != nil {
		p.UpdatedAt = domain.Set(formatTimestamp(*t.UpdatedAt))
	}
	return p
}

// EncodeAll renders every task, keeping order. The result is never nil.
func (c *TaskCodec) EncodeAll(tasks []*domain.Task) []TaskPayload {
	out := make([]TaskPayload, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, c.Encode(t))
	}
	return out
}

// decodeField parses a present, non-null wire value and carries absence and
// explicit null through unchanged.
func decodeField[T any](in domain.Field[string], parse func(string) (T, error)) (domain.Field[T], error) {
	if !in.Present {
		return domain.Field[T]{}, nil
	}
	raw, ok := in.Get()
	if !ok {
		return domain.Null[T](), nil
	}
	v, err := parse(raw)
	if err != nil {
		return domain.Field[T]{}, err
	}
	return domain.Set(v), nil
}

func parseDueDate(raw string) (time.Time, error) {
	d, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return time.Time{}, domain.NewInvalidTaskError("Invalid due date format: %s", raw)
	}
	return d, nil
}

func parseReminder(raw string) (time.Time, error) {
	for _, layout := range reminderLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, domain.NewInvalidTaskError("Invalid reminder date-time format: %s", raw)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
