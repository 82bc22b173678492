package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskPatch is a partial task. Only fields holding a value are copied onto
// the target; absent fields and explicit nulls leave it untouched.
type TaskPatch struct {
	UUID        Field[uuid.UUID]
	Title       Field[string]
	Description Field[string]
	Priority    Field[Priority]
	Status      Field[Status]
	Category    Field[Category]
	Completed   Field[bool]
	DueDate     Field[time.Time]
	ReminderAt  Field[time.Time]
}

// ApplyTo merges the non-null fields of the patch into t. ID, UUID and
// CreatedAt are never written.
func (p TaskPatch) ApplyTo(t *Task) {
	if v, ok := p.Title.Get(); ok {
		t.Title = v
	}
	if v, ok := p.Description.Get(); ok {
		t.Description = &v
	}
	if v, ok := p.Priority.Get(); ok {
		t.Priority = v
	}
	if v, ok := p.Status.Get(); ok {
		t.Status = v
	}
	if v, ok := p.Category.Get(); ok {
		t.Category = v
	}
	if v, ok := p.Completed.Get(); ok {
		t.Completed = v
	}
	if v, ok := p.DueDate.Get(); ok {
		d := DateOf(v)
		t.DueDate = &d
	}
	if v, ok := p.ReminderAt.Get(); ok {
		r := NormalizeTimestamp(v)
		t.ReminderAt = &r
	}
}

// NewTask materializes a fresh task from the patch for creation. The UUID is
// copied when supplied. An unset status stays empty for the service to
// default; an unset completed flag is false.
func (p TaskPatch) NewTask() *Task {
	t := &Task{}
	p.ApplyTo(t)
	if v, ok := p.UUID.Get(); ok {
		t.UUID = v
	}
	return t
}
