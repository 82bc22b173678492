package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTaskPatchApplyTo(t *testing.T) {
	t.Parallel()

	t.Run("absent fields are kept", func(t *testing.T) {
		t.Parallel()
		task := validTask()
		before := task

		patch := TaskPatch{Status: Set(StatusDone)}
		patch.ApplyTo(&task)

		if task.Status != StatusDone {
			t.Errorf("Expected status DONE, got %s", task.Status)
		}
		if task.Title != before.Title || task.Priority != before.Priority ||
			task.Category != before.Category || task.Description != before.Description {
			t.Error("Expected untouched fields to keep their values")
		}
	})

	t.Run("explicit nulls leave every field untouched", func(t *testing.T) {
		t.Parallel()
		task := validTask()
		due := time.Date(2025, 7, 26, 0, 0, 0, 0, time.UTC)
		task.DueDate = &due
		task.ReminderAt = &due
		task.Completed = true
		before := task

		patch := TaskPatch{
			Title:       Null[string](),
			Description: Null[string](),
			Priority:    Null[Priority](),
			Status:      Null[Status](),
			Category:    Null[Category](),
			Completed:   Null[bool](),
			DueDate:     Null[time.Time](),
			ReminderAt:  Null[time.Time](),
		}
		patch.ApplyTo(&task)

		if task.Title != before.Title || task.Priority != before.Priority ||
			task.Status != before.Status || task.Category != before.Category || !task.Completed {
			t.Error("Expected required fields to keep their values")
		}
		if task.Description != before.Description || task.DueDate != before.DueDate ||
			task.ReminderAt != before.ReminderAt {
			t.Error("Expected optional fields to keep their values")
		}
	})

	t.Run("null beside a value only applies the value", func(t *testing.T) {
		t.Parallel()
		task := validTask()
		before := task

		patch := TaskPatch{Status: Set(StatusDone), Title: Null[string]()}
		patch.ApplyTo(&task)

		if task.Status != StatusDone {
			t.Errorf("Expected status DONE, got %s", task.Status)
		}
		if task.Title != before.Title {
			t.Errorf("Expected title %q, got %q", before.Title, task.Title)
		}
	})

	t.Run("identity and creation time are never written", func(t *testing.T) {
		t.Parallel()
		task := validTask()
		task.ID = 42
		before := task

		patch := TaskPatch{UUID: Set(uuid.New()), Title: Set("Renamed")}
		patch.ApplyTo(&task)
		if task.ID != before.ID || task.UUID != before.UUID || !task.CreatedAt.Equal(before.CreatedAt) {
			t.Error("Expected identity fields to be preserved")
		}
		if task.Title != "Renamed" {
			t.Errorf("Expected title to change, got %s", task.Title)
		}
	})

	t.Run("dates are normalized", func(t *testing.T) {
		t.Parallel()
		task := validTask()
		loc := time.FixedZone("UTC+2", 2*60*60)

		patch := TaskPatch{
			DueDate:    Set(time.Date(2025, 7, 28, 15, 0, 0, 0, time.UTC)),
			ReminderAt: Set(time.Date(2025, 7, 27, 12, 0, 0, 123456789, loc)),
		}
		patch.ApplyTo(&task)

		if want := time.Date(2025, 7, 28, 0, 0, 0, 0, time.UTC); !task.DueDate.Equal(want) {
			t.Errorf("Expected due date %v, got %v", want, task.DueDate)
		}
		if want := time.Date(2025, 7, 27, 10, 0, 0, 123456000, time.UTC); !task.ReminderAt.Equal(want) ||
			task.ReminderAt.Location() != time.UTC {
			t.Errorf("Expected reminder %v, got %v", want, task.ReminderAt)
		}
	})
}

func TestTaskPatchNewTask(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	patch := TaskPatch{
		UUID:     Set(id),
		Title:    Set("Buy groceries"),
		Priority: Set(PriorityMedium),
		Category: Set(Category{ID: 3, Name: "Shopping"}),
	}

	task := patch.NewTask()
	if task.UUID != id {
		t.Errorf("Expected uuid %s, got %s", id, task.UUID)
	}
	if task.Completed {
		t.Error("Expected completed to default to false")
	}
	if task.Status != "" {
		t.Errorf("Expected status to be left for the service to default, got %s", task.Status)
	}
}

func TestTaskPatchNewTask_NullDefaults(t *testing.T) {
	t.Parallel()

	patch := TaskPatch{
		Title:     Set("Water plants"),
		Priority:  Set(PriorityLow),
		Category:  Set(Category{ID: 2, Name: "Personal"}),
		Status:    Null[Status](),
		Completed: Null[bool](),
	}

	task := patch.NewTask()
	if task.Status != "" {
		t.Errorf("Expected null status to stay unset, got %s", task.Status)
	}
	if task.Completed {
		t.Error("Expected null completed to become false")
	}
}

func TestFieldJSON(t *testing.T) {
	t.Parallel()

	var doc struct {
		A Field[string] `json:"a"`
		B Field[string] `json:"b"`
		C Field[string] `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a":"x","b":null}`), &doc); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if v, ok := doc.A.Get(); !doc.A.Present || !ok || v != "x" {
		t.Errorf("Expected a present with value, got %+v", doc.A)
	}
	if !doc.B.IsNull() {
		t.Errorf("Expected b to be an explicit null, got %+v", doc.B)
	}
	if doc.C.Present {
		t.Errorf("Expected c to be absent, got %+v", doc.C)
	}

	out, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(out) != `{"a":"x","b":null,"c":null}` {
		t.Errorf("Unexpected encoding %s", out)
	}
}
