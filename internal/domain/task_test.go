package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func validTask() Task {
	desc := "Leg day workout at the gym."
	return Task{
		UUID:        uuid.New(),
		Title:       "Gym session",
		Description: &desc,
		Priority:    PriorityLow,
		Status:      StatusTodo,
		Category:    Category{ID: 4, Name: "Health"},
		CreatedAt:   time.Date(2025, 7, 25, 9, 0, 0, 0, time.UTC),
	}
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	longDesc := strings.Repeat("d", MaxDescriptionLength+1)
	maxDesc := strings.Repeat("é", MaxDescriptionLength)

	tests := []struct {
		name    string
		mutate  func(*Task)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Task) {}},
		{name: "nil uuid", mutate: func(tk *Task) { tk.UUID = uuid.Nil }, wantErr: true},
		{name: "empty title", mutate: func(tk *Task) { tk.Title = "" }, wantErr: true},
		{name: "blank title", mutate: func(tk *Task) { tk.Title = "   " }, wantErr: true},
		{name: "title too long", mutate: func(tk *Task) { tk.Title = strings.Repeat("t", MaxTitleLength+1) }, wantErr: true},
		{name: "title at limit in runes", mutate: func(tk *Task) { tk.Title = strings.Repeat("ü", MaxTitleLength) }},
		{name: "description too long", mutate: func(tk *Task) { tk.Description = &longDesc }, wantErr: true},
		{name: "description at limit in runes", mutate: func(tk *Task) { tk.Description = &maxDesc }},
		{name: "nil description", mutate: func(tk *Task) { tk.Description = nil }},
		{name: "unknown priority", mutate: func(tk *Task) { tk.Priority = "URGENT" }, wantErr: true},
		{name: "empty status", mutate: func(tk *Task) { tk.Status = "" }, wantErr: true},
		{name: "missing category", mutate: func(tk *Task) { tk.Category = Category{} }, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			task := validTask()
			tt.mutate(&task)

			err := task.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTask) {
					t.Fatalf("Expected ErrInvalidTask, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
		})
	}
}

func TestParseEnums(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"LOW", "MEDIUM", "HIGH"} {
		if p, err := ParsePriority(s); err != nil || string(p) != s {
			t.Errorf("ParsePriority(%q) = %q, %v", s, p, err)
		}
	}
	for _, s := range []string{"TODO", "IN_PROGRESS", "DONE"} {
		if st, err := ParseStatus(s); err != nil || string(st) != s {
			t.Errorf("ParseStatus(%q) = %q, %v", s, st, err)
		}
	}

	if _, err := ParsePriority("low"); !errors.Is(err, ErrInvalidTask) {
		t.Errorf("Expected ErrInvalidTask for lowercase priority, got %v", err)
	}
	if _, err := ParseStatus("DOING"); !errors.Is(err, ErrInvalidTask) {
		t.Errorf("Expected ErrInvalidTask for unknown status, got %v", err)
	}
}

func TestDateOf(t *testing.T) {
	t.Parallel()

	in := time.Date(2025, 7, 28, 23, 30, 0, 0, time.UTC)
	want := time.Date(2025, 7, 28, 0, 0, 0, 0, time.UTC)
	if got := DateOf(in); !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	err := TaskNotFoundError("8a0e9f4c-9c4b-4c59-a3e5-2b5e9f0d7c11")
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("Expected ErrTaskNotFound, got %v", err)
	}
	if msg, ok := Message(err); !ok || !strings.Contains(msg, "8a0e9f4c-9c4b-4c59-a3e5-2b5e9f0d7c11") {
		t.Errorf("Expected message to carry the id, got %q", msg)
	}

	err = CategoryNotFoundError("Nonexistent")
	if !errors.Is(err, ErrCategoryNotFound) || err.Error() != "Category not found with name: Nonexistent" {
		t.Errorf("Unexpected category error %v", err)
	}

	if _, ok := Message(errors.New("plain")); ok {
		t.Error("Expected no message for a plain error")
	}
}
