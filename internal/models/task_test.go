package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTaskStatus(t *testing.T) {
	t.Run("ParseStatus", func(t *testing.T) {
		cases := []struct {
			input string
			want  TaskStatus
		}{
			{"To Do", StatusTodo},
			{"todo", StatusTodo},
			{"In Progress", StatusInProgress},
			{"in-progress", StatusInProgress},
			{"Hold", StatusHold},
			{"on hold", StatusHold},
			{"Done", StatusDone},
			{"completed", StatusDone},
			{"  done  ", StatusDone},
		}

		for _, c := range cases {
			got, err := ParseStatus(c.input)
			if err != nil {
				t.Errorf("ParseStatus(%q) returned error: %v", c.input, err)
				continue
			}
			if got != c.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", c.input, got, c.want)
			}
		}

		if _, err := ParseStatus("cancelled"); err == nil {
			t.Error("expected error for unknown status")
		}
	})

	t.Run("Valid", func(t *testing.T) {
		for _, s := range Statuses() {
			if !s.Valid() {
				t.Errorf("expected %q to be valid", s)
			}
		}

		if TaskStatus("Archived").Valid() {
			t.Error("expected unknown status to be invalid")
		}
	})

	t.Run("Style", func(t *testing.T) {
		seen := map[string]bool{}
		for _, s := range Statuses() {
			style := s.Style()
			if style.Label != string(s) {
				t.Errorf("expected label %q, got %q", s, style.Label)
			}
			if style.Background == "" || style.Foreground == "" {
				t.Errorf("expected colors for status %q", s)
			}
			if seen[style.Background] {
				t.Errorf("expected distinct badge background for %q", s)
			}
			seen[style.Background] = true
		}

		fallback := TaskStatus("Archived").Style()
		if fallback.Label != "Archived" {
			t.Errorf("expected fallback label Archived, got %q", fallback.Label)
		}
	})
}

func TestTaskID(t *testing.T) {
	t.Run("String ID", func(t *testing.T) {
		var task Task
		if err := json.Unmarshal([]byte(`{"id": "abc-123"}`), &task); err != nil {
			t.Fatalf("failed to unmarshal: %v", err)
		}
		if task.ID != "abc-123" {
			t.Errorf("expected abc-123, got %s", task.ID)
		}
	})

	t.Run("Numeric ID", func(t *testing.T) {
		var task Task
		if err := json.Unmarshal([]byte(`{"id": 42}`), &task); err != nil {
			t.Fatalf("failed to unmarshal: %v", err)
		}
		if task.ID != "42" {
			t.Errorf("expected 42, got %s", task.ID)
		}
	})

	t.Run("Invalid ID", func(t *testing.T) {
		var task Task
		if err := json.Unmarshal([]byte(`{"id": [1]}`), &task); err == nil {
			t.Error("expected error for array id")
		}
	})
}

func TestTask(t *testing.T) {
	now := time.Date(2025, 1, 15, 13, 30, 0, 0, time.Local)

	t.Run("Unmarshal API Payload", func(t *testing.T) {
		payload := `{
			"id": 1,
			"title": "Complete Design for New Website",
			"description": "Finish the UI design for the new website project.",
			"due_date": "2025-01-15T09:00:00",
			"task_status": "To Do",
			"created_at": "2025-01-10T10:04:49.566628",
			"updated_at": "2025-01-10T10:04:49.566628"
		}`

		var task Task
		if err := json.Unmarshal([]byte(payload), &task); err != nil {
			t.Fatalf("failed to unmarshal task: %v", err)
		}

		if task.Status != StatusTodo {
			t.Errorf("expected To Do status, got %q", task.Status)
		}
		if task.DueDate != "2025-01-15T09:00:00" {
			t.Errorf("due date should be kept as supplied, got %q", task.DueDate)
		}
	})

	t.Run("DueToday", func(t *testing.T) {
		t.Run("Matches Date Component At Any Hour", func(t *testing.T) {
			task := Task{DueDate: "2025-01-15T09:00:00"}
			if !task.DueToday(now) {
				t.Error("task due earlier today should count as due today")
			}
		})

		t.Run("Different Date", func(t *testing.T) {
			task := Task{DueDate: "2025-01-16T09:00:00"}
			if task.DueToday(now) {
				t.Error("task due tomorrow should not count as due today")
			}
		})
	})

	t.Run("Overdue", func(t *testing.T) {
		t.Run("Past Due And Not Done", func(t *testing.T) {
			task := Task{DueDate: "2025-01-14T10:00:00", Status: StatusTodo}
			if !task.Overdue(now) {
				t.Error("expected task to be overdue")
			}
		})

		t.Run("Past Due But Done", func(t *testing.T) {
			task := Task{DueDate: "2025-01-14T10:00:00", Status: StatusDone}
			if task.Overdue(now) {
				t.Error("done tasks are never overdue")
			}
		})

		t.Run("Future Due", func(t *testing.T) {
			task := Task{DueDate: "2025-01-20T10:00:00", Status: StatusTodo}
			if task.Overdue(now) {
				t.Error("future task should not be overdue")
			}
		})

		t.Run("Unparsable Due Date", func(t *testing.T) {
			task := Task{DueDate: "soon", Status: StatusTodo}
			if task.Overdue(now) {
				t.Error("unparsable due date should not be overdue")
			}
		})
	})

	t.Run("Formatting", func(t *testing.T) {
		if got := FormatDate("2025-01-15T09:00:00"); got != "Jan 15, 2025" {
			t.Errorf("FormatDate = %q", got)
		}
		if got := FormatTime("2025-01-15T09:00:00"); got != "09:00" {
			t.Errorf("FormatTime = %q", got)
		}
		if got := FormatDate("garbage"); got != "garbage" {
			t.Errorf("unparsable input should pass through, got %q", got)
		}
	})
}

func TestTaskDraft(t *testing.T) {
	now := time.Date(2025, 1, 15, 13, 30, 0, 0, time.Local)

	t.Run("Valid Draft", func(t *testing.T) {
		draft := TaskDraft{
			Title:       "Write docs",
			Description: "Document the new endpoints",
			Status:      StatusTodo,
			DueDate:     "2025-01-20",
		}

		if errs := draft.Validate(now); len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
		if !draft.Valid(now) {
			t.Error("expected draft to be valid")
		}
	})

	t.Run("Empty Description Blocks Submission", func(t *testing.T) {
		draft := TaskDraft{
			Title:   "Write docs",
			DueDate: "2025-01-20",
		}

		errs := draft.Validate(now)
		if errs["description"] != MsgDescriptionRequired {
			t.Errorf("expected %q, got %q", MsgDescriptionRequired, errs["description"])
		}
	})

	t.Run("Whitespace-Only Fields Rejected", func(t *testing.T) {
		draft := TaskDraft{
			Title:       "   ",
			Description: "\t\n",
			DueDate:     "2025-01-20",
		}

		errs := draft.Validate(now)
		if errs["title"] != MsgTitleRequired {
			t.Errorf("expected %q, got %q", MsgTitleRequired, errs["title"])
		}
		if errs["description"] != MsgDescriptionRequired {
			t.Errorf("expected %q, got %q", MsgDescriptionRequired, errs["description"])
		}
	})

	t.Run("Missing Due Date", func(t *testing.T) {
		draft := TaskDraft{Title: "a", Description: "b"}

		errs := draft.Validate(now)
		if errs["due_date"] != MsgDueDateRequired {
			t.Errorf("expected %q, got %q", MsgDueDateRequired, errs["due_date"])
		}
	})

	t.Run("Past Due Date", func(t *testing.T) {
		draft := TaskDraft{Title: "a", Description: "b", DueDate: "2025-01-14"}

		errs := draft.Validate(now)
		if errs["due_date"] != MsgDueDatePast {
			t.Errorf("expected %q, got %q", MsgDueDatePast, errs["due_date"])
		}
	})

	t.Run("Due Today Allowed", func(t *testing.T) {
		draft := TaskDraft{Title: "a", Description: "b", DueDate: "2025-01-15T00:00:00"}

		if errs := draft.Validate(now); len(errs) != 0 {
			t.Errorf("due today should be allowed, got %v", errs)
		}
	})

	t.Run("DraftFromTask", func(t *testing.T) {
		task := Task{
			ID:          "1",
			Title:       "Existing",
			Description: "Edit me",
			Status:      StatusHold,
			DueDate:     "2025-02-01T12:00:00",
		}

		draft := DraftFromTask(task)
		if draft.Title != task.Title || draft.Description != task.Description {
			t.Error("draft should carry over text fields")
		}
		if draft.Status != StatusHold {
			t.Errorf("draft should carry over status, got %q", draft.Status)
		}
		if draft.DueDate != task.DueDate {
			t.Errorf("draft should carry over due date, got %q", draft.DueDate)
		}
	})
}
