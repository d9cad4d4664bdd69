package models

import (
	"strings"
	"time"
)

// Validation messages surfaced next to form fields.
const (
	MsgTitleRequired       = "Title is required"
	MsgDescriptionRequired = "Description is required"
	MsgDueDateRequired     = "Due date is required"
	MsgDueDatePast         = "Due date cannot be in the past"
)

// TaskDraft holds form input for creating or editing a task. Validation happens
// here, before anything reaches the transport layer.
type TaskDraft struct {
	Title       string
	Description string
	Status      TaskStatus
	DueDate     string
}

// DraftFromTask pre-populates a draft from an existing task's current values.
func DraftFromTask(t Task) TaskDraft {
	return TaskDraft{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		DueDate:     t.DueDate,
	}
}

// Validate checks the draft and returns a map of field name to error message.
// An empty map means the draft may be submitted.
//
// The due date check is date-only: a due date of today is allowed regardless of
// clock time.
func (d TaskDraft) Validate(now time.Time) map[string]string {
	errs := map[string]string{}

	if isBlank(d.Title) {
		errs["title"] = MsgTitleRequired
	}

	if isBlank(d.Description) {
		errs["description"] = MsgDescriptionRequired
	}

	if isBlank(d.DueDate) {
		errs["due_date"] = MsgDueDateRequired
	} else if due, err := ParseAPITime(d.DueDate); err != nil {
		errs["due_date"] = "Due date must be a valid date (YYYY-MM-DD)"
	} else if due.Format(time.DateOnly) < now.Format(time.DateOnly) {
		errs["due_date"] = MsgDueDatePast
	}

	return errs
}

// Valid reports whether the draft passes validation.
func (d TaskDraft) Valid(now time.Time) bool {
	return len(d.Validate(now)) == 0
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
