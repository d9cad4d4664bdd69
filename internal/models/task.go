package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/tdx/internal/shared"
)

// TaskStatus enumerates the workflow states a task can be in.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "To Do"
	StatusInProgress TaskStatus = "In Progress"
	StatusHold       TaskStatus = "Hold"
	StatusDone       TaskStatus = "Done"
)

// Statuses returns all valid statuses in display order.
func Statuses() []TaskStatus {
	return []TaskStatus{StatusTodo, StatusInProgress, StatusHold, StatusDone}
}

// ParseStatus converts a user-supplied string into a [TaskStatus].
// Matching is case-insensitive and tolerates the common shorthand forms
// ("todo", "in-progress", "hold", "done").
func ParseStatus(s string) (TaskStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "to do", "todo":
		return StatusTodo, nil
	case "in progress", "in-progress", "inprogress":
		return StatusInProgress, nil
	case "hold", "on hold":
		return StatusHold, nil
	case "done", "complete", "completed":
		return StatusDone, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", shared.ErrInvalidInput, s)
	}
}

// Valid reports whether s is one of the four known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusHold, StatusDone:
		return true
	default:
		return false
	}
}

// StatusStyle holds the display attributes for a status badge.
type StatusStyle struct {
	Label      string
	Foreground string
	Background string
}

// Style returns the badge attributes for the status. The switch is exhaustive
// over the enum; unknown statuses get a neutral badge.
func (s TaskStatus) Style() StatusStyle {
	switch s {
	case StatusTodo:
		return StatusStyle{Label: "To Do", Foreground: "#1E293B", Background: "#F1F5F9"}
	case StatusInProgress:
		return StatusStyle{Label: "In Progress", Foreground: "#1E3A8A", Background: "#DBEAFE"}
	case StatusHold:
		return StatusStyle{Label: "Hold", Foreground: "#92400E", Background: "#FEF3C7"}
	case StatusDone:
		return StatusStyle{Label: "Done", Foreground: "#065F46", Background: "#D1FAE5"}
	default:
		return StatusStyle{Label: string(s), Foreground: "#1F2937", Background: "#F3F4F6"}
	}
}

// TaskID is an opaque server-assigned identifier. The API serves both numeric
// and string IDs depending on backend, so decoding accepts either.
type TaskID string

func (id *TaskID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = TaskID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = TaskID(n.String())
		return nil
	}

	return fmt.Errorf("%w: task id must be a string or number", shared.ErrInvalidInput)
}

func (id TaskID) String() string { return string(id) }

// Task represents a task record owned by the remote API.
//
// Timestamp fields are kept as the ISO 8601 strings the API supplied; they are
// parsed on demand rather than normalized at decode time.
type Task struct {
	ID          TaskID     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"task_status"`
	DueDate     string     `json:"due_date"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}

// timeLayouts covers the timestamp shapes the API is known to emit.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ParseAPITime parses an API timestamp string, trying each known layout.
func ParseAPITime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized timestamp %q", shared.ErrInvalidInput, s)
}

// DateOnly returns the date component of an API timestamp string, without
// parsing or timezone normalization.
func DateOnly(s string) string {
	date, _, _ := strings.Cut(s, "T")
	return date
}

// DueDateOnly returns the date component of the task's due date as supplied.
func (t Task) DueDateOnly() string {
	return DateOnly(t.DueDate)
}

// DueToday reports whether the task is due on the local date of now.
// The comparison is a string match on the ISO date component, so a task due at
// any hour of today counts.
func (t Task) DueToday(now time.Time) bool {
	return t.DueDateOnly() == now.Format(time.DateOnly)
}

// Overdue reports whether the task's due date has passed and the task is not
// done. Unparsable due dates are never overdue.
func (t Task) Overdue(now time.Time) bool {
	if t.Status == StatusDone {
		return false
	}

	due, err := ParseAPITime(t.DueDate)
	if err != nil {
		return false
	}

	return due.Before(now)
}

// FormatDate renders an API timestamp as a short human-readable date
// (e.g. "Jan 15, 2025"). Unparsable input is returned unchanged.
func FormatDate(s string) string {
	t, err := ParseAPITime(s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2, 2006")
}

// FormatTime renders the clock component of an API timestamp (e.g. "09:00").
func FormatTime(s string) string {
	t, err := ParseAPITime(s)
	if err != nil {
		return s
	}
	return t.Format("15:04")
}
