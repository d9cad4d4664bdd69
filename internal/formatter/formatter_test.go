package formatter

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/tdx/internal/dashboard"
	"github.com/desertthunder/tdx/internal/models"
)

var now = time.Date(2025, 1, 15, 13, 30, 0, 0, time.Local)

func sampleTasks() []models.Task {
	return []models.Task{
		{
			ID:          "1",
			Title:       "Complete Design for New Website",
			Description: "Finish the UI design for the new website project.",
			Status:      models.StatusTodo,
			DueDate:     "2025-01-15T09:00:00",
			UpdatedAt:   "2025-01-10T10:04:49.566628",
		},
		{
			ID:          "2",
			Title:       "Code Review Session",
			Description: "Review the authentication module.",
			Status:      models.StatusDone,
			DueDate:     "2025-01-08T10:00:00",
			UpdatedAt:   "2025-01-08T11:30:00.000000",
		},
	}
}

func TestPageSummary(t *testing.T) {
	info := dashboard.Paginate(25, 10, 1)

	if got := PageSummary(info, 25); got != "Showing 1 to 10 of 25 tasks" {
		t.Errorf("PageSummary = %q", got)
	}

	empty := dashboard.Paginate(0, 10, 1)
	if got := PageSummary(empty, 0); got != "Showing 0 to 0 of 0 tasks" {
		t.Errorf("PageSummary for empty list = %q", got)
	}
}

func TestTasksToCSV(t *testing.T) {
	data, err := TasksToCSV(sampleTasks())
	if err != nil {
		t.Fatalf("failed to format CSV: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d records", len(records))
	}
	if records[0][0] != "ID" || records[0][3] != "Status" {
		t.Errorf("unexpected header row: %v", records[0])
	}
	if records[1][1] != "Complete Design for New Website" {
		t.Errorf("unexpected first row: %v", records[1])
	}
	if records[2][3] != "Done" {
		t.Errorf("expected Done status in second row, got %v", records[2])
	}
}

func TestTasksToMarkdown(t *testing.T) {
	info := dashboard.Paginate(2, 10, 1)

	data, err := TasksToMarkdown(sampleTasks(), info, 2, now)
	if err != nil {
		t.Fatalf("failed to format markdown: %v", err)
	}

	out := string(data)
	if !strings.Contains(out, "# Tasks") {
		t.Error("expected markdown header")
	}
	if !strings.Contains(out, "- [ ] **Complete Design for New Website**") {
		t.Error("expected unchecked item for open task")
	}
	if !strings.Contains(out, "- [x] **Code Review Session**") {
		t.Error("expected checked item for done task")
	}
	if !strings.Contains(out, "Showing 1 to 2 of 2 tasks") {
		t.Error("expected page summary")
	}
	if strings.Contains(out, "Code Review Session** (Done) ⚠ overdue") {
		t.Error("done tasks must not be marked overdue")
	}
}

func TestTasksToText(t *testing.T) {
	info := dashboard.Paginate(12, 10, 2)
	tasks := sampleTasks()

	data, err := TasksToText(tasks, info, 12, now)
	if err != nil {
		t.Fatalf("failed to format text: %v", err)
	}

	out := string(data)
	if !strings.Contains(out, "Showing 11 to 12 of 12 tasks") {
		t.Error("expected page summary for second page")
	}
	if !strings.Contains(out, "11. [To Do] Complete Design for New Website") {
		t.Error("expected numbering to continue from the page offset")
	}
	if !strings.Contains(out, "(overdue)") {
		t.Error("expected overdue marker for past-due open task")
	}
}

func TestStatsToText(t *testing.T) {
	out := string(StatsToText(dashboard.Stats{
		TotalTasks:      5,
		TodoTasks:       2,
		InProgressTasks: 1,
		OnHoldTasks:     1,
		CompletedTasks:  1,
		DueTodayTasks:   2,
	}))

	for _, want := range []string{"Total Tasks: 5", "To Do:       2", "Due Today:   2"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}
