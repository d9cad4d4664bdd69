// package formatter provides functions to render task pages to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/desertthunder/tdx/internal/dashboard"
	"github.com/desertthunder/tdx/internal/models"
)

// PageSummary renders the item-range text shown under a paginated list,
// e.g. "Showing 1 to 10 of 25 tasks".
func PageSummary(info dashboard.PageInfo, totalItems int) string {
	return fmt.Sprintf("Showing %d to %d of %d tasks", info.StartItem, info.EndItem, totalItems)
}

// TasksToCSV converts a task list to CSV with columns: ID, Title, Description, Status, Due Date, Updated At
func TasksToCSV(tasks []models.Task) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Description", "Status", "Due Date", "Updated At"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, task := range tasks {
		record := []string{
			task.ID.String(),
			task.Title,
			task.Description,
			string(task.Status),
			task.DueDate,
			task.UpdatedAt,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// TasksToMarkdown converts one page of tasks to Markdown with a summary header.
func TasksToMarkdown(tasks []models.Task, info dashboard.PageInfo, totalItems int, now time.Time) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Tasks\n\n")
	buf.WriteString(fmt.Sprintf("**%s**\n\n", PageSummary(info, totalItems)))

	for _, task := range tasks {
		marker := " "
		if task.Status == models.StatusDone {
			marker = "x"
		}

		buf.WriteString(fmt.Sprintf("- [%s] **%s** (%s)", marker, task.Title, task.Status))
		if task.Overdue(now) {
			buf.WriteString(" ⚠ overdue")
		}
		buf.WriteString("\n")
		buf.WriteString(fmt.Sprintf("  %s\n", task.Description))
		buf.WriteString(fmt.Sprintf("  Due: %s at %s\n", models.FormatDate(task.DueDate), models.FormatTime(task.DueDate)))
	}

	return buf.Bytes(), nil
}

// TasksToText converts one page of tasks to plain text.
func TasksToText(tasks []models.Task, info dashboard.PageInfo, totalItems int, now time.Time) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s\n\n", PageSummary(info, totalItems)))

	for i, task := range tasks {
		overdue := ""
		if task.Overdue(now) {
			overdue = " (overdue)"
		}

		buf.WriteString(fmt.Sprintf("%d. [%s] %s - due %s%s\n",
			info.StartItem+i, task.Status, task.Title, models.FormatDate(task.DueDate), overdue))
		buf.WriteString(fmt.Sprintf("   %s\n", task.Description))
	}

	return buf.Bytes(), nil
}

// StatsToText renders the dashboard counters, one per line.
func StatsToText(stats dashboard.Stats) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Total Tasks: %d\n", stats.TotalTasks))
	buf.WriteString(fmt.Sprintf("To Do:       %d\n", stats.TodoTasks))
	buf.WriteString(fmt.Sprintf("In Progress: %d\n", stats.InProgressTasks))
	buf.WriteString(fmt.Sprintf("On Hold:     %d\n", stats.OnHoldTasks))
	buf.WriteString(fmt.Sprintf("Completed:   %d\n", stats.CompletedTasks))
	buf.WriteString(fmt.Sprintf("Due Today:   %d\n", stats.DueTodayTasks))

	return buf.Bytes()
}
