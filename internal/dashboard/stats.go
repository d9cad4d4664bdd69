package dashboard

import (
	"time"

	"github.com/desertthunder/tdx/internal/models"
)

// Stats holds the dashboard counters derived from the currently displayed
// page of tasks.
type Stats struct {
	TotalTasks      int
	TodoTasks       int
	InProgressTasks int
	OnHoldTasks     int
	CompletedTasks  int
	DueTodayTasks   int
}

// ComputeStats counts tasks by exact status match and by due date falling on
// the local date of now. TotalTasks is the length of the input; when the page
// is empty the caller may override it with the server-reported total via
// [Stats.OverrideTotal].
func ComputeStats(tasks []models.Task, now time.Time) Stats {
	stats := Stats{TotalTasks: len(tasks)}

	for _, task := range tasks {
		switch task.Status {
		case models.StatusTodo:
			stats.TodoTasks++
		case models.StatusInProgress:
			stats.InProgressTasks++
		case models.StatusHold:
			stats.OnHoldTasks++
		case models.StatusDone:
			stats.CompletedTasks++
		}

		if task.DueToday(now) {
			stats.DueTodayTasks++
		}
	}

	return stats
}

// OverrideTotal replaces the total with a server-reported count. A paginated
// page may be empty while the server still has records.
func (s Stats) OverrideTotal(total int) Stats {
	s.TotalTasks = total
	return s
}
