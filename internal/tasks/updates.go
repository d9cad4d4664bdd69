package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
}

// Operation phase enumeration
type Phase int

const (
	FetchPages Phase = iota
	Render
	WriteOutput
)

func (p Phase) String() string {
	switch p {
	case FetchPages:
		return "fetch_pages"
	case Render:
		return "render"
	case WriteOutput:
		return "write_output"
	default:
		return ""
	}
}

func fetchingPagesUpdate(total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchPages,
		Step:    1,
		Total:   total,
		Message: "Fetching tasks...",
	}
}

func pageFetchedUpdate(step, total, count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchPages,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Fetched page (%d tasks)", step, total, count),
	}
}

func renderUpdate(count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Render,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Rendering %d tasks...", count),
	}
}

func writtenUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteOutput,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("✓ Export written: %s", path),
	}
}
