package dashboard

import (
	"time"

	"github.com/desertthunder/tdx/internal/models"
	"github.com/desertthunder/tdx/internal/services"
)

// Phase is the list-fetch lifecycle of the dashboard.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseError
)

// Empty-state messages shown when a page has no tasks.
const (
	MsgNoTasksFiltered = "No tasks found matching your criteria."
	MsgNoTasks         = "No tasks found. Create your first task!"
)

// State is the view controller's state: one writer at a time, mutated only
// through its transition methods. The ActionInFlight flag is orthogonal to
// Phase and covers create/update/delete mutations.
type State struct {
	Phase          Phase
	Query          Query
	Tasks          []models.Task
	TotalCount     int
	ErrMsg         string
	ActionInFlight bool

	fetchSeq int
}

// NewState creates an idle state with the given initial query.
func NewState(query Query) *State {
	return &State{Phase: PhaseIdle, Query: query, Tasks: []models.Task{}}
}

// Busy reports whether a fetch or a mutation is in flight. Navigation and
// mutation controls are rejected while busy.
func (s *State) Busy() bool {
	return s.Phase == PhaseLoading || s.ActionInFlight
}

// BeginFetch transitions to Loading, clears any previous error, and returns
// the sequence number identifying this fetch. The matching response must be
// applied with the same number.
func (s *State) BeginFetch() int {
	s.Phase = PhaseLoading
	s.ErrMsg = ""
	s.fetchSeq++
	return s.fetchSeq
}

// ApplyFetch applies a fetch response. Responses from superseded fetches are
// dropped (returns false) so a slow earlier request cannot clobber the result
// of a later one.
//
// On failure the task list is cleared rather than left stale.
func (s *State) ApplyFetch(seq int, result services.ListResult) bool {
	if seq != s.fetchSeq {
		return false
	}

	if result.OK {
		s.Phase = PhaseLoaded
		s.Tasks = result.Tasks
		s.TotalCount = result.TotalCount
		s.ErrMsg = ""
		return true
	}

	s.Phase = PhaseError
	s.Tasks = []models.Task{}
	s.TotalCount = 0
	s.ErrMsg = result.Err
	return true
}

// BeginAction marks a mutation in flight, disabling all mutation and
// navigation controls. Returns false when the dashboard is already busy.
func (s *State) BeginAction() bool {
	if s.Busy() {
		return false
	}
	s.ActionInFlight = true
	return true
}

// EndAction clears the mutation flag.
func (s *State) EndAction() {
	s.ActionInFlight = false
}

// TotalPages derives the page count from the server-reported total.
func (s *State) TotalPages() int {
	return Paginate(s.TotalCount, s.Query.PerPage, s.Query.Page).TotalPages
}

// PageInfo derives the pagination display values for the current state.
func (s *State) PageInfo() PageInfo {
	return Paginate(s.TotalCount, s.Query.PerPage, s.Query.Page)
}

// Stats computes the dashboard counters from the displayed page. When the page
// is empty the total is overridden with the server-reported count, which may
// be non-zero while a trailing page shows nothing.
func (s *State) Stats(now time.Time) Stats {
	stats := ComputeStats(s.Tasks, now)
	if len(s.Tasks) == 0 {
		stats = stats.OverrideTotal(s.TotalCount)
	}
	return stats
}

// EmptyMessage returns the empty-state text appropriate to the active filters.
func (s *State) EmptyMessage() string {
	if s.Query.FilterActive() {
		return MsgNoTasksFiltered
	}
	return MsgNoTasks
}

// SetSearch updates the search term, resetting to page 1. Returns true when a
// refetch is needed.
func (s *State) SetSearch(term string) bool {
	return s.Query.SetSearch(term)
}

// SetStatus updates the status filter, resetting to page 1.
func (s *State) SetStatus(status models.TaskStatus) bool {
	return s.Query.SetStatus(status)
}

// SetPerPage updates the page size, resetting to page 1. Values outside the
// allowed set are rejected.
func (s *State) SetPerPage(n int) bool {
	return s.Query.SetPerPage(n)
}

// GoToPage navigates to an explicit page. The request is a no-op when the
// target is out of range or a fetch/mutation is in flight.
func (s *State) GoToPage(page int) bool {
	if s.Busy() {
		return false
	}
	return s.Query.SetPage(page, s.TotalPages())
}

// FirstPage navigates to page 1.
func (s *State) FirstPage() bool { return s.GoToPage(1) }

// PrevPage navigates one page back.
func (s *State) PrevPage() bool { return s.GoToPage(s.Query.Page - 1) }

// NextPage navigates one page forward.
func (s *State) NextPage() bool { return s.GoToPage(s.Query.Page + 1) }

// LastPage navigates to the final page.
func (s *State) LastPage() bool { return s.GoToPage(s.TotalPages()) }
