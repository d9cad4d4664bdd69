// package services defines interface Service for interacting with the task API
package services

import (
	"context"

	"github.com/desertthunder/tdx/internal/models"
)

// Service defines the client-side surface of the remote task API. Every
// operation returns a result envelope instead of an error: transport and
// server failures are normalized into the envelope at this boundary and never
// propagate as Go errors.
type Service interface {
	// FetchTasks retrieves one page of tasks matching the query.
	FetchTasks(ctx context.Context, query ListQuery) ListResult

	// CreateTask creates a new task from the draft's title, description and
	// due date. Status is assigned server-side. The draft is assumed to have
	// been validated by the caller.
	CreateTask(ctx context.Context, draft models.TaskDraft) TaskResult

	// UpdateTask replaces all four mutable fields of the task with the
	// draft's values, regardless of which changed.
	UpdateTask(ctx context.Context, id models.TaskID, draft models.TaskDraft) TaskResult

	// DeleteTask removes the task with the given ID.
	DeleteTask(ctx context.Context, id models.TaskID) ActionResult

	// Name returns the name of the service for logging.
	Name() string
}

// ListQuery carries the pagination and filter parameters for FetchTasks.
//
// Page is 1-based; the wire offset is (Page-1)*PerPage. An empty Status means
// no status filter; Search is trimmed before transmission and omitted when
// blank.
type ListQuery struct {
	Page    int
	PerPage int
	Status  models.TaskStatus
	Search  string
}

// ListResult is the envelope for FetchTasks. On failure OK is false, Tasks is
// empty, TotalCount is zero and Err holds a human-readable message.
type ListResult struct {
	Tasks      []models.Task
	TotalCount int
	OK         bool
	Err        string
}

// TaskResult is the envelope for CreateTask and UpdateTask.
type TaskResult struct {
	Task *models.Task
	OK   bool
	Err  string
}

// ActionResult is the envelope for DeleteTask.
type ActionResult struct {
	OK  bool
	Err string
}
