// Task API implementation of [Service]
//
// Communicates with the remote task-management REST API under /api/v1/tasks.
// Error responses are expected to carry a structured `detail` field; its text
// is surfaced verbatim when present.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/desertthunder/tdx/internal/models"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "http://localhost:8000"
	tasksPath      = "/api/v1/tasks/"
)

// Generic fallback messages used when neither a server detail nor a transport
// error message is available.
const (
	msgFetchFailed  = "Failed to fetch tasks"
	msgCreateFailed = "Failed to create task"
	msgUpdateFailed = "Failed to update task"
	msgDeleteFailed = "Failed to delete task"
)

// TaskAPIService implements [Service] against the remote task API.
//
// Requests are at-most-once: failures are surfaced in the result envelope and
// never retried. An optional client-side rate limiter spaces outgoing calls.
type TaskAPIService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewTaskAPIService creates a task API client. The baseURL defaults to a local
// development server and the client to [http.DefaultClient]. A requestsPerSec
// of zero disables rate limiting.
//
// Authentication, when needed, is the injected client's concern (e.g. an
// oauth2 transport); this layer attaches no credential headers itself.
func NewTaskAPIService(baseURL string, client *http.Client, requestsPerSec float64) *TaskAPIService {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	var limiter *rate.Limiter
	if requestsPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSec), 1)
	}

	return &TaskAPIService{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: client,
		limiter:    limiter,
	}
}

// Name returns the service name.
func (s *TaskAPIService) Name() string {
	return "Task API"
}

// apiError represents a non-2xx response from the task API.
type apiError struct {
	status int
	detail string
}

func (e *apiError) Error() string {
	if e.detail != "" {
		return e.detail
	}
	return fmt.Sprintf("request failed: status %d", e.status)
}

// errorMessage normalizes a request error into display text: the structured
// server detail wins, then the transport-level error message, then fallback.
func errorMessage(err error, fallback string) string {
	var apiErr *apiError
	if errors.As(err, &apiErr) && apiErr.detail != "" {
		return apiErr.detail
	}

	if err != nil && err.Error() != "" {
		return err.Error()
	}

	return fallback
}

func (s *TaskAPIService) doRequest(ctx context.Context, method, path string, body, result any) error {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("request cancelled: %w", err)
		}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &apiError{status: resp.StatusCode}

		var errResp struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
			apiErr.detail = errResp.Detail
		}

		return apiErr
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// FetchTasks retrieves one page of tasks.
//
// The wire offset is (page-1)*perPage. The status parameter is omitted
// entirely when no filter is active, and the search parameter is omitted when
// the trimmed term is empty.
func (s *TaskAPIService) FetchTasks(ctx context.Context, query ListQuery) ListResult {
	params := url.Values{}
	params.Set("skip", strconv.Itoa((query.Page-1)*query.PerPage))
	params.Set("limit", strconv.Itoa(query.PerPage))

	if query.Status != "" {
		params.Set("status", string(query.Status))
	}

	if search := strings.TrimSpace(query.Search); search != "" {
		params.Set("search", search)
	}

	var payload struct {
		Data       []models.Task `json:"data"`
		TotalCount int           `json:"total_count"`
	}

	if err := s.doRequest(ctx, http.MethodGet, tasksPath+"?"+params.Encode(), nil, &payload); err != nil {
		return ListResult{Tasks: []models.Task{}, Err: errorMessage(err, msgFetchFailed)}
	}

	tasks := payload.Data
	if tasks == nil {
		tasks = []models.Task{}
	}

	return ListResult{Tasks: tasks, TotalCount: payload.TotalCount, OK: true}
}

// CreateTask creates a new task. Exactly title, description and due date are
// sent; the server assigns the initial status.
func (s *TaskAPIService) CreateTask(ctx context.Context, draft models.TaskDraft) TaskResult {
	body := map[string]string{
		"title":       draft.Title,
		"description": draft.Description,
		"due_date":    draft.DueDate,
	}

	var task models.Task
	if err := s.doRequest(ctx, http.MethodPost, tasksPath, body, &task); err != nil {
		return TaskResult{Err: errorMessage(err, msgCreateFailed)}
	}

	return TaskResult{Task: &task, OK: true}
}

// UpdateTask replaces all four mutable fields of the task.
func (s *TaskAPIService) UpdateTask(ctx context.Context, id models.TaskID, draft models.TaskDraft) TaskResult {
	body := map[string]string{
		"title":       draft.Title,
		"description": draft.Description,
		"status":      string(draft.Status),
		"due_date":    draft.DueDate,
	}

	var task models.Task
	if err := s.doRequest(ctx, http.MethodPut, tasksPath+url.PathEscape(id.String()), body, &task); err != nil {
		return TaskResult{Err: errorMessage(err, msgUpdateFailed)}
	}

	return TaskResult{Task: &task, OK: true}
}

// DeleteTask removes a task by ID.
func (s *TaskAPIService) DeleteTask(ctx context.Context, id models.TaskID) ActionResult {
	if err := s.doRequest(ctx, http.MethodDelete, tasksPath+url.PathEscape(id.String()), nil, nil); err != nil {
		return ActionResult{Err: errorMessage(err, msgDeleteFailed)}
	}

	return ActionResult{OK: true}
}
