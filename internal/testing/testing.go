// package testing contains shared testing utilities
package testing

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/desertthunder/tdx/internal/models"
	"github.com/desertthunder/tdx/internal/services"
	"github.com/desertthunder/tdx/internal/shared"
)

// MockService is a configurable test double for [services.Service].
// Unset function fields return empty successful results.
type MockService struct {
	FetchFn  func(ctx context.Context, query services.ListQuery) services.ListResult
	CreateFn func(ctx context.Context, draft models.TaskDraft) services.TaskResult
	UpdateFn func(ctx context.Context, id models.TaskID, draft models.TaskDraft) services.TaskResult
	DeleteFn func(ctx context.Context, id models.TaskID) services.ActionResult

	FetchCalls  []services.ListQuery
	CreateCalls []models.TaskDraft
	UpdateCalls []models.TaskID
	DeleteCalls []models.TaskID
}

func (m *MockService) FetchTasks(ctx context.Context, query services.ListQuery) services.ListResult {
	m.FetchCalls = append(m.FetchCalls, query)
	if m.FetchFn != nil {
		return m.FetchFn(ctx, query)
	}
	return services.ListResult{Tasks: []models.Task{}, OK: true}
}

func (m *MockService) CreateTask(ctx context.Context, draft models.TaskDraft) services.TaskResult {
	m.CreateCalls = append(m.CreateCalls, draft)
	if m.CreateFn != nil {
		return m.CreateFn(ctx, draft)
	}
	return services.TaskResult{Task: &models.Task{}, OK: true}
}

func (m *MockService) UpdateTask(ctx context.Context, id models.TaskID, draft models.TaskDraft) services.TaskResult {
	m.UpdateCalls = append(m.UpdateCalls, id)
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, draft)
	}
	return services.TaskResult{Task: &models.Task{}, OK: true}
}

func (m *MockService) DeleteTask(ctx context.Context, id models.TaskID) services.ActionResult {
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return services.ActionResult{OK: true}
}

func (m *MockService) Name() string { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter allows a fixed number of writes to succeed before failing.
type LimitedWriter struct {
	remaining int
	w         io.Writer
}

func NewLimitedWriter(allowed int, w io.Writer) *LimitedWriter {
	return &LimitedWriter{remaining: allowed, w: w}
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.remaining <= 0 {
		return 0, errors.New("write limit reached")
	}
	l.remaining--
	return l.w.Write(p)
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// TaskServer is an in-memory fake of the remote task API for integration-style
// tests: it persists tasks per instance, assigns UUID IDs, and honors the
// skip/limit/status/search list parameters.
type TaskServer struct {
	Server *httptest.Server

	mu    sync.Mutex
	tasks []models.Task
}

// NewTaskServer starts a fake task API. The caller must Close it.
func NewTaskServer() *TaskServer {
	ts := &TaskServer{}
	ts.Server = httptest.NewServer(http.HandlerFunc(ts.handle))
	return ts
}

func (ts *TaskServer) Close() { ts.Server.Close() }

// URL returns the base URL of the fake API.
func (ts *TaskServer) URL() string { return ts.Server.URL }

// Seed inserts tasks directly, bypassing the HTTP surface.
func (ts *TaskServer) Seed(tasks ...models.Task) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.tasks = append(ts.tasks, tasks...)
}

// Count returns the number of stored tasks.
func (ts *TaskServer) Count() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.tasks)
}

func (ts *TaskServer) handle(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.URL.Path, "/api/v1/tasks") {
		writeDetail(w, http.StatusNotFound, "Not found")
		return
	}

	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/v1/tasks"), "/")

	switch {
	case r.Method == http.MethodGet && id == "":
		ts.list(w, r)
	case r.Method == http.MethodPost && id == "":
		ts.create(w, r)
	case r.Method == http.MethodPut && id != "":
		ts.update(w, r, models.TaskID(id))
	case r.Method == http.MethodDelete && id != "":
		ts.remove(w, models.TaskID(id))
	default:
		writeDetail(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (ts *TaskServer) list(w http.ResponseWriter, r *http.Request) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	status := r.URL.Query().Get("status")
	search := strings.ToLower(r.URL.Query().Get("search"))

	var matched []models.Task
	for _, task := range ts.tasks {
		if status != "" && string(task.Status) != status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(task.Title), search) &&
			!strings.Contains(strings.ToLower(task.Description), search) {
			continue
		}
		matched = append(matched, task)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt < matched[j].CreatedAt
	})

	total := len(matched)
	if skip > total {
		skip = total
	}
	end := total
	if limit > 0 && skip+limit < total {
		end = skip + limit
	}

	page := matched[skip:end]
	if page == nil {
		page = []models.Task{}
	}

	json.NewEncoder(w).Encode(map[string]any{"data": page, "total_count": total})
}

func (ts *TaskServer) create(w http.ResponseWriter, r *http.Request) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		DueDate     string `json:"due_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	now := time.Now().Format("2006-01-02T15:04:05.000000")
	task := models.Task{
		ID:          models.TaskID(shared.GenerateID()),
		Title:       body.Title,
		Description: body.Description,
		Status:      models.StatusTodo,
		DueDate:     body.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	ts.tasks = append(ts.tasks, task)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(task)
}

func (ts *TaskServer) update(w http.ResponseWriter, r *http.Request, id models.TaskID) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Status      string `json:"status"`
		DueDate     string `json:"due_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	for i := range ts.tasks {
		if ts.tasks[i].ID != id {
			continue
		}

		ts.tasks[i].Title = body.Title
		ts.tasks[i].Description = body.Description
		ts.tasks[i].Status = models.TaskStatus(body.Status)
		ts.tasks[i].DueDate = body.DueDate
		ts.tasks[i].UpdatedAt = time.Now().Format("2006-01-02T15:04:05.000000")

		json.NewEncoder(w).Encode(ts.tasks[i])
		return
	}

	writeDetail(w, http.StatusNotFound, "Task not found")
}

func (ts *TaskServer) remove(w http.ResponseWriter, id models.TaskID) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	for i := range ts.tasks {
		if ts.tasks[i].ID == id {
			ts.tasks = append(ts.tasks[:i], ts.tasks[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}

	writeDetail(w, http.StatusNotFound, "Task not found")
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
