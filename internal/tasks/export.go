package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/desertthunder/tdx/internal/dashboard"
	"github.com/desertthunder/tdx/internal/formatter"
	"github.com/desertthunder/tdx/internal/models"
	"github.com/desertthunder/tdx/internal/services"
	"github.com/desertthunder/tdx/internal/shared"
)

// ExportEngine walks every page of the remote task list and renders the full
// set to a single output.
type ExportEngine struct {
	service services.Service
}

// NewExportEngine creates an [ExportEngine] backed by the given service.
func NewExportEngine(service services.Service) *ExportEngine {
	return &ExportEngine{service: service}
}

// ExportOpts contains configuration for a full task export.
type ExportOpts struct {
	Format     string            // Export format: text, csv, markdown, json
	OutputPath string            // Output file; empty keeps the result in memory
	Status     models.TaskStatus // Optional status filter
	Search     string            // Optional search term
	PageSize   int               // Fetch size per request (default: 50)
	NumWorkers int               // Concurrent page fetches (default: 4)
}

// ExportResult contains all data from a completed export.
type ExportResult struct {
	TotalTasks int
	Pages      int
	OutputPath string
	Content    []byte
}

type pageResult struct {
	page   int
	result services.ListResult
}

// Run fetches every page matching the filters and renders the combined list.
//
// Page 1 is fetched first to learn the total, then the remaining pages are
// fetched by a bounded worker pool. Any failed page aborts the export; a
// partial file would be worse than none.
func (e *ExportEngine) Run(ctx context.Context, prog chan<- ProgressUpdate, opts ExportOpts) (*ExportResult, error) {
	if e.service == nil {
		return nil, fmt.Errorf("%w: task service not initialized", shared.ErrServiceUnavailable)
	}

	if opts.PageSize <= 0 {
		opts.PageSize = 50
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 4
	}
	if opts.NumWorkers > 8 {
		opts.NumWorkers = 8
	}

	query := func(page int) services.ListQuery {
		return services.ListQuery{
			Page:    page,
			PerPage: opts.PageSize,
			Status:  opts.Status,
			Search:  opts.Search,
		}
	}

	first := e.service.FetchTasks(ctx, query(1))
	if !first.OK {
		return nil, fmt.Errorf("%w: %s", shared.ErrAPIRequest, first.Err)
	}

	totalPages := dashboard.Paginate(first.TotalCount, opts.PageSize, 1).TotalPages
	if totalPages < 1 {
		totalPages = 1
	}
	e.sendProgress(prog, fetchingPagesUpdate(totalPages))

	pages := make([][]models.Task, totalPages+1)
	pages[1] = first.Tasks
	e.sendProgress(prog, pageFetchedUpdate(1, totalPages, len(first.Tasks)))

	if totalPages > 1 {
		jobs := make(chan int, totalPages-1)
		results := make(chan pageResult, totalPages-1)

		var wg sync.WaitGroup
		for i := 0; i < opts.NumWorkers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for page := range jobs {
					select {
					case <-ctx.Done():
						return
					default:
					}
					results <- pageResult{page: page, result: e.service.FetchTasks(ctx, query(page))}
				}
			}()
		}

		for page := 2; page <= totalPages; page++ {
			jobs <- page
		}
		close(jobs)

		go func() {
			wg.Wait()
			close(results)
		}()

		fetched := 1
		for res := range results {
			if !res.result.OK {
				return nil, fmt.Errorf("%w: page %d: %s", shared.ErrAPIRequest, res.page, res.result.Err)
			}
			pages[res.page] = res.result.Tasks
			fetched++
			e.sendProgress(prog, pageFetchedUpdate(fetched, totalPages, len(res.result.Tasks)))
		}
		if fetched != totalPages {
			return nil, fmt.Errorf("%w: export canceled", shared.ErrAPIRequest)
		}
	}

	var tasks []models.Task
	for _, page := range pages {
		tasks = append(tasks, page...)
	}

	e.sendProgress(prog, renderUpdate(len(tasks)))

	content, err := e.render(tasks, first.TotalCount, opts.Format)
	if err != nil {
		return nil, err
	}

	result := &ExportResult{
		TotalTasks: len(tasks),
		Pages:      totalPages,
		OutputPath: opts.OutputPath,
		Content:    content,
	}

	if opts.OutputPath != "" {
		if dir := filepath.Dir(opts.OutputPath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		if err := os.WriteFile(opts.OutputPath, content, 0644); err != nil {
			return nil, fmt.Errorf("failed to write export: %w", err)
		}
		e.sendProgress(prog, writtenUpdate(opts.OutputPath))
	}

	return result, nil
}

func (e *ExportEngine) render(tasks []models.Task, total int, format string) ([]byte, error) {
	// a single "page" spanning the whole set
	perPage := total
	if perPage < 1 {
		perPage = 1
	}
	info := dashboard.Paginate(total, perPage, 1)
	now := time.Now()

	switch format {
	case "csv":
		return formatter.TasksToCSV(tasks)
	case "markdown", "md":
		return formatter.TasksToMarkdown(tasks, info, total, now)
	case "json":
		return json.MarshalIndent(tasks, "", "  ")
	case "text", "":
		return formatter.TasksToText(tasks, info, total, now)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidInput, format)
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *ExportEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}
