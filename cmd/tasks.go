package main

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/desertthunder/tdx/internal/dashboard"
	"github.com/desertthunder/tdx/internal/formatter"
	"github.com/desertthunder/tdx/internal/models"
	"github.com/desertthunder/tdx/internal/services"
	"github.com/desertthunder/tdx/internal/shared"
	"github.com/desertthunder/tdx/internal/tasks"
	"github.com/urfave/cli/v3"
)

// statsPageSize is the fetch size used when walking all pages for counters.
const statsPageSize = 50

// TasksList fetches one page of tasks and prints it.
func (r *Runner) TasksList(ctx context.Context, cmd *cli.Command) error {
	if r.service == nil {
		return fmt.Errorf("%w: task service not initialized", shared.ErrServiceUnavailable)
	}

	page := cmd.Int("page")
	perPage := cmd.Int("per-page")
	if page < 1 {
		return fmt.Errorf("%w: page must be 1 or greater", shared.ErrInvalidFlag)
	}
	if !dashboard.ValidPerPage(perPage) {
		return fmt.Errorf("%w: per-page must be one of %v", shared.ErrInvalidFlag, dashboard.PerPageOptions)
	}

	status, err := statusFlag(cmd)
	if err != nil {
		return err
	}

	query := services.ListQuery{
		Page:    page,
		PerPage: perPage,
		Status:  status,
		Search:  strings.TrimSpace(cmd.String("search")),
	}

	r.logger.Infof("listing tasks: page %d, %d per page", page, perPage)

	result := r.service.FetchTasks(ctx, query)
	if !result.OK {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, result.Err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, cmd.Bool("pretty"))
	}

	info := dashboard.Paginate(result.TotalCount, perPage, page)
	now := time.Now()

	var output []byte
	switch format := cmd.String("format"); format {
	case "csv":
		output, err = formatter.TasksToCSV(result.Tasks)
	case "markdown", "md":
		output, err = formatter.TasksToMarkdown(result.Tasks, info, result.TotalCount, now)
	case "text", "":
		output, err = formatter.TasksToText(result.Tasks, info, result.TotalCount, now)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
	if err != nil {
		return fmt.Errorf("failed to format tasks: %w", err)
	}

	return r.writePlain("%s", output)
}

// TasksCreate validates and creates a task. New tasks always start in To Do.
func (r *Runner) TasksCreate(ctx context.Context, cmd *cli.Command) error {
	if r.service == nil {
		return fmt.Errorf("%w: task service not initialized", shared.ErrServiceUnavailable)
	}

	draft := models.TaskDraft{
		Title:       cmd.String("title"),
		Description: cmd.String("description"),
		Status:      models.StatusTodo,
		DueDate:     cmd.String("due"),
	}

	if err := validateDraft(draft); err != nil {
		return err
	}

	r.logger.Infof("creating task: %s", draft.Title)

	result := r.service.CreateTask(ctx, draft)
	if !result.OK {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, result.Err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(result.Task, cmd.Bool("pretty"))
	}

	r.writePlain("✓ Task created: %s\n", result.Task.ID)
	return nil
}

// TasksUpdate replaces every field of an existing task.
func (r *Runner) TasksUpdate(ctx context.Context, cmd *cli.Command) error {
	if r.service == nil {
		return fmt.Errorf("%w: task service not initialized", shared.ErrServiceUnavailable)
	}

	status, err := models.ParseStatus(cmd.String("status"))
	if err != nil {
		return err
	}

	draft := models.TaskDraft{
		Title:       cmd.String("title"),
		Description: cmd.String("description"),
		Status:      status,
		DueDate:     cmd.String("due"),
	}

	if err := validateDraft(draft); err != nil {
		return err
	}

	id := models.TaskID(cmd.String("id"))
	r.logger.Infof("updating task: %s", id)

	result := r.service.UpdateTask(ctx, id, draft)
	if !result.OK {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, result.Err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(result.Task, cmd.Bool("pretty"))
	}

	r.writePlain("✓ Task updated: %s\n", result.Task.ID)
	return nil
}

// TasksDelete deletes a task. Requires --yes since there is no prompt.
func (r *Runner) TasksDelete(ctx context.Context, cmd *cli.Command) error {
	if r.service == nil {
		return fmt.Errorf("%w: task service not initialized", shared.ErrServiceUnavailable)
	}

	if !cmd.Bool("yes") {
		return fmt.Errorf("%w: pass --yes to confirm deletion", shared.ErrMissingArgument)
	}

	id := models.TaskID(cmd.String("id"))
	r.logger.Infof("deleting task: %s", id)

	result := r.service.DeleteTask(ctx, id)
	if !result.OK {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, result.Err)
	}

	r.writePlain("✓ Task deleted: %s\n", id)
	return nil
}

// TasksExport walks every page matching the filters and writes the full set.
func (r *Runner) TasksExport(ctx context.Context, cmd *cli.Command) error {
	if r.service == nil {
		return fmt.Errorf("%w: task service not initialized", shared.ErrServiceUnavailable)
	}

	status, err := statusFlag(cmd)
	if err != nil {
		return err
	}

	outputPath := cmd.String("output")
	engine := tasks.NewExportEngine(r.service)

	prog := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range prog {
			r.logger.Info(update.Message, "phase", update.Phase.String())
		}
	}()

	result, err := engine.Run(ctx, prog, tasks.ExportOpts{
		Format:     cmd.String("format"),
		OutputPath: outputPath,
		Status:     status,
		Search:     strings.TrimSpace(cmd.String("search")),
		NumWorkers: cmd.Int("workers"),
	})
	close(prog)
	<-done
	if err != nil {
		return err
	}

	if outputPath == "" {
		return r.writePlain("%s", result.Content)
	}

	r.writePlain("✓ Exported %d tasks to %s\n", result.TotalTasks, result.OutputPath)
	return nil
}

// TasksStats walks every page matching the filters and prints the counters.
func (r *Runner) TasksStats(ctx context.Context, cmd *cli.Command) error {
	if r.service == nil {
		return fmt.Errorf("%w: task service not initialized", shared.ErrServiceUnavailable)
	}

	status, err := statusFlag(cmd)
	if err != nil {
		return err
	}
	search := strings.TrimSpace(cmd.String("search"))

	var tasks []models.Task
	total := 0
	for page := 1; ; page++ {
		result := r.service.FetchTasks(ctx, services.ListQuery{
			Page:    page,
			PerPage: statsPageSize,
			Status:  status,
			Search:  search,
		})
		if !result.OK {
			return fmt.Errorf("%w: %s", shared.ErrAPIRequest, result.Err)
		}

		tasks = append(tasks, result.Tasks...)
		total = result.TotalCount
		if len(result.Tasks) == 0 || len(tasks) >= total {
			break
		}
	}

	stats := dashboard.ComputeStats(tasks, time.Now()).OverrideTotal(total)

	if cmd.Bool("json") {
		return r.writeJSON(stats, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Task Stats")
	return r.writePlain("%s", formatter.StatsToText(stats))
}

func statusFlag(cmd *cli.Command) (models.TaskStatus, error) {
	raw := cmd.String("status")
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	return models.ParseStatus(raw)
}

// validateDraft surfaces field validation errors as a single CLI error, in a
// stable field order.
func validateDraft(draft models.TaskDraft) error {
	errs := draft.Validate(time.Now())
	if len(errs) == 0 {
		return nil
	}

	messages := make([]string, 0, len(errs))
	for _, msg := range errs {
		messages = append(messages, msg)
	}
	sort.Strings(messages)

	return fmt.Errorf("%w: %s", shared.ErrInvalidInput, strings.Join(messages, "; "))
}
