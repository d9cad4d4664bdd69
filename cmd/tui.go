package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/tdx/internal/dashboard"
	"github.com/desertthunder/tdx/internal/models"
	"github.com/desertthunder/tdx/internal/repositories"
	"github.com/desertthunder/tdx/internal/shared"
	"github.com/desertthunder/tdx/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive task dashboard.
//
// Saved preferences seed the initial page size and status filter, and the
// final query is written back on exit. The dashboard runs fine without the
// database, it just forgets how you left it.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.service == nil {
		return fmt.Errorf("%w: task service not initialized", shared.ErrServiceUnavailable)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(r.config.UI.LogPath)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	perPage := r.config.UI.ItemsPerPage
	var status models.TaskStatus
	if raw := r.config.UI.StatusFilter; raw != "" {
		if parsed, err := models.ParseStatus(raw); err == nil {
			status = parsed
		} else {
			fileLogger.Warn("ignoring invalid status filter in config", "value", raw)
		}
	}

	db := r.openDatabase()
	var prefsRepo *repositories.PreferencesRepository
	var historyRepo *repositories.SearchHistoryRepository
	if db != nil {
		defer db.Close()
		prefsRepo = repositories.NewPreferencesRepository(db)
		historyRepo = repositories.NewSearchHistoryRepository(db)

		if prefs, err := prefsRepo.Load(); err == nil {
			perPage = prefs.ItemsPerPage
			if prefs.StatusFilter != "" {
				status = prefs.StatusFilter
			}
		} else {
			r.logger.Warn("failed to load preferences", "error", err)
		}
	}

	model := ui.NewModel(ctx, r.service, dashboard.NewQuery(perPage, status, ""), fileLogger)
	if historyRepo != nil {
		model.RecordSearch = func(term string) {
			if err := historyRepo.Add(term); err != nil {
				fileLogger.Warn("failed to record search", "error", err)
			}
		}
	}

	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	if finalModel, ok := final.(*ui.Model); ok && prefsRepo != nil {
		query := finalModel.Query()
		if err := prefsRepo.Save(repositories.Preferences{
			ItemsPerPage: query.PerPage,
			StatusFilter: query.Status,
		}); err != nil {
			fileLogger.Warn("failed to save preferences", "error", err)
		}
	}

	return nil
}

// openDatabase opens the preferences database when it has been set up.
// Returns nil when the database file does not exist yet.
func (r *Runner) openDatabase() *sql.DB {
	path := r.config.Database.Path
	if path != ":memory:" {
		if _, err := os.Stat(path); err != nil {
			r.logger.Debug("preferences database not found, run 'tdx setup'", "path", path)
			return nil
		}
	}

	db, err := shared.NewDatabase(path)
	if err != nil {
		r.logger.Warn("failed to open preferences database", "error", err)
		return nil
	}

	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)
	return db
}
