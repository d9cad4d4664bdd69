// package repositories provides the local persistence layer for dashboard
// preferences and search history.
//
// Task records themselves are never persisted: the server owns them and every
// view reflects the most recent fetch. The local database only remembers how
// the user last looked at the list.
package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/tdx/internal/dashboard"
	"github.com/desertthunder/tdx/internal/models"
	"github.com/desertthunder/tdx/internal/shared"
)

// Preferences holds the persisted dashboard defaults.
type Preferences struct {
	ItemsPerPage int
	StatusFilter models.TaskStatus
	UpdatedAt    time.Time
}

// PreferencesRepository stores the single-row preferences record.
type PreferencesRepository struct {
	db *sql.DB
}

// NewPreferencesRepository creates a [PreferencesRepository] with the given database connection.
func NewPreferencesRepository(db *sql.DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

// Load reads the stored preferences. When none have been saved yet it returns
// defaults (smallest allowed page size, no filter).
func (r *PreferencesRepository) Load() (Preferences, error) {
	prefs := Preferences{ItemsPerPage: dashboard.PerPageOptions[0]}

	var (
		perPage   int
		status    string
		updatedAt time.Time
	)

	err := r.db.QueryRow("SELECT items_per_page, status_filter, updated_at FROM preferences WHERE id = 1").
		Scan(&perPage, &status, &updatedAt)
	if err == sql.ErrNoRows {
		return prefs, nil
	}
	if err != nil {
		return prefs, fmt.Errorf("failed to query preferences: %w", err)
	}

	if dashboard.ValidPerPage(perPage) {
		prefs.ItemsPerPage = perPage
	}

	if status != "" {
		if parsed, err := models.ParseStatus(status); err == nil {
			prefs.StatusFilter = parsed
		}
	}

	prefs.UpdatedAt = updatedAt
	return prefs, nil
}

// Save upserts the preferences row.
func (r *PreferencesRepository) Save(prefs Preferences) error {
	if !dashboard.ValidPerPage(prefs.ItemsPerPage) {
		return fmt.Errorf("%w: items per page %d", shared.ErrInvalidInput, prefs.ItemsPerPage)
	}

	query := `
		INSERT INTO preferences (id, items_per_page, status_filter, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			items_per_page = excluded.items_per_page,
			status_filter = excluded.status_filter,
			updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(query, prefs.ItemsPerPage, string(prefs.StatusFilter), time.Now())
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	return nil
}
