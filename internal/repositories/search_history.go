package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/tdx/internal/shared"
)

// SearchHistoryRepository remembers recently used search terms.
type SearchHistoryRepository struct {
	db *sql.DB
}

// NewSearchHistoryRepository creates a [SearchHistoryRepository] with the given database connection.
func NewSearchHistoryRepository(db *sql.DB) *SearchHistoryRepository {
	return &SearchHistoryRepository{db: db}
}

// Add records a search term with a generated ID. Blank terms and immediate
// duplicates of the most recent entry are skipped.
func (r *SearchHistoryRepository) Add(term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	recent, err := r.Recent(1)
	if err != nil {
		return err
	}
	if len(recent) > 0 && recent[0] == term {
		return nil
	}

	_, err = r.db.Exec(
		"INSERT INTO search_history (id, term, searched_at) VALUES (?, ?, ?)",
		shared.GenerateID(), term, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert search term: %w", err)
	}

	return nil
}

// Recent returns up to n terms, newest first.
func (r *SearchHistoryRepository) Recent(n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}

	rows, err := r.db.Query(
		"SELECT term FROM search_history ORDER BY searched_at DESC, rowid DESC LIMIT ?", n,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query search history: %w", err)
	}
	defer rows.Close()

	var terms []string
	for rows.Next() {
		var term string
		if err := rows.Scan(&term); err != nil {
			return nil, fmt.Errorf("failed to scan search term: %w", err)
		}
		terms = append(terms, term)
	}

	return terms, rows.Err()
}

// Prune deletes all but the newest keep entries.
func (r *SearchHistoryRepository) Prune(keep int) error {
	if keep < 0 {
		keep = 0
	}

	query := `
		DELETE FROM search_history WHERE id NOT IN (
			SELECT id FROM search_history ORDER BY searched_at DESC, rowid DESC LIMIT ?
		)
	`

	if _, err := r.db.Exec(query, keep); err != nil {
		return fmt.Errorf("failed to prune search history: %w", err)
	}

	return nil
}
