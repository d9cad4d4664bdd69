package dashboard

import (
	"strings"

	"github.com/desertthunder/tdx/internal/models"
	"github.com/desertthunder/tdx/internal/services"
)

// Query owns the search term, status filter and pagination parameters for the
// task list. Mutators return true when the change requires a refetch; any
// change to the search term, status filter or page size resets the page to 1
// first.
type Query struct {
	Page    int
	PerPage int
	Status  models.TaskStatus // empty means no filter
	Search  string
}

// NewQuery builds a page-1 query, falling back to the smallest allowed page
// size when perPage is not in the fixed set.
func NewQuery(perPage int, status models.TaskStatus, search string) Query {
	if !ValidPerPage(perPage) {
		perPage = PerPageOptions[0]
	}
	return Query{Page: 1, PerPage: perPage, Status: status, Search: search}
}

// SetSearch updates the search term. Returns false when the term is unchanged.
func (q *Query) SetSearch(term string) bool {
	if q.Search == term {
		return false
	}
	q.Search = term
	q.Page = 1
	return true
}

// SetStatus updates the status filter. An empty status clears the filter.
func (q *Query) SetStatus(status models.TaskStatus) bool {
	if q.Status == status {
		return false
	}
	q.Status = status
	q.Page = 1
	return true
}

// SetPerPage updates the page size; values outside the fixed allowed set are
// rejected.
func (q *Query) SetPerPage(n int) bool {
	if !ValidPerPage(n) || q.PerPage == n {
		return false
	}
	q.PerPage = n
	q.Page = 1
	return true
}

// SetPage navigates to an explicit page. Targets outside [1, totalPages] are
// rejected as no-ops.
func (q *Query) SetPage(page, totalPages int) bool {
	if page < 1 || page > totalPages || page == q.Page {
		return false
	}
	q.Page = page
	return true
}

// FilterActive reports whether a search term or status filter is in effect.
func (q Query) FilterActive() bool {
	return strings.TrimSpace(q.Search) != "" || q.Status != ""
}

// ListQuery converts the query into transport parameters.
func (q Query) ListQuery() services.ListQuery {
	return services.ListQuery{
		Page:    q.Page,
		PerPage: q.PerPage,
		Status:  q.Status,
		Search:  strings.TrimSpace(q.Search),
	}
}
