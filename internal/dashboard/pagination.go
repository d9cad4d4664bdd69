package dashboard

// maxVisiblePages is the width of the clickable page-number window.
const maxVisiblePages = 5

// PerPageOptions is the fixed set of allowed page sizes.
var PerPageOptions = []int{10, 20, 30, 50}

// ValidPerPage reports whether n is one of the allowed page sizes.
func ValidPerPage(n int) bool {
	for _, opt := range PerPageOptions {
		if n == opt {
			return true
		}
	}
	return false
}

// PageInfo holds the derived display values for one pagination state.
type PageInfo struct {
	TotalPages int
	StartItem  int // 1-based index of the first visible item, 0 when empty
	EndItem    int // 1-based index of the last visible item
	Pages      []int
}

// Paginate computes the derived pagination values for the given totals.
//
// The visible window shows every page when there are at most five; otherwise
// it is a five-wide window starting at currentPage-2, clamped to the valid
// page range (so the window shrinks near the last page rather than shifting).
func Paginate(totalItems, itemsPerPage, currentPage int) PageInfo {
	info := PageInfo{}
	if itemsPerPage <= 0 {
		return info
	}

	info.TotalPages = (totalItems + itemsPerPage - 1) / itemsPerPage

	if totalItems > 0 {
		info.StartItem = (currentPage-1)*itemsPerPage + 1
		info.EndItem = min(currentPage*itemsPerPage, totalItems)
	}

	if info.TotalPages <= maxVisiblePages {
		for p := 1; p <= info.TotalPages; p++ {
			info.Pages = append(info.Pages, p)
		}
		return info
	}

	start := max(1, currentPage-2)
	end := min(info.TotalPages, start+maxVisiblePages-1)
	for p := start; p <= end; p++ {
		info.Pages = append(info.Pages, p)
	}

	return info
}
