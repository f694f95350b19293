package paginator

import "math"

// Adjust normalizes the pagination parameters to valid values.
// A non-positive fallback limit means DefaultLimit.
func (p *PaginateQuery) Adjust(fallbackLimit int) {
	if fallbackLimit < 1 {
		fallbackLimit = DefaultLimit
	}
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = fallbackLimit
	} else if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// TotalPages calculates the total number of pages based on total items and items per page.
func (p Paginator) TotalPages() int {
	if p.Total <= 0 || p.PerPage <= 0 {
		return 0
	}
	return int(math.Ceil(float64(p.Total) / float64(p.PerPage)))
}

// HasNextPage checks if there is a next page available. Without a total it falls back to
// "the page came back full".
func (p Paginator) HasNextPage() bool {
	if p.Total <= 0 {
		return p.PerPage > 0 && p.Count >= p.PerPage
	}
	return p.CurrentPage < p.TotalPages()
}

// HasPreviousPage checks if there is a previous page available.
func (p Paginator) HasPreviousPage() bool {
	return p.CurrentPage > 1
}
