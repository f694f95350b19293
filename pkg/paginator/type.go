package paginator

// PaginateQuery contains pagination parameters for a request.
type PaginateQuery struct {
	Page  int // 1-indexed
	Limit int
}

// Paginator contains pagination metadata for a query result.
type Paginator struct {
	Total       int64 // Total number of items across all pages
	Count       int   // Number of items in current page
	PerPage     int   // Number of items per page
	CurrentPage int   // 1-indexed
}
