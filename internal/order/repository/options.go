package repository

import "orderdesk/internal/order"

// SearchOptions - normalised query for /api/orders/search. Empty strings are omitted.
type SearchOptions struct {
	Keyword  string
	Status   string
	Page     int
	PageSize int
}

// SearchResult - raw page as returned by the server
type SearchResult struct {
	Orders   []order.Order
	Total    int64
	Page     int
	PageSize int
	// HasMore is nil when the server did not say.
	HasMore *bool
}
