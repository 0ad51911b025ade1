package domain

import (
	"fmt"
	"strings"
)

// SearchQuery is the full request shape sent to the backend: the debounced
// criteria projection joined with the filter state and a page number.
type SearchQuery struct {
	DebouncedQuery

	// Stars, Types and Facilities are the selected filter values, encoded as
	// repeated query parameters on the wire.
	Stars      []string
	Types      []string
	Facilities []string

	// MaxPrice is the nightly price ceiling as a wire string ("" when unset)
	MaxPrice string

	// Sort is the requested result ordering
	Sort SortOption

	// Page is the 1-based result page
	Page int
}

// NewSearchQuery joins a debounced projection with a filter snapshot and page.
func NewSearchQuery(dq DebouncedQuery, filters FilterState, page int) SearchQuery {
	if page < 1 {
		page = 1
	}
	return SearchQuery{
		DebouncedQuery: dq,
		Stars:          filters.SelectedStars(),
		Types:          filters.SelectedTypes(),
		Facilities:     filters.SelectedFacilities(),
		MaxPrice:       filters.MaxPriceString(),
		Sort:           filters.Sort,
		Page:           page,
	}
}

// Key returns a stable structural identity for the query. Two queries with the
// same destination, dates, counts, filters and page produce the same key, so
// they share a cache entry and never issue a duplicate request. Outgoing
// requests are tagged with their key; a response whose key no longer matches
// current state is discarded rather than surfaced.
func (q SearchQuery) Key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "dest=%s|in=%s|out=%s|adults=%s|children=%s|hotel=%s",
		q.Destination, q.CheckIn, q.CheckOut, q.AdultCount, q.ChildCount, q.HotelID)
	fmt.Fprintf(&b, "|stars=%s|types=%s|facilities=%s",
		strings.Join(q.Stars, ","), strings.Join(q.Types, ","), strings.Join(q.Facilities, ","))
	fmt.Fprintf(&b, "|maxPrice=%s|sort=%s|page=%d", q.MaxPrice, q.Sort, q.Page)
	return b.String()
}
