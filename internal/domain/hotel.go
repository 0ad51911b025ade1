package domain

import "time"

// HotelSummary is an immutable record describing a listing. It is owned by
// the backend; the storefront only reads and caches it.
type HotelSummary struct {
	// ID is the backend's identifier for the hotel
	ID string `json:"_id"`

	// UserID identifies the owner account
	UserID string `json:"userId"`

	// Name is the display name of the hotel
	Name string `json:"name"`

	// City and Country describe the hotel's location
	City    string `json:"city"`
	Country string `json:"country"`

	// Description is the owner-written blurb
	Description string `json:"description"`

	// Type is the hotel category (e.g. "Budget", "Boutique")
	Type string `json:"type"`

	// AdultCount and ChildCount are the maximum party sizes per room
	AdultCount int `json:"adultCount"`
	ChildCount int `json:"childCount"`

	// Facilities lists the amenities the hotel offers
	Facilities []string `json:"facilities"`

	// PricePerNight is the nightly rate in the storefront currency
	PricePerNight float64 `json:"pricePerNight"`

	// StarRating is the hotel's rating (1-5)
	StarRating int `json:"starRating"`

	// ImageURLs references the hotel's uploaded images
	ImageURLs []string `json:"imageUrls"`

	// LastUpdated is the backend's modification timestamp
	LastUpdated time.Time `json:"lastUpdated"`
}

// Pagination describes the backend's paging of a search result.
type Pagination struct {
	// Total is the total number of matching hotels
	Total int `json:"total"`

	// Pages is the total number of pages
	Pages int `json:"pages"`

	// CurrentPage is the 1-based page this result holds
	CurrentPage int `json:"currentPage"`

	// NextPage is the next page number, absent on the last page
	NextPage *int `json:"nextPage,omitempty"`
}

// HasNext reports whether a next page exists. The "Next" control must be
// disabled when it does not.
func (p Pagination) HasNext() bool {
	return p.NextPage != nil
}

// HasPrevious reports whether paging backwards is possible.
func (p Pagination) HasPrevious() bool {
	return p.CurrentPage > 1
}

// SearchResult is the successful outcome of a hotel search. An empty Hotels
// slice is "zero results", not an error.
type SearchResult struct {
	Hotels     []HotelSummary `json:"data"`
	Pagination Pagination     `json:"pagination"`
}
