// Package domain contains the core business entities and rules for the hotel
// booking storefront. These entities are transport-agnostic and form the
// foundation upon which all other components are built.
package domain

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// ISODateFormat is the wire format for check-in/check-out dates.
const ISODateFormat = "2006-01-02"

// SearchCriteria holds the in-progress (not yet submitted) search input.
// It lives in the draft store and is mutated field-by-field by the search form.
type SearchCriteria struct {
	// Destination is the free-text destination the guest typed (city, country)
	Destination string `json:"destination"`

	// CheckIn is the desired check-in date
	CheckIn time.Time `json:"checkIn"`

	// CheckOut is the desired check-out date
	CheckOut time.Time `json:"checkOut"`

	// AdultCount is the number of adults (minimum 1)
	AdultCount int `json:"adultCount"`

	// ChildCount is the number of children (minimum 0)
	ChildCount int `json:"childCount"`

	// HotelID optionally pins the search to a single hotel
	HotelID string `json:"hotelId,omitempty"`
}

// DefaultSearchCriteria returns the criteria a fresh browsing session starts
// with: today/tomorrow, one adult, no children.
func DefaultSearchCriteria(now time.Time) SearchCriteria {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return SearchCriteria{
		Destination: "",
		CheckIn:     today,
		CheckOut:    today.AddDate(0, 0, 1),
		AdultCount:  1,
		ChildCount:  0,
	}
}

// SetDefaults applies default values to zero-valued fields.
func (s *SearchCriteria) SetDefaults(now time.Time) {
	def := DefaultSearchCriteria(now)
	if s.CheckIn.IsZero() {
		s.CheckIn = def.CheckIn
	}
	if s.CheckOut.IsZero() {
		s.CheckOut = def.CheckOut
	}
	if s.AdultCount == 0 {
		s.AdultCount = def.AdultCount
	}
}

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s SearchCriteria) Validate() error {
	if s.AdultCount < 1 {
		return fmt.Errorf("%w: adultCount must be at least 1", ErrInvalidRequest)
	}
	if s.ChildCount < 0 {
		return fmt.Errorf("%w: childCount cannot be negative", ErrInvalidRequest)
	}
	if s.CheckIn.IsZero() || s.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidRequest)
	}
	if s.CheckOut.Before(s.CheckIn) {
		return fmt.Errorf("%w: checkOut must not be before checkIn", ErrInvalidRequest)
	}
	return nil
}

// Nights returns the number of nights between check-in and check-out,
// ceiling-rounded. A same-day stay yields 0 and must never trigger a charge.
func (s SearchCriteria) Nights() int {
	diff := s.CheckOut.Sub(s.CheckIn)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// DebouncedQuery is the wire-safe projection of SearchCriteria taken after a
// quiescence delay. Dates are serialized to ISO strings and counts to strings,
// matching the query-string encoding the backend expects. A projection is
// read-only once emitted; superseded projections are discarded.
type DebouncedQuery struct {
	Destination string `json:"destination"`
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
	AdultCount  string `json:"adultCount"`
	ChildCount  string `json:"childCount"`
	HotelID     string `json:"hotelId,omitempty"`
}

// Project converts the criteria into its wire projection.
func (s SearchCriteria) Project() DebouncedQuery {
	return DebouncedQuery{
		Destination: s.Destination,
		CheckIn:     s.CheckIn.Format(ISODateFormat),
		CheckOut:    s.CheckOut.Format(ISODateFormat),
		AdultCount:  strconv.Itoa(s.AdultCount),
		ChildCount:  strconv.Itoa(s.ChildCount),
		HotelID:     s.HotelID,
	}
}
