package domain

import (
	"sort"
	"strconv"
)

// SortOption defines the available sorting options for hotel search results.
type SortOption string

// Available sort options, matching the backend's sort query parameter.
const (
	// SortNone leaves ordering to the backend default
	SortNone SortOption = ""

	// SortPricePerNightAsc sorts by nightly price ascending (cheapest first)
	SortPricePerNightAsc SortOption = "pricePerNightAsc"

	// SortPricePerNightDesc sorts by nightly price descending
	SortPricePerNightDesc SortOption = "pricePerNightDesc"

	// SortStarRating sorts by star rating descending
	SortStarRating SortOption = "starRating"
)

// IsValid checks if the sort option is a valid value. The empty option is
// valid and means unsorted.
func (s SortOption) IsValid() bool {
	switch s {
	case SortNone, SortPricePerNightAsc, SortPricePerNightDesc, SortStarRating:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortNone if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(s)
	if option.IsValid() {
		return option
	}
	return SortNone
}

// FilterState holds the filter panel's UI state: independent toggle sets plus
// a scalar price ceiling and sort order. It is pure UI state, never persisted.
type FilterState struct {
	// Stars is the set of selected star ratings ("1".."5")
	Stars map[string]bool `json:"stars"`

	// Types is the set of selected hotel types
	Types map[string]bool `json:"types"`

	// Facilities is the set of selected facilities
	Facilities map[string]bool `json:"facilities"`

	// MaxPrice filters out hotels with a nightly price above this amount
	MaxPrice *int `json:"maxPrice,omitempty"`

	// Sort specifies the result ordering
	Sort SortOption `json:"sort,omitempty"`
}

// NewFilterState returns an empty filter state with all sets initialized.
func NewFilterState() FilterState {
	return FilterState{
		Stars:      map[string]bool{},
		Types:      map[string]bool{},
		Facilities: map[string]bool{},
	}
}

// ToggleStar adds the star rating to the selection when selected is true and
// removes it otherwise. Each filter dimension is independent; toggling is
// symmetric and idempotent.
func (f *FilterState) ToggleStar(star string, selected bool) {
	toggle(f.Stars, star, selected)
}

// ToggleType adds or removes a hotel type from the selection.
func (f *FilterState) ToggleType(hotelType string, selected bool) {
	toggle(f.Types, hotelType, selected)
}

// ToggleFacility adds or removes a facility from the selection.
func (f *FilterState) ToggleFacility(facility string, selected bool) {
	toggle(f.Facilities, facility, selected)
}

func toggle(set map[string]bool, value string, selected bool) {
	if selected {
		set[value] = true
		return
	}
	delete(set, value)
}

// SetMaxPrice sets the nightly price ceiling. Passing nil clears it.
func (f *FilterState) SetMaxPrice(price *int) {
	f.MaxPrice = price
}

// SetSort sets the result ordering.
func (f *FilterState) SetSort(sort SortOption) {
	f.Sort = sort
}

// Clear resets every filter field simultaneously.
func (f *FilterState) Clear() {
	f.Stars = map[string]bool{}
	f.Types = map[string]bool{}
	f.Facilities = map[string]bool{}
	f.MaxPrice = nil
	f.Sort = SortNone
}

// SelectedStars returns the selected star ratings in sorted order.
func (f *FilterState) SelectedStars() []string {
	return sortedKeys(f.Stars)
}

// SelectedTypes returns the selected hotel types in sorted order.
func (f *FilterState) SelectedTypes() []string {
	return sortedKeys(f.Types)
}

// SelectedFacilities returns the selected facilities in sorted order.
func (f *FilterState) SelectedFacilities() []string {
	return sortedKeys(f.Facilities)
}

// MaxPriceString returns the price ceiling as a wire string, or "" when unset.
func (f *FilterState) MaxPriceString() string {
	if f.MaxPrice == nil {
		return ""
	}
	return strconv.Itoa(*f.MaxPrice)
}

// Clone returns a deep copy of the filter state so callers can snapshot it
// without racing the UI's writer.
func (f *FilterState) Clone() FilterState {
	clone := FilterState{
		Stars:      make(map[string]bool, len(f.Stars)),
		Types:      make(map[string]bool, len(f.Types)),
		Facilities: make(map[string]bool, len(f.Facilities)),
		Sort:       f.Sort,
	}
	for k := range f.Stars {
		clone.Stars[k] = true
	}
	for k := range f.Types {
		clone.Types[k] = true
	}
	for k := range f.Facilities {
		clone.Facilities[k] = true
	}
	if f.MaxPrice != nil {
		price := *f.MaxPrice
		clone.MaxPrice = &price
	}
	return clone
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
