// Package http provides the HTTP handler layer for the storefront gateway.
// It handles request parsing, validation, response formatting, and error
// mapping for the orchestrated storefront flows.
package http

import (
	"github.com/hotel-search/hotel-booking-storefront/internal/domain"
	"github.com/hotel-search/hotel-booking-storefront/internal/usecase"
)

// SessionDTO is the session payload.
type SessionDTO struct {
	IsLoggedIn bool         `json:"isLoggedIn"`
	User       *domain.User `json:"user,omitempty"`
}

// ToSessionDTO converts a domain session.
func ToSessionDTO(s domain.Session) SessionDTO {
	return SessionDTO{
		IsLoggedIn: s.IsLoggedIn,
		User:       s.User,
	}
}

// QuoteDTO is the booking quote payload: the loaded attempt's state plus the
// price breakdown the guest confirms before entering card details.
type QuoteDTO struct {
	State         string               `json:"state"`
	Hotel         *domain.HotelSummary `json:"hotel,omitempty"`
	Nights        int                  `json:"nights"`
	TotalStayCost float64              `json:"totalStayCost"`
	Message       string               `json:"message,omitempty"`
}

// ToQuoteDTO converts a booking view. The intent's client secret never
// leaves the gateway.
func ToQuoteDTO(view usecase.BookingView) QuoteDTO {
	dto := QuoteDTO{
		State:   view.State.String(),
		Hotel:   view.Hotel,
		Nights:  view.Nights,
		Message: view.Message,
	}
	if view.Intent != nil {
		dto.TotalStayCost = view.Intent.TotalStayCost
	}
	return dto
}

// DraftAvailabilityDTO is the prefetched availability for the drafted stay:
// the draft criteria plus the last settled search for them.
type DraftAvailabilityDTO struct {
	Destination string                `json:"destination"`
	CheckIn     string                `json:"checkIn"`
	CheckOut    string                `json:"checkOut"`
	AdultCount  int                   `json:"adultCount"`
	ChildCount  int                   `json:"childCount"`
	Loading     bool                  `json:"loading"`
	Hotels      []domain.HotelSummary `json:"hotels"`
	Pagination  *domain.Pagination    `json:"pagination,omitempty"`
	Message     string                `json:"message,omitempty"`
}

// ToDraftAvailabilityDTO combines the drafted stay with the prefetcher's
// settled state.
func ToDraftAvailabilityDTO(criteria domain.SearchCriteria, state usecase.SearchState) DraftAvailabilityDTO {
	dto := DraftAvailabilityDTO{
		Destination: criteria.Destination,
		CheckIn:     criteria.CheckIn.Format(domain.ISODateFormat),
		CheckOut:    criteria.CheckOut.Format(domain.ISODateFormat),
		AdultCount:  criteria.AdultCount,
		ChildCount:  criteria.ChildCount,
		Loading:     state.Loading,
		Hotels:      []domain.HotelSummary{},
	}
	if state.Result != nil {
		dto.Hotels = state.Result.Hotels
		dto.Pagination = &state.Result.Pagination
	}
	if state.Err != nil {
		dto.Message = state.Err.Error()
	}
	return dto
}

// BookingDTO is the confirmed reservation payload.
type BookingDTO struct {
	ID            string  `json:"_id"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Email         string  `json:"email"`
	CheckIn       string  `json:"checkIn"`
	CheckOut      string  `json:"checkOut"`
	AdultCount    int     `json:"adultCount"`
	ChildCount    int     `json:"childCount"`
	TotalStayCost float64 `json:"totalStayCost"`
}

// ToBookingDTO converts a booking record, dates rendered as ISO days.
func ToBookingDTO(r *domain.BookingRecord) BookingDTO {
	return BookingDTO{
		ID:            r.ID,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		CheckIn:       r.CheckIn.Format(domain.ISODateFormat),
		CheckOut:      r.CheckOut.Format(domain.ISODateFormat),
		AdultCount:    r.AdultCount,
		ChildCount:    r.ChildCount,
		TotalStayCost: r.TotalStayCost,
	}
}
