package domain

import "time"

// PaymentIntentHandle is the provider-side handle for an authorized-but-unconfirmed
// charge. It is created per booking attempt, tied to a specific night-count,
// and single-use: it must never be reused across a different night-count.
type PaymentIntentHandle struct {
	// PaymentIntentID identifies the intent at the payment provider
	PaymentIntentID string `json:"paymentIntentId"`

	// ClientSecret authorizes the storefront to confirm the charge directly
	// with the provider; it is never sent back to the backend
	ClientSecret string `json:"clientSecret"`

	// TotalStayCost is the amount the intent authorizes
	TotalStayCost float64 `json:"totalStayCost"`

	// Nights is the night-count the cost was computed for. A date change that
	// alters the night-count invalidates the handle.
	Nights int `json:"-"`
}

// BookingForm is the full booking submission sent to the backend after the
// card charge has been confirmed.
type BookingForm struct {
	HotelID         string    `json:"hotelId"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	AdultCount      int       `json:"adultCount"`
	ChildCount      int       `json:"childCount"`
	TotalStayCost   float64   `json:"totalStayCost"`
	PaymentIntentID string    `json:"paymentIntentId"`
}

// BookingRecord is the persisted reservation, created by the backend only
// after card confirmation succeeded.
type BookingRecord struct {
	ID            string    `json:"_id"`
	UserID        string    `json:"userId"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	CheckIn       time.Time `json:"checkIn"`
	CheckOut      time.Time `json:"checkOut"`
	AdultCount    int       `json:"adultCount"`
	ChildCount    int       `json:"childCount"`
	TotalStayCost float64   `json:"totalStayCost"`
}

// HotelBookings groups a guest's booking history by hotel, the shape the
// my-bookings endpoint returns.
type HotelBookings struct {
	Hotel    HotelSummary    `json:"hotel"`
	Bookings []BookingRecord `json:"bookings"`
}

// CardDetails carries the card input handed to the payment provider. The
// storefront forwards it to the provider directly; it never reaches the backend.
type CardDetails struct {
	Number   string
	ExpMonth int
	ExpYear  int
	CVC      string
}
