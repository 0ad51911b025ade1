package domain

import "context"

//go:generate mockgen -source=ports.go -destination=mocks.go -package=domain

// HotelSearcher issues hotel searches against the backend.
type HotelSearcher interface {
	// SearchHotels runs the given query. A success:false envelope surfaces as
	// a *BackendError; an empty result set is a successful result, not an error.
	SearchHotels(ctx context.Context, query SearchQuery) (*SearchResult, error)
}

// HotelReader fetches public hotel listings.
type HotelReader interface {
	// Hotels lists all public hotels.
	Hotels(ctx context.Context) ([]HotelSummary, error)

	// Hotel fetches a single hotel by ID.
	Hotel(ctx context.Context, hotelID string) (*HotelSummary, error)
}

// SessionBackend drives authentication against the backend. All operations
// are cookie-credentialed.
type SessionBackend interface {
	// ValidateToken probes the session cookie; a rejection means logged out.
	ValidateToken(ctx context.Context) error

	// CurrentUser fetches the authenticated account.
	CurrentUser(ctx context.Context) (*User, error)

	// Login authenticates with the given credentials.
	Login(ctx context.Context, creds Credentials) error

	// Register creates a new account.
	Register(ctx context.Context, reg Registration) error

	// Logout ends the session.
	Logout(ctx context.Context) error
}

// BookingBackend drives the booking endpoints.
type BookingBackend interface {
	// CreatePaymentIntent asks the backend to open a payment intent for a stay
	// of the given night-count at the hotel.
	CreatePaymentIntent(ctx context.Context, hotelID string, nights int) (*PaymentIntentHandle, error)

	// CreateBooking submits the final reservation. Called only after the card
	// charge was confirmed.
	CreateBooking(ctx context.Context, form BookingForm) (*BookingRecord, error)

	// MyBookings returns the guest's booking history grouped by hotel.
	MyBookings(ctx context.Context) ([]HotelBookings, error)
}

// OwnerBackend drives the owner-scoped hotel CRUD endpoints.
type OwnerBackend interface {
	// MyHotels lists the owner's hotels.
	MyHotels(ctx context.Context) ([]HotelSummary, error)

	// MyHotel fetches one of the owner's hotels by ID.
	MyHotel(ctx context.Context, hotelID string) (*HotelSummary, error)

	// CreateHotel submits a new listing as multipart form data.
	CreateHotel(ctx context.Context, sub HotelSubmission) (*HotelSummary, error)

	// UpdateHotel updates an existing listing as multipart form data.
	UpdateHotel(ctx context.Context, sub HotelSubmission) (*HotelSummary, error)
}

// CardConfirmer confirms a card charge directly with the payment provider
// using the intent's client secret. It is never proxied through the backend.
type CardConfirmer interface {
	// ConfirmCardPayment confirms the charge and returns the confirmed intent
	// ID, which may differ from the requested one if the provider rotates it.
	// A provider rejection surfaces as a *CardDeclinedError.
	ConfirmCardPayment(ctx context.Context, clientSecret string, card CardDetails) (string, error)
}
