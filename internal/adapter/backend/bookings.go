package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hotel-search/hotel-booking-storefront/internal/domain"
)

// CreatePaymentIntent implements domain.BookingBackend. The handle's Nights
// field records what the intent was priced for, so the flow can detect a
// stale intent before charging.
func (c *Client) CreatePaymentIntent(ctx context.Context, hotelID string, nights int) (*domain.PaymentIntentHandle, error) {
	body, err := jsonBody(map[string]int{"numberOfNights": nights})
	if err != nil {
		return nil, err
	}
	env, err := call[domain.PaymentIntentHandle](ctx, c, request{
		method:      http.MethodPost,
		path:        fmt.Sprintf("/api/hotels/%s/bookings/payment-intent", hotelID),
		body:        body,
		contentType: "application/json",
		wantStatus:  http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	handle := env.Data
	handle.Nights = nights
	return &handle, nil
}

// CreateBooking implements domain.BookingBackend.
func (c *Client) CreateBooking(ctx context.Context, form domain.BookingForm) (*domain.BookingRecord, error) {
	body, err := jsonBody(form)
	if err != nil {
		return nil, err
	}
	env, err := call[domain.BookingRecord](ctx, c, request{
		method:      http.MethodPost,
		path:        fmt.Sprintf("/api/hotels/%s/bookings", form.HotelID),
		body:        body,
		contentType: "application/json",
		wantStatus:  http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// MyBookings implements domain.BookingBackend.
func (c *Client) MyBookings(ctx context.Context) ([]domain.HotelBookings, error) {
	env, err := call[[]domain.HotelBookings](ctx, c, request{
		method:     http.MethodGet,
		path:       "/api/my-bookings",
		wantStatus: http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return []domain.HotelBookings{}, nil
	}
	return env.Data, nil
}
