package backend

import (
	"context"
	"net/http"

	"github.com/hotel-search/hotel-booking-storefront/internal/domain"
)

// Hotels implements domain.HotelReader.
func (c *Client) Hotels(ctx context.Context) ([]domain.HotelSummary, error) {
	env, err := call[[]domain.HotelSummary](ctx, c, request{
		method:     http.MethodGet,
		path:       "/api/hotels",
		wantStatus: http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Hotel implements domain.HotelReader.
func (c *Client) Hotel(ctx context.Context, hotelID string) (*domain.HotelSummary, error) {
	env, err := call[domain.HotelSummary](ctx, c, request{
		method:     http.MethodGet,
		path:       "/api/hotels/" + hotelID,
		wantStatus: http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}
