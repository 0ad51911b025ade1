package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hotel-search/hotel-booking-storefront/internal/domain"
)

// SearchHotels implements domain.HotelSearcher. Filter sets are encoded as
// repeated query keys (stars=1&stars=2), the array format the backend parses.
func (c *Client) SearchHotels(ctx context.Context, query domain.SearchQuery) (*domain.SearchResult, error) {
	env, err := call[[]domain.HotelSummary](ctx, c, request{
		method:     http.MethodGet,
		path:       "/api/hotels/search",
		query:      searchValues(query),
		wantStatus: http.StatusOK,
	})
	if err != nil {
		return nil, err
	}

	result := &domain.SearchResult{Hotels: env.Data}
	if result.Hotels == nil {
		result.Hotels = []domain.HotelSummary{}
	}
	if env.Pagination != nil {
		result.Pagination = *env.Pagination
	} else {
		result.Pagination = domain.Pagination{
			Total:       len(result.Hotels),
			Pages:       1,
			CurrentPage: 1,
		}
	}
	return result, nil
}

// searchValues flattens the composite query into wire parameters.
func searchValues(q domain.SearchQuery) url.Values {
	values := url.Values{}
	values.Set("destination", q.Destination)
	values.Set("checkIn", q.CheckIn)
	values.Set("checkOut", q.CheckOut)
	values.Set("adultCount", q.AdultCount)
	values.Set("childCount", q.ChildCount)
	values.Set("page", strconv.Itoa(q.Page))

	if q.HotelID != "" {
		values.Set("hotelId", q.HotelID)
	}
	for _, star := range q.Stars {
		values.Add("stars", star)
	}
	for _, hotelType := range q.Types {
		values.Add("types", hotelType)
	}
	for _, facility := range q.Facilities {
		values.Add("facilities", facility)
	}
	if q.MaxPrice != "" {
		values.Set("maxPrice", q.MaxPrice)
	}
	if q.Sort != domain.SortNone {
		values.Set("sort", string(q.Sort))
	}
	return values
}
