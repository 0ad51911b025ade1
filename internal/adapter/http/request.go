package http

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hotel-search/hotel-booking-storefront/internal/domain"
)

// SearchHotelsRequest carries the search endpoint's query parameters before
// validation. Filter parameters repeat their key for multiple values.
type SearchHotelsRequest struct {
	Destination string
	CheckIn     string
	CheckOut    string
	AdultCount  string
	ChildCount  string
	Page        string

	Stars      []string
	Types      []string
	Facilities []string
	MaxPrice   string
	SortOption string
}

// ParseSearchRequest reads the search parameters from the query string.
func ParseSearchRequest(c echo.Context) SearchHotelsRequest {
	q := c.QueryParams()
	return SearchHotelsRequest{
		Destination: c.QueryParam("destination"),
		CheckIn:     c.QueryParam("checkIn"),
		CheckOut:    c.QueryParam("checkOut"),
		AdultCount:  c.QueryParam("adultCount"),
		ChildCount:  c.QueryParam("childCount"),
		Page:        c.QueryParam("page"),
		Stars:       q["stars"],
		Types:       q["types"],
		Facilities:  q["facilities"],
		MaxPrice:    c.QueryParam("maxPrice"),
		SortOption:  c.QueryParam("sortOption"),
	}
}

// searchInput is the validated, typed form of a search request.
type searchInput struct {
	criteria domain.SearchCriteria
	filters  domain.FilterState
	page     int
}

// Validate checks the request and converts it. Missing dates and counts fall
// back to the criteria defaults; malformed values are rejected with field
// errors, all violations reported at once.
func (r *SearchHotelsRequest) Validate(now time.Time) (*searchInput, error) {
	errs := &domain.ValidationErrors{}

	criteria := domain.SearchCriteria{Destination: r.Destination}
	parseDate(errs, "checkIn", r.CheckIn, &criteria.CheckIn)
	parseDate(errs, "checkOut", r.CheckOut, &criteria.CheckOut)
	parseCount(errs, "adultCount", r.AdultCount, &criteria.AdultCount)
	parseCount(errs, "childCount", r.ChildCount, &criteria.ChildCount)
	criteria.SetDefaults(now)

	page := 1
	if r.Page != "" {
		n, err := strconv.Atoi(r.Page)
		if err != nil || n < 1 {
			errs.Add("page", "page must be a positive integer")
		} else {
			page = n
		}
	}

	filters := domain.NewFilterState()
	for _, star := range r.Stars {
		filters.ToggleStar(star, true)
	}
	for _, hotelType := range r.Types {
		filters.ToggleType(hotelType, true)
	}
	for _, facility := range r.Facilities {
		filters.ToggleFacility(facility, true)
	}
	if r.MaxPrice != "" {
		price, err := strconv.Atoi(r.MaxPrice)
		if err != nil || price < 1 {
			errs.Add("maxPrice", "maxPrice must be a positive integer")
		} else {
			filters.SetMaxPrice(&price)
		}
	}
	if r.SortOption != "" {
		sort := domain.ParseSortOption(r.SortOption)
		if sort == domain.SortNone {
			errs.Add("sortOption", "unknown sort option")
		} else {
			filters.SetSort(sort)
		}
	}

	if errs.HasErrors() {
		return nil, errs
	}
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	return &searchInput{criteria: criteria, filters: filters, page: page}, nil
}

func parseDate(errs *domain.ValidationErrors, field, value string, dst *time.Time) {
	if value == "" {
		return
	}
	t, err := time.Parse(domain.ISODateFormat, value)
	if err != nil {
		errs.Add(field, field+" must be an ISO date (YYYY-MM-DD)")
		return
	}
	*dst = t
}

func parseCount(errs *domain.ValidationErrors, field, value string, dst *int) {
	if value == "" {
		return
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		errs.Add(field, field+" must be a non-negative integer")
		return
	}
	*dst = n
}

// LoginRequest is the login endpoint's body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the login body.
func (r *LoginRequest) Validate() error {
	errs := &domain.ValidationErrors{}
	if r.Email == "" {
		errs.Add("email", "email is required")
	}
	if len(r.Password) < 6 {
		errs.Add("password", "password must be at least 6 characters")
	}
	return errs.OrNil()
}

// RegisterRequest is the registration endpoint's body.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Validate checks the registration body.
func (r *RegisterRequest) Validate() error {
	errs := &domain.ValidationErrors{}
	if r.FirstName == "" {
		errs.Add("firstName", "first name is required")
	}
	if r.LastName == "" {
		errs.Add("lastName", "last name is required")
	}
	if r.Email == "" {
		errs.Add("email", "email is required")
	}
	if len(r.Password) < 6 {
		errs.Add("password", "password must be at least 6 characters")
	}
	return errs.OrNil()
}

// QuoteRequest is the booking quote endpoint's body: the stay the guest is
// pricing. Dates travel as ISO days.
type QuoteRequest struct {
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	AdultCount int    `json:"adultCount"`
	ChildCount int    `json:"childCount"`
}

// Validate checks and converts the quote body.
func (r *QuoteRequest) Validate(now time.Time) (domain.SearchCriteria, error) {
	errs := &domain.ValidationErrors{}

	criteria := domain.SearchCriteria{
		AdultCount: r.AdultCount,
		ChildCount: r.ChildCount,
	}
	parseDate(errs, "checkIn", r.CheckIn, &criteria.CheckIn)
	parseDate(errs, "checkOut", r.CheckOut, &criteria.CheckOut)
	if r.AdultCount < 1 {
		errs.Add("adultCount", "adultCount must be at least 1")
	}
	if r.ChildCount < 0 {
		errs.Add("childCount", "childCount cannot be negative")
	}
	criteria.SetDefaults(now)

	if errs.HasErrors() {
		return domain.SearchCriteria{}, errs
	}
	return criteria, nil
}

// SubmitBookingRequest is the booking submission body. Guest identity comes
// from the session; only the card crosses this endpoint.
type SubmitBookingRequest struct {
	Card CardRequest `json:"card"`
}

// CardRequest carries the card input.
type CardRequest struct {
	Number   string `json:"number"`
	ExpMonth int    `json:"expMonth"`
	ExpYear  int    `json:"expYear"`
	CVC      string `json:"cvc"`
}

// Validate checks the submission body.
func (r *SubmitBookingRequest) Validate() error {
	errs := &domain.ValidationErrors{}
	if r.Card.Number == "" {
		errs.Add("card.number", "card number is required")
	}
	if r.Card.ExpMonth < 1 || r.Card.ExpMonth > 12 {
		errs.Add("card.expMonth", "expiry month must be between 1 and 12")
	}
	if r.Card.ExpYear < 1 {
		errs.Add("card.expYear", "expiry year is required")
	}
	if r.Card.CVC == "" {
		errs.Add("card.cvc", "cvc is required")
	}
	return errs.OrNil()
}

// ToCardDetails converts the card input.
func (r *SubmitBookingRequest) ToCardDetails() domain.CardDetails {
	return domain.CardDetails{
		Number:   r.Card.Number,
		ExpMonth: r.Card.ExpMonth,
		ExpYear:  r.Card.ExpYear,
		CVC:      r.Card.CVC,
	}
}
