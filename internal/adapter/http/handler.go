package http

import (
	"context"
	"errors"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/hotel-search/hotel-booking-storefront/internal/adapter/http/response"
	"github.com/hotel-search/hotel-booking-storefront/internal/domain"
	"github.com/hotel-search/hotel-booking-storefront/internal/infrastructure/logger"
	"github.com/hotel-search/hotel-booking-storefront/internal/infrastructure/timeutil"
	"github.com/hotel-search/hotel-booking-storefront/internal/usecase"
)

// StorefrontHandler handles the gateway's HTTP endpoints. Booking flows are
// held across the quote and submit calls, keyed by hotel, so the payment
// intent opened by the quote is the one the submission confirms.
type StorefrontHandler struct {
	searcher domain.HotelSearcher
	sessions *usecase.SessionCache
	drafts   *usecase.DraftStore
	prefetch *usecase.SearchOrchestrator
	booking  usecase.BookingDeps
	clock    timeutil.Clock
	log      *logger.Logger

	mu    sync.Mutex
	flows map[string]*usecase.BookingFlow
}

// NewStorefrontHandler creates the handler.
func NewStorefrontHandler(
	searcher domain.HotelSearcher,
	sessions *usecase.SessionCache,
	drafts *usecase.DraftStore,
	prefetch *usecase.SearchOrchestrator,
	booking usecase.BookingDeps,
	clock timeutil.Clock,
	log *logger.Logger,
) *StorefrontHandler {
	return &StorefrontHandler{
		searcher: searcher,
		sessions: sessions,
		drafts:   drafts,
		prefetch: prefetch,
		booking:  booking,
		clock:    clock,
		log:      log.WithComponent("http"),
		flows:    make(map[string]*usecase.BookingFlow),
	}
}

// SearchHotels handles GET /api/v1/hotels/search. Filter parameters repeat
// their key; results come back in the success envelope with pagination.
func (h *StorefrontHandler) SearchHotels(c echo.Context) error {
	req := ParseSearchRequest(c)

	input, err := req.Validate(h.clock.Now())
	if err != nil {
		return h.handleValidationError(c, err)
	}

	query := domain.NewSearchQuery(input.criteria.Project(), input.filters, input.page)
	result, err := h.searcher.SearchHotels(c.Request().Context(), query)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Paginated(c, result.Hotels, &result.Pagination)
}

// DraftAvailability handles GET /api/v1/hotels/draft. It returns the drafted
// stay together with whatever the background prefetcher has settled for it,
// without issuing a backend call of its own.
func (h *StorefrontHandler) DraftAvailability(c echo.Context) error {
	criteria := h.drafts.Snapshot()
	state := h.prefetch.Snapshot()
	return response.OK(c, ToDraftAvailabilityDTO(criteria, state))
}

// CurrentSession handles GET /api/v1/session.
func (h *StorefrontHandler) CurrentSession(c echo.Context) error {
	session := h.sessions.Current(c.Request().Context())
	return response.OK(c, ToSessionDTO(session))
}

// Login handles POST /api/v1/session/login.
func (h *StorefrontHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	ctx := c.Request().Context()
	creds := domain.Credentials{Email: req.Email, Password: req.Password}
	if err := h.sessions.Login(ctx, creds); err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToSessionDTO(h.sessions.Current(ctx)))
}

// Register handles POST /api/v1/session/register.
func (h *StorefrontHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	ctx := c.Request().Context()
	reg := domain.Registration{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}
	if err := h.sessions.Register(ctx, reg); err != nil {
		return h.handleError(c, err)
	}
	return response.Created(c, ToSessionDTO(h.sessions.Current(ctx)))
}

// Logout handles POST /api/v1/session/logout.
func (h *StorefrontHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context()); err != nil {
		return h.handleError(c, err)
	}
	return response.Message(c, "logged out")
}

// QuoteBooking handles POST /api/v1/bookings/:hotelID/quote. It records the
// stay in the draft store, starts a booking attempt (hotel, session user and
// payment intent), and returns the priced quote. The attempt stays live for
// the follow-up submission.
func (h *StorefrontHandler) QuoteBooking(c echo.Context) error {
	hotelID := c.Param("hotelID")
	if hotelID == "" {
		return response.BadRequest(c, "missing hotel ID")
	}

	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	criteria, err := req.Validate(h.clock.Now())
	if err != nil {
		return h.handleValidationError(c, err)
	}

	h.drafts.Set(criteria)

	flow := usecase.NewBookingFlow(h.booking, h.drafts, hotelID, h.log)
	flow.Start(c.Request().Context())

	view := flow.Snapshot()
	switch view.State {
	case usecase.BookingHotelMissing:
		return response.NotFound(c, view.Message)
	case usecase.BookingUserMissing:
		return response.Unauthorized(c)
	case usecase.BookingIntentFailed:
		return response.BadGateway(c, view.Message)
	}

	h.mu.Lock()
	h.flows[hotelID] = flow
	h.mu.Unlock()

	return response.OK(c, ToQuoteDTO(view))
}

// SubmitBooking handles POST /api/v1/bookings/:hotelID. It confirms the card
// against the quote's payment intent and creates the reservation.
func (h *StorefrontHandler) SubmitBooking(c echo.Context) error {
	hotelID := c.Param("hotelID")
	if hotelID == "" {
		return response.BadRequest(c, "missing hotel ID")
	}

	var req SubmitBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	h.mu.Lock()
	flow, ok := h.flows[hotelID]
	h.mu.Unlock()
	if !ok {
		return response.NotFound(c, "no active quote for this hotel")
	}

	ctx := c.Request().Context()
	if err := flow.SyncDates(ctx); err != nil {
		return h.handleError(c, err)
	}

	record, err := flow.Submit(ctx, req.ToCardDetails())
	if err != nil {
		return h.handleError(c, err)
	}

	// The attempt is spent; a new stay needs a new quote.
	h.mu.Lock()
	delete(h.flows, hotelID)
	h.mu.Unlock()

	return response.Created(c, ToBookingDTO(record))
}

// handleValidationError answers 400 with field details when available.
func (h *StorefrontHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *domain.ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.BadRequest(c, err.Error())
}

// handleError maps domain errors to HTTP responses. Upstream messages pass
// through verbatim so the guest sees what the backend said.
func (h *StorefrontHandler) handleError(c echo.Context, err error) error {
	var declined *domain.CardDeclinedError
	if errors.As(err, &declined) {
		return response.PaymentRequired(c, declined.Message)
	}

	var reconciliation *domain.ReconciliationError
	if errors.As(err, &reconciliation) {
		return response.BadGateway(c, reconciliation.Error())
	}

	if backendErr, ok := domain.AsBackendError(err); ok {
		switch backendErr.StatusCode {
		case 401:
			return response.Unauthorized(c)
		case 404:
			return response.NotFound(c, backendErr.Message)
		default:
			return response.BadGateway(c, backendErr.Message)
		}
	}

	switch {
	case errors.Is(err, domain.ErrStaleIntent):
		return response.Conflict(c, "stay dates changed since the quote; request a new quote")
	case errors.Is(err, domain.ErrNoNights):
		return response.BadRequest(c, "stay must be at least one night")
	case errors.Is(err, domain.ErrNotLoggedIn):
		return response.Unauthorized(c)
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	}

	h.log.Error().Err(err).Msg("unhandled error")
	return response.InternalServerError(c)
}

// Health handles GET /health.
func (h *StorefrontHandler) Health(c echo.Context) error {
	return response.Health(c)
}
