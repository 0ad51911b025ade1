package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hotel-search/hotel-booking-storefront/internal/adapter/http/response"
	"github.com/hotel-search/hotel-booking-storefront/internal/domain"
	"github.com/hotel-search/hotel-booking-storefront/internal/infrastructure/logger"
	"github.com/hotel-search/hotel-booking-storefront/internal/infrastructure/sessionstore"
	"github.com/hotel-search/hotel-booking-storefront/internal/infrastructure/timeutil"
	"github.com/hotel-search/hotel-booking-storefront/internal/usecase"
)

type handlerFixture struct {
	searcher *domain.MockHotelSearcher
	hotels   *domain.MockHotelReader
	sessions *domain.MockSessionBackend
	bookings *domain.MockBookingBackend
	cards    *domain.MockCardConfirmer
	clock    *timeutil.MockClock
	drafts   *usecase.DraftStore
	prefetch *usecase.SearchOrchestrator
	handler  *StorefrontHandler
	echo     *echo.Echo
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &handlerFixture{
		searcher: domain.NewMockHotelSearcher(ctrl),
		hotels:   domain.NewMockHotelReader(ctrl),
		sessions: domain.NewMockSessionBackend(ctrl),
		bookings: domain.NewMockBookingBackend(ctrl),
		cards:    domain.NewMockCardConfirmer(ctrl),
		clock:    timeutil.NewMockClockFromString("2024-11-20T10:00:00Z"),
		echo:     echo.New(),
	}

	log := logger.Nop()
	f.drafts = usecase.NewDraftStore(sessionstore.NewMemoryStore(), f.clock, log)
	f.prefetch = usecase.NewSearchOrchestrator(f.searcher, log)
	t.Cleanup(f.prefetch.Close)
	sessions := usecase.NewSessionCache(f.sessions, log)
	deps := usecase.BookingDeps{
		Hotels:   f.hotels,
		Sessions: f.sessions,
		Bookings: f.bookings,
		Cards:    f.cards,
	}
	f.handler = NewStorefrontHandler(f.searcher, sessions, f.drafts, f.prefetch, deps, f.clock, log)
	return f
}

func (f *handlerFixture) request(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return f.echo.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

// decodeData re-marshals the envelope payload into the given DTO.
func decodeData(t *testing.T, env response.Envelope, dst any) {
	t.Helper()
	raw, err := json.Marshal(env.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, dst))
}

var bali = domain.HotelSummary{ID: "h1", Name: "Grand Pacific", City: "Denpasar"}

var ada = domain.User{ID: "u1", Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}

const quoteBody = `{"checkIn":"2024-12-01","checkOut":"2024-12-05","adultCount":2,"childCount":0}`

const submitBody = `{"card":{"number":"4242424242424242","expMonth":12,"expYear":2030,"cvc":"123"}}`

// quoteReady drives a successful quote for hotel h1 so a live flow exists for
// submission tests.
func (f *handlerFixture) quoteReady(t *testing.T) {
	t.Helper()
	f.hotels.EXPECT().Hotel(gomock.Any(), "h1").Return(&bali, nil)
	f.sessions.EXPECT().CurrentUser(gomock.Any()).Return(&ada, nil)
	f.bookings.EXPECT().CreatePaymentIntent(gomock.Any(), "h1", 4).Return(&domain.PaymentIntentHandle{
		PaymentIntentID: "pi_1",
		ClientSecret:    "pi_1_secret_x",
		TotalStayCost:   400,
		Nights:          4,
	}, nil)

	c, rec := f.request(http.MethodPost, "/api/v1/bookings/h1/quote", quoteBody)
	c.SetParamNames("hotelID")
	c.SetParamValues("h1")

	require.NoError(t, f.handler.QuoteBooking(c))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

// TestSearchHotels tests the search endpoint.
func TestSearchHotels(t *testing.T) {
	t.Run("passes the parsed query through and answers paginated", func(t *testing.T) {
		f := newHandlerFixture(t)

		var gotQuery domain.SearchQuery
		f.searcher.EXPECT().SearchHotels(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, query domain.SearchQuery) (*domain.SearchResult, error) {
				gotQuery = query
				return &domain.SearchResult{
					Hotels:     []domain.HotelSummary{bali},
					Pagination: domain.Pagination{Total: 12, Pages: 3, CurrentPage: 2},
				}, nil
			})

		c, rec := f.request(http.MethodGet,
			"/api/v1/hotels/search?destination=Bali&checkIn=2024-12-01&checkOut=2024-12-05&adultCount=2&page=2&stars=4&stars=5&facilities=Spa&maxPrice=300&sortOption=pricePerNightAsc", "")

		require.NoError(t, f.handler.SearchHotels(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)
		require.NotNil(t, env.Pagination)
		assert.Equal(t, 3, env.Pagination.Pages)

		assert.Equal(t, "Bali", gotQuery.Destination)
		assert.Equal(t, []string{"4", "5"}, gotQuery.Stars)
		assert.Equal(t, []string{"Spa"}, gotQuery.Facilities)
		assert.Equal(t, "300", gotQuery.MaxPrice)
		assert.Equal(t, domain.SortPricePerNightAsc, gotQuery.Sort)
		assert.Equal(t, 2, gotQuery.Page)
	})

	t.Run("answers 400 with field details on invalid input", func(t *testing.T) {
		f := newHandlerFixture(t)

		c, rec := f.request(http.MethodGet,
			"/api/v1/hotels/search?checkIn=not-a-date&adultCount=-1&page=0", "")

		require.NoError(t, f.handler.SearchHotels(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.False(t, env.Success)
		assert.Equal(t, response.MsgValidationFailed, env.Message)
		assert.Contains(t, env.Details, "checkIn")
		assert.Contains(t, env.Details, "adultCount")
		assert.Contains(t, env.Details, "page")
	})

	t.Run("passes a backend failure message through as 502", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.searcher.EXPECT().SearchHotels(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewBackendError(500, "Error fetching hotels"))

		c, rec := f.request(http.MethodGet, "/api/v1/hotels/search?destination=Bali", "")

		require.NoError(t, f.handler.SearchHotels(c))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "Error fetching hotels", env.Message)
	})
}

// TestDraftAvailability tests the prefetched draft endpoint.
func TestDraftAvailability(t *testing.T) {
	t.Run("answers the bare draft before anything settled", func(t *testing.T) {
		f := newHandlerFixture(t)

		c, rec := f.request(http.MethodGet, "/api/v1/hotels/draft", "")

		require.NoError(t, f.handler.DraftAvailability(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var dto DraftAvailabilityDTO
		decodeData(t, decodeEnvelope(t, rec), &dto)
		assert.False(t, dto.Loading)
		assert.Empty(t, dto.Hotels)
		assert.Nil(t, dto.Pagination)
	})

	t.Run("serves what the attached projector prefetched", func(t *testing.T) {
		f := newHandlerFixture(t)

		projector := usecase.NewQueryProjector(time.Millisecond, func(q domain.DebouncedQuery) {
			f.prefetch.ApplyQuery(context.Background(), q)
		})
		defer projector.Close()
		projector.Attach(f.drafts)

		f.searcher.EXPECT().SearchHotels(gomock.Any(), gomock.Any()).Return(&domain.SearchResult{
			Hotels:     []domain.HotelSummary{bali},
			Pagination: domain.Pagination{Total: 1, Pages: 1, CurrentPage: 1},
		}, nil)

		f.drafts.Set(domain.SearchCriteria{
			Destination: "Bali",
			CheckIn:     time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			CheckOut:    time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC),
			AdultCount:  2,
		})

		assert.Eventually(t, func() bool {
			c, rec := f.request(http.MethodGet, "/api/v1/hotels/draft", "")
			if err := f.handler.DraftAvailability(c); err != nil {
				return false
			}
			var dto DraftAvailabilityDTO
			decodeData(t, decodeEnvelope(t, rec), &dto)
			return !dto.Loading && len(dto.Hotels) == 1
		}, time.Second, 5*time.Millisecond)

		c, rec := f.request(http.MethodGet, "/api/v1/hotels/draft", "")
		require.NoError(t, f.handler.DraftAvailability(c))
		var dto DraftAvailabilityDTO
		decodeData(t, decodeEnvelope(t, rec), &dto)
		assert.Equal(t, "Bali", dto.Destination)
		assert.Equal(t, "2024-12-01", dto.CheckIn)
		assert.Equal(t, "Grand Pacific", dto.Hotels[0].Name)
		require.NotNil(t, dto.Pagination)
		assert.Equal(t, 1, dto.Pagination.Total)
	})
}

// TestSessionEndpoints tests the session group.
func TestSessionEndpoints(t *testing.T) {
	t.Run("current session is anonymous when the probe is rejected", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.sessions.EXPECT().ValidateToken(gomock.Any()).
			Return(domain.NewBackendError(401, "unauthorized"))

		c, rec := f.request(http.MethodGet, "/api/v1/session", "")

		require.NoError(t, f.handler.CurrentSession(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var dto SessionDTO
		decodeData(t, decodeEnvelope(t, rec), &dto)
		assert.False(t, dto.IsLoggedIn)
		assert.Nil(t, dto.User)
	})

	t.Run("login refreshes the session", func(t *testing.T) {
		f := newHandlerFixture(t)
		gomock.InOrder(
			f.sessions.EXPECT().Login(gomock.Any(), domain.Credentials{
				Email: "ada@example.com", Password: "secret",
			}).Return(nil),
			f.sessions.EXPECT().ValidateToken(gomock.Any()).Return(nil),
			f.sessions.EXPECT().CurrentUser(gomock.Any()).Return(&ada, nil),
		)

		c, rec := f.request(http.MethodPost, "/api/v1/session/login",
			`{"email":"ada@example.com","password":"secret"}`)

		require.NoError(t, f.handler.Login(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var dto SessionDTO
		decodeData(t, decodeEnvelope(t, rec), &dto)
		assert.True(t, dto.IsLoggedIn)
		require.NotNil(t, dto.User)
		assert.Equal(t, "Ada", dto.User.FirstName)
	})

	t.Run("login rejection maps to 401", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.sessions.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(domain.NewBackendError(401, "Invalid credentials"))

		c, rec := f.request(http.MethodPost, "/api/v1/session/login",
			`{"email":"ada@example.com","password":"wrongpw"}`)

		require.NoError(t, f.handler.Login(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, response.MsgNotLoggedIn, decodeEnvelope(t, rec).Message)
	})

	t.Run("login validation rejects a short password", func(t *testing.T) {
		f := newHandlerFixture(t)

		c, rec := f.request(http.MethodPost, "/api/v1/session/login",
			`{"email":"ada@example.com","password":"x"}`)

		require.NoError(t, f.handler.Login(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeEnvelope(t, rec).Details, "password")
	})

	t.Run("register answers 201 with the fresh session", func(t *testing.T) {
		f := newHandlerFixture(t)
		gomock.InOrder(
			f.sessions.EXPECT().Register(gomock.Any(), domain.Registration{
				FirstName: "Ada", LastName: "Lovelace",
				Email: "ada@example.com", Password: "secret",
			}).Return(nil),
			f.sessions.EXPECT().ValidateToken(gomock.Any()).Return(nil),
			f.sessions.EXPECT().CurrentUser(gomock.Any()).Return(&ada, nil),
		)

		c, rec := f.request(http.MethodPost, "/api/v1/session/register",
			`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"secret"}`)

		require.NoError(t, f.handler.Register(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("logout answers a success note", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.sessions.EXPECT().Logout(gomock.Any()).Return(nil)

		c, rec := f.request(http.MethodPost, "/api/v1/session/logout", "")

		require.NoError(t, f.handler.Logout(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeEnvelope(t, rec).Success)
	})
}

// TestQuoteBooking tests the quote endpoint and its state mapping.
func TestQuoteBooking(t *testing.T) {
	t.Run("prices the stay and keeps the attempt live", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.hotels.EXPECT().Hotel(gomock.Any(), "h1").Return(&bali, nil)
		f.sessions.EXPECT().CurrentUser(gomock.Any()).Return(&ada, nil)
		f.bookings.EXPECT().CreatePaymentIntent(gomock.Any(), "h1", 4).Return(&domain.PaymentIntentHandle{
			PaymentIntentID: "pi_1",
			ClientSecret:    "pi_1_secret_x",
			TotalStayCost:   400,
			Nights:          4,
		}, nil)

		c, rec := f.request(http.MethodPost, "/api/v1/bookings/h1/quote", quoteBody)
		c.SetParamNames("hotelID")
		c.SetParamValues("h1")

		require.NoError(t, f.handler.QuoteBooking(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var dto QuoteDTO
		decodeData(t, decodeEnvelope(t, rec), &dto)
		assert.Equal(t, "ready", dto.State)
		assert.Equal(t, 4, dto.Nights)
		assert.Equal(t, float64(400), dto.TotalStayCost)
		require.NotNil(t, dto.Hotel)
		assert.Equal(t, "Grand Pacific", dto.Hotel.Name)
	})

	t.Run("same-day stay quotes zero nights without an intent", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.hotels.EXPECT().Hotel(gomock.Any(), "h1").Return(&bali, nil)
		f.sessions.EXPECT().CurrentUser(gomock.Any()).Return(&ada, nil)

		body := `{"checkIn":"2024-12-01","checkOut":"2024-12-01","adultCount":2}`
		c, rec := f.request(http.MethodPost, "/api/v1/bookings/h1/quote", body)
		c.SetParamNames("hotelID")
		c.SetParamValues("h1")

		require.NoError(t, f.handler.QuoteBooking(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var dto QuoteDTO
		decodeData(t, decodeEnvelope(t, rec), &dto)
		assert.Equal(t, "ready", dto.State)
		assert.Equal(t, 0, dto.Nights)
		assert.Zero(t, dto.TotalStayCost)
	})

	t.Run("missing hotel maps to 404 with the upstream message", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.hotels.EXPECT().Hotel(gomock.Any(), "ghost").
			Return(nil, domain.NewBackendError(404, "Hotel not found"))
		f.sessions.EXPECT().CurrentUser(gomock.Any()).Return(&ada, nil).AnyTimes()
		f.bookings.EXPECT().CreatePaymentIntent(gomock.Any(), "ghost", 4).
			Return(&domain.PaymentIntentHandle{}, nil).AnyTimes()

		c, rec := f.request(http.MethodPost, "/api/v1/bookings/ghost/quote", quoteBody)
		c.SetParamNames("hotelID")
		c.SetParamValues("ghost")

		require.NoError(t, f.handler.QuoteBooking(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Hotel not found", decodeEnvelope(t, rec).Message)
	})

	t.Run("missing user maps to 401", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.hotels.EXPECT().Hotel(gomock.Any(), "h1").Return(&bali, nil)
		f.sessions.EXPECT().CurrentUser(gomock.Any()).
			Return(nil, domain.NewBackendError(401, "unauthorized"))
		f.bookings.EXPECT().CreatePaymentIntent(gomock.Any(), "h1", 4).
			Return(&domain.PaymentIntentHandle{}, nil).AnyTimes()

		c, rec := f.request(http.MethodPost, "/api/v1/bookings/h1/quote", quoteBody)
		c.SetParamNames("hotelID")
		c.SetParamValues("h1")

		require.NoError(t, f.handler.QuoteBooking(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("intent failure maps to 502 with the upstream message", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.hotels.EXPECT().Hotel(gomock.Any(), "h1").Return(&bali, nil)
		f.sessions.EXPECT().CurrentUser(gomock.Any()).Return(&ada, nil)
		f.bookings.EXPECT().CreatePaymentIntent(gomock.Any(), "h1", 4).
			Return(nil, domain.NewBackendError(500, "Error creating payment intent"))

		c, rec := f.request(http.MethodPost, "/api/v1/bookings/h1/quote", quoteBody)
		c.SetParamNames("hotelID")
		c.SetParamValues("h1")

		require.NoError(t, f.handler.QuoteBooking(c))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "Error creating payment intent", decodeEnvelope(t, rec).Message)
	})

	t.Run("invalid dates answer 400 before any lookup", func(t *testing.T) {
		f := newHandlerFixture(t)

		body := `{"checkIn":"soon","checkOut":"later","adultCount":0}`
		c, rec := f.request(http.MethodPost, "/api/v1/bookings/h1/quote", body)
		c.SetParamNames("hotelID")
		c.SetParamValues("h1")

		require.NoError(t, f.handler.QuoteBooking(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Contains(t, env.Details, "checkIn")
		assert.Contains(t, env.Details, "adultCount")
	})
}

// TestSubmitBooking tests the submission endpoint against a live quote.
func TestSubmitBooking(t *testing.T) {
	t.Run("confirms the card and creates the booking", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.quoteReady(t)

		f.cards.EXPECT().ConfirmCardPayment(gomock.Any(), "pi_1_secret_x", domain.CardDetails{
			Number: "4242424242424242", ExpMonth: 12, ExpYear: 2030, CVC: "123",
		}).Return("pi_1", nil)
		f.bookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, form domain.BookingForm) (*domain.BookingRecord, error) {
				assert.Equal(t, "h1", form.HotelID)
				assert.Equal(t, "pi_1", form.PaymentIntentID)
				assert.Equal(t, "Ada", form.FirstName)
				return &domain.BookingRecord{ID: "b1", FirstName: form.FirstName}, nil
			})

		c, rec := f.request(http.MethodPost, "/api/v1/bookings/h1", submitBody)
		c.SetParamNames("hotelID")
		c.SetParamValues("h1")

		require.NoError(t, f.handler.SubmitBooking(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var dto BookingDTO
		decodeData(t, decodeEnvelope(t, rec), &dto)
		assert.Equal(t, "b1", dto.ID)
	})

	t.Run("a spent quote cannot be submitted twice", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.quoteReady(t)

		f.cards.EXPECT().ConfirmCardPayment(gomock.Any(), "pi_1_secret_x", gomock.Any()).
			Return("pi_1", nil)
		f.bookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(&domain.BookingRecord{ID: "b1"}, nil)

		c, rec := f.request(http.MethodPost, "/api/v1/bookings/h1", submitBody)
		c.SetParamNames("hotelID")
		c.SetParamValues("h1")
		require.NoError(t, f.handler.SubmitBooking(c))
		require.Equal(t, http.StatusCreated, rec.Code)

		c, rec = f.request(http.MethodPost, "/api/v1/bookings/h1", submitBody)
		c.SetParamNames("hotelID")
		c.SetParamValues("h1")
		require.NoError(t, f.handler.SubmitBooking(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "no active quote for this hotel", decodeEnvelope(t, rec).Message)
	})

	t.Run("without a quote maps to 404", func(t *testing.T) {
		f := newHandlerFixture(t)

		c, rec := f.request(http.MethodPost, "/api/v1/bookings/h1", submitBody)
		c.SetParamNames("hotelID")
		c.SetParamValues("h1")

		require.NoError(t, f.handler.SubmitBooking(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("card decline maps to 402 with the provider message", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.quoteReady(t)

		f.cards.EXPECT().ConfirmCardPayment(gomock.Any(), "pi_1_secret_x", gomock.Any()).
			Return("", &domain.CardDeclinedError{Code: "card_declined", Message: "Your card was declined."})

		c, rec := f.request(http.MethodPost, "/api/v1/bookings/h1", submitBody)
		c.SetParamNames("hotelID")
		c.SetParamValues("h1")

		require.NoError(t, f.handler.SubmitBooking(c))

		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
		assert.Equal(t, "Your card was declined.", decodeEnvelope(t, rec).Message)
	})

	t.Run("a charge without a booking maps to 502", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.quoteReady(t)

		f.cards.EXPECT().ConfirmCardPayment(gomock.Any(), "pi_1_secret_x", gomock.Any()).
			Return("pi_1", nil)
		f.bookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewBackendError(500, "Error creating booking"))

		c, rec := f.request(http.MethodPost, "/api/v1/bookings/h1", submitBody)
		c.SetParamNames("hotelID")
		c.SetParamValues("h1")

		require.NoError(t, f.handler.SubmitBooking(c))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Contains(t, env.Message, "pi_1", "the message names the charged intent")
	})

	t.Run("missing card fields answer 400 with details", func(t *testing.T) {
		f := newHandlerFixture(t)

		c, rec := f.request(http.MethodPost, "/api/v1/bookings/h1", `{"card":{"expMonth":13}}`)
		c.SetParamNames("hotelID")
		c.SetParamValues("h1")

		require.NoError(t, f.handler.SubmitBooking(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Contains(t, env.Details, "card.number")
		assert.Contains(t, env.Details, "card.expMonth")
	})
}

// TestHealth tests the health endpoint.
func TestHealth(t *testing.T) {
	f := newHandlerFixture(t)

	c, rec := f.request(http.MethodGet, "/health", "")

	require.NoError(t, f.handler.Health(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var health response.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
}
