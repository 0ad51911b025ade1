package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/hotel-search/hotel-booking-storefront/internal/domain"
	"github.com/hotel-search/hotel-booking-storefront/internal/infrastructure/logger"
)

// BookingState is the phase a single booking attempt is in.
type BookingState int

// Booking attempt states.
const (
	// BookingLoading: hotel, user and (once the night-count is known) the
	// payment intent are being fetched.
	BookingLoading BookingState = iota

	// BookingHotelMissing: the hotel lookup failed; terminal for this attempt.
	BookingHotelMissing

	// BookingUserMissing: the current-user lookup failed. The booking route
	// should be unreachable for anonymous users, but the flow defends anyway.
	BookingUserMissing

	// BookingIntentFailed: payment-intent creation was rejected; the message
	// is surfaced verbatim.
	BookingIntentFailed

	// BookingReady: all datasets available; the card form may render.
	BookingReady

	// BookingSubmitting: card confirmation in progress.
	BookingSubmitting

	// BookingConfirmed: the card charge succeeded and the final booking was
	// created.
	BookingConfirmed

	// BookingFailed: the booking-creation call failed after the card charge
	// succeeded (reconciliation gap).
	BookingFailed
)

// String returns a readable state name.
func (s BookingState) String() string {
	switch s {
	case BookingLoading:
		return "loading"
	case BookingHotelMissing:
		return "hotel_missing"
	case BookingUserMissing:
		return "user_missing"
	case BookingIntentFailed:
		return "intent_failed"
	case BookingReady:
		return "ready"
	case BookingSubmitting:
		return "submitting"
	case BookingConfirmed:
		return "confirmed"
	case BookingFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// BookingView is a point-in-time snapshot of a booking attempt.
type BookingView struct {
	State   BookingState
	Hotel   *domain.HotelSummary
	User    *domain.User
	Intent  *domain.PaymentIntentHandle
	Nights  int
	Message string
	Record  *domain.BookingRecord
}

// BookingDeps bundles the collaborators a booking attempt needs.
type BookingDeps struct {
	Hotels   domain.HotelReader
	Sessions domain.SessionBackend
	Bookings domain.BookingBackend
	Cards    domain.CardConfirmer
}

// BookingFlow sequences one booking attempt for a single hotel and date
// range: hotel lookup, user lookup and payment-intent creation run up front
// (hotel and user concurrently; the intent sequenced only behind the
// night-count), then card confirmation and the final booking submission.
type BookingFlow struct {
	deps   BookingDeps
	drafts *DraftStore
	log    *logger.Logger

	hotelID   string
	attemptID string

	mu      sync.Mutex
	state   BookingState
	hotel   *domain.HotelSummary
	user    *domain.User
	intent  *domain.PaymentIntentHandle
	nights  int
	message string
	record  *domain.BookingRecord
}

// NewBookingFlow creates a flow for the given hotel. Call Start to load it.
func NewBookingFlow(deps BookingDeps, drafts *DraftStore, hotelID string, log *logger.Logger) *BookingFlow {
	return &BookingFlow{
		deps:      deps,
		drafts:    drafts,
		hotelID:   hotelID,
		attemptID: uuid.New().String(),
		log:       log.WithComponent("booking").WithHotel(hotelID),
		state:     BookingLoading,
	}
}

// Start loads the attempt: hotel and user concurrently, and the payment
// intent as soon as the night-count is known (it comes from the draft store,
// so it is available immediately and does not wait on the other lookups).
// A zero night-count never triggers an intent request.
func (f *BookingFlow) Start(ctx context.Context) {
	criteria := f.drafts.Snapshot()
	nights := criteria.Nights()

	f.mu.Lock()
	f.state = BookingLoading
	f.nights = nights
	f.mu.Unlock()

	var (
		wg        sync.WaitGroup
		hotel     *domain.HotelSummary
		hotelErr  error
		user      *domain.User
		userErr   error
		intent    *domain.PaymentIntentHandle
		intentErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		hotel, hotelErr = f.deps.Hotels.Hotel(ctx, f.hotelID)
	}()
	go func() {
		defer wg.Done()
		user, userErr = f.deps.Sessions.CurrentUser(ctx)
	}()

	if nights > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			intent, intentErr = f.createIntent(ctx, nights)
		}()
	}
	wg.Wait()

	f.mu.Lock()
	defer f.mu.Unlock()

	// Successful lookups are kept even when another step failed: a later
	// SyncDates can move an IntentFailed attempt back to Ready, and the
	// submission needs the hotel and guest identity.
	if hotelErr == nil {
		f.hotel = hotel
	}
	if userErr == nil {
		f.user = user
	}

	switch {
	case hotelErr != nil:
		f.state = BookingHotelMissing
		f.message = failureMessage(hotelErr)
		f.log.Warn().Err(hotelErr).Msg("Hotel lookup failed")
	case userErr != nil:
		f.state = BookingUserMissing
		f.message = failureMessage(userErr)
		f.log.Warn().Err(userErr).Msg("User lookup failed")
	case nights > 0 && intentErr != nil:
		f.state = BookingIntentFailed
		f.message = failureMessage(intentErr)
		f.log.Warn().Err(intentErr).Msg("Payment intent creation failed")
	default:
		f.intent = intent
		f.state = BookingReady
	}
}

// SyncDates re-derives the night-count from the draft store. If a payment
// intent was already created for a different night-count, a fresh intent is
// requested: one intent per night-count, and a booking is never submitted
// with an intent computed for a different duration.
func (f *BookingFlow) SyncDates(ctx context.Context) error {
	nights := f.drafts.Snapshot().Nights()

	f.mu.Lock()
	if f.state != BookingReady && f.state != BookingIntentFailed {
		f.mu.Unlock()
		return nil
	}
	if nights == f.nights && (f.intent == nil || f.intent.Nights == nights) {
		f.mu.Unlock()
		return nil
	}
	f.nights = nights
	if nights == 0 {
		// Same-day stay: drop the now-invalid intent, attempt no charge.
		f.intent = nil
		f.state = BookingReady
		f.mu.Unlock()
		return nil
	}
	f.mu.Unlock()

	intent, err := f.createIntent(ctx, nights)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.intent = nil
		f.state = BookingIntentFailed
		f.message = failureMessage(err)
		return err
	}
	f.intent = intent
	f.state = BookingReady
	f.message = ""
	return nil
}

// Submit confirms the card charge with the payment provider and, only on
// success, creates the booking with the confirmed intent ID (which may differ
// from the requested one if the provider rotated it).
func (f *BookingFlow) Submit(ctx context.Context, card domain.CardDetails) (*domain.BookingRecord, error) {
	criteria := f.drafts.Snapshot()

	f.mu.Lock()
	if f.state != BookingReady {
		state := f.state
		f.mu.Unlock()
		return nil, fmt.Errorf("%w: booking attempt is %s, not ready", domain.ErrInvalidRequest, state)
	}
	if f.intent == nil {
		f.mu.Unlock()
		return nil, domain.ErrNoNights
	}
	if f.intent.Nights != criteria.Nights() {
		f.mu.Unlock()
		return nil, domain.ErrStaleIntent
	}
	intent := *f.intent
	user := *f.user
	f.state = BookingSubmitting
	f.mu.Unlock()

	confirmedID, err := f.deps.Cards.ConfirmCardPayment(ctx, intent.ClientSecret, card)
	if err != nil {
		// Declines leave the guest on the form to retry with corrected
		// details; booking creation is never attempted.
		f.mu.Lock()
		f.state = BookingReady
		f.message = failureMessage(err)
		f.mu.Unlock()
		return nil, err
	}

	f.mu.Lock()
	f.state = BookingConfirmed
	f.mu.Unlock()

	form := domain.BookingForm{
		HotelID:         f.hotelID,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Email:           user.Email,
		CheckIn:         criteria.CheckIn,
		CheckOut:        criteria.CheckOut,
		AdultCount:      criteria.AdultCount,
		ChildCount:      criteria.ChildCount,
		TotalStayCost:   intent.TotalStayCost,
		PaymentIntentID: confirmedID,
	}

	record, err := f.deps.Bookings.CreateBooking(ctx, form)
	if err != nil {
		recErr := &domain.ReconciliationError{
			PaymentIntentID: confirmedID,
			AttemptID:       f.attemptID,
			Err:             err,
		}
		f.log.Error().
			Str("attempt_id", f.attemptID).
			Str("payment_intent_id", confirmedID).
			Err(err).
			Msg("Card captured but booking creation failed; manual reconciliation required")

		f.mu.Lock()
		f.state = BookingFailed
		f.message = recErr.Error()
		f.mu.Unlock()
		return nil, recErr
	}

	f.mu.Lock()
	f.record = record
	f.mu.Unlock()
	return record, nil
}

// Snapshot returns the attempt's current state.
func (f *BookingFlow) Snapshot() BookingView {
	f.mu.Lock()
	defer f.mu.Unlock()
	return BookingView{
		State:   f.state,
		Hotel:   f.hotel,
		User:    f.user,
		Intent:  f.intent,
		Nights:  f.nights,
		Message: f.message,
		Record:  f.record,
	}
}

// createIntent requests a payment intent for the given night-count and tags
// the handle with it.
func (f *BookingFlow) createIntent(ctx context.Context, nights int) (*domain.PaymentIntentHandle, error) {
	if nights <= 0 {
		return nil, domain.ErrNoNights
	}
	intent, err := f.deps.Bookings.CreatePaymentIntent(ctx, f.hotelID, nights)
	if err != nil {
		return nil, err
	}
	intent.Nights = nights
	return intent, nil
}

// failureMessage extracts the message to surface: backend messages verbatim,
// anything else via Error().
func failureMessage(err error) string {
	if be, ok := domain.AsBackendError(err); ok {
		return be.Message
	}
	var declined *domain.CardDeclinedError
	if errors.As(err, &declined) {
		return declined.Message
	}
	return err.Error()
}
