package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the storefront flows.
var (
	// ErrInvalidRequest indicates locally-invalid input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotLoggedIn indicates a credentialed operation was attempted without
	// an authenticated session.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrStaleIntent indicates a booking submission was attempted with a
	// payment intent computed for a different night-count.
	ErrStaleIntent = errors.New("payment intent is stale for the selected dates")

	// ErrNoNights indicates a same-day check-in/check-out; no charge may be
	// attempted for a zero-night stay.
	ErrNoNights = errors.New("stay must be at least one night")
)

// BackendError is a request the backend rejected: either a success:false
// envelope or an unexpected HTTP status. The backend's message is carried
// verbatim so the UI can surface it unchanged.
type BackendError struct {
	// StatusCode is the HTTP status of the response (0 when unknown)
	StatusCode int

	// Message is the backend's message, verbatim
	Message string
}

// Error implements the error interface.
func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend rejected request (status %d)", e.StatusCode)
	}
	return e.Message
}

// NewBackendError creates a BackendError with the given status and message.
func NewBackendError(statusCode int, message string) *BackendError {
	return &BackendError{StatusCode: statusCode, Message: message}
}

// AsBackendError unwraps err into a BackendError if it is one.
func AsBackendError(err error) (*BackendError, bool) {
	var be *BackendError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// CardDeclinedError is a card confirmation the payment provider rejected.
// Booking creation must never be attempted after a decline; the guest stays on
// the form to retry with corrected card details.
type CardDeclinedError struct {
	// Code is the provider's machine-readable decline code
	Code string

	// Message is the provider's human-readable reason
	Message string
}

// Error implements the error interface.
func (e *CardDeclinedError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("card declined: %s", e.Message)
	}
	return fmt.Sprintf("card declined (%s): %s", e.Code, e.Message)
}

// ReconciliationError is the gap between a confirmed card charge and a failed
// booking-creation call: money may be captured without a booking record. It is
// surfaced distinctly from a generic request failure so callers can flag the
// attempt for manual follow-up.
type ReconciliationError struct {
	// PaymentIntentID is the confirmed (captured) intent with no booking
	PaymentIntentID string

	// AttemptID identifies the booking attempt for follow-up
	AttemptID string

	// Err is the booking-creation failure
	Err error
}

// Error implements the error interface.
func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("payment %s captured but booking creation failed (attempt %s): %v",
		e.PaymentIntentID, e.AttemptID, e.Err)
}

// Unwrap returns the underlying booking-creation failure.
func (e *ReconciliationError) Unwrap() error {
	return e.Err
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (v ValidationError) Error() string {
	return v.Field + ": " + v.Message
}

// NewValidationError creates a single field validation error.
func NewValidationError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}

// ValidationErrors accumulates field-level validation errors so the UI can
// render every violation at once instead of failing on the first.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Error()
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// OrNil returns the collection as an error, or nil when empty.
func (v *ValidationErrors) OrNil() error {
	if v.HasErrors() {
		return v
	}
	return nil
}

// ToMap converts validation errors to a map for API responses.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}
