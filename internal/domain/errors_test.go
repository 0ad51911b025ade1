package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBackendError tests message carriage and unwrapping.
func TestBackendError(t *testing.T) {
	t.Run("carries backend message verbatim", func(t *testing.T) {
		err := NewBackendError(400, "Hotel not found")
		assert.Equal(t, "Hotel not found", err.Error())
	})

	t.Run("falls back to status when message empty", func(t *testing.T) {
		err := NewBackendError(502, "")
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("unwraps through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("load hotel: %w", NewBackendError(404, "missing"))
		be, ok := AsBackendError(wrapped)
		require.True(t, ok)
		assert.Equal(t, 404, be.StatusCode)
		assert.Equal(t, "missing", be.Message)
	})

	t.Run("not a backend error", func(t *testing.T) {
		_, ok := AsBackendError(errors.New("plain"))
		assert.False(t, ok)
	})
}

// TestCardDeclinedError tests error formatting.
func TestCardDeclinedError(t *testing.T) {
	err := &CardDeclinedError{Code: "insufficient_funds", Message: "Your card has insufficient funds."}
	assert.Contains(t, err.Error(), "insufficient_funds")
	assert.Contains(t, err.Error(), "insufficient funds")

	noCode := &CardDeclinedError{Message: "declined"}
	assert.Equal(t, "card declined: declined", noCode.Error())
}

// TestReconciliationError tests that the reconciliation gap carries the
// intent and attempt identity and unwraps to the creation failure.
func TestReconciliationError(t *testing.T) {
	cause := NewBackendError(500, "database unavailable")
	err := &ReconciliationError{
		PaymentIntentID: "pi_123",
		AttemptID:       "attempt-7",
		Err:             cause,
	}

	assert.Contains(t, err.Error(), "pi_123")
	assert.Contains(t, err.Error(), "attempt-7")
	assert.ErrorIs(t, err, cause)

	be, ok := AsBackendError(err)
	require.True(t, ok)
	assert.Equal(t, 500, be.StatusCode)
}

// TestValidationErrors tests accumulation behavior.
func TestValidationErrors(t *testing.T) {
	errs := &ValidationErrors{}
	assert.False(t, errs.HasErrors())
	assert.NoError(t, errs.OrNil())

	errs.Add("name", "name cannot be blank")
	errs.Add("city", "city cannot be blank")

	require.True(t, errs.HasErrors())
	require.Error(t, errs.OrNil())
	assert.Equal(t, "name: name cannot be blank", errs.Error())
	assert.Equal(t, map[string]string{
		"name": "name cannot be blank",
		"city": "city cannot be blank",
	}, errs.ToMap())
}
