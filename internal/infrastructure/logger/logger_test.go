package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNewWithOutput tests JSON output with service context.
func TestNewWithOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "hotel-storefront"}, &buf)

	log.Info().Str("component", "search").Msg("query submitted")

	entry := logLine(t, &buf)
	assert.Equal(t, "hotel-storefront", entry["service"])
	assert.Equal(t, "search", entry["component"])
	assert.Equal(t, "query submitted", entry["message"])
	assert.Equal(t, "info", entry["level"])
}

// TestLevelFiltering tests that entries below the configured level are dropped.
func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "warn", Format: "json", ServiceName: "test"}, &buf)

	log.Info().Msg("dropped")
	assert.Empty(t, buf.Bytes())

	log.Warn().Msg("kept")
	assert.NotEmpty(t, buf.Bytes())
}

// TestInvalidLevelFallsBack tests the info fallback for unknown levels.
func TestInvalidLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "nonsense", Format: "json", ServiceName: "test"}, &buf)

	log.Info().Msg("visible")
	assert.NotEmpty(t, buf.Bytes())
}

// TestContextHelpers tests the With* field helpers.
func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "debug", Format: "json", ServiceName: "test"}, &buf)

	log.WithComponent("booking").
		WithRequestID("req-1").
		WithHotel("hotel-9").
		Info().Msg("attempt started")

	entry := logLine(t, &buf)
	assert.Equal(t, "booking", entry["component"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "hotel-9", entry["hotel_id"])
}

// TestNop tests that the nop logger emits nothing.
func TestNop(t *testing.T) {
	log := Nop()
	// Must not panic and must be silent.
	log.Error().Msg("nothing")
}
