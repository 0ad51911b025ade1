// Package response provides the standardized response builders for the
// storefront gateway. Every endpoint answers with the same envelope shape so
// clients can branch on success before looking at the payload.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotel-search/hotel-booking-storefront/internal/domain"
)

// Envelope is the gateway's uniform response shape. It mirrors the backend's
// contract: success flag, human-readable message, payload, and pagination
// metadata for list endpoints.
type Envelope struct {
	// Success indicates whether the request was handled successfully
	Success bool `json:"success"`

	// Message carries a human-readable note, mostly on failures
	Message string `json:"message,omitempty"`

	// Data contains the response payload for successful responses
	Data interface{} `json:"data,omitempty"`

	// Pagination is present on paginated list responses
	Pagination *domain.Pagination `json:"pagination,omitempty"`

	// Details holds field-level validation errors
	Details map[string]string `json:"details,omitempty"`
}

// Messages used in gateway responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgNotLoggedIn        = "Not logged in"
	MsgInternalError      = "An unexpected error occurred"
)

// OK writes a 200 OK success envelope.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, &Envelope{
		Success: true,
		Data:    data,
	})
}

// Paginated writes a 200 OK success envelope with pagination metadata.
func Paginated(c echo.Context, data interface{}, pagination *domain.Pagination) error {
	return c.JSON(http.StatusOK, &Envelope{
		Success:    true,
		Data:       data,
		Pagination: pagination,
	})
}

// Created writes a 201 Created success envelope.
func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, &Envelope{
		Success: true,
		Data:    data,
	})
}

// Message writes a success envelope with a note and no payload.
func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, &Envelope{
		Success: true,
		Message: message,
	})
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{Status: "ok"})
}
