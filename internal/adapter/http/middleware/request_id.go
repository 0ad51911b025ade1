// Package middleware provides HTTP middleware for the storefront gateway's
// cross-cutting concerns.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader is the HTTP header carrying the request ID.
	RequestIDHeader = "X-Request-ID"

	// requestIDKey is the echo context key the request ID is stored under.
	requestIDKey = "request_id"
)

// RequestID returns middleware that propagates the incoming X-Request-ID
// header, or generates a fresh UUID when the client sent none. The ID is
// stored in the context and echoed back in the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Request().Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.New().String()
			}
			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(RequestIDHeader, reqID)
			return next(c)
		}
	}
}

// GetRequestID retrieves the request ID from the echo context, or "" when the
// RequestID middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok {
		return id
	}
	return ""
}
