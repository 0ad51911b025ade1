package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/hotel-search/hotel-booking-storefront/internal/infrastructure/logger"
)

// Setup registers the gateway middleware in order: request ID first so every
// later log line can carry it, request logging second, panic recovery last so
// it wraps the handlers themselves.
func Setup(e *echo.Echo, log *logger.Logger) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
}

// Chain returns the same middleware as a slice for use with route groups.
func Chain(log *logger.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		Recover(log),
	}
}
