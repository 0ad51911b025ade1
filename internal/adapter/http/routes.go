// Package http provides the HTTP handler layer for the storefront gateway.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the storefront gateway routes.
func RegisterRoutes(e *echo.Echo, h *StorefrontHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1")

	hotels := api.Group("/hotels")
	hotels.GET("/search", h.SearchHotels)
	hotels.GET("/draft", h.DraftAvailability)

	session := api.Group("/session")
	session.GET("", h.CurrentSession)
	session.POST("/login", h.Login)
	session.POST("/register", h.Register)
	session.POST("/logout", h.Logout)

	bookings := api.Group("/bookings")
	bookings.POST("/:hotelID/quote", h.QuoteBooking)
	bookings.POST("/:hotelID", h.SubmitBooking)
}

// RegisterRoutesWithMiddleware registers routes with group-scoped middleware
// instead of instance-wide middleware.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *StorefrontHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	hotels := api.Group("/hotels")
	hotels.GET("/search", h.SearchHotels)
	hotels.GET("/draft", h.DraftAvailability)

	session := api.Group("/session")
	session.GET("", h.CurrentSession)
	session.POST("/login", h.Login)
	session.POST("/register", h.Register)
	session.POST("/logout", h.Logout)

	bookings := api.Group("/bookings")
	bookings.POST("/:hotelID/quote", h.QuoteBooking)
	bookings.POST("/:hotelID", h.SubmitBooking)
}
