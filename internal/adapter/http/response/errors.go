// Package response provides the standardized response builders for the
// storefront gateway.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// failure writes a failed envelope with the given status and message.
func failure(c echo.Context, status int, message string) error {
	return c.JSON(status, &Envelope{
		Success: false,
		Message: message,
	})
}

// BadRequest writes a 400 Bad Request failure with the given message.
func BadRequest(c echo.Context, message string) error {
	return failure(c, http.StatusBadRequest, message)
}

// InvalidRequestBody writes a 400 Bad Request failure for malformed bodies.
func InvalidRequestBody(c echo.Context) error {
	return failure(c, http.StatusBadRequest, MsgInvalidRequestBody)
}

// ValidationError writes a 400 Bad Request failure with field-level details.
func ValidationError(c echo.Context, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, &Envelope{
		Success: false,
		Message: MsgValidationFailed,
		Details: details,
	})
}

// Unauthorized writes a 401 Unauthorized failure.
func Unauthorized(c echo.Context) error {
	return failure(c, http.StatusUnauthorized, MsgNotLoggedIn)
}

// NotFound writes a 404 Not Found failure with the given message.
func NotFound(c echo.Context, message string) error {
	return failure(c, http.StatusNotFound, message)
}

// PaymentRequired writes a 402 Payment Required failure, used when the card
// charge was declined.
func PaymentRequired(c echo.Context, message string) error {
	return failure(c, http.StatusPaymentRequired, message)
}

// Conflict writes a 409 Conflict failure, used when booking state no longer
// matches the request (for example a stale payment quote).
func Conflict(c echo.Context, message string) error {
	return failure(c, http.StatusConflict, message)
}

// BadGateway writes a 502 Bad Gateway failure carrying the upstream's message.
func BadGateway(c echo.Context, message string) error {
	return failure(c, http.StatusBadGateway, message)
}

// GatewayTimeout writes a 504 Gateway Timeout failure.
func GatewayTimeout(c echo.Context) error {
	return failure(c, http.StatusGatewayTimeout, "Request timed out")
}

// InternalServerError writes a 500 Internal Server Error failure.
func InternalServerError(c echo.Context) error {
	return failure(c, http.StatusInternalServerError, MsgInternalError)
}
