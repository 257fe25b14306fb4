package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader is the HTTP header used to store the request correlation ID.
	// Many systems use X-Request-ID or X-Correlation-ID.
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the internal key used to store the ID in Echo context.
	RequestIDKey = "request_id"

	// Longer incoming ids are replaced so they cannot bloat every log line.
	maxRequestIDLength = 128
)

// RequestID returns an Echo middleware that ensures each request has a request ID.
//
// Behavior:
//   - If incoming request already has a reasonable X-Request-ID header: reuse it.
//   - If not: generate a new UUID.
//   - Store it in Echo context (c.Set) for internal access.
//   - Set it on response header so clients can see it too.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" || len(requestID) > maxRequestIDLength {
				requestID = uuid.New().String()
			}

			c.Set(RequestIDKey, requestID)
			c.Response().Header().Set(RequestIDHeader, requestID)

			return next(c)
		}
	}
}

// GetRequestID retrieves the request ID from Echo context.
//
// Returns empty string if not set.
func GetRequestID(c echo.Context) string {
	if requestID, ok := c.Get(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
