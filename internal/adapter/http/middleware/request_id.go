// Package middleware provides the HTTP middleware stack for the trip planner
// API: request-ID correlation, structured request logging, and panic
// recovery.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader is the correlation header shared with clients.
	RequestIDHeader = "X-Request-ID"
	// requestIDKey is the echo context key holding the request ID.
	requestIDKey = "request_id"
)

// RequestID returns middleware that tags every request with a correlation ID.
// An incoming X-Request-ID header is honored so a trip-planner front-end can
// trace a search across its own logs and ours; otherwise a UUID is minted.
// The ID lands in the echo context and is echoed back in the response header.
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

// GetRequestID retrieves the request ID from the echo context.
// Returns an empty string if no request ID is set.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok {
		return id
	}
	return ""
}
