// Package http provides the HTTP handler layer for the trip planner API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all trip planner API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *TripHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	api.GET("/destinations", h.ListDestinations)
	api.POST("/search", h.ParseTextSearch)

	offers := api.Group("/offers")
	offers.POST("/search", h.SearchOffers)

	trips := api.Group("/trips")
	trips.GET("", h.ListTrips)
	trips.POST("", h.SaveTrip)
	trips.DELETE("/:id", h.DeleteTrip)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *TripHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	// API v1 group with middleware
	api := e.Group("/api/v1", middleware...)

	api.GET("/destinations", h.ListDestinations)
	api.POST("/search", h.ParseTextSearch)

	offers := api.Group("/offers")
	offers.POST("/search", h.SearchOffers)

	trips := api.Group("/trips")
	trips.GET("", h.ListTrips)
	trips.POST("", h.SaveTrip)
	trips.DELETE("/:id", h.DeleteTrip)
}
