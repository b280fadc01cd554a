// Package http provides the HTTP handler layer for the trip planner API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/trip-planner/trip-offer-aggregation-service/internal/adapter/http/response"
	"github.com/trip-planner/trip-offer-aggregation-service/internal/domain"
	"github.com/trip-planner/trip-offer-aggregation-service/internal/usecase"
)

// TripHandler handles HTTP requests for trip planning endpoints.
type TripHandler struct {
	offers usecase.OfferSearchUseCase
	trips  usecase.SavedTripsUseCase
	text   usecase.TextSearchUseCase
}

// NewTripHandler creates a new TripHandler with the given use cases.
func NewTripHandler(offers usecase.OfferSearchUseCase, trips usecase.SavedTripsUseCase, text usecase.TextSearchUseCase) *TripHandler {
	return &TripHandler{
		offers: offers,
		trips:  trips,
		text:   text,
	}
}

// SearchOffers handles POST /api/v1/offers/search
//
// @Summary Search flight offers
// @Description Search aggregated flight offers for a destination, trip length, and travel month
// @Tags offers
// @Accept json
// @Produce json
// @Param request body SearchOffersRequest true "Search criteria"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/offers/search [post]
func (h *TripHandler) SearchOffers(c echo.Context) error {
	var req SearchOffersRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.offers.Search(c.Request().Context(), ToDomainCriteria(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToSearchResponseDTO(result))
}

// ListTrips handles GET /api/v1/trips
//
// @Summary List saved trips
// @Description List all saved trips, newest first
// @Tags trips
// @Produce json
// @Success 200 {object} TripListDTO
// @Router /api/v1/trips [get]
func (h *TripHandler) ListTrips(c echo.Context) error {
	trips, err := h.trips.List(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToTripListDTO(trips))
}

// SaveTrip handles POST /api/v1/trips
//
// @Summary Save a trip
// @Description Save a chosen offer together with its trip context
// @Tags trips
// @Accept json
// @Produce json
// @Param request body SaveTripRequest true "Trip to save"
// @Success 201 {object} domain.SavedTrip
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/trips [post]
func (h *TripHandler) SaveTrip(c echo.Context) error {
	var req SaveTripRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	saved, err := h.trips.Save(c.Request().Context(), ToNewTrip(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, saved)
}

// DeleteTrip handles DELETE /api/v1/trips/:id
//
// @Summary Delete a saved trip
// @Description Delete a saved trip by ID; deleting an unknown ID is a no-op
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} DeleteTripDTO
// @Router /api/v1/trips/{id} [delete]
func (h *TripHandler) DeleteTrip(c echo.Context) error {
	tripID := c.Param("id")
	if tripID == "" {
		return response.BadRequest(c, "trip id is required")
	}

	deleted, err := h.trips.Delete(c.Request().Context(), tripID)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &DeleteTripDTO{ID: tripID, Deleted: deleted})
}

// ParseTextSearch handles POST /api/v1/search
//
// @Summary Parse a free-text trip query
// @Description Extract structured trip parameters from a free-text travel description
// @Tags search
// @Accept json
// @Produce json
// @Param request body TextSearchRequest true "Free-text query"
// @Success 200 {object} domain.TripQuery
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 501 {object} response.ErrorDetail "Feature unavailable"
// @Router /api/v1/search [post]
func (h *TripHandler) ParseTextSearch(c echo.Context) error {
	var req TextSearchRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	query, err := h.text.Parse(c.Request().Context(), req.Query)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, query)
}

// ListDestinations handles GET /api/v1/destinations
//
// @Summary List destinations
// @Description List the destination catalog
// @Tags destinations
// @Produce json
// @Success 200 {object} DestinationListDTO
// @Router /api/v1/destinations [get]
func (h *TripHandler) ListDestinations(c echo.Context) error {
	return response.OK(c, &DestinationListDTO{Destinations: domain.Destinations})
}

// Health handles GET /health
// Simple health check endpoint.
func (h *TripHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *TripHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *TripHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrFeatureUnavailable) {
		return response.FeatureUnavailable(c)
	}

	if errors.Is(err, domain.ErrInvalidRequest) || errors.Is(err, domain.ErrUnknownDestination) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	return response.InternalServerError(c)
}
