// Package http provides the HTTP handler layer for the trip planner API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"regexp"
	"strings"

	"github.com/trip-planner/trip-offer-aggregation-service/internal/domain"
)

// SearchOffersRequest represents the request body for an offer search.
type SearchOffersRequest struct {
	// DestinationID is the destination catalog identifier (e.g., "paris")
	DestinationID string `json:"destination_id"`

	// DurationDays is the trip length in days (1-31)
	DurationDays int `json:"duration_days"`

	// Month is the travel month in YYYY-MM format
	Month string `json:"month"`
}

// SaveTripRequest represents the request body for saving a trip.
type SaveTripRequest struct {
	// Destination is the destination display name
	Destination string `json:"destination"`

	// DestinationID is the destination catalog identifier
	DestinationID string `json:"destinationId"`

	// Country is the destination country name
	Country string `json:"country,omitempty"`

	// Airport is the IATA code of the destination airport
	Airport string `json:"airport,omitempty"`

	// Duration is the trip length in days
	Duration int `json:"duration"`

	// Month is the travel month in YYYY-MM format
	Month string `json:"month"`

	// Flight is the chosen offer to save with the trip
	Flight domain.Offer `json:"flight"`
}

// TextSearchRequest represents the request body for free-text trip search.
type TextSearchRequest struct {
	// Query is the free-text travel description
	Query string `json:"query"`
}

// Validation regex patterns.
var (
	monthPattern   = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	airportPattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
func (r *SearchOffersRequest) Validate() error {
	errs := &ValidationErrors{}

	r.DestinationID = strings.ToLower(strings.TrimSpace(r.DestinationID))
	if r.DestinationID == "" {
		errs.Add("destination_id", "destination_id is required")
	} else if _, ok := domain.FindDestination(r.DestinationID); !ok {
		errs.Add("destination_id", "destination_id must be a known destination")
	}

	if r.DurationDays < 1 {
		errs.Add("duration_days", "duration_days must be at least 1")
	} else if r.DurationDays > domain.MaxTripDurationDays {
		errs.Add("duration_days", "duration_days cannot exceed 31")
	}

	if r.Month == "" {
		errs.Add("month", "month is required")
	} else if !monthPattern.MatchString(r.Month) {
		errs.Add("month", "month must be in YYYY-MM format")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the save-trip request and returns any validation errors.
func (r *SaveTripRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.Destination) == "" {
		errs.Add("destination", "destination is required")
	}

	r.DestinationID = strings.ToLower(strings.TrimSpace(r.DestinationID))
	if r.DestinationID == "" {
		errs.Add("destinationId", "destinationId is required")
	}

	if r.Duration < 1 {
		errs.Add("duration", "duration must be at least 1")
	}

	if r.Month != "" && !monthPattern.MatchString(r.Month) {
		errs.Add("month", "month must be in YYYY-MM format")
	}

	if r.Airport != "" {
		airport := strings.ToUpper(r.Airport)
		if !airportPattern.MatchString(airport) {
			errs.Add("airport", "airport must be a valid 3-letter IATA airport code")
		} else {
			r.Airport = airport
		}
	}

	if r.Flight.ID == "" {
		errs.Add("flight.id", "flight.id is required")
	}
	if r.Flight.Price < 0 {
		errs.Add("flight.price", "flight.price must be a non-negative number")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the text-search request.
func (r *TextSearchRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.Query) == "" {
		errs.Add("query", "query is required")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
