package domain

import (
	"fmt"
	"regexp"
)

// SearchCriteria defines the parameters for a trip offer search.
type SearchCriteria struct {
	// DestinationID is the destination catalog identifier (e.g., "paris")
	DestinationID string `json:"destination_id"`

	// DurationDays is the trip length in days
	DurationDays int `json:"duration_days"`

	// Month is the target travel month in YYYY-MM format
	Month string `json:"month"`
}

// monthRegex matches travel months in YYYY-MM format.
var monthRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// MaxTripDurationDays bounds the accepted trip length.
const MaxTripDurationDays = 31

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchCriteria) Validate() error {
	if s.DestinationID == "" {
		return fmt.Errorf("%w: destination_id is required", ErrInvalidRequest)
	}
	if _, ok := FindDestination(s.DestinationID); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDestination, s.DestinationID)
	}

	if s.DurationDays < 1 {
		return fmt.Errorf("%w: duration_days must be at least 1", ErrInvalidRequest)
	}
	if s.DurationDays > MaxTripDurationDays {
		return fmt.Errorf("%w: duration_days cannot exceed %d", ErrInvalidRequest, MaxTripDurationDays)
	}

	if s.Month == "" {
		return fmt.Errorf("%w: month is required", ErrInvalidRequest)
	}
	if !monthRegex.MatchString(s.Month) {
		return fmt.Errorf("%w: month must be in YYYY-MM format, got %q", ErrInvalidRequest, s.Month)
	}

	return nil
}

// Destination resolves the criteria's destination from the catalog.
// Validate must have passed first.
func (s *SearchCriteria) Destination() Destination {
	d, _ := FindDestination(s.DestinationID)
	return d
}
