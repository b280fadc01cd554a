// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"testing"
	"time"

	"github.com/trip-planner/trip-offer-aggregation-service/internal/domain"
)

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// IntPtr returns a pointer to an int.
func IntPtr(i int) *int {
	return &i
}

// RawOffers builds n raw offers for the given route with ascending prices
// starting at base. Airlines rotate through the airline table.
func RawOffers(origin, destination string, n int, base int64) []domain.RawOffer {
	offers := make([]domain.RawOffer, n)
	for i := 0; i < n; i++ {
		offers[i] = domain.RawOffer{
			Origin:      origin,
			Destination: destination,
			Airline:     domain.Airlines[i%len(domain.Airlines)].Name,
			Price:       base + int64(i)*50000,
		}
	}
	return offers
}
