// Package usecase contains the business logic for trip offer search: window
// generation, per-window fetching, normalization, aggregation, and the
// synthetic fallback, plus the saved-trip persistence policy.
package usecase

import (
	"fmt"

	"github.com/trip-planner/trip-offer-aggregation-service/internal/domain"
)

// Derivation constants for fields the remote source omits. All are functions
// of the offer's sequence index so that normalization stays deterministic.
const (
	baseDepartureHour   = 8
	departureHourSpread = 12
	departureMinuteStep = 7
	baseFlightHours     = 8
	flightHourSpread    = 6
	arrivalMinuteOffset = 30
)

// NormalizeOffer maps a possibly-partial RawOffer into a fully-populated
// canonical Offer. index is the offer's position in the whole result set
// (continuous across windows); it seeds every synthesized field, so the
// function is pure: identical inputs always yield identical output.
//
// Price is the only field never synthesized; it passes through from the raw
// offer, clamped to zero to uphold the non-negative price invariant.
func NormalizeOffer(raw domain.RawOffer, index, durationDays int, window domain.DateWindow) domain.Offer {
	departureHour := baseDepartureHour + index%departureHourSpread
	departureMinute := (index * departureMinuteStep) % 60

	flightHours := baseFlightHours + index%flightHourSpread
	arrivalHour := (departureHour + flightHours) % 24
	arrivalMinute := (departureMinute + arrivalMinuteOffset) % 60

	stops := 0
	if index%3 == 0 {
		stops = 1
	}

	price := raw.Price
	if price < 0 {
		price = 0
	}

	// Savings assume the displayed price is a 20%-off reference price.
	savings := price*6/5 - price
	if savings < 0 {
		savings = 0
	}

	departureDate := raw.DepartureDate
	if departureDate == "" {
		departureDate = window.DepartureDate
	}
	returnDate := raw.ReturnDate
	if returnDate == "" {
		returnDate = window.ReturnDate
	}

	return domain.Offer{
		ID:            fmt.Sprintf("flight-%d", index+1),
		Airline:       raw.Airline,
		AirlineCode:   domain.LookupAirlineCode(raw.Airline),
		DepartureTime: domain.FormatClock(departureHour, departureMinute),
		ArrivalTime:   domain.FormatClock(arrivalHour, arrivalMinute),
		Duration:      domain.FormatDurationLabel(flightHours*60 + arrivalMinuteOffset),
		Price:         price,
		Stops:         stops,
		Aircraft:      domain.AircraftModels[index%len(domain.AircraftModels)],
		DepartureDate: departureDate,
		ReturnDate:    returnDate,
		Savings:       savings,
	}
}
