// Package domain contains the core business entities and rules for the trip
// offer aggregation system. These entities are backend-agnostic and form the
// foundation upon which all other components are built.
package domain

import "fmt"

// RawOffer is a flight offer record as returned by the remote search backend.
// Only the airline, price, and destination are guaranteed; every other field
// may be absent and is synthesized during normalization.
type RawOffer struct {
	// Origin is the IATA code of the departure airport, if reported
	Origin string `json:"origin,omitempty"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// DepartureDate is the departure date in YYYY-MM-DD format, if reported
	DepartureDate string `json:"departure_date,omitempty"`

	// ReturnDate is the return date in YYYY-MM-DD format, if reported
	ReturnDate string `json:"return_date,omitempty"`

	// Airline is the full airline name (e.g., "대한항공")
	Airline string `json:"airline"`

	// Price is the round-trip price in currency minor-unit-free form
	Price int64 `json:"price"`
}

// Offer is the fully-populated canonical flight offer used throughout the
// pipeline and by consumers. Every field is always set: normalization is a
// total function from possibly-partial RawOffer input to this shape.
type Offer struct {
	// ID is unique within the result set that produced the offer
	ID string `json:"id"`

	// Airline is the full airline name
	Airline string `json:"airline"`

	// AirlineCode is the IATA airline code (e.g., "KE")
	AirlineCode string `json:"airlineCode"`

	// DepartureTime is the departure time in HH:MM 24-hour format
	DepartureTime string `json:"departureTime"`

	// ArrivalTime is the arrival time in HH:MM 24-hour format
	ArrivalTime string `json:"arrivalTime"`

	// Duration is a human-readable flight duration label (e.g., "8h 30m")
	Duration string `json:"duration"`

	// Price is the round-trip price; never negative
	Price int64 `json:"price"`

	// Stops is the number of stops (0 = nonstop); never negative
	Stops int `json:"stops"`

	// Aircraft is the aircraft model name
	Aircraft string `json:"aircraft"`

	// DepartureDate is the departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the return date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate"`

	// Savings is the amount saved versus the reference price; clamped to 0
	Savings int64 `json:"savings"`
}

// AircraftModels is the fixed rotation of aircraft used when the remote
// source does not report one.
var AircraftModels = [4]string{"Boeing 777", "Airbus A350", "Boeing 787", "Airbus A380"}

// FormatDurationLabel renders a flight duration as "Xh Ym".
// Whole hours render as "Xh" and sub-hour durations as "Ym".
func FormatDurationLabel(totalMinutes int) string {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// FormatClock renders an hour/minute pair as zero-padded HH:MM.
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
