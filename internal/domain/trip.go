package domain

import "time"

// SavedTrip is a user-saved trip: a chosen offer together with the trip
// context it was found under. Trips are immutable after creation and are
// owned by the persistence store, outliving a single session.
type SavedTrip struct {
	// ID uniquely identifies the saved trip
	ID string `json:"id"`

	// Destination is the destination display name
	Destination string `json:"destination"`

	// DestinationID is the destination catalog identifier
	DestinationID string `json:"destinationId"`

	// Country is the destination country name
	Country string `json:"country"`

	// Airport is the IATA code of the destination airport
	Airport string `json:"airport"`

	// Duration is the trip length in days
	Duration int `json:"duration"`

	// Month is the travel month in YYYY-MM format
	Month string `json:"month"`

	// Flight is the chosen canonical offer
	Flight Offer `json:"flight"`

	// SavedAt is the save timestamp
	SavedAt time.Time `json:"savedAt"`
}

// NewTrip is the user-supplied part of a trip: a SavedTrip before the store
// assigns its ID and save timestamp.
type NewTrip struct {
	Destination   string `json:"destination"`
	DestinationID string `json:"destinationId"`
	Country       string `json:"country"`
	Airport       string `json:"airport"`
	Duration      int    `json:"duration"`
	Month         string `json:"month"`
	Flight        Offer  `json:"flight"`
}
