package domain

import "context"

//go:generate mockgen -source=ports.go -destination=ports_mock.go -package=domain

// OfferSource fetches raw flight offers for a single date window from a
// remote search backend. A failed fetch affects only that window.
type OfferSource interface {
	// FetchOffers returns the raw offers for one origin/destination/window
	// query, or an error when the window could not be fetched.
	FetchOffers(ctx context.Context, origin, destination string, window DateWindow) ([]RawOffer, error)
}

// TripStore persists saved trips. Implementations are remote-collection
// backed or local-blob backed; a policy layer selects between them.
type TripStore interface {
	// List returns all saved trips.
	List(ctx context.Context) ([]SavedTrip, error)

	// Save persists a new trip, assigning its ID and save timestamp, and
	// returns the completed record.
	Save(ctx context.Context, trip NewTrip) (*SavedTrip, error)

	// Delete removes the trip with the given ID and reports whether a
	// removal occurred.
	Delete(ctx context.Context, tripID string) (bool, error)
}

// TripQuery is the structured trip parameters extracted from a free-text
// travel description.
type TripQuery struct {
	// DestinationID is the destination catalog identifier
	DestinationID string `json:"destination"`

	// DurationDays is the trip length in days
	DurationDays int `json:"duration"`

	// Month is the travel month in YYYY-MM format
	Month string `json:"month"`
}

// TripQueryParser turns a free-text travel description into structured trip
// parameters. Returns ErrFeatureUnavailable when the backing service does
// not exist yet.
type TripQueryParser interface {
	Parse(ctx context.Context, query string) (*TripQuery, error)
}
