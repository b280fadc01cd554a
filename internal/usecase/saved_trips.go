package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/trip-planner/trip-offer-aggregation-service/internal/domain"
)

// SavedTripsUseCase defines the saved-trip operations offered to the
// presentation layer. It is itself a domain.TripStore composed from two
// others: remote-first, local on "not implemented" or failure.
type SavedTripsUseCase interface {
	domain.TripStore
}

// savedTripsUseCase routes trip persistence to the remote collection when it
// is available and degrades to the local store otherwise. Remote
// unavailability is an expected condition, never surfaced to the caller.
type savedTripsUseCase struct {
	remote domain.TripStore
	local  domain.TripStore
	log    zerolog.Logger
}

// NewSavedTripsUseCase creates the remote-first saved-trip policy.
func NewSavedTripsUseCase(remote, local domain.TripStore, log zerolog.Logger) SavedTripsUseCase {
	return &savedTripsUseCase{
		remote: remote,
		local:  local,
		log:    log,
	}
}

// List returns all saved trips, falling back to the local store when the
// remote collection is missing or failing.
func (uc *savedTripsUseCase) List(ctx context.Context) ([]domain.SavedTrip, error) {
	trips, err := uc.remote.List(ctx)
	if err == nil {
		return trips, nil
	}
	uc.logFallback("list", err)

	trips, err = uc.local.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trips from local store: %w", err)
	}
	return trips, nil
}

// Save persists a new trip, assigning its ID and timestamp on whichever
// store accepts it.
func (uc *savedTripsUseCase) Save(ctx context.Context, trip domain.NewTrip) (*domain.SavedTrip, error) {
	saved, err := uc.remote.Save(ctx, trip)
	if err == nil {
		return saved, nil
	}
	uc.logFallback("save", err)

	saved, err = uc.local.Save(ctx, trip)
	if err != nil {
		return nil, fmt.Errorf("save trip to local store: %w", err)
	}
	return saved, nil
}

// Delete removes a trip by ID and reports whether a removal occurred.
// Deleting an unknown ID is a no-op, not an error.
func (uc *savedTripsUseCase) Delete(ctx context.Context, tripID string) (bool, error) {
	removed, err := uc.remote.Delete(ctx, tripID)
	if err == nil {
		return removed, nil
	}
	uc.logFallback("delete", err)

	removed, err = uc.local.Delete(ctx, tripID)
	if err != nil {
		return false, fmt.Errorf("delete trip from local store: %w", err)
	}
	return removed, nil
}

// logFallback records why the remote store was bypassed. A 404 means the
// backend is not rolled out yet and is only worth a debug line.
func (uc *savedTripsUseCase) logFallback(op string, err error) {
	if errors.Is(err, domain.ErrNotImplemented) {
		uc.log.Debug().Str("op", op).Msg("Saved-trip backend not implemented, using local store")
		return
	}
	uc.log.Warn().Str("op", op).Err(err).Msg("Saved-trip backend failed, using local store")
}

// Ensure the policy satisfies the store contract at compile time.
var _ domain.TripStore = (*savedTripsUseCase)(nil)
