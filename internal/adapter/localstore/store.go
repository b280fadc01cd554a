// Package localstore persists saved trips in a single JSON file on disk. It
// backs the saved-trip feature while the remote collection endpoints are not
// rolled out.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/trip-planner/trip-offer-aggregation-service/internal/domain"
	"github.com/trip-planner/trip-offer-aggregation-service/internal/infrastructure/timeutil"
)

// Store is a file-backed domain.TripStore. All operations serialize through a
// mutex; each write rewrites the whole file.
type Store struct {
	mu    sync.Mutex
	path  string
	clock timeutil.Clock
}

// New creates a Store writing to the given file path. A nil clock defaults to
// the system clock.
func New(path string, clock timeutil.Clock) *Store {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Store{path: path, clock: clock}
}

// List implements domain.TripStore.List, newest saves first.
func (s *Store) List(ctx context.Context) ([]domain.SavedTrip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trips, err := s.load()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(trips, func(i, j int) bool {
		return trips[i].SavedAt.After(trips[j].SavedAt)
	})
	return trips, nil
}

// Save implements domain.TripStore.Save. The ID combines the save timestamp
// in unix milliseconds with a short random suffix.
func (s *Store) Save(ctx context.Context, trip domain.NewTrip) (*domain.SavedTrip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trips, err := s.load()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	saved := domain.SavedTrip{
		ID:            newTripID(now.UnixMilli()),
		Destination:   trip.Destination,
		DestinationID: trip.DestinationID,
		Country:       trip.Country,
		Airport:       trip.Airport,
		Duration:      trip.Duration,
		Month:         trip.Month,
		Flight:        trip.Flight,
		SavedAt:       now,
	}

	trips = append(trips, saved)
	if err := s.persist(trips); err != nil {
		return nil, err
	}
	return &saved, nil
}

// Delete implements domain.TripStore.Delete.
func (s *Store) Delete(ctx context.Context, tripID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trips, err := s.load()
	if err != nil {
		return false, err
	}

	kept := trips[:0]
	for _, t := range trips {
		if t.ID != tripID {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(trips) {
		return false, nil
	}

	if err := s.persist(kept); err != nil {
		return false, err
	}
	return true, nil
}

// load reads the trip file. A missing or unreadable-as-JSON file yields an
// empty list so a corrupted blob never blocks saving.
func (s *Store) load() ([]domain.SavedTrip, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read trip store: %w", err)
	}

	var trips []domain.SavedTrip
	if err := json.Unmarshal(data, &trips); err != nil {
		return nil, nil
	}
	return trips, nil
}

func (s *Store) persist(trips []domain.SavedTrip) error {
	if trips == nil {
		trips = []domain.SavedTrip{}
	}

	data, err := json.MarshalIndent(trips, "", "  ")
	if err != nil {
		return fmt.Errorf("encode trip store: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create trip store dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write trip store: %w", err)
	}
	return nil
}

// newTripID builds a sortable trip ID from the save time plus a random
// suffix so two saves in the same millisecond stay distinct.
func newTripID(unixMilli int64) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return strconv.FormatInt(unixMilli, 10) + "-" + suffix
}

// Ensure Store implements the trip store port at compile time.
var _ domain.TripStore = (*Store)(nil)
