// Package mock provides test doubles for the trip offer aggregation system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/trip-planner/trip-offer-aggregation-service/internal/domain"
)

// Source is a configurable mock implementation of domain.OfferSource.
// It supports per-window responses, errors, and delays for testing
// partial failures, fallback behavior, and cancellation.
type Source struct {
	offers    []domain.RawOffer
	perWindow map[string][]domain.RawOffer
	err       error
	errFor    map[string]error
	delay     time.Duration

	mu      sync.Mutex
	windows []domain.DateWindow
}

// NewSource creates a new mock offer source.
// The source is configured using the builder pattern methods.
func NewSource() *Source {
	return &Source{
		perWindow: make(map[string][]domain.RawOffer),
		errFor:    make(map[string]error),
	}
}

// WithOffers configures the source to return the given raw offers for every
// window without a per-window override.
func (s *Source) WithOffers(offers []domain.RawOffer) *Source {
	s.offers = offers
	return s
}

// WithOffersFor configures the offers returned for the window departing on
// the given date.
func (s *Source) WithOffersFor(departureDate string, offers []domain.RawOffer) *Source {
	s.perWindow[departureDate] = offers
	return s
}

// WithError configures the source to fail every fetch with the given error.
func (s *Source) WithError(err error) *Source {
	s.err = err
	return s
}

// WithErrorFor configures the fetch for the window departing on the given
// date to fail.
func (s *Source) WithErrorFor(departureDate string, err error) *Source {
	s.errFor[departureDate] = err
	return s
}

// WithDelay configures the source to wait the given duration before responding.
// This is useful for testing cancellation behavior.
func (s *Source) WithDelay(d time.Duration) *Source {
	s.delay = d
	return s
}

// FetchOffers implements domain.OfferSource.
func (s *Source) FetchOffers(ctx context.Context, origin, destination string, window domain.DateWindow) ([]domain.RawOffer, error) {
	s.mu.Lock()
	s.windows = append(s.windows, window)
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	if err, ok := s.errFor[window.DepartureDate]; ok {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}

	if offers, ok := s.perWindow[window.DepartureDate]; ok {
		return offers, nil
	}
	return s.offers, nil
}

// CallCount returns the number of fetches performed.
func (s *Source) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows)
}

// Windows returns the date windows fetched, in call order.
func (s *Source) Windows() []domain.DateWindow {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.DateWindow, len(s.windows))
	copy(out, s.windows)
	return out
}

// Ensure Source implements the port at compile time.
var _ domain.OfferSource = (*Source)(nil)
