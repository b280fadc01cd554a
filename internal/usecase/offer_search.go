package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/trip-planner/trip-offer-aggregation-service/internal/domain"
)

// Default pipeline parameters.
const (
	// DefaultWindowCount is the number of candidate date windows per search.
	DefaultWindowCount = 5

	// DefaultOriginAirport is the departure airport when none is configured.
	DefaultOriginAirport = "ICN"
)

// Offer provenance values reported in search metadata.
const (
	// SourceLive marks results fetched from the flight search backend.
	SourceLive = "live"

	// SourceFallback marks synthetic results from the mock generator.
	SourceFallback = "fallback"
)

// OfferSearchUseCase defines the interface for trip offer search operations.
type OfferSearchUseCase interface {
	// Search runs the full pipeline for the given criteria: window
	// generation, per-window fetch, normalization, aggregation, and the
	// synthetic fallback when the live path yields nothing.
	Search(ctx context.Context, criteria domain.SearchCriteria) (*SearchResult, error)
}

// SearchResult is the aggregated outcome of a trip offer search.
type SearchResult struct {
	// Criteria echoes the search parameters
	Criteria domain.SearchCriteria

	// Offers is the aggregated offer list, sorted ascending by price
	Offers []domain.Offer

	// Metadata describes the search execution
	Metadata SearchMetadata
}

// SearchMetadata contains metadata about a search execution.
type SearchMetadata struct {
	// WindowsQueried is the number of date windows fetched
	WindowsQueried int `json:"windows_queried"`

	// WindowsFailed is the number of windows whose fetch failed
	WindowsFailed int `json:"windows_failed"`

	// Source reports offer provenance: live backend or synthetic fallback
	Source string `json:"source"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`
}

// Config contains configuration options for the offer search use case.
type Config struct {
	// OriginAirport is the IATA code offers depart from
	OriginAirport string

	// WindowCount is the number of candidate windows per search
	WindowCount int

	// ResultLimit caps the aggregated offer list
	ResultLimit int
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		OriginAirport: DefaultOriginAirport,
		WindowCount:   DefaultWindowCount,
		ResultLimit:   DefaultResultLimit,
	}
}

// offerSearchUseCase implements OfferSearchUseCase as a sequential
// fetch-normalize-aggregate pipeline.
type offerSearchUseCase struct {
	source   domain.OfferSource
	fallback *MockOfferGenerator
	cfg      Config
	log      zerolog.Logger
}

// NewOfferSearchUseCase creates an OfferSearchUseCase backed by the given
// offer source and fallback generator. Zero-valued config fields take their
// defaults.
func NewOfferSearchUseCase(source domain.OfferSource, fallback *MockOfferGenerator, cfg Config, log zerolog.Logger) OfferSearchUseCase {
	defaults := DefaultConfig()
	if cfg.OriginAirport == "" {
		cfg.OriginAirport = defaults.OriginAirport
	}
	if cfg.WindowCount <= 0 {
		cfg.WindowCount = defaults.WindowCount
	}
	if cfg.ResultLimit <= 0 {
		cfg.ResultLimit = defaults.ResultLimit
	}

	return &offerSearchUseCase{
		source:   source,
		fallback: fallback,
		cfg:      cfg,
		log:      log,
	}
}

// Search implements OfferSearchUseCase.Search.
//
// Windows are fetched sequentially, one at a time: each offer's sequence
// index is the running count of offers accumulated from earlier windows, so
// derived fields never collide across windows.
func (uc *offerSearchUseCase) Search(ctx context.Context, criteria domain.SearchCriteria) (*SearchResult, error) {
	startTime := time.Now()

	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	destination := criteria.Destination()

	windows, err := domain.GenerateWindows(criteria.Month, criteria.DurationDays, uc.cfg.WindowCount)
	if err != nil {
		return nil, err
	}

	var all []domain.Offer
	failed := 0
	for _, window := range windows {
		// An abandoned request stops between windows, before any further
		// accumulation.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raws, err := uc.source.FetchOffers(ctx, uc.cfg.OriginAirport, destination.Airport, window)
		if err != nil {
			failed++
			srcErr := domain.NewSourceError(window, err)
			uc.log.Warn().
				Str("destination", destination.Airport).
				Str("departure_date", window.DepartureDate).
				Str("return_date", window.ReturnDate).
				Err(srcErr).
				Msg("Window fetch failed, skipping")
			continue
		}

		for _, raw := range raws {
			all = append(all, NormalizeOffer(raw, len(all), criteria.DurationDays, window))
		}
	}

	offers := AggregateOffers(all, uc.cfg.ResultLimit)
	source := SourceLive

	if len(offers) == 0 {
		offers, err = uc.fallback.Generate(criteria.DestinationID, criteria.DurationDays, criteria.Month)
		if err != nil {
			return nil, fmt.Errorf("generate fallback offers: %w", err)
		}
		source = SourceFallback
		uc.log.Info().
			Str("destination_id", criteria.DestinationID).
			Int("windows_failed", failed).
			Msg("Live path empty, serving fallback offers")
	}

	return &SearchResult{
		Criteria: criteria,
		Offers:   offers,
		Metadata: SearchMetadata{
			WindowsQueried: len(windows),
			WindowsFailed:  failed,
			Source:         source,
			SearchTimeMs:   time.Since(startTime).Milliseconds(),
		},
	}, nil
}

// Ensure offerSearchUseCase implements OfferSearchUseCase at compile time.
var _ OfferSearchUseCase = (*offerSearchUseCase)(nil)
