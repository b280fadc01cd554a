package usecase

import (
	"math/rand"
	"sync"

	"github.com/trip-planner/trip-offer-aggregation-service/internal/domain"
)

// Synthetic price bounds for fallback offers, in currency minor-unit-free
// form (KRW).
const (
	mockBasePriceMin = 800_000
	mockBasePriceMax = 2_000_000
	mockSavingsMin   = 50_000
	mockSavingsMax   = 350_000
)

// mockOfferCount is the number of synthetic offers generated per request,
// subject to the window generator's early-stop rule for short months.
const mockOfferCount = 5

// MockOfferGenerator produces synthetic canonical offers with the same shape
// as the live pipeline. It is a presentation fallback for when the remote
// path yields nothing, not a data source: only the shape of its output is
// contractual, never the values.
//
// Randomness is confined to the injected source so tests can seed it; it
// never leaks into the deterministic normalizer.
type MockOfferGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockOfferGenerator creates a generator drawing from the given seed.
func NewMockOfferGenerator(seed int64) *MockOfferGenerator {
	return &MockOfferGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Generate synthesizes offers for the destination across candidate windows
// of the month, sorted ascending by price. It returns mockOfferCount entries
// when the month can hold a trip of durationDays days, fewer otherwise, and
// never an error beyond invalid inputs.
func (g *MockOfferGenerator) Generate(destinationID string, durationDays int, month string) ([]domain.Offer, error) {
	windows, err := domain.GenerateWindows(month, durationDays, mockOfferCount)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	offers := make([]domain.Offer, 0, len(windows))
	for i, window := range windows {
		airline := domain.Airlines[g.rng.Intn(len(domain.Airlines))]
		base := mockBasePriceMin + g.rng.Int63n(mockBasePriceMax-mockBasePriceMin)
		savings := mockSavingsMin + g.rng.Int63n(mockSavingsMax-mockSavingsMin)

		raw := domain.RawOffer{
			Destination: destinationID,
			Airline:     airline.Name,
			Price:       base - savings,
		}
		offer := NormalizeOffer(raw, i, durationDays, window)
		// The synthetic discount is the actual savings here, not the 20%
		// reference-price derivation.
		offer.Savings = savings
		offers = append(offers, offer)
	}

	return AggregateOffers(offers, mockOfferCount), nil
}
