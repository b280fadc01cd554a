package usecase

import (
	"sort"

	"github.com/trip-planner/trip-offer-aggregation-service/internal/domain"
)

// DefaultResultLimit caps the number of offers returned from a search.
const DefaultResultLimit = 10

// AggregateOffers sorts offers ascending by price and truncates the result
// to limit entries. The sort is stable: equal-price offers keep their
// insertion order (window order, then within-window order). The input slice
// is not modified.
func AggregateOffers(offers []domain.Offer, limit int) []domain.Offer {
	if limit <= 0 {
		limit = DefaultResultLimit
	}

	result := make([]domain.Offer, len(offers))
	copy(result, offers)

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Price < result[j].Price
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result
}
