package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/trip-planner/trip-offer-aggregation-service/internal/domain"
)

// TextSearchUseCase turns a free-text travel description into structured
// trip parameters via the text-search backend.
type TextSearchUseCase interface {
	// Parse extracts trip parameters from the query. Returns
	// domain.ErrFeatureUnavailable when the backend does not exist or its
	// answer carries no usable parameters, signalling the caller to offer
	// manual selection instead.
	Parse(ctx context.Context, query string) (*domain.TripQuery, error)
}

type textSearchUseCase struct {
	parser domain.TripQueryParser
}

// NewTextSearchUseCase creates a TextSearchUseCase over the given parser.
func NewTextSearchUseCase(parser domain.TripQueryParser) TextSearchUseCase {
	return &textSearchUseCase{parser: parser}
}

// Parse implements TextSearchUseCase.Parse.
func (uc *textSearchUseCase) Parse(ctx context.Context, query string) (*domain.TripQuery, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", domain.ErrInvalidRequest)
	}

	result, err := uc.parser.Parse(ctx, query)
	if err != nil {
		return nil, err
	}

	// An answer with no usable parameters is treated the same as an absent
	// backend: the caller falls back to manual selection.
	if result == nil || result.DestinationID == "" || result.DurationDays < 1 || result.Month == "" {
		return nil, domain.ErrFeatureUnavailable
	}

	return result, nil
}

var _ TextSearchUseCase = (*textSearchUseCase)(nil)
