package http

import (
	"github.com/trip-planner/trip-offer-aggregation-service/internal/domain"
	"github.com/trip-planner/trip-offer-aggregation-service/internal/usecase"
)

// SearchResponseDTO is the data transfer object for offer search responses.
// Envelope fields use snake_case; the offers inside keep the canonical
// camelCase offer shape.
type SearchResponseDTO struct {
	SearchCriteria SearchCriteriaDTO `json:"search_criteria"`
	Metadata       MetadataDTO       `json:"metadata"`
	Offers         []domain.Offer    `json:"offers"`
}

// SearchCriteriaDTO echoes the search parameters in the response.
type SearchCriteriaDTO struct {
	DestinationID string `json:"destination_id"`
	DurationDays  int    `json:"duration_days"`
	Month         string `json:"month"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	TotalResults   int    `json:"total_results"`
	WindowsQueried int    `json:"windows_queried"`
	WindowsFailed  int    `json:"windows_failed"`
	Source         string `json:"source"`
	SearchTimeMs   int64  `json:"search_time_ms"`
}

// TripListDTO wraps the saved-trip list.
type TripListDTO struct {
	Trips []domain.SavedTrip `json:"trips"`
	Total int                `json:"total"`
}

// DeleteTripDTO reports the outcome of a trip deletion.
type DeleteTripDTO struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// DestinationListDTO wraps the destination catalog.
type DestinationListDTO struct {
	Destinations []domain.Destination `json:"destinations"`
}

// ToSearchResponseDTO converts a use case search result to its response DTO.
func ToSearchResponseDTO(result *usecase.SearchResult) *SearchResponseDTO {
	if result == nil {
		return nil
	}

	offers := result.Offers
	if offers == nil {
		offers = []domain.Offer{}
	}

	return &SearchResponseDTO{
		SearchCriteria: SearchCriteriaDTO{
			DestinationID: result.Criteria.DestinationID,
			DurationDays:  result.Criteria.DurationDays,
			Month:         result.Criteria.Month,
		},
		Metadata: MetadataDTO{
			TotalResults:   len(offers),
			WindowsQueried: result.Metadata.WindowsQueried,
			WindowsFailed:  result.Metadata.WindowsFailed,
			Source:         result.Metadata.Source,
			SearchTimeMs:   result.Metadata.SearchTimeMs,
		},
		Offers: offers,
	}
}

// ToTripListDTO wraps saved trips for the list response.
func ToTripListDTO(trips []domain.SavedTrip) *TripListDTO {
	if trips == nil {
		trips = []domain.SavedTrip{}
	}
	return &TripListDTO{
		Trips: trips,
		Total: len(trips),
	}
}
