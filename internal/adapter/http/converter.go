package http

import (
	"github.com/trip-planner/trip-offer-aggregation-service/internal/domain"
)

// ToDomainCriteria converts a SearchOffersRequest to domain.SearchCriteria.
func ToDomainCriteria(req *SearchOffersRequest) domain.SearchCriteria {
	return domain.SearchCriteria{
		DestinationID: req.DestinationID,
		DurationDays:  req.DurationDays,
		Month:         req.Month,
	}
}

// ToNewTrip converts a SaveTripRequest to domain.NewTrip, filling country and
// airport from the catalog when the client omitted them.
func ToNewTrip(req *SaveTripRequest) domain.NewTrip {
	trip := domain.NewTrip{
		Destination:   req.Destination,
		DestinationID: req.DestinationID,
		Country:       req.Country,
		Airport:       req.Airport,
		Duration:      req.Duration,
		Month:         req.Month,
		Flight:        req.Flight,
	}

	if trip.Country == "" || trip.Airport == "" {
		if d, ok := domain.FindDestination(trip.DestinationID); ok {
			if trip.Country == "" {
				trip.Country = d.Country
			}
			if trip.Airport == "" {
				trip.Airport = d.Airport
			}
		}
	}

	return trip
}
