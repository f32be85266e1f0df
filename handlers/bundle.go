package handlers

import (
	"context"

	"tripplanner/models"
	"tripplanner/services/planner"
	"tripplanner/services/transport"
)

// TripPlanner is the planning surface the HTTP layer depends on.
type TripPlanner interface {
	GenerateItinerary(ctx context.Context, req models.ItineraryRequest) (models.Itinerary, error)
	SearchHotels(ctx context.Context, q planner.SearchQuery) (planner.SearchResult, error)
	SearchRestaurants(ctx context.Context, q planner.SearchQuery) (planner.SearchResult, error)
	HotelDetails(ctx context.Context, id string) (models.Candidate, error)
	RestaurantDetails(ctx context.Context, id string) (models.Candidate, error)
}

// TransportLookup answers point to point transport queries.
type TransportLookup interface {
	Options(ctx context.Context, origin, destination, mode string) (transport.Options, error)
	Pricing(ctx context.Context, origin, destination, fareType string) (transport.Pricing, error)
	Availability(loc models.Location, mode string) (transport.Availability, error)
}

// ExportEnqueuer schedules itinerary exports.
type ExportEnqueuer interface {
	EnqueueExport(ctx context.Context, itineraryID, userID string) (string, error)
}

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Itinerary *ItineraryHandler
	Search    *SearchHandler
	Transport *TransportHandler
}
