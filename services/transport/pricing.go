package transport

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tripplanner/models"
	"tripplanner/utils"
)

// FareEstimate is the itemized price of one fare for a route.
type FareEstimate struct {
	Provider       string  `json:"provider"`
	Category       string  `json:"category"`
	BaseFare       float64 `json:"baseFare"`
	PerKm          float64 `json:"perKm"`
	EstimatedTotal float64 `json:"estimatedTotal"`
	Available      bool    `json:"available"`
}

// Pricing is the answer of a fare estimate query.
type Pricing struct {
	Route     models.Route   `json:"route"`
	Estimates []FareEstimate `json:"pricing"`
	// EstimatedTime is the route duration in minutes.
	EstimatedTime float64 `json:"estimatedTime"`
}

type ProviderAvailability struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Available bool   `json:"available"`
	ETA       string `json:"eta,omitempty"`
}

type ModeAvailability struct {
	Type      string                 `json:"type"`
	Providers []ProviderAvailability `json:"providers"`
}

// Availability lists the providers operating near a location. It is read
// from the fare table, not from live vehicle positions.
type Availability struct {
	Location  models.Location    `json:"location"`
	Transport []ModeAvailability `json:"transport"`
	CheckedAt time.Time          `json:"timestamp"`
}

// Pricing estimates cab or auto fares between origin and destination.
func (s *Service) Pricing(ctx context.Context, origin, destination, fareType string) (Pricing, error) {
	if err := requireEnds(origin, destination); err != nil {
		return Pricing{}, err
	}
	t := strings.ToLower(strings.TrimSpace(fareType))
	if t != ModeCab && t != ModeAuto {
		return Pricing{}, models.NewPlanError(models.CodeInvalidFilter, fmt.Sprintf("pricing needs type cab or auto, got %q", fareType))
	}
	route, err := s.route(ctx, origin, destination)
	if err != nil {
		return Pricing{}, err
	}

	return Pricing{
		Route:         route,
		Estimates:     s.fares.estimates(route.DistanceKm, t),
		EstimatedTime: route.DurationMin,
	}, nil
}

// Availability reports which providers of a mode serve the area around loc.
func (s *Service) Availability(loc models.Location, mode string) (Availability, error) {
	if err := utils.ValidateLocation(loc); err != nil {
		return Availability{}, err
	}
	m, err := ParseMode(mode)
	if err != nil {
		return Availability{}, err
	}
	if m == ModeAll {
		m = ""
	}

	transport := s.fares.roster(m)
	if transport == nil {
		transport = []ModeAvailability{}
	}
	return Availability{
		Location:  loc,
		Transport: transport,
		CheckedAt: s.now(),
	}, nil
}
