package transport

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tripplanner/models"
	"tripplanner/services/planner"

	"go.uber.org/zap"
)

// Modes accepted by Options. ModeAll disables the filter.
const (
	ModeAll   = "all"
	ModeCab   = "cab"
	ModeAuto  = "auto"
	ModeMetro = "metro"
	ModeTrain = "train"
	ModeBus   = "bus"
)

// Options is the answer of a point to point transport query.
type Options struct {
	Route           models.Route       `json:"route"`
	Offers          []models.Candidate `json:"transportOptions"`
	Recommendations []string           `json:"recommendations"`
}

// Service combines a route lookup with fare-table offers.
type Service struct {
	routes planner.RouteProvider
	fares  *FareTable
	logger *zap.Logger
	now    func() time.Time
}

func NewService(routes planner.RouteProvider, fares *FareTable, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{routes: routes, fares: fares, logger: logger, now: time.Now}
}

// ParseMode validates a mode filter. Empty means all modes.
func ParseMode(mode string) (string, error) {
	m := strings.ToLower(strings.TrimSpace(mode))
	switch m {
	case "":
		return ModeAll, nil
	case ModeAll, ModeCab, ModeAuto, ModeMetro, ModeTrain, ModeBus:
		return m, nil
	default:
		return "", models.NewPlanError(models.CodeInvalidFilter, fmt.Sprintf("unknown transport mode %q", mode))
	}
}

// Options prices the offers of a mode between origin and destination,
// available offers first and then by cost.
func (s *Service) Options(ctx context.Context, origin, destination, mode string) (Options, error) {
	if err := requireEnds(origin, destination); err != nil {
		return Options{}, err
	}
	m, err := ParseMode(mode)
	if err != nil {
		return Options{}, err
	}
	route, err := s.route(ctx, origin, destination)
	if err != nil {
		return Options{}, err
	}

	filter := m
	if filter == ModeAll {
		filter = ""
	}
	offers := planner.RankTransport(s.fares.offers(route.DistanceKm, filter))

	return Options{
		Route:           route,
		Offers:          offers,
		Recommendations: recommendations(offers, route.DistanceKm),
	}, nil
}

func requireEnds(origin, destination string) error {
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return models.NewPlanError(models.CodeInvalidRequest, "origin and destination are required")
	}
	return nil
}

// route resolves origin and destination, keeping both the resolved
// addresses and the query strings.
func (s *Service) route(ctx context.Context, origin, destination string) (models.Route, error) {
	if s.routes == nil {
		return models.Route{}, models.NewPlanError(models.CodeProviderUnavailable, "routing is not configured")
	}

	route, err := s.routes.Route(ctx, origin, destination)
	if err != nil {
		s.logger.Warn("Route lookup failed",
			zap.String("origin", origin),
			zap.String("destination", destination),
			zap.Error(err))
		return models.Route{}, err
	}
	route.RequestedOrigin, route.RequestedDestination = origin, destination
	if route.Origin == "" {
		route.Origin = origin
	}
	if route.Destination == "" {
		route.Destination = destination
	}
	return route, nil
}

func recommendations(offers []models.Candidate, distanceKm float64) []string {
	var out []string
	switch {
	case distanceKm < 2:
		out = append(out, "For short distances, auto rickshaw is most convenient")
	case distanceKm < 10:
		out = append(out, "Cab services offer good value for medium distances")
	default:
		out = append(out, "Consider train or bus for longer distances")
	}

	if len(offers) > 0 {
		cheapest := offers[0]
		for _, o := range offers[1:] {
			if o.CostEstimate < cheapest.CostEstimate {
				cheapest = o
			}
		}
		out = append(out, fmt.Sprintf("%s offers the most economical option", cheapest.Provider))
	}
	return append(out, "Book in advance during peak hours for better rates")
}
