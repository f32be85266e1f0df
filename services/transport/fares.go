package transport

import (
	"context"
	"math"
	"strings"

	"tripplanner/config"
	"tripplanner/models"
)

// FareTable prices transport offers from static per-provider rates.
type FareTable struct {
	fares []config.TransportFare
}

func NewFareTable(fares []config.TransportFare) *FareTable {
	return &FareTable{fares: append([]config.TransportFare(nil), fares...)}
}

// Offers prices every fare for the distance. Fares with a distance limit
// are marked unavailable beyond it.
func (t *FareTable) Offers(ctx context.Context, distanceKm float64) ([]models.Candidate, error) {
	return t.offers(distanceKm, ""), nil
}

func (t *FareTable) offers(distanceKm float64, mode string) []models.Candidate {
	out := make([]models.Candidate, 0, len(t.fares))
	for _, f := range t.fares {
		if mode != "" && !strings.EqualFold(f.Type, mode) {
			continue
		}
		available := servesDistance(f, distanceKm)
		cost := fareTotal(f, distanceKm)
		out = append(out, models.Candidate{
			ID:           offerID(f),
			Name:         f.Category,
			Kind:         models.KindTransport,
			Source:       models.SourceProvider,
			Rating:       f.Rating,
			PriceTier:    tierForFare(cost),
			DistanceKm:   distanceKm,
			CostEstimate: cost,
			Category:     f.Type,
			Available:    &available,
			Duration:     f.EstimatedTime,
			Amenities:    append([]string(nil), f.Features...),
			Link:         f.BookingLink,
			Provider:     f.Provider,
		})
	}
	return out
}

// estimates itemizes the fares of one type for the distance, in table order.
func (t *FareTable) estimates(distanceKm float64, fareType string) []FareEstimate {
	out := []FareEstimate{}
	for _, f := range t.fares {
		if !strings.EqualFold(f.Type, fareType) {
			continue
		}
		out = append(out, FareEstimate{
			Provider:       f.Provider,
			Category:       f.Category,
			BaseFare:       f.Base,
			PerKm:          f.PerKm,
			EstimatedTotal: fareTotal(f, distanceKm),
			Available:      servesDistance(f, distanceKm),
		})
	}
	return out
}

// roster groups the providers of each fare type, types in table order.
func (t *FareTable) roster(mode string) []ModeAvailability {
	var out []ModeAvailability
	index := map[string]int{}
	for _, f := range t.fares {
		typ := strings.ToLower(f.Type)
		if mode != "" && typ != mode {
			continue
		}
		i, ok := index[typ]
		if !ok {
			i = len(out)
			index[typ] = i
			out = append(out, ModeAvailability{Type: typ})
		}
		out[i].Providers = append(out[i].Providers, ProviderAvailability{
			Name:      f.Provider,
			Category:  f.Category,
			Available: true,
			ETA:       f.EstimatedTime,
		})
	}
	return out
}

func fareTotal(f config.TransportFare, distanceKm float64) float64 {
	return math.Round(f.Base + f.PerKm*distanceKm)
}

// servesDistance reports whether a fare covers the distance. MaxKm 0 means
// no limit.
func servesDistance(f config.TransportFare, distanceKm float64) bool {
	return f.MaxKm == 0 || distanceKm < f.MaxKm
}

func offerID(f config.TransportFare) string {
	id := strings.ToLower(f.Provider + "-" + f.Category)
	return strings.ReplaceAll(id, " ", "-")
}

func tierForFare(cost float64) int {
	switch {
	case cost <= 100:
		return 1
	case cost <= 250:
		return 2
	case cost <= 500:
		return 3
	case cost <= 1000:
		return 4
	default:
		return 5
	}
}
