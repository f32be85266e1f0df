package planner

import (
	"context"
	"sort"
	"strings"

	"tripplanner/models"
	"tripplanner/utils"
)

const (
	hotelResultLimit      = 20
	restaurantResultLimit = 25
	foodRecommendations   = 3
)

// SearchQuery is a nearby search around an origin.
type SearchQuery struct {
	Origin   models.Location
	RadiusKm float64
	Filters  RankFilters
	Cuisine  string
}

// SearchResult is a ranked nearby search answer.
type SearchResult struct {
	Candidates       []models.Candidate `json:"candidates"`
	TotalFound       int                `json:"totalFound"`
	Dropped          int                `json:"dropped"`
	ProviderFailures []string           `json:"providerFailures,omitempty"`
	Recommendations  []string           `json:"recommendations,omitempty"`
}

// SearchHotels merges provider and catalog hotels around the origin and
// returns the best ranked ones.
func (p *Planner) SearchHotels(ctx context.Context, q SearchQuery) (SearchResult, error) {
	return p.search(ctx, models.KindHotel, "lodging", q, hotelResultLimit)
}

// SearchRestaurants is SearchHotels for restaurants, optionally narrowed
// to one cuisine.
func (p *Planner) SearchRestaurants(ctx context.Context, q SearchQuery) (SearchResult, error) {
	res, err := p.search(ctx, models.KindRestaurant, p.cuisineType(q.Cuisine), q, restaurantResultLimit)
	if err != nil {
		return SearchResult{}, err
	}
	n := foodRecommendations
	if len(p.foodTips) < n {
		n = len(p.foodTips)
	}
	res.Recommendations = append([]string(nil), p.foodTips[:n]...)
	return res, nil
}

func (p *Planner) search(ctx context.Context, kind models.CandidateKind, category string, q SearchQuery, limit int) (SearchResult, error) {
	if err := utils.ValidateLocation(q.Origin); err != nil {
		return SearchResult{}, err
	}
	if q.RadiusKm <= 0 {
		return SearchResult{}, models.NewPlanError(models.CodeInvalidFilter, "radius must be positive")
	}

	filters := q.Filters
	filters.MaxDistanceKm = q.RadiusKm
	sources := []source{
		p.placesSource("places:"+category, q.Origin, int(q.RadiusKm*1000), category),
		p.catalogSource("catalog:"+string(kind), models.CatalogFilter{
			Kind:      kind,
			MinRating: q.Filters.MinRating,
			Cuisine:   q.Cuisine,
			Limit:     int64(limit),
		}),
	}
	feeds, failures := p.fetchAll(ctx, sources)

	merged := MergePlaces(kind, q.Origin, feeds[0].places, feeds[1].catalog, p.prices)
	p.recordDropped(kind, merged.Dropped)

	// TotalFound counts every match, before truncation to limit.
	matched := Filter(merged.Candidates, filters)
	return SearchResult{
		Candidates:       Order(matched, limit),
		TotalFound:       len(matched),
		Dropped:          merged.Dropped,
		ProviderFailures: failures,
	}, nil
}

// cuisineType maps a cuisine name to the provider's place type.
func (p *Planner) cuisineType(cuisine string) string {
	if cuisine == "" {
		return "restaurant"
	}
	// Several place types may share a cuisine name; the first in sorted
	// order wins so the choice is stable.
	types := make([]string, 0, len(p.prices.CuisineTypes))
	for placeType := range p.prices.CuisineTypes {
		types = append(types, placeType)
	}
	sort.Strings(types)
	for _, placeType := range types {
		if strings.EqualFold(p.prices.CuisineTypes[placeType], cuisine) {
			return placeType
		}
	}
	return "restaurant"
}
