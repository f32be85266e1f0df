package planner

import (
	"fmt"
	"math"
	"strings"

	"tripplanner/config"
	"tripplanner/models"
	"tripplanner/utils"
)

// MergeResult holds the merged candidates and how many records were dropped
// for missing or invalid coordinates.
type MergeResult struct {
	Candidates []models.Candidate
	Dropped    int
}

// MergePlaces normalizes provider and catalog records of one kind into
// candidates measured from origin. Provider records come first, in input
// order, followed by catalog records. Records present in both sources are
// kept twice.
func MergePlaces(kind models.CandidateKind, origin models.Location, provider []models.RawPlace, catalog []models.CatalogEntry, prices config.PriceTables) MergeResult {
	res := MergeResult{Candidates: make([]models.Candidate, 0, len(provider)+len(catalog))}

	for _, p := range provider {
		c, ok := fromProvider(kind, origin, p, prices)
		if !ok {
			res.Dropped++
			continue
		}
		res.Candidates = append(res.Candidates, c)
	}
	for _, e := range catalog {
		c, ok := fromCatalog(kind, origin, e, prices)
		if !ok {
			res.Dropped++
			continue
		}
		res.Candidates = append(res.Candidates, c)
	}
	return res
}

func fromProvider(kind models.CandidateKind, origin models.Location, p models.RawPlace, prices config.PriceTables) (models.Candidate, bool) {
	if p.Latitude == nil || p.Longitude == nil {
		return models.Candidate{}, false
	}
	loc := models.Location{Latitude: *p.Latitude, Longitude: *p.Longitude, Address: p.Vicinity}
	dist, err := utils.DistanceKm(origin, loc)
	if err != nil {
		return models.Candidate{}, false
	}

	c := models.Candidate{
		ID:         p.ID,
		Name:       p.Name,
		Kind:       kind,
		Source:     models.SourceProvider,
		Location:   loc,
		DistanceKm: dist,
		Available:  p.OpenNow,
		Link:       fmt.Sprintf("https://www.google.com/maps/place/?q=place_id:%s", p.ID),
	}
	if p.Rating != nil {
		c.Rating = clampRating(*p.Rating)
	}

	level := 0
	if p.PriceLevel != nil {
		level = *p.PriceLevel
	}
	switch kind {
	case models.KindRestaurant:
		c.PriceTier = clampTier(level, prices.DefaultRestaurantLevel)
		c.CostEstimate = config.LevelCost(prices.RestaurantLevelCost, c.PriceTier, prices.RestaurantDefaultCost)
		c.Category = cuisineFromTypes(p.Types, prices.CuisineTypes)
	default:
		c.PriceTier = clampTier(level, prices.DefaultHotelLevel)
		c.CostEstimate = config.LevelCost(prices.HotelLevelCost, c.PriceTier, 0)
		c.Amenities = append([]string(nil), p.Types...)
	}
	return c, true
}

func fromCatalog(kind models.CandidateKind, origin models.Location, e models.CatalogEntry, prices config.PriceTables) (models.Candidate, bool) {
	if e.Latitude == nil || e.Longitude == nil {
		return models.Candidate{}, false
	}
	loc := models.Location{Latitude: *e.Latitude, Longitude: *e.Longitude, Address: e.Address}
	dist, err := utils.DistanceKm(origin, loc)
	if err != nil {
		return models.Candidate{}, false
	}

	c := models.Candidate{
		ID:         e.ID,
		Name:       e.Name,
		Kind:       kind,
		Source:     models.SourceCatalog,
		Rating:     clampRating(e.Rating),
		Location:   loc,
		DistanceKm: dist,
		Amenities:  append([]string(nil), e.Amenities...),
		Link:       e.Website,
	}

	switch kind {
	case models.KindRestaurant:
		c.PriceTier = tierFromRange(e.PriceRange)
		c.CostEstimate = prices.RangeCost(e.PriceRange)
		if len(e.Cuisine) > 0 {
			c.Category = e.Cuisine[0]
		}
	default:
		if e.PriceRange == "" && e.PricePerNight > 0 {
			c.PriceTier = tierFromNightly(e.PricePerNight, prices.HotelNightThresholds)
		} else {
			c.PriceTier = tierFromRange(e.PriceRange)
		}
		c.CostEstimate = e.PricePerNight
		if c.CostEstimate <= 0 {
			c.CostEstimate = config.LevelCost(prices.HotelLevelCost, c.PriceTier, 0)
		}
	}
	return c, true
}

func tierFromRange(r models.PriceRange) int {
	switch models.PriceRange(strings.ToUpper(string(r))) {
	case models.PriceMidRange:
		return 3
	case models.PriceExpensive:
		return 4
	default:
		return 2
	}
}

// tierFromNightly maps a nightly rate onto tiers 1-5 using ascending
// upper bounds.
func tierFromNightly(rate float64, bounds []float64) int {
	for i, b := range bounds {
		if rate <= b {
			return clampTier(i+1, 1)
		}
	}
	return clampTier(len(bounds)+1, 1)
}

func cuisineFromTypes(types []string, cuisines map[string]string) string {
	for _, t := range types {
		if name, ok := cuisines[strings.ToLower(t)]; ok {
			return name
		}
	}
	return "Restaurant"
}

func clampTier(level, fallback int) int {
	if level == 0 {
		level = fallback
	}
	if level < 1 {
		return 1
	}
	if level > 5 {
		return 5
	}
	return level
}

func clampRating(r float64) float64 {
	if r < 0 || math.IsNaN(r) {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}
