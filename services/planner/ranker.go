package planner

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"tripplanner/models"
	"tripplanner/utils"
)

// BudgetCategory filters candidates by price tier.
type BudgetCategory string

const (
	BudgetAny       BudgetCategory = ""
	BudgetLow       BudgetCategory = "budget"
	BudgetMid       BudgetCategory = "mid-range"
	BudgetExpensive BudgetCategory = "expensive"
	BudgetLuxury    BudgetCategory = "luxury"
)

// ratingTolerance is the rating gap under which two candidates are ordered
// by distance instead of rating.
const ratingTolerance = 0.1

// ParseBudgetCategory validates a budget filter. An empty string means no
// filter.
func ParseBudgetCategory(s string) (BudgetCategory, error) {
	switch c := BudgetCategory(strings.ToLower(strings.TrimSpace(s))); c {
	case BudgetAny, BudgetLow, BudgetMid, BudgetExpensive, BudgetLuxury:
		return c, nil
	default:
		return BudgetAny, models.NewPlanError(models.CodeInvalidFilter, fmt.Sprintf("unknown budget category %q", s))
	}
}

// CategoryForTier returns the filter that selects hotels of an
// accommodation tier.
func CategoryForTier(t models.Tier) BudgetCategory {
	switch t {
	case models.TierBudget:
		return BudgetLow
	case models.TierMidRange:
		return BudgetMid
	default:
		return BudgetLuxury
	}
}

// Matches reports whether a price tier falls in the category.
func (b BudgetCategory) Matches(tier int) bool {
	switch b {
	case BudgetLow:
		return tier <= 2
	case BudgetMid:
		return tier == 3
	case BudgetExpensive, BudgetLuxury:
		return tier >= 4
	default:
		return true
	}
}

// RankFilters narrows the candidates before ordering. Zero values disable a
// filter.
type RankFilters struct {
	Budget        BudgetCategory
	MinRating     float64
	MaxDistanceKm float64
}

func (f RankFilters) keep(c models.Candidate) bool {
	if !f.Budget.Matches(c.PriceTier) {
		return false
	}
	if f.MinRating > 0 && c.Rating < f.MinRating {
		return false
	}
	if f.MaxDistanceKm > 0 && c.DistanceKm > f.MaxDistanceKm {
		return false
	}
	return true
}

// Rank filters and orders candidates, then truncates to limit (limit <= 0
// keeps everything). The input slice is left untouched.
func Rank(candidates []models.Candidate, filters RankFilters, limit int) []models.Candidate {
	return Order(Filter(candidates, filters), limit)
}

// Filter returns the candidates passing filters, in input order.
func Filter(candidates []models.Candidate, filters RankFilters) []models.Candidate {
	out := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if filters.keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// Order sorts a copy of candidates and truncates it to limit. Ratings
// further apart than the tolerance decide the order, closer ones fall back
// to distance, and full ties keep input order.
func Order(candidates []models.Candidate, limit int) []models.Candidate {
	out := append([]models.Candidate(nil), candidates...)
	sort.SliceStable(out, func(i, j int) bool {
		return rankLess(out[i], out[j])
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func rankLess(a, b models.Candidate) bool {
	if math.Abs(a.Rating-b.Rating) > ratingTolerance {
		return a.Rating > b.Rating
	}
	return a.DistanceKm < b.DistanceKm
}

// RankTransport orders offers available first, then by ascending cost.
func RankTransport(offers []models.Candidate) []models.Candidate {
	out := append([]models.Candidate(nil), offers...)
	sort.SliceStable(out, func(i, j int) bool {
		ai, aj := out[i].IsAvailable(), out[j].IsAvailable()
		if ai != aj {
			return ai
		}
		return out[i].CostEstimate < out[j].CostEstimate
	})
	return out
}

// ActivityCandidates turns the activities of one slot into ranked
// candidates measured from the destination center.
func ActivityCandidates(profile models.DestinationProfile, slot models.Slot) []models.Candidate {
	specs := profile.ActivitiesFor(slot)
	cands := make([]models.Candidate, 0, len(specs))
	for _, a := range specs {
		dist, err := utils.DistanceKm(profile.Center, a.Location)
		if err != nil {
			continue
		}
		cands = append(cands, models.Candidate{
			ID:           a.ID,
			Name:         a.Name,
			Kind:         models.KindActivity,
			Source:       models.SourceCatalog,
			Rating:       clampRating(a.Rating),
			PriceTier:    1,
			Location:     a.Location,
			DistanceKm:   dist,
			CostEstimate: a.Cost,
			Description:  a.Description,
			Duration:     a.Duration,
		})
	}
	return Rank(cands, RankFilters{}, 0)
}
