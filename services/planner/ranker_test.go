package planner

import (
	"testing"

	"tripplanner/config"
	"tripplanner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cand(id string, rating, dist float64, tier int) models.Candidate {
	return models.Candidate{ID: id, Rating: rating, DistanceKm: dist, PriceTier: tier}
}

func TestRank_CloseRatingsOrderByDistance(t *testing.T) {
	a := cand("a", 4.3, 2, 2)
	b := cand("b", 4.35, 1, 2)

	assert.Equal(t, []string{"b", "a"}, ids(Rank([]models.Candidate{a, b}, RankFilters{}, 0)))
	assert.Equal(t, []string{"b", "a"}, ids(Rank([]models.Candidate{b, a}, RankFilters{}, 0)))
}

func TestRank_RatingGapWins(t *testing.T) {
	near := cand("near", 4.0, 0.5, 2)
	far := cand("far", 4.8, 9, 2)

	assert.Equal(t, []string{"far", "near"}, ids(Rank([]models.Candidate{near, far}, RankFilters{}, 0)))
}

func TestRank_StableAndDeterministic(t *testing.T) {
	in := []models.Candidate{
		cand("x", 4.0, 1, 2),
		cand("y", 4.0, 1, 2),
		cand("z", 4.0, 1, 2),
		cand("top", 4.9, 5, 2),
	}
	before := append([]models.Candidate(nil), in...)

	first := Rank(in, RankFilters{}, 0)
	second := Rank(in, RankFilters{}, 0)

	assert.Equal(t, []string{"top", "x", "y", "z"}, ids(first))
	assert.Equal(t, first, second)
	assert.Equal(t, before, in, "input must not be reordered")
}

func TestRank_FiltersAndLimit(t *testing.T) {
	in := []models.Candidate{
		cand("cheap", 4.5, 1, 1),
		cand("mid", 4.4, 1, 3),
		cand("lux", 4.9, 1, 5),
		cand("faraway", 4.7, 40, 2),
		cand("lowrated", 2.0, 1, 2),
	}

	budget := Rank(in, RankFilters{Budget: BudgetLow, MinRating: 3, MaxDistanceKm: 10}, 0)
	assert.Equal(t, []string{"cheap"}, ids(budget))

	mid := Rank(in, RankFilters{Budget: BudgetMid}, 0)
	assert.Equal(t, []string{"mid"}, ids(mid))

	lux := Rank(in, RankFilters{Budget: BudgetExpensive}, 0)
	assert.Equal(t, []string{"lux"}, ids(lux))

	top2 := Rank(in, RankFilters{}, 2)
	assert.Equal(t, []string{"lux", "faraway"}, ids(top2))
}

func TestFilterThenOrder(t *testing.T) {
	in := []models.Candidate{
		cand("a", 3.0, 1, 3),
		cand("b", 4.5, 1, 3),
		cand("c", 4.9, 1, 1),
		cand("d", 4.0, 1, 3),
	}
	before := append([]models.Candidate(nil), in...)

	matched := Filter(in, RankFilters{Budget: BudgetMid})
	assert.Equal(t, []string{"a", "b", "d"}, ids(matched), "filter keeps input order")

	assert.Equal(t, []string{"b", "d"}, ids(Order(matched, 2)))
	assert.Equal(t, []string{"a", "b", "d"}, ids(matched), "order works on a copy")
	assert.Equal(t, before, in)
}

func TestParseBudgetCategory(t *testing.T) {
	for in, want := range map[string]BudgetCategory{
		"":          BudgetAny,
		"budget":    BudgetLow,
		"Mid-Range": BudgetMid,
		"expensive": BudgetExpensive,
		" luxury ":  BudgetLuxury,
	} {
		got, err := ParseBudgetCategory(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseBudgetCategory("cheapest")
	assert.ErrorIs(t, err, models.ErrInvalidFilter)
}

func TestRankTransport_AvailableFirstThenCost(t *testing.T) {
	offers := []models.Candidate{
		{ID: "auto", CostEstimate: 60, Available: bp(false)},
		{ID: "cab", CostEstimate: 200},
		{ID: "bus", CostEstimate: 30, Available: bp(true)},
	}

	assert.Equal(t, []string{"bus", "cab", "auto"}, ids(RankTransport(offers)))
	assert.Equal(t, "auto", offers[0].ID)
}

func TestActivityCandidates_RankedFromProfile(t *testing.T) {
	profile := config.DefaultPlannerData().Destinations["goa"]

	afternoon := ActivityCandidates(profile, models.SlotAfternoon)
	require.Len(t, afternoon, 2)
	assert.Equal(t, "goa-old-churches", afternoon[0].ID)
	for _, c := range afternoon {
		assert.Equal(t, models.KindActivity, c.Kind)
		assert.Equal(t, models.SourceCatalog, c.Source)
		assert.Greater(t, c.DistanceKm, 0.0)
	}
}
