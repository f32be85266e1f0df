package planner

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"tripplanner/config"
	"tripplanner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlaces struct {
	byCategory map[string][]models.RawPlace
	err        error
	block      bool
	calls      atomic.Int32
}

func (f *fakePlaces) Search(ctx context.Context, lat, lon float64, radiusMeters int, category string) ([]models.RawPlace, error) {
	f.calls.Add(1)
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.byCategory[category], nil
}

type fakeCatalog struct {
	entries map[models.CandidateKind][]models.CatalogEntry
	calls   atomic.Int32
}

func (f *fakeCatalog) Query(ctx context.Context, filter models.CatalogFilter) ([]models.CatalogEntry, error) {
	f.calls.Add(1)
	return f.entries[filter.Kind], nil
}

type fakeTransport struct {
	offers []models.Candidate
	err    error
}

func (f *fakeTransport) Offers(ctx context.Context, distanceKm float64) ([]models.Candidate, error) {
	return f.offers, f.err
}

func request(dest string, budget float64, days int) models.ItineraryRequest {
	return models.ItineraryRequest{
		Budget:      budget,
		Days:        days,
		Destination: dest,
		StartDate:   time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC),
		Language:    "English",
	}
}

func newTestPlanner(places PlaceSearcher, catalog CatalogStore, transport TransportFeed, opts ...Option) *Planner {
	opts = append([]Option{WithIDGenerator(func() string { return "fixed-id" })}, opts...)
	return NewPlanner(config.DefaultPlannerData(), places, catalog, transport, nil, opts...)
}

func TestGenerateItinerary_FullPlan(t *testing.T) {
	places := &fakePlaces{byCategory: map[string][]models.RawPlace{
		"lodging": {
			{ID: "ph1", Name: "Panaji Inn", Rating: fp(4.4), PriceLevel: ip(1), Latitude: fp(15.49), Longitude: fp(73.83), Vicinity: "Panaji"},
			{ID: "ph2", Name: "Lost", Rating: fp(4.9)},
		},
		"restaurant": {
			{ID: "pr1", Name: "Ritz Classic", Rating: fp(4.5), PriceLevel: ip(1), Latitude: fp(15.50), Longitude: fp(73.83), Types: []string{"seafood_restaurant"}},
		},
	}}
	catalog := &fakeCatalog{entries: map[models.CandidateKind][]models.CatalogEntry{
		models.KindHotel: {
			{ID: "ch1", Name: "Mandovi Stay", Latitude: fp(15.50), Longitude: fp(73.82), Rating: 4.1, PricePerNight: 1800},
		},
	}}
	transport := &fakeTransport{offers: []models.Candidate{
		{ID: "ola-mini", Category: "cab", Provider: "Ola", CostEstimate: 194},
		{ID: "city-bus", Category: "bus", Provider: "State Transport", CostEstimate: 28},
	}}
	p := newTestPlanner(places, catalog, transport)

	it, err := p.GenerateItinerary(context.Background(), request("Goa", 10000, 3))
	require.NoError(t, err)

	assert.Equal(t, "fixed-id", it.ID)
	require.Len(t, it.DayPlans, 3)
	for i, d := range it.DayPlans {
		assert.Equal(t, i+1, d.DayIndex)
	}
	assert.Equal(t, "ph1", it.DayPlans[0].Accommodation.ID)
	assert.Equal(t, "ch1", it.DayPlans[1].Accommodation.ID)
	// breakfast share is below the cheapest restaurant
	assert.Equal(t, "day1-breakfast", it.DayPlans[0].Meals[0].ID)
	assert.Equal(t, "pr1", it.DayPlans[0].Meals[1].ID)
	assert.Equal(t, "bus", it.DayPlans[0].Transport[0].Mode)
	assert.Equal(t, 1, it.Diagnostics.DroppedCandidates)
	assert.Empty(t, it.Diagnostics.ProviderFailures)
	assert.False(t, it.Diagnostics.ProfileFallback)
	assert.LessOrEqual(t, it.BudgetBreakdown.Sum(), 10000.0)

	var total float64
	for _, d := range it.DayPlans {
		total += d.TotalCost
	}
	assert.Equal(t, total, it.TotalEstimatedCost)

	seen := map[string]bool{}
	for _, id := range allIDs(it.DayPlans) {
		assert.False(t, seen[id], "id %s repeated", id)
		seen[id] = true
	}

	assert.Equal(t, int32(2), catalog.calls.Load())
}

func TestGenerateItinerary_UnknownDestinationUsesDefaultProfile(t *testing.T) {
	p := newTestPlanner(nil, nil, nil)

	it, err := p.GenerateItinerary(context.Background(), request("Atlantis", 5000, 2))
	require.NoError(t, err)

	assert.True(t, it.Diagnostics.ProfileFallback)
	assert.Equal(t, "Goa", it.Metadata.Profile)
	assert.Equal(t, "Atlantis", it.Metadata.Destination)
	assert.Contains(t, it.Summary, "Atlantis")
	require.Len(t, it.DayPlans, 2)
	for _, d := range it.DayPlans {
		assert.NotEmpty(t, d.Accommodation.ID)
		assert.Len(t, d.Meals, 3)
		assert.Len(t, d.Transport, 2)
		for _, ts := range d.Slots() {
			assert.NotEmpty(t, ts.Activities)
		}
	}
}

func TestGenerateItinerary_ValidationFailsBeforeIO(t *testing.T) {
	tests := []struct {
		name string
		req  models.ItineraryRequest
		want error
	}{
		{"budget too small", request("Goa", 500, 1), models.ErrInvalidBudget},
		{"too many days", request("Goa", 50000, 31), models.ErrInvalidBudget},
		{"unsupported language", func() models.ItineraryRequest {
			r := request("Goa", 5000, 2)
			r.Language = "Klingon"
			return r
		}(), models.ErrUnsupportedLanguage},
		{"short destination", request("G", 5000, 2), models.ErrInvalidRequest},
		{"missing start date", func() models.ItineraryRequest {
			r := request("Goa", 5000, 2)
			r.StartDate = time.Time{}
			return r
		}(), models.ErrInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			places := &fakePlaces{}
			catalog := &fakeCatalog{}
			p := newTestPlanner(places, catalog, nil)

			_, err := p.GenerateItinerary(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Zero(t, places.calls.Load())
			assert.Zero(t, catalog.calls.Load())
		})
	}
}

func TestGenerateItinerary_ProviderFailuresDegrade(t *testing.T) {
	places := &fakePlaces{err: models.NewPlanError(models.CodeProviderUnavailable, "boom")}
	transport := &fakeTransport{err: errors.New("fares offline")}
	p := newTestPlanner(places, nil, transport)

	it, err := p.GenerateItinerary(context.Background(), request("Kerala", 8000, 2))
	require.NoError(t, err)

	assert.Equal(t, []string{"places:lodging", "places:restaurant", "transport"}, it.Diagnostics.ProviderFailures)
	assert.Len(t, it.DayPlans, 2)
	assert.Equal(t, "Taxi/Auto", it.DayPlans[0].Transport[0].Mode)
}

func TestGenerateItinerary_SlowProviderTimesOut(t *testing.T) {
	places := &fakePlaces{block: true}
	p := newTestPlanner(places, nil, nil, WithTimeout(20*time.Millisecond))

	start := time.Now()
	it, err := p.GenerateItinerary(context.Background(), request("Goa", 6000, 1))
	require.NoError(t, err)

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Contains(t, it.Diagnostics.ProviderFailures, "places:lodging")
	assert.Contains(t, it.Diagnostics.ProviderFailures, "places:restaurant")
}

func TestGenerateItinerary_LanguageFallback(t *testing.T) {
	p := newTestPlanner(nil, nil, nil)

	req := request("Rajasthan", 12000, 2)
	req.Language = "tamil"
	it, err := p.GenerateItinerary(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Tamil", it.Metadata.Language)
	assert.True(t, strings.HasPrefix(it.Summary, "Welcome to your personalized 2-day Rajasthan"))

	req.Language = "Hindi"
	it, err = p.GenerateItinerary(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, it.Summary, "Rajasthan")
	assert.Equal(t, "घूमने के लिए खाली समय", placeholderName(it))
}

func TestGenerateItinerary_FreshValuePerRequest(t *testing.T) {
	p := newTestPlanner(nil, nil, nil)
	req := request("Goa", 10000, 2)

	first, err := p.GenerateItinerary(context.Background(), req)
	require.NoError(t, err)
	second, err := p.GenerateItinerary(context.Background(), req)
	require.NoError(t, err)

	first.DayPlans[0].Meals[0].Name = "mutated"
	assert.NotEqual(t, "mutated", second.DayPlans[0].Meals[0].Name)
	assert.Equal(t, first.DayPlans[1].Accommodation.ID, second.DayPlans[1].Accommodation.ID)
}

func placeholderName(it models.Itinerary) string {
	for _, d := range it.DayPlans {
		for _, ts := range d.Slots() {
			for _, a := range ts.Activities {
				if a.Placeholder {
					return a.Name
				}
			}
		}
	}
	return ""
}
