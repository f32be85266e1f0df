package planner

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"tripplanner/config"
	"tripplanner/models"
	"tripplanner/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PlaceSearcher is a geo-search provider of hotels and restaurants.
type PlaceSearcher interface {
	Search(ctx context.Context, lat, lon float64, radiusMeters int, category string) ([]models.RawPlace, error)
}

// CatalogStore is the local inventory of hotels and restaurants.
type CatalogStore interface {
	Query(ctx context.Context, filter models.CatalogFilter) ([]models.CatalogEntry, error)
}

// RouteProvider resolves the distance between two named places.
type RouteProvider interface {
	Route(ctx context.Context, origin, destination string) (models.Route, error)
}

// TransportFeed prices transport offers for a trip distance.
type TransportFeed interface {
	Offers(ctx context.Context, distanceKm float64) ([]models.Candidate, error)
}

type DestinationStore interface {
	Lookup(name string) (models.DestinationProfile, bool)
	Default() models.DestinationProfile
}

type LocaleStore interface {
	Normalize(lang string) (string, error)
	Templates(lang string) (models.Locale, error)
}

const (
	defaultProviderTimeout = 4 * time.Second
	hotelSearchRadius      = 10000
	restaurantSearchRadius = 5000
)

// Planner generates itineraries. Collaborators may be nil, in which case
// their source contributes no candidates.
type Planner struct {
	places       PlaceSearcher
	catalog      CatalogStore
	transport    TransportFeed
	destinations DestinationStore
	locales      LocaleStore
	lookup       CatalogLookup
	detailer     PlaceDetailer

	allocator *Allocator
	scheduler *Scheduler
	assembler *Assembler
	prices    config.PriceTables
	foodTips  []string

	timeout time.Duration
	newID   func() string
	logger  *zap.Logger
}

// Option customizes a Planner.
type Option func(*Planner)

// WithTimeout sets the per-source fetch timeout.
func WithTimeout(d time.Duration) Option {
	return func(p *Planner) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func WithDestinations(s DestinationStore) Option {
	return func(p *Planner) { p.destinations = s }
}

func WithLocales(s LocaleStore) Option {
	return func(p *Planner) { p.locales = s }
}

// WithIDGenerator replaces the uuid based itinerary id generator.
func WithIDGenerator(f func() string) Option {
	return func(p *Planner) { p.newID = f }
}

func NewPlanner(data config.PlannerData, places PlaceSearcher, catalog CatalogStore, transport TransportFeed, logger *zap.Logger, opts ...Option) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Planner{
		places:       places,
		catalog:      catalog,
		transport:    transport,
		destinations: NewStaticDestinations(data),
		locales:      NewStaticLocales(data),
		allocator:    NewAllocator(data.Shares, data.MinBudget, data.MaxDays),
		scheduler:    NewScheduler(data, logger),
		assembler:    NewAssembler(data),
		prices:       data.Prices,
		foodTips:     data.FoodTips,
		timeout:      defaultProviderTimeout,
		newID:        uuid.NewString,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GenerateItinerary validates the request, gathers candidates from every
// source concurrently and schedules the trip. Failing sources degrade to
// empty results and are reported in the itinerary diagnostics.
func (p *Planner) GenerateItinerary(ctx context.Context, req models.ItineraryRequest) (models.Itinerary, error) {
	start := time.Now()

	language, err := p.locales.Normalize(req.Language)
	if err != nil {
		return models.Itinerary{}, err
	}
	if err := validateRequest(req); err != nil {
		return models.Itinerary{}, err
	}
	plan, err := p.allocator.Allocate(req.Budget, req.Days)
	if err != nil {
		return models.Itinerary{}, err
	}
	locale, err := p.locales.Templates(language)
	if err != nil {
		return models.Itinerary{}, err
	}

	var diag models.Diagnostics
	profile, ok := p.destinations.Lookup(req.Destination)
	if !ok {
		profile = p.destinations.Default()
		diag.ProfileFallback = true
		p.logger.Info("Unknown destination, using default profile",
			zap.String("destination", req.Destination),
			zap.String("profile", profile.Name))
	}

	pools, gathered := p.gatherPools(ctx, profile)
	diag.DroppedCandidates = gathered.DroppedCandidates
	diag.ProviderFailures = gathered.ProviderFailures

	sched := p.scheduler.Schedule(ScheduleInput{
		StartDate:   req.StartDate,
		Destination: req.Destination,
		Plan:        plan,
		Profile:     profile,
		Locale:      locale,
		Pools:       pools,
	})
	diag.EmptySlots = sched.EmptySlots

	itinerary := p.assembler.Assemble(AssemblyInput{
		ID:          p.newID(),
		Request:     req,
		Language:    language,
		Plan:        plan,
		Days:        sched.Days,
		Profile:     profile,
		Locale:      locale,
		Diagnostics: diag,
	})

	utils.ItinerariesGenerated.WithLabelValues(profile.Name).Inc()
	utils.PlanningDuration.Observe(time.Since(start).Seconds())
	p.logger.Info("Itinerary generated",
		zap.String("id", itinerary.ID),
		zap.String("destination", req.Destination),
		zap.Int("days", plan.Days),
		zap.Float64("totalEstimatedCost", itinerary.TotalEstimatedCost),
		zap.Int("emptySlots", diag.EmptySlots),
		zap.Strings("providerFailures", diag.ProviderFailures))
	return itinerary, nil
}

func validateRequest(req models.ItineraryRequest) error {
	if len(strings.TrimSpace(req.Destination)) < 2 {
		return models.NewPlanError(models.CodeInvalidRequest, "destination must be at least 2 characters")
	}
	if req.StartDate.IsZero() {
		return models.NewPlanError(models.CodeInvalidRequest, "start date is required")
	}
	return nil
}

// gatherPools fetches the five candidate sources of a destination and
// merges them into ranked pools.
func (p *Planner) gatherPools(ctx context.Context, profile models.DestinationProfile) (CandidatePools, models.Diagnostics) {
	center := profile.Center
	sources := []source{
		p.placesSource("places:lodging", center, hotelSearchRadius, "lodging"),
		p.placesSource("places:restaurant", center, restaurantSearchRadius, "restaurant"),
		p.catalogSource("catalog:hotel", models.CatalogFilter{Kind: models.KindHotel, City: profile.Name, Limit: 20}),
		p.catalogSource("catalog:restaurant", models.CatalogFilter{Kind: models.KindRestaurant, City: profile.Name, Limit: 25}),
		p.transportSource("transport", profile.LocalTripKm),
	}
	feeds, failures := p.fetchAll(ctx, sources)

	hotels := MergePlaces(models.KindHotel, center, feeds[0].places, feeds[2].catalog, p.prices)
	restaurants := MergePlaces(models.KindRestaurant, center, feeds[1].places, feeds[3].catalog, p.prices)
	p.recordDropped(models.KindHotel, hotels.Dropped)
	p.recordDropped(models.KindRestaurant, restaurants.Dropped)

	pools := CandidatePools{
		Activities:  make(map[models.Slot][]models.Candidate, len(models.DaySlots)),
		Hotels:      Rank(hotels.Candidates, RankFilters{}, 0),
		Restaurants: Rank(restaurants.Candidates, RankFilters{}, 0),
		Transport:   RankTransport(feeds[4].offers),
	}
	for _, slot := range models.DaySlots {
		pools.Activities[slot] = ActivityCandidates(profile, slot)
	}

	return pools, models.Diagnostics{
		DroppedCandidates: hotels.Dropped + restaurants.Dropped,
		ProviderFailures:  failures,
	}
}

func (p *Planner) recordDropped(kind models.CandidateKind, n int) {
	if n == 0 {
		return
	}
	utils.CandidatesDropped.WithLabelValues(string(kind)).Add(float64(n))
	p.logger.Debug("Dropped candidates without valid coordinates",
		zap.String("kind", string(kind)), zap.Int("count", n))
}

// feed is the result of one candidate source.
type feed struct {
	places  []models.RawPlace
	catalog []models.CatalogEntry
	offers  []models.Candidate
}

type source struct {
	name  string
	fetch func(ctx context.Context) (feed, error)
}

// fetchAll runs every source in its own goroutine with its own timeout.
// Results keep the order of sources; a failed source yields an empty feed
// and its name is returned in failures.
func (p *Planner) fetchAll(ctx context.Context, sources []source) ([]feed, []string) {
	feeds := make([]feed, len(sources))
	errs := make([]error, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src source) {
			defer wg.Done()
			sctx, cancel := context.WithTimeout(ctx, p.timeout)
			defer cancel()
			feeds[i], errs[i] = src.fetch(sctx)
		}(i, src)
	}
	wg.Wait()

	var failures []string
	for i, err := range errs {
		if err == nil {
			continue
		}
		feeds[i] = feed{}
		failures = append(failures, sources[i].name)
		utils.ProviderFailures.WithLabelValues(sources[i].name).Inc()
		p.logger.Warn("Candidate source failed, continuing without it",
			zap.String("source", sources[i].name), zap.Error(err))
	}
	return feeds, failures
}

func (p *Planner) placesSource(name string, center models.Location, radius int, category string) source {
	return source{name: name, fetch: func(ctx context.Context) (feed, error) {
		if p.places == nil {
			return feed{}, nil
		}
		places, err := p.places.Search(ctx, center.Latitude, center.Longitude, radius, category)
		if err != nil {
			return feed{}, fmt.Errorf("place search %s: %w", category, err)
		}
		return feed{places: places}, nil
	}}
}

func (p *Planner) catalogSource(name string, filter models.CatalogFilter) source {
	return source{name: name, fetch: func(ctx context.Context) (feed, error) {
		if p.catalog == nil {
			return feed{}, nil
		}
		entries, err := p.catalog.Query(ctx, filter)
		if err != nil {
			return feed{}, fmt.Errorf("catalog query %s: %w", filter.Kind, err)
		}
		return feed{catalog: entries}, nil
	}}
}

func (p *Planner) transportSource(name string, distanceKm float64) source {
	return source{name: name, fetch: func(ctx context.Context) (feed, error) {
		if p.transport == nil {
			return feed{}, nil
		}
		offers, err := p.transport.Offers(ctx, distanceKm)
		if err != nil {
			return feed{}, fmt.Errorf("transport offers: %w", err)
		}
		return feed{offers: offers}, nil
	}}
}
