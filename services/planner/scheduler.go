package planner

import (
	"fmt"
	"math"
	"strings"
	"time"

	"tripplanner/config"
	"tripplanner/models"
	"tripplanner/utils"

	"go.uber.org/zap"
)

// CandidatePools are the ranked candidates a schedule draws from.
type CandidatePools struct {
	Activities  map[models.Slot][]models.Candidate
	Hotels      []models.Candidate
	Restaurants []models.Candidate
	Transport   []models.Candidate
}

// ScheduleInput is everything one scheduling run needs.
type ScheduleInput struct {
	StartDate   time.Time
	Destination string
	Plan        models.BudgetPlan
	Profile     models.DestinationProfile
	Locale      models.Locale
	Pools       CandidatePools
}

// ScheduleResult is the output of a scheduling run.
type ScheduleResult struct {
	Days       []models.DayPlan
	EmptySlots int
}

// Scheduler fills each day of a trip with activities, accommodation, meals
// and transport within the daily budget.
type Scheduler struct {
	slots          map[string]config.SlotSetting
	mealSplit      []config.Share
	transportSplit []config.Share
	transportMode  string
	transportTime  string
	tiers          config.TierThresholds
	logger         *zap.Logger
}

func NewScheduler(data config.PlannerData, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		slots:          data.Slots,
		mealSplit:      data.MealSplit,
		transportSplit: data.TransportSplit,
		transportMode:  data.TransportMode,
		transportTime:  data.TransportDuration,
		tiers:          data.Tiers,
		logger:         logger,
	}
}

// dayPhase is the scheduling state of a single day.
type dayPhase int

const (
	phaseMorning dayPhase = iota
	phaseAfternoon
	phaseEvening
	phaseStay
	phaseComplete
)

// dayState carries per-request state across days. usedIDs spans the whole
// itinerary so that nothing is assigned twice.
type dayState struct {
	usedIDs    map[string]struct{}
	emptySlots int
}

func (s *dayState) use(id string) bool {
	if _, taken := s.usedIDs[id]; taken {
		return false
	}
	s.usedIDs[id] = struct{}{}
	return true
}

func (s *dayState) taken(id string) bool {
	_, ok := s.usedIDs[id]
	return ok
}

// Schedule builds one DayPlan per trip day, in order.
func (s *Scheduler) Schedule(in ScheduleInput) ScheduleResult {
	state := &dayState{usedIDs: make(map[string]struct{})}
	perDay := in.Plan.PerDay()
	days := make([]models.DayPlan, 0, in.Plan.Days)

	for day := 1; day <= in.Plan.Days; day++ {
		dp := models.DayPlan{
			DayIndex: day,
			Date:     in.StartDate.AddDate(0, 0, day-1).Format("2006-01-02"),
		}

		for phase := phaseMorning; phase != phaseComplete; phase++ {
			switch phase {
			case phaseMorning:
				dp.Morning = s.fillSlot(day, models.SlotMorning, in, state)
			case phaseAfternoon:
				dp.Afternoon = s.fillSlot(day, models.SlotAfternoon, in, state)
			case phaseEvening:
				dp.Evening = s.fillSlot(day, models.SlotEvening, in, state)
			case phaseStay:
				dp.Accommodation = s.pickAccommodation(day, perDay.Accommodation, in, state)
				dp.Meals = s.pickMeals(day, perDay.Food, in, state)
				dp.Transport = s.transportLegs(day, perDay.Transport, in.Pools.Transport)
			}
		}

		dp.TotalCost = dayCost(dp)
		days = append(days, dp)
	}

	return ScheduleResult{Days: days, EmptySlots: state.emptySlots}
}

func (s *Scheduler) fillSlot(day int, slot models.Slot, in ScheduleInput, state *dayState) models.TimeSlot {
	setting := s.slots[string(slot)]
	ts := models.TimeSlot{
		Slot:   slot,
		Time:   setting.Time,
		Window: in.Plan.DailyBudget * setting.Fraction,
	}

	activities, err := greedyFill(in.Pools.Activities[slot], ts.Window, setting.Time, in.Locale.ActivityTips, state)
	if err != nil {
		state.emptySlots++
		utils.EmptySlots.Inc()
		s.logger.Info("No activity fits slot, using placeholder",
			zap.Int("day", day),
			zap.String("slot", string(slot)),
			zap.Float64("window", ts.Window),
			zap.Error(err))
		activities = []models.Activity{{
			ID:          fmt.Sprintf("day%d-%s-free", day, slot),
			Time:        setting.Time,
			Name:        in.Locale.FreeTime,
			Location:    in.Destination,
			Placeholder: true,
		}}
	}
	ts.Activities = activities
	return ts
}

// greedyFill walks the ranked pool and takes every unused candidate whose
// cost still fits in the remaining window.
func greedyFill(pool []models.Candidate, window float64, at string, tips []string, state *dayState) ([]models.Activity, error) {
	var (
		spent float64
		out   []models.Activity
	)
	for _, c := range pool {
		if state.taken(c.ID) || spent+c.CostEstimate > window {
			continue
		}
		state.use(c.ID)
		spent += c.CostEstimate
		out = append(out, models.Activity{
			ID:          c.ID,
			Time:        at,
			Name:        c.Name,
			Description: c.Description,
			Location:    c.Location.Address,
			Cost:        c.CostEstimate,
			Duration:    c.Duration,
			Tips:        append([]string(nil), tips...),
		})
	}
	if len(out) == 0 {
		return nil, models.ErrNoCandidatesAvailable
	}
	return out, nil
}

func (s *Scheduler) tierFor(share float64) models.Tier {
	switch {
	case share <= s.tiers.Budget:
		return models.TierBudget
	case share <= s.tiers.MidRange:
		return models.TierMidRange
	default:
		return models.TierLuxury
	}
}

func (s *Scheduler) pickAccommodation(day int, share float64, in ScheduleInput, state *dayState) models.Accommodation {
	tier := s.tierFor(share)
	nominal := in.Profile.HotelTiers.For(tier)
	cost := math.Min(share, nominal.NominalCost)
	category := CategoryForTier(tier)

	for _, h := range in.Pools.Hotels {
		if !category.Matches(h.PriceTier) || !state.use(h.ID) {
			continue
		}
		amenities := h.Amenities
		if len(amenities) == 0 {
			amenities = nominal.Amenities
		}
		return models.Accommodation{
			ID:        h.ID,
			Name:      h.Name,
			Type:      nominal.Type,
			Tier:      tier,
			Location:  h.Location.Address,
			Cost:      cost,
			Rating:    h.Rating,
			Amenities: append([]string(nil), amenities...),
		}
	}

	id := fmt.Sprintf("%s-%s-day%d", slug(in.Profile.Name), tier, day)
	state.use(id)
	return models.Accommodation{
		ID:        id,
		Name:      nominal.Name,
		Type:      nominal.Type,
		Tier:      tier,
		Location:  in.Destination + " City Center",
		Cost:      cost,
		Rating:    nominal.Rating,
		Amenities: append([]string(nil), nominal.Amenities...),
	}
}

func (s *Scheduler) pickMeals(day int, share float64, in ScheduleInput, state *dayState) []models.Meal {
	meals := make([]models.Meal, 0, len(s.mealSplit))
	for _, split := range s.mealSplit {
		cost := share * split.Fraction
		meals = append(meals, pickMeal(day, split.Name, cost, in, state))
	}
	return meals
}

func pickMeal(day int, mealType string, cost float64, in ScheduleInput, state *dayState) models.Meal {
	for _, r := range in.Pools.Restaurants {
		if r.CostEstimate > cost || state.taken(r.ID) {
			continue
		}
		state.use(r.ID)
		return models.Meal{
			ID:       r.ID,
			Type:     mealType,
			Name:     r.Name,
			Location: r.Location.Address,
			Cost:     cost,
			Cuisine:  r.Category,
			Rating:   r.Rating,
		}
	}

	fallback := models.MealSpec{Type: mealType, Name: "Local " + mealType, Location: "Local Restaurant", Cuisine: "Local"}
	for _, m := range in.Profile.Meals {
		if strings.EqualFold(m.Type, mealType) {
			fallback = m
			break
		}
	}
	id := fmt.Sprintf("day%d-%s", day, mealType)
	state.use(id)
	return models.Meal{
		ID:       id,
		Type:     mealType,
		Name:     fallback.Name,
		Location: fallback.Location,
		Cost:     cost,
		Cuisine:  fallback.Cuisine,
		Rating:   fallback.Rating,
	}
}

func (s *Scheduler) transportLegs(day int, share float64, offers []models.Candidate) []models.TransportLeg {
	mode, provider := s.transportMode, ""
	for _, o := range offers {
		if o.IsAvailable() {
			mode, provider = o.Category, o.Provider
			break
		}
	}

	legs := make([]models.TransportLeg, 0, len(s.transportSplit))
	for _, split := range s.transportSplit {
		legs = append(legs, models.TransportLeg{
			ID:       fmt.Sprintf("day%d-%s", day, split.Name),
			From:     split.From,
			To:       split.To,
			Mode:     mode,
			Cost:     share * split.Fraction,
			Duration: s.transportTime,
			Provider: provider,
		})
	}
	return legs
}

func dayCost(d models.DayPlan) float64 {
	total := d.Accommodation.Cost
	for _, ts := range d.Slots() {
		total += ts.Cost()
	}
	for _, m := range d.Meals {
		total += m.Cost
	}
	for _, l := range d.Transport {
		total += l.Cost
	}
	return total
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}
