package config

import (
	"fmt"
	"strings"

	"tripplanner/models"

	"github.com/spf13/viper"
)

// PriceTables normalizes heterogeneous price representations into costs.
// Level tables are indexed by price tier - 1.
type PriceTables struct {
	HotelLevelCost         []float64          `mapstructure:"hotelLevelCost"`
	RestaurantLevelCost    []float64          `mapstructure:"restaurantLevelCost"`
	RestaurantRangeCost    map[string]float64 `mapstructure:"restaurantRangeCost"`
	RestaurantDefaultCost  float64            `mapstructure:"restaurantDefaultCost"`
	DefaultHotelLevel      int                `mapstructure:"defaultHotelLevel"`
	DefaultRestaurantLevel int                `mapstructure:"defaultRestaurantLevel"`
	HotelNightThresholds   []float64          `mapstructure:"hotelNightThresholds"`
	CuisineTypes           map[string]string  `mapstructure:"cuisineTypes"`
}

// LevelCost returns the cost of a price tier from a level table.
func LevelCost(table []float64, tier int, fallback float64) float64 {
	if tier < 1 || tier > len(table) {
		return fallback
	}
	return table[tier-1]
}

// RangeCost returns the restaurant cost of a catalog price range.
func (p PriceTables) RangeCost(r models.PriceRange) float64 {
	if c, ok := p.RestaurantRangeCost[strings.ToLower(string(r))]; ok {
		return c
	}
	return p.RestaurantDefaultCost
}

// TierThresholds select an accommodation tier from the per-day share.
type TierThresholds struct {
	Budget   float64 `mapstructure:"budget"`
	MidRange float64 `mapstructure:"midRange"`
}

// Share is a named fraction of a budget.
type Share struct {
	Name     string  `mapstructure:"name"`
	Fraction float64 `mapstructure:"fraction"`
	From     string  `mapstructure:"from"`
	To       string  `mapstructure:"to"`
}

// SlotSetting is the budget window and start time of a day slot.
type SlotSetting struct {
	Fraction float64 `mapstructure:"fraction"`
	Time     string  `mapstructure:"time"`
}

// TransportFare prices a transport offer as base + perKm * distance.
type TransportFare struct {
	Provider      string   `mapstructure:"provider"`
	Type          string   `mapstructure:"type"`
	Category      string   `mapstructure:"category"`
	Base          float64  `mapstructure:"base"`
	PerKm         float64  `mapstructure:"perKm"`
	MaxKm         float64  `mapstructure:"maxKm"` // 0 means no distance limit
	Rating        float64  `mapstructure:"rating"`
	EstimatedTime string   `mapstructure:"estimatedTime"`
	Features      []string `mapstructure:"features"`
	BookingLink   string   `mapstructure:"bookingLink"`
}

// PlannerData is the read-only data the planner is constructed with.
type PlannerData struct {
	DefaultDestination string                               `mapstructure:"defaultDestination"`
	Destinations       map[string]models.DestinationProfile `mapstructure:"destinations"`
	Shares             models.BudgetShares                  `mapstructure:"shares"`
	MinBudget          float64                              `mapstructure:"minBudget"`
	MaxDays            int                                  `mapstructure:"maxDays"`
	Slots              map[string]SlotSetting               `mapstructure:"slots"`
	MealSplit          []Share                              `mapstructure:"mealSplit"`
	TransportSplit     []Share                              `mapstructure:"transportSplit"`
	TransportMode      string                               `mapstructure:"transportMode"`
	TransportDuration  string                               `mapstructure:"transportDuration"`
	Tiers              TierThresholds                       `mapstructure:"tiers"`
	Prices             PriceTables                          `mapstructure:"prices"`
	TransportFares     []TransportFare                      `mapstructure:"transportFares"`
	Languages          []string                             `mapstructure:"languages"`
	DefaultLanguage    string                               `mapstructure:"defaultLanguage"`
	Locales            map[string]models.Locale             `mapstructure:"locales"`
	EmergencyContacts  []models.InfoItem                    `mapstructure:"emergencyContacts"`
	Weather            models.WeatherInfo                   `mapstructure:"weather"`
	FoodTips           []string                             `mapstructure:"foodTips"`
}

// LoadPlannerData returns the default planner data overlaid with the YAML
// file at path. An empty path returns the defaults.
func LoadPlannerData(path string) (PlannerData, error) {
	data := DefaultPlannerData()
	if path == "" {
		return data, data.Validate()
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return PlannerData{}, fmt.Errorf("failed to read planner data %s: %w", path, err)
	}
	if err := v.Unmarshal(&data); err != nil {
		return PlannerData{}, fmt.Errorf("failed to decode planner data %s: %w", path, err)
	}
	return data, data.Validate()
}

// Validate checks the invariants the planner relies on.
func (d PlannerData) Validate() error {
	if total := d.Shares.Total(); total != 100 {
		return fmt.Errorf("budget shares must sum to 100, got %d", total)
	}
	if _, ok := d.Destinations[strings.ToLower(d.DefaultDestination)]; !ok {
		return fmt.Errorf("default destination %q has no profile", d.DefaultDestination)
	}
	if _, ok := d.Locales[strings.ToLower(d.DefaultLanguage)]; !ok {
		return fmt.Errorf("default language %q has no locale", d.DefaultLanguage)
	}
	var slotTotal float64
	for _, slot := range models.DaySlots {
		s, ok := d.Slots[string(slot)]
		if !ok {
			return fmt.Errorf("missing slot setting for %s", slot)
		}
		slotTotal += s.Fraction
	}
	if slotTotal > 1.0000001 {
		return fmt.Errorf("slot windows exceed the daily budget (%.2f)", slotTotal)
	}
	if d.MinBudget <= 0 || d.MaxDays < 1 {
		return fmt.Errorf("invalid budget bounds: minBudget=%v maxDays=%d", d.MinBudget, d.MaxDays)
	}
	return nil
}
