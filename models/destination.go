package models

// Slot is one segment of a travel day.
type Slot string

const (
	SlotMorning   Slot = "morning"
	SlotAfternoon Slot = "afternoon"
	SlotEvening   Slot = "evening"
)

// DaySlots lists the slots of a day in scheduling order.
var DaySlots = []Slot{SlotMorning, SlotAfternoon, SlotEvening}

// Tier is an accommodation price tier.
type Tier string

const (
	TierBudget   Tier = "budget"
	TierMidRange Tier = "midRange"
	TierLuxury   Tier = "luxury"
)

// ActivitySpec is a bookable activity of a destination.
type ActivitySpec struct {
	ID          string   `mapstructure:"id" json:"id"`
	Name        string   `mapstructure:"name" json:"name"`
	Description string   `mapstructure:"description" json:"description"`
	Location    Location `mapstructure:"location" json:"location"`
	Cost        float64  `mapstructure:"cost" json:"cost"`
	Duration    string   `mapstructure:"duration" json:"duration"`
	Rating      float64  `mapstructure:"rating" json:"rating"`
}

// HotelTier is the nominal accommodation of a price tier.
type HotelTier struct {
	Name        string   `mapstructure:"name" json:"name"`
	Type        string   `mapstructure:"type" json:"type"`
	NominalCost float64  `mapstructure:"nominalCost" json:"nominalCost"`
	Rating      float64  `mapstructure:"rating" json:"rating"`
	Amenities   []string `mapstructure:"amenities" json:"amenities"`
}

// HotelTiers is the tiered accommodation lookup of a destination.
type HotelTiers struct {
	Budget   HotelTier `mapstructure:"budget" json:"budget"`
	MidRange HotelTier `mapstructure:"midRange" json:"midRange"`
	Luxury   HotelTier `mapstructure:"luxury" json:"luxury"`
}

// For returns the nominal accommodation of a tier.
func (h HotelTiers) For(t Tier) HotelTier {
	switch t {
	case TierBudget:
		return h.Budget
	case TierMidRange:
		return h.MidRange
	default:
		return h.Luxury
	}
}

// MealSpec is the fallback meal used when no restaurant is left to pick.
type MealSpec struct {
	Type     string  `mapstructure:"type" json:"type"`
	Name     string  `mapstructure:"name" json:"name"`
	Location string  `mapstructure:"location" json:"location"`
	Cuisine  string  `mapstructure:"cuisine" json:"cuisine"`
	Rating   float64 `mapstructure:"rating" json:"rating"`
}

// DestinationProfile is the read-only description of a destination.
type DestinationProfile struct {
	Name        string                    `mapstructure:"name" json:"name"`
	Type        string                    `mapstructure:"type" json:"type"`
	BestTime    string                    `mapstructure:"bestTime" json:"bestTime"`
	Climate     string                    `mapstructure:"climate" json:"climate"`
	Currency    string                    `mapstructure:"currency" json:"currency"`
	Languages   string                    `mapstructure:"languages" json:"languages"`
	Center      Location                  `mapstructure:"center" json:"center"`
	Attractions []string                  `mapstructure:"attractions" json:"attractions"`
	Activities  map[string][]ActivitySpec `mapstructure:"activities" json:"activities"`
	HotelTiers  HotelTiers                `mapstructure:"hotelTiers" json:"hotelTiers"`
	Meals       []MealSpec                `mapstructure:"meals" json:"meals"`
	LocalPolice string                    `mapstructure:"localPolice" json:"localPolice"`
	LocalTripKm float64                   `mapstructure:"localTripKm" json:"localTripKm"`
}

// ActivitiesFor returns the activities offered in the given slot.
func (p DestinationProfile) ActivitiesFor(slot Slot) []ActivitySpec {
	return p.Activities[string(slot)]
}

// Locale holds the localized texts for one language.
type Locale struct {
	Summary      string     `mapstructure:"summary" json:"summary"`
	Tips         []string   `mapstructure:"tips" json:"tips"`
	ActivityTips []string   `mapstructure:"activityTips" json:"activityTips"`
	LocalInfo    []InfoItem `mapstructure:"localInfo" json:"localInfo"`
	FreeTime     string     `mapstructure:"freeTime" json:"freeTime"`
}

// InfoItem is an ordered key/value pair. Lists are used instead of maps so
// that keys keep their case when loaded through viper.
type InfoItem struct {
	Key   string `mapstructure:"key" json:"key"`
	Value string `mapstructure:"value" json:"value"`
}
