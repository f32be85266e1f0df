package models

import "time"

// Activity is an entry assigned to a time slot.
type Activity struct {
	ID          string   `bson:"id" json:"id"`
	Time        string   `bson:"time" json:"time"`
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Location    string   `bson:"location,omitempty" json:"location,omitempty"`
	Cost        float64  `bson:"cost" json:"cost"`
	Duration    string   `bson:"duration,omitempty" json:"duration,omitempty"`
	Tips        []string `bson:"tips,omitempty" json:"tips,omitempty"`
	Placeholder bool     `bson:"placeholder,omitempty" json:"placeholder,omitempty"`
}

// TimeSlot is one slot of a day with its budget window.
type TimeSlot struct {
	Slot       Slot       `bson:"slot" json:"slot"`
	Time       string     `bson:"time" json:"time"`
	Window     float64    `bson:"window" json:"window"`
	Activities []Activity `bson:"activities" json:"activities"`
}

// Cost sums the assigned activities.
func (t TimeSlot) Cost() float64 {
	var total float64
	for _, a := range t.Activities {
		total += a.Cost
	}
	return total
}

type Accommodation struct {
	ID        string   `bson:"id" json:"id"`
	Name      string   `bson:"name" json:"name"`
	Type      string   `bson:"type" json:"type"`
	Tier      Tier     `bson:"tier" json:"tier"`
	Location  string   `bson:"location" json:"location"`
	Cost      float64  `bson:"cost" json:"cost"`
	Rating    float64  `bson:"rating" json:"rating"`
	Amenities []string `bson:"amenities,omitempty" json:"amenities,omitempty"`
}

type Meal struct {
	ID       string  `bson:"id" json:"id"`
	Type     string  `bson:"type" json:"type"` // breakfast, lunch or dinner
	Name     string  `bson:"name" json:"name"`
	Location string  `bson:"location" json:"location"`
	Cost     float64 `bson:"cost" json:"cost"`
	Cuisine  string  `bson:"cuisine" json:"cuisine"`
	Rating   float64 `bson:"rating" json:"rating"`
}

type TransportLeg struct {
	ID       string  `bson:"id" json:"id"`
	From     string  `bson:"from" json:"from"`
	To       string  `bson:"to" json:"to"`
	Mode     string  `bson:"mode" json:"mode"`
	Cost     float64 `bson:"cost" json:"cost"`
	Duration string  `bson:"duration" json:"duration"`
	Provider string  `bson:"provider,omitempty" json:"provider,omitempty"`
}

// DayPlan is the schedule of one travel day.
type DayPlan struct {
	DayIndex      int            `bson:"day" json:"day"`
	Date          string         `bson:"date" json:"date"`
	Morning       TimeSlot       `bson:"morning" json:"morning"`
	Afternoon     TimeSlot       `bson:"afternoon" json:"afternoon"`
	Evening       TimeSlot       `bson:"evening" json:"evening"`
	Accommodation Accommodation  `bson:"accommodation" json:"accommodation"`
	Meals         []Meal         `bson:"meals" json:"meals"`
	Transport     []TransportLeg `bson:"transport" json:"transport"`
	TotalCost     float64        `bson:"totalCost" json:"totalCost"`
}

// Slots returns the three time slots in day order.
func (d DayPlan) Slots() []TimeSlot {
	return []TimeSlot{d.Morning, d.Afternoon, d.Evening}
}

type ItineraryMetadata struct {
	Destination string    `bson:"destination" json:"destination"`
	Profile     string    `bson:"profile" json:"profile"`
	Days        int       `bson:"days" json:"days"`
	Budget      float64   `bson:"budget" json:"budget"`
	StartDate   string    `bson:"startDate" json:"startDate"`
	Language    string    `bson:"language" json:"language"`
	GeneratedBy string    `bson:"generatedBy" json:"generatedBy"`
	GeneratedAt time.Time `bson:"generatedAt" json:"generatedAt"`
}

type WeatherInfo struct {
	Temperature    string `bson:"temperature" json:"temperature" mapstructure:"temperature"`
	Humidity       string `bson:"humidity" json:"humidity" mapstructure:"humidity"`
	Rainfall       string `bson:"rainfall" json:"rainfall" mapstructure:"rainfall"`
	Recommendation string `bson:"recommendation" json:"recommendation" mapstructure:"recommendation"`
}

// Diagnostics records degraded behaviour during planning.
type Diagnostics struct {
	DroppedCandidates int      `bson:"droppedCandidates" json:"droppedCandidates"`
	ProviderFailures  []string `bson:"providerFailures,omitempty" json:"providerFailures,omitempty"`
	EmptySlots        int      `bson:"emptySlots" json:"emptySlots"`
	ProfileFallback   bool     `bson:"profileFallback" json:"profileFallback"`
}

// Itinerary is the assembled trip plan. It is not modified after assembly.
type Itinerary struct {
	ID                 string            `bson:"id" json:"id"`
	UserID             string            `bson:"userId,omitempty" json:"userId,omitempty"`
	Metadata           ItineraryMetadata `bson:"metadata" json:"metadata"`
	Summary            string            `bson:"summary" json:"summary"`
	DayPlans           []DayPlan         `bson:"dayPlans" json:"dayPlans"`
	TotalEstimatedCost float64           `bson:"totalEstimatedCost" json:"totalEstimatedCost"`
	BudgetBreakdown    CategoryBudget    `bson:"budgetBreakdown" json:"budgetBreakdown"`
	Tips               []string          `bson:"tips" json:"tips"`
	EmergencyContacts  map[string]string `bson:"emergencyContacts" json:"emergencyContacts"`
	WeatherInfo        WeatherInfo       `bson:"weatherInfo" json:"weatherInfo"`
	LocalInfo          map[string]string `bson:"localInfo" json:"localInfo"`
	Diagnostics        Diagnostics       `bson:"diagnostics" json:"diagnostics"`
	CreatedAt          time.Time         `bson:"createdAt" json:"createdAt"`
}

// ItineraryRequest is the input of a planning request.
type ItineraryRequest struct {
	Budget      float64   `json:"budget"`
	Days        int       `json:"days"`
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"startDate"`
	Language    string    `json:"language"`
	UserID      string    `json:"userId,omitempty"`
}
