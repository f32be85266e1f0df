package planner

import (
	"strconv"
	"strings"
	"time"

	"tripplanner/config"
	"tripplanner/models"

	"github.com/dustin/go-humanize"
)

const generatedBy = "Yatra Sathi"

// AssemblyInput is the already computed material of an itinerary.
type AssemblyInput struct {
	ID          string
	Request     models.ItineraryRequest
	Language    string
	Plan        models.BudgetPlan
	Days        []models.DayPlan
	Profile     models.DestinationProfile
	Locale      models.Locale
	Diagnostics models.Diagnostics
}

// Assembler turns scheduled days into a finished itinerary. It performs no
// I/O and never fails.
type Assembler struct {
	emergency []models.InfoItem
	weather   models.WeatherInfo
	now       func() time.Time
}

func NewAssembler(data config.PlannerData) *Assembler {
	return &Assembler{
		emergency: data.EmergencyContacts,
		weather:   data.Weather,
		now:       time.Now,
	}
}

func (a *Assembler) Assemble(in AssemblyInput) models.Itinerary {
	now := a.now().UTC()

	var total float64
	for _, d := range in.Days {
		total += d.TotalCost
	}

	contacts := make(map[string]string, len(a.emergency)+1)
	for _, c := range a.emergency {
		contacts[c.Key] = c.Value
	}
	if in.Profile.LocalPolice != "" {
		contacts["localPolice"] = in.Profile.LocalPolice
	}

	info := make(map[string]string, len(in.Locale.LocalInfo))
	for _, item := range in.Locale.LocalInfo {
		info[item.Key] = item.Value
	}

	failures := append([]string(nil), in.Diagnostics.ProviderFailures...)
	diag := in.Diagnostics
	diag.ProviderFailures = failures

	return models.Itinerary{
		ID:     in.ID,
		UserID: in.Request.UserID,
		Metadata: models.ItineraryMetadata{
			Destination: in.Request.Destination,
			Profile:     in.Profile.Name,
			Days:        in.Plan.Days,
			Budget:      in.Plan.Total,
			StartDate:   in.Request.StartDate.Format("2006-01-02"),
			Language:    in.Language,
			GeneratedBy: generatedBy,
			GeneratedAt: now,
		},
		Summary:            renderSummary(in.Locale.Summary, in.Plan, in.Request.Destination),
		DayPlans:           append([]models.DayPlan(nil), in.Days...),
		TotalEstimatedCost: total,
		BudgetBreakdown:    in.Plan.Categories,
		Tips:               append([]string(nil), in.Locale.Tips...),
		EmergencyContacts:  contacts,
		WeatherInfo:        a.weather,
		LocalInfo:          info,
		Diagnostics:        diag,
		CreatedAt:          now,
	}
}

func renderSummary(tmpl string, plan models.BudgetPlan, destination string) string {
	r := strings.NewReplacer(
		"{days}", strconv.Itoa(plan.Days),
		"{destination}", destination,
		"{budget}", humanize.Comma(int64(plan.Total)),
	)
	return r.Replace(tmpl)
}
