package planner

import (
	"testing"
	"time"

	"tripplanner/config"
	"tripplanner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	data := config.DefaultPlannerData()
	a := NewAssembler(data)
	fixed := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return fixed }

	plan, err := defaultAllocator().Allocate(10000, 2)
	require.NoError(t, err)
	locale := data.Locales["english"]
	days := []models.DayPlan{{DayIndex: 1, TotalCost: 1200}, {DayIndex: 2, TotalCost: 800.5}}
	req := models.ItineraryRequest{
		Budget:      10000,
		Days:        2,
		Destination: "Pondicherry",
		StartDate:   time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		UserID:      "u1",
	}

	it := a.Assemble(AssemblyInput{
		ID:          "it-1",
		Request:     req,
		Language:    "English",
		Plan:        plan,
		Days:        days,
		Profile:     data.Destinations["goa"],
		Locale:      locale,
		Diagnostics: models.Diagnostics{ProfileFallback: true, ProviderFailures: []string{"transport"}},
	})

	assert.Equal(t, "it-1", it.ID)
	assert.Equal(t, "u1", it.UserID)
	assert.Equal(t, 2000.5, it.TotalEstimatedCost)
	assert.Contains(t, it.Summary, "2-day Pondicherry adventure")
	assert.Contains(t, it.Summary, "₹10,000 budget")
	assert.NotContains(t, it.Summary, "{")
	assert.Equal(t, plan.Categories, it.BudgetBreakdown)
	assert.Equal(t, "100", it.EmergencyContacts["police"])
	assert.Equal(t, "1363", it.EmergencyContacts["touristHelpline"])
	assert.Equal(t, "+91-832-2420016", it.EmergencyContacts["localPolice"])
	assert.Equal(t, "IST (UTC+5:30)", it.LocalInfo["timeZone"])
	assert.Equal(t, "Goa", it.Metadata.Profile)
	assert.Equal(t, "2026-12-01", it.Metadata.StartDate)
	assert.Equal(t, fixed, it.CreatedAt)
	assert.True(t, it.Diagnostics.ProfileFallback)

	it.Tips[0] = "changed"
	it.DayPlans[0].TotalCost = 0
	assert.NotEqual(t, "changed", locale.Tips[0])
	assert.Equal(t, 1200.0, days[0].TotalCost)
}
