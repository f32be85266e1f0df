package transport

import (
	"context"
	"testing"

	"tripplanner/config"
	"tripplanner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFareTable_Offers(t *testing.T) {
	table := NewFareTable(config.DefaultPlannerData().TransportFares)

	offers, err := table.Offers(context.Background(), 12)
	require.NoError(t, err)
	require.Len(t, offers, 10)

	byID := map[string]models.Candidate{}
	for _, o := range offers {
		byID[o.ID] = o
		assert.Equal(t, models.KindTransport, o.Kind)
		assert.GreaterOrEqual(t, o.PriceTier, 1)
		assert.LessOrEqual(t, o.PriceTier, 5)
	}

	mini := byID["ola-mini"]
	assert.Equal(t, 194.0, mini.CostEstimate)
	assert.True(t, mini.IsAvailable())
	assert.Equal(t, "cab", mini.Category)

	auto := byID["local-auto-auto-rickshaw"]
	assert.Equal(t, 121.0, auto.CostEstimate)
	assert.False(t, auto.IsAvailable(), "autos only run below 10 km")

	assert.True(t, byID["rapido-rapido-cab"].IsAvailable())
}
