package planner

import (
	"errors"
	"math"
	"testing"

	"tripplanner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultAllocator() *Allocator {
	return NewAllocator(models.BudgetShares{Accommodation: 35, Food: 25, Transport: 20, Activities: 15, Misc: 5}, 1000, 30)
}

func TestAllocate_DefaultShares(t *testing.T) {
	plan, err := defaultAllocator().Allocate(10000, 5)
	require.NoError(t, err)

	assert.Equal(t, models.CategoryBudget{
		Accommodation: 3500,
		Food:          2500,
		Transport:     2000,
		Activities:    1500,
		Misc:          500,
	}, plan.Categories)
	assert.Equal(t, 2000.0, plan.DailyBudget)
	assert.Equal(t, 5, plan.Days)
}

func TestAllocate_FloorsEachCategory(t *testing.T) {
	plan, err := defaultAllocator().Allocate(10001, 5)
	require.NoError(t, err)

	assert.Equal(t, 3500.0, plan.Categories.Accommodation)
	assert.Equal(t, 10000.0, plan.Categories.Sum())
	assert.InDelta(t, 2000.2, plan.DailyBudget, 1e-9)
}

func TestAllocate_SumNeverExceedsTotal(t *testing.T) {
	a := defaultAllocator()
	for _, total := range []float64{1000, 1001, 1234.56, 9999, 10001, 77777, 1e6 + 3} {
		for _, days := range []int{1, 3, 7, 30} {
			plan, err := a.Allocate(total, days)
			require.NoError(t, err)
			assert.LessOrEqual(t, plan.Categories.Sum(), total, "total=%v days=%d", total, days)
		}
	}
}

func TestAllocate_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		days  int
	}{
		{"below minimum", 500, 1},
		{"zero days", 5000, 0},
		{"too many days", 5000, 31},
		{"not a number", math.NaN(), 3},
		{"infinite", math.Inf(1), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := defaultAllocator().Allocate(tt.total, tt.days)
			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrInvalidBudget))
		})
	}
}

func TestAllocate_RejectsBadShares(t *testing.T) {
	a := NewAllocator(models.BudgetShares{Accommodation: 50, Food: 50, Transport: 10}, 1000, 30)
	_, err := a.Allocate(5000, 2)
	assert.ErrorIs(t, err, models.ErrInvalidBudget)
}
