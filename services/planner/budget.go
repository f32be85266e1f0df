package planner

import (
	"fmt"
	"math"

	"tripplanner/models"
)

// Allocator splits a trip budget into category and daily views.
type Allocator struct {
	shares    models.BudgetShares
	minBudget float64
	maxDays   int
}

// NewAllocator returns an Allocator for the given shares and bounds.
func NewAllocator(shares models.BudgetShares, minBudget float64, maxDays int) *Allocator {
	return &Allocator{shares: shares, minBudget: minBudget, maxDays: maxDays}
}

// Validate checks the total and day count without allocating.
func (a *Allocator) Validate(total float64, days int) error {
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return models.NewPlanError(models.CodeInvalidBudget, "budget must be a finite number")
	}
	if total < a.minBudget {
		return models.NewPlanError(models.CodeInvalidBudget,
			fmt.Sprintf("budget must be at least %.0f, got %.2f", a.minBudget, total))
	}
	if days < 1 || days > a.maxDays {
		return models.NewPlanError(models.CodeInvalidBudget,
			fmt.Sprintf("days must be between 1 and %d, got %d", a.maxDays, days))
	}
	if a.shares.Total() != 100 {
		return models.NewPlanError(models.CodeInvalidBudget,
			fmt.Sprintf("budget shares add up to %d", a.shares.Total()))
	}
	return nil
}

// Allocate floors every category share of total. The floor residual is not
// redistributed, so the categories may sum to slightly less than total.
func (a *Allocator) Allocate(total float64, days int) (models.BudgetPlan, error) {
	if err := a.Validate(total, days); err != nil {
		return models.BudgetPlan{}, err
	}

	return models.BudgetPlan{
		Total: total,
		Days:  days,
		Categories: models.CategoryBudget{
			Accommodation: floorShare(total, a.shares.Accommodation),
			Food:          floorShare(total, a.shares.Food),
			Transport:     floorShare(total, a.shares.Transport),
			Activities:    floorShare(total, a.shares.Activities),
			Misc:          floorShare(total, a.shares.Misc),
		},
		DailyBudget: total / float64(days),
	}, nil
}

func floorShare(total float64, pct int) float64 {
	return math.Floor(total * float64(pct) / 100)
}
