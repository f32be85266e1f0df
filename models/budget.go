package models

// CategoryBudget is the five way split of a trip budget.
type CategoryBudget struct {
	Accommodation float64 `bson:"accommodation" json:"accommodation"`
	Food          float64 `bson:"food" json:"food"`
	Transport     float64 `bson:"transport" json:"transport"`
	Activities    float64 `bson:"activities" json:"activities"`
	Misc          float64 `bson:"miscellaneous" json:"miscellaneous"`
}

// Sum adds up all five categories.
func (c CategoryBudget) Sum() float64 {
	return c.Accommodation + c.Food + c.Transport + c.Activities + c.Misc
}

// BudgetShares holds the category percentages. They must add up to 100.
type BudgetShares struct {
	Accommodation int `mapstructure:"accommodation" json:"accommodation"`
	Food          int `mapstructure:"food" json:"food"`
	Transport     int `mapstructure:"transport" json:"transport"`
	Activities    int `mapstructure:"activities" json:"activities"`
	Misc          int `mapstructure:"misc" json:"misc"`
}

func (s BudgetShares) Total() int {
	return s.Accommodation + s.Food + s.Transport + s.Activities + s.Misc
}

// BudgetPlan is the per request budget view. Categories are floored per
// category while DailyBudget is the exact total/days; the two are not
// reconciled.
type BudgetPlan struct {
	Total       float64        `json:"total"`
	Days        int            `json:"days"`
	Categories  CategoryBudget `json:"categories"`
	DailyBudget float64        `json:"dailyBudget"`
}

// PerDay returns the per-day view of the category budget.
func (p BudgetPlan) PerDay() CategoryBudget {
	d := float64(p.Days)
	return CategoryBudget{
		Accommodation: p.Categories.Accommodation / d,
		Food:          p.Categories.Food / d,
		Transport:     p.Categories.Transport / d,
		Activities:    p.Categories.Activities / d,
		Misc:          p.Categories.Misc / d,
	}
}
