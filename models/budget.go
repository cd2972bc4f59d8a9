// File: models/budget.go
package models

// BudgetEstimate is the trip-level budget document produced by the budget
// agent and clamped by the normalizer.
type BudgetEstimate struct {
	TotalBudget int             `json:"total_budget" bson:"totalBudget"`
	DailyBudget int             `json:"daily_budget" bson:"dailyBudget"`
	Breakdown   BudgetBreakdown `json:"breakdown" bson:"breakdown"`
	SavingsTips []string        `json:"savings_tips,omitempty" bson:"savingsTips,omitempty"`
	Meta        map[string]any  `json:"meta,omitempty" bson:"meta,omitempty"`
}

// BudgetBreakdown groups the per-category blocks. Nil pointers mean the
// generator omitted the category.
type BudgetBreakdown struct {
	Accommodation *AccommodationBudget `json:"accommodation,omitempty" bson:"accommodation,omitempty"`
	Food          *FoodBudget          `json:"food,omitempty" bson:"food,omitempty"`
	Activities    *EstimatedBudget     `json:"activities,omitempty" bson:"activities,omitempty"`
	Transport     *EstimatedBudget     `json:"transport,omitempty" bson:"transport,omitempty"`
	Contingency   *ContingencyBudget   `json:"contingency,omitempty" bson:"contingency,omitempty"`
}

type AccommodationBudget struct {
	PerNight int `json:"per_night" bson:"perNight"`
	Nights   int `json:"nights" bson:"nights"`
	Subtotal int `json:"subtotal" bson:"subtotal"`
}

type FoodBudget struct {
	PerDay   int `json:"per_day" bson:"perDay"`
	Days     int `json:"days" bson:"days"`
	Subtotal int `json:"subtotal" bson:"subtotal"`
}

type EstimatedBudget struct {
	Estimated int `json:"estimated" bson:"estimated"`
}

type ContingencyBudget struct {
	Percent int `json:"percent" bson:"percent"`
	Amount  int `json:"amount" bson:"amount"`
}

// Clone returns a deep copy of the budget estimate.
func (b *BudgetEstimate) Clone() *BudgetEstimate {
	if b == nil {
		return nil
	}
	out := *b
	out.SavingsTips = append([]string(nil), b.SavingsTips...)
	out.Meta = cloneAnyMap(b.Meta)
	if b.Breakdown.Accommodation != nil {
		v := *b.Breakdown.Accommodation
		out.Breakdown.Accommodation = &v
	}
	if b.Breakdown.Food != nil {
		v := *b.Breakdown.Food
		out.Breakdown.Food = &v
	}
	if b.Breakdown.Activities != nil {
		v := *b.Breakdown.Activities
		out.Breakdown.Activities = &v
	}
	if b.Breakdown.Transport != nil {
		v := *b.Breakdown.Transport
		out.Breakdown.Transport = &v
	}
	if b.Breakdown.Contingency != nil {
		v := *b.Breakdown.Contingency
		out.Breakdown.Contingency = &v
	}
	return &out
}

// EnsureMeta returns the budget's meta map, creating it on first use.
func (b *BudgetEstimate) EnsureMeta() map[string]any {
	if b.Meta == nil {
		b.Meta = make(map[string]any)
	}
	return b.Meta
}
