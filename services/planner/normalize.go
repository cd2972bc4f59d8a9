// File: services/planner/normalize.go
package planner

import (
	"math"

	"tripmesh/models"
)

// Budget-derived cost bounds. Generator output routinely exceeds the stated
// budget by an order of magnitude, so every entry and every day is clamped
// into caps derived from the user's ceiling. Both normalizers are pure and
// idempotent: re-running on already-clamped output changes nothing.

const (
	minPerDayCap   = 60.0
	minPerEntryCap = 10.0
	maxPerEntryCap = 95.0

	minSafeTotal = 100
	minSafeDaily = 40
)

// Category weights for budget-breakdown caps, as shares of the per-day base.
const (
	accommodationWeight = 0.55
	foodWeight          = 0.25
	activitiesWeight    = 0.30
	transportWeight     = 0.35
	contingencyWeight   = 0.15
)

// NormalizeItineraryCosts clamps every entry cost into budget-derived bounds
// and recomputes each day's total from its entries. Returns a new document.
func NormalizeItineraryCosts(it *models.Itinerary, budget float64, days int) *models.Itinerary {
	out := it.Clone()
	if out == nil || len(out.Schedule) == 0 {
		return out
	}
	if days < 1 {
		days = 1
	}

	perDayCap := math.Max(minPerDayCap, (budget/float64(days))*1.2)
	perEntryCap := math.Max(minPerEntryCap, math.Min(math.Min(perDayCap*0.5, budget*0.35), maxPerEntryCap))

	for i := range out.Schedule {
		day := &out.Schedule[i]
		dayTotal := 0

		clampEntry := func(cost int) int {
			if cost < 0 {
				cost = 0
			}
			if float64(cost) > perEntryCap {
				cost = int(perEntryCap)
			}
			return cost
		}
		for j := range day.Activities {
			day.Activities[j].Cost = clampEntry(day.Activities[j].Cost)
			dayTotal += day.Activities[j].Cost
		}
		for j := range day.Meals {
			day.Meals[j].Cost = clampEntry(day.Meals[j].Cost)
			dayTotal += day.Meals[j].Cost
		}

		if float64(dayTotal) > perDayCap && dayTotal > 0 {
			ratio := perDayCap / float64(dayTotal)
			dayTotal = 0
			for j := range day.Activities {
				day.Activities[j].Cost = int(math.Round(float64(day.Activities[j].Cost) * ratio))
				dayTotal += day.Activities[j].Cost
			}
			for j := range day.Meals {
				day.Meals[j].Cost = int(math.Round(float64(day.Meals[j].Cost) * ratio))
				dayTotal += day.Meals[j].Cost
			}
		}
		day.TotalCost = dayTotal
	}
	return out
}

// NormalizeBudgetEstimate clamps a budget breakdown into category caps so the
// implied spend never exceeds the user's ceiling. Returns a new document.
func NormalizeBudgetEstimate(b *models.BudgetEstimate, totalBudget float64, days int) *models.BudgetEstimate {
	out := b.Clone()
	if out == nil {
		return nil
	}
	if days < 1 {
		days = 1
	}

	safeTotal := int(math.Round(totalBudget))
	if safeTotal < minSafeTotal {
		safeTotal = minSafeTotal
	}
	safeDaily := safeTotal / days
	if safeDaily < minSafeDaily {
		safeDaily = minSafeDaily
	}

	out.TotalBudget = clampOrDefault(out.TotalBudget, safeTotal)
	out.DailyBudget = clampOrDefault(out.DailyBudget, safeDaily)

	perDayBase := float64(safeTotal) / float64(days)

	if acc := out.Breakdown.Accommodation; acc != nil {
		acc.Subtotal = capInt(acc.Subtotal, perDayBase*accommodationWeight)
		acc.PerNight = capInt(acc.PerNight, perDayBase*accommodationWeight)
	}
	if food := out.Breakdown.Food; food != nil {
		food.Subtotal = capInt(food.Subtotal, perDayBase*foodWeight)
		food.PerDay = capInt(food.PerDay, perDayBase*foodWeight)
	}
	if act := out.Breakdown.Activities; act != nil {
		act.Estimated = capInt(act.Estimated, perDayBase*activitiesWeight)
	}
	if tr := out.Breakdown.Transport; tr != nil {
		tr.Estimated = capInt(tr.Estimated, perDayBase*transportWeight)
	}
	if cont := out.Breakdown.Contingency; cont != nil {
		cont.Amount = capInt(cont.Amount, perDayBase*contingencyWeight)
	}

	// Final guarantee: category totals never sum past the ceiling.
	sum := categoryTotalSum(out)
	if sum > safeTotal && sum > 0 {
		ratio := float64(safeTotal) / float64(sum)
		if acc := out.Breakdown.Accommodation; acc != nil {
			acc.Subtotal = int(math.Round(float64(acc.Subtotal) * ratio))
		}
		if food := out.Breakdown.Food; food != nil {
			food.Subtotal = int(math.Round(float64(food.Subtotal) * ratio))
		}
		if act := out.Breakdown.Activities; act != nil {
			act.Estimated = int(math.Round(float64(act.Estimated) * ratio))
		}
		if tr := out.Breakdown.Transport; tr != nil {
			tr.Estimated = int(math.Round(float64(tr.Estimated) * ratio))
		}
		if cont := out.Breakdown.Contingency; cont != nil {
			cont.Amount = int(math.Round(float64(cont.Amount) * ratio))
		}
	}
	return out
}

func categoryTotalSum(b *models.BudgetEstimate) int {
	sum := 0
	if acc := b.Breakdown.Accommodation; acc != nil {
		sum += acc.Subtotal
	}
	if food := b.Breakdown.Food; food != nil {
		sum += food.Subtotal
	}
	if act := b.Breakdown.Activities; act != nil {
		sum += act.Estimated
	}
	if tr := b.Breakdown.Transport; tr != nil {
		sum += tr.Estimated
	}
	if cont := b.Breakdown.Contingency; cont != nil {
		sum += cont.Amount
	}
	return sum
}

// clampOrDefault takes the minimum of value and ceiling, falling back to the
// ceiling itself when the input is zero or negative.
func clampOrDefault(value, ceiling int) int {
	if value <= 0 {
		return ceiling
	}
	if value > ceiling {
		return ceiling
	}
	return value
}

func capInt(value int, limit float64) int {
	if float64(value) > limit {
		return int(math.Floor(limit))
	}
	return value
}
