// File: services/transportpricing/scale.go
package transportpricing

import (
	"math"

	"tripmesh/models"
)

// ScaleItineraryForGroup multiplies per-person itinerary costs by the
// traveler count. Solo trips and nil itineraries pass through untouched.
func ScaleItineraryForGroup(it *models.Itinerary, travelers int) *models.Itinerary {
	if it == nil || travelers <= 1 {
		return it
	}
	out := it.Clone()
	multiplier := float64(travelers)

	for i := range out.Schedule {
		day := &out.Schedule[i]
		day.TotalCost = scaleInt(day.TotalCost, multiplier)
		for j := range day.Activities {
			day.Activities[j].Cost = scaleInt(day.Activities[j].Cost, multiplier)
		}
		for j := range day.Meals {
			day.Meals[j].Cost = scaleInt(day.Meals[j].Cost, multiplier)
		}
	}

	for key, value := range out.BudgetBreakdown {
		switch v := value.(type) {
		case float64:
			out.BudgetBreakdown[key] = scaleInt(int(math.Round(v)), multiplier)
		case int:
			out.BudgetBreakdown[key] = scaleInt(v, multiplier)
		case map[string]any:
			for childKey, childVal := range v {
				if n, ok := childVal.(float64); ok {
					v[childKey] = scaleInt(int(math.Round(n)), multiplier)
				}
			}
		}
	}

	out.EnsureMeta()["group_multiplier"] = travelers
	return out
}

// ScaleBudgetForGroup multiplies a per-person budget estimate by the
// traveler count and records the per-traveler baseline in the metadata.
func ScaleBudgetForGroup(b *models.BudgetEstimate, travelers int) *models.BudgetEstimate {
	if b == nil || travelers <= 1 {
		return b
	}
	out := b.Clone()
	multiplier := float64(travelers)

	baseTotal := out.TotalBudget
	baseDaily := out.DailyBudget
	out.TotalBudget = scaleInt(out.TotalBudget, multiplier)
	out.DailyBudget = scaleInt(out.DailyBudget, multiplier)

	if acc := out.Breakdown.Accommodation; acc != nil {
		acc.PerNight = scaleInt(acc.PerNight, multiplier)
		acc.Subtotal = scaleInt(acc.Subtotal, multiplier)
	}
	if food := out.Breakdown.Food; food != nil {
		food.PerDay = scaleInt(food.PerDay, multiplier)
		food.Subtotal = scaleInt(food.Subtotal, multiplier)
	}
	if act := out.Breakdown.Activities; act != nil {
		act.Estimated = scaleInt(act.Estimated, multiplier)
	}
	if transport := out.Breakdown.Transport; transport != nil {
		transport.Estimated = scaleInt(transport.Estimated, multiplier)
	}
	if contingency := out.Breakdown.Contingency; contingency != nil {
		contingency.Amount = scaleInt(contingency.Amount, multiplier)
	}

	meta := out.EnsureMeta()
	meta["travelers"] = travelers
	meta["per_traveler_total"] = baseTotal
	meta["per_traveler_daily"] = baseDaily
	return out
}

func scaleInt(v int, multiplier float64) int {
	return int(math.Round(float64(v) * multiplier))
}
