// File: services/planner/decode.go
package planner

import (
	"strings"

	"tripmesh/models"
	"tripmesh/utils"
)

// The parser hands back loosely-shaped maps; this layer coerces them into the
// typed documents the pipeline works on. Missing or mistyped fields degrade
// to zero values rather than failing, matching the tolerance the upstream
// generator requires.

func decodeItinerary(doc map[string]any) *models.Itinerary {
	it := &models.Itinerary{}
	if doc == nil {
		return it
	}
	if schedule, ok := doc["itinerary"].([]any); ok {
		it.Schedule = make([]models.Day, 0, len(schedule))
		for _, raw := range schedule {
			dayMap, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			it.Schedule = append(it.Schedule, decodeDay(dayMap))
		}
	}
	if bb, ok := doc["budget_breakdown"].(map[string]any); ok {
		it.BudgetBreakdown = bb
	}
	if recs, ok := doc["recommendations"].(map[string]any); ok {
		it.Recommendations = recs
	}
	if meta, ok := doc["meta"].(map[string]any); ok {
		it.Meta = meta
	}
	return it
}

func decodeDay(m map[string]any) models.Day {
	day := models.Day{
		Day:   utils.SafeInt(m["day"]),
		Date:  asString(m["date"]),
		Theme: asString(m["theme"]),
	}
	if entries, ok := m["activities"].([]any); ok {
		for _, raw := range entries {
			entry, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			day.Activities = append(day.Activities, decodeActivity(entry))
		}
	}
	if entries, ok := m["meals"].([]any); ok {
		for _, raw := range entries {
			entry, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			day.Meals = append(day.Meals, decodeMeal(entry))
		}
	}
	if meta, ok := m["meta"].(map[string]any); ok {
		day.Meta = meta
	}
	// total_cost is intentionally not decoded; it is derived, never trusted.
	return day
}

func decodeActivity(m map[string]any) models.Activity {
	cost := m["cost"]
	if cost == nil {
		cost = m["estimated_cost"]
	}
	a := models.Activity{
		Time:            asString(m["time"]),
		Activity:        asString(m["activity"]),
		Location:        asString(m["location"]),
		Cost:            utils.FloorInt(cost),
		DurationMinutes: utils.SafeInt(m["duration_minutes"]),
		Description:     asString(m["description"]),
		Tip:             asString(m["tip"]),
		Category:        strings.TrimSpace(asString(m["category"])),
	}
	if a.Cost < 0 {
		a.Cost = 0
	}
	if a.DurationMinutes == 0 {
		a.DurationMinutes = defaultDurationMinutes
	}
	a.DurationMinutes = clampInt(a.DurationMinutes, minDurationMinutes, maxDurationMinutes)
	if a.Category == "" {
		a.Category = "general"
	}
	return a
}

func decodeMeal(m map[string]any) models.Meal {
	mealType := asString(m["type"])
	if mealType == "" {
		mealType = asString(m["label"])
	}
	meal := models.Meal{
		Time:       asString(m["time"]),
		Type:       mealType,
		Label:      asString(m["label"]),
		Restaurant: asString(m["restaurant"]),
		Cuisine:    asString(m["cuisine"]),
		Cost:       utils.FloorInt(m["cost"]),
		Specialty:  asString(m["specialty"]),
		Address:    asString(m["address"]),
		SourceURL:  asString(m["source_url"]),
	}
	if meal.Cost < 0 {
		meal.Cost = 0
	}
	return meal
}

func decodeBudget(doc map[string]any) *models.BudgetEstimate {
	b := &models.BudgetEstimate{}
	if doc == nil {
		return b
	}
	b.TotalBudget = utils.SafeInt(doc["total_budget"])
	b.DailyBudget = utils.SafeInt(doc["daily_budget"])
	if tips, ok := doc["savings_tips"].([]any); ok {
		for _, tip := range tips {
			if s := asString(tip); s != "" {
				b.SavingsTips = append(b.SavingsTips, s)
			}
		}
	}
	if meta, ok := doc["meta"].(map[string]any); ok {
		b.Meta = meta
	}
	breakdown, ok := doc["breakdown"].(map[string]any)
	if !ok {
		return b
	}
	if acc, ok := breakdown["accommodation"].(map[string]any); ok {
		b.Breakdown.Accommodation = &models.AccommodationBudget{
			PerNight: utils.SafeInt(acc["per_night"]),
			Nights:   utils.SafeInt(acc["nights"]),
			Subtotal: utils.SafeInt(acc["subtotal"]),
		}
	}
	if food, ok := breakdown["food"].(map[string]any); ok {
		b.Breakdown.Food = &models.FoodBudget{
			PerDay:   utils.SafeInt(food["per_day"]),
			Days:     utils.SafeInt(food["days"]),
			Subtotal: utils.SafeInt(food["subtotal"]),
		}
	}
	if act, ok := breakdown["activities"].(map[string]any); ok {
		b.Breakdown.Activities = &models.EstimatedBudget{Estimated: utils.SafeInt(act["estimated"])}
	}
	if tr, ok := breakdown["transport"].(map[string]any); ok {
		b.Breakdown.Transport = &models.EstimatedBudget{Estimated: utils.SafeInt(tr["estimated"])}
	}
	if cont, ok := breakdown["contingency"].(map[string]any); ok {
		b.Breakdown.Contingency = &models.ContingencyBudget{
			Percent: utils.SafeInt(cont["percent"]),
			Amount:  utils.SafeInt(cont["amount"]),
		}
	}
	return b
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
