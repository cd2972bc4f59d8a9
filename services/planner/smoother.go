// File: services/planner/smoother.go
package planner

import (
	"strings"

	"tripmesh/models"
)

// Band applied around the category's rolling average.
const (
	smoothLowerFactor = 0.4
	smoothUpperFactor = 2.2
)

// SmoothCostOutliers is the final pipeline pass: activity costs far outside
// the category's recently observed range get pulled back toward it, then
// every final cost is fed into the history so later requests see it.
// Meals are left alone. Returns a new document.
func SmoothCostOutliers(it *models.Itinerary, history *CostHistory) *models.Itinerary {
	out := it.Clone()
	if out == nil || history == nil {
		return out
	}

	for i := range out.Schedule {
		day := &out.Schedule[i]
		for j := range day.Activities {
			activity := &day.Activities[j]
			category := strings.ToLower(activity.Category)
			if category == "" {
				category = "general"
			}
			cost := activity.Cost
			if cost == 0 {
				cost = activity.EstimatedCost
			}

			avg := history.Average(category)
			if avg != 0 && cost != 0 {
				lower := avg * smoothLowerFactor
				upper := avg * smoothUpperFactor
				if float64(cost) < lower {
					cost = int(lower)
				} else if float64(cost) > upper {
					cost = int(upper)
				}
			}
			if cost != 0 {
				activity.Cost = cost
				activity.EstimatedCost = cost
				history.Record(category, cost)
			}
		}
	}
	return out
}
