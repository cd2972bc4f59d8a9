// File: services/planner/smoother_test.go
package planner

import (
	"testing"

	"tripmesh/models"
)

func seededHistory(t *testing.T, category string, values ...int) *CostHistory {
	t.Helper()
	history := NewCostHistory(DefaultHistoryCapacity)
	for _, v := range values {
		history.Record(category, v)
	}
	return history
}

func TestCostHistoryEvictsOldest(t *testing.T) {
	history := NewCostHistory(3)
	for _, v := range []int{1, 2, 3, 4, 5} {
		history.Record("general", v)
	}

	if got := history.Len("general"); got != 3 {
		t.Errorf("Len = %d, want 3", got)
	}
	if got := history.Average("general"); got != 4 {
		t.Errorf("Average = %v, want 4", got)
	}
}

func TestCostHistoryIgnoresNonPositive(t *testing.T) {
	history := NewCostHistory(10)
	history.Record("general", 0)
	history.Record("general", -5)

	if got := history.Len("general"); got != 0 {
		t.Errorf("Len = %d, want 0", got)
	}
	if got := history.Average("general"); got != 0 {
		t.Errorf("Average = %v, want 0", got)
	}
}

func TestSmoothCostOutliersClampsHighAndLow(t *testing.T) {
	history := seededHistory(t, "food", 50, 50, 50)
	history.Record("shopping", 50)
	history.Record("shopping", 50)
	history.Record("shopping", 50)
	it := &models.Itinerary{Schedule: []models.Day{{
		Day: 1,
		Activities: []models.Activity{
			{Activity: "Fancy tasting menu", Category: "food", Cost: 500},
			{Activity: "Flea market browse", Category: "shopping", Cost: 10},
		},
	}}}

	out := SmoothCostOutliers(it, history)

	// Band around each 50 average is [20, 110].
	if got := out.Schedule[0].Activities[0].Cost; got != 110 {
		t.Errorf("high outlier = %d, want 110", got)
	}
	if got := out.Schedule[0].Activities[1].Cost; got != 20 {
		t.Errorf("low outlier = %d, want 20", got)
	}
}

func TestSmoothCostOutliersFeedsClampedCostsForward(t *testing.T) {
	history := seededHistory(t, "food", 50, 50, 50)
	it := &models.Itinerary{Schedule: []models.Day{{
		Day: 1,
		Activities: []models.Activity{
			{Activity: "Fancy tasting menu", Category: "food", Cost: 500},
			{Activity: "Street snack", Category: "food", Cost: 10},
		},
	}}}

	out := SmoothCostOutliers(it, history)

	// The first entry clamps to 110 and is recorded immediately, lifting
	// the average to 65 before the second entry is smoothed. Its floor is
	// therefore 0.4 x 65 = 26, not 20.
	if got := out.Schedule[0].Activities[0].Cost; got != 110 {
		t.Errorf("high outlier = %d, want 110", got)
	}
	if got := out.Schedule[0].Activities[1].Cost; got != 26 {
		t.Errorf("low outlier = %d, want 26", got)
	}
}

func TestSmoothCostOutliersRecordsFinalCosts(t *testing.T) {
	history := NewCostHistory(10)
	it := &models.Itinerary{Schedule: []models.Day{{
		Day:        1,
		Activities: []models.Activity{{Activity: "Tour", Category: "Sightseeing", Cost: 40}},
	}}}

	SmoothCostOutliers(it, history)

	// Categories are case-folded before recording.
	if got := history.Len("sightseeing"); got != 1 {
		t.Errorf("history length = %d, want 1", got)
	}
	if got := history.Average("sightseeing"); got != 40 {
		t.Errorf("history average = %v, want 40", got)
	}
}

func TestSmoothCostOutliersFirstObservationUnchanged(t *testing.T) {
	history := NewCostHistory(10)
	it := &models.Itinerary{Schedule: []models.Day{{
		Day:        1,
		Activities: []models.Activity{{Activity: "Tour", Cost: 300}},
	}}}

	out := SmoothCostOutliers(it, history)

	// No history yet for the category, so the cost passes through.
	if got := out.Schedule[0].Activities[0].Cost; got != 300 {
		t.Errorf("cost = %d, want 300", got)
	}
}

func TestSmoothCostOutliersZeroCostUntouched(t *testing.T) {
	history := seededHistory(t, "general", 50)
	it := &models.Itinerary{Schedule: []models.Day{{
		Day:        1,
		Activities: []models.Activity{{Activity: "Free walking tour", Cost: 0}},
	}}}

	out := SmoothCostOutliers(it, history)

	if got := out.Schedule[0].Activities[0].Cost; got != 0 {
		t.Errorf("cost = %d, want 0", got)
	}
	if got := history.Len("general"); got != 1 {
		t.Errorf("zero cost was recorded, history length %d", got)
	}
}

func TestSmoothCostOutliersFallsBackToEstimatedCost(t *testing.T) {
	history := NewCostHistory(10)
	it := &models.Itinerary{Schedule: []models.Day{{
		Day:        1,
		Activities: []models.Activity{{Activity: "Tour", Cost: 0, EstimatedCost: 60}},
	}}}

	out := SmoothCostOutliers(it, history)

	if got := out.Schedule[0].Activities[0].Cost; got != 60 {
		t.Errorf("cost = %d, want estimated 60", got)
	}
}

func TestSmoothCostOutliersLeavesMealsAlone(t *testing.T) {
	history := seededHistory(t, "general", 10)
	it := &models.Itinerary{Schedule: []models.Day{{
		Day:   1,
		Meals: []models.Meal{{Type: "dinner", Cost: 900}},
	}}}

	out := SmoothCostOutliers(it, history)

	if got := out.Schedule[0].Meals[0].Cost; got != 900 {
		t.Errorf("meal cost = %d, want untouched 900", got)
	}
}
