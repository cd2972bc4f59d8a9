// File: services/planner/normalize_test.go
package planner

import (
	"testing"

	"tripmesh/models"
)

func dayWithCosts(costs ...int) models.Day {
	day := models.Day{Day: 1}
	for _, cost := range costs {
		day.Activities = append(day.Activities, models.Activity{Activity: "Visit", Cost: cost})
	}
	return day
}

func TestNormalizeItineraryCostsClampsAndScales(t *testing.T) {
	it := &models.Itinerary{Schedule: []models.Day{dayWithCosts(40, 60, 30)}}

	out := NormalizeItineraryCosts(it, 300, 5)

	// Per-day cap is (300/5)*1.2 = 72; per-entry cap is 36. Entries clamp to
	// [36, 36, 30] = 102, then scale by 72/102.
	got := []int{out.Schedule[0].Activities[0].Cost, out.Schedule[0].Activities[1].Cost, out.Schedule[0].Activities[2].Cost}
	want := []int{25, 25, 21}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("activity %d cost = %d, want %d", i, got[i], want[i])
		}
	}
	if out.Schedule[0].TotalCost != 71 {
		t.Errorf("TotalCost = %d, want 71", out.Schedule[0].TotalCost)
	}
}

func TestNormalizeItineraryCostsIdempotent(t *testing.T) {
	it := &models.Itinerary{Schedule: []models.Day{dayWithCosts(40, 60, 30)}}

	once := NormalizeItineraryCosts(it, 300, 5)
	twice := NormalizeItineraryCosts(once, 300, 5)

	for i := range once.Schedule[0].Activities {
		a, b := once.Schedule[0].Activities[i].Cost, twice.Schedule[0].Activities[i].Cost
		if a != b {
			t.Errorf("activity %d changed on second pass: %d -> %d", i, a, b)
		}
	}
	if once.Schedule[0].TotalCost != twice.Schedule[0].TotalCost {
		t.Errorf("TotalCost changed on second pass: %d -> %d", once.Schedule[0].TotalCost, twice.Schedule[0].TotalCost)
	}
}

func TestNormalizeItineraryCostsDoesNotMutateInput(t *testing.T) {
	it := &models.Itinerary{Schedule: []models.Day{dayWithCosts(500)}}

	NormalizeItineraryCosts(it, 300, 5)

	if it.Schedule[0].Activities[0].Cost != 500 {
		t.Errorf("input mutated: cost = %d, want 500", it.Schedule[0].Activities[0].Cost)
	}
}

func TestNormalizeItineraryCostsNegativeToZero(t *testing.T) {
	it := &models.Itinerary{Schedule: []models.Day{dayWithCosts(-10, 20)}}

	out := NormalizeItineraryCosts(it, 3000, 5)

	if out.Schedule[0].Activities[0].Cost != 0 {
		t.Errorf("negative cost = %d, want 0", out.Schedule[0].Activities[0].Cost)
	}
	if out.Schedule[0].TotalCost != 20 {
		t.Errorf("TotalCost = %d, want 20", out.Schedule[0].TotalCost)
	}
}

func TestNormalizeItineraryCostsIncludesMeals(t *testing.T) {
	day := dayWithCosts(30)
	day.Meals = []models.Meal{{Type: "lunch", Cost: 25}}
	it := &models.Itinerary{Schedule: []models.Day{day}}

	out := NormalizeItineraryCosts(it, 3000, 5)

	if out.Schedule[0].TotalCost != 55 {
		t.Errorf("TotalCost = %d, want 55", out.Schedule[0].TotalCost)
	}
}

func TestNormalizeBudgetEstimateClampsTotals(t *testing.T) {
	b := &models.BudgetEstimate{
		TotalBudget: 50000,
		DailyBudget: 9000,
	}

	out := NormalizeBudgetEstimate(b, 2000, 5)

	if out.TotalBudget != 2000 {
		t.Errorf("TotalBudget = %d, want 2000", out.TotalBudget)
	}
	if out.DailyBudget != 400 {
		t.Errorf("DailyBudget = %d, want 400", out.DailyBudget)
	}
}

func TestNormalizeBudgetEstimateDefaultsZeroTotals(t *testing.T) {
	b := &models.BudgetEstimate{}

	out := NormalizeBudgetEstimate(b, 2000, 5)

	if out.TotalBudget != 2000 {
		t.Errorf("TotalBudget = %d, want 2000", out.TotalBudget)
	}
	if out.DailyBudget != 400 {
		t.Errorf("DailyBudget = %d, want 400", out.DailyBudget)
	}
}

func TestNormalizeBudgetEstimateCapsCategories(t *testing.T) {
	b := &models.BudgetEstimate{
		TotalBudget: 2000,
		Breakdown: models.BudgetBreakdown{
			Accommodation: &models.AccommodationBudget{PerNight: 5000, Nights: 5, Subtotal: 25000},
			Food:          &models.FoodBudget{PerDay: 900, Days: 5, Subtotal: 4500},
			Activities:    &models.EstimatedBudget{Estimated: 8000},
			Transport:     &models.EstimatedBudget{Estimated: 9000},
			Contingency:   &models.ContingencyBudget{Percent: 10, Amount: 3000},
		},
	}

	out := NormalizeBudgetEstimate(b, 2000, 5)

	// Per-day base is 400; each category is capped at its weight share.
	if got := out.Breakdown.Accommodation.Subtotal; got > 220 {
		t.Errorf("accommodation subtotal = %d, want <= 220", got)
	}
	if got := out.Breakdown.Food.Subtotal; got > 100 {
		t.Errorf("food subtotal = %d, want <= 100", got)
	}
	if sum := categoryTotalSum(out); sum > out.TotalBudget {
		t.Errorf("category sum %d exceeds total budget %d", sum, out.TotalBudget)
	}
}

func TestNormalizeBudgetEstimateFloorsTinyBudgets(t *testing.T) {
	b := &models.BudgetEstimate{}

	out := NormalizeBudgetEstimate(b, 30, 10)

	if out.TotalBudget != 100 {
		t.Errorf("TotalBudget = %d, want floor 100", out.TotalBudget)
	}
	if out.DailyBudget != 40 {
		t.Errorf("DailyBudget = %d, want floor 40", out.DailyBudget)
	}
}
