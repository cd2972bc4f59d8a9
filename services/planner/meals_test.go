// File: services/planner/meals_test.go
package planner

import (
	"testing"

	"tripmesh/models"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"09:00", 540, true},
		{"9:30", 570, true},
		{"2 pm", 840, true},
		{"12 am", 0, true},
		{"12 pm", 720, true},
		{"23:59", 1439, true},
		{"25:00", 0, false},
		{"evening", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseClock(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("parseClock(%q) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestScheduleMealsFillsWindowsInOrder(t *testing.T) {
	activities := []models.Activity{
		{Time: "09:00", Activity: "Museum visit"},
		{Time: "20:00", Activity: "Evening stroll"},
	}

	slots := ScheduleMeals(activities)

	if len(slots) != MaxScheduledMeals {
		t.Fatalf("got %d slots, want %d", len(slots), MaxScheduledMeals)
	}
	wantTypes := []string{"breakfast", "lunch", "snack"}
	for i, slot := range slots {
		if slot.Type != wantTypes[i] {
			t.Errorf("slot %d type = %s, want %s", i, slot.Type, wantTypes[i])
		}
	}
	// Breakfast midpoint (08:15) clamps up to the day start.
	if slots[0].Time != "09:00" {
		t.Errorf("breakfast time = %s, want 09:00", slots[0].Time)
	}
}

func TestScheduleMealsSkipsTravelOverlap(t *testing.T) {
	activities := []models.Activity{
		{Time: "07:00", Activity: "Flight to Paris", DurationMinutes: 240},
		{Time: "15:00", Activity: "Louvre"},
	}

	slots := ScheduleMeals(activities)

	for _, slot := range slots {
		if slot.Type == "breakfast" {
			t.Errorf("breakfast scheduled during flight span")
		}
	}
	if len(slots) == 0 {
		t.Fatal("expected at least one slot")
	}
	if slots[0].Type != "lunch" {
		t.Errorf("first slot = %s, want lunch", slots[0].Type)
	}
}

func TestScheduleMealsFallbackSnack(t *testing.T) {
	// A day-long trek leaves no free window, so the fallback snack applies.
	activities := []models.Activity{
		{Time: "06:00", Activity: "Full-day jungle transfer and journey", DurationMinutes: 360},
		{Time: "12:00", Activity: "Continue transit by bus", DurationMinutes: 360},
		{Time: "18:00", Activity: "Night train departure", DurationMinutes: 360},
	}

	slots := ScheduleMeals(activities)

	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1 fallback slot", len(slots))
	}
	if slots[0].Type != "snack" {
		t.Errorf("fallback slot type = %s, want snack", slots[0].Type)
	}
}

func TestApplyMealPOIsRoundRobinAcrossDays(t *testing.T) {
	pois := []models.POI{
		{Name: "Cafe Uno", Kinds: []string{"catering.cafe"}},
		{Name: "Trattoria Due", Kinds: []string{"catering.restaurant.italian"}},
	}
	it := &models.Itinerary{Schedule: []models.Day{
		{Day: 1, Activities: []models.Activity{{Time: "10:00", Activity: "Walk"}}},
		{Day: 2, Activities: []models.Activity{{Time: "10:00", Activity: "Walk"}}},
	}}

	out := ApplyMealPOIs(it, pois, nil)

	day1, day2 := out.Schedule[0].Meals, out.Schedule[1].Meals
	if len(day1) == 0 || len(day2) == 0 {
		t.Fatal("expected meals on both days")
	}
	// The POI index runs across the whole trip, so day 2 continues where
	// day 1 stopped instead of restarting at the first POI.
	if day1[0].Restaurant == day2[0].Restaurant {
		t.Errorf("day 2 restarted POI rotation at %s", day2[0].Restaurant)
	}
	if out.Schedule[0].Meta["meal_source"] != "geoapify" {
		t.Errorf("meal_source = %v, want geoapify", out.Schedule[0].Meta["meal_source"])
	}
}

func TestApplyMealPOIsSkipsAlreadyMergedDays(t *testing.T) {
	pois := []models.POI{{Name: "Cafe Uno"}}
	it := &models.Itinerary{Schedule: []models.Day{{
		Day:   1,
		Meta:  map[string]any{"meal_source": "geoapify"},
		Meals: []models.Meal{{Type: "lunch", Restaurant: "Original Diner", Cost: 15}},
	}}}

	out := ApplyMealPOIs(it, pois, nil)

	if out.Schedule[0].Meals[0].Restaurant != "Original Diner" {
		t.Errorf("merged day was rewritten: %s", out.Schedule[0].Meals[0].Restaurant)
	}
}

func TestApplyMealPOIsCarriesOriginalCosts(t *testing.T) {
	pois := []models.POI{{Name: "Cafe Uno"}}
	it := &models.Itinerary{Schedule: []models.Day{
		{Day: 1, Activities: []models.Activity{{Time: "10:00", Activity: "Walk"}}},
	}}
	original := &models.Itinerary{Schedule: []models.Day{
		{Day: 1, Meals: []models.Meal{{Type: "breakfast", Cost: 33}}},
	}}

	out := ApplyMealPOIs(it, pois, original)

	if len(out.Schedule[0].Meals) == 0 {
		t.Fatal("expected scheduled meals")
	}
	if got := out.Schedule[0].Meals[0].Cost; got != 33 {
		t.Errorf("first meal cost = %d, want carried-over 33", got)
	}
	// Positions beyond the original list fall back to type defaults.
	if len(out.Schedule[0].Meals) > 1 {
		second := out.Schedule[0].Meals[1]
		if second.Cost != defaultMealCosts[second.Type] {
			t.Errorf("second meal cost = %d, want default %d", second.Cost, defaultMealCosts[second.Type])
		}
	}
}

func TestApplyMealPOIsRecomputesDayTotal(t *testing.T) {
	pois := []models.POI{{Name: "Cafe Uno"}}
	it := &models.Itinerary{Schedule: []models.Day{
		{Day: 1, TotalCost: 999, Activities: []models.Activity{{Time: "10:00", Activity: "Walk", Cost: 20}}},
	}}

	out := ApplyMealPOIs(it, pois, nil)

	want := 20
	for _, meal := range out.Schedule[0].Meals {
		want += meal.Cost
	}
	if out.Schedule[0].TotalCost != want {
		t.Errorf("TotalCost = %d, want %d", out.Schedule[0].TotalCost, want)
	}
}

func TestCuisineFromKinds(t *testing.T) {
	cases := []struct {
		kinds []string
		want  string
	}{
		{[]string{"catering.restaurant.italian"}, "Italian"},
		{[]string{"catering.restaurant", "catering.cafe"}, "Local"},
		{[]string{"catering.fast_food"}, "Local"},
		{nil, "Local"},
		{[]string{"catering.restaurant.fast_food", "catering.restaurant.sea_food"}, "Sea food"},
	}
	for _, tc := range cases {
		if got := cuisineFromKinds(tc.kinds); got != tc.want {
			t.Errorf("cuisineFromKinds(%v) = %q, want %q", tc.kinds, got, tc.want)
		}
	}
}
