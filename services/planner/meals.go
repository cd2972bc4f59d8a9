// File: services/planner/meals.go
package planner

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"tripmesh/models"
)

// MaxScheduledMeals bounds how many meal slots a single day receives.
const MaxScheduledMeals = 3

const (
	defaultDurationMinutes = 60
	minDurationMinutes     = 30
	maxDurationMinutes     = 360

	defaultDayStart = 8 * 60
	defaultDayEnd   = 22 * 60
	minActiveSpan   = 14 * 60
	latestMinute    = 23*60 + 59

	// Meals placed just outside the active window are still useful, so
	// candidate windows get this much slack on both ends before rejection.
	windowSlack = 60
)

var travelKeywords = []string{
	"travel", "transfer", "transit", "journey", "drive", "flight",
	"train", "depart", "arrival", "commute", "ferry", "bus",
}

// Default per-type meal costs applied when the original document carries no
// usable cost for the slot.
var defaultMealCosts = map[string]int{
	"breakfast": 12,
	"lunch":     18,
	"dinner":    24,
	"snack":     10,
}

// MealSlot is one scheduled meal placement within a day.
type MealSlot struct {
	Type    string
	Label   string
	Time    string
	Minutes int
}

type mealWindow struct {
	mealType string
	label    string
	start    int
	end      int
}

// Candidate windows in fixed order; scheduling always walks them
// breakfast-first so earlier meals win when fewer than four fit.
var candidateWindows = []mealWindow{
	{"breakfast", "Breakfast", 6*60 + 30, 10 * 60},
	{"lunch", "Lunch", 11*60 + 30, 14*60 + 30},
	{"snack", "Afternoon Snack", 15 * 60, 17*60 + 30},
	{"dinner", "Dinner", 18 * 60, 21*60 + 30},
}

var clockRe = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)

// parseClock converts "HH:MM" or "H[:MM] am/pm" into minutes since midnight.
func parseClock(value string) (int, bool) {
	m := clockRe.FindStringSubmatch(strings.ToLower(strings.TrimSpace(value)))
	if m == nil {
		return 0, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	switch m[3] {
	case "pm":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour == 12 {
			hour = 0
		}
	default:
		if hour > 23 {
			return 0, false
		}
	}
	if minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ScheduleMeals infers the day's active span from its activities and places
// up to MaxScheduledMeals meal slots into it, avoiding collision with
// travel-tagged activities. Deterministic and side-effect free.
func ScheduleMeals(activities []models.Activity) []MealSlot {
	dayStart, dayEnd := activeWindow(activities)
	travelSpans := travelActivitySpans(activities)

	var slots []MealSlot
	for _, window := range candidateWindows {
		if len(slots) >= MaxScheduledMeals {
			break
		}
		if window.end < dayStart-windowSlack || window.start > dayEnd+windowSlack {
			continue
		}
		if overlapsAny(window, travelSpans) {
			continue
		}
		at := clampInt((window.start+window.end)/2, dayStart, dayEnd)
		slots = append(slots, MealSlot{
			Type:    window.mealType,
			Label:   window.label,
			Time:    formatClock(at),
			Minutes: at,
		})
	}

	if len(slots) == 0 && len(activities) > 0 {
		at := (dayStart + dayEnd) / 2
		slots = append(slots, MealSlot{
			Type:    "snack",
			Label:   "Snack",
			Time:    formatClock(at),
			Minutes: at,
		})
	}
	return slots
}

// activeWindow is [earliest, latest] parsed activity time, stretched to at
// least 14 hours and capped at 23:59. Days with no parseable times default
// to 08:00-22:00.
func activeWindow(activities []models.Activity) (int, int) {
	start, end := -1, -1
	for _, a := range activities {
		if minutes, ok := parseClock(a.Time); ok {
			if start == -1 || minutes < start {
				start = minutes
			}
			if minutes > end {
				end = minutes
			}
		}
	}
	if start == -1 {
		return defaultDayStart, defaultDayEnd
	}
	if end-start < minActiveSpan {
		end = start + minActiveSpan
	}
	if end > latestMinute {
		end = latestMinute
	}
	return start, end
}

type timeSpan struct {
	start int
	end   int
}

// travelActivitySpans collects the [time, time+duration] spans of activities
// whose text matches a travel keyword.
func travelActivitySpans(activities []models.Activity) []timeSpan {
	var spans []timeSpan
	for _, a := range activities {
		if !mentionsTravel(a.Activity + " " + a.Description + " " + a.Tip) {
			continue
		}
		start, ok := parseClock(a.Time)
		if !ok {
			continue
		}
		duration := a.DurationMinutes
		if duration == 0 {
			duration = defaultDurationMinutes
		}
		duration = clampInt(duration, minDurationMinutes, maxDurationMinutes)
		spans = append(spans, timeSpan{start: start, end: start + duration})
	}
	return spans
}

func mentionsTravel(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range travelKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func overlapsAny(window mealWindow, spans []timeSpan) bool {
	for _, span := range spans {
		if window.start < span.end && window.end > span.start {
			return true
		}
	}
	return false
}

// ApplyMealPOIs replaces each day's meals with scheduled slots filled from
// the POI pool. POIs are assigned round-robin with a single running index
// across the whole trip so repeats spread out instead of clustering on one
// day. Costs carry over from the matching position in the pre-merge meal
// list when present and positive. Returns a new document.
func ApplyMealPOIs(it *models.Itinerary, pois []models.POI, original *models.Itinerary) *models.Itinerary {
	out := it.Clone()
	if out == nil || len(pois) == 0 {
		return out
	}

	poiIndex := 0
	for i := range out.Schedule {
		day := &out.Schedule[i]
		if src, ok := day.EnsureMeta()["meal_source"].(string); ok && src != "" {
			continue
		}

		var originalMeals []models.Meal
		if original != nil && i < len(original.Schedule) {
			originalMeals = original.Schedule[i].Meals
		}

		slots := ScheduleMeals(day.Activities)
		merged := make([]models.Meal, 0, len(slots))
		for slotIdx, slot := range slots {
			poi := pois[poiIndex%len(pois)]
			poiIndex++

			cost := 0
			if slotIdx < len(originalMeals) && originalMeals[slotIdx].Cost > 0 {
				cost = originalMeals[slotIdx].Cost
			} else {
				cost = defaultMealCosts[slot.Type]
			}

			specialty := poi.Description
			if specialty == "" {
				specialty = "Popular spot recommended by locals"
			}

			merged = append(merged, models.Meal{
				Time:       slot.Time,
				Type:       slot.Type,
				Label:      slot.Label,
				Restaurant: poi.Name,
				Cuisine:    cuisineFromKinds(poi.Kinds),
				Cost:       cost,
				Specialty:  specialty,
				Address:    poi.Address,
				SourceURL:  poi.URL,
			})
		}

		day.Meals = merged
		day.EnsureMeta()["meal_source"] = "geoapify"
		day.TotalCost = sumDayCosts(*day)
	}
	return out
}

// cuisineFromKinds derives a display cuisine from Geoapify category tags,
// e.g. "catering.restaurant.italian" yields "Italian".
func cuisineFromKinds(kinds []string) string {
	for _, kind := range kinds {
		parts := strings.Split(kind, ".")
		last := parts[len(parts)-1]
		switch last {
		case "", "restaurant", "cafe", "fast_food", "catering":
			continue
		}
		label := strings.ReplaceAll(last, "_", " ")
		return strings.ToUpper(label[:1]) + label[1:]
	}
	return "Local"
}

func sumDayCosts(day models.Day) int {
	total := 0
	for _, a := range day.Activities {
		total += a.Cost
	}
	for _, m := range day.Meals {
		total += m.Cost
	}
	return total
}
