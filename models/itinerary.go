// File: models/itinerary.go
package models

// Itinerary is the full day-by-day travel plan document as produced by the
// generation backend and refined by the planner pipeline.
type Itinerary struct {
	Schedule        []Day          `json:"itinerary" bson:"itinerary"`
	BudgetBreakdown map[string]any `json:"budget_breakdown,omitempty" bson:"budgetBreakdown,omitempty"`
	Recommendations map[string]any `json:"recommendations,omitempty" bson:"recommendations,omitempty"`
	Meta            map[string]any `json:"meta,omitempty" bson:"meta,omitempty"`
}

// Day is one trip day. TotalCost is always recomputed from entry costs and
// never trusted from upstream.
type Day struct {
	Day        int            `json:"day" bson:"day"`
	Date       string         `json:"date,omitempty" bson:"date,omitempty"`
	Theme      string         `json:"theme,omitempty" bson:"theme,omitempty"`
	Activities []Activity     `json:"activities" bson:"activities"`
	Meals      []Meal         `json:"meals" bson:"meals"`
	TotalCost  int            `json:"total_cost" bson:"totalCost"`
	Meta       map[string]any `json:"meta,omitempty" bson:"meta,omitempty"`
	Lodging    []POI          `json:"lodging,omitempty" bson:"lodging,omitempty"`
}

// Activity is a scheduled entry within a day. Costs are whole units of the
// trip's budget currency (conventionally USD).
type Activity struct {
	Time            string `json:"time,omitempty" bson:"time,omitempty"`
	Activity        string `json:"activity" bson:"activity"`
	Location        string `json:"location,omitempty" bson:"location,omitempty"`
	Cost            int    `json:"cost" bson:"cost"`
	EstimatedCost   int    `json:"estimated_cost,omitempty" bson:"estimatedCost,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty" bson:"durationMinutes,omitempty"`
	Description     string `json:"description,omitempty" bson:"description,omitempty"`
	Tip             string `json:"tip,omitempty" bson:"tip,omitempty"`
	Category        string `json:"category,omitempty" bson:"category,omitempty"`
}

// Meal is one meal slot within a day.
type Meal struct {
	Time       string `json:"time,omitempty" bson:"time,omitempty"`
	Type       string `json:"type" bson:"type"`
	Label      string `json:"label,omitempty" bson:"label,omitempty"`
	Restaurant string `json:"restaurant,omitempty" bson:"restaurant,omitempty"`
	Cuisine    string `json:"cuisine,omitempty" bson:"cuisine,omitempty"`
	Cost       int    `json:"cost" bson:"cost"`
	Specialty  string `json:"specialty,omitempty" bson:"specialty,omitempty"`
	Address    string `json:"address,omitempty" bson:"address,omitempty"`
	SourceURL  string `json:"source_url,omitempty" bson:"sourceURL,omitempty"`
}

// Clone returns a deep copy of the itinerary so pipeline stages never alias
// the caller's raw document.
func (it *Itinerary) Clone() *Itinerary {
	if it == nil {
		return nil
	}
	out := &Itinerary{
		BudgetBreakdown: cloneAnyMap(it.BudgetBreakdown),
		Recommendations: cloneAnyMap(it.Recommendations),
		Meta:            cloneAnyMap(it.Meta),
	}
	if it.Schedule != nil {
		out.Schedule = make([]Day, len(it.Schedule))
		for i, d := range it.Schedule {
			out.Schedule[i] = d.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the day.
func (d Day) Clone() Day {
	out := d
	out.Activities = append([]Activity(nil), d.Activities...)
	out.Meals = append([]Meal(nil), d.Meals...)
	out.Meta = cloneAnyMap(d.Meta)
	out.Lodging = append([]POI(nil), d.Lodging...)
	return out
}

// EnsureMeta returns the day's meta map, creating it on first use.
func (d *Day) EnsureMeta() map[string]any {
	if d.Meta == nil {
		d.Meta = make(map[string]any)
	}
	return d.Meta
}

// EnsureMeta returns the itinerary's meta map, creating it on first use.
func (it *Itinerary) EnsureMeta() map[string]any {
	if it.Meta == nil {
		it.Meta = make(map[string]any)
	}
	return it.Meta
}

func cloneAnyMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = cloneAnyValue(v)
	}
	return out
}

func cloneAnyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneAnyMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneAnyValue(item)
		}
		return out
	default:
		return val
	}
}
