// File: services/transportpricing/service_test.go
package transportpricing

import (
	"context"
	"math"
	"testing"
	"time"

	"tripmesh/models"
)

func TestHaversineDistance(t *testing.T) {
	delhi := models.PlaceDetails{Name: "Delhi", Lat: 28.6139, Lon: 77.2090}
	mumbai := models.PlaceDetails{Name: "Mumbai", Lat: 19.0760, Lon: 72.8777}

	got := haversineDistance(delhi, mumbai)
	if math.Abs(got-1150) > 20 {
		t.Errorf("Delhi-Mumbai distance = %.1f km, want ~1150", got)
	}

	if got := haversineDistance(models.PlaceDetails{}, mumbai); got != 0 {
		t.Errorf("missing coordinates should yield 0, got %.1f", got)
	}
}

func TestNormalizeDate(t *testing.T) {
	parsed := normalizeDate("2026-09-10")
	if parsed.Format("2006-01-02") != "2026-09-10" {
		t.Errorf("ISO date parsed as %v", parsed)
	}

	parsed = normalizeDate("2026-09-10T08:00:00Z")
	if parsed.Format("2006-01-02") != "2026-09-10" {
		t.Errorf("RFC3339 date parsed as %v", parsed)
	}

	// Garbage falls back to 30 days out.
	fallback := normalizeDate("next tuesday")
	want := time.Now().UTC().AddDate(0, 0, defaultDepartureOffsetDays)
	if math.Abs(fallback.Sub(want).Hours()) > 24 {
		t.Errorf("fallback departure = %v, want ~%v", fallback, want)
	}
}

func TestNormalizeCountryCode(t *testing.T) {
	cases := map[string]string{
		"India":                    "IN",
		"in":                       "IN",
		"United States of America": "US",
		"":                         "",
	}
	for in, want := range cases {
		if got := normalizeCountryCode(in); got != want {
			t.Errorf("normalizeCountryCode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEstimateTrainQuotes(t *testing.T) {
	departure := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	quotes := estimateTrainQuotes(1, departure, 1000)

	if len(quotes) != 5 {
		t.Fatalf("got %d quotes, want one per class", len(quotes))
	}

	// Sleeper over 1000km: 750 base + 20 reservation + 45 superfast,
	// plus 5% GST = 855.75.
	sl := quotes[0]
	if sl.ID != "train-SL" || sl.Class != "SL" {
		t.Fatalf("first quote = %+v, want sleeper", sl)
	}
	if sl.PricePerPerson != 855.75 {
		t.Errorf("sleeper fare = %v, want 855.75", sl.PricePerPerson)
	}
	if sl.Currency != "INR" || sl.Provider != "Indian Railways" || sl.Confidence != "estimated" {
		t.Errorf("quote metadata = %+v", sl)
	}
	if sl.DurationHours != 18.2 {
		t.Errorf("duration = %v, want 18.2 (1000/55 rounded)", sl.DurationHours)
	}
	if sl.Departure != "2026-09-10" {
		t.Errorf("departure = %q", sl.Departure)
	}
	if sl.GroupPrice == nil || *sl.GroupPrice != 855.75 {
		t.Errorf("group price = %v", sl.GroupPrice)
	}
}

func TestEstimateTrainQuotesShortRouteSkipsSuperfast(t *testing.T) {
	quotes := estimateTrainQuotes(2, time.Now(), 200)

	// Sleeper over 200km: 150 base + 20 reservation, GST 8.50 = 178.50.
	sl := quotes[0]
	if sl.PricePerPerson != 178.5 {
		t.Errorf("sleeper fare = %v, want 178.5", sl.PricePerPerson)
	}
	if sl.GroupPrice == nil || *sl.GroupPrice != 357 {
		t.Errorf("group price = %v, want 357", sl.GroupPrice)
	}
	if sl.DurationHours != 6 {
		t.Errorf("duration = %v, want floor of 6", sl.DurationHours)
	}
}

func TestResolveStationCode(t *testing.T) {
	if got := resolveStationCode(models.PlaceDetails{Name: "Mumbai"}); got != "CSTM" {
		t.Errorf("Mumbai station = %q, want CSTM", got)
	}
	explicit := models.PlaceDetails{Name: "Somewhere", StationCode: "xyz"}
	if got := resolveStationCode(explicit); got != "XYZ" {
		t.Errorf("explicit station = %q, want XYZ", got)
	}
	if got := resolveStationCode(models.PlaceDetails{Name: "Atlantis"}); got != "" {
		t.Errorf("unknown city station = %q, want empty", got)
	}
}

func TestBuildPricingDomesticIndianRoute(t *testing.T) {
	svc := NewDefaultTransportService("", "USD")
	source := models.PlaceDetails{Name: "Delhi", Country: "India", Lat: 28.6139, Lon: 77.2090}
	dest := models.PlaceDetails{Name: "Mumbai", Country: "IN", Lat: 19.0760, Lon: 72.8777}

	pricing, err := svc.BuildPricing(context.Background(), source, dest, "2026-09-10", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pricing.TripType != "india_train" {
		t.Fatalf("trip type = %q", pricing.TripType)
	}
	if len(pricing.Quotes) != 5 || pricing.Quotes[0].Mode != "train" {
		t.Errorf("quotes = %+v", pricing.Quotes)
	}
	if pricing.Source.Label != "Delhi (NDLS)" || pricing.Destination.Label != "Mumbai (CSTM)" {
		t.Errorf("labels = %q / %q", pricing.Source.Label, pricing.Destination.Label)
	}
	if pricing.Travelers != 2 || pricing.DepartureDate != "2026-09-10" {
		t.Errorf("pricing = %+v", pricing)
	}
	if pricing.DistanceKM < 1100 || pricing.DistanceKM > 1200 {
		t.Errorf("distance = %v", pricing.DistanceKM)
	}
}

func TestBuildPricingInternationalFallback(t *testing.T) {
	// No Tequila key, so quotes come from the distance heuristic.
	svc := NewDefaultTransportService("", "USD")
	source := models.PlaceDetails{Name: "Paris", Country: "FR", Lat: 48.8566, Lon: 2.3522}
	dest := models.PlaceDetails{Name: "London", Country: "GB", Lat: 51.5074, Lon: -0.1278}

	pricing, err := svc.BuildPricing(context.Background(), source, dest, "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pricing.TripType != "international_flight" {
		t.Fatalf("trip type = %q", pricing.TripType)
	}
	if len(pricing.Quotes) != 3 {
		t.Fatalf("got %d quotes, want the three cabin tiers", len(pricing.Quotes))
	}
	if pricing.Quotes[0].ID != "flight-economy" || pricing.Quotes[0].Confidence != "estimated" {
		t.Errorf("economy quote = %+v", pricing.Quotes[0])
	}
	if pricing.Travelers != 1 {
		t.Errorf("travelers floored to %d, want 1", pricing.Travelers)
	}
}

func TestFallbackFlightQuotes(t *testing.T) {
	quotes := fallbackFlightQuotes(800, 1, "USD")

	// 0.11*800 + 90 = 178 economy, scaled 1.6x and 2.4x upward.
	wants := []struct {
		id    string
		price float64
	}{
		{"flight-economy", 178},
		{"flight-premium-economy", 284.8},
		{"flight-business", 427.2},
	}
	for i, want := range wants {
		if quotes[i].ID != want.id || quotes[i].PricePerPerson != want.price {
			t.Errorf("quote %d = %+v, want %v at %v", i, quotes[i], want.id, want.price)
		}
	}
	if quotes[0].DurationHours != 3 {
		t.Errorf("duration = %v, want floor of 3", quotes[0].DurationHours)
	}

	// Short legs floor at the minimum economy fare.
	short := fallbackFlightQuotes(100, 1, "USD")
	if short[0].PricePerPerson != 120 {
		t.Errorf("short-leg economy = %v, want 120", short[0].PricePerPerson)
	}
}

func TestDurationToHours(t *testing.T) {
	if got := durationToHours([]byte("9000")); got != 2.5 {
		t.Errorf("numeric seconds = %v, want 2.5", got)
	}
	if got := durationToHours([]byte(`"PT2H30M"`)); got != 2.5 {
		t.Errorf("ISO string = %v, want 2.5", got)
	}
	if got := durationToHours(nil); got != 0 {
		t.Errorf("empty duration = %v, want 0", got)
	}
	if got := durationToHours([]byte(`"garbled"`)); got != 0 {
		t.Errorf("garbled duration = %v, want 0", got)
	}
}

func TestParseISODuration(t *testing.T) {
	cases := map[string]float64{
		"PT2H30M": 2.5,
		"PT45M":   0.8,
		"PT10H":   10,
		"2H30M":   0,
		"":        0,
	}
	for in, want := range cases {
		if got := parseISODuration(in); got != want {
			t.Errorf("parseISODuration(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestResolveAirportCode(t *testing.T) {
	if got := resolveAirportCode(models.PlaceDetails{Name: "Paris"}); got != "PAR" {
		t.Errorf("Paris = %q, want PAR", got)
	}
	explicit := models.PlaceDetails{Name: "Paris", AirportCode: "cdg"}
	if got := resolveAirportCode(explicit); got != "CDG" {
		t.Errorf("explicit code = %q, want CDG", got)
	}
}
