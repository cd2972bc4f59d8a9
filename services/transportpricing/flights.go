// File: services/transportpricing/flights.go
package transportpricing

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"

	"tripmesh/models"
	"tripmesh/utils"
)

var cityToAirport = map[string]string{
	"new delhi":     "DEL",
	"delhi":         "DEL",
	"mumbai":        "BOM",
	"bengaluru":     "BLR",
	"bangalore":     "BLR",
	"chennai":       "MAA",
	"kolkata":       "CCU",
	"hyderabad":     "HYD",
	"pune":          "PNQ",
	"goa":           "GOI",
	"kochi":         "COK",
	"ahmedabad":     "AMD",
	"jaipur":        "JAI",
	"dubai":         "DXB",
	"singapore":     "SIN",
	"tokyo":         "TYO",
	"osaka":         "OSA",
	"paris":         "PAR",
	"london":        "LON",
	"new york":      "NYC",
	"san francisco": "SFO",
	"los angeles":   "LAX",
	"sydney":        "SYD",
	"melbourne":     "MEL",
	"toronto":       "YTO",
}

// resolveAirportCode maps a place to its IATA city code, preferring an
// explicit code over the lookup table.
func resolveAirportCode(place models.PlaceDetails) string {
	if place.AirportCode != "" {
		return strings.ToUpper(place.AirportCode)
	}
	name := strings.ToLower(place.DisplayLabel())
	return cityToAirport[name]
}

type tequilaLocationsResponse struct {
	Locations []struct {
		Code string `json:"code"`
	} `json:"locations"`
}

// lookupIATA resolves a city's IATA code through the Tequila locations
// API. Returns empty on any failure; callers fall back to estimates.
func (s *DefaultTransportService) lookupIATA(ctx context.Context, term, country string) string {
	if s.tequilaKey == "" || term == "" {
		return ""
	}
	params := url.Values{}
	params.Set("term", term)
	params.Set("location_types", "city")
	params.Set("limit", "1")
	if country != "" {
		params.Set("country", strings.ToUpper(country))
	}

	var payload tequilaLocationsResponse
	if err := s.getJSON(ctx, tequilaBaseURL+"/locations/query?"+params.Encode(), &payload); err != nil {
		utils.GetLogger().Sugar().Warnf("Failed to resolve IATA code via Tequila: %v", err)
		return ""
	}
	if len(payload.Locations) == 0 {
		return ""
	}
	return payload.Locations[0].Code
}

type tequilaSearchResponse struct {
	Data []struct {
		ID         string             `json:"id"`
		Price      float64            `json:"price"`
		Conversion map[string]float64 `json:"conversion"`
		Duration   struct {
			Total json.RawMessage `json:"total"`
		} `json:"duration"`
		Airlines       []string         `json:"airlines"`
		Route          []map[string]any `json:"route"`
		DeepLink       string           `json:"deep_link"`
		LocalDeparture string           `json:"local_departure"`
	} `json:"data"`
}

// flightQuotes searches live one-way fares on the departure date, cheapest
// first. Missing key or codes yield no quotes.
func (s *DefaultTransportService) flightQuotes(ctx context.Context, sourceCode, destCode string, departure time.Time, travelers int) []models.TransportQuote {
	if s.tequilaKey == "" || sourceCode == "" || destCode == "" {
		return nil
	}
	dateStr := departure.Format("02/01/2006")
	params := url.Values{}
	params.Set("fly_from", sourceCode)
	params.Set("fly_to", destCode)
	params.Set("date_from", dateStr)
	params.Set("date_to", dateStr)
	params.Set("curr", s.currency)
	params.Set("adults", strconv.Itoa(max(1, travelers)))
	params.Set("limit", "4")
	params.Set("sort", "price")

	var payload tequilaSearchResponse
	if err := s.getJSON(ctx, tequilaBaseURL+"/v2/search?"+params.Encode(), &payload); err != nil {
		utils.GetLogger().Sugar().Warnf("Flight quote API failed: %v", err)
		return nil
	}

	quotes := make([]models.TransportQuote, 0, len(payload.Data))
	for _, entry := range payload.Data {
		carrier := "Multiple"
		if len(entry.Airlines) > 0 {
			carrier = entry.Airlines[0]
		}
		stops := 0
		if len(entry.Route) > 1 {
			stops = len(entry.Route) - 1
		}
		departureDate := entry.LocalDeparture
		if len(departureDate) > 10 {
			departureDate = departureDate[:10]
		}
		groupPrice := roundTo2(entry.Price * float64(max(1, travelers)))
		quotes = append(quotes, models.TransportQuote{
			ID:             entry.ID,
			Mode:           "flight",
			Provider:       carrier,
			Currency:       s.currency,
			PricePerPerson: entry.Price,
			GroupPrice:     &groupPrice,
			DurationHours:  durationToHours(entry.Duration.Total),
			Stops:          stops,
			Confidence:     "live",
			BookingURL:     entry.DeepLink,
			Departure:      departureDate,
		})
	}
	return quotes
}

// fallbackFlightQuotes estimates cabin-tier fares from route distance when
// live search is unavailable.
func fallbackFlightQuotes(distanceKM float64, travelers int, currency string) []models.TransportQuote {
	if distanceKM <= 0 {
		distanceKM = 800
	}

	baseEconomy := math.Max(120.0, 0.11*distanceKM+90)
	tiers := []struct {
		Cabin string
		Price float64
	}{
		{"Economy", baseEconomy},
		{"Premium Economy", baseEconomy * 1.6},
		{"Business", baseEconomy * 2.4},
	}

	quotes := make([]models.TransportQuote, 0, len(tiers))
	for _, tier := range tiers {
		perPerson := roundTo2(tier.Price)
		groupPrice := roundTo2(tier.Price * float64(max(1, travelers)))
		quotes = append(quotes, models.TransportQuote{
			ID:             "flight-" + strings.ReplaceAll(strings.ToLower(tier.Cabin), " ", "-"),
			Mode:           "flight",
			Provider:       tier.Cabin,
			Currency:       currency,
			PricePerPerson: perPerson,
			GroupPrice:     &groupPrice,
			DurationHours:  math.Round(math.Max(3.0, distanceKM/750.0)*10) / 10,
			Confidence:     "estimated",
			Notes:          "Estimated using distance-based heuristic due to missing live API key",
		})
	}
	return quotes
}

// durationToHours handles both wire forms of a trip duration: seconds as
// a number, or an ISO 8601 PT#H#M string.
func durationToHours(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var seconds float64
	if err := json.Unmarshal(raw, &seconds); err == nil {
		if seconds <= 0 {
			return 0
		}
		return math.Round(seconds/3600.0*10) / 10
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return parseISODuration(text)
	}
	return 0
}

// parseISODuration converts a PT#H#M duration string to hours.
func parseISODuration(duration string) float64 {
	if !strings.HasPrefix(duration, "PT") {
		return 0
	}
	hours := 0.0
	number := ""
	for _, char := range duration[2:] {
		switch {
		case unicode.IsDigit(char):
			number += string(char)
		case char == 'H' && number != "":
			v, _ := strconv.ParseFloat(number, 64)
			hours += v
			number = ""
		case char == 'M' && number != "":
			v, _ := strconv.ParseFloat(number, 64)
			hours += v / 60.0
			number = ""
		default:
			number = ""
		}
	}
	return math.Round(hours*10) / 10
}

func (s *DefaultTransportService) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", s.tequilaKey)
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("tequila returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
