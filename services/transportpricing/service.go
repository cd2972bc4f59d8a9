// File: services/transportpricing/service.go
package transportpricing

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"tripmesh/models"
)

const (
	tequilaBaseURL             = "https://api.tequila.kiwi.com"
	earthRadiusKM              = 6371.0
	defaultDepartureOffsetDays = 30
)

var countryAliases = map[string]string{
	"INDIA":                    "IN",
	"UNITED STATES":            "US",
	"UNITED STATES OF AMERICA": "US",
}

// Service prices transport between two trip endpoints.
type Service interface {
	BuildPricing(ctx context.Context, source, destination models.PlaceDetails, departureDate string, travelers int) (*models.TransportPricing, error)
}

// DefaultTransportService quotes domestic Indian routes from railway fare
// slabs and everything else from live flight search with a distance-based
// fallback.
type DefaultTransportService struct {
	client     *http.Client
	tequilaKey string
	currency   string
}

// NewDefaultTransportService builds the service. tequilaKey may be empty;
// flight quotes then come from the heuristic estimator.
func NewDefaultTransportService(tequilaKey, currency string) *DefaultTransportService {
	if currency == "" {
		currency = "USD"
	}
	return &DefaultTransportService{
		client:     &http.Client{Timeout: 12 * time.Second},
		tequilaKey: tequilaKey,
		currency:   currency,
	}
}

// BuildPricing assembles the quote set for a route. Domestic Indian trips
// are priced as trains, all others as flights.
func (s *DefaultTransportService) BuildPricing(ctx context.Context, source, destination models.PlaceDetails, departureDate string, travelers int) (*models.TransportPricing, error) {
	if travelers < 1 {
		travelers = 1
	}
	departure := normalizeDate(departureDate)
	distanceKM := haversineDistance(source, destination)

	sourceCountry := normalizeCountryCode(source.Country)
	destCountry := normalizeCountryCode(destination.Country)

	pricing := &models.TransportPricing{
		Travelers:     travelers,
		DepartureDate: departure.Format("2006-01-02"),
		DistanceKM:    roundTo1(distanceKM),
		Source:        models.RoutePoint{Label: source.DisplayLabel(), Country: sourceCountry},
		Destination:   models.RoutePoint{Label: destination.DisplayLabel(), Country: destCountry},
	}

	if sourceCountry == "IN" && destCountry == "IN" {
		pricing.TripType = "india_train"
		pricing.Quotes = estimateTrainQuotes(travelers, departure, distanceKM)
		if code := resolveStationCode(source); code != "" {
			pricing.Source.Label = fmt.Sprintf("%s (%s)", pricing.Source.Label, code)
		}
		if code := resolveStationCode(destination); code != "" {
			pricing.Destination.Label = fmt.Sprintf("%s (%s)", pricing.Destination.Label, code)
		}
		return pricing, nil
	}

	pricing.TripType = "international_flight"
	sourceCode := resolveAirportCode(source)
	if sourceCode == "" {
		sourceCode = s.lookupIATA(ctx, source.Name, sourceCountry)
	}
	destCode := resolveAirportCode(destination)
	if destCode == "" {
		destCode = s.lookupIATA(ctx, destination.Name, destCountry)
	}

	quotes := s.flightQuotes(ctx, sourceCode, destCode, departure, travelers)
	if len(quotes) == 0 {
		quotes = fallbackFlightQuotes(distanceKM, travelers, s.currency)
	}
	pricing.Quotes = quotes
	return pricing, nil
}

// haversineDistance returns the great-circle distance in km, or 0 when
// either endpoint is missing coordinates.
func haversineDistance(source, destination models.PlaceDetails) float64 {
	if source.Lat == 0 || source.Lon == 0 || destination.Lat == 0 || destination.Lon == 0 {
		return 0
	}
	phi1 := source.Lat * math.Pi / 180
	phi2 := destination.Lat * math.Pi / 180
	dPhi := (destination.Lat - source.Lat) * math.Pi / 180
	dLambda := (destination.Lon - source.Lon) * math.Pi / 180

	a := math.Pow(math.Sin(dPhi/2), 2) + math.Cos(phi1)*math.Cos(phi2)*math.Pow(math.Sin(dLambda/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}

// normalizeDate parses an ISO date, defaulting to 30 days out when the
// value is missing or malformed.
func normalizeDate(value string) time.Time {
	if value != "" {
		if t, err := time.Parse("2006-01-02", value); err == nil {
			return t
		}
		if t, err := time.Parse(time.RFC3339, value); err == nil {
			return t
		}
	}
	return time.Now().UTC().AddDate(0, 0, defaultDepartureOffsetDays)
}

func normalizeCountryCode(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return ""
	}
	if len(code) == 2 {
		return code
	}
	if alias, ok := countryAliases[code]; ok {
		return alias
	}
	return code
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
