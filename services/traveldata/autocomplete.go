// File: services/traveldata/autocomplete.go
package traveldata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"tripmesh/models"
	"tripmesh/utils"
)

// staticCities backs autocomplete when every upstream is unreachable.
var staticCities = []models.Place{
	{Name: "Paris", Country: "France", Lat: 48.8566, Lon: 2.3522},
	{Name: "London", Country: "United Kingdom", Lat: 51.5074, Lon: -0.1278},
	{Name: "New York", Country: "United States", Lat: 40.7128, Lon: -74.0060},
	{Name: "Tokyo", Country: "Japan", Lat: 35.6762, Lon: 139.6503},
	{Name: "Dubai", Country: "United Arab Emirates", Lat: 25.2048, Lon: 55.2708},
	{Name: "Barcelona", Country: "Spain", Lat: 41.3851, Lon: 2.1734},
	{Name: "Rome", Country: "Italy", Lat: 41.9028, Lon: 12.4964},
	{Name: "Amsterdam", Country: "Netherlands", Lat: 52.3676, Lon: 4.9041},
	{Name: "Berlin", Country: "Germany", Lat: 52.5200, Lon: 13.4050},
	{Name: "Sydney", Country: "Australia", Lat: -33.8688, Lon: 151.2093},
	{Name: "Singapore", Country: "Singapore", Lat: 1.3521, Lon: 103.8198},
	{Name: "Bangkok", Country: "Thailand", Lat: 13.7563, Lon: 100.5018},
	{Name: "Mumbai", Country: "India", Lat: 19.0760, Lon: 72.8777},
	{Name: "Istanbul", Country: "Turkey", Lat: 41.0082, Lon: 28.9784},
	{Name: "Los Angeles", Country: "United States", Lat: 34.0522, Lon: -118.2437},
	{Name: "Toronto", Country: "Canada", Lat: 43.6532, Lon: -79.3832},
	{Name: "Mexico City", Country: "Mexico", Lat: 19.4326, Lon: -99.1332},
	{Name: "Rio de Janeiro", Country: "Brazil", Lat: -22.9068, Lon: -43.1729},
	{Name: "Cairo", Country: "Egypt", Lat: 30.0444, Lon: 31.2357},
	{Name: "Cape Town", Country: "South Africa", Lat: -33.9249, Lon: 18.4241},
}

// Autocomplete resolves destination suggestions: Geoapify first, Nominatim
// on failure, then the static city list. Never returns an error; an
// unreachable upstream just narrows the result source.
func (s *DefaultTravelDataService) Autocomplete(ctx context.Context, query string, limit int) []models.Place {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []models.Place{}
	}
	if limit <= 0 {
		limit = 10
	}
	logger := utils.GetLogger().Sugar()

	if s.geoapifyKey != "" {
		results, err := s.geoapifyAutocomplete(ctx, query, limit)
		if err != nil {
			logger.Warnf("Geoapify autocomplete failed, trying Nominatim: %v", err)
		} else if len(results) > 0 {
			return results
		}
	}

	results, err := s.nominatimAutocomplete(ctx, query, limit)
	if err != nil {
		logger.Warnf("Nominatim autocomplete failed, using fallback: %v", err)
	} else if len(results) > 0 {
		return results
	}

	return fallbackAutocomplete(strings.ToLower(query), limit)
}

type geoapifyFeatureCollection struct {
	Features []struct {
		ID         string `json:"id"`
		Properties struct {
			PlaceID      string   `json:"place_id"`
			Name         string   `json:"name"`
			City         string   `json:"city"`
			State        string   `json:"state"`
			Country      string   `json:"country"`
			AddressLine1 string   `json:"address_line1"`
			AddressLine2 string   `json:"address_line2"`
			Formatted    string   `json:"formatted"`
			Lat          float64  `json:"lat"`
			Lon          float64  `json:"lon"`
			Distance     float64  `json:"distance"`
			Website      string   `json:"website"`
			PlaceDesc    string   `json:"place_description"`
			Categories   []string `json:"categories"`
			Rank         struct {
				Popularity float64 `json:"popularity"`
				Confidence float64 `json:"confidence"`
			} `json:"rank"`
			Datasource struct {
				URL string `json:"url"`
			} `json:"datasource"`
		} `json:"properties"`
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

func (s *DefaultTravelDataService) geoapifyAutocomplete(ctx context.Context, query string, limit int) ([]models.Place, error) {
	if limit > 20 {
		limit = 20
	}
	params := url.Values{}
	params.Set("text", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("lang", "en")
	params.Set("apiKey", s.geoapifyKey)

	var payload geoapifyFeatureCollection
	if err := s.getJSON(ctx, geoapifyAutompleteURL+"?"+params.Encode(), nil, &payload); err != nil {
		return nil, err
	}

	results := make([]models.Place, 0, limit)
	for _, feature := range payload.Features {
		props := feature.Properties
		lat, lon := props.Lat, props.Lon
		if lat == 0 && lon == 0 && len(feature.Geometry.Coordinates) == 2 {
			lon, lat = feature.Geometry.Coordinates[0], feature.Geometry.Coordinates[1]
		}
		if lat == 0 && lon == 0 {
			continue
		}
		name := firstNonEmpty(props.City, props.Name, props.AddressLine1, props.Formatted)
		if name == "" {
			continue
		}
		results = append(results, models.Place{
			Name:        name,
			Country:     props.Country,
			State:       props.State,
			Lat:         lat,
			Lon:         lon,
			DisplayName: firstNonEmpty(props.Formatted, name),
			Source:      "geoapify",
		})
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

type nominatimEntry struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		State   string `json:"state"`
		Country string `json:"country"`
	} `json:"address"`
}

func (s *DefaultTravelDataService) nominatimAutocomplete(ctx context.Context, query string, limit int) ([]models.Place, error) {
	if limit > 10 {
		limit = 10
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("addressdetails", "1")

	headers := http.Header{}
	headers.Set("User-Agent", "TripMesh/1.0 (ops@tripmesh.dev)")

	var entries []nominatimEntry
	if err := s.getJSON(ctx, nominatimAutompleteURL+"?"+params.Encode(), headers, &entries); err != nil {
		return nil, err
	}

	results := make([]models.Place, 0, limit)
	for _, entry := range entries {
		lat, _ := strconv.ParseFloat(entry.Lat, 64)
		lon, _ := strconv.ParseFloat(entry.Lon, 64)
		if lat == 0 || lon == 0 {
			continue
		}
		name := firstNonEmpty(entry.Address.City, entry.Address.Town, entry.Address.State, entry.DisplayName)
		if name == "" {
			continue
		}
		results = append(results, models.Place{
			Name:        name,
			Country:     entry.Address.Country,
			State:       entry.Address.State,
			Lat:         lat,
			Lon:         lon,
			DisplayName: firstNonEmpty(entry.DisplayName, name),
			Source:      "nominatim",
		})
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

func fallbackAutocomplete(query string, limit int) []models.Place {
	matches := make([]models.Place, 0, limit)
	for _, city := range staticCities {
		if strings.Contains(strings.ToLower(city.Name), query) || strings.Contains(strings.ToLower(city.Country), query) {
			matches = append(matches, city)
			if len(matches) >= limit {
				break
			}
		}
	}
	return matches
}

// getJSON performs a GET and decodes a JSON body, failing on non-2xx codes.
func (s *DefaultTravelDataService) getJSON(ctx context.Context, rawURL string, headers http.Header, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	if headers != nil {
		req.Header = headers
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
