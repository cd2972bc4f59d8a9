// File: services/traveldata/places.go
package traveldata

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"tripmesh/models"
	"tripmesh/utils"
)

const (
	defaultPOIRadius = 2500
	defaultPOILimit  = 15
)

var defaultPOIKinds = []string{
	"cultural", "historic", "museums", "natural", "parks",
	"foods", "restaurants", "shops", "sport", "interesting_places",
}

var hotelKinds = "hotels,hostels,guest_houses"

var defaultPOICategories = []string{
	"tourism.sights",
	"tourism.attraction",
	"entertainment.culture",
	"catering.restaurant",
	"catering.cafe",
	"leisure.park",
}

var kindCategoryMap = map[string][]string{
	"foods":              {"catering.restaurant", "catering.fast_food"},
	"restaurants":        {"catering.restaurant"},
	"cafes":              {"catering.cafe"},
	"cultural":           {"entertainment.culture", "tourism.sights"},
	"historic":           {"heritage.sights", "tourism.sights"},
	"museums":            {"entertainment.museum"},
	"natural":            {"natural", "tourism.sights"},
	"parks":              {"leisure.park"},
	"shops":              {"commercial.shopping_mall", "commercial.shopping_center"},
	"sport":              {"sport.sport_center"},
	"interesting_places": {"tourism.attraction"},
	"beaches":            {"natural.beach"},
	"mountains":          {"natural.mountain"},
	"hotels":             {"accommodation.hotel"},
	"hostels":            {"accommodation.hostel"},
	"guest_houses":       {"accommodation.guest_house"},
}

// POIs fetches nearby points of interest from Geoapify Places, ranked by
// popularity then distance. kinds is a comma separated list of friendly
// kind names; unknown kinds fall back to the default category set.
func (s *DefaultTravelDataService) POIs(ctx context.Context, lat, lon float64, kinds string, radius, limit int) ([]models.POI, error) {
	if s.geoapifyKey == "" {
		return nil, fmt.Errorf("missing Geoapify API key")
	}
	if lat == 0 && lon == 0 {
		return nil, fmt.Errorf("latitude and longitude are required for POI lookup")
	}

	if radius <= 0 {
		radius = defaultPOIRadius
	}
	if limit <= 0 {
		limit = defaultPOILimit
	}
	radius = clamp(radius, 500, 5000)
	limit = clamp(limit, 5, 18)

	categories := categoriesFromKinds(kinds)
	params := url.Values{}
	params.Set("categories", strings.Join(categories, ","))
	params.Set("filter", fmt.Sprintf("circle:%s,%s,%d", formatCoord(lon), formatCoord(lat), radius))
	params.Set("bias", fmt.Sprintf("proximity:%s,%s", formatCoord(lon), formatCoord(lat)))
	params.Set("limit", strconv.Itoa(limit*2))
	params.Set("apiKey", s.geoapifyKey)

	var payload geoapifyFeatureCollection
	if err := s.getJSON(ctx, geoapifyPlacesURL+"?"+params.Encode(), nil, &payload); err != nil {
		utils.GetLogger().Sugar().Errorf("Geoapify places error: %v", err)
		return []models.POI{}, nil
	}

	pois := make([]models.POI, 0, limit)
	for _, feature := range payload.Features {
		props := feature.Properties
		name := firstNonEmpty(props.Name, props.AddressLine1, props.Formatted)
		if name == "" {
			continue
		}
		featureKinds := props.Categories
		if len(featureKinds) == 0 {
			featureKinds = categories
		}
		poiLat, poiLon := props.Lat, props.Lon
		if poiLat == 0 && poiLon == 0 && len(feature.Geometry.Coordinates) >= 2 {
			poiLon, poiLat = feature.Geometry.Coordinates[0], feature.Geometry.Coordinates[1]
		}
		rating := props.Rank.Popularity
		if rating == 0 {
			rating = props.Rank.Confidence
		}
		pois = append(pois, models.POI{
			ID:          firstNonEmpty(props.PlaceID, feature.ID, name),
			Name:        name,
			Lat:         poiLat,
			Lon:         poiLon,
			DistanceM:   props.Distance,
			Rating:      rating,
			Kinds:       featureKinds,
			Address:     firstNonEmpty(props.AddressLine1, props.Formatted),
			Description: firstNonEmpty(props.PlaceDesc, props.AddressLine2),
			URL:         firstNonEmpty(props.Website, props.Datasource.URL),
			Source:      "geoapify",
		})
	}

	sort.SliceStable(pois, func(i, j int) bool {
		if pois[i].Rating != pois[j].Rating {
			return pois[i].Rating > pois[j].Rating
		}
		di, dj := pois[i].DistanceM, pois[j].DistanceM
		if di <= 0 {
			di = 1e12
		}
		if dj <= 0 {
			dj = 1e12
		}
		return di < dj
	})
	if len(pois) > limit {
		pois = pois[:limit]
	}
	return pois, nil
}

// Hotels fetches accommodation candidates around a coordinate.
func (s *DefaultTravelDataService) Hotels(ctx context.Context, lat, lon float64, radius, limit int) ([]models.POI, error) {
	if radius <= 0 {
		radius = 2000
	}
	if limit <= 0 {
		limit = 6
	}
	return s.POIs(ctx, lat, lon, hotelKinds, radius, limit)
}

func categoriesFromKinds(kinds string) []string {
	names := splitKinds(kinds)
	if len(names) == 0 {
		names = defaultPOIKinds
	}
	seen := make(map[string]bool)
	var categories []string
	for _, name := range names {
		for _, category := range kindCategoryMap[strings.ToLower(name)] {
			if !seen[category] {
				seen[category] = true
				categories = append(categories, category)
			}
		}
	}
	if len(categories) == 0 {
		categories = defaultPOICategories
	}
	return categories
}

func splitKinds(kinds string) []string {
	var out []string
	for _, part := range strings.Split(kinds, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
