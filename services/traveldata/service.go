// File: services/traveldata/service.go
package traveldata

import (
	"context"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"

	"tripmesh/models"
)

const (
	openMeteoURL           = "https://api.open-meteo.com/v1"
	geoNamesTimezoneURL    = "http://api.geonames.org/timezoneJSON"
	geoNamesUsername       = "demo"
	restCountriesURL       = "https://restcountries.com/v3.1"
	travelAdvisoryURL      = "https://www.travel-advisory.info/api"
	exchangeRateURL        = "https://api.exchangerate-api.com/v4/latest"
	geoapifyPlacesURL      = "https://api.geoapify.com/v2/places"
	geoapifyAutompleteURL  = "https://api.geoapify.com/v1/geocode/autocomplete"
	nominatimAutompleteURL = "https://nominatim.openstreetmap.org/search"
)

// Service exposes the external travel data collaborators: destination
// search, weather, timezone, country facts, advisories, rates and places.
type Service interface {
	Autocomplete(ctx context.Context, query string, limit int) []models.Place
	Weather(ctx context.Context, lat, lon float64, days int) (*models.WeatherReport, error)
	Timezone(ctx context.Context, lat, lon float64) (*models.TimezoneInfo, error)
	CountryInfo(ctx context.Context, name string) (*models.CountryInfo, error)
	Advisory(ctx context.Context, countryCode string) (*models.Advisory, error)
	ExchangeRate(ctx context.Context, from, to string) (*models.ExchangeRate, error)
	POIs(ctx context.Context, lat, lon float64, kinds string, radius, limit int) ([]models.POI, error)
	Hotels(ctx context.Context, lat, lon float64, radius, limit int) ([]models.POI, error)
}

// DefaultTravelDataService backs the Service interface with the free-tier
// upstream APIs and an optional Redis cache for exchange rates.
type DefaultTravelDataService struct {
	client       *http.Client
	geoapifyKey  string
	cache        *redis.Client
	rateCacheTTL time.Duration

	rates *rateMemoCache
}

// NewDefaultTravelDataService builds the service. cache may be nil, in
// which case exchange rates fall back to an in-process memo cache only.
func NewDefaultTravelDataService(geoapifyKey string, cache *redis.Client, rateCacheTTL time.Duration) *DefaultTravelDataService {
	if rateCacheTTL <= 0 {
		rateCacheTTL = time.Hour
	}
	return &DefaultTravelDataService{
		client:       &http.Client{Timeout: 12 * time.Second},
		geoapifyKey:  geoapifyKey,
		cache:        cache,
		rateCacheTTL: rateCacheTTL,
		rates:        newRateMemoCache(rateCacheTTL),
	}
}
