// File: models/geo.go
package models

// POI is a point of interest returned by the places collaborator, pre-ranked
// by popularity then proximity.
type POI struct {
	ID          string   `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Lat         float64  `json:"lat,omitempty" bson:"lat,omitempty"`
	Lon         float64  `json:"lon,omitempty" bson:"lon,omitempty"`
	DistanceM   float64  `json:"dist_m,omitempty" bson:"distM,omitempty"`
	Rating      float64  `json:"rate,omitempty" bson:"rate,omitempty"`
	Kinds       []string `json:"kinds,omitempty" bson:"kinds,omitempty"`
	Address     string   `json:"address,omitempty" bson:"address,omitempty"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	URL         string   `json:"url,omitempty" bson:"url,omitempty"`
	Source      string   `json:"source,omitempty" bson:"source,omitempty"`
}

// Place is one destination autocomplete result.
type Place struct {
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	State       string  `json:"state,omitempty"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"display_name,omitempty"`
	Source      string  `json:"source,omitempty"`
}

// PlaceDetails carries caller-supplied location metadata for a trip endpoint.
type PlaceDetails struct {
	Name        string  `json:"name"`
	Label       string  `json:"label,omitempty"`
	Country     string  `json:"country,omitempty"`
	Lat         float64 `json:"lat,omitempty"`
	Lon         float64 `json:"lon,omitempty"`
	AirportCode string  `json:"airport_code,omitempty"`
	StationCode string  `json:"station_code,omitempty"`
}

// DisplayLabel returns the best human-readable name for the place.
func (p PlaceDetails) DisplayLabel() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Label
}

// DayForecast is one day of an Open-Meteo forecast.
type DayForecast struct {
	Date          string  `json:"date"`
	TempMax       float64 `json:"temp_max"`
	TempMin       float64 `json:"temp_min"`
	Precipitation float64 `json:"precipitation"`
	WeatherCode   int     `json:"weathercode"`
}

// WeatherReport is the forecast payload returned to callers.
type WeatherReport struct {
	Location  Coordinates   `json:"location"`
	Timezone  string        `json:"timezone"`
	Forecasts []DayForecast `json:"forecasts"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// TimezoneInfo is the GeoNames timezone lookup result.
type TimezoneInfo struct {
	Timezone    string  `json:"timezone"`
	GMTOffset   float64 `json:"gmtOffset"`
	DSTOffset   float64 `json:"dstOffset"`
	Time        string  `json:"time"`
	CountryCode string  `json:"countryCode"`
	CountryName string  `json:"countryName"`
}

// CountryInfo is the RestCountries lookup result.
type CountryInfo struct {
	Name           string   `json:"name"`
	Capital        string   `json:"capital"`
	Region         string   `json:"region"`
	Subregion      string   `json:"subregion"`
	Population     int64    `json:"population"`
	Area           float64  `json:"area"`
	CurrencyCode   string   `json:"currency_code"`
	CurrencyName   string   `json:"currency_name"`
	CurrencySymbol string   `json:"currency_symbol"`
	Languages      []string `json:"languages"`
	CountryCode    string   `json:"country_code"`
	CountryCode3   string   `json:"country_code3"`
	Timezones      []string `json:"timezones"`
	Flag           string   `json:"flag"`
}

// Advisory is the travel-advisory.info lookup result.
type Advisory struct {
	Country     string   `json:"country"`
	CountryName string   `json:"country_name"`
	Score       float64  `json:"score"`
	Level       string   `json:"level"`
	Message     string   `json:"message"`
	Sources     []string `json:"sources,omitempty"`
	Updated     string   `json:"updated,omitempty"`
}

// ExchangeRate is one currency conversion rate.
type ExchangeRate struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Rate float64 `json:"rate"`
	Date string  `json:"date,omitempty"`
	Base string  `json:"base,omitempty"`
}
