// File: services/traveldata/weather.go
package traveldata

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"tripmesh/models"
)

type openMeteoResponse struct {
	Timezone string `json:"timezone"`
	Daily    struct {
		Time          []string  `json:"time"`
		TempMax       []float64 `json:"temperature_2m_max"`
		TempMin       []float64 `json:"temperature_2m_min"`
		Precipitation []float64 `json:"precipitation_sum"`
		WeatherCode   []int     `json:"weathercode"`
	} `json:"daily"`
}

// Weather fetches a daily forecast from Open-Meteo. The upstream caps
// forecasts at 16 days.
func (s *DefaultTravelDataService) Weather(ctx context.Context, lat, lon float64, days int) (*models.WeatherReport, error) {
	if days <= 0 {
		days = 7
	}
	if days > 16 {
		days = 16
	}
	params := url.Values{}
	params.Set("latitude", formatCoord(lat))
	params.Set("longitude", formatCoord(lon))
	params.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum,weathercode")
	params.Set("forecast_days", strconv.Itoa(days))
	params.Set("timezone", "auto")

	var payload openMeteoResponse
	if err := s.getJSON(ctx, openMeteoURL+"/forecast?"+params.Encode(), nil, &payload); err != nil {
		return nil, fmt.Errorf("weather lookup failed: %w", err)
	}

	report := &models.WeatherReport{
		Location:  models.Coordinates{Lat: lat, Lon: lon},
		Timezone:  payload.Timezone,
		Forecasts: make([]models.DayForecast, 0, len(payload.Daily.Time)),
	}
	if report.Timezone == "" {
		report.Timezone = "UTC"
	}
	for i, date := range payload.Daily.Time {
		forecast := models.DayForecast{Date: date}
		if i < len(payload.Daily.TempMax) {
			forecast.TempMax = payload.Daily.TempMax[i]
		}
		if i < len(payload.Daily.TempMin) {
			forecast.TempMin = payload.Daily.TempMin[i]
		}
		if i < len(payload.Daily.Precipitation) {
			forecast.Precipitation = payload.Daily.Precipitation[i]
		}
		if i < len(payload.Daily.WeatherCode) {
			forecast.WeatherCode = payload.Daily.WeatherCode[i]
		}
		report.Forecasts = append(report.Forecasts, forecast)
	}
	return report, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
