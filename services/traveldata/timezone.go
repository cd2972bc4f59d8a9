// File: services/traveldata/timezone.go
package traveldata

import (
	"context"
	"fmt"
	"net/url"

	"tripmesh/models"
)

type geoNamesResponse struct {
	TimezoneID  string  `json:"timezoneId"`
	GMTOffset   float64 `json:"gmtOffset"`
	DSTOffset   float64 `json:"dstOffset"`
	Time        string  `json:"time"`
	CountryCode string  `json:"countryCode"`
	CountryName string  `json:"countryName"`
}

// Timezone resolves the timezone at a coordinate via GeoNames.
func (s *DefaultTravelDataService) Timezone(ctx context.Context, lat, lon float64) (*models.TimezoneInfo, error) {
	params := url.Values{}
	params.Set("lat", formatCoord(lat))
	params.Set("lng", formatCoord(lon))
	params.Set("username", geoNamesUsername)

	var payload geoNamesResponse
	if err := s.getJSON(ctx, geoNamesTimezoneURL+"?"+params.Encode(), nil, &payload); err != nil {
		return nil, fmt.Errorf("timezone lookup failed: %w", err)
	}

	info := &models.TimezoneInfo{
		Timezone:    payload.TimezoneID,
		GMTOffset:   payload.GMTOffset,
		DSTOffset:   payload.DSTOffset,
		Time:        payload.Time,
		CountryCode: payload.CountryCode,
		CountryName: payload.CountryName,
	}
	if info.Timezone == "" {
		info.Timezone = "UTC"
	}
	return info, nil
}
