// File: services/traveldata/advisory.go
package traveldata

import (
	"context"
	"fmt"
	"strings"

	"tripmesh/models"
)

var safetyLevels = map[int]string{
	1: "Exercise normal precautions",
	2: "Exercise increased caution",
	3: "Reconsider travel",
	4: "Do not travel",
	5: "Do not travel",
}

type advisoryResponse struct {
	Data map[string]struct {
		Name     string `json:"name"`
		Advisory struct {
			Score         float64 `json:"score"`
			Message       string  `json:"message"`
			Updated       string  `json:"updated"`
			SourcesActive int     `json:"sources_active"`
		} `json:"advisory"`
	} `json:"data"`
}

// Advisory fetches the safety advisory for a country code from
// travel-advisory.info.
func (s *DefaultTravelDataService) Advisory(ctx context.Context, countryCode string) (*models.Advisory, error) {
	countryCode = strings.ToUpper(strings.TrimSpace(countryCode))
	if countryCode == "" {
		return nil, fmt.Errorf("country code is required")
	}

	var payload advisoryResponse
	if err := s.getJSON(ctx, travelAdvisoryURL, nil, &payload); err != nil {
		return nil, fmt.Errorf("travel advisory lookup failed: %w", err)
	}

	entry, ok := payload.Data[countryCode]
	if !ok {
		return nil, fmt.Errorf("no advisory for country %s", countryCode)
	}

	level, ok := safetyLevels[int(entry.Advisory.Score)]
	if !ok {
		level = "Unknown"
	}
	message := entry.Advisory.Message
	if message == "" {
		message = "No advisory"
	}
	return &models.Advisory{
		Country:     countryCode,
		CountryName: entry.Name,
		Score:       entry.Advisory.Score,
		Level:       level,
		Message:     message,
		Updated:     entry.Advisory.Updated,
	}, nil
}
