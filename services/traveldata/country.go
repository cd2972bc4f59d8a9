// File: services/traveldata/country.go
package traveldata

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"tripmesh/models"
	"tripmesh/utils"
)

// localCountryOverrides backs CountryInfo when RestCountries is down for
// destinations the service sees the most traffic for.
var localCountryOverrides = map[string]models.CountryInfo{
	"india": {
		Name:           "India",
		Capital:        "New Delhi",
		Region:         "Asia",
		Subregion:      "Southern Asia",
		Population:     1380004385,
		Area:           3287263,
		CurrencyCode:   "INR",
		CurrencyName:   "Indian Rupee",
		CurrencySymbol: "₹",
		Languages:      []string{"Hindi", "English"},
		CountryCode:    "IN",
		CountryCode3:   "IND",
		Timezones:      []string{"Asia/Kolkata"},
		Flag:           "https://flagcdn.com/w320/in.png",
	},
}

type restCountry struct {
	Name struct {
		Common     string `json:"common"`
		Official   string `json:"official"`
		NativeName map[string]struct {
			Common   string `json:"common"`
			Official string `json:"official"`
		} `json:"nativeName"`
	} `json:"name"`
	Capital    []string `json:"capital"`
	Region     string   `json:"region"`
	Subregion  string   `json:"subregion"`
	Population int64    `json:"population"`
	Area       float64  `json:"area"`
	Currencies map[string]struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"currencies"`
	Languages map[string]string `json:"languages"`
	CCA2      string            `json:"cca2"`
	CCA3      string            `json:"cca3"`
	Timezones []string          `json:"timezones"`
	Flags     struct {
		PNG string `json:"png"`
	} `json:"flags"`
}

// CountryInfo resolves country facts through RestCountries. An exact-name
// query is tried first, then a partial match, then the local override
// table.
func (s *DefaultTravelDataService) CountryInfo(ctx context.Context, name string) (*models.CountryInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("country name is required")
	}
	overrideKey := strings.ToLower(name)
	logger := utils.GetLogger().Sugar()

	base := restCountriesURL + "/name/" + url.PathEscape(name)
	fullParams := url.Values{}
	fullParams.Set("fullText", "true")
	fullParams.Set("fields", "name,capital,region,subregion,population,area,currencies,languages,cca2,cca3,flags,timezones")

	var countries []restCountry
	if err := s.getJSON(ctx, base+"?"+fullParams.Encode(), nil, &countries); err != nil {
		partialParams := url.Values{}
		partialParams.Set("fullText", "false")
		if err := s.getJSON(ctx, base+"?"+partialParams.Encode(), nil, &countries); err != nil {
			logger.Errorf("Country info error for %q: %v", name, err)
			return localCountry(overrideKey)
		}
	}
	if len(countries) == 0 {
		return localCountry(overrideKey)
	}

	selected := countries[0]
	target := strings.ToLower(name)
	for _, c := range countries {
		if countryNameMatches(c, target) {
			selected = c
			break
		}
	}
	return buildCountryInfo(selected, name), nil
}

func countryNameMatches(c restCountry, target string) bool {
	candidates := []string{c.Name.Common, c.Name.Official}
	for _, native := range c.Name.NativeName {
		candidates = append(candidates, native.Common, native.Official)
	}
	for _, candidate := range candidates {
		if strings.ToLower(strings.TrimSpace(candidate)) == target {
			return true
		}
	}
	return false
}

func buildCountryInfo(c restCountry, fallbackName string) *models.CountryInfo {
	info := &models.CountryInfo{
		Name:         c.Name.Common,
		Capital:      "N/A",
		Region:       orNA(c.Region),
		Subregion:    orNA(c.Subregion),
		Population:   c.Population,
		Area:         c.Area,
		CurrencyCode: "USD",
		CurrencyName: "Unknown",
		CountryCode:  c.CCA2,
		CountryCode3: c.CCA3,
		Timezones:    c.Timezones,
		Flag:         c.Flags.PNG,
	}
	if info.Name == "" {
		info.Name = fallbackName
	}
	if len(c.Capital) > 0 {
		info.Capital = c.Capital[0]
	}
	for code, currency := range c.Currencies {
		info.CurrencyCode = code
		info.CurrencyName = currency.Name
		info.CurrencySymbol = currency.Symbol
		break
	}
	for _, language := range c.Languages {
		info.Languages = append(info.Languages, language)
	}
	return info
}

func localCountry(key string) (*models.CountryInfo, error) {
	if entry, ok := localCountryOverrides[key]; ok {
		out := entry
		return &out, nil
	}
	return nil, fmt.Errorf("country %q not found", key)
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
