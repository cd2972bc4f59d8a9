// File: services/traveldata/country_test.go
package traveldata

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestCountryInfoSelectsExactMatch(t *testing.T) {
	transport := &stubTransport{responses: map[string]string{
		"restcountries.com": `[
			{"name": {"common": "Indian Ocean Territory", "official": "British Indian Ocean Territory"}, "cca2": "IO"},
			{"name": {"common": "India", "official": "Republic of India"},
			 "capital": ["New Delhi"], "region": "Asia", "subregion": "Southern Asia",
			 "population": 1380004385, "cca2": "IN", "cca3": "IND",
			 "currencies": {"INR": {"name": "Indian Rupee", "symbol": "₹"}},
			 "languages": {"hin": "Hindi"}, "timezones": ["Asia/Kolkata"]}
		]`,
	}}
	svc := newStubService(t, transport)

	got, err := svc.CountryInfo(context.Background(), "India")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "India" || got.Capital != "New Delhi" || got.CountryCode != "IN" {
		t.Errorf("info = %+v", got)
	}
	if got.CurrencyCode != "INR" || got.CurrencySymbol != "₹" {
		t.Errorf("currency = %s %s", got.CurrencyCode, got.CurrencySymbol)
	}
}

func TestCountryInfoFallsBackToOverrides(t *testing.T) {
	svc := newStubService(t, &stubTransport{status: http.StatusServiceUnavailable})

	got, err := svc.CountryInfo(context.Background(), "India")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Capital != "New Delhi" || got.CurrencyCode != "INR" {
		t.Errorf("override = %+v", got)
	}

	if _, err := svc.CountryInfo(context.Background(), "Atlantis"); err == nil {
		t.Error("expected error for country with no override")
	}
	if _, err := svc.CountryInfo(context.Background(), ""); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestBuildCountryInfoDefaults(t *testing.T) {
	got := buildCountryInfo(restCountry{}, "Nowhere")
	if got.Name != "Nowhere" || got.Capital != "N/A" || got.Region != "N/A" {
		t.Errorf("defaults = %+v", got)
	}
	if got.CurrencyCode != "USD" || got.CurrencyName != "Unknown" {
		t.Errorf("currency defaults = %s %s", got.CurrencyCode, got.CurrencyName)
	}
}

func TestAdvisory(t *testing.T) {
	transport := &stubTransport{responses: map[string]string{
		"travel-advisory.info": `{"data": {"FR": {"name": "France",
			"advisory": {"score": 2.4, "message": "Exercise a high degree of caution", "updated": "2026-08-01"}}}}`,
	}}
	svc := newStubService(t, transport)

	got, err := svc.Advisory(context.Background(), "fr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Country != "FR" || got.Level != "Exercise increased caution" || got.Score != 2.4 {
		t.Errorf("advisory = %+v", got)
	}

	if _, err := svc.Advisory(context.Background(), "ZZ"); err == nil {
		t.Error("expected error for country without advisory data")
	}
	if _, err := svc.Advisory(context.Background(), ""); err == nil {
		t.Error("expected error for empty code")
	}
}

func TestAdvisoryDefaultsMessage(t *testing.T) {
	transport := &stubTransport{responses: map[string]string{
		"travel-advisory.info": `{"data": {"NO": {"name": "Norway", "advisory": {"score": 9}}}}`,
	}}
	svc := newStubService(t, transport)

	got, err := svc.Advisory(context.Background(), "NO")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Message != "No advisory" || got.Level != "Unknown" {
		t.Errorf("advisory = %+v", got)
	}
}

func TestRateCacheTTLDefault(t *testing.T) {
	svc := NewDefaultTravelDataService("", nil, 0)
	if svc.rateCacheTTL != time.Hour {
		t.Errorf("default TTL = %v, want 1h", svc.rateCacheTTL)
	}
}
