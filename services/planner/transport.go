// File: services/planner/transport.go
package planner

import (
	"context"
	"fmt"
	"math"
	"strings"

	"tripmesh/models"
	"tripmesh/utils"

	"go.uber.org/zap"
)

// CurrencyConverter resolves a conversion rate between two currency codes.
// Implemented by the travel-data exchange service; a failed lookup degrades
// to a 1:1 rate rather than blocking injection.
type CurrencyConverter interface {
	Rate(ctx context.Context, from, to string) (float64, error)
}

// QuoteTotalCost is the comparable total for a quote: the group price when
// present, otherwise price-per-person times the traveler count.
func QuoteTotalCost(quote models.TransportQuote, travelers int) float64 {
	if quote.GroupPrice != nil {
		return *quote.GroupPrice
	}
	if travelers < 1 {
		travelers = 1
	}
	return quote.PricePerPerson * float64(travelers)
}

// SelectBestQuote picks the minimum-total-cost quote. Duration and confidence
// are deliberately not scored; they ride along for display only.
func SelectBestQuote(quotes []models.TransportQuote, travelers int) *models.TransportQuote {
	var best *models.TransportQuote
	bestCost := math.Inf(1)
	for i := range quotes {
		cost := QuoteTotalCost(quotes[i], travelers)
		if cost < bestCost {
			best = &quotes[i]
			bestCost = cost
		}
	}
	return best
}

func convertToUSD(ctx context.Context, converter CurrencyConverter, amount float64, currency string) float64 {
	if amount <= 0 {
		return 0
	}
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" || code == "USD" {
		return amount
	}
	rate := 1.0
	if converter != nil {
		fetched, err := converter.Rate(ctx, code, "USD")
		if err != nil || fetched <= 0 {
			utils.GetLogger().Warn("exchange lookup failed, assuming 1:1",
				zap.String("currency", code), zap.Error(err))
		} else {
			rate = fetched
		}
	}
	return amount * rate
}

// findTravelDayIndex scans each day's text for travel keywords and returns
// the first matching day, defaulting to day 1.
func findTravelDayIndex(schedule []models.Day) int {
	for i, day := range schedule {
		var bits []string
		bits = append(bits, day.Theme)
		for _, a := range day.Activities {
			bits = append(bits, a.Activity, a.Description)
		}
		for _, m := range day.Meals {
			bits = append(bits, m.Restaurant)
		}
		if mentionsTravel(strings.Join(bits, " ")) {
			return i
		}
	}
	return 0
}

// InjectTransportCosts splices the cheapest quote into the itinerary as a
// synthetic activity on the travel day and adds its cost to the budget's
// transport bucket. Returns new documents plus the applied-quote summary,
// or (clones, nil) when there is nothing injectable.
func InjectTransportCosts(
	ctx context.Context,
	it *models.Itinerary,
	budget *models.BudgetEstimate,
	pricing *models.TransportPricing,
	converter CurrencyConverter,
) (*models.Itinerary, *models.BudgetEstimate, *models.TransportSummary) {
	itOut := it.Clone()
	budgetOut := budget.Clone()
	if budgetOut == nil {
		budgetOut = &models.BudgetEstimate{}
	}
	if itOut == nil || len(itOut.Schedule) == 0 || pricing == nil || len(pricing.Quotes) == 0 {
		return itOut, budgetOut, nil
	}

	travelers := pricing.Travelers
	if travelers < 1 {
		travelers = 1
	}
	best := SelectBestQuote(pricing.Quotes, travelers)
	if best == nil {
		return itOut, budgetOut, nil
	}

	nativeTotal := QuoteTotalCost(*best, travelers)
	usdTotal := convertToUSD(ctx, converter, nativeTotal, best.Currency)
	if usdTotal <= 0 {
		return itOut, budgetOut, nil
	}

	dayIdx := findTravelDayIndex(itOut.Schedule)
	targetDay := &itOut.Schedule[dayIdx]

	sourceLabel := pricing.Source.Label
	if sourceLabel == "" {
		sourceLabel = "Departure"
	}
	destLabel := pricing.Destination.Label
	if destLabel == "" {
		destLabel = "Arrival"
	}
	routeLabel := sourceLabel + " -> " + destLabel

	modeLabel := titleWords(strings.ReplaceAll(orDefault(best.Mode, "transport"), "_", " "))
	providerLabel := best.Provider
	if providerLabel == "" {
		providerLabel = best.ClassLabel
	}
	if providerLabel == "" {
		providerLabel = "Preferred Carrier"
	}
	confidence := titleWords(orDefault(best.Confidence, "estimated"))
	localCurrency := strings.ToUpper(orDefault(best.Currency, "USD"))
	entryCost := int(math.Round(usdTotal))

	tip := best.Notes
	if tip == "" {
		tip = fmt.Sprintf("%s fare injected automatically.", confidence)
	}

	entry := models.Activity{
		Time:     orDefault(best.Departure, "08:00"),
		Activity: fmt.Sprintf("%s via %s", modeLabel, providerLabel),
		Location: routeLabel,
		Cost:     entryCost,
		Description: fmt.Sprintf("%s cost for %d travelers (%s %d).",
			modeLabel, travelers, localCurrency, int(math.Round(nativeTotal))),
		Tip:      tip,
		Category: "transport",
	}
	targetDay.Activities = append([]models.Activity{entry}, targetDay.Activities...)
	targetDay.TotalCost += entryCost

	if budgetOut.Breakdown.Transport == nil {
		budgetOut.Breakdown.Transport = &models.EstimatedBudget{}
	}
	budgetOut.Breakdown.Transport.Estimated += entryCost

	summary := &models.TransportSummary{
		QuoteID:      best.ID,
		Mode:         best.Mode,
		Provider:     providerLabel,
		Currency:     localCurrency,
		NativeAmount: utils.RoundTo2(nativeTotal),
		USDAmount:    entryCost,
		// Report the schedule position rather than the day's own label,
		// which generators sometimes leave at zero.
		TravelDay: dayIdx + 1,
		Notes:     best.Notes,
	}
	itOut.EnsureMeta()["transport_quote"] = summary
	budgetOut.EnsureMeta()["transport_quote"] = summary

	return itOut, budgetOut, summary
}

// InjectHotelRecommendations attaches ranked hotel candidates to the
// itinerary and inserts a synthetic check-in activity on day 1. Guarded by
// the lodging_injected flag so re-running is a no-op.
func InjectHotelRecommendations(it *models.Itinerary, hotels []models.POI, destinationName string) *models.Itinerary {
	out := it.Clone()
	if out == nil || len(hotels) == 0 {
		return out
	}

	out.EnsureMeta()["hotels"] = firstN(hotels, 5)
	if len(out.Schedule) == 0 {
		return out
	}

	firstDay := &out.Schedule[0]
	meta := firstDay.EnsureMeta()
	if injected, ok := meta["lodging_injected"].(bool); ok && injected {
		return out
	}
	meta["lodging_injected"] = true
	firstDay.Lodging = firstN(hotels, 3)

	primary := hotels[0]
	anchorTime := "09:00"
	if len(firstDay.Activities) > 0 && firstDay.Activities[0].Time != "" {
		anchorTime = firstDay.Activities[0].Time
	}

	location := primary.Address
	if location == "" {
		location = destinationName
	}
	if location == "" {
		location = "City Center"
	}
	description := primary.Description
	if description == "" {
		description = "Suggested lodging near key attractions."
	}

	checkIn := models.Activity{
		Time:        anchorTime,
		Activity:    "Check-in: " + orDefault(primary.Name, "Hotel"),
		Location:    location,
		Description: description,
		Category:    "lodging",
		Cost:        0,
		Tip:         "Geoapify hotel recommendation",
	}
	firstDay.Activities = append([]models.Activity{checkIn}, firstDay.Activities...)

	return out
}

func firstN(pois []models.POI, n int) []models.POI {
	if len(pois) <= n {
		return append([]models.POI(nil), pois...)
	}
	return append([]models.POI(nil), pois[:n]...)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
