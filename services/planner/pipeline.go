// File: services/planner/pipeline.go
package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripmesh/models"
	"tripmesh/utils"
)

// GeoProvider supplies place data used to enrich itineraries.
type GeoProvider interface {
	POIs(ctx context.Context, lat, lon float64, kinds string, radius, limit int) ([]models.POI, error)
	Hotels(ctx context.Context, lat, lon float64, radius, limit int) ([]models.POI, error)
}

// TransportProvider builds route quotes between two places.
type TransportProvider interface {
	BuildPricing(ctx context.Context, source, destination models.PlaceDetails, departureDate string, travelers int) (*models.TransportPricing, error)
}

// PlanArchive persists generated plans. Saves are best effort.
type PlanArchive interface {
	Save(ctx context.Context, rec models.PlanRecord) error
}

// Service generates complete, normalized travel plans.
type Service interface {
	GeneratePlan(ctx context.Context, req models.PlanRequest) (*models.PlanResult, error)
}

// Deps carries everything the default service needs. Geo, Transport,
// Currency and Archive may be nil; the pipeline degrades gracefully.
type Deps struct {
	Agent     *Agent
	Geo       GeoProvider
	Transport TransportProvider
	Currency  CurrencyConverter
	Archive   PlanArchive

	POICacheTTL   time.Duration
	QuoteCacheTTL time.Duration
}

// DefaultPlannerService runs the full generation pipeline: LLM agents,
// cost normalization, meal scheduling, hotel and transport injection,
// then outlier smoothing against accumulated category history.
type DefaultPlannerService struct {
	agent     *Agent
	geo       GeoProvider
	transport TransportProvider
	currency  CurrencyConverter
	archive   PlanArchive

	history    *CostHistory
	poiCache   *ResultCache[[]models.POI]
	hotelCache *ResultCache[[]models.POI]
	quoteCache *ResultCache[*models.TransportPricing]
}

// NewDefaultPlannerService wires the pipeline with in-process caches.
func NewDefaultPlannerService(deps Deps) *DefaultPlannerService {
	poiTTL := deps.POICacheTTL
	if poiTTL <= 0 {
		poiTTL = time.Hour
	}
	quoteTTL := deps.QuoteCacheTTL
	if quoteTTL <= 0 {
		quoteTTL = 6 * time.Hour
	}
	return &DefaultPlannerService{
		agent:      deps.Agent,
		geo:        deps.Geo,
		transport:  deps.Transport,
		currency:   deps.Currency,
		archive:    deps.Archive,
		history:    NewCostHistory(DefaultHistoryCapacity),
		poiCache:   NewResultCache[[]models.POI](poiTTL),
		hotelCache: NewResultCache[[]models.POI](poiTTL),
		quoteCache: NewResultCache[*models.TransportPricing](quoteTTL),
	}
}

// GeneratePlan runs the whole pipeline for one validated request. Raw LLM
// documents are never mutated; every stage works on its own copy.
func (s *DefaultPlannerService) GeneratePlan(ctx context.Context, req models.PlanRequest) (*models.PlanResult, error) {
	logger := utils.GetLogger().Sugar()

	if req.SourceDetails.Name == "" {
		req.SourceDetails.Name = req.Source
	}
	if req.DestinationDetails.Name == "" {
		req.DestinationDetails.Name = req.Destination
	}

	mealPOIs, hotelRecs := s.lookupPlaces(ctx, req)

	itineraryRaw, err := s.agent.PlanItinerary(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(itineraryRaw) == 0 {
		return nil, fmt.Errorf("planner returned no itinerary data")
	}

	itinerary := NormalizeItineraryCosts(decodeItinerary(itineraryRaw), req.Budget, req.Days)
	if len(mealPOIs) > 0 {
		itinerary = ApplyMealPOIs(itinerary, mealPOIs, decodeItinerary(itineraryRaw))
		itinerary = NormalizeItineraryCosts(itinerary, req.Budget, req.Days)
	}
	if len(hotelRecs) > 0 {
		itinerary = InjectHotelRecommendations(itinerary, hotelRecs, req.Destination)
	}

	budgetRaw, err := s.agent.EstimateBudget(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(budgetRaw) == 0 {
		return nil, fmt.Errorf("budget agent returned no data")
	}
	budget := NormalizeBudgetEstimate(decodeBudget(budgetRaw), req.Budget, req.Days)

	pricing := s.lookupTransport(ctx, req)

	var summary *models.TransportSummary
	itinerary, budget, summary = InjectTransportCosts(ctx, itinerary, budget, pricing, s.currency)
	itinerary = SmoothCostOutliers(itinerary, s.history)
	if summary != nil && pricing != nil {
		pricing.AppliedQuote = summary
	}

	logger.Infof("Successfully generated itinerary for %s", req.Destination)

	result := &models.PlanResult{
		Itinerary:    itinerary,
		ItineraryRaw: itineraryRaw,
		Budget:       budget,
		BudgetRaw:    budgetRaw,
		Transport:    pricing,
		Hotels:       hotelRecs,
	}
	s.archivePlan(ctx, req, result, summary)
	return result, nil
}

// lookupPlaces fetches meal and hotel candidates around the destination,
// served from cache when fresh. Missing coordinates skip the lookup.
func (s *DefaultPlannerService) lookupPlaces(ctx context.Context, req models.PlanRequest) (mealPOIs, hotelRecs []models.POI) {
	if s.geo == nil {
		return nil, nil
	}
	lat := req.DestinationDetails.Lat
	lon := req.DestinationDetails.Lon
	if lat == 0 && lon == 0 {
		return nil, nil
	}

	mealKey := BuildCacheKey(req.Destination, req.StartDate, "meals")
	mealPOIs = s.poiCache.GetOrFetch(mealKey, func() ([]models.POI, error) {
		pois, err := s.geo.POIs(ctx, lat, lon, "foods,cafes,restaurants", 1500, 20)
		if err != nil {
			return nil, &ProviderUnavailableError{Provider: "places", Err: err}
		}
		return pois, nil
	}, nil)

	hotelKey := BuildCacheKey(req.Destination, req.StartDate, "hotels")
	hotelRecs = s.hotelCache.GetOrFetch(hotelKey, func() ([]models.POI, error) {
		hotels, err := s.geo.Hotels(ctx, lat, lon, 2500, 6)
		if err != nil {
			return nil, &ProviderUnavailableError{Provider: "hotels", Err: err}
		}
		return hotels, nil
	}, nil)
	return mealPOIs, hotelRecs
}

// lookupTransport builds route quotes, cached per route and departure date.
// Quote failures never fail the plan.
func (s *DefaultPlannerService) lookupTransport(ctx context.Context, req models.PlanRequest) *models.TransportPricing {
	if s.transport == nil {
		return nil
	}
	route := fmt.Sprintf("%s-%s-%d", req.Source, req.Destination, req.Travelers)
	key := BuildCacheKey(route, req.StartDate, "quotes")
	return s.quoteCache.GetOrFetch(key, func() (*models.TransportPricing, error) {
		pricing, err := s.transport.BuildPricing(ctx, req.SourceDetails, req.DestinationDetails, req.StartDate, req.Travelers)
		if err != nil {
			return nil, &ProviderUnavailableError{Provider: "transport", Err: err}
		}
		return pricing, nil
	}, nil)
}

// archivePlan stores the record if an archive is configured. Failures are
// logged and swallowed; archiving never blocks a response.
func (s *DefaultPlannerService) archivePlan(ctx context.Context, req models.PlanRequest, result *models.PlanResult, summary *models.TransportSummary) {
	if s.archive == nil {
		return
	}
	rec := models.PlanRecord{
		ID:           uuid.New().String(),
		Request:      req,
		Itinerary:    result.Itinerary,
		ItineraryRaw: result.ItineraryRaw,
		Budget:       result.Budget,
		BudgetRaw:    result.BudgetRaw,
		Transport:    summary,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.archive.Save(ctx, rec); err != nil {
		utils.GetLogger().Warn("Failed to archive plan", zap.String("plan_id", rec.ID), zap.Error(err))
	}
}
