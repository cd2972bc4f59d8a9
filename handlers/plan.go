// File: handlers/plan.go
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripmesh/models"
	"tripmesh/services/planner"
	"tripmesh/services/transportpricing"
	"tripmesh/utils"
)

const (
	minTripDays  = 1
	maxTripDays  = 30
	minBudget    = 500
	maxBudget    = 100000
	defaultDays  = 5
	defaultStyle = "Mid-Range"
	defaultGroup = "Solo"
)

// GenerateItineraryHandler validates a plan request and runs the full
// generation pipeline.
func (hb *HandlerBundle) GenerateItineraryHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Content-Type must be application/json"})
		return
	}

	req.Source = strings.TrimSpace(req.Source)
	req.Destination = strings.TrimSpace(req.Destination)
	req.Style = strings.TrimSpace(req.Style)
	req.Group = strings.TrimSpace(req.Group)
	req.SpecialNeeds = strings.TrimSpace(req.SpecialNeeds)
	if req.Days == 0 {
		req.Days = defaultDays
	}
	if req.Style == "" {
		req.Style = defaultStyle
	}
	if req.Group == "" {
		req.Group = defaultGroup
	}
	if req.Travelers == 0 {
		req.Travelers = 1
	}

	if msg := validatePlanRequest(req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
		return
	}

	logger.Info("Generating itinerary",
		zap.String("source", req.Source),
		zap.String("destination", req.Destination),
		zap.Int("days", req.Days),
		zap.Float64("budget", req.Budget),
		zap.Int("travelers", req.Travelers),
	)

	result, err := hb.Planner.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to generate itinerary", zap.Error(err))
		if planner.IsMalformedDocument(err) {
			c.JSON(http.StatusBadGateway, gin.H{
				"success": false,
				"error":   "Generator returned an unreadable document",
				"message": "Please try again later",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to generate itinerary",
			"message": "Please try again later",
		})
		return
	}

	// Top-level documents are scaled to the whole group; the _normalized
	// variants stay per-person.
	scaledItinerary := transportpricing.ScaleItineraryForGroup(result.Itinerary, req.Travelers)
	scaledBudget := transportpricing.ScaleBudgetForGroup(result.Budget, req.Travelers)

	c.JSON(http.StatusOK, gin.H{
		"success":              true,
		"itinerary":            scaledItinerary,
		"itinerary_normalized": result.Itinerary,
		"itinerary_raw":        result.ItineraryRaw,
		"budget":               scaledBudget,
		"budget_normalized":    result.Budget,
		"budget_raw":           result.BudgetRaw,
		"transport":            result.Transport,
		"hotels":               result.Hotels,
		"group": gin.H{
			"type":       req.Group,
			"travelers":  req.Travelers,
			"start_date": req.StartDate,
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// validatePlanRequest enforces the request bounds; empty means valid.
func validatePlanRequest(req models.PlanRequest) string {
	if req.Source == "" {
		return "Source cannot be empty"
	}
	if req.Destination == "" {
		return "Destination cannot be empty"
	}
	if req.Days < minTripDays || req.Days > maxTripDays {
		return "Days must be between 1 and 30"
	}
	if req.Budget < minBudget || req.Budget > maxBudget {
		return "Budget must be between 500 and 100000"
	}
	if len(req.Interests) == 0 {
		return "At least one interest must be selected"
	}
	if req.Travelers < 1 {
		return "Travelers must be at least 1"
	}
	if !strings.EqualFold(req.Group, "solo") && req.Travelers < 2 {
		return "Please provide the number of travelers for non-solo trips"
	}
	return ""
}
