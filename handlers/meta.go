// File: handlers/meta.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripmesh/config"
)

// HealthHandler reports service health and which upstream keys are set.
func (hb *HandlerBundle) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"environment": config.AppConfig.Env,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"env_vars_set": gin.H{
			"GEMINI_API_KEY":   config.AppConfig.GeminiAPIKey != "",
			"GEOAPIFY_API_KEY": config.AppConfig.GeoapifyAPIKey != "",
			"TEQUILA_API_KEY":  config.AppConfig.TequilaAPIKey != "",
		},
	})
}

// StatusHandler reports application identity and configuration.
func (hb *HandlerBundle) StatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":         "TripMesh API",
		"version":     "1.0.0",
		"environment": config.AppConfig.Env,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

// StylesHandler lists the supported travel styles.
func (hb *HandlerBundle) StylesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, []string{
		"Budget", "Mid-Range", "Luxury", "Adventure", "Cultural", "Relaxation",
	})
}

// InterestsHandler lists the supported trip interests.
func (hb *HandlerBundle) InterestsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, []string{
		"History & Culture", "Food & Dining", "Adventure Sports", "Nature",
		"Nightlife", "Shopping", "Beach", "Mountains", "Art & Museums", "Photography",
	})
}

// GroupsHandler lists the supported group types.
func (hb *HandlerBundle) GroupsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, []string{
		"Solo", "Couple", "Family", "Friends Group", "Corporate",
	})
}
