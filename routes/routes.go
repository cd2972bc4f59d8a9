package routes

import (
	"net/http"
	"time"

	"tripmesh/config"
	"tripmesh/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPlanRoutes sets up the itinerary generation and archive endpoints.
func RegisterPlanRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/generate-itinerary", hb.GenerateItineraryHandler)
		api.GET("/plans", hb.ListPlansHandler)
		api.GET("/plans/:id", hb.GetPlanHandler)
	}
}

// RegisterTravelDataRoutes sets up the destination data endpoints.
func RegisterTravelDataRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/autocomplete", hb.AutocompleteHandler)
		api.POST("/weather", hb.WeatherHandler)
		api.POST("/timezone", hb.TimezoneHandler)
		api.GET("/travel-advisory", hb.TravelAdvisoryHandler)
		api.GET("/country-info", hb.CountryInfoHandler)
		api.GET("/exchange-rate", hb.ExchangeRateHandler)
	}
}

// RegisterMetaRoutes sets up the status and option-list endpoints.
func RegisterMetaRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/health", hb.HealthHandler)
		api.GET("/status", hb.StatusHandler)
		api.GET("/styles", hb.StylesHandler)
		api.GET("/interests", hb.InterestsHandler)
		api.GET("/groups", hb.GroupsHandler)
	}
}

// RegisterHealthRoute registers a root health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm TripMesh"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.CORSOriginList(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPlanRoutes(r, hb)
	RegisterTravelDataRoutes(r, hb)
	RegisterMetaRoutes(r, hb)
}
