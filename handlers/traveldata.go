// File: handlers/traveldata.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripmesh/utils"
)

// AutocompleteHandler suggests destinations for a partial query.
func (hb *HandlerBundle) AutocompleteHandler(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if len(query) < 2 {
		c.JSON(http.StatusOK, []any{})
		return
	}

	results := hb.TravelData.Autocomplete(c.Request.Context(), query, 10)
	utils.GetLogger().Info("Autocomplete served",
		zap.String("query", query),
		zap.Int("results", len(results)),
	)
	c.JSON(http.StatusOK, results)
}

type weatherRequest struct {
	Destination string  `json:"destination"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Days        int     `json:"days"`
}

// WeatherHandler returns the daily forecast for a destination.
func (hb *HandlerBundle) WeatherHandler(c *gin.Context) {
	var req weatherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Destination) == "" || req.Lat == 0 || req.Lon == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing destination or coordinates"})
		return
	}
	if req.Days == 0 {
		req.Days = 7
	}

	weather, err := hb.TravelData.Weather(c.Request.Context(), req.Lat, req.Lon, req.Days)
	if err != nil {
		utils.GetLogger().Error("Weather lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Weather service unavailable"})
		return
	}
	c.JSON(http.StatusOK, weather)
}

type timezoneRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// TimezoneHandler returns the timezone for a coordinate.
func (hb *HandlerBundle) TimezoneHandler(c *gin.Context) {
	var req timezoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Lat == 0 || req.Lon == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing coordinates"})
		return
	}

	tz, err := hb.TravelData.Timezone(c.Request.Context(), req.Lat, req.Lon)
	if err != nil {
		utils.GetLogger().Error("Timezone lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Timezone service unavailable"})
		return
	}
	c.JSON(http.StatusOK, tz)
}

// TravelAdvisoryHandler returns the safety advisory for a country code.
func (hb *HandlerBundle) TravelAdvisoryHandler(c *gin.Context) {
	countryCode := strings.ToUpper(strings.TrimSpace(c.Query("country")))
	if len(countryCode) != 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid country code (must be 2-letter ISO code)"})
		return
	}

	advisory, err := hb.TravelData.Advisory(c.Request.Context(), countryCode)
	if err != nil {
		utils.GetLogger().Warn("Advisory lookup failed", zap.String("country", countryCode), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Advisory not available for this country"})
		return
	}
	c.JSON(http.StatusOK, advisory)
}

// CountryInfoHandler returns country facts including currency.
func (hb *HandlerBundle) CountryInfoHandler(c *gin.Context) {
	countryName := strings.TrimSpace(c.Query("country"))
	if countryName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing country name"})
		return
	}

	info, err := hb.TravelData.CountryInfo(c.Request.Context(), countryName)
	if err != nil {
		utils.GetLogger().Warn("Country info lookup failed", zap.String("country", countryName), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
		return
	}
	c.JSON(http.StatusOK, info)
}

// ExchangeRateHandler returns the conversion rate between two currencies.
func (hb *HandlerBundle) ExchangeRateHandler(c *gin.Context) {
	from := strings.ToUpper(strings.TrimSpace(c.DefaultQuery("from", "USD")))
	to := strings.ToUpper(strings.TrimSpace(c.DefaultQuery("to", "EUR")))
	if len(from) != 3 || len(to) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid currency code (must be 3-letter ISO code)"})
		return
	}

	rate, err := hb.TravelData.ExchangeRate(c.Request.Context(), from, to)
	if err != nil {
		utils.GetLogger().Warn("Exchange rate lookup failed",
			zap.String("from", from),
			zap.String("to", to),
			zap.Error(err),
		)
		c.JSON(http.StatusNotFound, gin.H{"error": "Exchange rate not available"})
		return
	}
	c.JSON(http.StatusOK, rate)
}
