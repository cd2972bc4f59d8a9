// File: handlers/plans.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripmesh/utils"
)

// ListPlansHandler returns the most recently archived plans.
func (hb *HandlerBundle) ListPlansHandler(c *gin.Context) {
	if hb.Plans == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Plan archive not configured", "Set DATABASE_URL to enable plan history")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	records, err := hb.Plans.ListRecent(c.Request.Context(), limit)
	if err != nil {
		utils.GetLogger().Error("Failed to list plans", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list plans", "")
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetPlanHandler returns one archived plan by ID.
func (hb *HandlerBundle) GetPlanHandler(c *gin.Context) {
	if hb.Plans == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Plan archive not configured", "Set DATABASE_URL to enable plan history")
		return
	}
	id := c.Param("id")

	record, err := hb.Plans.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Plan not found", id)
		return
	}
	c.JSON(http.StatusOK, record)
}
