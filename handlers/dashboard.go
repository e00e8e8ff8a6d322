package handlers

import (
	"net/http"

	"report2clean/services/dashboard"

	"github.com/gin-gonic/gin"
)

// DashboardStatsHandler returns the caller's dashboard payload.
func DashboardStatsHandler(svc dashboard.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}
		stats, err := svc.ComputeStats(c.Request.Context(), userID)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
