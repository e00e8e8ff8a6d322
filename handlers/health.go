package handlers

import (
	"net/http"

	"report2clean/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last known state of the external dependencies.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo || !status.Redis {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
