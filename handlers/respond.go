package handlers

import (
	"errors"
	"net/http"

	"report2clean/services/dashboard"
	"report2clean/services/notify"
	"report2clean/services/report"
	"report2clean/services/user"
	"report2clean/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// serviceError maps a service error onto the matching HTTP status. Every
// handler funnels its service failures through here so validation and
// not-found cases never surface as 500s.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, report.ErrValidation),
		errors.Is(err, user.ErrValidation),
		errors.Is(err, dashboard.ErrLocationUnset):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
	case errors.Is(err, report.ErrNotFound),
		errors.Is(err, user.ErrNotFound),
		errors.Is(err, notify.ErrEntryNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	default:
		getLogger(c).Error("Request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
	}
}

// contextUserID reads the authenticated caller's ID set by the auth
// middleware.
func contextUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing user identity")
		return "", false
	}
	id, ok := userID.(string)
	if !ok || id == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing user identity")
		return "", false
	}
	return id, true
}
