package handlers

import (
	"net/http"

	"report2clean/services/report"
	"report2clean/services/user"
	"report2clean/utils"

	"github.com/gin-gonic/gin"
)

type verifyLocationRequest struct {
	// Coordinates is the client-submitted "lat,lng" pair.
	Coordinates string `json:"coordinates" binding:"required"`
}

// VerifyLocationHandler stores the caller's identity-verification location
// and flips the verified flag.
func VerifyLocationHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}

		var req verifyLocationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		lng, lat, err := report.ParseLatLng(req.Coordinates)
		if err != nil {
			serviceError(c, err)
			return
		}
		if err := svc.VerifyLocation(c.Request.Context(), userID, lng, lat); err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "verified"})
	}
}

type fcmTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// SetFCMTokenHandler registers the caller's push delivery token.
func SetFCMTokenHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}

		var req fcmTokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		if err := svc.SetFCMToken(c.Request.Context(), userID, req.Token); err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "updated"})
	}
}

// GetProfileHandler returns the authenticated user's profile.
func GetProfileHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}
		profile, err := svc.GetByID(c.Request.Context(), userID)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}
