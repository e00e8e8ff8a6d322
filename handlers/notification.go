package handlers

import (
	"net/http"

	"report2clean/models"
	"report2clean/services/notify"
	"report2clean/utils"

	"github.com/gin-gonic/gin"
)

// LatestNotificationsHandler returns the caller's five most recent inbox
// entries, read or not.
func LatestNotificationsHandler(svc notify.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}
		entries, err := svc.Latest(c.Request.Context(), userID)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"notifications": entries})
	}
}

// MarkNotificationReadHandler marks one inbox entry as read.
func MarkNotificationReadHandler(svc notify.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}
		if err := svc.MarkRead(c.Request.Context(), userID, c.Param("entryId")); err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "read"})
	}
}

// MarkAllNotificationsReadHandler marks the whole inbox as read.
func MarkAllNotificationsReadHandler(svc notify.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}
		if err := svc.MarkAllRead(c.Request.Context(), userID); err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "read"})
	}
}

// GetPreferencesHandler returns the caller's notification preferences,
// creating the default document on first access.
func GetPreferencesHandler(svc notify.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}
		pref, err := svc.GetPreferences(c.Request.Context(), userID)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, pref)
	}
}

type preferenceRequest struct {
	EmailNotification     bool `json:"emailNotification"`
	NearbyAlerts          bool `json:"nearbyAlerts"`
	PushNotifications     bool `json:"pushNotifications"`
	EmergencyNotification bool `json:"emergencyNotification"`
}

// UpdatePreferencesHandler overwrites the caller's four opt-in flags.
func UpdatePreferencesHandler(svc notify.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}

		var req preferenceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		pref, err := svc.UpdatePreferences(c.Request.Context(), models.NotificationPreference{
			OwnerID:               userID,
			EmailNotification:     req.EmailNotification,
			NearbyAlerts:          req.NearbyAlerts,
			PushNotifications:     req.PushNotifications,
			EmergencyNotification: req.EmergencyNotification,
		})
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, pref)
	}
}
