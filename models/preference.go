// models/preference.go
package models

import "time"

// NotificationPreference holds a user's per-channel opt-in flags. One
// document per user, created lazily with these defaults on first access:
// email=false, nearby=true, push=true, emergency=false.
type NotificationPreference struct {
	OwnerID               string    `bson:"ownerId" json:"ownerId"`
	EmailNotification     bool      `bson:"emailNotification" json:"emailNotification"`
	NearbyAlerts          bool      `bson:"nearbyAlerts" json:"nearbyAlerts"`
	PushNotifications     bool      `bson:"pushNotifications" json:"pushNotifications"`
	EmergencyNotification bool      `bson:"emergencyNotification" json:"emergencyNotification"`
	CreatedAt             time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DefaultPreference returns the documented default flags for a user.
func DefaultPreference(ownerID string) NotificationPreference {
	now := time.Now()
	return NotificationPreference{
		OwnerID:               ownerID,
		EmailNotification:     false,
		NearbyAlerts:          true,
		PushNotifications:     true,
		EmergencyNotification: false,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}
