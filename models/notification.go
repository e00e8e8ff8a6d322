// models/notification.go
package models

import "time"

// Notification entry types.
const (
	NotificationSuccess = "success"
	NotificationEvent   = "event"
	NotificationSocial  = "social"
	NotificationReward  = "reward"
	NotificationOther   = "other"
)

// NotificationEntry is a single embedded inbox entry. Entries are appended
// once and only ever flipped to read; they are never removed.
type NotificationEntry struct {
	ID        string    `bson:"id" json:"id"`
	Message   string    `bson:"message" json:"message"`
	Type      string    `bson:"type" json:"type"`
	IsRead    bool      `bson:"isRead" json:"isRead"`
	Link      string    `bson:"link,omitempty" json:"link,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// NotificationInbox is the one-document-per-user inbox. OwnerID is unique;
// the document is created lazily by the first upsert-and-push append.
type NotificationInbox struct {
	OwnerID       string              `bson:"ownerId" json:"ownerId"`
	Notifications []NotificationEntry `bson:"notifications" json:"notifications"`
}
