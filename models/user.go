// models/user.go
package models

import "time"

// Account types.
const (
	AccountUser  = "user"
	AccountAdmin = "admin"
)

// User represents a platform user. Location defaults to the [0,0] sentinel
// until the identity-verification step sets a real one.
type User struct {
	ID          string   `bson:"id" json:"id"`
	Fullname    string   `bson:"fullname" json:"fullname"`
	Email       string   `bson:"email" json:"email"`
	PhoneNumber string   `bson:"phoneNumber" json:"phoneNumber"`
	Location    GeoPoint `bson:"location" json:"location"`
	IsBlocked   bool     `bson:"isBlocked" json:"isBlocked"`
	AccountType string   `bson:"accountType" json:"accountType"`

	// IsAuthenticated is the identity-verification flag, distinct from
	// having a login session.
	IsAuthenticated bool `bson:"isAuthenticated" json:"isAuthenticated"`

	FCMToken  string    `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserRef is the slim projection handed to the notification fan-out and the
// admin report listing.
type UserRef struct {
	ID       string `bson:"id" json:"id"`
	Fullname string `bson:"fullname" json:"fullname"`
	Email    string `bson:"email" json:"email"`
	FCMToken string `bson:"fcmToken,omitempty" json:"-"`
}
