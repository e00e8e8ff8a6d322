package userRepo

import (
	"context"

	"report2clean/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// UpdateProfile modifies mutable profile fields.
	UpdateProfile(ctx context.Context, user *models.User) error
	// SetVerifiedLocation stores the identity-verification location and
	// flips the verification flag in one update.
	SetVerifiedLocation(ctx context.Context, id string, lng, lat float64) error
	// SetBlocked toggles the blocked flag.
	SetBlocked(ctx context.Context, id string, blocked bool) error

	// NearbyRecipients returns non-blocked, non-admin users whose verified
	// location lies within radiusMeters of the origin, excluding the given
	// user. The [0,0] sentinel is filtered out explicitly.
	NearbyRecipients(ctx context.Context, originLng, originLat, radiusMeters float64, excludeUserID string) ([]models.UserRef, error)

	// Admins returns every admin account (digest mail targets).
	Admins(ctx context.Context) ([]models.UserRef, error)
}
