package preferenceRepo

import (
	"context"

	"report2clean/models"
)

// PreferenceRepository defines data access for per-user notification
// preferences.
type PreferenceRepository interface {
	// Resolve returns the user's preference document, atomically creating
	// it with the documented defaults when absent. Calling it twice for the
	// same user never produces two documents.
	Resolve(ctx context.Context, ownerID string) (*models.NotificationPreference, error)
	// Update overwrites the four opt-in flags.
	Update(ctx context.Context, pref models.NotificationPreference) (*models.NotificationPreference, error)
}
