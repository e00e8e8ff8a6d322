package notificationRepo

import (
	"context"
	"errors"

	"report2clean/models"
)

// ErrEntryNotFound is returned by MarkRead when no embedded entry matches.
var ErrEntryNotFound = errors.New("notification entry not found")

// InboxRepository defines data access for per-user notification inboxes.
// Each user owns exactly one inbox document; entries are append-only.
type InboxRepository interface {
	// Append pushes an entry onto the owner's inbox, creating the inbox
	// document if it does not exist yet.
	Append(ctx context.Context, ownerID string, entry models.NotificationEntry) error
	// MarkRead flips one embedded entry to read. Marking an already-read
	// entry is a no-op; a missing entry returns ErrEntryNotFound.
	MarkRead(ctx context.Context, ownerID, entryID string) error
	// MarkAllRead flips every entry for the owner in one update.
	MarkAllRead(ctx context.Context, ownerID string) error
	// Latest returns the n most recent entries, newest first. An absent or
	// empty inbox yields an empty slice, not an error.
	Latest(ctx context.Context, ownerID string, n int64) ([]models.NotificationEntry, error)
}
