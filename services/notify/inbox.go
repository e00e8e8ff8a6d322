package notify

import (
	"context"
	"errors"
	"fmt"

	notificationRepo "report2clean/database/repository/notification"
	preferenceRepo "report2clean/database/repository/preference"
	"report2clean/models"
)

// ErrEntryNotFound is surfaced when a mark-read targets a missing entry.
var ErrEntryNotFound = errors.New("notification entry not found")

// DefaultLatestCount is how many inbox entries the bell endpoint returns.
const DefaultLatestCount = 5

// NotificationService exposes the user-facing inbox and preference
// operations.
type NotificationService interface {
	Latest(ctx context.Context, ownerID string) ([]models.NotificationEntry, error)
	MarkRead(ctx context.Context, ownerID, entryID string) error
	MarkAllRead(ctx context.Context, ownerID string) error
	GetPreferences(ctx context.Context, ownerID string) (*models.NotificationPreference, error)
	UpdatePreferences(ctx context.Context, pref models.NotificationPreference) (*models.NotificationPreference, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Inbox       notificationRepo.InboxRepository
	Preferences preferenceRepo.PreferenceRepository
}

func (s *DefaultNotificationService) Latest(ctx context.Context, ownerID string) ([]models.NotificationEntry, error) {
	entries, err := s.Inbox.Latest(ctx, ownerID, DefaultLatestCount)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	return entries, nil
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, ownerID, entryID string) error {
	err := s.Inbox.MarkRead(ctx, ownerID, entryID)
	if errors.Is(err, notificationRepo.ErrEntryNotFound) {
		return ErrEntryNotFound
	}
	return err
}

func (s *DefaultNotificationService) MarkAllRead(ctx context.Context, ownerID string) error {
	return s.Inbox.MarkAllRead(ctx, ownerID)
}

func (s *DefaultNotificationService) GetPreferences(ctx context.Context, ownerID string) (*models.NotificationPreference, error) {
	return s.Preferences.Resolve(ctx, ownerID)
}

func (s *DefaultNotificationService) UpdatePreferences(ctx context.Context, pref models.NotificationPreference) (*models.NotificationPreference, error) {
	return s.Preferences.Update(ctx, pref)
}
