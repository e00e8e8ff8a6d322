package notify

import (
	"context"
	"testing"
	"time"

	"report2clean/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotificationService() (*DefaultNotificationService, *fakeInboxRepo, *fakePrefRepo) {
	inbox := newFakeInboxRepo()
	prefs := newFakePrefRepo()
	return &DefaultNotificationService{Inbox: inbox, Preferences: prefs}, inbox, prefs
}

func TestMarkReadSurfacesMissingEntry(t *testing.T) {
	svc, _, _ := newTestNotificationService()

	err := svc.MarkRead(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestMarkReadIsIdempotent(t *testing.T) {
	svc, inbox, _ := newTestNotificationService()
	require.NoError(t, inbox.Append(context.Background(), "u1", models.NotificationEntry{ID: "e1"}))

	require.NoError(t, svc.MarkRead(context.Background(), "u1", "e1"))
	require.NoError(t, svc.MarkRead(context.Background(), "u1", "e1"))

	assert.True(t, inbox.entries["u1"][0].IsRead)
}

func TestMarkAllReadOnEmptyInboxSucceeds(t *testing.T) {
	svc, _, _ := newTestNotificationService()
	assert.NoError(t, svc.MarkAllRead(context.Background(), "nobody"))
}

func TestLatestReturnsEmptySliceForAbsentInbox(t *testing.T) {
	svc, _, _ := newTestNotificationService()

	entries, err := svc.Latest(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestLatestCapsAtDefaultCount(t *testing.T) {
	svc, inbox, _ := newTestNotificationService()
	for i := 0; i < 8; i++ {
		entry := models.NotificationEntry{
			ID:        string(rune('a' + i)),
			CreatedAt: time.Now().Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, inbox.Append(context.Background(), "u1", entry))
	}

	entries, err := svc.Latest(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, entries, DefaultLatestCount)
}

func TestGetPreferencesCreatesDefaultsLazily(t *testing.T) {
	svc, _, prefs := newTestNotificationService()

	pref, err := svc.GetPreferences(context.Background(), "fresh")
	require.NoError(t, err)

	assert.False(t, pref.EmailNotification)
	assert.True(t, pref.NearbyAlerts)
	assert.True(t, pref.PushNotifications)
	assert.False(t, pref.EmergencyNotification)
	assert.Len(t, prefs.stored, 1)

	// A second resolve returns the same document, never a duplicate.
	again, err := svc.GetPreferences(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Equal(t, pref.OwnerID, again.OwnerID)
	assert.Len(t, prefs.stored, 1)
}

func TestUpdatePreferencesOverwritesFlags(t *testing.T) {
	svc, _, _ := newTestNotificationService()

	updated, err := svc.UpdatePreferences(context.Background(), models.NotificationPreference{
		OwnerID:               "u1",
		EmailNotification:     true,
		NearbyAlerts:          false,
		PushNotifications:     false,
		EmergencyNotification: true,
	})
	require.NoError(t, err)

	assert.True(t, updated.EmailNotification)
	assert.False(t, updated.NearbyAlerts)
	assert.False(t, updated.PushNotifications)
	assert.True(t, updated.EmergencyNotification)
}
