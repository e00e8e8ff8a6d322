package notify

import (
	"context"
	"fmt"

	"report2clean/models"
	"report2clean/utils"

	"firebase.google.com/go/v4/messaging"
)

// Pusher delivers mobile push notifications.
type Pusher interface {
	// NearbyReportPush sends a standard-priority push about a fresh report.
	NearbyReportPush(ctx context.Context, recipient models.UserRef, report *models.Report) error
	// EmergencyPush sends a high-priority push for urgent reports.
	EmergencyPush(ctx context.Context, recipient models.UserRef, report *models.Report) error
}

// FCMPusher is the production Pusher backed by Firebase Cloud Messaging.
type FCMPusher struct{}

// NewFCMPusher creates a new FCM-backed Pusher.
func NewFCMPusher() Pusher {
	return &FCMPusher{}
}

func (p *FCMPusher) NearbyReportPush(ctx context.Context, recipient models.UserRef, report *models.Report) error {
	if recipient.FCMToken == "" {
		return fmt.Errorf("user %s has no FCM token", recipient.ID)
	}

	msg := &messaging.Message{
		Token: recipient.FCMToken,
		Notification: &messaging.Notification{
			Title: "New report near you",
			Body:  report.Description,
		},
		Data: map[string]string{
			"type":     "nearby_report",
			"reportId": report.ID,
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message to %s: %w", recipient.ID, err)
	}
	return nil
}

func (p *FCMPusher) EmergencyPush(ctx context.Context, recipient models.UserRef, report *models.Report) error {
	if recipient.FCMToken == "" {
		return fmt.Errorf("user %s has no FCM token", recipient.ID)
	}

	msg := &messaging.Message{
		Token: recipient.FCMToken,
		Notification: &messaging.Notification{
			Title: "Urgent report near you",
			Body:  report.Description,
		},
		Data: map[string]string{
			"type":     "emergency_report",
			"reportId": report.ID,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send emergency FCM message to %s: %w", recipient.ID, err)
	}
	return nil
}
