package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	notificationRepo "report2clean/database/repository/notification"
	preferenceRepo "report2clean/database/repository/preference"
	userRepo "report2clean/database/repository/user"
	"report2clean/models"
	"report2clean/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FanoutDispatcher delivers nearby-report notifications to every eligible
// recipient around a fresh report. Delivery is best effort: each recipient
// and each channel fails independently, failures are logged and never
// retried, and no failure aborts the rest of the fan-out.
type FanoutDispatcher struct {
	Users       userRepo.UserRepository
	Preferences preferenceRepo.PreferenceRepository
	Inbox       notificationRepo.InboxRepository
	Mailer      Mailer
	Pusher      Pusher

	// RadiusMeters is the fixed fan-out radius, not the browse radius.
	RadiusMeters float64
}

// NewFanoutDispatcher wires the dispatcher with its delivery channels.
func NewFanoutDispatcher(
	users userRepo.UserRepository,
	prefs preferenceRepo.PreferenceRepository,
	inbox notificationRepo.InboxRepository,
	mailer Mailer,
	pusher Pusher,
	radiusMeters float64,
) *FanoutDispatcher {
	return &FanoutDispatcher{
		Users:        users,
		Preferences:  prefs,
		Inbox:        inbox,
		Mailer:       mailer,
		Pusher:       pusher,
		RadiusMeters: radiusMeters,
	}
}

// Dispatch fans a persisted report out to nearby residents. It returns only
// after every recipient has been attempted, so callers wanting detached
// delivery run it through a TaskScheduler.
func (d *FanoutDispatcher) Dispatch(ctx context.Context, report *models.Report, submitter *models.User) {
	logger := utils.GetLogger()

	if report.Location.IsUnset() {
		logger.Warn("Fan-out skipped: report has no location", zap.String("reportId", report.ID))
		return
	}

	recipients, err := d.Users.NearbyRecipients(
		ctx,
		report.Location.Lng(), report.Location.Lat(),
		d.RadiusMeters,
		report.ReportedBy,
	)
	if err != nil {
		logger.Error("Fan-out recipient query failed",
			zap.String("reportId", report.ID),
			zap.Error(err))
		return
	}
	if len(recipients) == 0 {
		logger.Debug("Fan-out found no recipients", zap.String("reportId", report.ID))
		return
	}

	submitterName := "A neighbour"
	if submitter != nil && submitter.Fullname != "" {
		submitterName = submitter.Fullname
	}

	var wg sync.WaitGroup
	for _, recipient := range recipients {
		wg.Add(1)
		go func(r models.UserRef) {
			defer wg.Done()
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("Fan-out recipient delivery panicked",
						zap.String("reportId", report.ID),
						zap.String("userId", r.ID),
						zap.Any("panic", rec))
				}
			}()
			d.deliverTo(ctx, r, report, submitterName)
		}(recipient)
	}
	wg.Wait()

	logger.Info("Fan-out settled",
		zap.String("reportId", report.ID),
		zap.Int("recipients", len(recipients)))
}

// deliverTo resolves one recipient's preferences and attempts each opted-in
// channel. Channel failures are independent.
func (d *FanoutDispatcher) deliverTo(ctx context.Context, recipient models.UserRef, report *models.Report, submitterName string) {
	logger := utils.GetLogger()

	pref, err := d.Preferences.Resolve(ctx, recipient.ID)
	if err != nil {
		logger.Error("Fan-out preference resolution failed",
			zap.String("userId", recipient.ID),
			zap.Error(err))
		return
	}

	if pref.NearbyAlerts {
		entry := models.NotificationEntry{
			ID:        uuid.New().String(),
			Message:   fmt.Sprintf("%s reported an issue near you: %s", submitterName, report.Description),
			Type:      models.NotificationEvent,
			IsRead:    false,
			Link:      "/reports/" + report.ID,
			CreatedAt: time.Now(),
		}
		if err := d.Inbox.Append(ctx, recipient.ID, entry); err != nil {
			logger.Error("Fan-out inbox append failed",
				zap.String("userId", recipient.ID),
				zap.Error(err))
		}
	}

	if pref.EmailNotification {
		if err := d.Mailer.NearbyReportAlert(recipient, submitterName, report); err != nil {
			logger.Error("Fan-out email failed",
				zap.String("userId", recipient.ID),
				zap.Error(err))
		}
	}

	if pref.PushNotifications && recipient.FCMToken != "" {
		if err := d.Pusher.NearbyReportPush(ctx, recipient, report); err != nil {
			logger.Error("Fan-out push failed",
				zap.String("userId", recipient.ID),
				zap.Error(err))
		}
	}

	if report.Urgency && pref.EmergencyNotification && recipient.FCMToken != "" {
		if err := d.Pusher.EmergencyPush(ctx, recipient, report); err != nil {
			logger.Error("Fan-out emergency push failed",
				zap.String("userId", recipient.ID),
				zap.Error(err))
		}
	}
}
