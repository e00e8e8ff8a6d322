package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"report2clean/config"
	reportRepo "report2clean/database/repository/report"
	userRepo "report2clean/database/repository/user"
	"report2clean/services/notify"
	"report2clean/services/tasks"
	"report2clean/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const digestInterval = 7 * 24 * time.Hour

// InitDigestWorker starts the asynq worker that delivers the weekly
// pending-report digest to every admin, plus the enqueuer that schedules
// one run per week.
func InitDigestWorker(reports reportRepo.ReportRepository, users userRepo.UserRepository, mailer notify.Mailer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDigestQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeWeeklyDigest, handleDigestTask(reports, users, mailer))

	go func() {
		log.Println("[DigestWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[DigestWorker] worker stopped: %v", err)
		}
	}()

	go enqueueWeekly(redisOpts)
}

// enqueueWeekly submits one digest task per interval. The first run fires
// one interval after startup so a restart never double-sends.
func enqueueWeekly(redisOpts asynq.RedisClientOpt) {
	client := asynq.NewClient(redisOpts)
	defer client.Close()

	ticker := time.NewTicker(digestInterval)
	defer ticker.Stop()

	for range ticker.C {
		task, err := tasks.NewWeeklyDigestTask(time.Now().Add(-digestInterval))
		if err != nil {
			utils.GetLogger().Error("Digest task build failed", zap.Error(err))
			continue
		}
		if _, err := client.Enqueue(task); err != nil {
			utils.GetLogger().Error("Digest task enqueue failed", zap.Error(err))
		}
	}
}

func handleDigestTask(reports reportRepo.ReportRepository, users userRepo.UserRepository, mailer notify.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p tasks.DigestPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Digest payload invalid", zap.Error(err))
			return err
		}

		pending, err := reports.CountPendingSince(ctx, p.WindowStart)
		if err != nil {
			return err
		}
		if pending == 0 {
			logger.Info("Digest skipped: nothing pending")
			return nil
		}

		admins, err := users.Admins(ctx)
		if err != nil {
			return err
		}

		for _, admin := range admins {
			if err := mailer.WeeklyDigest(admin, pending); err != nil {
				logger.Error("Digest email failed",
					zap.String("adminId", admin.ID),
					zap.Error(err))
			}
		}

		logger.Info("Digest settled",
			zap.Int64("pending", pending),
			zap.Int("admins", len(admins)))
		return nil
	}
}
