package notify

import (
	"context"

	"report2clean/utils"

	"go.uber.org/zap"
)

// TaskScheduler runs a background job detached from the request that
// spawned it. Jobs are fire-and-forget: they run once and are never
// retried on failure.
type TaskScheduler interface {
	Schedule(name string, job func(ctx context.Context))
}

// AsyncScheduler runs each job in its own goroutine with a fresh
// background context, so the HTTP response never waits on delivery.
type AsyncScheduler struct{}

// NewAsyncScheduler creates the production scheduler.
func NewAsyncScheduler() TaskScheduler {
	return &AsyncScheduler{}
}

func (s *AsyncScheduler) Schedule(name string, job func(ctx context.Context)) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				utils.GetLogger().Error("Background job panicked",
					zap.String("job", name),
					zap.Any("panic", r))
			}
		}()
		job(context.Background())
	}()
}

// SyncScheduler runs jobs inline. Used in tests where the assertion needs
// the job to have finished.
type SyncScheduler struct{}

func (s *SyncScheduler) Schedule(name string, job func(ctx context.Context)) {
	job(context.Background())
}
