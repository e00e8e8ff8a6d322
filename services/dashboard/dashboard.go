package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	reportRepo "report2clean/database/repository/report"
	userRepo "report2clean/database/repository/user"
	"report2clean/models"
	"report2clean/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ErrLocationUnset is returned when the user has never set a verified
// location, so no distance-bounded section can be computed.
var ErrLocationUnset = errors.New("user location is not set")

const (
	// localRadiusMeters bounds the local summary and events-in-area
	// sections. Distinct from both the fan-out and browse radii.
	localRadiusMeters = 2000

	monthBuckets = 6
	cacheTTL     = 60 * time.Second
)

// DashboardService computes the per-user dashboard payload.
type DashboardService interface {
	ComputeStats(ctx context.Context, userID string) (*models.DashboardStats, error)
}

// DefaultDashboardService is the production implementation. Cache is
// optional; a nil client or any redis error just means a fresh compute.
type DefaultDashboardService struct {
	Reports reportRepo.ReportRepository
	Users   userRepo.UserRepository
	Cache   *redis.Client

	// Now is injectable for deterministic bucket frames in tests.
	Now func() time.Time
}

func (s *DefaultDashboardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultDashboardService) ComputeStats(ctx context.Context, userID string) (*models.DashboardStats, error) {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	if user.Location.IsUnset() {
		return nil, ErrLocationUnset
	}

	cacheKey := "dashboard:stats:" + userID
	if cached := s.cacheGet(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	now := s.now()
	lng, lat := user.Location.Lng(), user.Location.Lat()

	totalReports, err := s.Reports.CountByReporter(ctx, userID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to count reports: %w", err)
	}
	completedReports, err := s.Reports.CountByReporter(ctx, userID, models.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed reports: %w", err)
	}

	local, err := s.Reports.LocalCounts(ctx, lng, lat, localRadiusMeters, monthStart(now))
	if err != nil {
		return nil, fmt.Errorf("failed to compute local summary: %w", err)
	}

	frame := monthFrame(now, monthBuckets)
	frameStart := time.Date(frame[0].Year, time.Month(frame[0].Month), 1, 0, 0, 0, 0, now.Location())

	areaCounts, err := s.Reports.MonthlyCountsNear(ctx, lng, lat, localRadiusMeters, frameStart)
	if err != nil {
		return nil, fmt.Errorf("failed to compute area buckets: %w", err)
	}
	trendCounts, err := s.Reports.MonthlyGlobalCounts(ctx, frameStart)
	if err != nil {
		return nil, fmt.Errorf("failed to compute trend buckets: %w", err)
	}

	weekStart := dayStart(now).AddDate(0, 0, -6)
	daily, err := s.Reports.DailyCountsSince(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to compute weekly activity: %w", err)
	}

	stats := &models.DashboardStats{
		LifetimeContributions: models.LifetimeContributions{
			TotalReports:     totalReports,
			CompletedReports: completedReports,
		},
		LocalEvents2km: models.LocalEvents{
			TotalReports:     local.Total,
			CompletedReports: local.Completed,
			ThisMonthReports: local.ThisMonth,
		},
		EventsInAreaData:   shapeAreaBuckets(frame, areaCounts),
		MonthlyTrendData:   shapeTrendBuckets(frame, trendCounts),
		WeeklyActivityData: shapeWeekBuckets(weekStart, daily),
	}

	s.cacheSet(ctx, cacheKey, stats)
	return stats, nil
}

// cacheGet returns the cached payload or nil. Redis errors only log.
func (s *DefaultDashboardService) cacheGet(ctx context.Context, key string) *models.DashboardStats {
	if s.Cache == nil {
		return nil
	}
	raw, err := s.Cache.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		utils.GetLogger().Warn("Dashboard cache read failed", zap.Error(err))
		return nil
	}
	var stats models.DashboardStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		utils.GetLogger().Warn("Dashboard cache payload corrupt", zap.Error(err))
		return nil
	}
	return &stats
}

func (s *DefaultDashboardService) cacheSet(ctx context.Context, key string, stats *models.DashboardStats) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Dashboard cache write failed", zap.Error(err))
	}
}
