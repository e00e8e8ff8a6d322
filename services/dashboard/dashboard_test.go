package dashboard

import (
	"context"
	"testing"
	"time"

	reportRepo "report2clean/database/repository/report"
	userRepo "report2clean/database/repository/user"
	"report2clean/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	user *models.User
}

var _ userRepo.UserRepository = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.user == nil {
		return nil, userRepo.ErrNotFound
	}
	return f.user, nil
}
func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error        { return nil }
func (f *fakeUserRepo) UpdateProfile(ctx context.Context, user *models.User) error { return nil }
func (f *fakeUserRepo) SetVerifiedLocation(ctx context.Context, id string, lng, lat float64) error {
	return nil
}
func (f *fakeUserRepo) SetBlocked(ctx context.Context, id string, blocked bool) error { return nil }
func (f *fakeUserRepo) NearbyRecipients(ctx context.Context, originLng, originLat, radiusMeters float64, excludeUserID string) ([]models.UserRef, error) {
	return nil, nil
}
func (f *fakeUserRepo) Admins(ctx context.Context) ([]models.UserRef, error) { return nil, nil }

type fakeReportRepo struct {
	total     int64
	completed int64
	local     reportRepo.LocalSummary
	area      map[reportRepo.MonthKey]int64
	trend     map[reportRepo.MonthKey]reportRepo.MonthlyCount
	daily     map[string]int64
}

var _ reportRepo.ReportRepository = (*fakeReportRepo)(nil)

func (f *fakeReportRepo) Create(ctx context.Context, report *models.Report) error { return nil }
func (f *fakeReportRepo) GetByID(ctx context.Context, id string) (*models.Report, error) {
	return nil, reportRepo.ErrNotFound
}
func (f *fakeReportRepo) GetByReporter(ctx context.Context, userID string) ([]models.Report, error) {
	return nil, nil
}
func (f *fakeReportRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Report, error) {
	return nil, reportRepo.ErrNotFound
}
func (f *fakeReportRepo) Accept(ctx context.Context, id, adminID string) (*models.Report, error) {
	return nil, reportRepo.ErrNotFound
}
func (f *fakeReportRepo) Delete(ctx context.Context, id string) error { return nil }
func (f *fakeReportRepo) Nearby(ctx context.Context, q reportRepo.NearbyQuery) ([]models.Report, error) {
	return nil, nil
}
func (f *fakeReportRepo) ListWithSubmitters(ctx context.Context, page, perPage int64) (int64, []models.ReportWithSubmitter, error) {
	return 0, nil, nil
}
func (f *fakeReportRepo) CountByReporter(ctx context.Context, userID, status string) (int64, error) {
	if status == models.StatusCompleted {
		return f.completed, nil
	}
	return f.total, nil
}
func (f *fakeReportRepo) CountPendingSince(ctx context.Context, since time.Time) (int64, error) {
	return 0, nil
}
func (f *fakeReportRepo) LocalCounts(ctx context.Context, lng, lat, radiusMeters float64, monthStart time.Time) (reportRepo.LocalSummary, error) {
	return f.local, nil
}
func (f *fakeReportRepo) MonthlyCountsNear(ctx context.Context, lng, lat, radiusMeters float64, since time.Time) (map[reportRepo.MonthKey]int64, error) {
	return f.area, nil
}
func (f *fakeReportRepo) MonthlyGlobalCounts(ctx context.Context, since time.Time) (map[reportRepo.MonthKey]reportRepo.MonthlyCount, error) {
	return f.trend, nil
}
func (f *fakeReportRepo) DailyCountsSince(ctx context.Context, since time.Time) (map[string]int64, error) {
	return f.daily, nil
}

func newService(users *fakeUserRepo, reports *fakeReportRepo, now time.Time) *DefaultDashboardService {
	return &DefaultDashboardService{
		Reports: reports,
		Users:   users,
		Now:     func() time.Time { return now },
	}
}

func verifiedUser() *models.User {
	return &models.User{
		ID:       "u1",
		Fullname: "Asha K",
		Location: models.NewGeoPoint(36.82, -1.29),
	}
}

func TestComputeStatsRejectsUnsetLocation(t *testing.T) {
	users := &fakeUserRepo{user: &models.User{ID: "u1", Location: models.NewGeoPoint(0, 0)}}
	svc := newService(users, &fakeReportRepo{}, time.Now())

	_, err := svc.ComputeStats(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrLocationUnset)
}

func TestComputeStatsBucketsAreFixedLengthAndZeroFilled(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	svc := newService(&fakeUserRepo{user: verifiedUser()}, &fakeReportRepo{}, now)

	stats, err := svc.ComputeStats(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, stats.EventsInAreaData, 6)
	require.Len(t, stats.MonthlyTrendData, 6)
	require.Len(t, stats.WeeklyActivityData, 7)

	for _, b := range stats.EventsInAreaData {
		assert.Zero(t, b.Events)
	}
	for _, b := range stats.MonthlyTrendData {
		assert.Zero(t, b.Reports)
		assert.Zero(t, b.Resolved)
	}
	for _, b := range stats.WeeklyActivityData {
		assert.Zero(t, b.Activity)
	}
}

func TestComputeStatsMonthBucketsOldestFirst(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	reports := &fakeReportRepo{
		area: map[reportRepo.MonthKey]int64{
			{Year: 2026, Month: 3}: 4,
			{Year: 2026, Month: 8}: 9,
		},
		trend: map[reportRepo.MonthKey]reportRepo.MonthlyCount{
			{Year: 2026, Month: 5}: {Reports: 12, Resolved: 7},
		},
	}
	svc := newService(&fakeUserRepo{user: verifiedUser()}, reports, now)

	stats, err := svc.ComputeStats(context.Background(), "u1")
	require.NoError(t, err)

	names := make([]string, 0, 6)
	for _, b := range stats.EventsInAreaData {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"Mar", "Apr", "May", "Jun", "Jul", "Aug"}, names)

	assert.Equal(t, int64(4), stats.EventsInAreaData[0].Events)
	assert.Equal(t, int64(9), stats.EventsInAreaData[5].Events)

	assert.Equal(t, int64(12), stats.MonthlyTrendData[2].Reports)
	assert.Equal(t, int64(7), stats.MonthlyTrendData[2].Resolved)
	assert.Zero(t, stats.MonthlyTrendData[0].Reports)
}

func TestComputeStatsMonthFrameCrossesYearBoundary(t *testing.T) {
	now := time.Date(2026, time.February, 3, 8, 0, 0, 0, time.UTC)
	svc := newService(&fakeUserRepo{user: verifiedUser()}, &fakeReportRepo{}, now)

	stats, err := svc.ComputeStats(context.Background(), "u1")
	require.NoError(t, err)

	names := make([]string, 0, 6)
	for _, b := range stats.MonthlyTrendData {
		names = append(names, b.Month)
	}
	assert.Equal(t, []string{"Sep", "Oct", "Nov", "Dec", "Jan", "Feb"}, names)
}

func TestComputeStatsWeeklyActivityEmitsMonToSun(t *testing.T) {
	// 2026-08-15 is a Saturday; the trailing week runs Sun Aug 9 through
	// Sat Aug 15.
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	reports := &fakeReportRepo{
		daily: map[string]int64{
			"2026-08-10": 3, // Monday
			"2026-08-14": 5, // Friday
		},
	}
	svc := newService(&fakeUserRepo{user: verifiedUser()}, reports, now)

	stats, err := svc.ComputeStats(context.Background(), "u1")
	require.NoError(t, err)

	days := make([]string, 0, 7)
	for _, b := range stats.WeeklyActivityData {
		days = append(days, b.Day)
	}
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, days)

	assert.Equal(t, int64(3), stats.WeeklyActivityData[0].Activity)
	assert.Equal(t, int64(5), stats.WeeklyActivityData[4].Activity)
	assert.Zero(t, stats.WeeklyActivityData[6].Activity)
}

func TestComputeStatsLifetimeAndLocalSections(t *testing.T) {
	reports := &fakeReportRepo{
		total:     14,
		completed: 6,
		local:     reportRepo.LocalSummary{Total: 8, Completed: 3, ThisMonth: 2},
	}
	svc := newService(&fakeUserRepo{user: verifiedUser()}, reports, time.Now())

	stats, err := svc.ComputeStats(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, int64(14), stats.LifetimeContributions.TotalReports)
	assert.Equal(t, int64(6), stats.LifetimeContributions.CompletedReports)
	assert.Equal(t, int64(8), stats.LocalEvents2km.TotalReports)
	assert.Equal(t, int64(3), stats.LocalEvents2km.CompletedReports)
	assert.Equal(t, int64(2), stats.LocalEvents2km.ThisMonthReports)
}
