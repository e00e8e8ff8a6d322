package reportRepo

import (
	"context"
	"time"

	"report2clean/models"
)

// MonthKey identifies a calendar-month bucket.
type MonthKey struct {
	Year  int
	Month int
}

// MonthlyCount pairs total report volume with the resolved subset for one
// calendar month.
type MonthlyCount struct {
	Reports  int64
	Resolved int64
}

// LocalSummary holds the distance-bounded counts around an anchor point.
type LocalSummary struct {
	Total     int64
	Completed int64
	ThisMonth int64
}

// NearbyQuery describes a point-radius browse query. Radius is in meters;
// Status and the date bounds are optional filters.
type NearbyQuery struct {
	Lng          float64
	Lat          float64
	RadiusMeters float64
	Status       string
	From         time.Time
	To           time.Time
}

// ReportRepository defines data access for the reports collection.
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id string) (*models.Report, error)
	GetByReporter(ctx context.Context, userID string) ([]models.Report, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Report, error)
	Accept(ctx context.Context, id, adminID string) (*models.Report, error)
	Delete(ctx context.Context, id string) error

	// Nearby runs a $geoNear browse query with optional filters.
	Nearby(ctx context.Context, q NearbyQuery) ([]models.Report, error)

	// ListWithSubmitters returns one page of reports, newest first, each
	// joined with the submitting user's public fields.
	ListWithSubmitters(ctx context.Context, page, perPage int64) (int64, []models.ReportWithSubmitter, error)

	// CountByReporter counts a submitter's reports, optionally restricted
	// to one status ("" means all).
	CountByReporter(ctx context.Context, userID, status string) (int64, error)

	// CountPendingSince counts still-pending reports created at or after
	// the given instant (digest job input).
	CountPendingSince(ctx context.Context, since time.Time) (int64, error)

	// LocalCounts computes the no-time-bound summary around an anchor
	// point in a single distance-annotated query fanned into three counts.
	LocalCounts(ctx context.Context, lng, lat, radiusMeters float64, monthStart time.Time) (LocalSummary, error)

	// MonthlyCountsNear groups nearby reports created since the given
	// instant by calendar month.
	MonthlyCountsNear(ctx context.Context, lng, lat, radiusMeters float64, since time.Time) (map[MonthKey]int64, error)

	// MonthlyGlobalCounts groups all reports created since the given
	// instant by calendar month, with the resolved subset per bucket.
	MonthlyGlobalCounts(ctx context.Context, since time.Time) (map[MonthKey]MonthlyCount, error)

	// DailyCountsSince groups reports created at or after the given local
	// midnight by calendar day ("2006-01-02" keys).
	DailyCountsSince(ctx context.Context, since time.Time) (map[string]int64, error)
}
