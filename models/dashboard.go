// models/dashboard.go
package models

// LifetimeContributions are the submitter's all-time counts.
type LifetimeContributions struct {
	TotalReports     int64 `json:"totalReports"`
	CompletedReports int64 `json:"completedReports"`
}

// LocalEvents summarizes reports around the user's anchor location with no
// time bound (radius documented at the interface in kilometers).
type LocalEvents struct {
	TotalReports     int64 `json:"totalReports"`
	CompletedReports int64 `json:"completedReports"`
	ThisMonthReports int64 `json:"thisMonthReports"`
}

// AreaBucket is one calendar-month bucket of nearby events.
type AreaBucket struct {
	Name   string `json:"name"`
	Events int64  `json:"events"`
}

// TrendBucket is one calendar-month bucket of global report volume.
type TrendBucket struct {
	Month    string `json:"month"`
	Reports  int64  `json:"reports"`
	Resolved int64  `json:"resolved"`
}

// WeekdayBucket is one day of the trailing-week activity histogram.
type WeekdayBucket struct {
	Day      string `json:"day"`
	Activity int64  `json:"activity"`
}

// DashboardStats is the full dashboard payload. The bucket slices always
// have fixed lengths: 6, 6 and 7, zero-filled when nothing matched.
type DashboardStats struct {
	LifetimeContributions LifetimeContributions `json:"lifetimeContributions"`
	LocalEvents2km        LocalEvents           `json:"localEvents2km"`
	EventsInAreaData      []AreaBucket          `json:"eventsInAreaData"`
	MonthlyTrendData      []TrendBucket         `json:"monthlyTrendData"`
	WeeklyActivityData    []WeekdayBucket       `json:"weeklyActivityData"`
}
