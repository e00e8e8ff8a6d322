package dashboard

import (
	"time"

	reportRepo "report2clean/database/repository/report"
	"report2clean/models"
)

// weekdayNames is the fixed emission order of the weekly histogram.
var weekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// monthFrame returns the last n calendar months ending at now, oldest
// first. The frame is fixed regardless of what the data holds, so missing
// months surface as zero-filled buckets.
func monthFrame(now time.Time, n int) []reportRepo.MonthKey {
	frame := make([]reportRepo.MonthKey, 0, n)
	for i := n - 1; i >= 0; i-- {
		t := now.AddDate(0, -i, -now.Day()+1)
		frame = append(frame, reportRepo.MonthKey{Year: t.Year(), Month: int(t.Month())})
	}
	return frame
}

// monthName renders a MonthKey as the short month name ("Jan".."Dec").
func monthName(k reportRepo.MonthKey) string {
	return time.Month(k.Month).String()[:3]
}

// shapeAreaBuckets projects sparse month counts onto the fixed frame.
func shapeAreaBuckets(frame []reportRepo.MonthKey, counts map[reportRepo.MonthKey]int64) []models.AreaBucket {
	buckets := make([]models.AreaBucket, 0, len(frame))
	for _, k := range frame {
		buckets = append(buckets, models.AreaBucket{Name: monthName(k), Events: counts[k]})
	}
	return buckets
}

// shapeTrendBuckets projects sparse monthly totals onto the fixed frame.
func shapeTrendBuckets(frame []reportRepo.MonthKey, counts map[reportRepo.MonthKey]reportRepo.MonthlyCount) []models.TrendBucket {
	buckets := make([]models.TrendBucket, 0, len(frame))
	for _, k := range frame {
		c := counts[k]
		buckets = append(buckets, models.TrendBucket{Month: monthName(k), Reports: c.Reports, Resolved: c.Resolved})
	}
	return buckets
}

// shapeWeekBuckets maps the trailing seven days onto fixed Mon..Sun slots.
// Seven consecutive days hit each weekday exactly once, so each slot holds
// one day's count no matter which weekday today is.
func shapeWeekBuckets(weekStart time.Time, daily map[string]int64) []models.WeekdayBucket {
	activity := map[string]int64{}
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		activity[day.Format("Mon")] = daily[day.Format("2006-01-02")]
	}

	buckets := make([]models.WeekdayBucket, 0, 7)
	for _, name := range weekdayNames {
		buckets = append(buckets, models.WeekdayBucket{Day: name, Activity: activity[name]})
	}
	return buckets
}

// monthStart returns local midnight on the first of now's month.
func monthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// dayStart returns local midnight of now's day.
func dayStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
