package waste

import "time"

const (
	PeriodWeek    = "week"
	PeriodMonth   = "month"
	PeriodQuarter = "quarter"
	PeriodYear    = "year"
)

// ResolvePeriodStart maps a reporting period token to the start of its
// window, anchored at now. "week" is a rolling 7-day lookback while the
// other periods align to the calendar start of month/quarter/year; the
// asymmetry is kept for compatibility with existing clients. Unrecognized
// or empty tokens fall back to "month".
func ResolvePeriodStart(period string, now time.Time) time.Time {
	switch period {
	case PeriodWeek:
		return now.Add(-7 * 24 * time.Hour)
	case PeriodQuarter:
		quarterStart := time.Month((int(now.Month())-1)/3*3 + 1)
		return time.Date(now.Year(), quarterStart, 1, 0, 0, 0, 0, now.Location())
	case PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}
