package waste

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolvePeriodStart(t *testing.T) {
	now := time.Date(2025, time.August, 20, 14, 30, 45, 0, time.UTC)

	t.Run("week is a rolling lookback", func(t *testing.T) {
		got := ResolvePeriodStart(PeriodWeek, now)
		assert.Equal(t, now.Add(-7*24*time.Hour), got)
		// rolling window keeps the time of day
		assert.Equal(t, 14, got.Hour())
	})

	t.Run("month aligns to calendar start", func(t *testing.T) {
		got := ResolvePeriodStart(PeriodMonth, now)
		assert.Equal(t, time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("quarter aligns to quarter start", func(t *testing.T) {
		got := ResolvePeriodStart(PeriodQuarter, now)
		assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), got)

		q1 := time.Date(2025, time.February, 10, 8, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), ResolvePeriodStart(PeriodQuarter, q1))

		q4 := time.Date(2025, time.December, 31, 8, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), ResolvePeriodStart(PeriodQuarter, q4))
	})

	t.Run("year aligns to january first", func(t *testing.T) {
		got := ResolvePeriodStart(PeriodYear, now)
		assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("unknown period falls back to month", func(t *testing.T) {
		got := ResolvePeriodStart("fortnight", now)
		assert.Equal(t, ResolvePeriodStart(PeriodMonth, now), got)
	})

	t.Run("empty period falls back to month", func(t *testing.T) {
		got := ResolvePeriodStart("", now)
		assert.Equal(t, ResolvePeriodStart(PeriodMonth, now), got)
	})
}
