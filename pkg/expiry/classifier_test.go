package expiry

import (
	"testing"
	"time"

	"usana-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifyExpiry(t *testing.T) {
	reference := date(2025, time.June, 15)

	tests := []struct {
		name   string
		expiry time.Time
		want   string
	}{
		{"expired yesterday", date(2025, time.June, 14), StatusExpired},
		{"expired long ago", date(2025, time.January, 1), StatusExpired},
		{"expires today", date(2025, time.June, 15), StatusExpiringSoon},
		{"expires tomorrow", date(2025, time.June, 16), StatusExpiringSoon},
		{"expires at window edge", date(2025, time.June, 18), StatusExpiringSoon},
		{"expires just past window", date(2025, time.June, 19), StatusFresh},
		{"expires next month", date(2025, time.July, 15), StatusFresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyExpiry(tt.expiry, reference))
		})
	}
}

func TestClassifyExpiryIgnoresTimeOfDay(t *testing.T) {
	// late evening reference vs early morning expiry on the same dates
	// must classify exactly like the midnight-to-midnight comparison
	reference := time.Date(2025, time.June, 15, 23, 59, 0, 0, time.UTC)
	expiry := time.Date(2025, time.June, 18, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, StatusExpiringSoon, ClassifyExpiry(expiry, reference))

	expired := time.Date(2025, time.June, 14, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, StatusExpired, ClassifyExpiry(expired, reference))
}

func TestWithComputedStatusOverwritesSnapshot(t *testing.T) {
	reference := date(2025, time.June, 15)

	items := []*entities.ExpiryItem{
		{ID: uuid.New(), ExpiryDate: date(2025, time.June, 10), Status: StatusFresh},
		{ID: uuid.New(), ExpiryDate: date(2025, time.June, 16), Status: StatusExpired},
		{ID: uuid.New(), ExpiryDate: date(2025, time.August, 1), Status: StatusExpiringSoon},
	}

	items = WithComputedStatus(items, reference)

	assert.Equal(t, StatusExpired, items[0].Status)
	assert.Equal(t, StatusExpiringSoon, items[1].Status)
	assert.Equal(t, StatusFresh, items[2].Status)

	// recomputing with the same reference must not change anything
	items = WithComputedStatus(items, reference)
	assert.Equal(t, StatusExpired, items[0].Status)
	assert.Equal(t, StatusExpiringSoon, items[1].Status)
	assert.Equal(t, StatusFresh, items[2].Status)
}
