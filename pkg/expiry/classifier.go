package expiry

import (
	"math"
	"time"

	"usana-backend/entities"
)

const (
	StatusFresh        = "fresh"
	StatusExpiringSoon = "expiring-soon"
	StatusExpired      = "expired"
)

// Items expiring within this many days (inclusive) count as expiring-soon.
const expiringSoonWindowDays = 3

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ClassifyExpiry derives the freshness status of an item from its expiry
// date and a reference date. Both dates are normalized to midnight so the
// time of day never shifts an item across a day boundary. An item expiring
// today is expiring-soon, not fresh.
func ClassifyExpiry(expiryDate, referenceDate time.Time) string {
	expiry := startOfDay(expiryDate)
	reference := startOfDay(referenceDate)

	diffDays := int(math.Ceil(expiry.Sub(reference).Hours() / 24))

	switch {
	case diffDays < 0:
		return StatusExpired
	case diffDays <= expiringSoonWindowDays:
		return StatusExpiringSoon
	default:
		return StatusFresh
	}
}

// WithComputedStatus overwrites the stored status snapshot of every item
// with the value derived from referenceDate. The persisted status is only a
// cache; anything surfaced to a client goes through this first.
func WithComputedStatus(items []*entities.ExpiryItem, referenceDate time.Time) []*entities.ExpiryItem {
	for _, item := range items {
		item.Status = ClassifyExpiry(item.ExpiryDate, referenceDate)
	}
	return items
}
