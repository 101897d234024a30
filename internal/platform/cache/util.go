package cache

import (
	"time"
)

// TimeUntilNextOpen returns the duration until the next 09:00 Paris time,
// the Euronext open. Cached reads expire then, when fresh bars arrive.
func TimeUntilNextOpen() time.Duration {
	loc, _ := time.LoadLocation("Europe/Paris")
	now := time.Now().In(loc)

	nextOpen := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, loc)
	if now.After(nextOpen) {
		nextOpen = nextOpen.Add(24 * time.Hour)
	}

	return nextOpen.Sub(now)
}
