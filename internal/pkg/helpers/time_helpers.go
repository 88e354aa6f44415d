package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// NextDailyRun returns the next occurrence of the given HH:MM wall-clock
// time after now. Used by the deadline-reminder job, which runs once per
// day and never overlaps itself.
func NextDailyRun(now time.Time, runAt string) time.Time {
	t, err := time.Parse("15:04", runAt)
	if err != nil {
		// Config validation rejects bad values; fall back to 07:00 anyway.
		t, _ = time.Parse("15:04", "07:00")
	}

	next := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
