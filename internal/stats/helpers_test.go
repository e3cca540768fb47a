package stats

import (
	"time"

	"github.com/google/uuid"

	"github.com/blaisecz/sleep-stats/internal/domain"
)

func intPtr(v int) *int { return &v }

// session builds a UTC session starting at start and lasting minutes.
func session(start time.Time, minutes int, quality *int) domain.SleepSession {
	return domain.SleepSession{
		ID:              uuid.New(),
		UserID:          uuid.Nil,
		SleepTime:       start,
		WakeTime:        start.Add(time.Duration(minutes) * time.Minute),
		DurationMinutes: minutes,
		Quality:         quality,
		LocalTimezone:   "UTC",
	}
}

// nightly builds one session per day starting at the given UTC clock time.
func nightly(from time.Time, days, hour, minute, minutes int, quality *int) []domain.SleepSession {
	out := make([]domain.SleepSession, 0, days)
	for i := 0; i < days; i++ {
		day := from.AddDate(0, 0, i)
		start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
		out = append(out, session(start, minutes, quality))
	}
	return out
}
