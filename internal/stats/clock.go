// Package stats turns sleep sessions into summary metrics, trend series,
// period buckets, weekday/weekend patterns and rule-based insights.
//
// Every function here is a pure function of its arguments. Fetching
// sessions, choosing date windows and reading the clock belong to callers.
package stats

import (
	"fmt"
	"math"
	"time"
)

const (
	minutesPerDay = 24 * 60

	// bedtimeCutoffMinutes splits "late evening" from "after midnight".
	// Bedtimes before 09:00 are treated as belonging to the previous night,
	// which assumes nobody goes to bed between 09:00 and 21:00. Fixed on purpose.
	bedtimeCutoffMinutes = 9 * 60
)

// ClockMinutes returns minutes since local midnight (0-1439).
func ClockMinutes(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// BedtimeMinutes returns ClockMinutes shifted by a day for bedtimes before
// the cutoff, so 23:30 (1410) and 00:45 (1485) sit on one continuous scale.
func BedtimeMinutes(t time.Time) int {
	m := ClockMinutes(t)
	if m < bedtimeCutoffMinutes {
		m += minutesPerDay
	}
	return m
}

// AverageClock formats the mean of minutes, reduced modulo one day, as HH:MM.
// An empty list yields "00:00".
func AverageClock(minutes []int) string {
	if len(minutes) == 0 {
		return formatClock(0)
	}
	sum := 0
	for _, m := range minutes {
		sum += m
	}
	mean := float64(sum) / float64(len(minutes))
	return formatClock(int(math.Floor(math.Mod(mean, minutesPerDay))))
}

func formatClock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
