package stats

import (
	"time"

	"github.com/blaisecz/sleep-stats/internal/domain"
)

// ConsistencyScaleMinutes is the bedtime standard deviation that scores 0.
const ConsistencyScaleMinutes = 120

// AnalyzePatterns splits sessions into weekday (Mon-Fri) and weekend (Sat-Sun)
// by the local day the session started, and scores bedtime regularity.
func AnalyzePatterns(sessions []domain.SleepSession) domain.PatternSummary {
	var weekday, weekend []int
	bedtimes := make([]int, 0, len(sessions))

	for i := range sessions {
		s := &sessions[i]
		start := s.LocalSleepTime()
		if isWeekend(start) {
			weekend = append(weekend, s.ElapsedMinutes())
		} else {
			weekday = append(weekday, s.ElapsedMinutes())
		}
		bedtimes = append(bedtimes, BedtimeMinutes(start))
	}

	return domain.PatternSummary{
		WeekdayAverageDurationMinutes: roundHalfUp(meanInts(weekday)),
		WeekendAverageDurationMinutes: roundHalfUp(meanInts(weekend)),
		ConsistencyScore:              ConsistencyScore(bedtimes),
	}
}

// ConsistencyScore maps the sample standard deviation of bedtime minutes onto
// 0-100: 0 minutes scores 100 and ConsistencyScaleMinutes or more scores 0.
// Fewer than two bedtimes score 100.
func ConsistencyScore(bedtimeMinutes []int) int {
	if len(bedtimeMinutes) <= 1 {
		return 100
	}
	std := sampleStdDev(bedtimeMinutes)
	return clampInt(roundHalfUp(100-std/ConsistencyScaleMinutes*100), 0, 100)
}

func isWeekend(t time.Time) bool {
	day := t.Weekday()
	return day == time.Saturday || day == time.Sunday
}
