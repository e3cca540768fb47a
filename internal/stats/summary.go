package stats

import (
	"github.com/blaisecz/sleep-stats/internal/domain"
)

// IdealSleepMinutes is the fixed 8 hour baseline for sleep efficiency.
// It is not configurable per user.
const IdealSleepMinutes = 480

// Summarize computes aggregate metrics. An empty input is a valid "no data"
// result: zero counts, zero averages and "00:00" clocks.
func Summarize(sessions []domain.SleepSession) domain.SummaryMetrics {
	if len(sessions) == 0 {
		return domain.EmptySummary()
	}

	durations := make([]int, 0, len(sessions))
	qualities := make([]int, 0, len(sessions))
	bedtimes := make([]int, 0, len(sessions))
	wakeTimes := make([]int, 0, len(sessions))

	for i := range sessions {
		s := &sessions[i]
		durations = append(durations, s.ElapsedMinutes())
		if s.HasQuality() {
			qualities = append(qualities, *s.Quality)
		}
		bedtimes = append(bedtimes, BedtimeMinutes(s.LocalSleepTime()))
		wakeTimes = append(wakeTimes, ClockMinutes(s.LocalWakeTime()))
	}

	avgDuration := meanInts(durations)

	return domain.SummaryMetrics{
		TotalSessions:          len(sessions),
		AverageDurationMinutes: roundHalfUp(avgDuration),
		AverageQuality:         averageQuality(qualities),
		AverageBedtime:         AverageClock(bedtimes),
		AverageWakeTime:        AverageClock(wakeTimes),
		SleepEfficiencyPercent: efficiencyPercent(avgDuration),
	}
}

// averageQuality is the one-decimal mean of the rated sessions, 0 when none are rated.
func averageQuality(qualities []int) float64 {
	if len(qualities) == 0 {
		return 0
	}
	return roundOneDecimal(meanInts(qualities))
}

func efficiencyPercent(avgDurationMinutes float64) int {
	pct := roundHalfUp(avgDurationMinutes / IdealSleepMinutes * 100)
	if pct > 100 {
		return 100
	}
	return pct
}
