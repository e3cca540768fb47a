package stats

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/blaisecz/sleep-stats/internal/domain"
)

// PeriodKey derives the bucket key of t for the given granularity. Anything
// other than the four named granularities is an ArgumentError.
//
// Weekly keys are NOT ISO-8601 weeks. The week number is the week of the
// month, ceil((dayOfMonth + weekdayOfFirstOfMonth) / 7) with Sunday as 0,
// and the key carries only the year: the first week of January and the first
// week of February both map to "YYYY-W01". Existing consumers depend on these
// bucket boundaries.
func PeriodKey(t time.Time, g domain.Granularity) (string, error) {
	switch g {
	case domain.GranularityDaily:
		return t.Format(domain.DateLayout), nil
	case domain.GranularityWeekly:
		return fmt.Sprintf("%04d-W%02d", t.Year(), weekOfMonth(t)), nil
	case domain.GranularityMonthly:
		return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month())), nil
	case domain.GranularityYearly:
		return fmt.Sprintf("%04d", t.Year()), nil
	}
	_, err := domain.ParseGranularity(string(g))
	return "", err
}

func weekOfMonth(t time.Time) int {
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	offset := int(firstOfMonth.Weekday())
	return int(math.Ceil(float64(t.Day()+offset) / 7))
}

type periodAccumulator struct {
	durations []int
	qualities []int
}

// GroupByPeriod buckets sessions by the local start time's period key and
// returns the buckets in ascending key order. An empty input yields an empty,
// non-nil slice. An unknown granularity fails even for an empty input.
func GroupByPeriod(sessions []domain.SleepSession, g domain.Granularity) ([]domain.PeriodBucket, error) {
	if _, err := domain.ParseGranularity(string(g)); err != nil {
		return nil, err
	}

	groups := make(map[string]*periodAccumulator)

	for i := range sessions {
		s := &sessions[i]
		key, err := PeriodKey(s.LocalSleepTime(), g)
		if err != nil {
			return nil, err
		}
		acc, ok := groups[key]
		if !ok {
			acc = &periodAccumulator{}
			groups[key] = acc
		}
		acc.durations = append(acc.durations, s.ElapsedMinutes())
		if s.HasQuality() {
			acc.qualities = append(acc.qualities, *s.Quality)
		}
	}

	buckets := make([]domain.PeriodBucket, 0, len(groups))
	for key, acc := range groups {
		buckets = append(buckets, domain.PeriodBucket{
			PeriodKey:              key,
			AverageDurationMinutes: roundHalfUp(meanInts(acc.durations)),
			AverageQuality:         averageQuality(acc.qualities),
			SessionCount:           len(acc.durations),
		})
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].PeriodKey < buckets[j].PeriodKey
	})

	return buckets, nil
}
