package stats

import (
	"sort"

	"github.com/blaisecz/sleep-stats/internal/domain"
)

// BuildTrends projects sessions into date-ordered duration and quality series.
// Same-date entries keep their input order. Unrated sessions only appear in
// the duration series.
func BuildTrends(sessions []domain.SleepSession) domain.TrendSeries {
	trends := domain.TrendSeries{
		Duration: make([]domain.TrendPoint, 0, len(sessions)),
		Quality:  make([]domain.TrendPoint, 0, len(sessions)),
	}

	for i := range sessions {
		s := &sessions[i]
		date := s.LocalDate()
		trends.Duration = append(trends.Duration, domain.TrendPoint{Date: date, Value: s.ElapsedMinutes()})
		if s.HasQuality() {
			trends.Quality = append(trends.Quality, domain.TrendPoint{Date: date, Value: *s.Quality})
		}
	}

	sortByDate(trends.Duration)
	sortByDate(trends.Quality)

	return trends
}

func sortByDate(points []domain.TrendPoint) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
}
