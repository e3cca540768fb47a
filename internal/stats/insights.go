package stats

import (
	"fmt"

	"github.com/blaisecz/sleep-stats/internal/domain"
)

const (
	// InsightWindowDays is the length of each comparison window.
	InsightWindowDays = 30

	changeThresholdPercent  = 10
	weekendGapThresholdMins = 60
	lowConsistencyScore     = 50
	highConsistencyScore    = 80
	lowEfficiencyPercent    = 60
	excessEfficiencyPercent = 100
	insightWindowLabel      = "30d"
	insufficientDataMessage = "Keep logging your sleep every day to unlock more accurate insights."
)

// Metric names carried on insights.
const (
	MetricSleepDuration    = "sleep_duration"
	MetricSleepQuality     = "sleep_quality"
	MetricWeekendGap       = "weekday_weekend_gap"
	MetricConsistency      = "sleep_consistency"
	MetricEfficiency       = "sleep_efficiency"
	MetricInsufficientData = "insufficient_data"
)

// GenerateInsights compares the current window with the prior one and checks
// the current window's patterns against fixed thresholds. Rules run in a fixed
// order and each contributes at most one insight. With no sessions in the
// current window the only result is the insufficient-data recommendation.
func GenerateInsights(current, prior []domain.SleepSession, patterns domain.PatternSummary) []domain.Insight {
	cur := Summarize(current)
	if cur.TotalSessions == 0 {
		return []domain.Insight{InsufficientDataInsight()}
	}
	prev := Summarize(prior)

	rules := []func() (domain.Insight, bool){
		func() (domain.Insight, bool) { return durationTrend(cur, prev) },
		func() (domain.Insight, bool) { return qualityTrend(cur, prev) },
		func() (domain.Insight, bool) { return weekendGap(patterns) },
		func() (domain.Insight, bool) { return consistency(patterns) },
		func() (domain.Insight, bool) { return efficiency(cur) },
	}

	insights := make([]domain.Insight, 0, len(rules))
	for _, rule := range rules {
		if insight, ok := rule(); ok {
			insights = append(insights, insight)
		}
	}
	return insights
}

// InsufficientDataInsight is emitted when the current window has no sessions.
func InsufficientDataInsight() domain.Insight {
	return domain.Insight{
		Kind:        domain.InsightRecommendation,
		Message:     insufficientDataMessage,
		Metric:      MetricInsufficientData,
		WindowLabel: insightWindowLabel,
	}
}

func durationTrend(cur, prev domain.SummaryMetrics) (domain.Insight, bool) {
	if prev.TotalSessions == 0 || prev.AverageDurationMinutes == 0 {
		return domain.Insight{}, false
	}
	change := percentChange(float64(cur.AverageDurationMinutes), float64(prev.AverageDurationMinutes))
	if abs(change) < changeThresholdPercent {
		return domain.Insight{}, false
	}

	direction := "increased"
	if change < 0 {
		direction = "decreased"
	}
	return domain.Insight{
		Kind:          domain.InsightTrend,
		Message:       fmt.Sprintf("Your average sleep duration %s by %d%% compared to the previous 30 days.", direction, abs(change)),
		Metric:        MetricSleepDuration,
		Value:         float64(cur.AverageDurationMinutes),
		ChangePercent: change,
		WindowLabel:   insightWindowLabel,
	}, true
}

func qualityTrend(cur, prev domain.SummaryMetrics) (domain.Insight, bool) {
	if cur.AverageQuality == 0 || prev.AverageQuality == 0 {
		return domain.Insight{}, false
	}
	change := percentChange(cur.AverageQuality, prev.AverageQuality)
	if abs(change) < changeThresholdPercent {
		return domain.Insight{}, false
	}

	direction := "improved"
	if change < 0 {
		direction = "declined"
	}
	return domain.Insight{
		Kind:          domain.InsightTrend,
		Message:       fmt.Sprintf("Your average sleep quality %s by %d%% compared to the previous 30 days.", direction, abs(change)),
		Metric:        MetricSleepQuality,
		Value:         cur.AverageQuality,
		ChangePercent: change,
		WindowLabel:   insightWindowLabel,
	}, true
}

func weekendGap(p domain.PatternSummary) (domain.Insight, bool) {
	diff := p.WeekendAverageDurationMinutes - p.WeekdayAverageDurationMinutes
	if abs(diff) < weekendGapThresholdMins {
		return domain.Insight{}, false
	}

	hours := float64(abs(diff)) / 60
	msg := fmt.Sprintf("You sleep about %.1f hours (%d minutes) longer on weekends than on weekdays.", hours, abs(diff))
	if diff < 0 {
		msg = fmt.Sprintf("You sleep about %.1f hours (%d minutes) longer on weekdays than on weekends, which is an unusual pattern.", hours, abs(diff))
	}
	return domain.Insight{
		Kind:        domain.InsightAnomaly,
		Message:     msg,
		Metric:      MetricWeekendGap,
		Value:       float64(abs(diff)),
		WindowLabel: insightWindowLabel,
	}, true
}

func consistency(p domain.PatternSummary) (domain.Insight, bool) {
	score := p.ConsistencyScore
	switch {
	case score < lowConsistencyScore:
		return domain.Insight{
			Kind:        domain.InsightRecommendation,
			Message:     fmt.Sprintf("Your bedtime consistency score is low (%d/100). Going to bed and waking up at the same time every day helps sleep quality.", score),
			Metric:      MetricConsistency,
			Value:       float64(score),
			WindowLabel: insightWindowLabel,
		}, true
	case score >= highConsistencyScore:
		return domain.Insight{
			Kind:        domain.InsightTrend,
			Message:     fmt.Sprintf("Your bedtime consistency is excellent (%d/100). You are keeping a regular sleep schedule.", score),
			Metric:      MetricConsistency,
			Value:       float64(score),
			WindowLabel: insightWindowLabel,
		}, true
	}
	return domain.Insight{}, false
}

// efficiency never reports oversleeping while SleepEfficiencyPercent is
// capped at 100; the branch is kept so the rule survives lifting the cap.
func efficiency(cur domain.SummaryMetrics) (domain.Insight, bool) {
	pct := cur.SleepEfficiencyPercent
	switch {
	case pct < lowEfficiencyPercent:
		return domain.Insight{
			Kind:        domain.InsightRecommendation,
			Message:     fmt.Sprintf("Your sleep efficiency is low (%d%%). You are sleeping well short of the 8 hour baseline.", pct),
			Metric:      MetricEfficiency,
			Value:       float64(pct),
			WindowLabel: insightWindowLabel,
		}, true
	case pct > excessEfficiencyPercent:
		return domain.Insight{
			Kind:        domain.InsightRecommendation,
			Message:     "You are sleeping more than 8 hours on average. Too much sleep is not always better for you.",
			Metric:      MetricEfficiency,
			Value:       float64(pct),
			WindowLabel: insightWindowLabel,
		}, true
	}
	return domain.Insight{}, false
}

func percentChange(cur, prev float64) int {
	return roundHalfUp((cur - prev) / prev * 100)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
