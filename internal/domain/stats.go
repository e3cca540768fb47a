package domain

// SummaryMetrics aggregates a set of sleep sessions.
// @Description Aggregate sleep metrics over a date range.
type SummaryMetrics struct {
	// Number of sessions in the range
	TotalSessions int `json:"total_sessions" example:"28"`
	// Mean session duration in minutes (rounded)
	AverageDurationMinutes int `json:"average_duration_minutes" example:"452"`
	// Mean quality over rated sessions, one decimal (0 when none are rated)
	AverageQuality float64 `json:"average_quality" example:"7.3"`
	// Mean bedtime on a 24-hour clock
	AverageBedtime string `json:"average_bedtime" example:"23:24"`
	// Mean wake time on a 24-hour clock
	AverageWakeTime string `json:"average_wake_time" example:"07:02"`
	// Average duration against an 8 hour baseline, capped at 100
	SleepEfficiencyPercent int `json:"sleep_efficiency_percent" example:"94"`
}

// EmptySummary is the result for a range with no sessions.
func EmptySummary() SummaryMetrics {
	return SummaryMetrics{
		AverageBedtime:  "00:00",
		AverageWakeTime: "00:00",
	}
}

// TrendPoint is one (date, value) pair of a trend series.
type TrendPoint struct {
	Date  string `json:"date" example:"2024-01-15"`
	Value int    `json:"value" example:"465"`
}

// TrendSeries holds duration and quality series ordered by date.
// @Description Per-session duration and quality series in ascending date order.
type TrendSeries struct {
	Duration []TrendPoint `json:"duration"`
	Quality  []TrendPoint `json:"quality"`
}

// Granularity is the bucketing resolution for period statistics.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
	GranularityYearly  Granularity = "yearly"
)

// ParseGranularity accepts only the four literal granularity names.
func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(s); g {
	case GranularityDaily, GranularityWeekly, GranularityMonthly, GranularityYearly:
		return g, nil
	}
	return "", NewArgumentError("granularity", "must be one of: daily weekly monthly yearly")
}

// PeriodBucket aggregates the sessions that share a period key.
// @Description Per-period aggregate.
type PeriodBucket struct {
	PeriodKey              string  `json:"period" example:"2024-01"`
	AverageDurationMinutes int     `json:"average_duration_minutes" example:"451"`
	AverageQuality         float64 `json:"average_quality" example:"7.1"`
	SessionCount           int     `json:"session_count" example:"30"`
}

// PatternSummary compares weekday and weekend sleep and scores bedtime regularity.
// @Description Weekday/weekend pattern analysis.
type PatternSummary struct {
	WeekdayAverageDurationMinutes int `json:"weekday_average_duration_minutes" example:"430"`
	WeekendAverageDurationMinutes int `json:"weekend_average_duration_minutes" example:"510"`
	// 0-100, higher means more regular bedtimes
	ConsistencyScore int `json:"consistency_score" example:"78"`
}

// InsightKind classifies an insight.
type InsightKind string

const (
	InsightTrend          InsightKind = "trend"
	InsightAnomaly        InsightKind = "anomaly"
	InsightRecommendation InsightKind = "recommendation"
)

// Insight is a rule-derived observation about recent sleep.
// @Description Typed observation comparing the last 30 days to the 30 days before.
type Insight struct {
	Kind          InsightKind `json:"kind" example:"trend" enums:"trend,anomaly,recommendation"`
	Message       string      `json:"message" example:"Your average sleep duration decreased by 25% compared to the previous 30 days."`
	Metric        string      `json:"metric" example:"sleep_duration"`
	Value         float64     `json:"value" example:"360"`
	ChangePercent int         `json:"change_percent" example:"-25"`
	WindowLabel   string      `json:"window" example:"30d"`
}

// StatsOverview combines summary, trends and patterns for a single range.
// @Description Summary, trends and patterns computed from one fetch.
type StatsOverview struct {
	Summary  SummaryMetrics `json:"summary"`
	Trends   TrendSeries    `json:"trends"`
	Patterns PatternSummary `json:"patterns"`
}

// StatsQuery carries the optional calendar date bounds of a stats request.
type StatsQuery struct {
	StartDate string
	EndDate   string
}
