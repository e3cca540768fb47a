package handler

import (
	"net/http"

	"github.com/blaisecz/sleep-stats/internal/domain"
	"github.com/blaisecz/sleep-stats/internal/service"
)

const defaultGranularity = string(domain.GranularityDaily)

// StatsHandler serves the statistics and rule-based insight endpoints.
type StatsHandler struct {
	service service.StatsService
}

func NewStatsHandler(service service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

func statsQuery(r *http.Request) domain.StatsQuery {
	q := r.URL.Query()
	return domain.StatsQuery{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}
}

// Summary handles GET /v1/users/{userId}/sleep/stats/summary
// @Summary Sleep summary
// @Description Aggregate metrics over an inclusive calendar date range. Both dates are optional. An empty range returns zeroed metrics.
// @Tags sleep-stats
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param start_date query string false "First calendar date (YYYY-MM-DD)" format(date) example(2024-01-01)
// @Param end_date query string false "Last calendar date (YYYY-MM-DD)" format(date) example(2024-01-31)
// @Success 200 {object} domain.SummaryMetrics
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid date arguments"
// @Failure 503 {object} problem.Problem "Session store unavailable"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep/stats/summary [get]
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	result, err := h.service.Summary(r.Context(), userID, statsQuery(r))
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to compute sleep summary")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Trends handles GET /v1/users/{userId}/sleep/stats/trends
// @Summary Sleep trends
// @Description Per-session duration and quality series ordered by local start date. Unrated sessions appear only in the duration series.
// @Tags sleep-stats
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param start_date query string false "First calendar date (YYYY-MM-DD)" format(date)
// @Param end_date query string false "Last calendar date (YYYY-MM-DD)" format(date)
// @Success 200 {object} domain.TrendSeries
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 503 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep/stats/trends [get]
func (h *StatsHandler) Trends(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	result, err := h.service.Trends(r.Context(), userID, statsQuery(r))
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to compute sleep trends")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Periods handles GET /v1/users/{userId}/sleep/stats/periods
// @Summary Sleep statistics per period
// @Description Buckets sessions by day, week, month or year. Weekly keys use the week of the month, not ISO weeks.
// @Tags sleep-stats
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param granularity query string false "Bucket size" Enums(daily, weekly, monthly, yearly) default(daily)
// @Param start_date query string false "First calendar date (YYYY-MM-DD)" format(date)
// @Param end_date query string false "Last calendar date (YYYY-MM-DD)" format(date)
// @Success 200 {array} domain.PeriodBucket
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 503 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep/stats/periods [get]
func (h *StatsHandler) Periods(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	granularity := r.URL.Query().Get("granularity")
	if granularity == "" {
		granularity = defaultGranularity
	}

	result, err := h.service.PeriodStats(r.Context(), userID, granularity, statsQuery(r))
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to compute period statistics")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Patterns handles GET /v1/users/{userId}/sleep/stats/patterns
// @Summary Weekday and weekend patterns
// @Description Weekday versus weekend average duration and a 0-100 bedtime consistency score.
// @Tags sleep-stats
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param start_date query string false "First calendar date (YYYY-MM-DD)" format(date)
// @Param end_date query string false "Last calendar date (YYYY-MM-DD)" format(date)
// @Success 200 {object} domain.PatternSummary
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 503 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep/stats/patterns [get]
func (h *StatsHandler) Patterns(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	result, err := h.service.Patterns(r.Context(), userID, statsQuery(r))
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to analyze sleep patterns")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Overview handles GET /v1/users/{userId}/sleep/stats/overview
// @Summary Combined sleep statistics
// @Description Summary, trends and patterns for one date range.
// @Tags sleep-stats
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param start_date query string false "First calendar date (YYYY-MM-DD)" format(date)
// @Param end_date query string false "Last calendar date (YYYY-MM-DD)" format(date)
// @Success 200 {object} domain.StatsOverview
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 503 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep/stats/overview [get]
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	result, err := h.service.Overview(r.Context(), userID, statsQuery(r))
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to compute sleep overview")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Insights handles GET /v1/users/{userId}/sleep/insights
// @Summary Rule-based sleep insights
// @Description Compares the last 30 days with the 30 days before them. With no recent sessions a single recommendation to keep logging is returned.
// @Tags sleep-insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {array} domain.Insight
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 503 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep/insights [get]
func (h *StatsHandler) Insights(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	result, err := h.service.Insights(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to generate insights")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
