package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/blaisecz/sleep-stats/internal/domain"
	"github.com/blaisecz/sleep-stats/internal/repository"
	"github.com/blaisecz/sleep-stats/internal/stats"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// StatsService exposes the statistics engine over a user's stored sessions.
// Empty ranges are valid and produce zeroed results.
type StatsService interface {
	Summary(ctx context.Context, userID uuid.UUID, q domain.StatsQuery) (*domain.SummaryMetrics, error)
	Trends(ctx context.Context, userID uuid.UUID, q domain.StatsQuery) (*domain.TrendSeries, error)
	PeriodStats(ctx context.Context, userID uuid.UUID, granularity string, q domain.StatsQuery) ([]domain.PeriodBucket, error)
	Patterns(ctx context.Context, userID uuid.UUID, q domain.StatsQuery) (*domain.PatternSummary, error)
	// Insights compares the trailing 30 days with the 30 days before them.
	Insights(ctx context.Context, userID uuid.UUID) ([]domain.Insight, error)
	// Overview computes summary, trends and patterns from a single fetch.
	Overview(ctx context.Context, userID uuid.UUID, q domain.StatsQuery) (*domain.StatsOverview, error)
	// Analysis returns the current insight window's overview together with
	// its insights. Unlike Insights it does not notify the InsightRecorder.
	Analysis(ctx context.Context, userID uuid.UUID) (*domain.StatsOverview, []domain.Insight, error)
}

// InsightRecorder is notified of every insight list returned to a caller.
type InsightRecorder interface {
	InsightsEmitted(insights []domain.Insight)
}

type statsService struct {
	repo     repository.SleepSessionRepository
	userRepo repository.UserRepository
	recorder InsightRecorder
	now      func() time.Time
}

// NewStatsService creates a StatsService. recorder may be nil.
func NewStatsService(repo repository.SleepSessionRepository, userRepo repository.UserRepository, recorder InsightRecorder) StatsService {
	return &statsService{
		repo:     repo,
		userRepo: userRepo,
		recorder: recorder,
		now:      time.Now,
	}
}

func (s *statsService) Summary(ctx context.Context, userID uuid.UUID, q domain.StatsQuery) (*domain.SummaryMetrics, error) {
	ctx, span := startStatsSpan(ctx, "StatsService.Summary", userID, q)
	defer span.End()

	sessions, err := s.fetch(ctx, userID, q)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	summary := stats.Summarize(sessions)
	setSpanOutput(span, len(sessions), summary)
	return &summary, nil
}

func (s *statsService) Trends(ctx context.Context, userID uuid.UUID, q domain.StatsQuery) (*domain.TrendSeries, error) {
	ctx, span := startStatsSpan(ctx, "StatsService.Trends", userID, q)
	defer span.End()

	sessions, err := s.fetch(ctx, userID, q)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	trends := stats.BuildTrends(sessions)
	setSpanOutput(span, len(sessions), map[string]int{
		"duration_points": len(trends.Duration),
		"quality_points":  len(trends.Quality),
	})
	return &trends, nil
}

func (s *statsService) PeriodStats(ctx context.Context, userID uuid.UUID, granularity string, q domain.StatsQuery) ([]domain.PeriodBucket, error) {
	ctx, span := startStatsSpan(ctx, "StatsService.PeriodStats", userID, q)
	defer span.End()
	span.SetAttributes(attribute.String("stats.granularity", granularity))

	g, err := domain.ParseGranularity(granularity)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	sessions, err := s.fetch(ctx, userID, q)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	buckets, err := stats.GroupByPeriod(sessions, g)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	setSpanOutput(span, len(sessions), buckets)
	return buckets, nil
}

func (s *statsService) Patterns(ctx context.Context, userID uuid.UUID, q domain.StatsQuery) (*domain.PatternSummary, error) {
	ctx, span := startStatsSpan(ctx, "StatsService.Patterns", userID, q)
	defer span.End()

	sessions, err := s.fetch(ctx, userID, q)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	patterns := stats.AnalyzePatterns(sessions)
	setSpanOutput(span, len(sessions), patterns)
	return &patterns, nil
}

func (s *statsService) Overview(ctx context.Context, userID uuid.UUID, q domain.StatsQuery) (*domain.StatsOverview, error) {
	ctx, span := startStatsSpan(ctx, "StatsService.Overview", userID, q)
	defer span.End()

	sessions, err := s.fetch(ctx, userID, q)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	overview := &domain.StatsOverview{
		Summary:  stats.Summarize(sessions),
		Trends:   stats.BuildTrends(sessions),
		Patterns: stats.AnalyzePatterns(sessions),
	}
	setSpanOutput(span, len(sessions), overview.Summary)
	return overview, nil
}

func (s *statsService) Insights(ctx context.Context, userID uuid.UUID) ([]domain.Insight, error) {
	ctx, span := otel.Tracer("sleep-stats-api/stats").Start(ctx, "StatsService.Insights",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	w, err := s.loadWindows(ctx, span, userID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	insights := w.insights()
	if s.recorder != nil {
		s.recorder.InsightsEmitted(insights)
	}

	setSpanOutput(span, len(w.current), insights)
	return insights, nil
}

func (s *statsService) Analysis(ctx context.Context, userID uuid.UUID) (*domain.StatsOverview, []domain.Insight, error) {
	ctx, span := otel.Tracer("sleep-stats-api/stats").Start(ctx, "StatsService.Analysis",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	w, err := s.loadWindows(ctx, span, userID)
	if err != nil {
		span.RecordError(err)
		return nil, nil, err
	}

	overview := &domain.StatsOverview{
		Summary:  stats.Summarize(w.current),
		Trends:   stats.BuildTrends(w.current),
		Patterns: stats.AnalyzePatterns(w.current),
	}
	insights := w.insights()

	setSpanOutput(span, len(w.current), overview.Summary)
	return overview, insights, nil
}

// insightWindows holds the sessions of both comparison windows.
type insightWindows struct {
	current []domain.SleepSession
	prior   []domain.SleepSession
}

func (w insightWindows) insights() []domain.Insight {
	return stats.GenerateInsights(w.current, w.prior, stats.AnalyzePatterns(w.current))
}

// loadWindows checks the user and fetches both insight windows, with "today"
// taken in the user's timezone.
func (s *statsService) loadWindows(ctx context.Context, span trace.Span, userID uuid.UUID) (insightWindows, error) {
	loc, err := s.userLocation(ctx, userID)
	if err != nil {
		return insightWindows{}, err
	}

	current, prior := InsightWindows(s.now(), loc)
	span.SetAttributes(
		attribute.String("window.current", current.StartDate+".."+current.EndDate),
		attribute.String("window.prior", prior.StartDate+".."+prior.EndDate),
		attribute.String("window.timezone", loc.String()),
	)

	var w insightWindows
	if w.current, err = s.listRange(ctx, userID, current, loc); err != nil {
		return insightWindows{}, err
	}
	if w.prior, err = s.listRange(ctx, userID, prior, loc); err != nil {
		return insightWindows{}, err
	}
	span.SetAttributes(attribute.Int("stats.prior_sessions", len(w.prior)))
	return w, nil
}

// InsightWindows returns the current window [today-30, today] and the prior
// window [today-60, today-31] as inclusive calendar dates, where today is
// the date of now in loc. A nil loc means UTC.
func InsightWindows(now time.Time, loc *time.Location) (current, prior domain.StatsQuery) {
	if loc == nil {
		loc = time.UTC
	}
	today := now.In(loc)
	day := func(offset int) string {
		return today.AddDate(0, 0, offset).Format(domain.DateLayout)
	}
	current = domain.StatsQuery{StartDate: day(-stats.InsightWindowDays), EndDate: day(0)}
	prior = domain.StatsQuery{StartDate: day(-2 * stats.InsightWindowDays), EndDate: day(-stats.InsightWindowDays - 1)}
	return current, prior
}

// ParseDateRange turns optional inclusive calendar dates into repository
// bounds: From is local midnight of StartDate and To local midnight of the
// day after EndDate, both in loc. A nil loc means UTC.
func ParseDateRange(q domain.StatsQuery, loc *time.Location) (domain.DateRange, error) {
	if loc == nil {
		loc = time.UTC
	}

	var r domain.DateRange
	var start, endDate, end time.Time

	if q.StartDate != "" {
		t, err := time.ParseInLocation(domain.DateLayout, q.StartDate, loc)
		if err != nil {
			return r, domain.NewArgumentError("start_date", "must be a YYYY-MM-DD date")
		}
		start = t
		r.From = &start
	}
	if q.EndDate != "" {
		t, err := time.ParseInLocation(domain.DateLayout, q.EndDate, loc)
		if err != nil {
			return r, domain.NewArgumentError("end_date", "must be a YYYY-MM-DD date")
		}
		endDate = t
		end = t.AddDate(0, 0, 1)
		r.To = &end
	}
	if r.From != nil && r.To != nil && start.After(endDate) {
		return domain.DateRange{}, domain.NewArgumentError("start_date", "must not be after end_date")
	}

	return r, nil
}

// fetch validates arguments, resolves the user's timezone and loads the
// sessions whose local calendar dates fall in range.
func (s *statsService) fetch(ctx context.Context, userID uuid.UUID, q domain.StatsQuery) ([]domain.SleepSession, error) {
	if _, err := ParseDateRange(q, time.UTC); err != nil {
		return nil, err
	}
	loc, err := s.userLocation(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.listRange(ctx, userID, q, loc)
}

func (s *statsService) listRange(ctx context.Context, userID uuid.UUID, q domain.StatsQuery, loc *time.Location) ([]domain.SleepSession, error) {
	r, err := ParseDateRange(q, loc)
	if err != nil {
		return nil, err
	}
	sessions, err := s.repo.ListByRange(ctx, userID, r)
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []domain.SleepSession{}
	}
	return sessions, nil
}

// userLocation loads the user and resolves their IANA timezone, falling back
// to UTC for a zone the runtime does not know.
func (s *statsService) userLocation(ctx context.Context, userID uuid.UUID) (*time.Location, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(user.Timezone)
	if err != nil {
		return time.UTC, nil
	}
	return loc, nil
}

func startStatsSpan(ctx context.Context, name string, userID uuid.UUID, q domain.StatsQuery) (context.Context, trace.Span) {
	ctx, span := otel.Tracer("sleep-stats-api/stats").Start(ctx, name,
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("range.start_date", q.StartDate),
			attribute.String("range.end_date", q.EndDate),
		),
	)

	// Attach input payload for Langfuse
	inputPayload := map[string]any{
		"user_id":    userID.String(),
		"start_date": q.StartDate,
		"end_date":   q.EndDate,
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	return ctx, span
}

func setSpanOutput(span trace.Span, sessionCount int, output any) {
	span.SetAttributes(attribute.Int("stats.sessions", sessionCount))
	if outputJSON, err := json.Marshal(output); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}
}
