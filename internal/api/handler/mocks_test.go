package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/blaisecz/sleep-stats/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Name: req.Name, Timezone: req.Timezone}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockSleepSessionService is a mock implementation of SleepSessionService
type MockSleepSessionService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepSessionRequest) (*domain.SleepSession, error)
	getFunc    func(ctx context.Context, userID, sessionID uuid.UUID) (*domain.SleepSession, error)
	updateFunc func(ctx context.Context, userID, sessionID uuid.UUID, req *domain.UpdateSleepSessionRequest) (*domain.SleepSession, error)
	deleteFunc func(ctx context.Context, userID, sessionID uuid.UUID) error
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) (*domain.SleepSessionListResponse, error)
}

func (m *MockSleepSessionService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepSessionRequest) (*domain.SleepSession, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.SleepSession{
		ID:              uuid.New(),
		UserID:          userID,
		SleepTime:       req.SleepTime,
		WakeTime:        req.WakeTime,
		DurationMinutes: int(req.WakeTime.Sub(req.SleepTime).Minutes()),
		Quality:         req.Quality,
		LocalTimezone:   "UTC",
		CreatedAt:       time.Now(),
	}, nil
}

func (m *MockSleepSessionService) Get(ctx context.Context, userID, sessionID uuid.UUID) (*domain.SleepSession, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID, sessionID)
	}
	return sampleSession(userID, sessionID), nil
}

func (m *MockSleepSessionService) Update(ctx context.Context, userID, sessionID uuid.UUID, req *domain.UpdateSleepSessionRequest) (*domain.SleepSession, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, sessionID, req)
	}
	s := sampleSession(userID, sessionID)
	if req.Quality != nil {
		s.Quality = req.Quality
	}
	return s, nil
}

func (m *MockSleepSessionService) Delete(ctx context.Context, userID, sessionID uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, sessionID)
	}
	return nil
}

func (m *MockSleepSessionService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) (*domain.SleepSessionListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.SleepSessionListResponse{
		Data:       []domain.SleepSessionResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	summaryFunc  func(ctx context.Context, userID uuid.UUID, q domain.StatsQuery) (*domain.SummaryMetrics, error)
	trendsFunc   func(ctx context.Context, userID uuid.UUID, q domain.StatsQuery) (*domain.TrendSeries, error)
	periodFunc   func(ctx context.Context, userID uuid.UUID, granularity string, q domain.StatsQuery) ([]domain.PeriodBucket, error)
	patternsFunc func(ctx context.Context, userID uuid.UUID, q domain.StatsQuery) (*domain.PatternSummary, error)
	insightsFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Insight, error)
	overviewFunc func(ctx context.Context, userID uuid.UUID, q domain.StatsQuery) (*domain.StatsOverview, error)
}

func (m *MockStatsService) Summary(ctx context.Context, userID uuid.UUID, q domain.StatsQuery) (*domain.SummaryMetrics, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, userID, q)
	}
	s := domain.EmptySummary()
	return &s, nil
}

func (m *MockStatsService) Trends(ctx context.Context, userID uuid.UUID, q domain.StatsQuery) (*domain.TrendSeries, error) {
	if m.trendsFunc != nil {
		return m.trendsFunc(ctx, userID, q)
	}
	return &domain.TrendSeries{Duration: []domain.TrendPoint{}, Quality: []domain.TrendPoint{}}, nil
}

func (m *MockStatsService) PeriodStats(ctx context.Context, userID uuid.UUID, granularity string, q domain.StatsQuery) ([]domain.PeriodBucket, error) {
	if m.periodFunc != nil {
		return m.periodFunc(ctx, userID, granularity, q)
	}
	return []domain.PeriodBucket{}, nil
}

func (m *MockStatsService) Patterns(ctx context.Context, userID uuid.UUID, q domain.StatsQuery) (*domain.PatternSummary, error) {
	if m.patternsFunc != nil {
		return m.patternsFunc(ctx, userID, q)
	}
	return &domain.PatternSummary{ConsistencyScore: 100}, nil
}

func (m *MockStatsService) Insights(ctx context.Context, userID uuid.UUID) ([]domain.Insight, error) {
	if m.insightsFunc != nil {
		return m.insightsFunc(ctx, userID)
	}
	return []domain.Insight{}, nil
}

func (m *MockStatsService) Overview(ctx context.Context, userID uuid.UUID, q domain.StatsQuery) (*domain.StatsOverview, error) {
	if m.overviewFunc != nil {
		return m.overviewFunc(ctx, userID, q)
	}
	return &domain.StatsOverview{Summary: domain.EmptySummary()}, nil
}

func (m *MockStatsService) Analysis(ctx context.Context, userID uuid.UUID) (*domain.StatsOverview, []domain.Insight, error) {
	overview, err := m.Overview(ctx, userID, domain.StatsQuery{})
	if err != nil {
		return nil, nil, err
	}
	insights, err := m.Insights(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return overview, insights, nil
}

// MockNarrativeService is a mock implementation of NarrativeService
type MockNarrativeService struct {
	analyzeFunc  func(ctx context.Context, userID uuid.UUID) (*domain.NarrativeAnalysis, error)
	refreshFunc  func(ctx context.Context, userID uuid.UUID) (*domain.NarrativeAnalysis, error)
	feedbackFunc func(ctx context.Context, userID uuid.UUID, req *domain.NarrativeFeedbackRequest) error
	invalidated  []uuid.UUID
}

func (m *MockNarrativeService) Analyze(ctx context.Context, userID uuid.UUID) (*domain.NarrativeAnalysis, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, userID)
	}
	return &domain.NarrativeAnalysis{UserID: userID, Source: domain.NarrativeSourceFallback}, nil
}

func (m *MockNarrativeService) Refresh(ctx context.Context, userID uuid.UUID) (*domain.NarrativeAnalysis, error) {
	if m.refreshFunc != nil {
		return m.refreshFunc(ctx, userID)
	}
	return &domain.NarrativeAnalysis{UserID: userID, Source: domain.NarrativeSourceLLM}, nil
}

func (m *MockNarrativeService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.NarrativeFeedbackRequest) error {
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, userID, req)
	}
	return nil
}

func (m *MockNarrativeService) Invalidate(userID uuid.UUID) {
	m.invalidated = append(m.invalidated, userID)
}

// Helper functions
func sampleSession(userID, sessionID uuid.UUID) *domain.SleepSession {
	return &domain.SleepSession{
		ID:              sessionID,
		UserID:          userID,
		SleepTime:       time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC),
		WakeTime:        time.Date(2024, 1, 16, 7, 0, 0, 0, time.UTC),
		DurationMinutes: 480,
		LocalTimezone:   "UTC",
		CreatedAt:       time.Now(),
	}
}

// withURLParams attaches chi route params so handlers can be called directly.
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
