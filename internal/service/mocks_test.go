package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/blaisecz/sleep-stats/internal/domain"
	"github.com/blaisecz/sleep-stats/internal/langfuse"
	"github.com/google/uuid"
)

// MockSleepSessionRepository is a mock implementation of SleepSessionRepository
type MockSleepSessionRepository struct {
	sessions   map[uuid.UUID]*domain.SleepSession
	listResult []domain.SleepSession
	ranges     []domain.DateRange
	err        error
}

func NewMockSleepSessionRepository() *MockSleepSessionRepository {
	return &MockSleepSessionRepository{
		sessions: make(map[uuid.UUID]*domain.SleepSession),
	}
}

func (m *MockSleepSessionRepository) add(s domain.SleepSession) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	m.sessions[s.ID] = &s
}

func (m *MockSleepSessionRepository) Create(ctx context.Context, s *domain.SleepSession) error {
	if m.err != nil {
		return m.err
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = time.Now()
	m.sessions[s.ID] = s
	return nil
}

func (m *MockSleepSessionRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.SleepSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.sessions[id]
	if !ok || s.UserID != userID {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *MockSleepSessionRepository) Update(ctx context.Context, s *domain.SleepSession) error {
	if m.err != nil {
		return m.err
	}
	cp := *s
	m.sessions[s.ID] = &cp
	return nil
}

func (m *MockSleepSessionRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	s, ok := m.sessions[id]
	if !ok || s.UserID != userID {
		return domain.ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *MockSleepSessionRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) ([]domain.SleepSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.SleepSession, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.SleepSession
	for _, s := range m.sessions {
		if s.UserID == userID {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SleepTime.After(result[j].SleepTime) })
	return result, nil
}

func (m *MockSleepSessionRepository) ListByRange(ctx context.Context, userID uuid.UUID, r domain.DateRange) ([]domain.SleepSession, error) {
	m.ranges = append(m.ranges, r)
	if m.err != nil {
		return nil, m.err
	}
	result := []domain.SleepSession{}
	for _, s := range m.sessions {
		if s.UserID != userID {
			continue
		}
		if r.From != nil && s.SleepTime.Before(*r.From) {
			continue
		}
		if r.To != nil && !s.WakeTime.Before(*r.To) {
			continue
		}
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SleepTime.Before(result[j].SleepTime) })
	return result, nil
}

func (m *MockSleepSessionRepository) HasOverlap(ctx context.Context, userID uuid.UUID, sleepTime, wakeTime time.Time) (bool, error) {
	return m.HasOverlapExcluding(ctx, userID, sleepTime, wakeTime, uuid.Nil)
}

func (m *MockSleepSessionRepository) HasOverlapExcluding(ctx context.Context, userID uuid.UUID, sleepTime, wakeTime time.Time, excludeID uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, s := range m.sessions {
		if s.UserID != userID || s.ID == excludeID {
			continue
		}
		// New period overlaps if sleep < existing.wake AND wake > existing.sleep
		if sleepTime.Before(s.WakeTime) && wakeTime.After(s.SleepTime) {
			return true, nil
		}
	}
	return false, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// MockNarrativeLLM is a mock implementation of llm.NarrativeLLM
type MockNarrativeLLM struct {
	output *domain.LLMNarrativeOutput
	err    error
	calls  int
	last   *domain.NarrativeContext
}

func (m *MockNarrativeLLM) GenerateNarrative(ctx context.Context, narrativeCtx *domain.NarrativeContext) (*domain.LLMNarrativeOutput, error) {
	m.calls++
	m.last = narrativeCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

// MockLangfuseClient records traces and scores.
type MockLangfuseClient struct {
	mu      sync.Mutex
	enabled bool
	traces  []langfuse.TraceInput
	scores  []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool { return m.enabled }

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.traces = append(m.traces, in)
	if in.ID != "" {
		return in.ID, nil
	}
	return "trace-generated", nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores = append(m.scores, in)
	return nil
}

func (m *MockLangfuseClient) Flush(ctx context.Context) error { return nil }

// mockInvalidator counts invalidations per user.
type mockInvalidator struct {
	calls map[uuid.UUID]int
}

func newMockInvalidator() *mockInvalidator {
	return &mockInvalidator{calls: make(map[uuid.UUID]int)}
}

func (m *mockInvalidator) Invalidate(userID uuid.UUID) {
	m.calls[userID]++
}

// mockInsightRecorder captures emitted insights.
type mockInsightRecorder struct {
	emitted []domain.Insight
}

func (m *mockInsightRecorder) InsightsEmitted(insights []domain.Insight) {
	m.emitted = append(m.emitted, insights...)
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// nightSession builds a session that starts at hh:mm UTC on the given date.
func nightSession(userID uuid.UUID, date time.Time, hh, mm, minutes int, quality *int) domain.SleepSession {
	start := time.Date(date.Year(), date.Month(), date.Day(), hh, mm, 0, 0, time.UTC)
	return domain.SleepSession{
		ID:              uuid.New(),
		UserID:          userID,
		SleepTime:       start,
		WakeTime:        start.Add(time.Duration(minutes) * time.Minute),
		DurationMinutes: minutes,
		Quality:         quality,
		LocalTimezone:   "UTC",
	}
}
