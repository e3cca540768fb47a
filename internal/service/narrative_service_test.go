package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/sleep-stats/internal/cache"
	"github.com/blaisecz/sleep-stats/internal/domain"
	"github.com/blaisecz/sleep-stats/internal/llm"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type narrativeFixture struct {
	svc      *narrativeService
	repo     *MockSleepSessionRepository
	userRepo *MockUserRepository
	llm      *MockNarrativeLLM
	langfuse *MockLangfuseClient
	cache    *cache.TTL[domain.NarrativeAnalysis]
	logs     *observer.ObservedLogs
	clock    time.Time
	userID   uuid.UUID
}

func newNarrativeFixture(t *testing.T) *narrativeFixture {
	t.Helper()
	f := &narrativeFixture{
		repo:     NewMockSleepSessionRepository(),
		userRepo: NewMockUserRepository(),
		llm: &MockNarrativeLLM{output: &domain.LLMNarrativeOutput{
			Summary: "You sleep well on most nights.",
			Observations: []domain.NarrativeObservation{
				{Kind: domain.ObservationStrength, Title: "Regular", Description: "Steady bedtime."},
			},
			Recommendations: []domain.NarrativeRecommendation{
				{Title: "Keep going", Description: "Stay on schedule.", Priority: domain.PriorityLow},
			},
		}},
		langfuse: &MockLangfuseClient{enabled: true},
		clock:    statsNow,
		userID:   uuid.New(),
	}
	f.userRepo.users[f.userID] = &domain.User{ID: f.userID, Timezone: "UTC"}
	f.cache = cache.NewTTL[domain.NarrativeAnalysis](time.Hour, func() time.Time { return f.clock }, nil)

	stats := NewStatsService(f.repo, f.userRepo, nil).(*statsService)
	stats.now = func() time.Time { return f.clock }

	core, logs := observer.New(zap.DebugLevel)
	f.logs = logs
	f.svc = NewNarrativeService(stats, f.userRepo, f.llm, f.langfuse, f.cache, zap.New(core)).(*narrativeService)
	f.svc.now = func() time.Time { return f.clock }
	return f
}

func (f *narrativeFixture) seedNights(n int) {
	for d := 1; d <= n; d++ {
		f.repo.add(nightSession(f.userID, f.clock.AddDate(0, 0, -d), 23, 0, 450, intPtr(7)))
	}
}

func TestNarrativeService_Analyze_LLM(t *testing.T) {
	f := newNarrativeFixture(t)
	f.seedNights(10)

	analysis, err := f.svc.Analyze(context.Background(), f.userID)
	require.NoError(t, err)

	assert.Equal(t, domain.NarrativeSourceLLM, analysis.Source)
	assert.Equal(t, "You sleep well on most nights.", analysis.Pattern.Summary)
	assert.Equal(t, 450, analysis.Pattern.AverageDurationMinutes)
	assert.Equal(t, 7.0, analysis.Pattern.AverageQuality)
	assert.Equal(t, f.userID, analysis.UserID)
	assert.Equal(t, statsNow, analysis.GeneratedAt)
	assert.Len(t, analysis.Observations, 1)

	require.NotNil(t, f.llm.last)
	assert.Equal(t, 30, f.llm.last.WindowDays)
	assert.Equal(t, 10, f.llm.last.Overview.Summary.TotalSessions)

	require.Len(t, f.langfuse.traces, 1)
	assert.Equal(t, "sleep-narrative", f.langfuse.traces[0].Name)
	assert.Equal(t, f.userID.String(), f.langfuse.traces[0].UserID)
	assert.Equal(t, "trace-generated", analysis.TraceID)
}

func TestNarrativeService_Analyze_Cached(t *testing.T) {
	f := newNarrativeFixture(t)
	f.seedNights(5)

	first, err := f.svc.Analyze(context.Background(), f.userID)
	require.NoError(t, err)
	second, err := f.svc.Analyze(context.Background(), f.userID)
	require.NoError(t, err)

	assert.Equal(t, 1, f.llm.calls)
	assert.Equal(t, first.AnalysisID, second.AnalysisID)

	// Entries expire after the TTL
	f.clock = f.clock.Add(time.Hour)
	third, err := f.svc.Analyze(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, 2, f.llm.calls)
	assert.NotEqual(t, first.AnalysisID, third.AnalysisID)
}

func TestNarrativeService_Refresh(t *testing.T) {
	f := newNarrativeFixture(t)
	f.seedNights(5)

	first, err := f.svc.Analyze(context.Background(), f.userID)
	require.NoError(t, err)
	refreshed, err := f.svc.Refresh(context.Background(), f.userID)
	require.NoError(t, err)

	assert.Equal(t, 2, f.llm.calls)
	assert.NotEqual(t, first.AnalysisID, refreshed.AnalysisID)

	cached, err := f.svc.Analyze(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, refreshed.AnalysisID, cached.AnalysisID)
}

func TestNarrativeService_Invalidate(t *testing.T) {
	f := newNarrativeFixture(t)
	f.seedNights(5)

	_, err := f.svc.Analyze(context.Background(), f.userID)
	require.NoError(t, err)
	require.Equal(t, 1, f.cache.Len())

	f.svc.Invalidate(f.userID)
	assert.Equal(t, 0, f.cache.Len())

	_, err = f.svc.Analyze(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, 2, f.llm.calls)
}

func TestNarrativeService_Fallback(t *testing.T) {
	tests := []struct {
		name      string
		nights    int
		setup     func(f *narrativeFixture)
		wantCalls int
		wantWarn  bool
	}{
		{
			name:      "no sessions skips the llm",
			nights:    0,
			wantCalls: 0,
		},
		{
			name:   "llm not configured",
			nights: 5,
			setup: func(f *narrativeFixture) {
				f.llm.err = llm.ErrOpenAIUnavailable
			},
			wantCalls: 1,
		},
		{
			name:   "llm request fails",
			nights: 5,
			setup: func(f *narrativeFixture) {
				f.llm.err = errors.Join(llm.ErrOpenAIRequest, errors.New("status 500"))
			},
			wantCalls: 1,
			wantWarn:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newNarrativeFixture(t)
			f.seedNights(tt.nights)
			if tt.setup != nil {
				tt.setup(f)
			}

			analysis, err := f.svc.Analyze(context.Background(), f.userID)
			require.NoError(t, err)

			assert.Equal(t, domain.NarrativeSourceFallback, analysis.Source)
			assert.NotEmpty(t, analysis.Pattern.Summary)
			assert.NotEmpty(t, analysis.Recommendations)
			assert.Empty(t, analysis.TraceID)
			assert.Equal(t, tt.wantCalls, f.llm.calls)
			assert.Equal(t, 0, f.cache.Len(), "fallback results are not cached")
			assert.Empty(t, f.langfuse.traces)

			warnings := f.logs.FilterLevelExact(zap.WarnLevel).Len()
			if tt.wantWarn {
				assert.Equal(t, 1, warnings)
			} else {
				assert.Zero(t, warnings)
			}
		})
	}
}

func TestNarrativeService_NilLLM(t *testing.T) {
	f := newNarrativeFixture(t)
	f.seedNights(5)
	f.svc.llm = nil

	analysis, err := f.svc.Analyze(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, domain.NarrativeSourceFallback, analysis.Source)
}

func TestNarrativeService_Errors(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		f := newNarrativeFixture(t)
		_, err := f.svc.Analyze(context.Background(), uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("store unavailable", func(t *testing.T) {
		f := newNarrativeFixture(t)
		f.repo.err = domain.Unavailable(errors.New("connection refused"))
		_, err := f.svc.Analyze(context.Background(), f.userID)
		assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
		assert.Zero(t, f.llm.calls)
	})
}

func TestNarrativeService_LangfuseDisabled(t *testing.T) {
	f := newNarrativeFixture(t)
	f.seedNights(5)
	f.langfuse.enabled = false

	analysis, err := f.svc.Analyze(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, domain.NarrativeSourceLLM, analysis.Source)
	assert.Empty(t, analysis.TraceID)
	assert.Empty(t, f.langfuse.traces)
}

func TestNarrativeService_Feedback(t *testing.T) {
	req := &domain.NarrativeFeedbackRequest{TraceID: "abc123", Score: 4, Comment: "useful"}

	t.Run("records score", func(t *testing.T) {
		f := newNarrativeFixture(t)
		require.NoError(t, f.svc.Feedback(context.Background(), f.userID, req))

		require.Len(t, f.langfuse.scores, 1)
		score := f.langfuse.scores[0]
		assert.Equal(t, "abc123", score.TraceID)
		assert.Equal(t, "user_rating", score.Name)
		assert.Equal(t, 4.0, score.Value)
		assert.Equal(t, "useful", score.Comment)
	})

	t.Run("langfuse disabled", func(t *testing.T) {
		f := newNarrativeFixture(t)
		f.langfuse.enabled = false
		require.NoError(t, f.svc.Feedback(context.Background(), f.userID, req))
		assert.Empty(t, f.langfuse.scores)
		assert.Equal(t, 1, f.logs.FilterMessage("feedback accepted without langfuse").Len())
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newNarrativeFixture(t)
		err := f.svc.Feedback(context.Background(), uuid.New(), req)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Empty(t, f.langfuse.scores)
	})
}

func TestNarrativeService_DoesNotCountInsights(t *testing.T) {
	f := newNarrativeFixture(t)
	f.seedNights(10)
	recorder := &mockInsightRecorder{}
	f.svc.stats.(*statsService).recorder = recorder

	_, err := f.svc.Analyze(context.Background(), f.userID)
	require.NoError(t, err)
	_, err = f.svc.Refresh(context.Background(), f.userID)
	require.NoError(t, err)

	assert.Equal(t, 2, f.llm.calls)
	assert.NotNil(t, f.llm.last.Insights)
	assert.Empty(t, recorder.emitted, "narrative generation should not count emitted insights")
}
