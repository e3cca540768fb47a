package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/blaisecz/sleep-stats/internal/cache"
	"github.com/blaisecz/sleep-stats/internal/domain"
	"github.com/blaisecz/sleep-stats/internal/langfuse"
	"github.com/blaisecz/sleep-stats/internal/llm"
	"github.com/blaisecz/sleep-stats/internal/logging"
	"github.com/blaisecz/sleep-stats/internal/repository"
	"github.com/blaisecz/sleep-stats/internal/stats"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const narrativeTraceName = "sleep-narrative"

// NarrativeService writes a natural-language analysis of the last 30 days.
// LLM results are cached per user; fallback results never are.
type NarrativeService interface {
	Analyze(ctx context.Context, userID uuid.UUID) (*domain.NarrativeAnalysis, error)
	// Refresh drops the cached analysis and generates a new one.
	Refresh(ctx context.Context, userID uuid.UUID) (*domain.NarrativeAnalysis, error)
	Feedback(ctx context.Context, userID uuid.UUID, req *domain.NarrativeFeedbackRequest) error
	Invalidate(userID uuid.UUID)
}

type narrativeService struct {
	stats    StatsService
	userRepo repository.UserRepository
	llm      llm.NarrativeLLM
	langfuse langfuse.Client
	cache    *cache.TTL[domain.NarrativeAnalysis]
	log      *zap.Logger
	now      func() time.Time
}

// NewNarrativeService creates a NarrativeService. llmClient may be nil, in
// which case every analysis is the fallback.
func NewNarrativeService(
	statsService StatsService,
	userRepo repository.UserRepository,
	llmClient llm.NarrativeLLM,
	langfuseClient langfuse.Client,
	analysisCache *cache.TTL[domain.NarrativeAnalysis],
	log *zap.Logger,
) NarrativeService {
	return &narrativeService{
		stats:    statsService,
		userRepo: userRepo,
		llm:      llmClient,
		langfuse: langfuseClient,
		cache:    analysisCache,
		log:      logging.OrNop(log).Named("narrative"),
		now:      time.Now,
	}
}

func (s *narrativeService) Analyze(ctx context.Context, userID uuid.UUID) (*domain.NarrativeAnalysis, error) {
	if cached, ok := s.cache.Get(cacheKey(userID)); ok {
		return &cached, nil
	}
	return s.generate(ctx, userID)
}

func (s *narrativeService) Refresh(ctx context.Context, userID uuid.UUID) (*domain.NarrativeAnalysis, error) {
	s.Invalidate(userID)
	return s.generate(ctx, userID)
}

func (s *narrativeService) Invalidate(userID uuid.UUID) {
	s.cache.Delete(cacheKey(userID))
}

func (s *narrativeService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.NarrativeFeedbackRequest) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	if !s.langfuse.IsEnabled() {
		s.log.Info("feedback accepted without langfuse",
			zap.String("user_id", userID.String()),
			zap.String("trace_id", req.TraceID),
			zap.Int("score", req.Score),
		)
		return nil
	}

	return s.langfuse.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	})
}

func (s *narrativeService) generate(ctx context.Context, userID uuid.UUID) (*domain.NarrativeAnalysis, error) {
	tracer := otel.Tracer("sleep-stats-api/narrative")
	ctx, span := tracer.Start(ctx, "NarrativeService.Generate",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	overview, insights, err := s.stats.Analysis(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	narrativeCtx := &domain.NarrativeContext{
		WindowDays: stats.InsightWindowDays,
		Overview:   *overview,
		Insights:   insights,
	}
	if inputJSON, err := json.Marshal(narrativeCtx); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	if overview.Summary.TotalSessions == 0 {
		span.SetAttributes(attribute.String("narrative.source", string(domain.NarrativeSourceFallback)))
		return s.fallback(userID, overview), nil
	}

	output, err := s.callLLM(ctx, narrativeCtx)
	if err != nil {
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			s.log.Debug("llm not configured, using fallback", zap.String("user_id", userID.String()))
		} else {
			s.log.Warn("llm narrative failed, using fallback", zap.String("user_id", userID.String()), zap.Error(err))
			span.RecordError(err)
		}
		span.SetAttributes(attribute.String("narrative.source", string(domain.NarrativeSourceFallback)))
		return s.fallback(userID, overview), nil
	}

	analysis := s.newAnalysis(userID, domain.NarrativeSourceLLM, overview, output)
	if outputJSON, err := json.Marshal(output); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}
	span.SetAttributes(attribute.String("narrative.source", string(domain.NarrativeSourceLLM)))

	analysis.TraceID = s.recordTrace(ctx, span, userID, narrativeCtx, output)
	s.cache.Set(cacheKey(userID), *analysis)

	return analysis, nil
}

func (s *narrativeService) callLLM(ctx context.Context, narrativeCtx *domain.NarrativeContext) (*domain.LLMNarrativeOutput, error) {
	if s.llm == nil {
		return nil, llm.ErrOpenAIUnavailable
	}
	return s.llm.GenerateNarrative(ctx, narrativeCtx)
}

// recordTrace sends the narrative to Langfuse under the current OTEL trace ID
// when there is one, so feedback scores land on the same trace.
func (s *narrativeService) recordTrace(ctx context.Context, span trace.Span, userID uuid.UUID, in *domain.NarrativeContext, out *domain.LLMNarrativeOutput) string {
	if !s.langfuse.IsEnabled() {
		return ""
	}

	var traceID string
	if sc := span.SpanContext(); sc.IsValid() {
		traceID = sc.TraceID().String()
	}

	id, err := s.langfuse.CreateTrace(ctx, langfuse.TraceInput{
		ID:     traceID,
		UserID: userID.String(),
		Name:   narrativeTraceName,
		Input:  in,
		Output: out,
		Tags:   []string{"sleep-stats", "narrative"},
	})
	if err != nil {
		s.log.Warn("langfuse trace failed", zap.String("user_id", userID.String()), zap.Error(err))
		return ""
	}
	return id
}

func (s *narrativeService) newAnalysis(userID uuid.UUID, source domain.NarrativeSource, overview *domain.StatsOverview, out *domain.LLMNarrativeOutput) *domain.NarrativeAnalysis {
	return &domain.NarrativeAnalysis{
		AnalysisID:  uuid.New(),
		UserID:      userID,
		GeneratedAt: s.now().UTC(),
		Source:      source,
		Pattern: domain.NarrativePattern{
			Summary:                out.Summary,
			AverageDurationMinutes: overview.Summary.AverageDurationMinutes,
			AverageQuality:         overview.Summary.AverageQuality,
			ConsistencyScore:       overview.Patterns.ConsistencyScore,
		},
		Observations:    out.Observations,
		Recommendations: out.Recommendations,
	}
}

func (s *narrativeService) fallback(userID uuid.UUID, overview *domain.StatsOverview) *domain.NarrativeAnalysis {
	return s.newAnalysis(userID, domain.NarrativeSourceFallback, overview, &domain.LLMNarrativeOutput{
		Summary: "A written analysis is not available right now. Your statistics below are up to date.",
		Observations: []domain.NarrativeObservation{
			{
				Kind:        domain.ObservationImprovement,
				Title:       "Keep logging",
				Description: "Recording more nights makes the analysis more accurate.",
			},
		},
		Recommendations: []domain.NarrativeRecommendation{
			{
				Title:       "Keep a regular schedule",
				Description: "Going to bed and waking up at the same time every day improves sleep quality.",
				Priority:    domain.PriorityMedium,
			},
		},
	})
}

func cacheKey(userID uuid.UUID) string {
	return "user-" + userID.String()
}
