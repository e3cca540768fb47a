package service

import (
	"context"

	"github.com/blaisecz/sleep-stats/internal/domain"
	"github.com/blaisecz/sleep-stats/internal/repository"
	"github.com/blaisecz/sleep-stats/pkg/pagination"
	"github.com/google/uuid"
)

type SleepSessionService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepSessionRequest) (*domain.SleepSession, error)
	Get(ctx context.Context, userID, sessionID uuid.UUID) (*domain.SleepSession, error)
	Update(ctx context.Context, userID, sessionID uuid.UUID, req *domain.UpdateSleepSessionRequest) (*domain.SleepSession, error)
	Delete(ctx context.Context, userID, sessionID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) (*domain.SleepSessionListResponse, error)
}

// Invalidator drops derived data cached for a user after their sessions change.
type Invalidator interface {
	Invalidate(userID uuid.UUID)
}

type sleepSessionService struct {
	repo        repository.SleepSessionRepository
	userRepo    repository.UserRepository
	invalidator Invalidator
}

// NewSleepSessionService creates a SleepSessionService. invalidator may be nil.
func NewSleepSessionService(repo repository.SleepSessionRepository, userRepo repository.UserRepository, invalidator Invalidator) SleepSessionService {
	return &sleepSessionService{
		repo:        repo,
		userRepo:    userRepo,
		invalidator: invalidator,
	}
}

func (s *sleepSessionService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepSessionRequest) (*domain.SleepSession, error) {
	// Load user to confirm existence and get their home timezone
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	localTZ := user.Timezone
	if req.LocalTimezone != nil && *req.LocalTimezone != "" {
		localTZ = *req.LocalTimezone
	}
	if localTZ == "" {
		localTZ = "UTC"
	}

	session := &domain.SleepSession{
		UserID:        userID,
		SleepTime:     req.SleepTime.UTC(),
		WakeTime:      req.WakeTime.UTC(),
		Quality:       req.Quality,
		Notes:         req.Notes,
		LocalTimezone: localTZ,
	}
	if !session.WakeTime.After(session.SleepTime) {
		return nil, domain.ErrInvalidInput
	}
	session.DurationMinutes = session.ElapsedMinutes()

	hasOverlap, err := s.repo.HasOverlap(ctx, userID, session.SleepTime, session.WakeTime)
	if err != nil {
		return nil, err
	}
	if hasOverlap {
		return nil, domain.ErrOverlappingSleep
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, err
	}

	s.invalidate(userID)
	return session, nil
}

func (s *sleepSessionService) Get(ctx context.Context, userID, sessionID uuid.UUID) (*domain.SleepSession, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, userID, sessionID)
}

func (s *sleepSessionService) Update(ctx context.Context, userID, sessionID uuid.UUID, req *domain.UpdateSleepSessionRequest) (*domain.SleepSession, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	session, err := s.repo.GetByID(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	// Apply updates
	if req.SleepTime != nil {
		session.SleepTime = req.SleepTime.UTC()
	}
	if req.WakeTime != nil {
		session.WakeTime = req.WakeTime.UTC()
	}
	if req.Quality != nil {
		session.Quality = req.Quality
	}
	if req.Notes != nil {
		session.Notes = req.Notes
	}
	if req.LocalTimezone != nil && *req.LocalTimezone != "" {
		session.LocalTimezone = *req.LocalTimezone
	}

	// Validate wake > sleep after applying updates
	if !session.WakeTime.After(session.SleepTime) {
		return nil, domain.ErrInvalidInput
	}
	session.DurationMinutes = session.ElapsedMinutes()

	hasOverlap, err := s.repo.HasOverlapExcluding(ctx, userID, session.SleepTime, session.WakeTime, sessionID)
	if err != nil {
		return nil, err
	}
	if hasOverlap {
		return nil, domain.ErrOverlappingSleep
	}

	if err := s.repo.Update(ctx, session); err != nil {
		return nil, err
	}

	s.invalidate(userID)
	return session, nil
}

func (s *sleepSessionService) Delete(ctx context.Context, userID, sessionID uuid.UUID) error {
	if err := s.ensureUser(ctx, userID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userID, sessionID); err != nil {
		return err
	}
	s.invalidate(userID)
	return nil
}

func (s *sleepSessionService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) (*domain.SleepSessionListResponse, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	sessions, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(sessions) > limit

	// Trim to actual limit
	if hasMore {
		sessions = sessions[:limit]
	}

	response := &domain.SleepSessionListResponse{
		Data: make([]domain.SleepSessionResponse, len(sessions)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i := range sessions {
		response.Data[i] = sessions[i].ToResponse()
	}

	if hasMore && len(sessions) > 0 {
		last := sessions[len(sessions)-1]
		cursor := &pagination.Cursor{
			ID:        last.ID,
			SleepTime: last.SleepTime,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *sleepSessionService) ensureUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}

func (s *sleepSessionService) invalidate(userID uuid.UUID) {
	if s.invalidator != nil {
		s.invalidator.Invalidate(userID)
	}
}

