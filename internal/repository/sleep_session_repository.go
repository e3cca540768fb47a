package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/sleep-stats/internal/domain"
	"github.com/blaisecz/sleep-stats/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SleepSessionRepository interface {
	Create(ctx context.Context, session *domain.SleepSession) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.SleepSession, error)
	Update(ctx context.Context, session *domain.SleepSession) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) ([]domain.SleepSession, error)
	ListByRange(ctx context.Context, userID uuid.UUID, r domain.DateRange) ([]domain.SleepSession, error)
	HasOverlap(ctx context.Context, userID uuid.UUID, sleepTime, wakeTime time.Time) (bool, error)
	HasOverlapExcluding(ctx context.Context, userID uuid.UUID, sleepTime, wakeTime time.Time, excludeID uuid.UUID) (bool, error)
}

type sleepSessionRepository struct {
	db *gorm.DB
}

func NewSleepSessionRepository(db *gorm.DB) SleepSessionRepository {
	return &sleepSessionRepository{db: db}
}

func (r *sleepSessionRepository) Create(ctx context.Context, session *domain.SleepSession) error {
	return domain.Unavailable(r.db.WithContext(ctx).Create(session).Error)
}

func (r *sleepSessionRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.SleepSession, error) {
	var session domain.SleepSession
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.Unavailable(err)
	}
	return &session, nil
}

func (r *sleepSessionRepository) Update(ctx context.Context, session *domain.SleepSession) error {
	return domain.Unavailable(r.db.WithContext(ctx).Save(session).Error)
}

func (r *sleepSessionRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&domain.SleepSession{})
	if res.Error != nil {
		return domain.Unavailable(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *sleepSessionRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) ([]domain.SleepSession, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sleep_time DESC").
		Order("id DESC")

	if filter.From != nil {
		query = query.Where("sleep_time >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("sleep_time <= ?", filter.To)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: get records with sleep_time < cursor.SleepTime
			// or same sleep_time but id < cursor.ID
			query = query.Where(
				"(sleep_time < ?) OR (sleep_time = ? AND id < ?)",
				cursor.SleepTime, cursor.SleepTime, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var sessions []domain.SleepSession
	if err := query.Find(&sessions).Error; err != nil {
		return nil, domain.Unavailable(err)
	}

	return sessions, nil
}

// ListByRange returns the user's sessions with sleep_time >= From and
// wake_time < To, oldest first. The result is never nil.
func (r *sleepSessionRepository) ListByRange(ctx context.Context, userID uuid.UUID, dr domain.DateRange) ([]domain.SleepSession, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sleep_time ASC")

	if dr.From != nil {
		query = query.Where("sleep_time >= ?", *dr.From)
	}
	if dr.To != nil {
		query = query.Where("wake_time < ?", *dr.To)
	}

	sessions := make([]domain.SleepSession, 0)
	if err := query.Find(&sessions).Error; err != nil {
		return nil, domain.Unavailable(err)
	}

	return sessions, nil
}

// HasOverlap checks if any of the user's sessions intersects [sleepTime, wakeTime).
func (r *sleepSessionRepository) HasOverlap(ctx context.Context, userID uuid.UUID, sleepTime, wakeTime time.Time) (bool, error) {
	return r.countOverlaps(r.overlapQuery(ctx, userID, sleepTime, wakeTime))
}

// HasOverlapExcluding is HasOverlap ignoring the session being updated.
func (r *sleepSessionRepository) HasOverlapExcluding(ctx context.Context, userID uuid.UUID, sleepTime, wakeTime time.Time, excludeID uuid.UUID) (bool, error) {
	query := r.overlapQuery(ctx, userID, sleepTime, wakeTime).Where("id <> ?", excludeID)
	return r.countOverlaps(query)
}

func (r *sleepSessionRepository) overlapQuery(ctx context.Context, userID uuid.UUID, sleepTime, wakeTime time.Time) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&domain.SleepSession{}).
		Where("user_id = ?", userID).
		Where("sleep_time < ?", wakeTime).
		Where("wake_time > ?", sleepTime)
}

func (r *sleepSessionRepository) countOverlaps(query *gorm.DB) (bool, error) {
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, domain.Unavailable(err)
	}
	return count > 0, nil
}
