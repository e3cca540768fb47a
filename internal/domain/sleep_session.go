package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the ISO calendar date format used at the stats boundary.
const DateLayout = "2006-01-02"

// SleepSession is one recorded sleep interval.
// DurationMinutes is a denormalized copy kept for listing; statistics always
// use ElapsedMinutes, which is recomputed from the timestamps.
type SleepSession struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_sleep_sessions_user_sleep" json:"user_id"`
	SleepTime       time.Time `gorm:"not null;index:idx_sleep_sessions_user_sleep,sort:desc" json:"sleep_time"`
	WakeTime        time.Time `gorm:"not null" json:"wake_time"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	Quality         *int      `gorm:"type:smallint" json:"quality,omitempty"`
	Notes           *string   `gorm:"type:text" json:"notes,omitempty"`
	LocalTimezone   string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"local_timezone"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepSession) TableName() string {
	return "sleep_sessions"
}

// ElapsedMinutes returns wake time minus sleep time, rounded to whole minutes.
func (s *SleepSession) ElapsedMinutes() int {
	return int(math.Round(s.WakeTime.Sub(s.SleepTime).Minutes()))
}

// Location resolves the session's IANA timezone, falling back to UTC.
func (s *SleepSession) Location() *time.Location {
	if s.LocalTimezone != "" {
		if l, err := time.LoadLocation(s.LocalTimezone); err == nil {
			return l
		}
	}
	return time.UTC
}

func (s *SleepSession) LocalSleepTime() time.Time {
	return s.SleepTime.In(s.Location())
}

func (s *SleepSession) LocalWakeTime() time.Time {
	return s.WakeTime.In(s.Location())
}

// LocalDate is the calendar date the session started on, in YYYY-MM-DD form.
func (s *SleepSession) LocalDate() string {
	return s.LocalSleepTime().Format(DateLayout)
}

// HasQuality reports whether a quality rating was recorded.
func (s *SleepSession) HasQuality() bool {
	return s.Quality != nil
}

// CreateSleepSessionRequest is the request body for recording a sleep session.
// @Description Request payload for recording a sleep session.
type CreateSleepSessionRequest struct {
	// Time the user fell asleep (RFC3339)
	SleepTime time.Time `json:"sleep_time" validate:"required" example:"2024-01-15T23:00:00Z"`
	// Time the user woke up (RFC3339, must be after sleep_time)
	WakeTime time.Time `json:"wake_time" validate:"required,gtfield=SleepTime" example:"2024-01-16T07:00:00Z"`
	// Optional quality rating from 1 (poor) to 10 (excellent)
	Quality *int `json:"quality,omitempty" validate:"omitempty,min=1,max=10" example:"7" minimum:"1" maximum:"10"`
	// Optional free-form notes
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=1000" example:"Woke up once around 3 AM"`
	// Optional IANA timezone the session was recorded in (defaults to the user's timezone)
	LocalTimezone *string `json:"local_timezone,omitempty" validate:"omitempty,timezone" example:"Europe/Prague"`
}

// UpdateSleepSessionRequest is the request body for partially updating a sleep session.
// @Description Partial update of a sleep session. Omitted fields are left unchanged.
type UpdateSleepSessionRequest struct {
	SleepTime     *time.Time `json:"sleep_time,omitempty" example:"2024-01-15T23:30:00Z"`
	WakeTime      *time.Time `json:"wake_time,omitempty" example:"2024-01-16T07:30:00Z"`
	Quality       *int       `json:"quality,omitempty" validate:"omitempty,min=1,max=10" example:"8"`
	Notes         *string    `json:"notes,omitempty" validate:"omitempty,max=1000"`
	LocalTimezone *string    `json:"local_timezone,omitempty" validate:"omitempty,timezone" example:"Europe/Prague"`
}

// SleepSessionResponse is the response body for sleep session endpoints.
// @Description Sleep session record with UTC and local times.
type SleepSessionResponse struct {
	ID              uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID          uuid.UUID `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	SleepTime       time.Time `json:"sleep_time" example:"2024-01-15T23:00:00Z"`
	WakeTime        time.Time `json:"wake_time" example:"2024-01-16T07:00:00Z"`
	DurationMinutes int       `json:"duration_minutes" example:"480"`
	Quality         *int      `json:"quality,omitempty" example:"7"`
	Notes           *string   `json:"notes,omitempty"`
	LocalTimezone   string    `json:"local_timezone" example:"Europe/Prague"`
	LocalSleepTime  time.Time `json:"local_sleep_time" example:"2024-01-16T00:00:00+01:00"`
	LocalWakeTime   time.Time `json:"local_wake_time" example:"2024-01-16T08:00:00+01:00"`
	CreatedAt       time.Time `json:"created_at" example:"2024-01-16T07:05:00Z"`
	UpdatedAt       time.Time `json:"updated_at" example:"2024-01-16T07:05:00Z"`
}

func (s *SleepSession) ToResponse() SleepSessionResponse {
	return SleepSessionResponse{
		ID:              s.ID,
		UserID:          s.UserID,
		SleepTime:       s.SleepTime,
		WakeTime:        s.WakeTime,
		DurationMinutes: s.DurationMinutes,
		Quality:         s.Quality,
		Notes:           s.Notes,
		LocalTimezone:   s.LocalTimezone,
		LocalSleepTime:  s.LocalSleepTime(),
		LocalWakeTime:   s.LocalWakeTime(),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// SleepSessionListResponse is the response body for listing sleep sessions.
// @Description Paginated list of sleep sessions.
type SleepSessionListResponse struct {
	Data       []SleepSessionResponse `json:"data"`
	Pagination PaginationResponse     `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// SleepSessionFilter contains filter parameters for listing sleep sessions
type SleepSessionFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}

// DateRange bounds a repository fetch. From is inclusive on sleep_time and
// To is exclusive on wake_time; a nil bound is open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}
