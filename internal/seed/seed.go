package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/blaisecz/sleep-stats/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeededDays covers both insight windows.
const SeededDays = 60

var sampleNotes = []string{
	"Late dinner",
	"Woke up once around 3 AM",
	"Coffee after 4 PM",
	"Worked out in the evening",
	"Noisy neighbours",
}

// Users are the fixed sample accounts created by Run.
var Users = []domain.User{
	{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "Sample Sleeper", Timezone: "Europe/Prague"},
	{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Name: "Night Owl", Timezone: "America/New_York"},
	{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Name: "Shift Worker", Timezone: "Asia/Seoul"},
}

// Run creates the sample users and their sessions. Users that already have
// sessions are left alone, so it is safe to call on every start.
func Run(ctx context.Context, db *gorm.DB, log *zap.Logger, now time.Time) error {
	for i := range Users {
		user := Users[i]
		if err := db.WithContext(ctx).Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}

		var existing int64
		if err := db.WithContext(ctx).Model(&domain.SleepSession{}).Where("user_id = ?", user.ID).Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to count sessions for %s: %w", user.ID, err)
		}
		if existing > 0 {
			log.Debug("user already seeded", zap.String("user_id", user.ID.String()), zap.Int64("sessions", existing))
			continue
		}

		rng := rand.New(rand.NewSource(int64(i + 1)))
		sessions := GenerateSessions(user, now, SeededDays, rng)
		if err := db.WithContext(ctx).CreateInBatches(sessions, 100).Error; err != nil {
			return fmt.Errorf("failed to create sessions for %s: %w", user.ID, err)
		}
		log.Info("seeded user", zap.String("user_id", user.ID.String()), zap.Int("sessions", len(sessions)))
	}

	log.Info("seed completed")
	return nil
}

// GenerateSessions builds one night per day for the given number of days
// before now, in the user's timezone. Nights in the most recent 30 days are
// shorter than the older ones and weekend nights run longer, so seeded users
// produce trend and weekend insights. Some nights are unrated and some carry
// notes.
func GenerateSessions(user domain.User, now time.Time, days int, rng *rand.Rand) []domain.SleepSession {
	loc, err := time.LoadLocation(user.Timezone)
	if err != nil {
		loc = time.UTC
	}
	today := now.In(loc)

	sessions := make([]domain.SleepSession, 0, days)
	for i := days; i >= 1; i-- {
		date := today.AddDate(0, 0, -i)
		bedtime := time.Date(date.Year(), date.Month(), date.Day(), 22, 0, 0, 0, loc).
			Add(time.Duration(rng.Intn(120)) * time.Minute)

		minutes := 420 + rng.Intn(60)
		if i <= 30 {
			minutes -= 45
		}
		if wd := bedtime.Weekday(); wd == time.Friday || wd == time.Saturday {
			minutes += 75
		}

		s := domain.SleepSession{
			ID:            uuid.New(),
			UserID:        user.ID,
			SleepTime:     bedtime.UTC(),
			WakeTime:      bedtime.Add(time.Duration(minutes) * time.Minute).UTC(),
			LocalTimezone: user.Timezone,
		}
		s.DurationMinutes = s.ElapsedMinutes()

		if rng.Float64() >= 0.2 {
			q := 4 + rng.Intn(7)
			s.Quality = &q
		}
		if rng.Float64() < 0.15 {
			note := sampleNotes[rng.Intn(len(sampleNotes))]
			s.Notes = &note
		}

		sessions = append(sessions, s)
	}
	return sessions
}
