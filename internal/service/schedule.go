package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"studyplanner/internal/models"
)

const (
	minSessionMinutes   = 30
	sessionMinutesRange = 45 // durations fall in [30, 75)
	firstSessionHour    = 9
	sessionHourStep     = 2

	highPriorityReason = "High priority subject"
)

// ScheduleGenerator builds placeholder study plans.
// It assigns random durations and fixed time slots; it does not balance load,
// weigh difficulty, or check for overlaps.
type ScheduleGenerator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	newID func() string
}

// NewScheduleGenerator creates a generator. A nil rng is seeded from the clock.
func NewScheduleGenerator(rng *rand.Rand) *ScheduleGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ScheduleGenerator{
		rng:   rng,
		newID: func() string { return uuid.New().String() },
	}
}

// Generate returns one planned session per subject per day, days in the given
// order and subjects in list order. hoursPerDay is accepted for callers that
// collect it but is not enforced.
func (g *ScheduleGenerator) Generate(subjects []models.Subject, days []string, hoursPerDay float64) []models.StudySession {
	g.mu.Lock()
	defer g.mu.Unlock()

	sessions := make([]models.StudySession, 0, len(days)*len(subjects))
	for _, day := range days {
		hour := firstSessionHour
		for _, subject := range subjects {
			duration := minSessionMinutes + g.rng.Intn(sessionMinutesRange)

			session := models.StudySession{
				ID:              g.newID(),
				SubjectID:       subject.ID,
				SubjectName:     subject.Name,
				Day:             day,
				StartTime:       fmt.Sprintf("%02d:00", hour),
				DurationMinutes: duration,
				SessionType:     models.SessionTypeForDuration(duration),
				Status:          models.StatusPlanned,
			}
			if subject.Priority == models.PriorityHigh {
				session.Reason = highPriorityReason
			}

			sessions = append(sessions, session)
			hour += sessionHourStep
		}
	}

	return sessions
}

// RandomScore picks a demo score in [70, 100) for sessions completed without one
func (g *ScheduleGenerator) RandomScore() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return 70 + g.rng.Intn(30)
}
