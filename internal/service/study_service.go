package service

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"studyplanner/internal/models"
	"studyplanner/internal/repository"
)

// MockStreak is the streak length reported until real streak tracking exists
const MockStreak = 5

var (
	ErrSubjectNotFound = errors.New("subject not found")
	ErrSessionNotFound = errors.New("session not found")
)

// StudyService handles subjects, sessions and the statistics derived from them
type StudyService struct {
	repo          *repository.StudyRepository
	generator     *ScheduleGenerator
	generateDelay time.Duration
}

// NewStudyService creates a new study service.
// generateDelay is waited before each schedule generation.
func NewStudyService(repo *repository.StudyRepository, generator *ScheduleGenerator, generateDelay time.Duration) *StudyService {
	return &StudyService{
		repo:          repo,
		generator:     generator,
		generateDelay: generateDelay,
	}
}

// Subjects returns all subjects
func (s *StudyService) Subjects() []models.Subject {
	return s.repo.ListSubjects()
}

// AddSubject stores a new subject. Names are not checked for duplicates.
func (s *StudyService) AddSubject(input models.SubjectInput) models.Subject {
	subject := s.repo.CreateSubject(input)
	log.Printf("Subject added: %s (%s)", subject.Name, subject.ID)
	return subject
}

// UpdateSubject merges the given fields into an existing subject
func (s *StudyService) UpdateSubject(id string, update models.SubjectUpdate) (*models.Subject, error) {
	subject := s.repo.UpdateSubject(id, update)
	if subject == nil {
		return nil, ErrSubjectNotFound
	}
	return subject, nil
}

// DeleteSubject removes a subject together with all of its sessions
func (s *StudyService) DeleteSubject(id string) error {
	if !s.repo.DeleteSubject(id) {
		return ErrSubjectNotFound
	}
	log.Printf("Subject deleted: %s", id)
	return nil
}

// Sessions returns all sessions
func (s *StudyService) Sessions() []models.StudySession {
	return s.repo.ListSessions()
}

// SessionsByDay returns the sessions scheduled on the given day label
func (s *StudyService) SessionsByDay(day string) []models.StudySession {
	var result []models.StudySession
	for _, session := range s.repo.ListSessions() {
		if session.Day == day {
			result = append(result, session)
		}
	}
	return result
}

// GroupSessionsByDay buckets sessions under every week day label.
// Days without sessions map to an empty slice.
func (s *StudyService) GroupSessionsByDay() map[string][]models.StudySession {
	grouped := make(map[string][]models.StudySession, len(models.WeekDays))
	for _, day := range models.WeekDays {
		grouped[day] = []models.StudySession{}
	}
	for _, session := range s.repo.ListSessions() {
		if _, ok := grouped[session.Day]; ok {
			grouped[session.Day] = append(grouped[session.Day], session)
		}
	}
	return grouped
}

// UpcomingSessions returns up to limit planned sessions in list order
func (s *StudyService) UpcomingSessions(limit int) []models.StudySession {
	result := []models.StudySession{}
	for _, session := range s.repo.ListSessions() {
		if len(result) >= limit {
			break
		}
		if session.Status == models.StatusPlanned {
			result = append(result, session)
		}
	}
	return result
}

// CompleteSession marks a session completed and records its score
func (s *StudyService) CompleteSession(id string, score int) (*models.StudySession, error) {
	session := s.repo.CompleteSession(id, score)
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// CompleteSessionWithRandomScore completes a session with a demo score in [70, 100)
func (s *StudyService) CompleteSessionWithRandomScore(id string) (*models.StudySession, error) {
	return s.CompleteSession(id, s.generator.RandomScore())
}

// GenerateSchedule discards every session and builds a new plan for the given days.
// The configured delay is waited first; cancelling ctx during the wait leaves
// the current sessions untouched.
func (s *StudyService) GenerateSchedule(ctx context.Context, days []string, hoursPerDay float64) ([]models.StudySession, error) {
	if s.generateDelay > 0 {
		timer := time.NewTimer(s.generateDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	sessions := s.repo.RebuildSessions(func(subjects []models.Subject) []models.StudySession {
		return s.generator.Generate(subjects, days, hoursPerDay)
	})

	log.Printf("Schedule generated: %d sessions across %d days", len(sessions), len(days))
	return sessions, nil
}

// Stats computes the dashboard summary from the current state
func (s *StudyService) Stats() models.Stats {
	sessions := s.repo.ListSessions()

	var totalMinutes, scoreSum, scored int
	for _, session := range sessions {
		if session.Status == models.StatusCompleted {
			totalMinutes += session.DurationMinutes
		}
		if session.HasScore() {
			scoreSum += *session.Score
			scored++
		}
	}

	return models.Stats{
		TotalHours:    float64(totalMinutes) / 60,
		Streak:        MockStreak,
		SubjectsCount: len(s.repo.ListSubjects()),
		AvgScore:      roundedMean(scoreSum, scored),
	}
}

// SubjectStats computes per-subject progress for the analytics page
func (s *StudyService) SubjectStats() []models.SubjectStats {
	subjects := s.repo.ListSubjects()
	sessions := s.repo.ListSessions()

	result := make([]models.SubjectStats, 0, len(subjects))
	for _, subject := range subjects {
		stats := models.SubjectStats{
			SubjectID:   subject.ID,
			SubjectName: subject.Name,
			Color:       subject.Color,
		}

		var scores []int
		for _, session := range sessions {
			if session.SubjectID != subject.ID {
				continue
			}
			switch session.Status {
			case models.StatusCompleted:
				stats.CompletedCount++
				score := 0
				if session.HasScore() {
					score = *session.Score
				}
				scores = append(scores, score)
			case models.StatusPlanned:
				stats.PlannedCount++
			}
		}

		sum := 0
		for _, score := range scores {
			sum += score
		}
		stats.AvgScore = roundedMean(sum, len(scores))
		stats.Trend = scoreTrend(scores)

		result = append(result, stats)
	}

	return result
}

// WeeklyHours returns completed study hours for every week day label
func (s *StudyService) WeeklyHours() []models.DayHours {
	minutes := make(map[string]int, len(models.WeekDays))
	for _, session := range s.repo.ListSessions() {
		if session.Status == models.StatusCompleted {
			minutes[session.Day] += session.DurationMinutes
		}
	}

	result := make([]models.DayHours, 0, len(models.WeekDays))
	for _, day := range models.WeekDays {
		result = append(result, models.DayHours{
			Day:   day,
			Hours: math.Round(float64(minutes[day])/60*10) / 10,
		})
	}
	return result
}

// StreakDays returns the mock streak week shown on the analytics page
func (s *StudyService) StreakDays() []models.StreakDay {
	return []models.StreakDay{
		{Day: "Sun", Completed: false},
		{Day: "Mon", Completed: true},
		{Day: "Tue", Completed: true},
		{Day: "Wed", Completed: true},
		{Day: "Thu", Completed: true},
		{Day: "Fri", Completed: true},
		{Day: "Sat", Completed: false},
	}
}

// ResetData removes every subject and session
func (s *StudyService) ResetData() {
	s.repo.Reset()
	log.Println("All study data reset")
}

// roundedMean returns sum/count rounded to the nearest integer, or 0 when count is 0
func roundedMean(sum, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(count)))
}

// scoreTrend compares the first and last of the three most recent scores
func scoreTrend(scores []int) models.Trend {
	recent := scores
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	if len(recent) < 2 {
		return models.TrendStable
	}

	diff := recent[len(recent)-1] - recent[0]
	switch {
	case diff > 5:
		return models.TrendUp
	case diff < -5:
		return models.TrendDown
	default:
		return models.TrendStable
	}
}
