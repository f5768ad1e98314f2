package repository

import (
	"sync"

	"github.com/google/uuid"

	"studyplanner/internal/models"
)

// StudyRepository holds subjects and study sessions in memory.
// Both lists share one lock so a subject delete and its session cascade are seen together.
type StudyRepository struct {
	mu       sync.RWMutex
	subjects []models.Subject
	sessions []models.StudySession
}

// NewStudyRepository creates an empty study repository
func NewStudyRepository() *StudyRepository {
	return &StudyRepository{}
}

// Seed replaces the current state with the given subjects and sessions
func (r *StudyRepository) Seed(subjects []models.Subject, sessions []models.StudySession) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subjects = append([]models.Subject(nil), subjects...)
	r.sessions = cloneSessions(sessions)
}

// ListSubjects returns all subjects in insertion order
func (r *StudyRepository) ListSubjects() []models.Subject {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]models.Subject{}, r.subjects...)
}

// GetSubject retrieves a subject by ID, or nil if it does not exist
func (r *StudyRepository) GetSubject(id string) *models.Subject {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.subjects {
		if s.ID == id {
			subject := s
			return &subject
		}
	}
	return nil
}

// CreateSubject appends a new subject with a generated ID
func (r *StudyRepository) CreateSubject(input models.SubjectInput) models.Subject {
	subject := models.Subject{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Difficulty:   input.Difficulty,
		Priority:     input.Priority,
		Color:        input.Color,
		HoursPerWeek: input.HoursPerWeek,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.subjects = append(r.subjects, subject)
	return subject
}

// UpdateSubject merges the update into the subject with the given ID.
// Returns nil and changes nothing if the subject does not exist.
func (r *StudyRepository) UpdateSubject(id string, update models.SubjectUpdate) *models.Subject {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.subjects {
		if r.subjects[i].ID == id {
			update.ApplyTo(&r.subjects[i])
			subject := r.subjects[i]
			return &subject
		}
	}
	return nil
}

// DeleteSubject removes the subject and every session that references it.
// Sessions are removed even if the subject itself was already gone.
func (r *StudyRepository) DeleteSubject(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	subjects := r.subjects[:0]
	for _, s := range r.subjects {
		if s.ID == id {
			found = true
			continue
		}
		subjects = append(subjects, s)
	}
	r.subjects = subjects

	sessions := r.sessions[:0]
	for _, s := range r.sessions {
		if s.SubjectID != id {
			sessions = append(sessions, s)
		}
	}
	r.sessions = sessions

	return found
}

// ListSessions returns all sessions in list order
func (r *StudyRepository) ListSessions() []models.StudySession {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneSessions(r.sessions)
}

// GetSession retrieves a session by ID, or nil if it does not exist
func (r *StudyRepository) GetSession(id string) *models.StudySession {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sessions {
		if s.ID == id {
			session := s.Clone()
			return &session
		}
	}
	return nil
}

// CompleteSession marks a session completed with the given score.
// Returns nil if the session does not exist.
func (r *StudyRepository) CompleteSession(id string, score int) *models.StudySession {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.sessions {
		if r.sessions[i].ID == id {
			r.sessions[i].Status = models.StatusCompleted
			r.sessions[i].Score = &score
			session := r.sessions[i].Clone()
			return &session
		}
	}
	return nil
}

// ReplaceSessions discards every existing session and stores the given list
func (r *StudyRepository) ReplaceSessions(sessions []models.StudySession) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions = cloneSessions(sessions)
}

// Reset removes all subjects and sessions
func (r *StudyRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subjects = nil
	r.sessions = nil
}

func cloneSessions(sessions []models.StudySession) []models.StudySession {
	out := make([]models.StudySession, len(sessions))
	for i, s := range sessions {
		out[i] = s.Clone()
	}
	return out
}

// RebuildSessions replaces every session with the result of build, which is
// given the current subjects. The subject list cannot change while build runs.
func (r *StudyRepository) RebuildSessions(build func(subjects []models.Subject) []models.StudySession) []models.StudySession {
	r.mu.Lock()
	defer r.mu.Unlock()

	subjects := append([]models.Subject{}, r.subjects...)
	r.sessions = cloneSessions(build(subjects))
	return cloneSessions(r.sessions)
}
