package models

// SessionType labels the intensity of a study session
type SessionType string

const (
	SessionDeepFocus  SessionType = "Deep Focus"
	SessionReview     SessionType = "Review"
	SessionQuickRecap SessionType = "Quick Recap"
)

// SessionTypeForDuration picks the session type from its length in minutes
func SessionTypeForDuration(minutes int) SessionType {
	switch {
	case minutes >= 60:
		return SessionDeepFocus
	case minutes >= 30:
		return SessionReview
	default:
		return SessionQuickRecap
	}
}

// SessionStatus tracks where a session is in its lifecycle
type SessionStatus string

const (
	StatusPlanned   SessionStatus = "planned"
	StatusCompleted SessionStatus = "completed"
	StatusSkipped   SessionStatus = "skipped"
)

// StudySession is a block of study time for one subject on one day.
// SubjectName is cached when the session is created and is not kept in sync
// with later subject renames.
type StudySession struct {
	ID              string        `json:"id"`
	SubjectID       string        `json:"subjectId"`
	SubjectName     string        `json:"subjectName"`
	Day             string        `json:"day"`
	StartTime       string        `json:"startTime"`
	DurationMinutes int           `json:"durationMinutes"`
	SessionType     SessionType   `json:"sessionType"`
	Status          SessionStatus `json:"status"`
	Score           *int          `json:"score,omitempty"`
	Reason          string        `json:"reason,omitempty"`
}

// HasScore reports whether a score was recorded for the session
func (s StudySession) HasScore() bool {
	return s.Score != nil
}

// Clone returns a copy that does not share the score pointer
func (s StudySession) Clone() StudySession {
	if s.Score != nil {
		score := *s.Score
		s.Score = &score
	}
	return s
}

// WeekDays lists the day labels in display order
var WeekDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// IsWeekDay reports whether label is one of WeekDays
func IsWeekDay(label string) bool {
	for _, d := range WeekDays {
		if d == label {
			return true
		}
	}
	return false
}
