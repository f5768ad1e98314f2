package repository

import "studyplanner/internal/models"

// MockUser is the account every mock sign-in resolves to
var MockUser = models.User{
	ID:    "1",
	Name:  "Alex Chen",
	Email: "alex@example.com",
}

// MockSubjects returns the demo subjects loaded at startup
func MockSubjects() []models.Subject {
	return []models.Subject{
		{ID: "1", Name: "Calculus", Difficulty: 8, Priority: models.PriorityHigh, Color: "#10B981", HoursPerWeek: 5},
		{ID: "2", Name: "Physics", Difficulty: 7, Priority: models.PriorityMedium, Color: "#8B5CF6", HoursPerWeek: 4},
		{ID: "3", Name: "English", Difficulty: 4, Priority: models.PriorityLow, Color: "#F59E0B", HoursPerWeek: 2},
		{ID: "4", Name: "Chemistry", Difficulty: 6, Priority: models.PriorityMedium, Color: "#F43F5E", HoursPerWeek: 3},
	}
}

// MockSessions returns the demo sessions loaded at startup
func MockSessions() []models.StudySession {
	return []models.StudySession{
		{ID: "1", SubjectID: "1", SubjectName: "Calculus", Day: "Mon", StartTime: "09:00", DurationMinutes: 75, SessionType: models.SessionDeepFocus, Status: models.StatusCompleted, Score: intPtr(78), Reason: "Low recent performance + high difficulty"},
		{ID: "2", SubjectID: "2", SubjectName: "Physics", Day: "Mon", StartTime: "11:00", DurationMinutes: 60, SessionType: models.SessionDeepFocus, Status: models.StatusCompleted, Score: intPtr(85)},
		{ID: "3", SubjectID: "3", SubjectName: "English", Day: "Mon", StartTime: "14:00", DurationMinutes: 45, SessionType: models.SessionReview, Status: models.StatusPlanned},
		{ID: "4", SubjectID: "1", SubjectName: "Calculus", Day: "Tue", StartTime: "09:00", DurationMinutes: 90, SessionType: models.SessionDeepFocus, Status: models.StatusPlanned},
		{ID: "5", SubjectID: "4", SubjectName: "Chemistry", Day: "Tue", StartTime: "11:30", DurationMinutes: 60, SessionType: models.SessionDeepFocus, Status: models.StatusPlanned},
		{ID: "6", SubjectID: "2", SubjectName: "Physics", Day: "Wed", StartTime: "10:00", DurationMinutes: 75, SessionType: models.SessionDeepFocus, Status: models.StatusPlanned},
		{ID: "7", SubjectID: "3", SubjectName: "English", Day: "Wed", StartTime: "14:00", DurationMinutes: 30, SessionType: models.SessionQuickRecap, Status: models.StatusPlanned},
		{ID: "8", SubjectID: "1", SubjectName: "Calculus", Day: "Thu", StartTime: "09:00", DurationMinutes: 60, SessionType: models.SessionDeepFocus, Status: models.StatusPlanned},
		{ID: "9", SubjectID: "4", SubjectName: "Chemistry", Day: "Thu", StartTime: "11:00", DurationMinutes: 45, SessionType: models.SessionReview, Status: models.StatusPlanned},
		{ID: "10", SubjectID: "2", SubjectName: "Physics", Day: "Fri", StartTime: "10:00", DurationMinutes: 60, SessionType: models.SessionDeepFocus, Status: models.StatusPlanned},
	}
}

func intPtr(v int) *int {
	return &v
}
