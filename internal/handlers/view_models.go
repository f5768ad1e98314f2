package handlers

import (
	"studyplanner/internal/models"
)

type UserResponse struct {
	User    *models.User `json:"user"`
	Message string       `json:"message,omitempty"`
}

type DashboardViewData struct {
	Greeting         string                `json:"greeting"`
	FirstName        string                `json:"firstName"`
	Date             string                `json:"date"`
	Today            string                `json:"today"`
	Stats            models.Stats          `json:"stats"`
	TodaySessions    []models.StudySession `json:"todaySessions"`
	WeeklyHours      []models.DayHours     `json:"weeklyHours"`
	UpcomingSessions []models.StudySession `json:"upcomingSessions"`
}

type SubjectListResponse struct {
	Subjects []models.Subject `json:"subjects"`
}

type SubjectResponse struct {
	Subject models.Subject `json:"subject"`
	Message string         `json:"message"`
}

type SessionListResponse struct {
	Sessions []models.StudySession `json:"sessions"`
}

type SessionResponse struct {
	Session models.StudySession `json:"session"`
	Message string              `json:"message"`
}

// PlannerDay is one column of the weekly planner
type PlannerDay struct {
	Day      string                `json:"day"`
	Free     bool                  `json:"free"`
	Sessions []models.StudySession `json:"sessions"`
}

type PlannerViewData struct {
	Days     []PlannerDay     `json:"days"`
	Subjects []models.Subject `json:"subjects"`
}

type GenerateResponse struct {
	Sessions []models.StudySession `json:"sessions"`
	Message  string                `json:"message"`
}

type AnalyticsViewData struct {
	Stats        models.Stats          `json:"stats"`
	SubjectStats []models.SubjectStats `json:"subjectStats"`
	StreakDays   []models.StreakDay    `json:"streakDays"`
	Streak       int                   `json:"streak"`
	WeeklyHours  []models.DayHours     `json:"weeklyHours"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
