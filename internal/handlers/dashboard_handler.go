package handlers

import (
	"net/http"
	"strings"
	"time"

	"studyplanner/internal/models"
	"studyplanner/internal/service"
)

const dashboardDateFormat = "Monday, January 2, 2006"

// DashboardHandler serves the dashboard, stats and analytics views
type DashboardHandler struct {
	studyService *service.StudyService
	dashboardDay string
	now          func() time.Time
}

// NewDashboardHandler creates a new dashboard handler.
// An empty dashboardDay shows the sessions of the current weekday.
func NewDashboardHandler(studyService *service.StudyService, dashboardDay string) *DashboardHandler {
	return &DashboardHandler{
		studyService: studyService,
		dashboardDay: dashboardDay,
		now:          time.Now,
	}
}

// Dashboard returns the home page summary
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	firstName := ""
	if user := GetUserFromContext(r.Context()); user != nil {
		firstName = firstNameOf(user.Name)
	}

	today := h.dashboardDay
	if today == "" {
		today = now.Weekday().String()[:3]
	}

	todaySessions := h.studyService.SessionsByDay(today)
	if todaySessions == nil {
		todaySessions = []models.StudySession{}
	}

	respondJSON(w, http.StatusOK, DashboardViewData{
		Greeting:         greetingFor(now),
		FirstName:        firstName,
		Date:             now.Format(dashboardDateFormat),
		Today:            today,
		Stats:            h.studyService.Stats(),
		TodaySessions:    todaySessions,
		WeeklyHours:      h.studyService.WeeklyHours(),
		UpcomingSessions: h.studyService.UpcomingSessions(upcomingSessionsLimit),
	})
}

// Stats returns the progress summary
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.studyService.Stats())
}

// Analytics returns per-subject progress and the streak
func (h *DashboardHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	stats := h.studyService.Stats()
	respondJSON(w, http.StatusOK, AnalyticsViewData{
		Stats:        stats,
		SubjectStats: h.studyService.SubjectStats(),
		StreakDays:   h.studyService.StreakDays(),
		Streak:       stats.Streak,
		WeeklyHours:  h.studyService.WeeklyHours(),
	})
}

func greetingFor(t time.Time) string {
	switch hour := t.Hour(); {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func firstNameOf(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
