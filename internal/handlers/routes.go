package handlers

import (
	"net/http"

	"studyplanner/internal/security"
	"studyplanner/internal/service"
)

// NewRouter registers every route on a fresh mux
func NewRouter(authService *service.AuthService, studyService *service.StudyService, rateLimiter *security.RateLimiter, dashboardDay string) *http.ServeMux {
	middleware := NewMiddleware(authService, rateLimiter)

	authHandler := NewAuthHandler(authService)
	subjectHandler := NewSubjectHandler(studyService)
	plannerHandler := NewPlannerHandler(studyService)
	dashboardHandler := NewDashboardHandler(studyService, dashboardDay)
	profileHandler := NewProfileHandler(authService, studyService)

	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("GET /healthz", Health)
	mux.HandleFunc("POST /api/login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("POST /api/register", middleware.RateLimit(authHandler.Register))
	mux.HandleFunc("POST /api/logout", authHandler.Logout)

	// Signed-in routes
	mux.HandleFunc("GET /api/me", middleware.RequireAuth(authHandler.Me))
	mux.HandleFunc("GET /api/dashboard", middleware.RequireAuth(dashboardHandler.Dashboard))
	mux.HandleFunc("GET /api/stats", middleware.RequireAuth(dashboardHandler.Stats))
	mux.HandleFunc("GET /api/analytics", middleware.RequireAuth(dashboardHandler.Analytics))

	mux.HandleFunc("GET /api/subjects", middleware.RequireAuth(subjectHandler.ListSubjects))
	mux.HandleFunc("POST /api/subjects", middleware.RequireAuth(subjectHandler.CreateSubject))
	mux.HandleFunc("PATCH /api/subjects/{id}", middleware.RequireAuth(subjectHandler.UpdateSubject))
	mux.HandleFunc("PUT /api/subjects/{id}", middleware.RequireAuth(subjectHandler.ReplaceSubject))
	mux.HandleFunc("DELETE /api/subjects/{id}", middleware.RequireAuth(subjectHandler.DeleteSubject))

	mux.HandleFunc("GET /api/sessions", middleware.RequireAuth(plannerHandler.ListSessions))
	mux.HandleFunc("POST /api/sessions/{id}/complete", middleware.RequireAuth(plannerHandler.CompleteSession))
	mux.HandleFunc("GET /api/planner", middleware.RequireAuth(plannerHandler.ShowPlanner))
	mux.HandleFunc("POST /api/planner/generate", middleware.RequireAuth(plannerHandler.GenerateSchedule))

	mux.HandleFunc("GET /api/profile", middleware.RequireAuth(profileHandler.ShowProfile))
	mux.HandleFunc("PUT /api/profile", middleware.RequireAuth(profileHandler.UpdateProfile))
	mux.HandleFunc("POST /api/profile/reset", middleware.RequireAuth(profileHandler.ResetData))

	return mux
}
