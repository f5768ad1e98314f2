package handlers

import (
	"context"
	"errors"
	"net/http"

	"studyplanner/internal/models"
	"studyplanner/internal/service"
	"studyplanner/internal/validation"
)

var (
	defaultScheduleDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}
	defaultHoursPerDay  = 4.0
)

// PlannerHandler handles sessions and schedule generation
type PlannerHandler struct {
	studyService *service.StudyService
}

// NewPlannerHandler creates a new planner handler
func NewPlannerHandler(studyService *service.StudyService) *PlannerHandler {
	return &PlannerHandler{
		studyService: studyService,
	}
}

type completeRequest struct {
	Score *int `json:"score"`
}

type generateRequest struct {
	Days        []string `json:"days"`
	HoursPerDay *float64 `json:"hoursPerDay"`
}

// ListSessions returns every session
func (h *PlannerHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, SessionListResponse{Sessions: h.studyService.Sessions()})
}

// CompleteSession marks a session done. Without a score in the body a demo
// score is drawn.
func (h *PlannerHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	var req completeRequest
	if err := decodeJSON(r, &req, true); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}

	id := r.PathValue("id")

	var (
		session *models.StudySession
		err     error
	)
	if req.Score != nil {
		if verr := validation.ValidateScore(*req.Score); verr != nil {
			respondWithValidationError(w, verr)
			return
		}
		session, err = h.studyService.CompleteSession(id, *req.Score)
	} else {
		session, err = h.studyService.CompleteSessionWithRandomScore(id)
	}

	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			respondWithError(w, http.StatusNotFound, ErrSessionNotFound, "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error completing session", err)
		return
	}

	respondJSON(w, http.StatusOK, SessionResponse{Session: *session, Message: MsgSessionCompleted})
}

// ShowPlanner returns the week grouped by day
func (h *PlannerHandler) ShowPlanner(w http.ResponseWriter, r *http.Request) {
	grouped := h.studyService.GroupSessionsByDay()

	days := make([]PlannerDay, 0, len(models.WeekDays))
	for _, day := range models.WeekDays {
		sessions := grouped[day]
		days = append(days, PlannerDay{
			Day:      day,
			Free:     len(sessions) == 0,
			Sessions: sessions,
		})
	}

	respondJSON(w, http.StatusOK, PlannerViewData{
		Days:     days,
		Subjects: h.studyService.Subjects(),
	})
}

// GenerateSchedule replaces all sessions with a freshly generated plan
func (h *PlannerHandler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(r, &req, true); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}

	days := req.Days
	if days == nil {
		days = defaultScheduleDays
	}
	hoursPerDay := defaultHoursPerDay
	if req.HoursPerDay != nil {
		hoursPerDay = *req.HoursPerDay
	}

	if err := validation.ValidateSchedule(days, hoursPerDay); err != nil {
		respondWithValidationError(w, err)
		return
	}

	sessions, err := h.studyService.GenerateSchedule(r.Context(), days, hoursPerDay)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			respondWithError(w, http.StatusServiceUnavailable, ErrRequestCancelled, "Schedule generation aborted", err)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error generating schedule", err)
		return
	}

	respondJSON(w, http.StatusOK, GenerateResponse{Sessions: sessions, Message: MsgScheduleGenerated})
}
