package handlers

import (
	"errors"
	"net/http"
	"strings"

	"studyplanner/internal/service"
	"studyplanner/internal/validation"
)

// ProfileHandler handles the profile page
type ProfileHandler struct {
	authService  *service.AuthService
	studyService *service.StudyService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(authService *service.AuthService, studyService *service.StudyService) *ProfileHandler {
	return &ProfileHandler{
		authService:  authService,
		studyService: studyService,
	}
}

type profileRequest struct {
	Name string `json:"name"`
}

// ShowProfile returns the signed-in user
func (h *ProfileHandler) ShowProfile(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, UserResponse{User: GetUserFromContext(r.Context())})
}

// UpdateProfile changes the display name
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decodeJSON(r, &req, false); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}

	if err := validation.ValidateRequired("name", req.Name); err != nil {
		respondWithValidationError(w, err)
		return
	}

	user, err := h.authService.UpdateProfile(strings.TrimSpace(req.Name))
	if err != nil {
		if errors.Is(err, service.ErrNotAuthenticated) {
			respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error updating profile", err)
		return
	}

	respondJSON(w, http.StatusOK, UserResponse{User: user, Message: MsgProfileUpdated})
}

// ResetData clears every subject and session
func (h *ProfileHandler) ResetData(w http.ResponseWriter, r *http.Request) {
	h.studyService.ResetData()
	respondJSON(w, http.StatusOK, MessageResponse{Message: MsgDataReset})
}
