package handlers

import (
	"errors"
	"net/http"

	"studyplanner/internal/models"
	"studyplanner/internal/service"
	"studyplanner/internal/validation"
)

// Defaults used by the add-subject form
const (
	defaultDifficulty   = 5
	defaultPriority     = models.PriorityMedium
	defaultColor        = "#10B981"
	defaultHoursPerWeek = 3
)

// SubjectHandler handles subject CRUD
type SubjectHandler struct {
	studyService *service.StudyService
}

// NewSubjectHandler creates a new subject handler
func NewSubjectHandler(studyService *service.StudyService) *SubjectHandler {
	return &SubjectHandler{
		studyService: studyService,
	}
}

// ListSubjects returns every subject
func (h *SubjectHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, SubjectListResponse{Subjects: h.studyService.Subjects()})
}

// CreateSubject adds a subject, filling in form defaults for omitted fields
func (h *SubjectHandler) CreateSubject(w http.ResponseWriter, r *http.Request) {
	var input models.SubjectInput
	if err := decodeJSON(r, &input, false); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}
	applySubjectDefaults(&input)

	if err := validation.ValidateSubject(input); err != nil {
		respondWithValidationError(w, err)
		return
	}

	subject := h.studyService.AddSubject(input)
	respondJSON(w, http.StatusCreated, SubjectResponse{Subject: subject, Message: MsgSubjectAdded})
}

// UpdateSubject merges the supplied fields into a subject
func (h *SubjectHandler) UpdateSubject(w http.ResponseWriter, r *http.Request) {
	var update models.SubjectUpdate
	if err := decodeJSON(r, &update, false); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}

	if err := validation.ValidateSubjectUpdate(update); err != nil {
		respondWithValidationError(w, err)
		return
	}

	h.saveUpdate(w, r.PathValue("id"), update)
}

// ReplaceSubject overwrites every editable field of a subject
func (h *SubjectHandler) ReplaceSubject(w http.ResponseWriter, r *http.Request) {
	var input models.SubjectInput
	if err := decodeJSON(r, &input, false); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}

	if err := validation.ValidateSubject(input); err != nil {
		respondWithValidationError(w, err)
		return
	}

	h.saveUpdate(w, r.PathValue("id"), input.FullUpdate())
}

func (h *SubjectHandler) saveUpdate(w http.ResponseWriter, id string, update models.SubjectUpdate) {
	subject, err := h.studyService.UpdateSubject(id, update)
	if err != nil {
		if errors.Is(err, service.ErrSubjectNotFound) {
			respondWithError(w, http.StatusNotFound, ErrSubjectNotFound, "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error updating subject", err)
		return
	}

	respondJSON(w, http.StatusOK, SubjectResponse{Subject: *subject, Message: MsgSubjectUpdated})
}

// DeleteSubject removes a subject and its sessions
func (h *SubjectHandler) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	if err := h.studyService.DeleteSubject(r.PathValue("id")); err != nil {
		if errors.Is(err, service.ErrSubjectNotFound) {
			respondWithError(w, http.StatusNotFound, ErrSubjectNotFound, "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error deleting subject", err)
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: MsgSubjectDeleted})
}

func applySubjectDefaults(input *models.SubjectInput) {
	if input.Difficulty == 0 {
		input.Difficulty = defaultDifficulty
	}
	if input.Priority == "" {
		input.Priority = defaultPriority
	}
	if input.Color == "" {
		input.Color = defaultColor
	}
	if input.HoursPerWeek == 0 {
		input.HoursPerWeek = defaultHoursPerWeek
	}
}
