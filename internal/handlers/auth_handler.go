package handlers

import (
	"net/http"

	"studyplanner/internal/service"
	"studyplanner/internal/validation"
)

// AuthHandler handles the mock sign-in flow
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Login signs in with any non-empty email and password
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req, false); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}

	if err := validation.ValidateLogin(req.Email, req.Password); err != nil {
		respondWithValidationError(w, err)
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, ErrLoginFailed, "Login failed", err)
		return
	}

	respondJSON(w, http.StatusOK, UserResponse{User: user})
}

// Register creates the mock account and signs it in
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req, false); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}

	if err := validation.ValidateRegistration(req.Name, req.Email, req.Password, req.ConfirmPassword); err != nil {
		respondWithValidationError(w, err)
		return
	}

	user, err := h.authService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrRegistrationFailed, "Registration failed", err)
		return
	}

	respondJSON(w, http.StatusCreated, UserResponse{User: user})
}

// Logout clears the signed-in user
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.Logout()
	respondJSON(w, http.StatusOK, MessageResponse{Message: MsgLoggedOut})
}

// Me returns the signed-in user
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, UserResponse{User: GetUserFromContext(r.Context())})
}

// Health reports that the server is up
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
