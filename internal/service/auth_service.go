package service

import (
	"errors"
	"log"

	"studyplanner/internal/models"
	"studyplanner/internal/repository"
)

var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// AuthService handles the mock sign-in flow.
// Any non-empty credentials succeed; nothing is stored or verified.
type AuthService struct {
	userRepo *repository.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Login signs in as the mock user under the given email
func (s *AuthService) Login(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user := repository.MockUser
	user.Email = email
	s.userRepo.Set(user)

	log.Printf("User signed in: %s", email)
	return &user, nil
}

// Register creates the mock user with the given name and email and signs it in
func (s *AuthService) Register(name, email, password string) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user := repository.MockUser
	user.Name = name
	user.Email = email
	s.userRepo.Set(user)

	log.Printf("User registered: %s", email)
	return &user, nil
}

// Logout clears the signed-in user
func (s *AuthService) Logout() {
	s.userRepo.Clear()
}

// CurrentUser returns the signed-in user, or nil
func (s *AuthService) CurrentUser() *models.User {
	return s.userRepo.Current()
}

// IsAuthenticated reports whether anyone is signed in
func (s *AuthService) IsAuthenticated() bool {
	return s.userRepo.Current() != nil
}

// UpdateProfile changes the display name of the signed-in user
func (s *AuthService) UpdateProfile(name string) (*models.User, error) {
	user := s.userRepo.UpdateName(name)
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	return user, nil
}
