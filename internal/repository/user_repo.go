package repository

import (
	"sync"

	"studyplanner/internal/models"
)

// UserRepository holds the single signed-in user, if any
type UserRepository struct {
	mu   sync.RWMutex
	user *models.User
}

// NewUserRepository creates a user repository with nobody signed in
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Current returns a copy of the signed-in user, or nil
func (r *UserRepository) Current() *models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.user == nil {
		return nil
	}
	user := *r.user
	return &user
}

// Set replaces the signed-in user
func (r *UserRepository) Set(user models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.user = &user
}

// Clear signs the current user out
func (r *UserRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.user = nil
}

// UpdateName changes the display name of the signed-in user.
// Returns nil when nobody is signed in.
func (r *UserRepository) UpdateName(name string) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.user == nil {
		return nil
	}
	r.user.Name = name
	user := *r.user
	return &user
}
