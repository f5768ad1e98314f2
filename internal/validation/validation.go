package validation

import (
	"fmt"
	"strings"

	"studyplanner/internal/models"
)

const (
	MinPasswordLength = 6

	MinDifficulty   = 1
	MaxDifficulty   = 10
	MinHoursPerWeek = 1
	MaxHoursPerWeek = 20
	MinHoursPerDay  = 1
	MaxHoursPerDay  = 8
	MinScore        = 0
	MaxScore        = 100
)

// ValidationError represents a form field that failed validation
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateRequired checks that a form value is present
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return ValidationError{Field: field, Message: field + " is required"}
	}
	return nil
}

// ValidateLogin checks the login form
func ValidateLogin(email, password string) error {
	if err := ValidateRequired("email", email); err != nil {
		return err
	}
	return ValidateRequired("password", password)
}

// ValidateRegistration checks the registration form.
// The match check runs before the length check.
func ValidateRegistration(name, email, password, confirmPassword string) error {
	if err := ValidateRequired("name", name); err != nil {
		return err
	}
	if err := ValidateRequired("email", email); err != nil {
		return err
	}
	if err := ValidateRequired("password", password); err != nil {
		return err
	}
	if password != confirmPassword {
		return ValidationError{Field: "confirmPassword", Message: "Passwords do not match"}
	}
	if len(password) < MinPasswordLength {
		return ValidationError{Field: "password", Message: fmt.Sprintf("Password must be at least %d characters", MinPasswordLength)}
	}
	return nil
}

// ValidateSubject checks the subject form ranges
func ValidateSubject(input models.SubjectInput) error {
	if err := ValidateRequired("name", input.Name); err != nil {
		return err
	}
	if input.Difficulty < MinDifficulty || input.Difficulty > MaxDifficulty {
		return ValidationError{Field: "difficulty", Message: fmt.Sprintf("difficulty must be between %d and %d", MinDifficulty, MaxDifficulty)}
	}
	if !input.Priority.Valid() {
		return ValidationError{Field: "priority", Message: "priority must be high, medium or low"}
	}
	if input.HoursPerWeek < MinHoursPerWeek || input.HoursPerWeek > MaxHoursPerWeek {
		return ValidationError{Field: "hoursPerWeek", Message: fmt.Sprintf("hours per week must be between %d and %d", MinHoursPerWeek, MaxHoursPerWeek)}
	}
	return ValidateRequired("color", input.Color)
}

// ValidateSubjectUpdate checks only the fields present in a partial edit
func ValidateSubjectUpdate(update models.SubjectUpdate) error {
	if update.Name != nil {
		if err := ValidateRequired("name", *update.Name); err != nil {
			return err
		}
	}
	if update.Difficulty != nil && (*update.Difficulty < MinDifficulty || *update.Difficulty > MaxDifficulty) {
		return ValidationError{Field: "difficulty", Message: fmt.Sprintf("difficulty must be between %d and %d", MinDifficulty, MaxDifficulty)}
	}
	if update.Priority != nil && !update.Priority.Valid() {
		return ValidationError{Field: "priority", Message: "priority must be high, medium or low"}
	}
	if update.HoursPerWeek != nil && (*update.HoursPerWeek < MinHoursPerWeek || *update.HoursPerWeek > MaxHoursPerWeek) {
		return ValidationError{Field: "hoursPerWeek", Message: fmt.Sprintf("hours per week must be between %d and %d", MinHoursPerWeek, MaxHoursPerWeek)}
	}
	if update.Color != nil {
		return ValidateRequired("color", *update.Color)
	}
	return nil
}

// ValidateSchedule checks the planner form
func ValidateSchedule(days []string, hoursPerDay float64) error {
	if len(days) == 0 {
		return ValidationError{Field: "days", Message: "select at least one day"}
	}
	for _, day := range days {
		if !models.IsWeekDay(day) {
			return ValidationError{Field: "days", Message: fmt.Sprintf("unknown day %q", day)}
		}
	}
	if hoursPerDay < MinHoursPerDay || hoursPerDay > MaxHoursPerDay {
		return ValidationError{Field: "hoursPerDay", Message: fmt.Sprintf("hours per day must be between %d and %d", MinHoursPerDay, MaxHoursPerDay)}
	}
	return nil
}

// ValidateScore checks a session score
func ValidateScore(score int) error {
	if score < MinScore || score > MaxScore {
		return ValidationError{Field: "score", Message: fmt.Sprintf("score must be between %d and %d", MinScore, MaxScore)}
	}
	return nil
}
