package models

// Priority ranks how urgently a subject should be studied
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Subject represents a study topic with its scheduling metadata
type Subject struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Difficulty   int      `json:"difficulty"`
	Priority     Priority `json:"priority"`
	Color        string   `json:"color"`
	HoursPerWeek int      `json:"hoursPerWeek"`
}

// SubjectInput holds the fields of a new subject
type SubjectInput struct {
	Name         string   `json:"name"`
	Difficulty   int      `json:"difficulty"`
	Priority     Priority `json:"priority"`
	Color        string   `json:"color"`
	HoursPerWeek int      `json:"hoursPerWeek"`
}

// SubjectUpdate is a partial edit; nil fields are left untouched
type SubjectUpdate struct {
	Name         *string   `json:"name,omitempty"`
	Difficulty   *int      `json:"difficulty,omitempty"`
	Priority     *Priority `json:"priority,omitempty"`
	Color        *string   `json:"color,omitempty"`
	HoursPerWeek *int      `json:"hoursPerWeek,omitempty"`
}

// ApplyTo merges the set fields of u into s
func (u SubjectUpdate) ApplyTo(s *Subject) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Difficulty != nil {
		s.Difficulty = *u.Difficulty
	}
	if u.Priority != nil {
		s.Priority = *u.Priority
	}
	if u.Color != nil {
		s.Color = *u.Color
	}
	if u.HoursPerWeek != nil {
		s.HoursPerWeek = *u.HoursPerWeek
	}
}

// FullUpdate builds an update that replaces every editable field
func (in SubjectInput) FullUpdate() SubjectUpdate {
	return SubjectUpdate{
		Name:         &in.Name,
		Difficulty:   &in.Difficulty,
		Priority:     &in.Priority,
		Color:        &in.Color,
		HoursPerWeek: &in.HoursPerWeek,
	}
}
