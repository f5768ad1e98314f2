package models

// Stats summarises progress across all sessions.
// Values are derived on every read and never stored.
type Stats struct {
	TotalHours    float64 `json:"totalHours"`
	Streak        int     `json:"streak"`
	SubjectsCount int     `json:"subjectsCount"`
	AvgScore      int     `json:"avgScore"`
}

// Trend describes the direction of recent scores
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// SubjectStats is the per-subject progress shown on the analytics page
type SubjectStats struct {
	SubjectID      string `json:"subjectId"`
	SubjectName    string `json:"subjectName"`
	Color          string `json:"color"`
	AvgScore       int    `json:"avgScore"`
	CompletedCount int    `json:"completedCount"`
	PlannedCount   int    `json:"plannedCount"`
	Trend          Trend  `json:"trend"`
}

// DayHours is the amount of completed study on one day label
type DayHours struct {
	Day   string  `json:"day"`
	Hours float64 `json:"hours"`
}

// StreakDay marks whether studying happened on a given day
type StreakDay struct {
	Day       string `json:"day"`
	Completed bool   `json:"completed"`
}
