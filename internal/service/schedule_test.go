package service

import (
	"fmt"
	"math/rand"
	"testing"

	"studyplanner/internal/models"
	"studyplanner/internal/repository"
)

func TestGenerateOneSessionPerDayAndSubject(t *testing.T) {
	generator := NewScheduleGenerator(rand.New(rand.NewSource(42)))
	subjects := repository.MockSubjects()
	days := []string{"Mon", "Wed", "Fri"}

	sessions := generator.Generate(subjects, days, 4)

	if len(sessions) != len(days)*len(subjects) {
		t.Fatalf("expected %d sessions, got %d", len(days)*len(subjects), len(sessions))
	}

	seen := make(map[string]int)
	ids := make(map[string]bool)
	for _, s := range sessions {
		seen[s.Day+"/"+s.SubjectID]++
		if ids[s.ID] {
			t.Errorf("duplicate session ID %s", s.ID)
		}
		ids[s.ID] = true

		if s.Status != models.StatusPlanned {
			t.Errorf("session %s status = %v, want planned", s.ID, s.Status)
		}
		if s.Score != nil {
			t.Errorf("session %s should not have a score", s.ID)
		}
	}
	for _, day := range days {
		for _, subject := range subjects {
			if got := seen[day+"/"+subject.ID]; got != 1 {
				t.Errorf("(%s, %s) appears %d times, want 1", day, subject.Name, got)
			}
		}
	}
}

func TestGenerateDurationsAndTypes(t *testing.T) {
	subjects := repository.MockSubjects()

	for seed := int64(0); seed < 50; seed++ {
		generator := NewScheduleGenerator(rand.New(rand.NewSource(seed)))
		for _, s := range generator.Generate(subjects, models.WeekDays, 8) {
			if s.DurationMinutes < 30 || s.DurationMinutes >= 75 {
				t.Fatalf("seed %d: duration %d outside [30,75)", seed, s.DurationMinutes)
			}
			if s.SessionType != models.SessionTypeForDuration(s.DurationMinutes) {
				t.Fatalf("seed %d: type %v inconsistent with %d minutes", seed, s.SessionType, s.DurationMinutes)
			}
		}
	}
}

func TestGenerateStartTimesAndReasons(t *testing.T) {
	generator := NewScheduleGenerator(rand.New(rand.NewSource(1)))
	subjects := repository.MockSubjects()

	sessions := generator.Generate(subjects, []string{"Tue", "Thu"}, 2)

	for i, s := range sessions {
		slot := i % len(subjects)
		want := fmt.Sprintf("%02d:00", 9+2*slot)
		if s.StartTime != want {
			t.Errorf("session %d start = %s, want %s", i, s.StartTime, want)
		}
		if s.SubjectName != subjects[slot].Name {
			t.Errorf("session %d subject name = %s, want %s", i, s.SubjectName, subjects[slot].Name)
		}

		wantReason := ""
		if subjects[slot].Priority == models.PriorityHigh {
			wantReason = "High priority subject"
		}
		if s.Reason != wantReason {
			t.Errorf("session %d reason = %q, want %q", i, s.Reason, wantReason)
		}
	}
}

func TestGenerateEmptyInputs(t *testing.T) {
	generator := NewScheduleGenerator(nil)

	if got := generator.Generate(nil, []string{"Mon"}, 4); len(got) != 0 {
		t.Errorf("no subjects: expected 0 sessions, got %d", len(got))
	}
	if got := generator.Generate(repository.MockSubjects(), nil, 4); len(got) != 0 {
		t.Errorf("no days: expected 0 sessions, got %d", len(got))
	}
}

func TestRandomScoreRange(t *testing.T) {
	generator := NewScheduleGenerator(rand.New(rand.NewSource(7)))
	for i := 0; i < 500; i++ {
		score := generator.RandomScore()
		if score < 70 || score >= 100 {
			t.Fatalf("score %d outside [70,100)", score)
		}
	}
}
