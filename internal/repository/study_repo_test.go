package repository

import (
	"testing"

	"studyplanner/internal/models"
)

func newSeededRepo() *StudyRepository {
	repo := NewStudyRepository()
	repo.Seed(MockSubjects(), MockSessions())
	return repo
}

func TestCreateSubjectAppendsWithID(t *testing.T) {
	repo := newSeededRepo()

	created := repo.CreateSubject(models.SubjectInput{
		Name:         "Biology",
		Difficulty:   5,
		Priority:     models.PriorityLow,
		Color:        "#0EA5E9",
		HoursPerWeek: 3,
	})

	if created.ID == "" {
		t.Fatal("expected generated ID")
	}

	subjects := repo.ListSubjects()
	if len(subjects) != 5 {
		t.Fatalf("expected 5 subjects, got %d", len(subjects))
	}
	if subjects[4].ID != created.ID || subjects[4].Name != "Biology" {
		t.Errorf("new subject not appended last: %+v", subjects[4])
	}

	// Duplicate names are allowed
	dup := repo.CreateSubject(models.SubjectInput{Name: "Biology"})
	if dup.ID == created.ID {
		t.Error("duplicate subject reused ID")
	}
}

func TestUpdateSubject(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantNil bool
	}{
		{
			name:    "existing subject",
			id:      "2",
			wantNil: false,
		},
		{
			name:    "missing subject is a no-op",
			id:      "missing",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newSeededRepo()
			before := repo.ListSubjects()

			difficulty := 9
			result := repo.UpdateSubject(tt.id, models.SubjectUpdate{Difficulty: &difficulty})

			if (result == nil) != tt.wantNil {
				t.Fatalf("UpdateSubject() nil = %v, want %v", result == nil, tt.wantNil)
			}

			after := repo.ListSubjects()
			if tt.wantNil {
				for i := range before {
					if before[i] != after[i] {
						t.Errorf("subject %d changed: %+v -> %+v", i, before[i], after[i])
					}
				}
				return
			}
			if result.Difficulty != 9 || result.Name != "Physics" {
				t.Errorf("unexpected merge result: %+v", result)
			}
		})
	}
}

func TestDeleteSubjectCascadesSessions(t *testing.T) {
	repo := newSeededRepo()

	if !repo.DeleteSubject("1") {
		t.Fatal("expected subject to be found")
	}

	if repo.GetSubject("1") != nil {
		t.Error("subject still present after delete")
	}
	for _, s := range repo.ListSessions() {
		if s.SubjectID == "1" {
			t.Errorf("session %s still references deleted subject", s.ID)
		}
	}
	if got := len(repo.ListSessions()); got != 7 {
		t.Errorf("expected 7 remaining sessions, got %d", got)
	}

	if repo.DeleteSubject("1") {
		t.Error("second delete should report not found")
	}
}

func TestCompleteSession(t *testing.T) {
	repo := newSeededRepo()

	session := repo.CompleteSession("3", 91)
	if session == nil {
		t.Fatal("expected session")
	}
	if session.Status != models.StatusCompleted {
		t.Errorf("Status = %v, want completed", session.Status)
	}
	if session.Score == nil || *session.Score != 91 {
		t.Errorf("Score = %v, want 91", session.Score)
	}

	stored := repo.GetSession("3")
	if stored == nil || stored.Score == nil || *stored.Score != 91 {
		t.Errorf("stored session not updated: %+v", stored)
	}

	if repo.CompleteSession("missing", 50) != nil {
		t.Error("expected nil for missing session")
	}
}

func TestListSessionsReturnsCopies(t *testing.T) {
	repo := newSeededRepo()

	sessions := repo.ListSessions()
	*sessions[0].Score = 0
	sessions[0].Status = models.StatusSkipped

	stored := repo.GetSession(sessions[0].ID)
	if *stored.Score != 78 || stored.Status != models.StatusCompleted {
		t.Errorf("caller mutation leaked into repository: %+v", stored)
	}
}

func TestReplaceSessionsAndReset(t *testing.T) {
	repo := newSeededRepo()

	repo.ReplaceSessions([]models.StudySession{{ID: "x", SubjectID: "1"}})
	if got := repo.ListSessions(); len(got) != 1 || got[0].ID != "x" {
		t.Fatalf("ReplaceSessions did not replace list: %+v", got)
	}

	repo.Reset()
	if len(repo.ListSubjects()) != 0 || len(repo.ListSessions()) != 0 {
		t.Error("Reset left data behind")
	}
}

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository()
	if repo.Current() != nil {
		t.Fatal("expected nobody signed in")
	}
	if repo.UpdateName("Sam") != nil {
		t.Error("UpdateName should be nil when signed out")
	}

	repo.Set(MockUser)
	updated := repo.UpdateName("Sam Lee")
	if updated == nil || updated.Name != "Sam Lee" {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if MockUser.Name != "Alex Chen" {
		t.Error("UpdateName mutated MockUser")
	}

	repo.Clear()
	if repo.Current() != nil {
		t.Error("Clear did not sign out")
	}
}
