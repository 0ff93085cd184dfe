package store

import (
	"testing"

	"pathfinder/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("newTestStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func createTestUser(t *testing.T, s *Store, email string) int64 {
	t.Helper()
	id, err := s.CreateUser(model.User{
		Email:        email,
		Name:         "Test User",
		PasswordHash: "$2a$10$fakehashfortesting",
	})
	if err != nil {
		t.Fatalf("createTestUser: %v", err)
	}
	return id
}

func TestUserCRUD(t *testing.T) {
	s := newTestStore(t)

	count, err := s.UserCount()
	if err != nil {
		t.Fatalf("UserCount: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 users, got %d", count)
	}

	id := createTestUser(t, s, "ada@example.com")

	u, err := s.GetUserByEmail("ada@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if u == nil {
		t.Fatal("expected user, got nil")
	}
	if u.ID != id {
		t.Errorf("expected id %d, got %d", id, u.ID)
	}
	if u.TestsTaken != 0 {
		t.Errorf("expected 0 tests taken, got %d", u.TestsTaken)
	}

	// Lookup is case-insensitive.
	u2, err := s.GetUserByEmail("ADA@Example.COM")
	if err != nil {
		t.Fatalf("GetUserByEmail upper: %v", err)
	}
	if u2 == nil || u2.ID != id {
		t.Error("email lookup should be case-insensitive")
	}

	// Missing user is nil, nil.
	missing, err := s.GetUserByEmail("nobody@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing user")
	}

	byID, err := s.GetUserByID(id)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if byID == nil || byID.Email != "ada@example.com" {
		t.Errorf("GetUserByID returned %+v", byID)
	}
}

func TestIncrementTestCount(t *testing.T) {
	s := newTestStore(t)
	id := createTestUser(t, s, "ada@example.com")

	for i := 0; i < 3; i++ {
		if err := s.IncrementTestCount(id); err != nil {
			t.Fatalf("IncrementTestCount: %v", err)
		}
	}
	u, err := s.GetUserByID(id)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if u.TestsTaken != 3 {
		t.Errorf("expected 3 tests taken, got %d", u.TestsTaken)
	}
}

func TestUpdateSubscription(t *testing.T) {
	s := newTestStore(t)
	id := createTestUser(t, s, "ada@example.com")

	if err := s.UpdateSubscription(id, "premium", "active"); err != nil {
		t.Fatalf("UpdateSubscription: %v", err)
	}
	u, err := s.GetUserByID(id)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if u.Tier != "premium" || u.TierStatus != "active" {
		t.Errorf("expected premium/active, got %s/%s", u.Tier, u.TierStatus)
	}
}

func TestAuthSessionLifecycle(t *testing.T) {
	s := newTestStore(t)
	id := createTestUser(t, s, "ada@example.com")

	token, err := s.CreateAuthSession(id)
	if err != nil {
		t.Fatalf("CreateAuthSession: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	sess, err := s.GetAuthSession(token)
	if err != nil {
		t.Fatalf("GetAuthSession: %v", err)
	}
	if sess == nil || sess.UserID != id {
		t.Fatalf("expected session for user %d, got %+v", id, sess)
	}

	if err := s.DeleteAuthSession(token); err != nil {
		t.Fatalf("DeleteAuthSession: %v", err)
	}
	sess, err = s.GetAuthSession(token)
	if err != nil {
		t.Fatalf("GetAuthSession after delete: %v", err)
	}
	if sess != nil {
		t.Error("expected nil session after delete")
	}

	// Unknown token is nil, nil.
	sess, err = s.GetAuthSession("no-such-token")
	if err != nil {
		t.Fatalf("GetAuthSession unknown: %v", err)
	}
	if sess != nil {
		t.Error("expected nil session for unknown token")
	}
}

func TestResultsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	id := createTestUser(t, s, "ada@example.com")

	analysis := model.FullAnalysis{
		Archetype: model.ArchetypeSummary{Name: "The Architect", Description: "Strategic."},
		Strengths: []model.Trait{{Name: "Planning", Description: "Long-range thinking."}},
		GrowthAreas: []model.Trait{
			{Name: "Delegation", Description: "Letting go of control."},
		},
		Suggestions: []model.CareerSuggestion{{
			Career:         "Systems Engineer",
			Description:    "Designs complex systems.",
			Reasoning:      "Fits INTJ traits.",
			RequiredSkills: []string{"analysis", "modeling"},
		}},
	}

	if _, err := s.SaveResult(id, "The Architect", analysis); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}
	if _, err := s.SaveResult(id, "The Architect", analysis); err != nil {
		t.Fatalf("SaveResult second: %v", err)
	}

	results, err := s.ListResults(id)
	if err != nil {
		t.Fatalf("ListResults: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	got := results[0]
	if got.Archetype != "The Architect" {
		t.Errorf("archetype = %q", got.Archetype)
	}
	if len(got.Analysis.Suggestions) != 1 || got.Analysis.Suggestions[0].Career != "Systems Engineer" {
		t.Errorf("analysis did not survive round trip: %+v", got.Analysis)
	}

	count, err := s.ResultCount()
	if err != nil {
		t.Fatalf("ResultCount: %v", err)
	}
	if count != 2 {
		t.Errorf("expected count 2, got %d", count)
	}
}

func TestEvents(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 2; i++ {
		if err := s.RecordEvent("quiz_started", "anon:abc"); err != nil {
			t.Fatalf("RecordEvent: %v", err)
		}
	}
	if err := s.RecordEvent("quiz_completed", "anon:abc"); err != nil {
		t.Fatalf("RecordEvent: %v", err)
	}

	counts, err := s.EventCounts()
	if err != nil {
		t.Fatalf("EventCounts: %v", err)
	}
	if counts["quiz_started"] != 2 || counts["quiz_completed"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestExportAll(t *testing.T) {
	s := newTestStore(t)
	id := createTestUser(t, s, "ada@example.com")

	analysis := model.FullAnalysis{Archetype: model.ArchetypeSummary{Name: "The Mediator"}}
	if _, err := s.SaveResult(id, "The Mediator", analysis); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}
	if err := s.RecordEvent("quiz_completed", "user:1"); err != nil {
		t.Fatalf("RecordEvent: %v", err)
	}

	export, err := s.ExportAll()
	if err != nil {
		t.Fatalf("ExportAll: %v", err)
	}
	if export.NumUsers != 1 || export.NumResults != 1 {
		t.Errorf("export counts = %d users, %d results", export.NumUsers, export.NumResults)
	}
	if len(export.Results) != 1 || export.Results[0].Email != "ada@example.com" {
		t.Errorf("export results = %+v", export.Results)
	}
	if export.Events["quiz_completed"] != 1 {
		t.Errorf("export events = %v", export.Events)
	}
}
