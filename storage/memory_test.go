package storage

import (
	"testing"
	"time"

	"github.com/Invisible042/sip-smart-scan/models"
)

func TestMemoryProfileRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	got, err := store.Get("alice")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil profile for unknown user, got %+v", got)
	}

	profile := &models.UserProfile{
		UserID:            "alice",
		DailyGoals:        []models.DailyGoal{{ID: "g1", Name: "Water Intake", Target: 2000, Unit: "ml", Type: models.GoalWater}},
		Notifications:     models.DefaultNotificationSettings(),
		HealthPreferences: models.DefaultHealthPreferences(),
		PrivacySettings:   models.DefaultPrivacySettings(),
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	if err := store.Put("alice", profile); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err = store.Get("alice")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.UserID != "alice" || len(got.DailyGoals) != 1 {
		t.Fatalf("unexpected profile: %+v", got)
	}

	// the store holds its own copy: mutating what came back must not leak in
	got.DailyGoals[0].Current = 999
	again, _ := store.Get("alice")
	if again.DailyGoals[0].Current != 0 {
		t.Errorf("store shares memory with caller, current = %v", again.DailyGoals[0].Current)
	}
}

func TestMemoryEvents(t *testing.T) {
	store := NewMemoryStore()

	if err := store.Append("bob", models.DrinkEvent{ID: "e1", Name: "Coffee"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	store.Append("bob", models.DrinkEvent{ID: "e2", Name: "Tea"})
	store.Append("carol", models.DrinkEvent{ID: "e3", Name: "Water"})

	events, err := store.List("bob")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(events) != 2 || events[0].ID != "e1" || events[1].ID != "e2" {
		t.Fatalf("expected insertion order [e1 e2], got %+v", events)
	}

	// users are isolated from each other
	other, _ := store.List("carol")
	if len(other) != 1 || other[0].ID != "e3" {
		t.Errorf("carol's events = %+v", other)
	}

	found, err := store.Delete("bob", "e1")
	if err != nil || !found {
		t.Fatalf("Delete = (%v, %v), want (true, nil)", found, err)
	}
	found, _ = store.Delete("bob", "e1")
	if found {
		t.Error("second delete of same id should be not found")
	}
	events, _ = store.List("bob")
	if len(events) != 1 || events[0].ID != "e2" {
		t.Errorf("events after delete = %+v", events)
	}
}
