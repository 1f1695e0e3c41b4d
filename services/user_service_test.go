package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Invisible042/sip-smart-scan/models"
	"github.com/Invisible042/sip-smart-scan/storage"
)

func newTestUserService() (*UserService, *storage.MemoryStore) {
	ms := storage.NewMemoryStore()
	return NewUserService(ms), ms
}

func goalByType(goals []models.DailyGoal, t models.GoalType) *models.DailyGoal {
	for i := range goals {
		if goals[i].Type == t {
			return &goals[i]
		}
	}
	return nil
}

func TestDefaultProfile(t *testing.T) {
	svc, _ := newTestUserService()

	p, err := svc.GetProfile("alice")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if len(p.DailyGoals) != 3 {
		t.Fatalf("expected 3 default goals, got %d", len(p.DailyGoals))
	}
	if g := goalByType(p.DailyGoals, models.GoalCalories); g == nil || g.Target != 2000 {
		t.Errorf("missing or wrong default calories goal: %+v", g)
	}
	if g := goalByType(p.DailyGoals, models.GoalWater); g == nil || g.Target != 2000 {
		t.Errorf("missing or wrong default water goal: %+v", g)
	}
	if g := goalByType(p.DailyGoals, models.GoalSugar); g == nil || g.Target != 50 {
		t.Errorf("missing or wrong default sugar goal: %+v", g)
	}
	if !p.Notifications.DailyReminders || p.Notifications.ReminderTime != "09:00" {
		t.Errorf("unexpected default notification settings: %+v", p.Notifications)
	}
}

func TestApplyConsumption(t *testing.T) {
	svc, _ := newTestUserService()

	goals, err := svc.ApplyConsumption("bob", models.NutritionRecord{
		Calories: 140, SugarG: 39, CaffeineMg: 34, WaterMl: 330,
	})
	if err != nil {
		t.Fatalf("ApplyConsumption: %v", err)
	}
	if g := goalByType(goals, models.GoalCalories); g.Current != 140 {
		t.Errorf("calories current = %v, want 140", g.Current)
	}
	if g := goalByType(goals, models.GoalWater); g.Current != 330 {
		t.Errorf("water current = %v, want 330", g.Current)
	}
	if g := goalByType(goals, models.GoalSugar); g.Current != 39 {
		t.Errorf("sugar current = %v, want 39", g.Current)
	}
}

func TestDayRollover(t *testing.T) {
	svc, store := newTestUserService()

	// seed a profile last touched yesterday, calories goal nearly met
	p, err := svc.GetProfile("carol")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	for i := range p.DailyGoals {
		if p.DailyGoals[i].Type == models.GoalCalories {
			p.DailyGoals[i].Current = 1800
		}
	}
	p.UpdatedAt = time.Now().AddDate(0, 0, -1)
	if err := store.Put("carol", p); err != nil {
		t.Fatalf("Put: %v", err)
	}

	goals, err := svc.ApplyConsumption("carol", models.NutritionRecord{Calories: 100})
	if err != nil {
		t.Fatalf("ApplyConsumption: %v", err)
	}
	g := goalByType(goals, models.GoalCalories)
	if g.Current != 100 {
		t.Errorf("after rollover calories current = %v, want 100 (reset then accumulate)", g.Current)
	}
	if g.IsAchieved {
		t.Error("goal should not be achieved after rollover reset")
	}

	// same-day access must not reset again
	goals, err = svc.GetGoals("carol")
	if err != nil {
		t.Fatalf("GetGoals: %v", err)
	}
	if g := goalByType(goals, models.GoalCalories); g.Current != 100 {
		t.Errorf("same-day read reset progress: current = %v, want 100", g.Current)
	}
}

func TestAchievementTransition(t *testing.T) {
	svc, _ := newTestUserService()

	goals, err := svc.ApplyConsumption("dave", models.NutritionRecord{WaterMl: 1900})
	if err != nil {
		t.Fatalf("ApplyConsumption: %v", err)
	}
	if g := goalByType(goals, models.GoalWater); g.IsAchieved {
		t.Error("water goal achieved too early at 1900/2000")
	}

	goals, _ = svc.ApplyConsumption("dave", models.NutritionRecord{WaterMl: 240})
	g := goalByType(goals, models.GoalWater)
	if !g.IsAchieved {
		t.Error("water goal should be achieved at 2140/2000")
	}

	// further accumulation keeps the achieved state
	goals, _ = svc.ApplyConsumption("dave", models.NutritionRecord{WaterMl: 100})
	g = goalByType(goals, models.GoalWater)
	if !g.IsAchieved || g.Current != 2240 {
		t.Errorf("achieved state should stick: %+v", g)
	}
}

func TestGoalCRUD(t *testing.T) {
	svc, _ := newTestUserService()

	t.Run("create and list", func(t *testing.T) {
		created, err := svc.CreateGoal("erin", models.CreateDailyGoal{
			Name: "Caffeine Cap", Target: 300, Unit: "mg", Type: models.GoalCaffeine,
		})
		if err != nil {
			t.Fatalf("CreateGoal: %v", err)
		}
		goals, _ := svc.GetGoals("erin")
		if len(goals) != 4 {
			t.Fatalf("expected 4 goals after create, got %d", len(goals))
		}
		if created.ID == "" || created.IsAchieved {
			t.Errorf("unexpected created goal: %+v", created)
		}
	})

	t.Run("partial update re-evaluates achievement", func(t *testing.T) {
		goals, _ := svc.GetGoals("erin")
		id := goalByType(goals, models.GoalCaffeine).ID

		current := 350.0
		g, err := svc.UpdateGoal("erin", id, models.UpdateDailyGoal{Current: &current})
		if err != nil {
			t.Fatalf("UpdateGoal: %v", err)
		}
		if !g.IsAchieved {
			t.Errorf("350/300 should be achieved: %+v", g)
		}

		target := 400.0
		g, err = svc.UpdateGoal("erin", id, models.UpdateDailyGoal{Target: &target})
		if err != nil {
			t.Fatalf("UpdateGoal: %v", err)
		}
		if g.IsAchieved {
			t.Errorf("350/400 should not be achieved: %+v", g)
		}
	})

	t.Run("update of missing goal is NotFound", func(t *testing.T) {
		target := 1.0
		_, err := svc.UpdateGoal("erin", "no-such-id", models.UpdateDailyGoal{Target: &target})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		goals, _ := svc.GetGoals("erin")
		id := goalByType(goals, models.GoalCaffeine).ID
		if err := svc.DeleteGoal("erin", id); err != nil {
			t.Fatalf("DeleteGoal: %v", err)
		}
		if err := svc.DeleteGoal("erin", id); !errors.Is(err, ErrNotFound) {
			t.Errorf("second delete err = %v, want ErrNotFound", err)
		}
	})
}

func TestSettingsMerge(t *testing.T) {
	svc, _ := newTestUserService()

	t.Run("notifications apply only provided fields", func(t *testing.T) {
		off := false
		ns, err := svc.UpdateNotifications("frank", models.UpdateNotificationSettings{DailyReminders: &off})
		if err != nil {
			t.Fatalf("UpdateNotifications: %v", err)
		}
		if ns.DailyReminders {
			t.Error("daily_reminders should be off")
		}
		if !ns.GoalAchievements || ns.ReminderTime != "09:00" {
			t.Errorf("untouched fields changed: %+v", ns)
		}
	})

	t.Run("privacy merge", func(t *testing.T) {
		on := true
		ps, err := svc.UpdatePrivacySettings("frank", models.UpdatePrivacySettings{AnalyticsTracking: &on})
		if err != nil {
			t.Fatalf("UpdatePrivacySettings: %v", err)
		}
		if !ps.AnalyticsTracking || !ps.DataCollection {
			t.Errorf("unexpected privacy settings: %+v", ps)
		}
	})

	t.Run("health preferences recompute calorie target", func(t *testing.T) {
		age, weight, height := 30, 70.0, 175.0
		hp, err := svc.UpdateHealthPreferences("frank", models.UpdateHealthPreferences{
			Age: &age, Weight: &weight, Height: &height,
		})
		if err != nil {
			t.Fatalf("UpdateHealthPreferences: %v", err)
		}
		// Mifflin-St Jeor at moderate activity:
		// (10*70 + 6.25*175 - 5*30 + 5) * 1.55 = 2555.5625
		if hp.TargetCalories != 2555 {
			t.Errorf("target calories = %d, want 2555", hp.TargetCalories)
		}
	})
}

func TestUserStats(t *testing.T) {
	svc, _ := newTestUserService()

	stats, err := svc.GetUserStats("gina")
	if err != nil {
		t.Fatalf("GetUserStats: %v", err)
	}
	if stats.TotalGoals != 3 || stats.AchievedGoals != 0 || stats.AchievementRate != 0 {
		t.Errorf("unexpected fresh stats: %+v", stats)
	}

	if _, err := svc.ApplyConsumption("gina", models.NutritionRecord{WaterMl: 2500}); err != nil {
		t.Fatalf("ApplyConsumption: %v", err)
	}
	stats, _ = svc.GetUserStats("gina")
	if stats.AchievedGoals != 1 {
		t.Errorf("achieved goals = %d, want 1", stats.AchievedGoals)
	}
}
