package services

import (
	"testing"
	"time"

	"github.com/Invisible042/sip-smart-scan/models"
	"github.com/Invisible042/sip-smart-scan/storage"
)

func newTestHistoryService() (*DrinkHistoryService, *storage.MemoryStore) {
	ms := storage.NewMemoryStore()
	return NewDrinkHistoryService(ms), ms
}

func TestAddAndList(t *testing.T) {
	svc, _ := newTestHistoryService()

	first, err := svc.Add("alice", "Coffee", models.NutritionRecord{Calories: 5, CaffeineMg: 95, WaterMl: 240}, "tip", "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if first.ID == "" || first.Date != time.Now().Format(dateLayout) {
		t.Errorf("unexpected event stamp: %+v", first)
	}

	if _, err := svc.Add("alice", "Tea", models.NutritionRecord{Calories: 2, WaterMl: 240}, "tip", ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	events, err := svc.List("alice", 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Name != "Tea" {
		t.Errorf("expected newest first, got %q first", events[0].Name)
	}

	limited, _ := svc.List("alice", 1)
	if len(limited) != 1 || limited[0].Name != "Tea" {
		t.Errorf("limit=1 should keep only the newest event, got %+v", limited)
	}
}

func TestDailyTotals(t *testing.T) {
	svc, _ := newTestHistoryService()

	svc.Add("bob", "Coca Cola", models.NutritionRecord{Calories: 140, SugarG: 39, CaffeineMg: 34, WaterMl: 330}, "tip", "")
	svc.Add("bob", "Water", models.NutritionRecord{WaterMl: 500}, "tip", "")

	totals, err := svc.DailyTotals("bob")
	if err != nil {
		t.Fatalf("DailyTotals: %v", err)
	}
	if totals.DrinkCount != 2 {
		t.Errorf("drink_count = %d, want 2", totals.DrinkCount)
	}
	if totals.Calories != 140 || totals.SugarG != 39 || totals.CaffeineMg != 34 || totals.WaterMl != 830 {
		t.Errorf("unexpected totals: %+v", totals)
	}
}

func TestWeeklyStats(t *testing.T) {
	t.Run("empty window yields zero averages", func(t *testing.T) {
		svc, _ := newTestHistoryService()
		stats, err := svc.WeeklyStats("nobody")
		if err != nil {
			t.Fatalf("WeeklyStats: %v", err)
		}
		if stats.AvgDrinksPerDay != 0 || stats.AvgCaloriesPerDay != 0 {
			t.Errorf("empty window should average 0, got %+v", stats)
		}
		if stats.MostConsumedDrink != "None" || stats.MostConsumedCount != 0 {
			t.Errorf("empty window most consumed = %q/%d, want None/0",
				stats.MostConsumedDrink, stats.MostConsumedCount)
		}
	})

	t.Run("sums, averages and histogram", func(t *testing.T) {
		svc, _ := newTestHistoryService()
		svc.Add("carol", "Coffee", models.NutritionRecord{Calories: 5}, "tip", "")
		svc.Add("carol", "Coffee", models.NutritionRecord{Calories: 5}, "tip", "")
		svc.Add("carol", "Tea", models.NutritionRecord{Calories: 2}, "tip", "")

		stats, err := svc.WeeklyStats("carol")
		if err != nil {
			t.Fatalf("WeeklyStats: %v", err)
		}
		if stats.TotalDrinks != 3 || stats.TotalCalories != 12 {
			t.Errorf("unexpected totals: %+v", stats)
		}
		if stats.AvgDrinksPerDay != 3.0/7 {
			t.Errorf("avg drinks/day = %v, want %v", stats.AvgDrinksPerDay, 3.0/7)
		}
		if stats.MostConsumedDrink != "Coffee" || stats.MostConsumedCount != 2 {
			t.Errorf("most consumed = %q/%d, want Coffee/2",
				stats.MostConsumedDrink, stats.MostConsumedCount)
		}
		if stats.DrinkBreakdown["Tea"] != 1 {
			t.Errorf("breakdown = %v", stats.DrinkBreakdown)
		}
	})

	t.Run("histogram tie breaks toward first insertion", func(t *testing.T) {
		svc, _ := newTestHistoryService()
		svc.Add("dave", "Tea", models.NutritionRecord{}, "tip", "")
		svc.Add("dave", "Coffee", models.NutritionRecord{}, "tip", "")
		svc.Add("dave", "Coffee", models.NutritionRecord{}, "tip", "")
		svc.Add("dave", "Tea", models.NutritionRecord{}, "tip", "")

		stats, _ := svc.WeeklyStats("dave")
		if stats.MostConsumedDrink != "Tea" {
			t.Errorf("tie should go to first-inserted name, got %q", stats.MostConsumedDrink)
		}
	})
}

func TestDeleteDrink(t *testing.T) {
	svc, _ := newTestHistoryService()

	e, _ := svc.Add("erin", "Water", models.NutritionRecord{WaterMl: 500}, "tip", "")
	svc.Add("erin", "Tea", models.NutritionRecord{WaterMl: 240}, "tip", "")

	t.Run("delete of unknown id is not-found and mutates nothing", func(t *testing.T) {
		found, err := svc.Delete("erin", "no-such-id")
		if err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if found {
			t.Error("unknown id should report not found")
		}
		events, _ := svc.List("erin", 0)
		if len(events) != 2 {
			t.Errorf("store mutated by failed delete, %d events left", len(events))
		}
	})

	t.Run("delete removes exactly one and retry is not-found", func(t *testing.T) {
		found, err := svc.Delete("erin", e.ID)
		if err != nil || !found {
			t.Fatalf("Delete = (%v, %v), want (true, nil)", found, err)
		}
		events, _ := svc.List("erin", 0)
		if len(events) != 1 {
			t.Fatalf("expected 1 event after delete, got %d", len(events))
		}

		found, err = svc.Delete("erin", e.ID)
		if err != nil || found {
			t.Errorf("second delete = (%v, %v), want (false, nil)", found, err)
		}
	})
}

func TestInsights(t *testing.T) {
	t.Run("threshold warnings in fixed order", func(t *testing.T) {
		svc, _ := newTestHistoryService()
		// 60g sugar and almost no water: sugar warning then hydration reminder
		svc.Add("frank", "Monster Energy", models.NutritionRecord{SugarG: 54, CaffeineMg: 160, WaterMl: 473}, "tip", "")
		svc.Add("frank", "Coca Cola", models.NutritionRecord{SugarG: 39, CaffeineMg: 34, WaterMl: 330}, "tip", "")

		insights, err := svc.Insights("frank")
		if err != nil {
			t.Fatalf("Insights: %v", err)
		}
		// sugar 93 > 50 warns; caffeine 194 and water 803 also out of line
		if len(insights) != 2 {
			t.Fatalf("expected 2 insights, got %d: %v", len(insights), insights)
		}
		if insights[0] != "You've consumed 93.0g of sugar today, which exceeds the recommended daily limit." {
			t.Errorf("first insight = %q", insights[0])
		}
		if insights[1] != "Consider drinking more water to stay properly hydrated throughout the day." {
			t.Errorf("second insight = %q", insights[1])
		}
	})

	t.Run("balanced day gets the single positive message", func(t *testing.T) {
		svc, _ := newTestHistoryService()
		svc.Add("gina", "Water", models.NutritionRecord{WaterMl: 500}, "tip", "")
		svc.Add("gina", "Water", models.NutritionRecord{WaterMl: 600}, "tip", "")

		insights, _ := svc.Insights("gina")
		if len(insights) != 1 || insights[0] != "Great job maintaining a balanced drinking pattern!" {
			t.Errorf("insights = %v, want single positive message", insights)
		}
	})
}
