package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Invisible042/sip-smart-scan/models"
	"github.com/Invisible042/sip-smart-scan/storage"
)

const dateLayout = "2006-01-02"

// DrinkHistoryService is the append-only consumption log plus its derived
// views: today's totals, trailing-week statistics, and health insights.
type DrinkHistoryService struct {
	events storage.EventStore
}

func NewDrinkHistoryService(events storage.EventStore) *DrinkHistoryService {
	return &DrinkHistoryService{events: events}
}

// Add appends one consumption event, stamped with the current instant and
// the server-local calendar date. Events are never mutated afterwards.
func (s *DrinkHistoryService) Add(userID, drinkName string, n models.NutritionRecord, healthTip, imageURL string) (*models.DrinkEvent, error) {
	now := time.Now()
	event := models.DrinkEvent{
		ID:         uuid.NewString(),
		Name:       drinkName,
		Calories:   n.Calories,
		SugarG:     n.SugarG,
		CaffeineMg: n.CaffeineMg,
		WaterMl:    n.WaterMl,
		SodiumMg:   n.SodiumMg,
		CarbsG:     n.CarbsG,
		ProteinG:   n.ProteinG,
		HealthTip:  healthTip,
		ImageURL:   imageURL,
		Timestamp:  now,
		Date:       now.Format(dateLayout),
	}
	if err := s.events.Append(userID, event); err != nil {
		return nil, err
	}
	return &event, nil
}

// List returns the user's events newest first. limit <= 0 means no cap.
func (s *DrinkHistoryService) List(userID string, limit int) ([]models.DrinkEvent, error) {
	events, err := s.events.List(userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

// Today filters the log to events logged on the current calendar date.
func (s *DrinkHistoryService) Today(userID string) ([]models.DrinkEvent, error) {
	return s.byDate(userID, time.Now().Format(dateLayout))
}

// Yesterday filters the log to the previous calendar date.
func (s *DrinkHistoryService) Yesterday(userID string) ([]models.DrinkEvent, error) {
	return s.byDate(userID, time.Now().AddDate(0, 0, -1).Format(dateLayout))
}

func (s *DrinkHistoryService) byDate(userID, date string) ([]models.DrinkEvent, error) {
	events, err := s.events.List(userID)
	if err != nil {
		return nil, err
	}
	out := make([]models.DrinkEvent, 0)
	for _, e := range events {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

type DailyTotals struct {
	Calories   float64             `json:"calories"`
	SugarG     float64             `json:"sugar_g"`
	CaffeineMg float64             `json:"caffeine_mg"`
	WaterMl    float64             `json:"water_ml"`
	DrinkCount int                 `json:"drink_count"`
	Drinks     []models.DrinkEvent `json:"drinks"`
}

// DailyTotals sums today's events for the dashboard strip.
func (s *DrinkHistoryService) DailyTotals(userID string) (*DailyTotals, error) {
	today, err := s.Today(userID)
	if err != nil {
		return nil, err
	}

	totals := &DailyTotals{Drinks: today, DrinkCount: len(today)}
	for _, e := range today {
		n := e.Nutrition()
		totals.Calories += n.Calories
		totals.SugarG += n.SugarG
		totals.CaffeineMg += n.CaffeineMg
		totals.WaterMl += n.WaterMl
	}
	return totals, nil
}

type WeeklyStats struct {
	TotalDrinks       int            `json:"total_drinks"`
	TotalCalories     float64        `json:"total_calories"`
	TotalSugarG       float64        `json:"total_sugar_g"`
	TotalCaffeineMg   float64        `json:"total_caffeine_mg"`
	TotalWaterMl      float64        `json:"total_water_ml"`
	AvgCaloriesPerDay float64        `json:"avg_calories_per_day"`
	AvgDrinksPerDay   float64        `json:"avg_drinks_per_day"`
	MostConsumedDrink string         `json:"most_consumed_drink"`
	MostConsumedCount int            `json:"most_consumed_count"`
	DrinkBreakdown    map[string]int `json:"drink_breakdown"`
	Period            string         `json:"period"`
}

// WeeklyStats aggregates the trailing 7-day window, today inclusive.
// Averages divide by the fixed window length, so an empty window yields
// zeros rather than a division error.
func (s *DrinkHistoryService) WeeklyStats(userID string) (*WeeklyStats, error) {
	end := dayStart(time.Now())
	start := end.AddDate(0, 0, -7)

	events, err := s.events.List(userID)
	if err != nil {
		return nil, err
	}

	stats := &WeeklyStats{
		DrinkBreakdown:    make(map[string]int),
		MostConsumedDrink: "None",
		Period:            fmt.Sprintf("%s to %s", start.Format(dateLayout), end.Format(dateLayout)),
	}

	// Most-consumed ties break toward the name first inserted into the
	// histogram, so track insertion order explicitly; map iteration won't do.
	var order []string
	for _, e := range events {
		d, err := time.ParseInLocation(dateLayout, e.Date, time.Local)
		if err != nil || d.Before(start) || d.After(end) {
			continue
		}
		n := e.Nutrition()
		stats.TotalDrinks++
		stats.TotalCalories += n.Calories
		stats.TotalSugarG += n.SugarG
		stats.TotalCaffeineMg += n.CaffeineMg
		stats.TotalWaterMl += n.WaterMl

		if _, seen := stats.DrinkBreakdown[e.Name]; !seen {
			order = append(order, e.Name)
		}
		stats.DrinkBreakdown[e.Name]++
	}

	best, bestCount := "None", 0
	for _, name := range order {
		if stats.DrinkBreakdown[name] > bestCount {
			best, bestCount = name, stats.DrinkBreakdown[name]
		}
	}
	stats.MostConsumedDrink = best
	stats.MostConsumedCount = bestCount

	stats.AvgCaloriesPerDay = stats.TotalCalories / 7
	stats.AvgDrinksPerDay = float64(stats.TotalDrinks) / 7

	return stats, nil
}

// Delete removes one event by id. The bool reports whether it existed, so a
// retried delete comes back not-found instead of erroring.
func (s *DrinkHistoryService) Delete(userID, eventID string) (bool, error) {
	return s.events.Delete(userID, eventID)
}

// Insights runs the independent threshold checks, in fixed order, over
// today's totals and the weekly window. All that apply are reported; when
// none do, a single positive message is.
func (s *DrinkHistoryService) Insights(userID string) ([]string, error) {
	totals, err := s.DailyTotals(userID)
	if err != nil {
		return nil, err
	}
	weekly, err := s.WeeklyStats(userID)
	if err != nil {
		return nil, err
	}

	insights := make([]string, 0)
	if totals.SugarG > 50 {
		insights = append(insights, fmt.Sprintf(
			"You've consumed %.1fg of sugar today, which exceeds the recommended daily limit.", totals.SugarG))
	}
	if totals.CaffeineMg > 400 {
		insights = append(insights, fmt.Sprintf(
			"Your caffeine intake (%.0fmg) is above the recommended daily limit of 400mg.", totals.CaffeineMg))
	}
	if totals.WaterMl < 1000 {
		insights = append(insights, "Consider drinking more water to stay properly hydrated throughout the day.")
	}
	if weekly.AvgDrinksPerDay > 5 {
		insights = append(insights, "You're averaging more than 5 drinks per day. Consider moderating your intake.")
	}
	if len(insights) == 0 {
		insights = append(insights, "Great job maintaining a balanced drinking pattern!")
	}
	return insights, nil
}
