package models

import "time"

// DrinkEvent is one logged consumption. Events are immutable once created;
// the history store only appends and deletes them. Date is the server-local
// calendar day ("2006-01-02") the event was logged in.
type DrinkEvent struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Calories   float64   `json:"calories"`
	SugarG     float64   `json:"sugar_g"`
	CaffeineMg float64   `json:"caffeine_mg"`
	WaterMl    float64   `json:"water_ml"`
	SodiumMg   float64   `json:"sodium_mg"`
	CarbsG     float64   `json:"carbs_g"`
	ProteinG   float64   `json:"protein_g"`
	HealthTip  string    `json:"health_tip"`
	ImageURL   string    `json:"image_url,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Date       string    `json:"date"`
}

// Nutrition reassembles the event's flattened nutrition snapshot.
func (e DrinkEvent) Nutrition() NutritionRecord {
	return NutritionRecord{
		Calories:   e.Calories,
		SugarG:     e.SugarG,
		CaffeineMg: e.CaffeineMg,
		WaterMl:    e.WaterMl,
		SodiumMg:   e.SodiumMg,
		CarbsG:     e.CarbsG,
		ProteinG:   e.ProteinG,
	}
}
