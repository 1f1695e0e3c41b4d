package models

// NutritionRecord is the flattened nutrition snapshot for a single drink
// serving. Values are per serving and non-negative by convention; nothing
// upstream enforces it.
type NutritionRecord struct {
	Calories   float64 `json:"calories"`
	SugarG     float64 `json:"sugar_g"`
	CaffeineMg float64 `json:"caffeine_mg"`
	WaterMl    float64 `json:"water_ml"`
	SodiumMg   float64 `json:"sodium_mg"`
	CarbsG     float64 `json:"carbs_g"`
	ProteinG   float64 `json:"protein_g"`
}
