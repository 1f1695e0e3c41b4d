package services

import (
	"strings"

	"github.com/Invisible042/sip-smart-scan/models"
)

// NutritionCapability is an external nutrition lookup. A nil capability or
// any returned error simply drops the resolver through to the local table.
type NutritionCapability interface {
	Lookup(drinkName string) (*models.NutritionRecord, error)
}

type drinkNutrition struct {
	name   string
	record models.NutritionRecord
}

// nutritionTable is the fixed local database of common drinks. It is an
// ordered slice, not a map: the fuzzy fallback takes the FIRST substring
// match in table order, and that order has to be stable across runs.
var nutritionTable = []drinkNutrition{
	{"Coca Cola", models.NutritionRecord{Calories: 140, SugarG: 39, CaffeineMg: 34, WaterMl: 330, SodiumMg: 45, CarbsG: 39}},
	{"Pepsi", models.NutritionRecord{Calories: 150, SugarG: 41, CaffeineMg: 38, WaterMl: 330, SodiumMg: 30, CarbsG: 41}},
	{"Sprite", models.NutritionRecord{Calories: 140, SugarG: 38, CaffeineMg: 0, WaterMl: 330, SodiumMg: 65, CarbsG: 38}},
	{"Fanta", models.NutritionRecord{Calories: 160, SugarG: 44, CaffeineMg: 0, WaterMl: 330, SodiumMg: 45, CarbsG: 44}},
	{"Orange Juice", models.NutritionRecord{Calories: 110, SugarG: 22, CaffeineMg: 0, WaterMl: 240, SodiumMg: 2, CarbsG: 26, ProteinG: 2}},
	{"Apple Juice", models.NutritionRecord{Calories: 114, SugarG: 24, CaffeineMg: 0, WaterMl: 240, SodiumMg: 10, CarbsG: 28, ProteinG: 0.2}},
	{"Coffee", models.NutritionRecord{Calories: 5, SugarG: 0, CaffeineMg: 95, WaterMl: 240, SodiumMg: 5, CarbsG: 1, ProteinG: 0.3}},
	{"Tea", models.NutritionRecord{Calories: 2, SugarG: 0, CaffeineMg: 47, WaterMl: 240, SodiumMg: 7, CarbsG: 0.7}},
	{"Water", models.NutritionRecord{WaterMl: 500}},
	{"Beer", models.NutritionRecord{Calories: 154, SugarG: 0, CaffeineMg: 0, WaterMl: 355, SodiumMg: 14, CarbsG: 13, ProteinG: 1.6}},
	{"Wine", models.NutritionRecord{Calories: 125, SugarG: 1, CaffeineMg: 0, WaterMl: 147, SodiumMg: 6, CarbsG: 4, ProteinG: 0.1}},
	{"Red Bull", models.NutritionRecord{Calories: 110, SugarG: 27, CaffeineMg: 80, WaterMl: 250, SodiumMg: 105, CarbsG: 28}},
	{"Monster Energy", models.NutritionRecord{Calories: 210, SugarG: 54, CaffeineMg: 160, WaterMl: 473, SodiumMg: 370, CarbsG: 54}},
	{"Gatorade", models.NutritionRecord{Calories: 80, SugarG: 21, CaffeineMg: 0, WaterMl: 355, SodiumMg: 160, CarbsG: 21}},
	{"Powerade", models.NutritionRecord{Calories: 80, SugarG: 21, CaffeineMg: 0, WaterMl: 355, SodiumMg: 150, CarbsG: 21}},
	{"Energy Drink", models.NutritionRecord{Calories: 160, SugarG: 40, CaffeineMg: 120, WaterMl: 330, SodiumMg: 200, CarbsG: 42}},
	{"Sports Drink", models.NutritionRecord{Calories: 80, SugarG: 21, CaffeineMg: 0, WaterMl: 355, SodiumMg: 155, CarbsG: 21}},
}

// defaultNutrition is returned for drinks nothing else can place.
var defaultNutrition = models.NutritionRecord{
	Calories: 100, SugarG: 25, CaffeineMg: 0, WaterMl: 250,
	SodiumMg: 10, CarbsG: 25, ProteinG: 0,
}

// NutritionService resolves a drink name to a nutrition record. Resolution
// never fails: external lookup, then exact table match, then fuzzy substring
// match, then fixed defaults.
type NutritionService struct {
	external NutritionCapability
}

func NewNutritionService(external NutritionCapability) *NutritionService {
	return &NutritionService{external: external}
}

func (s *NutritionService) Resolve(drinkName string) models.NutritionRecord {
	if s.external != nil {
		if rec, err := s.external.Lookup(drinkName); err == nil && rec != nil {
			return *rec
		}
		// external failures fall through to the local table
	}
	return s.resolveLocal(drinkName)
}

func (s *NutritionService) resolveLocal(drinkName string) models.NutritionRecord {
	for _, d := range nutritionTable {
		if d.name == drinkName {
			return d.record
		}
	}

	// Fuzzy pass: case-insensitive substring match in either direction,
	// first table entry wins. Deliberately not a best-match score.
	lower := strings.ToLower(drinkName)
	for _, d := range nutritionTable {
		key := strings.ToLower(d.name)
		if strings.Contains(lower, key) || strings.Contains(key, lower) {
			return d.record
		}
	}

	return defaultNutrition
}

// Available reports whether nutrition resolution can serve requests.
// It always can, because of the local fallback table.
func (s *NutritionService) Available() bool { return true }
