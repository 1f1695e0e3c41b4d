package services

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/Invisible042/sip-smart-scan/models"
)

// TipCapability is an external generative text call. Failures are swallowed
// by the caller in favor of the local template tables.
type TipCapability interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Tip categories, evaluated in strict order by categorizeDrink.
const (
	categoryHighSugar    = "high_sugar"
	categoryHighCaffeine = "high_caffeine"
	categoryHighCalories = "high_calories"
	categoryHealthy      = "healthy"
	categoryModerate     = "moderate"
)

var healthTips = map[string][]string{
	categoryHighSugar: {
		"This drink is high in sugar. Consider limiting to occasional treats to maintain stable blood sugar levels.",
		"High sugar content detected. Try diluting with water or choosing sugar-free alternatives.",
		"Sweet drinks can lead to energy crashes. Consider pairing with protein for better energy balance.",
	},
	categoryHighCaffeine: {
		"High caffeine content. Avoid drinking late in the day to prevent sleep disruption.",
		"This drink contains significant caffeine. Monitor your total daily intake to stay under 400mg.",
		"Caffeine can be dehydrating. Make sure to drink extra water throughout the day.",
	},
	categoryHighCalories: {
		"This drink is calorie-dense. Consider it as part of your daily caloric intake rather than extra.",
		"High-calorie beverages can contribute to weight gain. Try smaller portions or lower-calorie alternatives.",
		"Liquid calories add up quickly. Consider whether you're getting nutritional value for these calories.",
	},
	categoryHealthy: {
		"Great choice! This drink provides hydration with minimal added sugars.",
		"This is a nutritious option that supports your daily fluid and nutrient needs.",
		"Excellent selection for maintaining good health and energy levels.",
	},
	categoryModerate: {
		"This drink is okay in moderation. Balance it with water and nutrient-dense foods.",
		"Not bad as an occasional treat. Consider the timing and portion size.",
		"Moderate choice - enjoy mindfully and consider your overall daily nutrition.",
	},
}

// HealthTipService produces one advisory sentence per analyzed drink.
// Generation never fails: the AI capability is optional and every failure
// lands on the categorized template tables.
type HealthTipService struct {
	capability TipCapability
	rng        *rand.Rand
}

func NewHealthTipService(capability TipCapability, rng *rand.Rand) *HealthTipService {
	return &HealthTipService{capability: capability, rng: rng}
}

func (s *HealthTipService) Generate(ctx context.Context, drinkName string, nutrition models.NutritionRecord) string {
	if s.capability != nil {
		if tip, err := s.capability.Generate(ctx, tipPrompt(drinkName, nutrition)); err == nil && tip != "" {
			return tip
		}
	}
	return s.fallbackTip(nutrition)
}

func (s *HealthTipService) fallbackTip(nutrition models.NutritionRecord) string {
	tips, ok := healthTips[categorizeDrink(nutrition)]
	if !ok {
		tips = healthTips[categoryModerate]
	}
	return tips[s.rng.Intn(len(tips))]
}

// categorizeDrink buckets a drink by its nutrition. Order matters: the sugar
// check runs before the healthy check, so a 25g-sugar 10-kcal drink is
// high_sugar, not healthy.
func categorizeDrink(n models.NutritionRecord) string {
	if n.SugarG > 20 {
		return categoryHighSugar
	}
	if n.CaffeineMg > 80 {
		return categoryHighCaffeine
	}
	if n.Calories > 150 {
		return categoryHighCalories
	}
	if n.SugarG < 5 && n.Calories < 50 {
		return categoryHealthy
	}
	return categoryModerate
}

func tipPrompt(drinkName string, n models.NutritionRecord) string {
	return fmt.Sprintf(
		"As a friendly nutritionist, provide a short, positive health tip (max 2 sentences) for someone who just consumed %s.\n\n"+
			"Nutrition facts:\n- Calories: %g\n- Sugar: %gg\n- Caffeine: %gmg\n- Sodium: %gmg\n\n"+
			"Make the tip practical, encouraging, and focused on balance rather than restriction.",
		drinkName, n.Calories, n.SugarG, n.CaffeineMg, n.SodiumMg,
	)
}

// Available reports whether tip generation can serve requests. It always
// can, because of the template fallback.
func (s *HealthTipService) Available() bool { return true }
