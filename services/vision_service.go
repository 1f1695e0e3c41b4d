package services

import (
	"context"
	"math/rand"
	"strings"
)

// VisionResult is what an external recognition call hands back: the full
// detected text plus the image labels, both lowercased by the capability.
type VisionResult struct {
	Text   string
	Labels []string
}

// VisionCapability is an external image-recognition call. A nil capability
// or any returned error sends identification straight to the random fallback.
type VisionCapability interface {
	Recognize(ctx context.Context, image []byte) (*VisionResult, error)
}

type drinkKeyword struct {
	keyword string
	name    string
}

// drinkKeywords maps text fragments to canonical drink names. Scanned in
// order; first substring hit wins, so brand names sit above generic terms.
var drinkKeywords = []drinkKeyword{
	{"coca cola", "Coca Cola"},
	{"coke", "Coca Cola"},
	{"pepsi", "Pepsi"},
	{"sprite", "Sprite"},
	{"fanta", "Fanta"},
	{"orange juice", "Orange Juice"},
	{"apple juice", "Apple Juice"},
	{"coffee", "Coffee"},
	{"tea", "Tea"},
	{"water", "Water"},
	{"beer", "Beer"},
	{"wine", "Wine"},
	{"energy drink", "Energy Drink"},
	{"red bull", "Red Bull"},
	{"monster", "Monster Energy"},
	{"sports drink", "Sports Drink"},
	{"gatorade", "Gatorade"},
	{"powerade", "Powerade"},
}

// genericDrinkTerms are label fragments that say "this is some beverage"
// without saying which.
var genericDrinkTerms = []string{
	"beverage", "drink", "juice", "soda", "coffee", "tea", "water", "beer", "wine",
}

// fallbackDrinks is the uniform random pool used when recognition is
// unavailable or inconclusive.
var fallbackDrinks = []string{
	"Orange Juice", "Apple Juice", "Coca Cola", "Pepsi", "Water",
	"Coffee", "Tea", "Energy Drink", "Sports Drink", "Beer",
}

// VisionService identifies a drink from raw image bytes. Identification
// never fails; with no external capability the result is a random member of
// fallbackDrinks, so identical inputs may produce different outputs in that
// mode.
type VisionService struct {
	capability VisionCapability
	rng        *rand.Rand
}

func NewVisionService(capability VisionCapability, rng *rand.Rand) *VisionService {
	return &VisionService{capability: capability, rng: rng}
}

func (s *VisionService) Identify(ctx context.Context, image []byte) string {
	if s.capability == nil {
		return s.fallbackPrediction()
	}
	res, err := s.capability.Recognize(ctx, image)
	if err != nil {
		return s.fallbackPrediction()
	}
	if name := extractDrinkName(strings.ToLower(res.Text), res.Labels); name != "" {
		return name
	}
	return s.fallbackPrediction()
}

// extractDrinkName maps detected text and labels to a canonical drink name,
// or "" when nothing matches.
func extractDrinkName(text string, labels []string) string {
	for _, kw := range drinkKeywords {
		if strings.Contains(text, kw.keyword) {
			return kw.name
		}
	}

	// No brand hit: look for a generic beverage label, then try to refine
	// from context.
	for _, label := range labels {
		generic := false
		for _, term := range genericDrinkTerms {
			if strings.Contains(label, term) {
				generic = true
				break
			}
		}
		if !generic {
			continue
		}
		switch {
		case strings.Contains(text, "orange") || containsLabel(labels, "orange"):
			return "Orange Juice"
		case strings.Contains(text, "apple") || containsLabel(labels, "apple"):
			return "Apple Juice"
		case strings.Contains(label, "coffee"):
			return "Coffee"
		case strings.Contains(label, "tea"):
			return "Tea"
		}
	}

	return ""
}

func containsLabel(labels []string, want string) bool {
	for _, l := range labels {
		if l == want {
			return true
		}
	}
	return false
}

func (s *VisionService) fallbackPrediction() string {
	return fallbackDrinks[s.rng.Intn(len(fallbackDrinks))]
}

// Available reports whether the external recognition capability is configured.
func (s *VisionService) Available() bool { return s.capability != nil }
