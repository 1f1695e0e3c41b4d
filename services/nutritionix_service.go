package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/Invisible042/sip-smart-scan/models"
)

// NutritionixService talks to the Nutritionix natural-language nutrients
// endpoint. It satisfies NutritionCapability; callers treat every error as
// "try the local table instead".
type NutritionixService struct {
	appID   string
	appKey  string
	baseURL string
	client  *http.Client
}

// NewNutritionixService returns nil when credentials are not configured,
// which disables the external lookup entirely.
func NewNutritionixService() *NutritionixService {
	appID := os.Getenv("NUTRITIONIX_APP_ID")
	appKey := os.Getenv("NUTRITIONIX_APP_KEY")
	if appID == "" || appKey == "" {
		return nil
	}
	return &NutritionixService{
		appID:   appID,
		appKey:  appKey,
		baseURL: "https://trackapi.nutritionix.com/v2",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type nutrientsResponse struct {
	Foods []struct {
		NfCalories          float64 `json:"nf_calories"`
		NfSugars            float64 `json:"nf_sugars"`
		NfCaffeine          float64 `json:"nf_caffeine"`
		NfSodium            float64 `json:"nf_sodium"`
		NfTotalCarbohydrate float64 `json:"nf_total_carbohydrate"`
		NfProtein           float64 `json:"nf_protein"`
		ServingWeightGrams  float64 `json:"serving_weight_grams"`
	} `json:"foods"`
}

func (s *NutritionixService) Lookup(drinkName string) (*models.NutritionRecord, error) {
	payload := map[string]any{
		"query":        drinkName,
		"num_servings": 1,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal nutrients payload: %w", err)
	}

	req, err := http.NewRequest("POST", s.baseURL+"/natural/nutrients", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create nutrients request: %w", err)
	}
	req.Header.Set("x-app-id", s.appID)
	req.Header.Set("x-app-key", s.appKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Nutritionix API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Nutritionix response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nutritionix API error %d: %s", resp.StatusCode, string(body))
	}

	var nr nutrientsResponse
	if err := json.Unmarshal(body, &nr); err != nil {
		return nil, fmt.Errorf("failed to parse Nutritionix JSON: %w", err)
	}
	if len(nr.Foods) == 0 {
		return nil, fmt.Errorf("nutritionix returned no foods for %q", drinkName)
	}

	food := nr.Foods[0]
	waterMl := food.ServingWeightGrams // grams of liquid approximate ml
	if waterMl == 0 {
		waterMl = 250
	}
	return &models.NutritionRecord{
		Calories:   food.NfCalories,
		SugarG:     food.NfSugars,
		CaffeineMg: food.NfCaffeine,
		WaterMl:    waterMl,
		SodiumMg:   food.NfSodium,
		CarbsG:     food.NfTotalCarbohydrate,
		ProteinG:   food.NfProtein,
	}, nil
}
