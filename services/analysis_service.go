package services

import (
	"context"
	"log"

	"github.com/Invisible042/sip-smart-scan/models"
)

// analysisConfidence is a fixed constant: no component computes a real
// confidence yet.
const analysisConfidence = 0.85

// ImageArchiver stores the uploaded photo somewhere durable and returns its
// public URL. Archival is best-effort; the pipeline never fails over it.
type ImageArchiver interface {
	Upload(ctx context.Context, image []byte, userID string) (string, error)
}

type AnalysisResult struct {
	DrinkName       string                 `json:"drink_name"`
	Nutrition       models.NutritionRecord `json:"nutrition"`
	HealthTip       string                 `json:"health_tip"`
	ConfidenceScore float64                `json:"confidence_score"`
}

// AnalysisService runs one upload through the whole chain: identify the
// drink, resolve nutrition, generate a tip, fold the consumption into the
// user's goals, and append the history event. The sub-services never fail,
// so only storage errors surface from here.
type AnalysisService struct {
	vision    *VisionService
	nutrition *NutritionService
	tips      *HealthTipService
	users     *UserService
	history   *DrinkHistoryService
	archiver  ImageArchiver
}

func NewAnalysisService(
	vision *VisionService,
	nutrition *NutritionService,
	tips *HealthTipService,
	users *UserService,
	history *DrinkHistoryService,
	archiver ImageArchiver,
) *AnalysisService {
	return &AnalysisService{
		vision:    vision,
		nutrition: nutrition,
		tips:      tips,
		users:     users,
		history:   history,
		archiver:  archiver,
	}
}

func (s *AnalysisService) Analyze(ctx context.Context, userID string, image []byte) (*AnalysisResult, error) {
	imageURL := ""
	if s.archiver != nil {
		url, err := s.archiver.Upload(ctx, image, userID)
		if err != nil {
			log.Printf("image archival failed for user %s: %v", userID, err)
		} else {
			imageURL = url
		}
	}

	drinkName := s.vision.Identify(ctx, image)
	nutrition := s.nutrition.Resolve(drinkName)
	healthTip := s.tips.Generate(ctx, drinkName, nutrition)

	if _, err := s.users.ApplyConsumption(userID, nutrition); err != nil {
		return nil, err
	}
	if _, err := s.history.Add(userID, drinkName, nutrition, healthTip, imageURL); err != nil {
		return nil, err
	}

	return &AnalysisResult{
		DrinkName:       drinkName,
		Nutrition:       nutrition,
		HealthTip:       healthTip,
		ConfidenceScore: analysisConfidence,
	}, nil
}
