package main

import (
	"log"
	"os"
	"time"

	"github.com/Invisible042/sip-smart-scan/config"
	"github.com/Invisible042/sip-smart-scan/controllers"
	"github.com/Invisible042/sip-smart-scan/routes"
	"github.com/Invisible042/sip-smart-scan/services"
	"github.com/Invisible042/sip-smart-scan/storage"
	"github.com/Invisible042/sip-smart-scan/utils"
)

func main() {
	config.LoadEnv()
	config.InitDB()

	var (
		profiles storage.ProfileStore
		events   storage.EventStore
	)
	if config.DB != nil {
		gs, err := storage.NewGormStore(config.DB)
		if err != nil {
			log.Fatalf("failed to initialize database store: %v", err)
		}
		profiles, events = gs, gs
	} else {
		ms := storage.NewMemoryStore()
		profiles, events = ms, ms
	}

	rng := services.NewLockedRand(time.Now().UnixNano())

	// External capabilities are all optional; a nil capability just means
	// the local fallback handles everything.
	var visionCap services.VisionCapability
	if os.Getenv("AWS_REGION") != "" {
		rek, err := services.NewRekognitionService()
		if err != nil {
			log.Printf("rekognition unavailable, using fallback identification: %v", err)
		} else {
			visionCap = rek
		}
	}

	var nutritionCap services.NutritionCapability
	if nx := services.NewNutritionixService(); nx != nil {
		nutritionCap = nx
	}

	var tipCap services.TipCapability
	if or := services.NewOpenRouterService(); or != nil {
		tipCap = or
	}

	var archiver services.ImageArchiver
	s3a, err := utils.NewS3Archiver()
	if err != nil {
		log.Printf("S3 archiver unavailable, uploads will not be stored: %v", err)
	} else if s3a != nil {
		archiver = s3a
	}

	userSvc := services.NewUserService(profiles)
	historySvc := services.NewDrinkHistoryService(events)
	visionSvc := services.NewVisionService(visionCap, rng)
	nutritionSvc := services.NewNutritionService(nutritionCap)
	tipSvc := services.NewHealthTipService(tipCap, rng)
	pipeline := services.NewAnalysisService(visionSvc, nutritionSvc, tipSvc, userSvc, historySvc, archiver)

	r := routes.SetupRouter(
		controllers.NewAnalyzeController(pipeline, visionSvc, nutritionSvc, tipSvc),
		controllers.NewDailyGoalController(userSvc),
		controllers.NewUserController(userSvc),
		controllers.NewHistoryController(historySvc),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
