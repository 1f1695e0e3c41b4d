package controllers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Invisible042/sip-smart-scan/services"
	"github.com/Invisible042/sip-smart-scan/utils"
)

type AnalyzeController struct {
	pipeline  *services.AnalysisService
	vision    *services.VisionService
	nutrition *services.NutritionService
	tips      *services.HealthTipService
}

func NewAnalyzeController(
	pipeline *services.AnalysisService,
	vision *services.VisionService,
	nutrition *services.NutritionService,
	tips *services.HealthTipService,
) *AnalyzeController {
	return &AnalyzeController{pipeline: pipeline, vision: vision, nutrition: nutrition, tips: tips}
}

// Upload accepts a multipart drink photo, runs the analysis pipeline and
// returns the combined result.
func (ct *AnalyzeController) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'file' upload"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
		return
	}
	defer f.Close()

	image, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error processing image: %v", err)})
		return
	}
	if !utils.IsImage(image) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File must be an image"})
		return
	}

	userID := c.DefaultQuery("user_id", "default")

	result, err := ct.pipeline.Analyze(c.Request.Context(), userID, image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error processing image: %v", err)})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Root is the service banner.
func (ct *AnalyzeController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "SnapDrink backend is running"})
}

// Health reports which capabilities are live. Nutrition and tips are always
// available because of their local fallbacks.
func (ct *AnalyzeController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"services": gin.H{
			"vision":      ct.vision.Available(),
			"nutrition":   ct.nutrition.Available(),
			"health_tips": ct.tips.Available(),
		},
	})
}
