package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Invisible042/sip-smart-scan/models"
	"github.com/Invisible042/sip-smart-scan/services"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (ct *UserController) GetProfile(c *gin.Context) {
	profile, err := ct.users.GetProfile(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (ct *UserController) UpdateNotifications(c *gin.Context) {
	var req models.UpdateNotificationSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	settings, err := ct.users.UpdateNotifications(c.Param("user_id"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (ct *UserController) UpdateHealthPreferences(c *gin.Context) {
	var req models.UpdateHealthPreferences
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	prefs, err := ct.users.UpdateHealthPreferences(c.Param("user_id"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (ct *UserController) UpdatePrivacy(c *gin.Context) {
	var req models.UpdatePrivacySettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	settings, err := ct.users.UpdatePrivacySettings(c.Param("user_id"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (ct *UserController) GetStats(c *gin.Context) {
	stats, err := ct.users.GetUserStats(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (ct *UserController) GetAchievements(c *gin.Context) {
	achievements, err := ct.users.GetAchievements(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, achievements)
}
