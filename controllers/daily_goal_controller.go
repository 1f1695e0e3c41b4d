package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Invisible042/sip-smart-scan/models"
	"github.com/Invisible042/sip-smart-scan/services"
)

type DailyGoalController struct {
	users *services.UserService
}

func NewDailyGoalController(users *services.UserService) *DailyGoalController {
	return &DailyGoalController{users: users}
}

func (ct *DailyGoalController) GetGoals(c *gin.Context) {
	goals, err := ct.users.GetGoals(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (ct *DailyGoalController) CreateGoal(c *gin.Context) {
	var req models.CreateDailyGoal
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidGoalType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown goal type"})
		return
	}

	goal, err := ct.users.CreateGoal(c.Param("user_id"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func (ct *DailyGoalController) UpdateGoal(c *gin.Context) {
	var req models.UpdateDailyGoal
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := ct.users.UpdateGoal(c.Param("user_id"), c.Param("goal_id"), req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (ct *DailyGoalController) DeleteGoal(c *gin.Context) {
	err := ct.users.DeleteGoal(c.Param("user_id"), c.Param("goal_id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
