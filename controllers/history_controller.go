package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Invisible042/sip-smart-scan/services"
)

type HistoryController struct {
	history *services.DrinkHistoryService
}

func NewHistoryController(history *services.DrinkHistoryService) *HistoryController {
	return &HistoryController{history: history}
}

func (ct *HistoryController) ListDrinks(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	drinks, err := ct.history.List(c.Param("user_id"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, drinks)
}

func (ct *HistoryController) TodayDrinks(c *gin.Context) {
	drinks, err := ct.history.Today(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, drinks)
}

func (ct *HistoryController) YesterdayDrinks(c *gin.Context) {
	drinks, err := ct.history.Yesterday(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, drinks)
}

func (ct *HistoryController) DailyTotals(c *gin.Context) {
	totals, err := ct.history.DailyTotals(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, totals)
}

func (ct *HistoryController) WeeklyStats(c *gin.Context) {
	stats, err := ct.history.WeeklyStats(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (ct *HistoryController) HealthInsights(c *gin.Context) {
	insights, err := ct.history.Insights(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

func (ct *HistoryController) DeleteDrink(c *gin.Context) {
	found, err := ct.history.Delete(c.Param("user_id"), c.Param("drink_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "drink not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
