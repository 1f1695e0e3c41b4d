package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Invisible042/sip-smart-scan/controllers"
	"github.com/Invisible042/sip-smart-scan/middlewares"
)

func SetupRouter(
	analyze *controllers.AnalyzeController,
	goals *controllers.DailyGoalController,
	users *controllers.UserController,
	history *controllers.HistoryController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORS())

	r.GET("/", analyze.Root)
	r.GET("/health", analyze.Health)
	r.POST("/upload", analyze.Upload)

	user := r.Group("/user/:user_id")
	{
		user.GET("/profile", users.GetProfile)
		user.GET("/stats", users.GetStats)
		user.GET("/achievements", users.GetAchievements)
		user.PUT("/notifications", users.UpdateNotifications)
		user.PUT("/health-preferences", users.UpdateHealthPreferences)
		user.PUT("/privacy", users.UpdatePrivacy)

		user.GET("/daily-goals", goals.GetGoals)
		user.POST("/daily-goals", goals.CreateGoal)
		user.PUT("/daily-goals/:goal_id", goals.UpdateGoal)
		user.DELETE("/daily-goals/:goal_id", goals.DeleteGoal)

		user.GET("/drinks", history.ListDrinks)
		user.GET("/drinks/today", history.TodayDrinks)
		user.GET("/drinks/yesterday", history.YesterdayDrinks)
		user.GET("/drinks/weekly-stats", history.WeeklyStats)
		user.GET("/daily-totals", history.DailyTotals)
		user.GET("/health-insights", history.HealthInsights)
		user.DELETE("/drinks/:drink_id", history.DeleteDrink)
	}

	return r
}
