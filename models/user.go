package models

import "time"

type GoalType string

const (
	GoalCalories GoalType = "calories"
	GoalSugar    GoalType = "sugar"
	GoalCaffeine GoalType = "caffeine"
	GoalWater    GoalType = "water"
	GoalSodium   GoalType = "sodium"
)

// ValidGoalType reports whether t is one of the supported goal types.
func ValidGoalType(t GoalType) bool {
	switch t {
	case GoalCalories, GoalSugar, GoalCaffeine, GoalWater, GoalSodium:
		return true
	}
	return false
}

// DailyGoal tracks one nutrient target for one user. Current accumulates
// over the day and resets on day rollover; IsAchieved always mirrors
// Current >= Target.
type DailyGoal struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Target     float64   `json:"target"`
	Current    float64   `json:"current"`
	Unit       string    `json:"unit"`
	Type       GoalType  `json:"type"`
	CreatedAt  time.Time `json:"created_at"`
	IsAchieved bool      `json:"is_achieved"`
}

type NotificationSettings struct {
	DailyReminders   bool   `json:"daily_reminders"`
	GoalAchievements bool   `json:"goal_achievements"`
	HealthTips       bool   `json:"health_tips"`
	WeeklyReports    bool   `json:"weekly_reports"`
	ReminderTime     string `json:"reminder_time"` // HH:MM
}

type HealthPreferences struct {
	Age                 int     `json:"age,omitempty"`
	Weight              float64 `json:"weight,omitempty"` // kg
	Height              float64 `json:"height,omitempty"` // cm
	ActivityLevel       string  `json:"activity_level"`
	DietaryRestrictions string  `json:"dietary_restrictions,omitempty"`
	HealthGoals         string  `json:"health_goals,omitempty"`
	TargetCalories      int     `json:"target_calories,omitempty"`
	TargetWaterMl       int     `json:"target_water_ml,omitempty"`
}

type PrivacySettings struct {
	DataCollection    bool `json:"data_collection"`
	AnalyticsTracking bool `json:"analytics_tracking"`
	PersonalizedAds   bool `json:"personalized_ads"`
	ShareWithPartners bool `json:"share_with_partners"`
}

// UserProfile owns a user's goals and settings. UpdatedAt must be bumped on
// every mutating operation: it is the only signal day-rollover detection has.
type UserProfile struct {
	UserID            string               `json:"user_id"`
	Notifications     NotificationSettings `json:"notifications"`
	HealthPreferences HealthPreferences    `json:"health_preferences"`
	PrivacySettings   PrivacySettings      `json:"privacy_settings"`
	DailyGoals        []DailyGoal          `json:"daily_goals"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// Patch types for partial settings updates. Only non-nil fields are applied.

type UpdateNotificationSettings struct {
	DailyReminders   *bool   `json:"daily_reminders"`
	GoalAchievements *bool   `json:"goal_achievements"`
	HealthTips       *bool   `json:"health_tips"`
	WeeklyReports    *bool   `json:"weekly_reports"`
	ReminderTime     *string `json:"reminder_time"`
}

type UpdateHealthPreferences struct {
	Age                 *int     `json:"age"`
	Weight              *float64 `json:"weight"`
	Height              *float64 `json:"height"`
	ActivityLevel       *string  `json:"activity_level"`
	DietaryRestrictions *string  `json:"dietary_restrictions"`
	HealthGoals         *string  `json:"health_goals"`
	TargetCalories      *int     `json:"target_calories"`
	TargetWaterMl       *int     `json:"target_water_ml"`
}

type UpdatePrivacySettings struct {
	DataCollection    *bool `json:"data_collection"`
	AnalyticsTracking *bool `json:"analytics_tracking"`
	PersonalizedAds   *bool `json:"personalized_ads"`
	ShareWithPartners *bool `json:"share_with_partners"`
}

type CreateDailyGoal struct {
	Name   string   `json:"name" binding:"required"`
	Target float64  `json:"target" binding:"required,gt=0"`
	Unit   string   `json:"unit" binding:"required"`
	Type   GoalType `json:"type" binding:"required"`
}

type UpdateDailyGoal struct {
	Target  *float64 `json:"target"`
	Current *float64 `json:"current"`
}

// Defaults for a freshly created profile.

func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		DailyReminders:   true,
		GoalAchievements: true,
		HealthTips:       false,
		WeeklyReports:    true,
		ReminderTime:     "09:00",
	}
}

func DefaultHealthPreferences() HealthPreferences {
	return HealthPreferences{ActivityLevel: "moderate"}
}

func DefaultPrivacySettings() PrivacySettings {
	return PrivacySettings{DataCollection: true}
}
