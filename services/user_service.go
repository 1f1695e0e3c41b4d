package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Invisible042/sip-smart-scan/models"
	"github.com/Invisible042/sip-smart-scan/storage"
)

// ErrNotFound is returned when a goal or drink event id does not exist for
// the user. Controllers translate it to HTTP 404.
var ErrNotFound = errors.New("not found")

// UserService owns per-user profiles: daily goals, settings, and the lazy
// day-rollover state machine. Every profile mutation is a read-modify-write
// against the store, so each runs under that user's mutex; concurrent
// requests for the same user serialize here.
type UserService struct {
	profiles storage.ProfileStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewUserService(profiles storage.ProfileStore) *UserService {
	return &UserService{
		profiles: profiles,
		locks:    make(map[string]*sync.Mutex),
	}
}

func (s *UserService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// getOrCreate loads the profile, creating a default one on first access.
// Callers must hold the user lock.
func (s *UserService) getOrCreate(userID string) (*models.UserProfile, error) {
	p, err := s.profiles.Get(userID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	now := time.Now()
	p = &models.UserProfile{
		UserID:            userID,
		Notifications:     models.DefaultNotificationSettings(),
		HealthPreferences: models.DefaultHealthPreferences(),
		PrivacySettings:   models.DefaultPrivacySettings(),
		DailyGoals: []models.DailyGoal{
			{ID: uuid.NewString(), Name: "Daily Calories", Target: 2000, Unit: "kcal", Type: models.GoalCalories, CreatedAt: now},
			{ID: uuid.NewString(), Name: "Daily Water", Target: 2000, Unit: "ml", Type: models.GoalWater, CreatedAt: now},
			{ID: uuid.NewString(), Name: "Sugar Limit", Target: 50, Unit: "g", Type: models.GoalSugar, CreatedAt: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.profiles.Put(userID, p); err != nil {
		return nil, err
	}
	return p, nil
}

func dayStart(t time.Time) time.Time {
	tt := t.In(time.Local)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}

// rolloverIfNewDay zeroes every goal when the server-local calendar day has
// advanced past the day of the profile's last update. Detection is lazy:
// it happens on whichever access runs first in the new day, not at midnight.
func rolloverIfNewDay(p *models.UserProfile) bool {
	if !dayStart(time.Now()).After(dayStart(p.UpdatedAt)) {
		return false
	}
	for i := range p.DailyGoals {
		p.DailyGoals[i].Current = 0
		p.DailyGoals[i].IsAchieved = false
	}
	return true
}

// GetProfile returns the user's profile, applying any pending day rollover.
func (s *UserService) GetProfile(userID string) (*models.UserProfile, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	p, err := s.getOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if rolloverIfNewDay(p) {
		p.UpdatedAt = time.Now()
		if err := s.profiles.Put(userID, p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// GetGoals returns the user's goals after the lazy rollover check.
func (s *UserService) GetGoals(userID string) ([]models.DailyGoal, error) {
	p, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	return p.DailyGoals, nil
}

// ApplyConsumption folds one drink's nutrition into every goal of a matching
// type. The rollover check runs first so a new day's first drink lands in a
// fresh bucket instead of on top of yesterday's progress.
func (s *UserService) ApplyConsumption(userID string, n models.NutritionRecord) ([]models.DailyGoal, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	p, err := s.getOrCreate(userID)
	if err != nil {
		return nil, err
	}
	rolloverIfNewDay(p)

	for i := range p.DailyGoals {
		g := &p.DailyGoals[i]
		switch g.Type {
		case models.GoalCalories:
			g.Current += n.Calories
		case models.GoalSugar:
			g.Current += n.SugarG
		case models.GoalCaffeine:
			g.Current += n.CaffeineMg
		case models.GoalWater:
			g.Current += n.WaterMl
		case models.GoalSodium:
			g.Current += n.SodiumMg
		default:
			continue // unknown type: leave the goal untouched
		}
		g.IsAchieved = g.Current >= g.Target
	}

	p.UpdatedAt = time.Now()
	if err := s.profiles.Put(userID, p); err != nil {
		return nil, err
	}
	return p.DailyGoals, nil
}

func (s *UserService) CreateGoal(userID string, in models.CreateDailyGoal) (*models.DailyGoal, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	p, err := s.getOrCreate(userID)
	if err != nil {
		return nil, err
	}
	rolloverIfNewDay(p)

	goal := models.DailyGoal{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Target:    in.Target,
		Unit:      in.Unit,
		Type:      in.Type,
		CreatedAt: time.Now(),
	}
	p.DailyGoals = append(p.DailyGoals, goal)
	p.UpdatedAt = time.Now()
	if err := s.profiles.Put(userID, p); err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpdateGoal applies a partial update to target and/or current, then
// re-evaluates achievement.
func (s *UserService) UpdateGoal(userID, goalID string, in models.UpdateDailyGoal) (*models.DailyGoal, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	p, err := s.getOrCreate(userID)
	if err != nil {
		return nil, err
	}
	rolloverIfNewDay(p)

	var goal *models.DailyGoal
	for i := range p.DailyGoals {
		if p.DailyGoals[i].ID == goalID {
			goal = &p.DailyGoals[i]
			break
		}
	}
	if goal == nil {
		return nil, ErrNotFound
	}

	if in.Target != nil {
		goal.Target = *in.Target
	}
	if in.Current != nil {
		goal.Current = *in.Current
	}
	goal.IsAchieved = goal.Current >= goal.Target

	p.UpdatedAt = time.Now()
	if err := s.profiles.Put(userID, p); err != nil {
		return nil, err
	}
	out := *goal
	return &out, nil
}

func (s *UserService) DeleteGoal(userID, goalID string) error {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	p, err := s.getOrCreate(userID)
	if err != nil {
		return err
	}

	idx := -1
	for i := range p.DailyGoals {
		if p.DailyGoals[i].ID == goalID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	p.DailyGoals = append(p.DailyGoals[:idx], p.DailyGoals[idx+1:]...)
	p.UpdatedAt = time.Now()
	return s.profiles.Put(userID, p)
}

// UpdateNotifications merges the non-nil patch fields onto the stored
// settings.
func (s *UserService) UpdateNotifications(userID string, in models.UpdateNotificationSettings) (*models.NotificationSettings, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	p, err := s.getOrCreate(userID)
	if err != nil {
		return nil, err
	}

	ns := &p.Notifications
	if in.DailyReminders != nil {
		ns.DailyReminders = *in.DailyReminders
	}
	if in.GoalAchievements != nil {
		ns.GoalAchievements = *in.GoalAchievements
	}
	if in.HealthTips != nil {
		ns.HealthTips = *in.HealthTips
	}
	if in.WeeklyReports != nil {
		ns.WeeklyReports = *in.WeeklyReports
	}
	if in.ReminderTime != nil {
		ns.ReminderTime = *in.ReminderTime
	}

	p.UpdatedAt = time.Now()
	if err := s.profiles.Put(userID, p); err != nil {
		return nil, err
	}
	out := *ns
	return &out, nil
}

// UpdateHealthPreferences merges the patch and recomputes the calorie target
// once age, weight and height are all known.
func (s *UserService) UpdateHealthPreferences(userID string, in models.UpdateHealthPreferences) (*models.HealthPreferences, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	p, err := s.getOrCreate(userID)
	if err != nil {
		return nil, err
	}

	hp := &p.HealthPreferences
	if in.Age != nil {
		hp.Age = *in.Age
	}
	if in.Weight != nil {
		hp.Weight = *in.Weight
	}
	if in.Height != nil {
		hp.Height = *in.Height
	}
	if in.ActivityLevel != nil {
		hp.ActivityLevel = *in.ActivityLevel
	}
	if in.DietaryRestrictions != nil {
		hp.DietaryRestrictions = *in.DietaryRestrictions
	}
	if in.HealthGoals != nil {
		hp.HealthGoals = *in.HealthGoals
	}
	if in.TargetCalories != nil {
		hp.TargetCalories = *in.TargetCalories
	}
	if in.TargetWaterMl != nil {
		hp.TargetWaterMl = *in.TargetWaterMl
	}

	if hp.Age > 0 && hp.Weight > 0 && hp.Height > 0 {
		hp.TargetCalories = targetCalories(*hp)
	}

	p.UpdatedAt = time.Now()
	if err := s.profiles.Put(userID, p); err != nil {
		return nil, err
	}
	out := *hp
	return &out, nil
}

func (s *UserService) UpdatePrivacySettings(userID string, in models.UpdatePrivacySettings) (*models.PrivacySettings, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	p, err := s.getOrCreate(userID)
	if err != nil {
		return nil, err
	}

	ps := &p.PrivacySettings
	if in.DataCollection != nil {
		ps.DataCollection = *in.DataCollection
	}
	if in.AnalyticsTracking != nil {
		ps.AnalyticsTracking = *in.AnalyticsTracking
	}
	if in.PersonalizedAds != nil {
		ps.PersonalizedAds = *in.PersonalizedAds
	}
	if in.ShareWithPartners != nil {
		ps.ShareWithPartners = *in.ShareWithPartners
	}

	p.UpdatedAt = time.Now()
	if err := s.profiles.Put(userID, p); err != nil {
		return nil, err
	}
	out := *ps
	return &out, nil
}

// targetCalories estimates a daily calorie target with the Mifflin-St Jeor
// equation and an activity multiplier.
func targetCalories(hp models.HealthPreferences) int {
	bmr := 10*hp.Weight + 6.25*hp.Height - 5*float64(hp.Age) + 5

	multiplier := 1.55
	switch hp.ActivityLevel {
	case "sedentary":
		multiplier = 1.2
	case "light":
		multiplier = 1.375
	case "moderate":
		multiplier = 1.55
	case "active":
		multiplier = 1.725
	case "very_active":
		multiplier = 1.9
	}
	return int(bmr * multiplier)
}

type Achievement struct {
	GoalName   string    `json:"goal_name"`
	Target     float64   `json:"target"`
	Current    float64   `json:"current"`
	Unit       string    `json:"unit"`
	AchievedAt time.Time `json:"achieved_at"`
}

// GetAchievements lists the goals the user has met today.
func (s *UserService) GetAchievements(userID string) ([]Achievement, error) {
	p, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	achievements := make([]Achievement, 0)
	for _, g := range p.DailyGoals {
		if g.IsAchieved {
			achievements = append(achievements, Achievement{
				GoalName:   g.Name,
				Target:     g.Target,
				Current:    g.Current,
				Unit:       g.Unit,
				AchievedAt: time.Now(),
			})
		}
	}
	return achievements, nil
}

type UserStats struct {
	TotalGoals        int                         `json:"total_goals"`
	AchievedGoals     int                         `json:"achieved_goals"`
	AchievementRate   float64                     `json:"achievement_rate"`
	Goals             []models.DailyGoal          `json:"goals"`
	HealthPreferences models.HealthPreferences    `json:"health_preferences"`
	Notifications     models.NotificationSettings `json:"notifications"`
	Privacy           models.PrivacySettings      `json:"privacy"`
}

func (s *UserService) GetUserStats(userID string) (*UserStats, error) {
	p, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	achieved := 0
	for _, g := range p.DailyGoals {
		if g.IsAchieved {
			achieved++
		}
	}
	rate := 0.0
	if len(p.DailyGoals) > 0 {
		rate = float64(achieved) / float64(len(p.DailyGoals))
	}

	return &UserStats{
		TotalGoals:        len(p.DailyGoals),
		AchievedGoals:     achieved,
		AchievementRate:   rate,
		Goals:             p.DailyGoals,
		HealthPreferences: p.HealthPreferences,
		Notifications:     p.Notifications,
		Privacy:           p.PrivacySettings,
	}, nil
}
