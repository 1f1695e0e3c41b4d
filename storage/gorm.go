package storage

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Invisible042/sip-smart-scan/models"
)

// ProfileRecord is the database row behind ProfileStore: the whole profile
// as a JSON blob keyed by user id, with UpdatedAt mirrored out of the blob
// for inspection.
type ProfileRecord struct {
	UserID    string `gorm:"primaryKey;type:varchar(255)"`
	Data      []byte `gorm:"type:jsonb"`
	UpdatedAt time.Time
}

// DrinkEventRecord is a flat row per logged drink (nutrition snapshot
// flattened onto the row, MealItem-style).
type DrinkEventRecord struct {
	ID         uint   `gorm:"primaryKey"`
	EventID    string `gorm:"uniqueIndex;type:varchar(255);not null"`
	UserID     string `gorm:"index;type:varchar(255);not null"`
	Name       string
	Calories   float64
	SugarG     float64
	CaffeineMg float64
	WaterMl    float64
	SodiumMg   float64
	CarbsG     float64
	ProteinG   float64
	HealthTip  string
	ImageURL   string
	Timestamp  time.Time
	Date       string `gorm:"index;type:varchar(10)"`
}

// GormStore implements ProfileStore and EventStore on a GORM connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&ProfileRecord{}, &DrinkEventRecord{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(userID string) (*models.UserProfile, error) {
	var rec ProfileRecord
	err := s.db.Where("user_id = ?", userID).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var p models.UserProfile
	if err := json.Unmarshal(rec.Data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) Put(userID string, profile *models.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	rec := ProfileRecord{UserID: userID, Data: raw, UpdatedAt: profile.UpdatedAt}
	return s.db.
		Where("user_id = ?", userID).
		Assign(map[string]any{"data": raw, "updated_at": profile.UpdatedAt}).
		FirstOrCreate(&rec).Error
}

func (s *GormStore) List(userID string) ([]models.DrinkEvent, error) {
	var rows []DrinkEventRecord
	err := s.db.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]models.DrinkEvent, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toEvent())
	}
	return out, nil
}

func (s *GormStore) Append(userID string, event models.DrinkEvent) error {
	rec := DrinkEventRecord{
		EventID:    event.ID,
		UserID:     userID,
		Name:       event.Name,
		Calories:   event.Calories,
		SugarG:     event.SugarG,
		CaffeineMg: event.CaffeineMg,
		WaterMl:    event.WaterMl,
		SodiumMg:   event.SodiumMg,
		CarbsG:     event.CarbsG,
		ProteinG:   event.ProteinG,
		HealthTip:  event.HealthTip,
		ImageURL:   event.ImageURL,
		Timestamp:  event.Timestamp,
		Date:       event.Date,
	}
	return s.db.Create(&rec).Error
}

func (s *GormStore) Delete(userID, eventID string) (bool, error) {
	res := s.db.
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&DrinkEventRecord{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r DrinkEventRecord) toEvent() models.DrinkEvent {
	return models.DrinkEvent{
		ID:         r.EventID,
		Name:       r.Name,
		Calories:   r.Calories,
		SugarG:     r.SugarG,
		CaffeineMg: r.CaffeineMg,
		WaterMl:    r.WaterMl,
		SodiumMg:   r.SodiumMg,
		CarbsG:     r.CarbsG,
		ProteinG:   r.ProteinG,
		HealthTip:  r.HealthTip,
		ImageURL:   r.ImageURL,
		Timestamp:  r.Timestamp,
		Date:       r.Date,
	}
}
