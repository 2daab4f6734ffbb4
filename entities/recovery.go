package entities

import (
	"time"

	"github.com/google/uuid"
)

// RecoveryData is one day's physiological snapshot synced from a wearable or
// logged manually.
type RecoveryData struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID           uuid.UUID `gorm:"index" json:"user_id"`
	Date             time.Time `gorm:"index" json:"date"`
	RecoveryScore    float64   `json:"recovery_score"`
	HRVScore         float64   `json:"hrv_score"`
	RestingHeartRate float64   `json:"resting_heart_rate"`
	SleepPerformance float64   `json:"sleep_performance"`
	StrainYesterday  float64   `json:"strain_yesterday"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

type TrainingSession struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"index" json:"user_id"`
	Date        time.Time `gorm:"index" json:"date"`
	Type        string    `json:"type"`
	DurationMin int       `json:"duration_min"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
