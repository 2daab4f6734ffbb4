package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
	Role     string    `gorm:"default:user" json:"role"`

	// Biometric profile for the goal calculator.
	Age           int     `json:"age"`
	WeightKG      float64 `json:"weight_kg"`
	HeightCM      float64 `json:"height_cm"`
	Sex           string  `json:"sex"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`

	// Health profile for the safety rail.
	MedicalConditions []string `gorm:"serializer:json" json:"medical_conditions"`
	Medications       []string `gorm:"serializer:json" json:"medications"`

	PhotoURL     string     `json:"photo_url,omitempty"`
	IsVerified   bool       `gorm:"default:false" json:"is_verified"`
	IsPremium    bool       `gorm:"default:false" json:"is_premium"`
	PremiumUntil *time.Time `json:"premium_until,omitempty"`

	Timestamp
}
