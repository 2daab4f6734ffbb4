package entities

import (
	"time"

	"github.com/google/uuid"
)

// NutritionGoalSnapshot is an immutable daily goal snapshot; a new row is
// written per recalculation instead of updating in place.
type NutritionGoalSnapshot struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"index" json:"user_id"`
	Date   time.Time `gorm:"index" json:"date"`

	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
	SugarG   float64 `json:"sugar_g"`

	SafetyRecommendations []string `gorm:"serializer:json" json:"safety_recommendations"`
	Restrictions          []string `gorm:"serializer:json" json:"restrictions"`
	Monitoring            []string `gorm:"serializer:json" json:"monitoring"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
