package entities

import (
	"Technically-Fit-Backend/domain"

	"github.com/google/uuid"
)

type MealPlan struct {
	ID          uuid.UUID                `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID                `gorm:"index" json:"user_id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Duration    int                      `json:"duration"`
	Plan        domain.GeneratedMealPlan `gorm:"serializer:json" json:"plan"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
