package entities

import (
	"time"

	"github.com/google/uuid"
)

// FoodItem is a catalog item with a per-100g nutrition profile. Items from
// the external food database arrive unverified; admins flip Verified.
type FoodItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string    `json:"name"`
	Barcode      string    `gorm:"index" json:"barcode,omitempty"`
	Category     string    `json:"category"`
	Verified     bool      `gorm:"default:false" json:"verified"`
	ServingSizes []float64 `gorm:"serializer:json" json:"serving_sizes"`

	// Per-100g nutrition profile.
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	SodiumMg float64 `json:"sodium_mg"`

	Timestamp
}

// FoodEntry is one logged consumption event. Nutrition fields are pre-scaled
// from the item's per-100g profile at logging time.
type FoodEntry struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `gorm:"index" json:"user_id"`
	FoodID       uuid.UUID `json:"food_id"`
	ServingGrams float64   `json:"serving_grams"`
	MealType     string    `json:"meal_type"`
	Date         time.Time `gorm:"index" json:"date"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	SodiumMg float64 `json:"sodium_mg"`

	User *User     `gorm:"foreignKey:UserID" json:"-"`
	Food *FoodItem `gorm:"foreignKey:FoodID" json:"-"`
	Timestamp
}
