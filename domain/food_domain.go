package domain

import (
	"errors"
	"time"
)

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

var (
	MessageSuccessAddFoodItem    = "food item added successfully"
	MessageSuccessGetFoodItems   = "food items retrieved successfully"
	MessageSuccessLookupBarcode  = "food item resolved successfully"
	MessageSuccessVerifyFoodItem = "food item verified successfully"
	MessageSuccessLogEntry       = "food entry logged successfully"
	MessageSuccessGetEntries     = "food entries retrieved successfully"
	MessageSuccessDeleteEntry    = "food entry deleted successfully"

	MessageFailedAddFoodItem    = "failed to add food item"
	MessageFailedGetFoodItems   = "failed to retrieve food items"
	MessageFailedLookupBarcode  = "failed to resolve barcode"
	MessageFailedVerifyFoodItem = "failed to verify food item"
	MessageFailedLogEntry       = "failed to log food entry"
	MessageFailedGetEntries     = "failed to retrieve food entries"
	MessageFailedDeleteEntry    = "failed to delete food entry"

	ErrFoodItemNotFound  = errors.New("food item not found")
	ErrFoodEntryNotFound = errors.New("food entry not found")
	ErrInvalidServing    = errors.New("serving grams must be positive")
	ErrInvalidMealType   = errors.New("invalid meal type")
	ErrBarcodeNotFound   = errors.New("barcode not found in food database")
)

type (
	// FoodItemRecord is the engine-facing, read-only view of a catalog item.
	FoodItemRecord struct {
		ID               string        `json:"id"`
		Name             string        `json:"name"`
		NutritionPer100g NutritionInfo `json:"nutrition_per_100g"`
		ServingSizes     []float64     `json:"serving_sizes"`
		Category         string        `json:"category"`
		Verified         bool          `json:"verified"`
	}

	// FoodEntryRecord is one logged consumption event with pre-scaled nutrition.
	FoodEntryRecord struct {
		ID           string        `json:"id"`
		FoodID       string        `json:"food_id"`
		ServingGrams float64       `json:"serving_grams"`
		MealType     string        `json:"meal_type"`
		Date         time.Time     `json:"date"`
		Nutrition    NutritionInfo `json:"nutrition"`
	}

	AddFoodItemRequest struct {
		Name         string        `json:"name" validate:"required"`
		Barcode      string        `json:"barcode" validate:"omitempty"`
		Category     string        `json:"category" validate:"required"`
		Nutrition    NutritionInfo `json:"nutrition_per_100g" validate:"required"`
		ServingSizes []float64     `json:"serving_sizes" validate:"omitempty,dive,gt=0"`
	}

	LogFoodEntryRequest struct {
		FoodID       string  `json:"food_id" validate:"required,uuid"`
		ServingGrams float64 `json:"serving_grams" validate:"required,gt=0"`
		MealType     string  `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
		Date         string  `json:"date" validate:"required"`
	}

	FoodEntryResponse struct {
		ID           string        `json:"id"`
		FoodID       string        `json:"food_id"`
		FoodName     string        `json:"food_name"`
		ServingGrams float64       `json:"serving_grams"`
		MealType     string        `json:"meal_type"`
		Date         string        `json:"date"`
		Nutrition    NutritionInfo `json:"nutrition"`
	}
)
