package domain

import "errors"

var (
	MessageSuccessGeneratePlan = "meal plan generated successfully"
	MessageSuccessGetPlans     = "meal plans retrieved successfully"
	MessageSuccessOptimizePlan = "meal plan optimized successfully"
	MessageSuccessDeletePlan   = "meal plan deleted successfully"

	MessageFailedGeneratePlan = "failed to generate meal plan"
	MessageFailedGetPlans     = "failed to retrieve meal plans"
	MessageFailedOptimizePlan = "failed to optimize meal plan"
	MessageFailedDeletePlan   = "failed to delete meal plan"

	ErrMealPlanNotFound = errors.New("meal plan not found")
	ErrInvalidDuration  = errors.New("plan duration must be between 1 and 30 days")
)

type (
	MealPlanPreferences struct {
		DietaryRestrictions []string `json:"dietary_restrictions"`
		Allergies           []string `json:"allergies"`
		CuisinePreferences  []string `json:"cuisine_preferences"`
		Budget              string   `json:"budget"` // low | medium | high
		MealsPerDay         int      `json:"meals_per_day"`
		SnacksPerDay        int      `json:"snacks_per_day"`
		CookingSkill        string   `json:"cooking_skill"` // beginner | intermediate | advanced
	}

	MealFood struct {
		FoodID       string        `json:"food_id"`
		Name         string        `json:"name"`
		ServingGrams float64       `json:"serving_grams"`
		Nutrition    NutritionInfo `json:"nutrition"`
	}

	Meal struct {
		Type            string        `json:"type"`
		TargetNutrition NutritionInfo `json:"target_nutrition"`
		Foods           []MealFood    `json:"foods"`
		TotalNutrition  NutritionInfo `json:"total_nutrition"`
	}

	MealPlanDay struct {
		DayNumber      int           `json:"day_number"`
		Date           string        `json:"date"`
		Meals          []Meal        `json:"meals"`
		TotalNutrition NutritionInfo `json:"total_nutrition"`
	}

	// GeneratedMealPlan is immutable once returned by the generator; the
	// optimizer appends recommendations without touching the day structure.
	GeneratedMealPlan struct {
		Name            string              `json:"name"`
		Description     string              `json:"description"`
		Duration        int                 `json:"duration"`
		Goals           []string            `json:"goals"`
		Preferences     MealPlanPreferences `json:"preferences"`
		Days            []MealPlanDay       `json:"days"`
		TotalNutrition  NutritionInfo       `json:"total_nutrition"`
		DailyAverage    NutritionInfo       `json:"daily_average"`
		Recommendations []string            `json:"recommendations"`
	}

	GenerateMealPlanRequest struct {
		DurationDays int                 `json:"duration_days" validate:"omitempty,min=1,max=30"`
		Preferences  MealPlanPreferences `json:"preferences"`
	}

	OptimizeMealPlanRequest struct {
		Feedback []string `json:"feedback" validate:"required,min=1"`
	}

	MealPlanResponse struct {
		ID        string            `json:"id"`
		Plan      GeneratedMealPlan `json:"plan"`
		CreatedAt string            `json:"created_at"`
	}
)
