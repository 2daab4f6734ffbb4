package nutrition

import (
	"math"

	"Technically-Fit-Backend/domain"
)

// activityFactors maps activity levels to their TDEE multiplier. Single
// source of truth for valid levels; request validation references the same
// set in the domain DTOs.
var activityFactors = map[string]float64{
	"sedentary":   1.20,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.90,
}

// goalAdjustments maps goal categories to the calorie adjustment applied on
// top of TDEE.
var goalAdjustments = map[string]float64{
	"lose_weight": -0.20,
	"maintain":    0.00,
	"gain_weight": 0.10,
	"gain_muscle": 0.15,
}

// CalculateGoals derives baseline daily calorie and macro targets from a
// biometric profile using Mifflin-St Jeor BMR scaled by activity level.
//
// Out-of-range biometrics (age <= 0, weight <= 0) are a caller precondition
// and are not validated here.
func CalculateGoals(p domain.BiometricProfile) domain.NutritionGoals {
	bmr := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)
	if p.Sex == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	tdee := bmr * activityFactors[p.ActivityLevel]
	calories := math.Round(tdee * (1 + goalAdjustments[p.Goal]))

	var protein, fat float64
	if p.Goal == "gain_muscle" || p.Goal == "lose_weight" {
		protein = 2.2 * p.WeightKG
		fat = 1.0 * p.WeightKG
	} else {
		protein = 1.6 * p.WeightKG
		fat = calories * 0.25 / 9
	}
	carbs := (calories - protein*4 - fat*9) / 4

	return domain.NutritionGoals{
		Calories: calories,
		ProteinG: math.Round(protein),
		CarbsG:   math.Round(carbs),
		FatG:     math.Round(fat),
		FiberG:   math.Round(calories / 1000 * 14),
		SugarG:   math.Round(calories * 0.10 / 4),
	}
}
