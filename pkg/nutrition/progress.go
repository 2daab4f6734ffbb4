package nutrition

import (
	"fmt"
	"math"

	"Technically-Fit-Backend/domain"
)

// CalculateDailyTotals sums every nutrient field across the given entries.
// Empty input yields an all-zero record. Pure, order-independent reduction;
// duplicate entries simply add.
func CalculateDailyTotals(entries []domain.FoodEntryRecord) domain.NutritionInfo {
	var totals domain.NutritionInfo
	for _, e := range entries {
		totals.Calories += e.Nutrition.Calories
		totals.Protein += e.Nutrition.Protein
		totals.Carbs += e.Nutrition.Carbs
		totals.Fat += e.Nutrition.Fat
		totals.Fiber += e.Nutrition.Fiber
		totals.Sugar += e.Nutrition.Sugar
		totals.SodiumMg += e.Nutrition.SodiumMg
	}
	return totals
}

// CalculateNutritionForServing scales a food's per-100g profile to the given
// serving. Calories and sodium round to integers, the rest to one decimal.
func CalculateNutritionForServing(food domain.FoodItemRecord, grams float64) domain.NutritionInfo {
	m := grams / 100
	return domain.NutritionInfo{
		Calories: math.Round(food.NutritionPer100g.Calories * m),
		Protein:  round1(food.NutritionPer100g.Protein * m),
		Carbs:    round1(food.NutritionPer100g.Carbs * m),
		Fat:      round1(food.NutritionPer100g.Fat * m),
		Fiber:    round1(food.NutritionPer100g.Fiber * m),
		Sugar:    round1(food.NutritionPer100g.Sugar * m),
		SodiumMg: math.Round(food.NutritionPer100g.SodiumMg * m),
	}
}

// AnalyzeGoalProgress classifies a day's totals against goals. Status is
// driven by the calorie percentage alone; suggestions accumulate, one per
// triggered rule, so several can co-occur.
func AnalyzeGoalProgress(goals domain.NutritionGoals, actual domain.NutritionInfo) domain.GoalProgress {
	percentages := map[string]float64{
		"calories": percentOf(actual.Calories, goals.Calories),
		"protein":  percentOf(actual.Protein, goals.ProteinG),
		"carbs":    percentOf(actual.Carbs, goals.CarbsG),
		"fat":      percentOf(actual.Fat, goals.FatG),
		"fiber":    percentOf(actual.Fiber, goals.FiberG),
	}

	status := domain.ProgressOnTrack
	suggestions := []string{}

	caloriePct := percentages["calories"]
	if caloriePct < 85 {
		status = domain.ProgressUnder
		suggestions = append(suggestions, fmt.Sprintf(
			"You're at %.0f%% of your calorie goal. Consider a nutrient-dense snack to close the gap.", caloriePct))
	} else if caloriePct > 115 {
		status = domain.ProgressOver
		suggestions = append(suggestions, fmt.Sprintf(
			"You're at %.0f%% of your calorie goal. Lighter portions at your next meal can bring you back in range.", caloriePct))
	}

	if percentages["protein"] < 80 {
		suggestions = append(suggestions,
			"Protein is running low today. Add a lean protein source to your next meal.")
	}
	if percentages["carbs"] < 70 {
		suggestions = append(suggestions,
			"Carb intake is well below target. Whole grains or fruit can help fuel your training.")
	}
	if percentages["fiber"] < 60 {
		suggestions = append(suggestions,
			"Fiber intake is low. Vegetables, legumes, or whole grains would help.")
	}

	return domain.GoalProgress{
		Percentages: percentages,
		Status:      status,
		Suggestions: suggestions,
	}
}

func percentOf(actual, goal float64) float64 {
	if goal == 0 {
		return 0
	}
	return actual / goal * 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
