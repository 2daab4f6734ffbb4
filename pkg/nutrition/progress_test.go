package nutrition

import (
	"testing"

	"Technically-Fit-Backend/domain"
)

func entryWith(n domain.NutritionInfo) domain.FoodEntryRecord {
	return domain.FoodEntryRecord{Nutrition: n}
}

// TestCalculateDailyTotals_Empty verifies an empty entry list yields an
// all-zero record.
func TestCalculateDailyTotals_Empty(t *testing.T) {
	totals := CalculateDailyTotals(nil)
	if totals != (domain.NutritionInfo{}) {
		t.Errorf("expected zero record for empty input, got %+v", totals)
	}
}

// TestCalculateDailyTotals_Sums verifies field-wise summation, including
// duplicate entries adding twice.
func TestCalculateDailyTotals_Sums(t *testing.T) {
	meal := domain.NutritionInfo{Calories: 500, Protein: 30, Carbs: 55, Fat: 15, Fiber: 6, Sugar: 10, SodiumMg: 600}
	snack := domain.NutritionInfo{Calories: 200, Protein: 10, Carbs: 25, Fat: 8, Fiber: 2, Sugar: 12, SodiumMg: 150}

	totals := CalculateDailyTotals([]domain.FoodEntryRecord{
		entryWith(meal), entryWith(snack), entryWith(snack),
	})

	want := domain.NutritionInfo{Calories: 900, Protein: 50, Carbs: 105, Fat: 31, Fiber: 10, Sugar: 34, SodiumMg: 900}
	if totals != want {
		t.Errorf("totals = %+v, want %+v", totals, want)
	}
}

// TestCalculateNutritionForServing_RoundTrip verifies a 100g serving equals
// the per-100g profile (all values already at storage precision).
func TestCalculateNutritionForServing_RoundTrip(t *testing.T) {
	food := domain.FoodItemRecord{
		ID:   "f1",
		Name: "Chicken Breast",
		NutritionPer100g: domain.NutritionInfo{
			Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0, Sugar: 0, SodiumMg: 74,
		},
	}

	got := CalculateNutritionForServing(food, 100)
	if got != food.NutritionPer100g {
		t.Errorf("100g serving = %+v, want %+v", got, food.NutritionPer100g)
	}
}

// TestCalculateNutritionForServing_Rounding verifies calories and sodium
// round to integers while macros round to one decimal.
func TestCalculateNutritionForServing_Rounding(t *testing.T) {
	food := domain.FoodItemRecord{
		NutritionPer100g: domain.NutritionInfo{
			Calories: 165, Protein: 31, Carbs: 1.2, Fat: 3.6, Fiber: 0.4, Sugar: 0.8, SodiumMg: 74,
		},
	}

	got := CalculateNutritionForServing(food, 150)
	if got.Calories != 248 { // 247.5 rounds half away from zero
		t.Errorf("calories = %v, want 248", got.Calories)
	}
	if got.Protein != 46.5 {
		t.Errorf("protein = %v, want 46.5", got.Protein)
	}
	if got.Fat != 5.4 {
		t.Errorf("fat = %v, want 5.4", got.Fat)
	}
	if got.SodiumMg != 111 {
		t.Errorf("sodium = %v, want 111", got.SodiumMg)
	}
}

func testGoals() domain.NutritionGoals {
	return domain.NutritionGoals{Calories: 2000, ProteinG: 150, CarbsG: 200, FatG: 65, FiberG: 28, SugarG: 50}
}

// TestAnalyzeGoalProgress_Under verifies 75% of calorie goal classifies as
// under with at least one suggestion.
func TestAnalyzeGoalProgress_Under(t *testing.T) {
	actual := domain.NutritionInfo{Calories: 1500, Protein: 140, Carbs: 180, Fat: 60, Fiber: 25}
	progress := AnalyzeGoalProgress(testGoals(), actual)

	if progress.Status != domain.ProgressUnder {
		t.Errorf("status = %q, want under", progress.Status)
	}
	if len(progress.Suggestions) == 0 {
		t.Error("expected at least one suggestion for under-eating")
	}
	if progress.Percentages["calories"] != 75 {
		t.Errorf("calorie percentage = %v, want 75", progress.Percentages["calories"])
	}
}

// TestAnalyzeGoalProgress_Over verifies >115% classifies as over.
func TestAnalyzeGoalProgress_Over(t *testing.T) {
	actual := domain.NutritionInfo{Calories: 2400, Protein: 160, Carbs: 220, Fat: 70, Fiber: 30}
	progress := AnalyzeGoalProgress(testGoals(), actual)
	if progress.Status != domain.ProgressOver {
		t.Errorf("status = %q, want over", progress.Status)
	}
}

// TestAnalyzeGoalProgress_OnTrack verifies the 85-115% band with all macros
// satisfied produces no suggestions.
func TestAnalyzeGoalProgress_OnTrack(t *testing.T) {
	actual := domain.NutritionInfo{Calories: 2000, Protein: 150, Carbs: 200, Fat: 65, Fiber: 28}
	progress := AnalyzeGoalProgress(testGoals(), actual)

	if progress.Status != domain.ProgressOnTrack {
		t.Errorf("status = %q, want on_track", progress.Status)
	}
	if len(progress.Suggestions) != 0 {
		t.Errorf("expected no suggestions when fully on track, got %v", progress.Suggestions)
	}
}

// TestAnalyzeGoalProgress_SuggestionsAccumulate verifies that the calorie,
// protein, carb, and fiber rules can all fire on the same day.
func TestAnalyzeGoalProgress_SuggestionsAccumulate(t *testing.T) {
	actual := domain.NutritionInfo{Calories: 800, Protein: 40, Carbs: 60, Fat: 30, Fiber: 8}
	progress := AnalyzeGoalProgress(testGoals(), actual)

	if len(progress.Suggestions) != 4 {
		t.Errorf("expected 4 suggestions (calories, protein, carbs, fiber), got %d: %v",
			len(progress.Suggestions), progress.Suggestions)
	}
}

// TestAnalyzeGoalProgress_ZeroGoals verifies zero-valued goals do not divide
// by zero; the percentage falls back to 0.
func TestAnalyzeGoalProgress_ZeroGoals(t *testing.T) {
	progress := AnalyzeGoalProgress(domain.NutritionGoals{}, domain.NutritionInfo{Calories: 500})
	if progress.Percentages["calories"] != 0 {
		t.Errorf("expected 0%% against a zero goal, got %v", progress.Percentages["calories"])
	}
}
