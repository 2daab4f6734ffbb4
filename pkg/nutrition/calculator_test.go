package nutrition

import (
	"math"
	"testing"

	"Technically-Fit-Backend/domain"
)

// baseProfile returns a fully-populated profile for calculator tests.
// Individual tests override specific fields.
func baseProfile() domain.BiometricProfile {
	return domain.BiometricProfile{
		Age:           30,
		WeightKG:      70,
		HeightCM:      175,
		Sex:           "male",
		ActivityLevel: "moderate",
		Goal:          "gain_muscle",
	}
}

// TestCalculateGoals_GainMuscleScenario verifies the full formula chain for
// a known profile rather than a fixed literal:
// BMR = 10*70 + 6.25*175 - 5*30 + 5 = 1648.75
// TDEE = 1648.75 * 1.55 = 2555.5625
// Calories = round(2555.5625 * 1.15) = 2939
// Protein = 2.2*70 = 154, Fat = 70, Carbs = round((2939-616-630)/4) = 423
func TestCalculateGoals_GainMuscleScenario(t *testing.T) {
	goals := CalculateGoals(baseProfile())

	if goals.Calories != 2939 {
		t.Errorf("calories = %.0f, want 2939", goals.Calories)
	}
	if goals.ProteinG != 154 {
		t.Errorf("protein = %.0f, want 154", goals.ProteinG)
	}
	if goals.FatG != 70 {
		t.Errorf("fat = %.0f, want 70", goals.FatG)
	}
	if goals.CarbsG != 423 {
		t.Errorf("carbs = %.0f, want 423", goals.CarbsG)
	}
	if goals.FiberG != 41 {
		t.Errorf("fiber = %.0f, want 41", goals.FiberG)
	}
	if goals.SugarG != 73 {
		t.Errorf("sugar = %.0f, want 73", goals.SugarG)
	}

	if goals.Calories <= 2000 {
		t.Errorf("expected calories > 2000 for gain_muscle, got %.0f", goals.Calories)
	}
	if goals.ProteinG <= 100 {
		t.Errorf("expected protein > 100g for gain_muscle, got %.0f", goals.ProteinG)
	}
}

// TestCalculateGoals_GoalMonotonicity verifies gain_muscle > maintain >
// lose_weight calories for otherwise identical inputs.
func TestCalculateGoals_GoalMonotonicity(t *testing.T) {
	p := baseProfile()

	p.Goal = "gain_muscle"
	gain := CalculateGoals(p).Calories
	p.Goal = "maintain"
	maintain := CalculateGoals(p).Calories
	p.Goal = "lose_weight"
	lose := CalculateGoals(p).Calories

	if !(gain > maintain && maintain > lose) {
		t.Errorf("calorie ordering violated: gain_muscle=%.0f maintain=%.0f lose_weight=%.0f", gain, maintain, lose)
	}
}

// TestCalculateGoals_FemaleBMRLower verifies female calories come out below
// male for identical age/weight/height (the -161 vs +5 BMR constant).
func TestCalculateGoals_FemaleBMRLower(t *testing.T) {
	p := baseProfile()
	male := CalculateGoals(p).Calories
	p.Sex = "female"
	female := CalculateGoals(p).Calories

	if female >= male {
		t.Errorf("female calories (%.0f) should be below male (%.0f)", female, male)
	}
}

// TestCalculateGoals_MacroReconciliation verifies the creation-time
// invariant calories ~= protein*4 + carbs*4 + fat*9 within rounding slack.
func TestCalculateGoals_MacroReconciliation(t *testing.T) {
	for _, goal := range []string{"lose_weight", "maintain", "gain_weight", "gain_muscle"} {
		p := baseProfile()
		p.Goal = goal
		g := CalculateGoals(p)

		macroCalories := g.ProteinG*4 + g.CarbsG*4 + g.FatG*9
		if math.Abs(macroCalories-g.Calories) > 10 {
			t.Errorf("%s: macros reconcile to %.0f kcal, goal says %.0f", goal, macroCalories, g.Calories)
		}
	}
}

// TestCalculateGoals_Deterministic verifies identical inputs give identical
// outputs.
func TestCalculateGoals_Deterministic(t *testing.T) {
	a := CalculateGoals(baseProfile())
	b := CalculateGoals(baseProfile())
	if a != b {
		t.Errorf("repeated calls differ: %+v vs %+v", a, b)
	}
}
