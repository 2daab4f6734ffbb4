package nutrition

import (
	"math"
	"testing"
	"time"

	"Technically-Fit-Backend/domain"
)

var adjToday = time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)

func adjBaseline() domain.NutritionGoals {
	return domain.NutritionGoals{Calories: 2500, ProteinG: 150, CarbsG: 300, FatG: 80, FiberG: 35, SugarG: 62}
}

func sample(score, hrv, rhr, sleep, strain float64, daysAgo int) domain.RecoverySample {
	return domain.RecoverySample{
		Date:             adjToday.AddDate(0, 0, -daysAgo),
		RecoveryScore:    score,
		HRVScore:         hrv,
		RestingHeartRate: rhr,
		SleepPerformance: sleep,
		StrainYesterday:  strain,
	}
}

func sessionOn(date time.Time) domain.TrainingSessionRecord {
	return domain.TrainingSessionRecord{Date: date, Type: "strength", DurationMin: 60}
}

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestCalculateRecoveryAdjustments_NoHistory verifies the cold-start path:
// rest_day reason, zero deltas, exactly one onboarding recommendation.
func TestCalculateRecoveryAdjustments_NoHistory(t *testing.T) {
	adj := CalculateRecoveryAdjustments(adjBaseline(), nil, nil, adjToday)

	if adj.Reason != domain.ReasonRestDay {
		t.Errorf("reason = %q, want rest_day", adj.Reason)
	}
	if adj.Adjustments != (domain.MacroDeltas{}) {
		t.Errorf("expected zero deltas, got %+v", adj.Adjustments)
	}
	if len(adj.Recommendations) != 1 {
		t.Errorf("expected exactly 1 recommendation, got %d", len(adj.Recommendations))
	}
}

// TestCalculateRecoveryAdjustments_PoorMarkers verifies the compound-marker
// rule (HRV<40 && RHR>70 && sleep<60) fires even with a recovery score above
// the standalone threshold, with the +5%/+15%/+10% deltas.
func TestCalculateRecoveryAdjustments_PoorMarkers(t *testing.T) {
	b := adjBaseline()
	history := []domain.RecoverySample{sample(55, 30, 75, 50, 10, 0)}

	adj := CalculateRecoveryAdjustments(b, history, nil, adjToday)

	if adj.Reason != domain.ReasonRecoveryBoost {
		t.Errorf("reason = %q, want recovery_boost", adj.Reason)
	}
	if !approxEq(adj.Adjustments.CaloriesDelta, b.Calories*0.05) {
		t.Errorf("calories delta = %v, want %v", adj.Adjustments.CaloriesDelta, b.Calories*0.05)
	}
	if !approxEq(adj.Adjustments.CarbsDelta, b.CarbsG*0.15) {
		t.Errorf("carbs delta = %v, want %v", adj.Adjustments.CarbsDelta, b.CarbsG*0.15)
	}
	if !approxEq(adj.Adjustments.ProteinDelta, b.ProteinG*0.10) {
		t.Errorf("protein delta = %v, want %v", adj.Adjustments.ProteinDelta, b.ProteinG*0.10)
	}
	if len(adj.Recommendations) != 4 {
		t.Errorf("expected 4 recommendations, got %d", len(adj.Recommendations))
	}
}

// TestCalculateRecoveryAdjustments_LowScore verifies the standalone score<=40
// branch uses the same deltas but the milder 3-item recommendation set.
func TestCalculateRecoveryAdjustments_LowScore(t *testing.T) {
	b := adjBaseline()
	history := []domain.RecoverySample{sample(35, 60, 55, 85, 8, 0)}

	adj := CalculateRecoveryAdjustments(b, history, nil, adjToday)

	if adj.Reason != domain.ReasonRecoveryBoost {
		t.Errorf("reason = %q, want recovery_boost", adj.Reason)
	}
	if !approxEq(adj.Adjustments.CaloriesDelta, b.Calories*0.05) {
		t.Errorf("calories delta = %v, want %v", adj.Adjustments.CaloriesDelta, b.Calories*0.05)
	}
	if len(adj.Recommendations) != 3 {
		t.Errorf("expected 3 recommendations, got %d", len(adj.Recommendations))
	}
}

// TestCalculateRecoveryAdjustments_WellRecoveredTrim verifies score>80 with a
// strong 7-day average trims calories by 2% and touches no macros.
func TestCalculateRecoveryAdjustments_WellRecoveredTrim(t *testing.T) {
	b := adjBaseline()
	var history []domain.RecoverySample
	for i := 6; i >= 0; i-- {
		history = append(history, sample(82, 65, 52, 90, 9, i))
	}

	adj := CalculateRecoveryAdjustments(b, history, nil, adjToday)

	if adj.Reason != domain.ReasonRestDay {
		t.Errorf("reason = %q, want rest_day", adj.Reason)
	}
	if !approxEq(adj.Adjustments.CaloriesDelta, -b.Calories*0.02) {
		t.Errorf("calories delta = %v, want %v", adj.Adjustments.CaloriesDelta, -b.Calories*0.02)
	}
	if adj.Adjustments.CarbsDelta != 0 || adj.Adjustments.ProteinDelta != 0 {
		t.Errorf("macro deltas should be untouched, got %+v", adj.Adjustments)
	}
}

// TestCalculateRecoveryAdjustments_TrainingDay verifies a scheduled session
// on a normal recovery day yields training_day with +10% carbs / +5% protein
// and post_workout timing.
func TestCalculateRecoveryAdjustments_TrainingDay(t *testing.T) {
	b := adjBaseline()
	history := []domain.RecoverySample{sample(65, 60, 55, 80, 9, 0)}
	sessions := []domain.TrainingSessionRecord{sessionOn(adjToday)}

	adj := CalculateRecoveryAdjustments(b, history, sessions, adjToday)

	if adj.Reason != domain.ReasonTrainingDay {
		t.Errorf("reason = %q, want training_day", adj.Reason)
	}
	if !approxEq(adj.Adjustments.CarbsDelta, b.CarbsG*0.10) {
		t.Errorf("carbs delta = %v, want %v", adj.Adjustments.CarbsDelta, b.CarbsG*0.10)
	}
	if !approxEq(adj.Adjustments.ProteinDelta, b.ProteinG*0.05) {
		t.Errorf("protein delta = %v, want %v", adj.Adjustments.ProteinDelta, b.ProteinG*0.05)
	}
	if adj.Timing != domain.TimingPostWorkout {
		t.Errorf("timing = %q, want post_workout", adj.Timing)
	}
}

// TestCalculateRecoveryAdjustments_BoostBlocksTrainingRelabel verifies the
// training-day rule does not run when a recovery rule already claimed the
// reason: deltas stay at the boost amounts and the reason stays
// recovery_boost, but timing still reflects the scheduled session.
func TestCalculateRecoveryAdjustments_BoostBlocksTrainingRelabel(t *testing.T) {
	b := adjBaseline()
	history := []domain.RecoverySample{sample(35, 60, 55, 85, 8, 0)}
	sessions := []domain.TrainingSessionRecord{sessionOn(adjToday)}

	adj := CalculateRecoveryAdjustments(b, history, sessions, adjToday)

	if adj.Reason != domain.ReasonRecoveryBoost {
		t.Errorf("reason = %q, want recovery_boost", adj.Reason)
	}
	if !approxEq(adj.Adjustments.CarbsDelta, b.CarbsG*0.15) {
		t.Errorf("carbs delta = %v, want boost-only %v", adj.Adjustments.CarbsDelta, b.CarbsG*0.15)
	}
	if adj.Timing != domain.TimingPostWorkout {
		t.Errorf("timing = %q, want post_workout on a scheduled session", adj.Timing)
	}
}

// TestCalculateRecoveryAdjustments_HighStrainStacks verifies strain>15
// reclassifies to high_strain while keeping earlier deltas: a low-score day
// with high strain carries carbs at 15%+20% of baseline.
func TestCalculateRecoveryAdjustments_HighStrainStacks(t *testing.T) {
	b := adjBaseline()
	history := []domain.RecoverySample{sample(35, 60, 55, 85, 17, 0)}

	adj := CalculateRecoveryAdjustments(b, history, nil, adjToday)

	if adj.Reason != domain.ReasonHighStrain {
		t.Errorf("reason = %q, want high_strain", adj.Reason)
	}
	wantCarbs := b.CarbsG*0.15 + b.CarbsG*0.20
	if !approxEq(adj.Adjustments.CarbsDelta, wantCarbs) {
		t.Errorf("carbs delta = %v, want stacked %v", adj.Adjustments.CarbsDelta, wantCarbs)
	}
	wantProtein := b.ProteinG*0.10 + b.ProteinG*0.15
	if !approxEq(adj.Adjustments.ProteinDelta, wantProtein) {
		t.Errorf("protein delta = %v, want stacked %v", adj.Adjustments.ProteinDelta, wantProtein)
	}
	// The calorie bump from the low-score rule survives the relabel.
	if !approxEq(adj.Adjustments.CaloriesDelta, b.Calories*0.05) {
		t.Errorf("calories delta = %v, want %v", adj.Adjustments.CaloriesDelta, b.Calories*0.05)
	}
}

// TestCalculateRecoveryAdjustments_SevenDayWindow verifies only the last 7
// samples feed the average: strong older scores cannot enable the trim when
// the recent week is mediocre.
func TestCalculateRecoveryAdjustments_SevenDayWindow(t *testing.T) {
	var history []domain.RecoverySample
	for i := 13; i >= 7; i-- {
		history = append(history, sample(95, 70, 50, 95, 8, i))
	}
	for i := 6; i >= 1; i-- {
		history = append(history, sample(60, 60, 55, 80, 8, i))
	}
	history = append(history, sample(85, 65, 52, 88, 9, 0))

	adj := CalculateRecoveryAdjustments(adjBaseline(), history, nil, adjToday)

	// avg of last 7 = (60*6 + 85)/7 ~ 63.6, below the 75 gate.
	if adj.Adjustments.CaloriesDelta != 0 {
		t.Errorf("trim fired from stale history: calories delta = %v", adj.Adjustments.CaloriesDelta)
	}
}

// TestCalculateRecoveryAdjustments_Deterministic verifies repeated calls
// with identical inputs agree.
func TestCalculateRecoveryAdjustments_Deterministic(t *testing.T) {
	history := []domain.RecoverySample{sample(35, 30, 75, 50, 17, 0)}
	sessions := []domain.TrainingSessionRecord{sessionOn(adjToday)}

	a := CalculateRecoveryAdjustments(adjBaseline(), history, sessions, adjToday)
	b := CalculateRecoveryAdjustments(adjBaseline(), history, sessions, adjToday)

	if a.Reason != b.Reason || a.Adjustments != b.Adjustments || a.Timing != b.Timing {
		t.Errorf("repeated calls differ: %+v vs %+v", a, b)
	}
}
