package nutrition

import (
	"time"

	"Technically-Fit-Backend/domain"
)

// fallbackRecoveryScore stands in when averaging an empty window.
const fallbackRecoveryScore = 50.0

// CalculateRecoveryAdjustments produces a delta adjustment for today's goals
// from the recovery history (ascending by date) and today's training
// schedule. Rules run in a fixed order; every percentage delta is computed
// against the original baseline and deltas from multiple rules sum. The
// reason label is overwritten by the last matching rule, with one exception:
// the training-day rule is skipped entirely when a recovery rule already
// claimed the reason. The high-strain rule carries no such gate and always
// reclassifies while keeping earlier deltas.
func CalculateRecoveryAdjustments(baseline domain.NutritionGoals, history []domain.RecoverySample, sessions []domain.TrainingSessionRecord, today time.Time) domain.NutritionAdjustment {
	if len(history) == 0 {
		return domain.NutritionAdjustment{
			Reason: domain.ReasonRestDay,
			Recommendations: []string{
				"Start tracking recovery data to unlock personalized nutrition adjustments.",
			},
		}
	}

	latest := history[len(history)-1]
	avg7 := averageRecoveryScore(lastN(history, 7))

	adj := domain.MacroDeltas{}
	reason := domain.ReasonRestDay
	recommendations := []string{}

	isPoor := latest.HRVScore < 40 && latest.RestingHeartRate > 70 && latest.SleepPerformance < 60
	if isPoor {
		reason = domain.ReasonRecoveryBoost
		adj.CaloriesDelta += baseline.Calories * 0.05
		adj.CarbsDelta += baseline.CarbsG * 0.15
		adj.ProteinDelta += baseline.ProteinG * 0.10
		recommendations = append(recommendations,
			"Your recovery markers are poor across the board. Prioritize nutrition quality today.",
			"Extra carbohydrates will help restore muscle glycogen while you recover.",
			"Increase hydration by at least 500 ml today.",
			"Consider a light session or a full rest day.",
		)
	} else if latest.RecoveryScore <= 40 {
		reason = domain.ReasonRecoveryBoost
		adj.CaloriesDelta += baseline.Calories * 0.05
		adj.CarbsDelta += baseline.CarbsG * 0.15
		adj.ProteinDelta += baseline.ProteinG * 0.10
		recommendations = append(recommendations,
			"Recovery score is low today. A small calorie and carb bump supports recovery.",
			"Favor easy-to-digest carbohydrate sources through the day.",
			"Add roughly 300 ml of extra fluids today.",
		)
	} else if latest.RecoveryScore > 80 && avg7 > 75 {
		adj.CaloriesDelta -= baseline.Calories * 0.02
		recommendations = append(recommendations,
			"Recovery is consistently strong. Maintain your current intake pattern.",
			"A slight calorie trim keeps you aligned with your goal while well-recovered.",
		)
	}

	isTrainingDay := false
	for _, s := range sessions {
		if sameDay(s.Date, today) {
			isTrainingDay = true
			break
		}
	}

	if isTrainingDay && reason != domain.ReasonRecoveryBoost {
		reason = domain.ReasonTrainingDay
		adj.CarbsDelta += baseline.CarbsG * 0.10
		adj.ProteinDelta += baseline.ProteinG * 0.05
		recommendations = append(recommendations,
			"Training day: extra carbs fuel your session and extra protein supports repair.",
			"Time most of your carbs around your workout window.",
		)
	}

	if latest.StrainYesterday > 15 {
		reason = domain.ReasonHighStrain
		adj.CarbsDelta += baseline.CarbsG * 0.20
		adj.ProteinDelta += baseline.ProteinG * 0.15
		recommendations = append(recommendations,
			"Yesterday's strain was very high. Replenish aggressively with carbs and protein.",
			"Do not skimp on meals today; under-fueling after high strain delays recovery.",
		)
	}

	timing := domain.TimingThroughoutDay
	if isTrainingDay || reason == domain.ReasonTrainingDay {
		timing = domain.TimingPostWorkout
	}

	return domain.NutritionAdjustment{
		Reason:          reason,
		Adjustments:     adj,
		Recommendations: recommendations,
		Timing:          timing,
	}
}

func averageRecoveryScore(samples []domain.RecoverySample) float64 {
	if len(samples) == 0 {
		return fallbackRecoveryScore
	}
	var sum float64
	for _, s := range samples {
		sum += s.RecoveryScore
	}
	return sum / float64(len(samples))
}

func lastN(samples []domain.RecoverySample, n int) []domain.RecoverySample {
	if len(samples) <= n {
		return samples
	}
	return samples[len(samples)-n:]
}

// sameDay compares two times by calendar date, ignoring the time component.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
