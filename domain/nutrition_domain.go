package domain

import (
	"errors"
	"time"
)

// Adjustment reasons produced by the recovery adjustment engine. The last
// matching rule wins the label; deltas from all matching rules stack.
const (
	ReasonRecoveryBoost = "recovery_boost"
	ReasonTrainingDay   = "training_day"
	ReasonRestDay       = "rest_day"
	ReasonHighStrain    = "high_strain"
)

const (
	TimingPreWorkout    = "pre_workout"
	TimingPostWorkout   = "post_workout"
	TimingThroughoutDay = "throughout_day"
)

const (
	ProgressUnder   = "under"
	ProgressOnTrack = "on_track"
	ProgressOver    = "over"
)

var (
	MessageSuccessGetGoals         = "nutrition goals retrieved successfully"
	MessageSuccessRecalculateGoals = "nutrition goals recalculated successfully"
	MessageSuccessGetProgress      = "daily progress retrieved successfully"
	MessageSuccessGetAdjustment    = "recovery adjustment retrieved successfully"
	MessageSuccessGetMakeupPlan    = "protein makeup plan retrieved successfully"
	MessageSuccessLogRecovery      = "recovery sample logged successfully"
	MessageSuccessLogTraining      = "training session logged successfully"
	MessageSuccessGetTraining      = "training sessions retrieved successfully"

	MessageFailedGetGoals         = "failed to retrieve nutrition goals"
	MessageFailedRecalculateGoals = "failed to recalculate nutrition goals"
	MessageFailedGetProgress      = "failed to retrieve daily progress"
	MessageFailedGetAdjustment    = "failed to retrieve recovery adjustment"
	MessageFailedGetMakeupPlan    = "failed to retrieve protein makeup plan"
	MessageFailedLogRecovery      = "failed to log recovery sample"
	MessageFailedLogTraining      = "failed to log training session"
	MessageFailedGetTraining      = "failed to retrieve training sessions"

	ErrGoalsNotFound      = errors.New("nutrition goals not found")
	ErrProfileIncomplete  = errors.New("biometric profile incomplete")
	ErrInvalidDate        = errors.New("invalid date format")
	ErrInvalidRecoveryLog = errors.New("recovery score must be between 0 and 100")
)

type (
	// NutritionGoals is a daily calorie/macro target snapshot. Treated as an
	// immutable value: the adjustment engine and the safety rail always return
	// a new copy, never mutate in place.
	NutritionGoals struct {
		Calories float64 `json:"calories"`
		ProteinG float64 `json:"protein_g"`
		CarbsG   float64 `json:"carbs_g"`
		FatG     float64 `json:"fat_g"`
		FiberG   float64 `json:"fiber_g"`
		SugarG   float64 `json:"sugar_g"`
	}

	// NutritionInfo is an actual-consumption or per-serving record.
	NutritionInfo struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
		Fiber    float64 `json:"fiber"`
		Sugar    float64 `json:"sugar"`
		SodiumMg float64 `json:"sodium_mg"`
	}

	// BiometricProfile carries the goal calculator inputs. Values are caller
	// preconditions (age, weight, height > 0); the calculator does not
	// validate them.
	BiometricProfile struct {
		Age           int     `json:"age"`
		WeightKG      float64 `json:"weight_kg"`
		HeightCM      float64 `json:"height_cm"`
		Sex           string  `json:"sex"`            // male | female
		ActivityLevel string  `json:"activity_level"` // sedentary | light | moderate | active | very_active
		Goal          string  `json:"goal"`           // lose_weight | maintain | gain_weight | gain_muscle
	}

	// RecoverySample is one day's physiological snapshot, consumed read-only.
	RecoverySample struct {
		Date             time.Time `json:"date"`
		RecoveryScore    float64   `json:"recovery_score"` // 0-100
		HRVScore         float64   `json:"hrv_score"`
		RestingHeartRate float64   `json:"resting_heart_rate"`
		SleepPerformance float64   `json:"sleep_performance"` // 0-100
		StrainYesterday  float64   `json:"strain_yesterday"`
	}

	// TrainingSessionRecord is consumed only for its date by the engine.
	TrainingSessionRecord struct {
		Date        time.Time `json:"date"`
		Type        string    `json:"type,omitempty"`
		DurationMin int       `json:"duration_min,omitempty"`
	}

	MacroDeltas struct {
		CaloriesDelta float64 `json:"calories_delta"`
		ProteinDelta  float64 `json:"protein_delta"`
		CarbsDelta    float64 `json:"carbs_delta"`
		FatDelta      float64 `json:"fat_delta"`
	}

	// NutritionAdjustment is the transient output of the recovery adjustment
	// engine; recomputed per evaluation, never persisted.
	NutritionAdjustment struct {
		Reason          string      `json:"reason"`
		Adjustments     MacroDeltas `json:"adjustments"`
		Recommendations []string    `json:"recommendations"`
		Timing          string      `json:"timing,omitempty"`
	}

	GoalProgress struct {
		Percentages map[string]float64 `json:"percentages"`
		Status      string             `json:"status"`
		Suggestions []string           `json:"suggestions"`
	}

	// ProteinDay is one tracked day's (actual, target) protein pair.
	ProteinDay struct {
		Date          time.Time `json:"date"`
		ActualProtein float64   `json:"actual_protein"`
		TargetProtein float64   `json:"target_protein"`
	}

	// ProteinMakeupPlan redistributes a cumulative protein shortfall across
	// remaining tracking days. Adjustments is keyed by date (YYYY-MM-DD).
	ProteinMakeupPlan struct {
		Adjustments     map[string]float64 `json:"adjustments"`
		Recommendations []string           `json:"recommendations"`
		TotalDeficit    float64            `json:"total_deficit"`
	}

	// SafetyReport is the output of the health safety rail.
	SafetyReport struct {
		AdjustedGoals         NutritionGoals `json:"adjusted_goals"`
		SafetyRecommendations []string       `json:"safety_recommendations"`
		Restrictions          []string       `json:"restrictions"`
		Monitoring            []string       `json:"monitoring"`
	}

	LogRecoveryRequest struct {
		Date             string  `json:"date" validate:"required"`
		RecoveryScore    float64 `json:"recovery_score" validate:"min=0,max=100"`
		HRVScore         float64 `json:"hrv_score" validate:"min=0"`
		RestingHeartRate float64 `json:"resting_heart_rate" validate:"min=0"`
		SleepPerformance float64 `json:"sleep_performance" validate:"min=0,max=100"`
		StrainYesterday  float64 `json:"strain_yesterday" validate:"min=0"`
	}

	LogTrainingSessionRequest struct {
		Date        string `json:"date" validate:"required"`
		Type        string `json:"type" validate:"required"`
		DurationMin int    `json:"duration_min" validate:"required,min=1"`
	}

	GoalsResponse struct {
		Goals                 NutritionGoals `json:"goals"`
		SafetyRecommendations []string       `json:"safety_recommendations,omitempty"`
		Restrictions          []string       `json:"restrictions,omitempty"`
		Monitoring            []string       `json:"monitoring,omitempty"`
		CalculatedAt          time.Time      `json:"calculated_at"`
	}

	DailyProgressResponse struct {
		Date     string        `json:"date"`
		Totals   NutritionInfo `json:"totals"`
		Progress GoalProgress  `json:"progress"`
	}
)
