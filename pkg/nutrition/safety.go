package nutrition

import (
	"fmt"
	"math"
	"strings"

	"Technically-Fit-Backend/domain"
)

// ApplySafetyRail clamps a goal set against medical conditions, medications,
// and age. Rules are not mutually exclusive; clamps compose in the fields
// they touch. The age>65 floors apply the literal gram values (1.2, 25)
// as absolute minimums.
func ApplySafetyRail(baseline domain.NutritionGoals, conditions, medications []string, age int, latest *domain.RecoverySample) domain.SafetyReport {
	report := domain.SafetyReport{
		AdjustedGoals:         baseline,
		SafetyRecommendations: []string{},
		Restrictions:          []string{},
		Monitoring:            []string{},
	}
	goals := &report.AdjustedGoals

	if hasTag(conditions, "diabetes") || hasTag(conditions, "type_2_diabetes") {
		goals.CarbsG = math.Min(goals.CarbsG, 150)
		goals.SugarG = math.Min(goals.SugarG, 25)
		report.Restrictions = append(report.Restrictions,
			"Carbohydrates limited to 150g/day and sugar to 25g/day for glycemic control.")
		report.Monitoring = append(report.Monitoring,
			"Monitor blood glucose before and after carbohydrate-heavy meals.")
	}

	if hasTag(conditions, "heart_disease") || hasTag(conditions, "hypertension") {
		goals.FatG = math.Min(goals.FatG, goals.Calories*0.25/9)
		report.Restrictions = append(report.Restrictions,
			fmt.Sprintf("Fat limited to %.0fg/day (25%% of calories) for cardiovascular health.", goals.FatG))
		report.Monitoring = append(report.Monitoring,
			"Track sodium intake and blood pressure regularly.")
	}

	if (hasTag(conditions, "kidney_disease") || hasTag(conditions, "ckd")) &&
		(hasTag(conditions, "stage_3_kidney") || hasTag(conditions, "stage_4_kidney")) {
		goals.ProteinG = math.Min(goals.ProteinG, 0.8*goals.Calories/2000)
		report.Restrictions = append(report.Restrictions,
			fmt.Sprintf("Protein limited to %.1fg/day for advanced kidney disease.", goals.ProteinG))
		report.Monitoring = append(report.Monitoring,
			"Regular kidney function labs are essential at this protein level.")
	}

	if age > 65 {
		goals.ProteinG = math.Max(goals.ProteinG, 1.2)
		goals.FiberG = math.Max(goals.FiberG, 25)
		report.SafetyRecommendations = append(report.SafetyRecommendations,
			"Older adults benefit from higher protein and fiber; minimum floors applied.")
	}

	if hasTag(medications, "blood_pressure_medication") {
		report.SafetyRecommendations = append(report.SafetyRecommendations,
			"Blood pressure medication: keep potassium and sodium intake consistent day to day.")
	}
	if hasTag(medications, "diabetes_medication") {
		report.SafetyRecommendations = append(report.SafetyRecommendations,
			"Diabetes medication: keep carbohydrate timing consistent to avoid glucose swings.")
	}

	if len(conditions) > 0 {
		report.SafetyRecommendations = append(report.SafetyRecommendations,
			"Discuss significant diet changes with your healthcare provider first.",
			"Keep emergency contact information accessible during intense training blocks.")

		if latest != nil && latest.RecoveryScore < 50 {
			report.SafetyRecommendations = append(report.SafetyRecommendations,
				"Low recovery with existing conditions: take extra caution with training intensity today.")
		}
	}

	return report
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(strings.TrimSpace(t), tag) {
			return true
		}
	}
	return false
}
