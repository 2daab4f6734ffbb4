package mealplan

import (
	"fmt"
	"math"
	"strings"
	"time"

	"Technically-Fit-Backend/domain"
	"Technically-Fit-Backend/pkg/nutrition"
)

const defaultDurationDays = 7

// slotFraction is the share of the day's adjusted goal allocated to a slot.
type slotFraction struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

var slotFractions = map[string]slotFraction{
	domain.MealTypeBreakfast: {Calories: 0.25, Protein: 0.25, Carbs: 0.30, Fat: 0.20},
	domain.MealTypeLunch:     {Calories: 0.30, Protein: 0.30, Carbs: 0.35, Fat: 0.25},
	domain.MealTypeDinner:    {Calories: 0.30, Protein: 0.30, Carbs: 0.25, Fat: 0.30},
	domain.MealTypeSnack:     {Calories: 0.15, Protein: 0.15, Carbs: 0.10, Fat: 0.25},
}

// Generate assembles a multi-day meal plan. Each day the baseline goals are
// run through the recovery adjustment engine (when recovery data exists),
// partitioned across meal slots by the fraction table, and filled from the
// meal templates. Training days shift lunch/dinner fractions toward carbs
// and protein. Pure: the caller injects today's date.
func Generate(userName string, weightKG float64, goals domain.NutritionGoals, prefs domain.MealPlanPreferences, recovery []domain.RecoverySample, schedule []domain.TrainingSessionRecord, durationDays int, today time.Time) domain.GeneratedMealPlan {
	if durationDays <= 0 {
		durationDays = defaultDurationDays
	}

	var days []domain.MealPlanDay
	var planTotal domain.NutritionInfo
	firstDayGoals := goals

	for d := 1; d <= durationDays; d++ {
		date := today.AddDate(0, 0, d-1)

		adjusted := goals
		if len(recovery) > 0 {
			adj := nutrition.CalculateRecoveryAdjustments(goals, recovery, schedule, date)
			adjusted.Calories += adj.Adjustments.CaloriesDelta
			adjusted.ProteinG += adj.Adjustments.ProteinDelta
			adjusted.CarbsG += adj.Adjustments.CarbsDelta
			adjusted.FatG += adj.Adjustments.FatDelta
		}
		if d == 1 {
			firstDayGoals = adjusted
		}

		training := isTrainingDay(schedule, date)
		day := buildDay(d, date, adjusted, prefs.SnacksPerDay, training)
		days = append(days, day)
		planTotal = addNutrition(planTotal, day.TotalNutrition)
	}

	avg := averageNutrition(planTotal, durationDays)
	goalTags := deriveGoalTags(firstDayGoals, weightKG)

	plan := domain.GeneratedMealPlan{
		Name:            fmt.Sprintf("%d-Day Adaptive Nutrition Plan for %s", durationDays, userName),
		Description:     fmt.Sprintf("A %d-day plan targeting %s, adjusted daily from your recovery and training signals.", durationDays, strings.Join(goalTags, ", ")),
		Duration:        durationDays,
		Goals:           goalTags,
		Preferences:     prefs,
		Days:            days,
		TotalNutrition:  planTotal,
		DailyAverage:    avg,
		Recommendations: buildRecommendations(firstDayGoals, weightKG, prefs, recovery),
	}
	return plan
}

func buildDay(dayNumber int, date time.Time, goals domain.NutritionGoals, snacks int, training bool) domain.MealPlanDay {
	slots := []string{domain.MealTypeBreakfast, domain.MealTypeLunch, domain.MealTypeDinner}
	for i := 0; i < snacks; i++ {
		slots = append(slots, domain.MealTypeSnack)
	}

	var meals []domain.Meal
	var dayTotal domain.NutritionInfo
	for i, slot := range slots {
		frac := slotFractions[slot]
		if training && (slot == domain.MealTypeLunch || slot == domain.MealTypeDinner) {
			frac.Carbs += 0.05
			frac.Protein += 0.03
		}

		target := domain.NutritionInfo{
			Calories: math.Round(goals.Calories * frac.Calories),
			Protein:  round1(goals.ProteinG * frac.Protein),
			Carbs:    round1(goals.CarbsG * frac.Carbs),
			Fat:      round1(goals.FatG * frac.Fat),
		}

		foods := templateFor(slot, dayNumber, i)
		var mealTotal domain.NutritionInfo
		for _, f := range foods {
			mealTotal = addNutrition(mealTotal, f.Nutrition)
		}

		meals = append(meals, domain.Meal{
			Type:            slot,
			TargetNutrition: target,
			Foods:           foods,
			TotalNutrition:  mealTotal,
		})
		dayTotal = addNutrition(dayTotal, mealTotal)
	}

	return domain.MealPlanDay{
		DayNumber:      dayNumber,
		Date:           date.Format("2006-01-02"),
		Meals:          meals,
		TotalNutrition: dayTotal,
	}
}

// deriveGoalTags infers the plan's goal labels from the final, already
// adjusted goal numbers rather than the user's stated biometric goal.
func deriveGoalTags(goals domain.NutritionGoals, weightKG float64) []string {
	if weightKG <= 0 {
		return []string{"maintenance"}
	}
	calsPerKG := goals.Calories / weightKG
	proteinPerKG := goals.ProteinG / weightKG

	switch {
	case proteinPerKG >= 2.0 && calsPerKG >= 34:
		return []string{"muscle_gain"}
	case calsPerKG < 30:
		return []string{"weight_loss"}
	case calsPerKG > 38:
		return []string{"weight_gain"}
	default:
		return []string{"maintenance"}
	}
}

func buildRecommendations(goals domain.NutritionGoals, weightKG float64, prefs domain.MealPlanPreferences, recovery []domain.RecoverySample) []string {
	recs := []string{}

	if weightKG > 0 && goals.ProteinG > weightKG*1.6 {
		recs = append(recs,
			"This plan is protein-focused. Distribute protein across all meals for better absorption.")
	}
	if goals.Calories > 0 && goals.CarbsG*4 < goals.Calories*0.40 {
		recs = append(recs,
			"Carbs sit below 40% of calories. Consider adding carbs around training if energy dips.")
	}
	if len(recovery) > 0 && recovery[len(recovery)-1].RecoveryScore < 50 {
		recs = append(recs,
			"Your latest recovery score is low. Follow the adjusted targets closely this week.")
	}
	if prefs.CookingSkill == "beginner" {
		recs = append(recs,
			"Recipes are kept simple. Batch-cook proteins and grains to stay consistent.")
	}
	if prefs.Budget == "low" {
		recs = append(recs,
			"On a budget: eggs, oats, frozen vegetables, and canned fish hit the same targets for less.")
	}

	return recs
}

// feedbackNotes pairs lower-cased substrings with the note appended when any
// feedback string contains one of them. Ordered; literal matching, no NLP.
var feedbackNotes = []struct {
	keywords []string
	note     string
}{
	{[]string{"hungry", "not enough"}, "You reported hunger: bump portion sizes by 10-15%, prioritizing protein and fiber."},
	{[]string{"tired", "low energy"}, "You reported low energy: shift more carbohydrates to earlier meals and pre-training."},
	{[]string{"expensive", "cost"}, "Cost concerns noted: swap in budget proteins like eggs, legumes, and canned fish."},
}

// Optimize appends recommendations derived from free-text feedback via
// ordered case-insensitive substring matching, plus a consistency note when
// progress shows under-eating. Returns the notes that were appended.
func Optimize(plan *domain.GeneratedMealPlan, feedback []string, progress *domain.GoalProgress) []string {
	lowered := make([]string, len(feedback))
	for i, f := range feedback {
		lowered[i] = strings.ToLower(f)
	}

	var notes []string
	for _, fn := range feedbackNotes {
		if matchesAny(lowered, fn.keywords) {
			notes = append(notes, fn.note)
		}
	}

	if progress != nil && progress.Status == domain.ProgressUnder {
		notes = append(notes,
			"Logged intake is running under target; eat the planned portions in full before adjusting further.")
	}

	plan.Recommendations = append(plan.Recommendations, notes...)
	return notes
}

func matchesAny(lowered []string, keywords []string) bool {
	for _, text := range lowered {
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
	}
	return false
}

func isTrainingDay(schedule []domain.TrainingSessionRecord, date time.Time) bool {
	for _, s := range schedule {
		sy, sm, sd := s.Date.Date()
		dy, dm, dd := date.Date()
		if sy == dy && sm == dm && sd == dd {
			return true
		}
	}
	return false
}

func addNutrition(a, b domain.NutritionInfo) domain.NutritionInfo {
	return domain.NutritionInfo{
		Calories: a.Calories + b.Calories,
		Protein:  a.Protein + b.Protein,
		Carbs:    a.Carbs + b.Carbs,
		Fat:      a.Fat + b.Fat,
		Fiber:    a.Fiber + b.Fiber,
		Sugar:    a.Sugar + b.Sugar,
		SodiumMg: a.SodiumMg + b.SodiumMg,
	}
}

func averageNutrition(total domain.NutritionInfo, days int) domain.NutritionInfo {
	if days <= 0 {
		return domain.NutritionInfo{}
	}
	n := float64(days)
	return domain.NutritionInfo{
		Calories: math.Round(total.Calories / n),
		Protein:  math.Round(total.Protein / n),
		Carbs:    math.Round(total.Carbs / n),
		Fat:      math.Round(total.Fat / n),
		Fiber:    math.Round(total.Fiber / n),
		Sugar:    math.Round(total.Sugar / n),
		SodiumMg: math.Round(total.SodiumMg / n),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
