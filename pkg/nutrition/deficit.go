package nutrition

import (
	"fmt"
	"math"
	"time"

	"Technically-Fit-Backend/domain"
)

// makeupCapFraction limits per-day makeup protein to a fraction of the
// baseline daily protein target.
const makeupCapFraction = 0.30

// PlanProteinMakeup redistributes the week's cumulative protein shortfall
// across the remaining tracking days, starting today. Per-day extra grams
// are capped at 30% of the baseline protein target; when the cap binds, the
// plan reports the undeliverable remainder instead of silently dropping it.
// TotalDeficit always reports the full shortfall, capped or not.
func PlanProteinMakeup(week []domain.ProteinDay, remainingDays int, baseline domain.NutritionGoals, today time.Time) domain.ProteinMakeupPlan {
	plan := domain.ProteinMakeupPlan{
		Adjustments:     map[string]float64{},
		Recommendations: []string{},
	}

	if len(week) == 0 || remainingDays <= 0 {
		return plan
	}

	var actual, target float64
	for _, d := range week {
		actual += d.ActualProtein
		target += d.TargetProtein
	}
	totalDeficit := math.Max(0, target-actual)
	plan.TotalDeficit = totalDeficit

	if totalDeficit == 0 {
		plan.Recommendations = append(plan.Recommendations,
			"You're on track with protein this week. Keep it up.")
		return plan
	}

	perDay := math.Ceil(totalDeficit / float64(remainingDays))
	cap := math.Ceil(baseline.ProteinG * makeupCapFraction)

	grams := perDay
	if perDay > cap {
		grams = cap
		deliverable := cap * float64(remainingDays)
		plan.Recommendations = append(plan.Recommendations, fmt.Sprintf(
			"Your %.0fg deficit would need %.0fg/day, above the safe daily bump of %.0fg. Planning %.0fg of the %.0fg instead.",
			totalDeficit, perDay, cap, deliverable, totalDeficit))
	} else {
		plan.Recommendations = append(plan.Recommendations, fmt.Sprintf(
			"Add %.0fg of protein per day over the next %d day(s) to close this week's %.0fg gap.",
			grams, remainingDays, totalDeficit))
	}

	for i := 0; i < remainingDays; i++ {
		day := today.AddDate(0, 0, i).Format("2006-01-02")
		plan.Adjustments[day] = grams
	}

	if remainingDays <= 2 {
		plan.Recommendations = append(plan.Recommendations,
			"Few days left: prioritize protein at every meal.")
	} else {
		plan.Recommendations = append(plan.Recommendations,
			"Spread the extra protein evenly across your meals.")
	}

	return plan
}
