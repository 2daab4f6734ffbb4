package nutrition

import (
	"testing"
	"time"

	"Technically-Fit-Backend/domain"
)

var deficitToday = time.Date(2026, 3, 12, 7, 0, 0, 0, time.UTC)

func proteinWeek(targets, actuals []float64) []domain.ProteinDay {
	week := make([]domain.ProteinDay, len(targets))
	for i := range targets {
		week[i] = domain.ProteinDay{
			Date:          deficitToday.AddDate(0, 0, -(len(targets) - i)),
			TargetProtein: targets[i],
			ActualProtein: actuals[i],
		}
	}
	return week
}

// TestPlanProteinMakeup_EmptyWeek verifies no tracked days yields an empty
// plan with no recommendations.
func TestPlanProteinMakeup_EmptyWeek(t *testing.T) {
	plan := PlanProteinMakeup(nil, 3, adjBaseline(), deficitToday)
	if plan.TotalDeficit != 0 || len(plan.Adjustments) != 0 || len(plan.Recommendations) != 0 {
		t.Errorf("expected empty plan, got %+v", plan)
	}
}

// TestPlanProteinMakeup_NoRemainingDays verifies zero remaining days short-
// circuits before any deficit math.
func TestPlanProteinMakeup_NoRemainingDays(t *testing.T) {
	week := proteinWeek([]float64{150, 150}, []float64{100, 100})
	plan := PlanProteinMakeup(week, 0, adjBaseline(), deficitToday)
	if len(plan.Adjustments) != 0 {
		t.Errorf("expected no adjustments with 0 remaining days, got %v", plan.Adjustments)
	}
}

// TestPlanProteinMakeup_OnTrack verifies a surplus week reports zero deficit
// and a single on-track message.
func TestPlanProteinMakeup_OnTrack(t *testing.T) {
	week := proteinWeek([]float64{150, 150, 150}, []float64{160, 150, 155})
	plan := PlanProteinMakeup(week, 4, adjBaseline(), deficitToday)

	if plan.TotalDeficit != 0 {
		t.Errorf("deficit = %v, want 0", plan.TotalDeficit)
	}
	if len(plan.Adjustments) != 0 {
		t.Errorf("expected no per-day adjustments, got %v", plan.Adjustments)
	}
	if len(plan.Recommendations) != 1 {
		t.Errorf("expected 1 recommendation, got %v", plan.Recommendations)
	}
}

// TestPlanProteinMakeup_EvenSplit verifies an uncapped deficit distributes as
// ceil(deficit/days) on consecutive dates starting today.
func TestPlanProteinMakeup_EvenSplit(t *testing.T) {
	// 100g short, 3 days left -> ceil(100/3) = 34 per day.
	week := proteinWeek([]float64{150, 150, 150, 150}, []float64{150, 120, 130, 100})
	plan := PlanProteinMakeup(week, 3, adjBaseline(), deficitToday)

	if plan.TotalDeficit != 100 {
		t.Errorf("deficit = %v, want 100", plan.TotalDeficit)
	}
	if len(plan.Adjustments) != 3 {
		t.Fatalf("expected 3 adjustment days, got %d", len(plan.Adjustments))
	}
	for i := 0; i < 3; i++ {
		day := deficitToday.AddDate(0, 0, i).Format("2006-01-02")
		if plan.Adjustments[day] != 34 {
			t.Errorf("adjustment for %s = %v, want 34", day, plan.Adjustments[day])
		}
	}
}

// TestPlanProteinMakeup_CapBinds verifies the per-day bump clamps at 30% of
// the baseline protein target while TotalDeficit still reports the full gap.
func TestPlanProteinMakeup_CapBinds(t *testing.T) {
	// baseline protein 150 -> cap = ceil(45) = 45; 200g gap in 1 day wants 200.
	week := proteinWeek([]float64{200, 200}, []float64{100, 100})
	plan := PlanProteinMakeup(week, 1, adjBaseline(), deficitToday)

	if plan.TotalDeficit != 200 {
		t.Errorf("deficit = %v, want the full 200 even when capped", plan.TotalDeficit)
	}
	day := deficitToday.Format("2006-01-02")
	if plan.Adjustments[day] != 45 {
		t.Errorf("adjustment = %v, want capped 45", plan.Adjustments[day])
	}
}

// TestPlanProteinMakeup_TimingHint verifies the closing hint flips between
// "every meal" urgency (<=2 days) and even spreading (>2 days).
func TestPlanProteinMakeup_TimingHint(t *testing.T) {
	week := proteinWeek([]float64{150, 150}, []float64{120, 120})

	urgent := PlanProteinMakeup(week, 2, adjBaseline(), deficitToday)
	last := urgent.Recommendations[len(urgent.Recommendations)-1]
	if last != "Few days left: prioritize protein at every meal." {
		t.Errorf("urgent hint = %q", last)
	}

	relaxed := PlanProteinMakeup(week, 5, adjBaseline(), deficitToday)
	last = relaxed.Recommendations[len(relaxed.Recommendations)-1]
	if last != "Spread the extra protein evenly across your meals." {
		t.Errorf("relaxed hint = %q", last)
	}
}
