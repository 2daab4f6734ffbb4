package nutrition

import (
	"context"
	"testing"
	"time"

	"Technically-Fit-Backend/domain"
	"Technically-Fit-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeNutritionRepository keeps snapshots and logs in memory.
type fakeNutritionRepository struct {
	snapshots []*entities.NutritionGoalSnapshot
	recovery  []*entities.RecoveryData
	sessions  []*entities.TrainingSession
}

func (f *fakeNutritionRepository) CreateGoalSnapshot(_ context.Context, snapshot *entities.NutritionGoalSnapshot) error {
	f.snapshots = append(f.snapshots, snapshot)
	return nil
}

func (f *fakeNutritionRepository) GetLatestGoalSnapshot(_ context.Context, _ string) (*entities.NutritionGoalSnapshot, error) {
	if len(f.snapshots) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return f.snapshots[len(f.snapshots)-1], nil
}

func (f *fakeNutritionRepository) GetGoalSnapshotForDate(_ context.Context, _ string, date time.Time) (*entities.NutritionGoalSnapshot, error) {
	var match *entities.NutritionGoalSnapshot
	for _, s := range f.snapshots {
		if !s.Date.After(date) {
			match = s
		}
	}
	if match == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return match, nil
}

func (f *fakeNutritionRepository) UpsertRecovery(_ context.Context, sample *entities.RecoveryData) error {
	f.recovery = append(f.recovery, sample)
	return nil
}

func (f *fakeNutritionRepository) GetRecoveryRange(_ context.Context, _ string, start, end time.Time) ([]*entities.RecoveryData, error) {
	var out []*entities.RecoveryData
	for _, s := range f.recovery {
		if !s.Date.Before(start) && s.Date.Before(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeNutritionRepository) CreateTrainingSession(_ context.Context, session *entities.TrainingSession) error {
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeNutritionRepository) GetTrainingSessions(_ context.Context, _ string, start, end time.Time) ([]*entities.TrainingSession, error) {
	var out []*entities.TrainingSession
	for _, s := range f.sessions {
		if !s.Date.Before(start) && s.Date.Before(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeEntrySource serves logged entries keyed by YYYY-MM-DD.
type fakeEntrySource struct {
	entries map[string][]*entities.FoodEntry
}

func (f *fakeEntrySource) GetEntriesByDate(_ context.Context, _ string, date time.Time) ([]*entities.FoodEntry, error) {
	return f.entries[date.Format("2006-01-02")], nil
}

// fakeUserRepository serves a single user.
type fakeUserRepository struct {
	user *entities.User
}

func (f *fakeUserRepository) CreateUser(_ context.Context, _ *entities.User) error { return nil }
func (f *fakeUserRepository) UpdateUser(_ context.Context, _ *entities.User) error { return nil }

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, _ string) (*entities.User, error) {
	if f.user == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.user, nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, _ string) (*entities.User, error) {
	if f.user == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.user, nil
}

func completeUser() *entities.User {
	return &entities.User{
		ID:            uuid.New(),
		Name:          "Raka",
		Email:         "raka@example.com",
		Age:           30,
		WeightKG:      70,
		HeightCM:      175,
		Sex:           "male",
		ActivityLevel: "moderate",
		Goal:          "gain_muscle",
	}
}

// TestRecalculateGoals_PersistsSnapshot verifies a recalculation writes a
// snapshot matching the calculator output for a condition-free user.
func TestRecalculateGoals_PersistsSnapshot(t *testing.T) {
	repo := &fakeNutritionRepository{}
	svc := NewNutritionService(repo, &fakeEntrySource{}, &fakeUserRepository{user: completeUser()})

	res, err := svc.RecalculateGoals(context.Background(), uuid.NewString())
	if err != nil {
		t.Fatalf("RecalculateGoals: %v", err)
	}

	if res.Goals.Calories != 2939 {
		t.Errorf("calories = %.0f, want 2939", res.Goals.Calories)
	}
	if len(repo.snapshots) != 1 {
		t.Fatalf("expected 1 persisted snapshot, got %d", len(repo.snapshots))
	}
	if repo.snapshots[0].ProteinG != res.Goals.ProteinG {
		t.Errorf("snapshot protein %.0f differs from response %.0f", repo.snapshots[0].ProteinG, res.Goals.ProteinG)
	}
}

// TestRecalculateGoals_IncompleteProfile verifies missing biometrics abort
// before anything is persisted.
func TestRecalculateGoals_IncompleteProfile(t *testing.T) {
	u := completeUser()
	u.WeightKG = 0
	repo := &fakeNutritionRepository{}
	svc := NewNutritionService(repo, &fakeEntrySource{}, &fakeUserRepository{user: u})

	_, err := svc.RecalculateGoals(context.Background(), uuid.NewString())
	if err != domain.ErrProfileIncomplete {
		t.Errorf("err = %v, want ErrProfileIncomplete", err)
	}
	if len(repo.snapshots) != 0 {
		t.Errorf("snapshot persisted despite incomplete profile")
	}
}

// TestGetGoals_RecalculatesWhenEmpty verifies the lazy first calculation.
func TestGetGoals_RecalculatesWhenEmpty(t *testing.T) {
	repo := &fakeNutritionRepository{}
	svc := NewNutritionService(repo, &fakeEntrySource{}, &fakeUserRepository{user: completeUser()})

	res, err := svc.GetGoals(context.Background(), uuid.NewString())
	if err != nil {
		t.Fatalf("GetGoals: %v", err)
	}
	if res.Goals.Calories == 0 || len(repo.snapshots) != 1 {
		t.Errorf("expected lazy recalculation to persist a snapshot, got %d", len(repo.snapshots))
	}
}

// TestGetProteinMakeupPlan_WeekWindow verifies the Monday-anchored window:
// on a Thursday, three days (Mon-Wed) are tracked and four remain.
func TestGetProteinMakeupPlan_WeekWindow(t *testing.T) {
	thursday := time.Date(2026, 3, 19, 10, 0, 0, 0, time.UTC)

	u := completeUser()
	repo := &fakeNutritionRepository{
		snapshots: []*entities.NutritionGoalSnapshot{{
			ID: uuid.New(), UserID: u.ID, Date: thursday.AddDate(0, 0, -30),
			Calories: 2500, ProteinG: 150, CarbsG: 300, FatG: 80, FiberG: 35, SugarG: 62,
		}},
	}

	// 100g logged against a 150g target on each tracked day: 150g deficit.
	entries := map[string][]*entities.FoodEntry{}
	for i := 1; i <= 3; i++ {
		day := thursday.AddDate(0, 0, -i)
		entries[day.Format("2006-01-02")] = []*entities.FoodEntry{{Protein: 100}}
	}

	svc := NewNutritionService(repo, &fakeEntrySource{entries: entries}, &fakeUserRepository{user: u})

	plan, err := svc.GetProteinMakeupPlan(context.Background(), u.ID.String(), thursday)
	if err != nil {
		t.Fatalf("GetProteinMakeupPlan: %v", err)
	}

	if plan.TotalDeficit != 150 {
		t.Errorf("deficit = %v, want 150", plan.TotalDeficit)
	}
	if len(plan.Adjustments) != 4 {
		t.Fatalf("expected 4 remaining days Thu-Sun, got %d", len(plan.Adjustments))
	}
	// ceil(150/4) = 38 per day, under the 45g cap.
	if plan.Adjustments["2026-03-19"] != 38 {
		t.Errorf("Thursday adjustment = %v, want 38", plan.Adjustments["2026-03-19"])
	}
}

// TestGetProteinMakeupPlan_MondayEmpty verifies that on a Monday no days are
// tracked yet and the plan is empty.
func TestGetProteinMakeupPlan_MondayEmpty(t *testing.T) {
	monday := time.Date(2026, 3, 16, 8, 0, 0, 0, time.UTC)
	u := completeUser()
	repo := &fakeNutritionRepository{
		snapshots: []*entities.NutritionGoalSnapshot{{
			ID: uuid.New(), UserID: u.ID, Date: monday.AddDate(0, 0, -30),
			Calories: 2500, ProteinG: 150,
		}},
	}
	svc := NewNutritionService(repo, &fakeEntrySource{}, &fakeUserRepository{user: u})

	plan, err := svc.GetProteinMakeupPlan(context.Background(), u.ID.String(), monday)
	if err != nil {
		t.Fatalf("GetProteinMakeupPlan: %v", err)
	}
	if plan.TotalDeficit != 0 || len(plan.Adjustments) != 0 {
		t.Errorf("expected empty plan on Monday, got %+v", plan)
	}
}

// TestLogRecovery_Validation verifies date and score validation up front.
func TestLogRecovery_Validation(t *testing.T) {
	svc := NewNutritionService(&fakeNutritionRepository{}, &fakeEntrySource{}, &fakeUserRepository{user: completeUser()})
	userID := uuid.NewString()

	err := svc.LogRecovery(context.Background(), domain.LogRecoveryRequest{Date: "19-03-2026", RecoveryScore: 50}, userID)
	if err != domain.ErrInvalidDate {
		t.Errorf("bad date: err = %v, want ErrInvalidDate", err)
	}

	err = svc.LogRecovery(context.Background(), domain.LogRecoveryRequest{Date: "2026-03-19", RecoveryScore: 120}, userID)
	if err != domain.ErrInvalidRecoveryLog {
		t.Errorf("bad score: err = %v, want ErrInvalidRecoveryLog", err)
	}

	err = svc.LogRecovery(context.Background(), domain.LogRecoveryRequest{Date: "2026-03-19", RecoveryScore: 55}, userID)
	if err != nil {
		t.Errorf("valid log: err = %v", err)
	}
}

// TestGetTodayAdjustment_UsesSnapshotGoals verifies the adjustment runs
// against the stored snapshot and picks up a scheduled session.
func TestGetTodayAdjustment_UsesSnapshotGoals(t *testing.T) {
	today := time.Date(2026, 3, 19, 9, 0, 0, 0, time.UTC)
	u := completeUser()
	repo := &fakeNutritionRepository{
		snapshots: []*entities.NutritionGoalSnapshot{{
			ID: uuid.New(), UserID: u.ID, Date: today.AddDate(0, 0, -1),
			Calories: 2500, ProteinG: 150, CarbsG: 300, FatG: 80,
		}},
		recovery: []*entities.RecoveryData{{
			ID: uuid.New(), UserID: u.ID, Date: today,
			RecoveryScore: 65, HRVScore: 60, RestingHeartRate: 55, SleepPerformance: 80,
		}},
		sessions: []*entities.TrainingSession{{
			ID: uuid.New(), UserID: u.ID, Date: today, Type: "strength", DurationMin: 60,
		}},
	}
	svc := NewNutritionService(repo, &fakeEntrySource{}, &fakeUserRepository{user: u})

	adj, err := svc.GetTodayAdjustment(context.Background(), u.ID.String(), today)
	if err != nil {
		t.Fatalf("GetTodayAdjustment: %v", err)
	}

	if adj.Reason != domain.ReasonTrainingDay {
		t.Errorf("reason = %q, want training_day", adj.Reason)
	}
	if adj.Adjustments.CarbsDelta != 30 { // 10% of the 300g snapshot
		t.Errorf("carbs delta = %v, want 30", adj.Adjustments.CarbsDelta)
	}
}
