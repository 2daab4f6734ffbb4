package nutrition

import (
	"context"
	"errors"
	"time"

	"Technically-Fit-Backend/domain"
	"Technically-Fit-Backend/entities"
	"Technically-Fit-Backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// FoodEntrySource is the slice of the food repository this service needs.
	// Declared here so the food package can depend on the engine without a
	// package cycle.
	FoodEntrySource interface {
		GetEntriesByDate(ctx context.Context, userID string, date time.Time) ([]*entities.FoodEntry, error)
	}

	NutritionService interface {
		RecalculateGoals(ctx context.Context, userID string) (domain.GoalsResponse, error)
		GetGoals(ctx context.Context, userID string) (domain.GoalsResponse, error)
		GetDailyProgress(ctx context.Context, userID string, date time.Time) (domain.DailyProgressResponse, error)
		GetTodayAdjustment(ctx context.Context, userID string, today time.Time) (domain.NutritionAdjustment, error)
		GetProteinMakeupPlan(ctx context.Context, userID string, today time.Time) (domain.ProteinMakeupPlan, error)
		LogRecovery(ctx context.Context, req domain.LogRecoveryRequest, userID string) error
		LogTrainingSession(ctx context.Context, req domain.LogTrainingSessionRequest, userID string) error
		GetTrainingSessions(ctx context.Context, userID string, start, end time.Time) ([]domain.TrainingSessionRecord, error)
	}

	nutritionService struct {
		nutritionRepository NutritionRepository
		entrySource         FoodEntrySource
		userRepository      user.UserRepository
	}
)

func NewNutritionService(nutritionRepository NutritionRepository, entrySource FoodEntrySource, userRepository user.UserRepository) NutritionService {
	return &nutritionService{
		nutritionRepository: nutritionRepository,
		entrySource:         entrySource,
		userRepository:      userRepository,
	}
}

// RecalculateGoals runs the goal calculator over the user's current
// biometrics, passes the result through the health safety rail, and persists
// a new immutable snapshot.
func (s *nutritionService) RecalculateGoals(ctx context.Context, userID string) (domain.GoalsResponse, error) {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GoalsResponse{}, domain.ErrUserNotFound
		}
		return domain.GoalsResponse{}, err
	}

	if u.Age <= 0 || u.WeightKG <= 0 || u.HeightCM <= 0 || u.Sex == "" || u.ActivityLevel == "" || u.Goal == "" {
		return domain.GoalsResponse{}, domain.ErrProfileIncomplete
	}

	baseline := CalculateGoals(domain.BiometricProfile{
		Age:           u.Age,
		WeightKG:      u.WeightKG,
		HeightCM:      u.HeightCM,
		Sex:           u.Sex,
		ActivityLevel: u.ActivityLevel,
		Goal:          u.Goal,
	})

	latest, err := s.latestRecoverySample(ctx, userID, time.Now())
	if err != nil {
		return domain.GoalsResponse{}, err
	}

	report := ApplySafetyRail(baseline, u.MedicalConditions, u.Medications, u.Age, latest)

	now := time.Now()
	snapshot := &entities.NutritionGoalSnapshot{
		ID:                    uuid.New(),
		UserID:                u.ID,
		Date:                  now,
		Calories:              report.AdjustedGoals.Calories,
		ProteinG:              report.AdjustedGoals.ProteinG,
		CarbsG:                report.AdjustedGoals.CarbsG,
		FatG:                  report.AdjustedGoals.FatG,
		FiberG:                report.AdjustedGoals.FiberG,
		SugarG:                report.AdjustedGoals.SugarG,
		SafetyRecommendations: report.SafetyRecommendations,
		Restrictions:          report.Restrictions,
		Monitoring:            report.Monitoring,
	}

	if err := s.nutritionRepository.CreateGoalSnapshot(ctx, snapshot); err != nil {
		return domain.GoalsResponse{}, err
	}

	return domain.GoalsResponse{
		Goals:                 report.AdjustedGoals,
		SafetyRecommendations: report.SafetyRecommendations,
		Restrictions:          report.Restrictions,
		Monitoring:            report.Monitoring,
		CalculatedAt:          now,
	}, nil
}

// GetGoals returns the latest snapshot, recalculating once for users who
// have a complete profile but no snapshot yet.
func (s *nutritionService) GetGoals(ctx context.Context, userID string) (domain.GoalsResponse, error) {
	snapshot, err := s.nutritionRepository.GetLatestGoalSnapshot(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.RecalculateGoals(ctx, userID)
		}
		return domain.GoalsResponse{}, err
	}

	return domain.GoalsResponse{
		Goals:                 snapshotGoals(snapshot),
		SafetyRecommendations: snapshot.SafetyRecommendations,
		Restrictions:          snapshot.Restrictions,
		Monitoring:            snapshot.Monitoring,
		CalculatedAt:          snapshot.Date,
	}, nil
}

func (s *nutritionService) GetDailyProgress(ctx context.Context, userID string, date time.Time) (domain.DailyProgressResponse, error) {
	goals, err := s.goalsForDate(ctx, userID, date)
	if err != nil {
		return domain.DailyProgressResponse{}, err
	}

	entries, err := s.entrySource.GetEntriesByDate(ctx, userID, date)
	if err != nil {
		return domain.DailyProgressResponse{}, err
	}

	totals := CalculateDailyTotals(toEntryRecords(entries))
	progress := AnalyzeGoalProgress(goals, totals)

	return domain.DailyProgressResponse{
		Date:     date.Format("2006-01-02"),
		Totals:   totals,
		Progress: progress,
	}, nil
}

func (s *nutritionService) GetTodayAdjustment(ctx context.Context, userID string, today time.Time) (domain.NutritionAdjustment, error) {
	goals, err := s.goalsForDate(ctx, userID, today)
	if err != nil {
		return domain.NutritionAdjustment{}, err
	}

	dayEnd := endOfDay(today)
	history, err := s.nutritionRepository.GetRecoveryRange(ctx, userID, dayEnd.AddDate(0, 0, -7), dayEnd)
	if err != nil {
		return domain.NutritionAdjustment{}, err
	}

	sessions, err := s.nutritionRepository.GetTrainingSessions(ctx, userID, startOfDay(today), dayEnd)
	if err != nil {
		return domain.NutritionAdjustment{}, err
	}

	return CalculateRecoveryAdjustments(goals, toRecoverySamples(history), toSessionRecords(sessions), today), nil
}

// GetProteinMakeupPlan builds the week's (target, actual) protein pairs from
// Monday through yesterday and plans the makeup over the rest of the week,
// today included.
func (s *nutritionService) GetProteinMakeupPlan(ctx context.Context, userID string, today time.Time) (domain.ProteinMakeupPlan, error) {
	baseline, err := s.goalsForDate(ctx, userID, today)
	if err != nil {
		return domain.ProteinMakeupPlan{}, err
	}

	monday := currentMonday(today)
	elapsed := int(startOfDay(today).Sub(monday).Hours() / 24)
	remaining := 7 - elapsed

	var week []domain.ProteinDay
	for i := 0; i < elapsed; i++ {
		day := monday.AddDate(0, 0, i)

		target := baseline.ProteinG
		if snapshot, err := s.nutritionRepository.GetGoalSnapshotForDate(ctx, userID, endOfDay(day)); err == nil {
			target = snapshot.ProteinG
		}

		entries, err := s.entrySource.GetEntriesByDate(ctx, userID, day)
		if err != nil {
			return domain.ProteinMakeupPlan{}, err
		}
		totals := CalculateDailyTotals(toEntryRecords(entries))

		week = append(week, domain.ProteinDay{
			Date:          day,
			TargetProtein: target,
			ActualProtein: totals.Protein,
		})
	}

	return PlanProteinMakeup(week, remaining, baseline, today), nil
}

func (s *nutritionService) LogRecovery(ctx context.Context, req domain.LogRecoveryRequest, userID string) error {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.ErrInvalidDate
	}
	if req.RecoveryScore < 0 || req.RecoveryScore > 100 {
		return domain.ErrInvalidRecoveryLog
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.nutritionRepository.UpsertRecovery(ctx, &entities.RecoveryData{
		ID:               uuid.New(),
		UserID:           userUUID,
		Date:             date,
		RecoveryScore:    req.RecoveryScore,
		HRVScore:         req.HRVScore,
		RestingHeartRate: req.RestingHeartRate,
		SleepPerformance: req.SleepPerformance,
		StrainYesterday:  req.StrainYesterday,
	})
}

func (s *nutritionService) LogTrainingSession(ctx context.Context, req domain.LogTrainingSessionRequest, userID string) error {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.ErrInvalidDate
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.nutritionRepository.CreateTrainingSession(ctx, &entities.TrainingSession{
		ID:          uuid.New(),
		UserID:      userUUID,
		Date:        date,
		Type:        req.Type,
		DurationMin: req.DurationMin,
	})
}

func (s *nutritionService) GetTrainingSessions(ctx context.Context, userID string, start, end time.Time) ([]domain.TrainingSessionRecord, error) {
	sessions, err := s.nutritionRepository.GetTrainingSessions(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	return toSessionRecords(sessions), nil
}

// goalsForDate resolves the goal snapshot in force on a date, falling back
// to a fresh recalculation for users without snapshots.
func (s *nutritionService) goalsForDate(ctx context.Context, userID string, date time.Time) (domain.NutritionGoals, error) {
	snapshot, err := s.nutritionRepository.GetGoalSnapshotForDate(ctx, userID, endOfDay(date))
	if err == nil {
		return snapshotGoals(snapshot), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NutritionGoals{}, err
	}

	res, err := s.RecalculateGoals(ctx, userID)
	if err != nil {
		return domain.NutritionGoals{}, err
	}
	return res.Goals, nil
}

func (s *nutritionService) latestRecoverySample(ctx context.Context, userID string, now time.Time) (*domain.RecoverySample, error) {
	samples, err := s.nutritionRepository.GetRecoveryRange(ctx, userID, endOfDay(now).AddDate(0, 0, -7), endOfDay(now))
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, nil
	}
	converted := toRecoverySamples(samples)
	return &converted[len(converted)-1], nil
}

func snapshotGoals(snapshot *entities.NutritionGoalSnapshot) domain.NutritionGoals {
	return domain.NutritionGoals{
		Calories: snapshot.Calories,
		ProteinG: snapshot.ProteinG,
		CarbsG:   snapshot.CarbsG,
		FatG:     snapshot.FatG,
		FiberG:   snapshot.FiberG,
		SugarG:   snapshot.SugarG,
	}
}

func toEntryRecords(entries []*entities.FoodEntry) []domain.FoodEntryRecord {
	records := make([]domain.FoodEntryRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, domain.FoodEntryRecord{
			ID:           e.ID.String(),
			FoodID:       e.FoodID.String(),
			ServingGrams: e.ServingGrams,
			MealType:     e.MealType,
			Date:         e.Date,
			Nutrition: domain.NutritionInfo{
				Calories: e.Calories,
				Protein:  e.Protein,
				Carbs:    e.Carbs,
				Fat:      e.Fat,
				Fiber:    e.Fiber,
				Sugar:    e.Sugar,
				SodiumMg: e.SodiumMg,
			},
		})
	}
	return records
}

func toRecoverySamples(samples []*entities.RecoveryData) []domain.RecoverySample {
	converted := make([]domain.RecoverySample, 0, len(samples))
	for _, s := range samples {
		converted = append(converted, domain.RecoverySample{
			Date:             s.Date,
			RecoveryScore:    s.RecoveryScore,
			HRVScore:         s.HRVScore,
			RestingHeartRate: s.RestingHeartRate,
			SleepPerformance: s.SleepPerformance,
			StrainYesterday:  s.StrainYesterday,
		})
	}
	return converted
}

func toSessionRecords(sessions []*entities.TrainingSession) []domain.TrainingSessionRecord {
	records := make([]domain.TrainingSessionRecord, 0, len(sessions))
	for _, s := range sessions {
		records = append(records, domain.TrainingSessionRecord{
			Date:        s.Date,
			Type:        s.Type,
			DurationMin: s.DurationMin,
		})
	}
	return records
}

// currentMonday returns midnight of the Monday of the week containing t.
func currentMonday(t time.Time) time.Time {
	day := startOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1)
}
