package mealplan

import (
	"context"
	"errors"
	"time"

	"Technically-Fit-Backend/domain"
	"Technically-Fit-Backend/entities"
	"Technically-Fit-Backend/pkg/nutrition"
	"Technically-Fit-Backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealPlanService interface {
		GeneratePlan(ctx context.Context, req domain.GenerateMealPlanRequest, userID string) (domain.MealPlanResponse, error)
		GetPlans(ctx context.Context, userID string) ([]domain.MealPlanResponse, error)
		GetPlan(ctx context.Context, planID string, userID string) (domain.MealPlanResponse, error)
		OptimizePlan(ctx context.Context, planID string, req domain.OptimizeMealPlanRequest, userID string) (domain.MealPlanResponse, error)
		DeletePlan(ctx context.Context, planID string, userID string) error
	}

	mealPlanService struct {
		mealPlanRepository  MealPlanRepository
		nutritionRepository nutrition.NutritionRepository
		nutritionService    nutrition.NutritionService
		userRepository      user.UserRepository
	}
)

func NewMealPlanService(
	mealPlanRepository MealPlanRepository,
	nutritionRepository nutrition.NutritionRepository,
	nutritionService nutrition.NutritionService,
	userRepository user.UserRepository,
) MealPlanService {
	return &mealPlanService{
		mealPlanRepository:  mealPlanRepository,
		nutritionRepository: nutritionRepository,
		nutritionService:    nutritionService,
		userRepository:      userRepository,
	}
}

func (s *mealPlanService) GeneratePlan(ctx context.Context, req domain.GenerateMealPlanRequest, userID string) (domain.MealPlanResponse, error) {
	if req.DurationDays < 0 || req.DurationDays > 30 {
		return domain.MealPlanResponse{}, domain.ErrInvalidDuration
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealPlanResponse{}, domain.ErrUserNotFound
		}
		return domain.MealPlanResponse{}, err
	}

	goals, err := s.nutritionService.GetGoals(ctx, userID)
	if err != nil {
		return domain.MealPlanResponse{}, err
	}

	today := time.Now()
	duration := req.DurationDays
	if duration == 0 {
		duration = defaultDurationDays
	}

	recovery, err := s.nutritionRepository.GetRecoveryRange(ctx, userID, today.AddDate(0, 0, -7), today.AddDate(0, 0, 1))
	if err != nil {
		return domain.MealPlanResponse{}, err
	}

	schedule, err := s.nutritionRepository.GetTrainingSessions(ctx, userID, today, today.AddDate(0, 0, duration))
	if err != nil {
		return domain.MealPlanResponse{}, err
	}

	generated := Generate(
		u.Name,
		u.WeightKG,
		goals.Goals,
		req.Preferences,
		recoverySamples(recovery),
		sessionRecords(schedule),
		duration,
		today,
	)

	plan := &entities.MealPlan{
		ID:          uuid.New(),
		UserID:      u.ID,
		Name:        generated.Name,
		Description: generated.Description,
		Duration:    generated.Duration,
		Plan:        generated,
	}

	if err := s.mealPlanRepository.CreatePlan(ctx, plan); err != nil {
		return domain.MealPlanResponse{}, err
	}

	return toPlanResponse(plan), nil
}

func (s *mealPlanService) GetPlans(ctx context.Context, userID string) ([]domain.MealPlanResponse, error) {
	plans, err := s.mealPlanRepository.GetPlansByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.MealPlanResponse, 0, len(plans))
	for _, plan := range plans {
		responses = append(responses, toPlanResponse(plan))
	}
	return responses, nil
}

func (s *mealPlanService) GetPlan(ctx context.Context, planID string, userID string) (domain.MealPlanResponse, error) {
	plan, err := s.ownedPlan(ctx, planID, userID)
	if err != nil {
		return domain.MealPlanResponse{}, err
	}
	return toPlanResponse(plan), nil
}

// OptimizePlan folds user feedback into the plan's recommendations, also
// consulting yesterday's logged intake for an under-eating signal.
func (s *mealPlanService) OptimizePlan(ctx context.Context, planID string, req domain.OptimizeMealPlanRequest, userID string) (domain.MealPlanResponse, error) {
	plan, err := s.ownedPlan(ctx, planID, userID)
	if err != nil {
		return domain.MealPlanResponse{}, err
	}

	var progress *domain.GoalProgress
	yesterday := time.Now().AddDate(0, 0, -1)
	if daily, err := s.nutritionService.GetDailyProgress(ctx, userID, yesterday); err == nil {
		progress = &daily.Progress
	}

	Optimize(&plan.Plan, req.Feedback, progress)

	if err := s.mealPlanRepository.UpdatePlan(ctx, plan); err != nil {
		return domain.MealPlanResponse{}, err
	}

	return toPlanResponse(plan), nil
}

func (s *mealPlanService) DeletePlan(ctx context.Context, planID string, userID string) error {
	if _, err := s.ownedPlan(ctx, planID, userID); err != nil {
		return err
	}
	return s.mealPlanRepository.DeletePlan(ctx, planID)
}

func (s *mealPlanService) ownedPlan(ctx context.Context, planID string, userID string) (*entities.MealPlan, error) {
	plan, err := s.mealPlanRepository.GetPlanByID(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMealPlanNotFound
		}
		return nil, err
	}
	if plan.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}
	return plan, nil
}

func toPlanResponse(plan *entities.MealPlan) domain.MealPlanResponse {
	return domain.MealPlanResponse{
		ID:        plan.ID.String(),
		Plan:      plan.Plan,
		CreatedAt: plan.CreatedAt.Format(time.RFC3339),
	}
}

func recoverySamples(samples []*entities.RecoveryData) []domain.RecoverySample {
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

func sessionRecords(sessions []*entities.TrainingSession) []domain.TrainingSessionRecord {
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
