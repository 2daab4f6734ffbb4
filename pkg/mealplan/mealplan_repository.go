package mealplan

import (
	"context"

	"Technically-Fit-Backend/entities"

	"gorm.io/gorm"
)

type (
	MealPlanRepository interface {
		CreatePlan(ctx context.Context, plan *entities.MealPlan) error
		GetPlanByID(ctx context.Context, id string) (*entities.MealPlan, error)
		GetPlansByUser(ctx context.Context, userID string) ([]*entities.MealPlan, error)
		UpdatePlan(ctx context.Context, plan *entities.MealPlan) error
		DeletePlan(ctx context.Context, id string) error
	}

	mealPlanRepository struct {
		db *gorm.DB
	}
)

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) CreatePlan(ctx context.Context, plan *entities.MealPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *mealPlanRepository) GetPlanByID(ctx context.Context, id string) (*entities.MealPlan, error) {
	var plan entities.MealPlan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) GetPlansByUser(ctx context.Context, userID string) ([]*entities.MealPlan, error) {
	var plans []*entities.MealPlan
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mealPlanRepository) UpdatePlan(ctx context.Context, plan *entities.MealPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *mealPlanRepository) DeletePlan(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MealPlan{}).Error
}
