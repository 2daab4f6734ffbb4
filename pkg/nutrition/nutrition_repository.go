package nutrition

import (
	"context"
	"time"

	"Technically-Fit-Backend/entities"

	"gorm.io/gorm"
)

type (
	NutritionRepository interface {
		CreateGoalSnapshot(ctx context.Context, snapshot *entities.NutritionGoalSnapshot) error
		GetLatestGoalSnapshot(ctx context.Context, userID string) (*entities.NutritionGoalSnapshot, error)
		GetGoalSnapshotForDate(ctx context.Context, userID string, date time.Time) (*entities.NutritionGoalSnapshot, error)

		UpsertRecovery(ctx context.Context, sample *entities.RecoveryData) error
		GetRecoveryRange(ctx context.Context, userID string, start, end time.Time) ([]*entities.RecoveryData, error)

		CreateTrainingSession(ctx context.Context, session *entities.TrainingSession) error
		GetTrainingSessions(ctx context.Context, userID string, start, end time.Time) ([]*entities.TrainingSession, error)
	}

	nutritionRepository struct {
		db *gorm.DB
	}
)

func NewNutritionRepository(db *gorm.DB) NutritionRepository {
	return &nutritionRepository{db: db}
}

func (r *nutritionRepository) CreateGoalSnapshot(ctx context.Context, snapshot *entities.NutritionGoalSnapshot) error {
	return r.db.WithContext(ctx).Create(snapshot).Error
}

func (r *nutritionRepository) GetLatestGoalSnapshot(ctx context.Context, userID string) (*entities.NutritionGoalSnapshot, error) {
	var snapshot entities.NutritionGoalSnapshot
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc, created_at desc").
		First(&snapshot).Error; err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// GetGoalSnapshotForDate returns the snapshot in force on a date: the most
// recent one at or before it.
func (r *nutritionRepository) GetGoalSnapshotForDate(ctx context.Context, userID string, date time.Time) (*entities.NutritionGoalSnapshot, error) {
	var snapshot entities.NutritionGoalSnapshot
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date <= ?", userID, date).
		Order("date desc, created_at desc").
		First(&snapshot).Error; err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// UpsertRecovery replaces the sample for the same calendar day if one exists.
func (r *nutritionRepository) UpsertRecovery(ctx context.Context, sample *entities.RecoveryData) error {
	start := time.Date(sample.Date.Year(), sample.Date.Month(), sample.Date.Day(), 0, 0, 0, 0, sample.Date.Location())
	end := start.AddDate(0, 0, 1)

	var existing entities.RecoveryData
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", sample.UserID, start, end).
		First(&existing).Error
	if err == nil {
		sample.ID = existing.ID
		sample.CreatedAt = existing.CreatedAt
		return r.db.WithContext(ctx).Save(sample).Error
	}

	return r.db.WithContext(ctx).Create(sample).Error
}

func (r *nutritionRepository) GetRecoveryRange(ctx context.Context, userID string, start, end time.Time) ([]*entities.RecoveryData, error) {
	var samples []*entities.RecoveryData
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date asc").
		Find(&samples).Error; err != nil {
		return nil, err
	}
	return samples, nil
}

func (r *nutritionRepository) CreateTrainingSession(ctx context.Context, session *entities.TrainingSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *nutritionRepository) GetTrainingSessions(ctx context.Context, userID string, start, end time.Time) ([]*entities.TrainingSession, error) {
	var sessions []*entities.TrainingSession
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date asc").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
