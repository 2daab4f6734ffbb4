package food

import (
	"context"
	"time"

	"Technically-Fit-Backend/entities"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		CreateFoodItem(ctx context.Context, item *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		GetFoodItemByBarcode(ctx context.Context, barcode string) (*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, item *entities.FoodItem) error
		SearchFoodItems(ctx context.Context, query string, page, limit int) ([]*entities.FoodItem, int64, error)

		CreateEntry(ctx context.Context, entry *entities.FoodEntry) error
		GetEntryByID(ctx context.Context, id string) (*entities.FoodEntry, error)
		GetEntriesByDate(ctx context.Context, userID string, date time.Time) ([]*entities.FoodEntry, error)
		GetEntriesByDateRange(ctx context.Context, userID string, start, end time.Time) ([]*entities.FoodEntry, error)
		DeleteEntry(ctx context.Context, id string) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) CreateFoodItem(ctx context.Context, item *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var item entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *foodRepository) GetFoodItemByBarcode(ctx context.Context, barcode string) (*entities.FoodItem, error) {
	var item entities.FoodItem
	if err := r.db.WithContext(ctx).Where("barcode = ?", barcode).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *foodRepository) UpdateFoodItem(ctx context.Context, item *entities.FoodItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *foodRepository) SearchFoodItems(ctx context.Context, query string, page, limit int) ([]*entities.FoodItem, int64, error) {
	var items []*entities.FoodItem
	var count int64

	offset := (page - 1) * limit

	q := r.db.WithContext(ctx).Model(&entities.FoodItem{})
	if query != "" {
		q = q.Where("name ILIKE ?", "%"+query+"%")
	}

	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := q.Offset(offset).Limit(limit).Order("verified desc, name asc").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *foodRepository) CreateEntry(ctx context.Context, entry *entities.FoodEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *foodRepository) GetEntryByID(ctx context.Context, id string) (*entities.FoodEntry, error) {
	var entry entities.FoodEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *foodRepository) GetEntriesByDate(ctx context.Context, userID string, date time.Time) ([]*entities.FoodEntry, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.AddDate(0, 0, 1)
	return r.GetEntriesByDateRange(ctx, userID, start, end)
}

func (r *foodRepository) GetEntriesByDateRange(ctx context.Context, userID string, start, end time.Time) ([]*entities.FoodEntry, error) {
	var entries []*entities.FoodEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *foodRepository) DeleteEntry(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodEntry{}).Error
}
