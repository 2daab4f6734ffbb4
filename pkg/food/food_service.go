package food

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"Technically-Fit-Backend/domain"
	"Technically-Fit-Backend/entities"
	"Technically-Fit-Backend/internal/utils"
	"Technically-Fit-Backend/pkg/nutrition"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemRecord, error)
		SearchFoodItems(ctx context.Context, query string, page, limit int) ([]domain.FoodItemRecord, int64, error)
		LookupBarcode(ctx context.Context, barcode string) (domain.FoodItemRecord, error)
		VerifyFoodItem(ctx context.Context, itemID string) (domain.FoodItemRecord, error)
		LogEntry(ctx context.Context, req domain.LogFoodEntryRequest, userID string) (domain.FoodEntryResponse, error)
		GetEntriesByDate(ctx context.Context, userID string, date time.Time) ([]domain.FoodEntryResponse, error)
		DeleteEntry(ctx context.Context, entryID string, userID string) error
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{foodRepository: foodRepository}
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemRecord, error) {
	item := &entities.FoodItem{
		ID:           uuid.New(),
		Name:         req.Name,
		Barcode:      req.Barcode,
		Category:     req.Category,
		ServingSizes: req.ServingSizes,
		Calories:     req.Nutrition.Calories,
		Protein:      req.Nutrition.Protein,
		Carbs:        req.Nutrition.Carbs,
		Fat:          req.Nutrition.Fat,
		Fiber:        req.Nutrition.Fiber,
		Sugar:        req.Nutrition.Sugar,
		SodiumMg:     req.Nutrition.SodiumMg,
	}

	if err := s.foodRepository.CreateFoodItem(ctx, item); err != nil {
		return domain.FoodItemRecord{}, err
	}

	return toFoodRecord(item), nil
}

func (s *foodService) SearchFoodItems(ctx context.Context, query string, page, limit int) ([]domain.FoodItemRecord, int64, error) {
	items, count, err := s.foodRepository.SearchFoodItems(ctx, query, page, limit)
	if err != nil {
		return nil, 0, err
	}

	records := make([]domain.FoodItemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, toFoodRecord(item))
	}
	return records, count, nil
}

// LookupBarcode resolves a barcode against the local catalog first, then the
// external food database. External hits are cached as unverified items.
func (s *foodService) LookupBarcode(ctx context.Context, barcode string) (domain.FoodItemRecord, error) {
	item, err := s.foodRepository.GetFoodItemByBarcode(ctx, barcode)
	if err == nil {
		return toFoodRecord(item), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.FoodItemRecord{}, err
	}

	fetched, err := s.fetchExternalBarcode(ctx, barcode)
	if err != nil {
		return domain.FoodItemRecord{}, err
	}

	if err := s.foodRepository.CreateFoodItem(ctx, fetched); err != nil {
		return domain.FoodItemRecord{}, err
	}

	return toFoodRecord(fetched), nil
}

func (s *foodService) fetchExternalBarcode(ctx context.Context, barcode string) (*entities.FoodItem, error) {
	baseURL := utils.GetConfig("FOOD_DB_URL")
	if baseURL == "" {
		return nil, domain.ErrBarcodeNotFound
	}

	lookupURL := fmt.Sprintf("%s/product/%s.json", baseURL, url.PathEscape(barcode))

	httpClient := &http.Client{Timeout: 10 * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrBarcodeNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("food database error: %s", resp.Status)
	}

	var payload struct {
		Status  int `json:"status"`
		Product struct {
			ProductName string `json:"product_name"`
			Categories  string `json:"categories"`
			Nutriments  struct {
				EnergyKcal100g float64 `json:"energy-kcal_100g"`
				Proteins100g   float64 `json:"proteins_100g"`
				Carbs100g      float64 `json:"carbohydrates_100g"`
				Fat100g        float64 `json:"fat_100g"`
				Fiber100g      float64 `json:"fiber_100g"`
				Sugars100g     float64 `json:"sugars_100g"`
				Sodium100g     float64 `json:"sodium_100g"`
			} `json:"nutriments"`
		} `json:"product"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.Status == 0 || payload.Product.ProductName == "" {
		return nil, domain.ErrBarcodeNotFound
	}

	n := payload.Product.Nutriments
	return &entities.FoodItem{
		ID:       uuid.New(),
		Name:     payload.Product.ProductName,
		Barcode:  barcode,
		Category: payload.Product.Categories,
		Verified: false,
		Calories: n.EnergyKcal100g,
		Protein:  n.Proteins100g,
		Carbs:    n.Carbs100g,
		Fat:      n.Fat100g,
		Fiber:    n.Fiber100g,
		Sugar:    n.Sugars100g,
		SodiumMg: n.Sodium100g * 1000, // grams to milligrams
	}, nil
}

// VerifyFoodItem marks a catalog item as reviewed. Admin only, enforced at the
// route level.
func (s *foodService) VerifyFoodItem(ctx context.Context, itemID string) (domain.FoodItemRecord, error) {
	item, err := s.foodRepository.GetFoodItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodItemRecord{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemRecord{}, err
	}

	item.Verified = true
	if err := s.foodRepository.UpdateFoodItem(ctx, item); err != nil {
		return domain.FoodItemRecord{}, err
	}

	return toFoodRecord(item), nil
}

func (s *foodService) LogEntry(ctx context.Context, req domain.LogFoodEntryRequest, userID string) (domain.FoodEntryResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.FoodEntryResponse{}, domain.ErrInvalidDate
	}
	if req.ServingGrams <= 0 {
		return domain.FoodEntryResponse{}, domain.ErrInvalidServing
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodEntryResponse{}, domain.ErrParseUUID
	}

	item, err := s.foodRepository.GetFoodItemByID(ctx, req.FoodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodEntryResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodEntryResponse{}, err
	}

	scaled := nutrition.CalculateNutritionForServing(toFoodRecord(item), req.ServingGrams)

	entry := &entities.FoodEntry{
		ID:           uuid.New(),
		UserID:       userUUID,
		FoodID:       item.ID,
		ServingGrams: req.ServingGrams,
		MealType:     req.MealType,
		Date:         date,
		Calories:     scaled.Calories,
		Protein:      scaled.Protein,
		Carbs:        scaled.Carbs,
		Fat:          scaled.Fat,
		Fiber:        scaled.Fiber,
		Sugar:        scaled.Sugar,
		SodiumMg:     scaled.SodiumMg,
	}

	if err := s.foodRepository.CreateEntry(ctx, entry); err != nil {
		return domain.FoodEntryResponse{}, err
	}

	return domain.FoodEntryResponse{
		ID:           entry.ID.String(),
		FoodID:       item.ID.String(),
		FoodName:     item.Name,
		ServingGrams: entry.ServingGrams,
		MealType:     entry.MealType,
		Date:         entry.Date.Format("2006-01-02"),
		Nutrition:    scaled,
	}, nil
}

func (s *foodService) GetEntriesByDate(ctx context.Context, userID string, date time.Time) ([]domain.FoodEntryResponse, error) {
	entries, err := s.foodRepository.GetEntriesByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.FoodEntryResponse, 0, len(entries))
	for _, entry := range entries {
		res := domain.FoodEntryResponse{
			ID:           entry.ID.String(),
			FoodID:       entry.FoodID.String(),
			ServingGrams: entry.ServingGrams,
			MealType:     entry.MealType,
			Date:         entry.Date.Format("2006-01-02"),
			Nutrition:    entryNutrition(entry),
		}
		if item, err := s.foodRepository.GetFoodItemByID(ctx, entry.FoodID.String()); err == nil {
			res.FoodName = item.Name
		}
		responses = append(responses, res)
	}
	return responses, nil
}

func (s *foodService) DeleteEntry(ctx context.Context, entryID string, userID string) error {
	entry, err := s.foodRepository.GetEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodEntryNotFound
		}
		return err
	}

	if entry.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	return s.foodRepository.DeleteEntry(ctx, entryID)
}

func toFoodRecord(item *entities.FoodItem) domain.FoodItemRecord {
	return domain.FoodItemRecord{
		ID:   item.ID.String(),
		Name: item.Name,
		NutritionPer100g: domain.NutritionInfo{
			Calories: item.Calories,
			Protein:  item.Protein,
			Carbs:    item.Carbs,
			Fat:      item.Fat,
			Fiber:    item.Fiber,
			Sugar:    item.Sugar,
			SodiumMg: item.SodiumMg,
		},
		ServingSizes: item.ServingSizes,
		Category:     item.Category,
		Verified:     item.Verified,
	}
}

func entryNutrition(entry *entities.FoodEntry) domain.NutritionInfo {
	return domain.NutritionInfo{
		Calories: entry.Calories,
		Protein:  entry.Protein,
		Carbs:    entry.Carbs,
		Fat:      entry.Fat,
		Fiber:    entry.Fiber,
		Sugar:    entry.Sugar,
		SodiumMg: entry.SodiumMg,
	}
}
