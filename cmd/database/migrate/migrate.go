package migration

import (
	"fmt"
	"log"

	"Technically-Fit-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"transaction", &entities.Transaction{}},
		{"food item", &entities.FoodItem{}},
		{"food entry", &entities.FoodEntry{}},
		{"recovery data", &entities.RecoveryData{}},
		{"training session", &entities.TrainingSession{}},
		{"nutrition goal snapshot", &entities.NutritionGoalSnapshot{}},
		{"meal plan", &entities.MealPlan{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			log.Fatalf("Error migrating %s database: %v", m.name, err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
