package config

import (
	"os"
	"time"

	"Technically-Fit-Backend/internal/api/handlers"
	"Technically-Fit-Backend/internal/api/routes"
	"Technically-Fit-Backend/internal/middleware"
	"Technically-Fit-Backend/internal/utils"
	"Technically-Fit-Backend/internal/utils/storage"
	"Technically-Fit-Backend/pkg/food"
	"Technically-Fit-Backend/pkg/jwt"
	"Technically-Fit-Backend/pkg/mealplan"
	"Technically-Fit-Backend/pkg/midtrans"
	"Technically-Fit-Backend/pkg/nutrition"
	"Technically-Fit-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	nutritionRepository := nutrition.NewNutritionRepository(db)
	mealPlanRepository := mealplan.NewMealPlanRepository(db)
	midtransRepository := midtrans.NewMidtransRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	foodService := food.NewFoodService(foodRepository)
	nutritionService := nutrition.NewNutritionService(nutritionRepository, foodRepository, userRepository)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository, nutritionRepository, nutritionService, userRepository)
	midtransService := midtrans.NewMidtransService(midtransRepository, userRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator, jwtService)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	nutritionHandler := handlers.NewNutritionHandler(nutritionService, validator)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, validator)
	midtransHandler := handlers.NewMidtransHandler(midtransService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		FoodHandler:      foodHandler,
		NutritionHandler: nutritionHandler,
		MealPlanHandler:  mealPlanHandler,
		MidtransHandler:  midtransHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
