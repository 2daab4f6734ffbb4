package routes

import (
	"Technically-Fit-Backend/internal/api/handlers"
	"Technically-Fit-Backend/internal/middleware"
	"Technically-Fit-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	FoodHandler      handlers.FoodHandler
	NutritionHandler handlers.NutritionHandler
	MealPlanHandler  handlers.MealPlanHandler
	MidtransHandler  handlers.MidtransHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Foods()
	c.Nutrition()
	c.MealPlans()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
		user.Post("/photo", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadProgressPhoto)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
		user.Post("/subscribe", c.Middleware.AuthMiddleware(c.JWTService), c.MidtransHandler.CreateTransaction)
	}
}

func (c *Config) Foods() {
	foods := c.App.Group("/api/v1/foods", c.Middleware.AuthMiddleware(c.JWTService))

	foods.Post("", c.FoodHandler.AddFoodItem)
	foods.Get("", c.FoodHandler.SearchFoodItems)
	foods.Get("/barcode/:barcode", c.FoodHandler.LookupBarcode)
	foods.Patch("/:id/verify", c.Middleware.OnlyAdmin(c.JWTService), c.FoodHandler.VerifyFoodItem)

	foods.Post("/entries", c.FoodHandler.LogEntry)
	foods.Get("/entries", c.FoodHandler.GetEntries)
	foods.Delete("/entries/:id", c.FoodHandler.DeleteEntry)
}

func (c *Config) Nutrition() {
	nutrition := c.App.Group("/api/v1/nutrition", c.Middleware.AuthMiddleware(c.JWTService))

	nutrition.Get("/goals", c.NutritionHandler.GetGoals)
	nutrition.Post("/goals/recalculate", c.NutritionHandler.RecalculateGoals)
	nutrition.Get("/progress", c.NutritionHandler.GetDailyProgress)
	nutrition.Get("/adjustment", c.NutritionHandler.GetTodayAdjustment)
	nutrition.Get("/protein-makeup", c.NutritionHandler.GetProteinMakeupPlan)

	nutrition.Post("/recovery", c.NutritionHandler.LogRecovery)
	nutrition.Post("/training", c.NutritionHandler.LogTrainingSession)
	nutrition.Get("/training", c.NutritionHandler.GetTrainingSessions)
}

func (c *Config) MealPlans() {
	plans := c.App.Group("/api/v1/meal-plans", c.Middleware.AuthMiddleware(c.JWTService))

	plans.Post("", c.MealPlanHandler.GeneratePlan)
	plans.Get("", c.MealPlanHandler.GetPlans)
	plans.Get("/:id", c.MealPlanHandler.GetPlan)
	plans.Post("/:id/optimize", c.MealPlanHandler.OptimizePlan)
	plans.Delete("/:id", c.MealPlanHandler.DeletePlan)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.MidtransHandler.MidtransWebhookHandler)
}
