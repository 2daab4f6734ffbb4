package handlers

import (
	"time"

	"Technically-Fit-Backend/domain"
	"Technically-Fit-Backend/internal/api/presenters"
	"Technically-Fit-Backend/pkg/nutrition"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NutritionHandler interface {
		GetGoals(c *fiber.Ctx) error
		RecalculateGoals(c *fiber.Ctx) error
		GetDailyProgress(c *fiber.Ctx) error
		GetTodayAdjustment(c *fiber.Ctx) error
		GetProteinMakeupPlan(c *fiber.Ctx) error
		LogRecovery(c *fiber.Ctx) error
		LogTrainingSession(c *fiber.Ctx) error
		GetTrainingSessions(c *fiber.Ctx) error
	}

	nutritionHandler struct {
		nutritionService nutrition.NutritionService
		validator        *validator.Validate
	}
)

func NewNutritionHandler(nutritionService nutrition.NutritionService, validator *validator.Validate) NutritionHandler {
	return &nutritionHandler{
		nutritionService: nutritionService,
		validator:        validator,
	}
}

func (h *nutritionHandler) GetGoals(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.nutritionService.GetGoals(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetGoals, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGoals)
}

func (h *nutritionHandler) RecalculateGoals(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.nutritionService.RecalculateGoals(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecalculateGoals, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRecalculateGoals)
}

func (h *nutritionHandler) GetDailyProgress(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	date, err := queryDate(c, "date")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProgress, err)
	}

	res, err := h.nutritionService.GetDailyProgress(c.Context(), userID, date)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProgress, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProgress)
}

func (h *nutritionHandler) GetTodayAdjustment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.nutritionService.GetTodayAdjustment(c.Context(), userID, time.Now())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAdjustment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAdjustment)
}

func (h *nutritionHandler) GetProteinMakeupPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.nutritionService.GetProteinMakeupPlan(c.Context(), userID, time.Now())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMakeupPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMakeupPlan)
}

func (h *nutritionHandler) LogRecovery(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.LogRecoveryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogRecovery, err)
	}

	if err := h.nutritionService.LogRecovery(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogRecovery, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessLogRecovery)
}

func (h *nutritionHandler) LogTrainingSession(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.LogTrainingSessionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogTraining, err)
	}

	if err := h.nutritionService.LogTrainingSession(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogTraining, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessLogTraining)
}

func (h *nutritionHandler) GetTrainingSessions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	end := time.Now().AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -8)

	sessions, err := h.nutritionService.GetTrainingSessions(c.Context(), userID, start, end)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTraining, err)
	}

	return presenters.SuccessResponse(c, sessions, fiber.StatusOK, domain.MessageSuccessGetTraining)
}

// queryDate reads an optional YYYY-MM-DD query parameter, defaulting to now.
func queryDate(c *fiber.Ctx, key string) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Now(), nil
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	return date, nil
}
