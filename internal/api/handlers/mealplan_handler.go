package handlers

import (
	"Technically-Fit-Backend/domain"
	"Technically-Fit-Backend/internal/api/presenters"
	"Technically-Fit-Backend/pkg/mealplan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealPlanHandler interface {
		GeneratePlan(c *fiber.Ctx) error
		GetPlans(c *fiber.Ctx) error
		GetPlan(c *fiber.Ctx) error
		OptimizePlan(c *fiber.Ctx) error
		DeletePlan(c *fiber.Ctx) error
	}

	mealPlanHandler struct {
		mealPlanService mealplan.MealPlanService
		validator       *validator.Validate
	}
)

func NewMealPlanHandler(mealPlanService mealplan.MealPlanService, validator *validator.Validate) MealPlanHandler {
	return &mealPlanHandler{
		mealPlanService: mealPlanService,
		validator:       validator,
	}
}

func (h *mealPlanHandler) GeneratePlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.GenerateMealPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGeneratePlan, err)
	}

	res, err := h.mealPlanService.GeneratePlan(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGeneratePlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessGeneratePlan)
}

func (h *mealPlanHandler) GetPlans(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	plans, err := h.mealPlanService.GetPlans(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPlans, err)
	}

	return presenters.SuccessResponse(c, plans, fiber.StatusOK, domain.MessageSuccessGetPlans)
}

func (h *mealPlanHandler) GetPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")

	res, err := h.mealPlanService.GetPlan(c.Context(), planID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPlans, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPlans)
}

func (h *mealPlanHandler) OptimizePlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")
	req := new(domain.OptimizeMealPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedOptimizePlan, err)
	}

	res, err := h.mealPlanService.OptimizePlan(c.Context(), planID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedOptimizePlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessOptimizePlan)
}

func (h *mealPlanHandler) DeletePlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")

	if err := h.mealPlanService.DeletePlan(c.Context(), planID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePlan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePlan)
}
