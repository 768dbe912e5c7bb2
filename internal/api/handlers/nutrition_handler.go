package handlers

import (
	"strconv"

	"usana-backend/domain"
	"usana-backend/internal/api/presenters"
	"usana-backend/pkg/nutrition"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NutritionHandler interface {
		GetLocalFoods(c *fiber.Ctx) error
		GetRecommendations(c *fiber.Ctx) error
		CalculateNeeds(c *fiber.Ctx) error
		GenerateMealPlan(c *fiber.Ctx) error
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

func (h *nutritionHandler) GetLocalFoods(c *fiber.Ctx) error {
	var budget float64
	if raw := c.Query("budget"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLocalFoods, err)
		}
		budget = parsed
	}

	res := h.nutritionService.GetLocalFoods(c.Context(), c.Query("season"), budget)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLocalFoods)
}

func (h *nutritionHandler) GetRecommendations(c *fiber.Ctx) error {
	res := h.nutritionService.GetRecommendations(c.Context())
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNutritionRecs)
}

func (h *nutritionHandler) CalculateNeeds(c *fiber.Ctx) error {
	req := new(domain.CalculateNeedsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCalculateNeeds, err)
	}

	res := h.nutritionService.CalculateNeeds(c.Context(), *req)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCalculateNeeds)
}

func (h *nutritionHandler) GenerateMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.GenerateMealPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateMealPlan, err)
	}

	res := h.nutritionService.GenerateMealPlan(c.Context(), *req, userID)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateMealPlan)
}
