package handlers

import (
	"strconv"

	"usana-backend/domain"
	"usana-backend/internal/api/presenters"
	"usana-backend/pkg/farmer"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FarmerHandler interface {
		CreateFarmer(c *fiber.Ctx) error
		GetFarmers(c *fiber.Ctx) error
		GetFarmer(c *fiber.Ctx) error
		GetMyFarmerProfile(c *fiber.Ctx) error
		UpdateFarmer(c *fiber.Ctx) error
		DeleteFarmer(c *fiber.Ctx) error
		AddYield(c *fiber.Ctx) error
	}

	farmerHandler struct {
		farmerService farmer.FarmerService
		validator     *validator.Validate
	}
)

func NewFarmerHandler(farmerService farmer.FarmerService, validator *validator.Validate) FarmerHandler {
	return &farmerHandler{
		farmerService: farmerService,
		validator:     validator,
	}
}

func (h *farmerHandler) CreateFarmer(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateFarmerRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFarmer, err)
	}

	res, err := h.farmerService.CreateFarmer(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatusCode(err), domain.MessageFailedCreateFarmer, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateFarmer)
}

func (h *farmerHandler) GetFarmers(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	farmers, count, err := h.farmerService.GetFarmers(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatusCode(err), domain.MessageFailedGetFarmers, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"farmers": farmers,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetFarmers)
}

func (h *farmerHandler) GetFarmer(c *fiber.Ctx) error {
	farmerID := c.Params("id")

	res, err := h.farmerService.GetFarmerByID(c.Context(), farmerID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatusCode(err), domain.MessageFailedGetFarmers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFarmers)
}

func (h *farmerHandler) GetMyFarmerProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.farmerService.GetMyFarmerProfile(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatusCode(err), domain.MessageFailedGetFarmers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFarmers)
}

func (h *farmerHandler) UpdateFarmer(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	farmerID := c.Params("id")
	req := new(domain.UpdateFarmerRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFarmer, err)
	}

	res, err := h.farmerService.UpdateFarmer(c.Context(), farmerID, *req, userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatusCode(err), domain.MessageFailedUpdateFarmer, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateFarmer)
}

func (h *farmerHandler) DeleteFarmer(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	farmerID := c.Params("id")

	if err := h.farmerService.DeleteFarmer(c.Context(), farmerID, userID, role); err != nil {
		return presenters.ErrorResponse(c, errorStatusCode(err), domain.MessageFailedDeleteFarmer, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFarmer)
}

func (h *farmerHandler) AddYield(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	farmerID := c.Params("id")
	req := new(domain.AddYieldRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddYield, err)
	}

	res, err := h.farmerService.AddYield(c.Context(), farmerID, *req, userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatusCode(err), domain.MessageFailedAddYield, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddYield)
}
