package handlers

import (
	"strconv"

	"usana-backend/domain"
	"usana-backend/internal/api/presenters"
	"usana-backend/pkg/waste"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	WasteHandler interface {
		CreateWasteRecord(c *fiber.Ctx) error
		GetWasteRecords(c *fiber.Ctx) error
		GetWasteRecord(c *fiber.Ctx) error
		UpdateWasteRecord(c *fiber.Ctx) error
		DeleteWasteRecord(c *fiber.Ctx) error
		GetWasteAnalytics(c *fiber.Ctx) error
	}

	wasteHandler struct {
		wasteService waste.WasteService
		validator    *validator.Validate
	}
)

func NewWasteHandler(wasteService waste.WasteService, validator *validator.Validate) WasteHandler {
	return &wasteHandler{
		wasteService: wasteService,
		validator:    validator,
	}
}

func (h *wasteHandler) CreateWasteRecord(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateWasteRecordRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateWasteRecord, err)
	}

	res, err := h.wasteService.CreateWasteRecord(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatusCode(err), domain.MessageFailedCreateWasteRecord, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateWasteRecord)
}

func (h *wasteHandler) GetWasteRecords(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	records, summary, count, err := h.wasteService.GetWasteRecords(
		c.Context(),
		userID,
		c.Query("start_date"),
		c.Query("end_date"),
		c.Query("food_type"),
		page,
		limit,
	)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatusCode(err), domain.MessageFailedGetWasteRecords, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"records": records,
		"summary": summary,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetWasteRecords)
}

func (h *wasteHandler) GetWasteRecord(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recordID := c.Params("id")

	res, err := h.wasteService.GetWasteRecordByID(c.Context(), recordID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatusCode(err), domain.MessageFailedGetWasteRecords, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWasteRecords)
}

func (h *wasteHandler) UpdateWasteRecord(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recordID := c.Params("id")
	req := new(domain.UpdateWasteRecordRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateWasteRecord, err)
	}

	res, err := h.wasteService.UpdateWasteRecord(c.Context(), recordID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatusCode(err), domain.MessageFailedUpdateWasteRecord, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateWasteRecord)
}

func (h *wasteHandler) DeleteWasteRecord(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recordID := c.Params("id")

	if err := h.wasteService.DeleteWasteRecord(c.Context(), recordID, userID); err != nil {
		return presenters.ErrorResponse(c, errorStatusCode(err), domain.MessageFailedDeleteWasteRecord, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteWasteRecord)
}

func (h *wasteHandler) GetWasteAnalytics(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	period := c.Query("period")

	res, err := h.wasteService.GetWasteAnalytics(c.Context(), userID, period)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatusCode(err), domain.MessageFailedGetWasteAnalytics, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWasteAnalytics)
}
