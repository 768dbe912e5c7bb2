package handlers

import (
	"usana-backend/domain"
	"usana-backend/internal/api/presenters"
	"usana-backend/pkg/expiry"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ExpiryHandler interface {
		CreateExpiryItem(c *fiber.Ctx) error
		GetExpiryItems(c *fiber.Ctx) error
		UpdateExpiryItem(c *fiber.Ctx) error
		DeleteExpiryItem(c *fiber.Ctx) error
		NotifyExpiring(c *fiber.Ctx) error
	}

	expiryHandler struct {
		expiryService expiry.ExpiryService
		validator     *validator.Validate
	}
)

func NewExpiryHandler(expiryService expiry.ExpiryService, validator *validator.Validate) ExpiryHandler {
	return &expiryHandler{
		expiryService: expiryService,
		validator:     validator,
	}
}

func (h *expiryHandler) CreateExpiryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateExpiryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateExpiryItem, err)
	}

	res, err := h.expiryService.CreateExpiryItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatusCode(err), domain.MessageFailedCreateExpiryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateExpiryItem)
}

func (h *expiryHandler) GetExpiryItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.expiryService.GetExpiryItems(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatusCode(err), domain.MessageFailedGetExpiryItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetExpiryItems)
}

func (h *expiryHandler) UpdateExpiryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	req := new(domain.UpdateExpiryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateExpiryItem, err)
	}

	if err := h.expiryService.UpdateExpiryItem(c.Context(), itemID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, errorStatusCode(err), domain.MessageFailedUpdateExpiryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateExpiryItem)
}

func (h *expiryHandler) DeleteExpiryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.expiryService.DeleteExpiryItem(c.Context(), itemID, userID); err != nil {
		return presenters.ErrorResponse(c, errorStatusCode(err), domain.MessageFailedDeleteExpiryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteExpiryItem)
}

func (h *expiryHandler) NotifyExpiring(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.expiryService.NotifyExpiring(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatusCode(err), domain.MessageFailedNotifyExpiry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessNotifyExpiry)
}
