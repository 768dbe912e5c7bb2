package handlers

import (
	"usana-backend/domain"
	"usana-backend/internal/api/presenters"
	"usana-backend/pkg/insight"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InsightHandler interface {
		AnalyzeDisease(c *fiber.Ctx) error
		GetDiseases(c *fiber.Ctx) error
		GetDiseaseInfo(c *fiber.Ctx) error
		GetTreatments(c *fiber.Ctx) error
		GetAnalysisHistory(c *fiber.Ctx) error
		GetDeliveries(c *fiber.Ctx) error
		GetDelivery(c *fiber.Ctx) error
		UpdateDeliveryStatus(c *fiber.Ctx) error
		GetSupplyChainAnalytics(c *fiber.Ctx) error
		OptimizeRoutes(c *fiber.Ctx) error
		GetVehicles(c *fiber.Ctx) error
		GetAlerts(c *fiber.Ctx) error
	}

	insightHandler struct {
		insightService insight.InsightService
		validator      *validator.Validate
	}
)

func NewInsightHandler(insightService insight.InsightService, validator *validator.Validate) InsightHandler {
	return &insightHandler{
		insightService: insightService,
		validator:      validator,
	}
}

func (h *insightHandler) AnalyzeDisease(c *fiber.Ctx) error {
	req := new(domain.AnalyzeDiseaseRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyzeDisease, err)
	}

	res, err := h.insightService.AnalyzeDisease(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatusCode(err), domain.MessageFailedAnalyzeDisease, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAnalyzeDisease)
}

func (h *insightHandler) GetDiseases(c *fiber.Ctx) error {
	res := h.insightService.GetDiseases(c.Context())
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDiseases)
}

func (h *insightHandler) GetDiseaseInfo(c *fiber.Ctx) error {
	res, err := h.insightService.GetDiseaseInfo(c.Context(), c.Params("diseaseId"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatusCode(err), domain.MessageFailedAnalyzeDisease, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDiseases)
}

func (h *insightHandler) GetTreatments(c *fiber.Ctx) error {
	res, err := h.insightService.GetTreatments(c.Context(), c.Params("diseaseId"), c.Query("type"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatusCode(err), domain.MessageFailedAnalyzeDisease, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDiseases)
}

func (h *insightHandler) GetAnalysisHistory(c *fiber.Ctx) error {
	res := h.insightService.GetAnalysisHistory(c.Context())
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDiseases)
}

func (h *insightHandler) GetDeliveries(c *fiber.Ctx) error {
	res := h.insightService.GetDeliveries(c.Context(), c.Query("status"), c.Query("driver"), c.Query("route"))
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDeliveries)
}

func (h *insightHandler) GetDelivery(c *fiber.Ctx) error {
	res, err := h.insightService.GetDeliveryByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatusCode(err), domain.MessageFailedGetDeliveries, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDeliveries)
}

func (h *insightHandler) UpdateDeliveryStatus(c *fiber.Ctx) error {
	deliveryID := c.Params("id")
	req := new(domain.UpdateDeliveryStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDelivery, err)
	}

	res, err := h.insightService.UpdateDeliveryStatus(c.Context(), deliveryID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatusCode(err), domain.MessageFailedUpdateDelivery, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateDelivery)
}

func (h *insightHandler) GetSupplyChainAnalytics(c *fiber.Ctx) error {
	period, analytics := h.insightService.GetAnalytics(c.Context(), c.Query("period"))
	return presenters.SuccessResponse(c, fiber.Map{
		"period":    period,
		"analytics": analytics,
	}, fiber.StatusOK, domain.MessageSuccessGetSCAnalytics)
}

func (h *insightHandler) OptimizeRoutes(c *fiber.Ctx) error {
	req := new(domain.OptimizeRoutesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	res := h.insightService.OptimizeRoutes(c.Context(), *req)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessOptimizeRoutes)
}

func (h *insightHandler) GetVehicles(c *fiber.Ctx) error {
	res := h.insightService.GetVehicles(c.Context())
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetVehicles)
}

func (h *insightHandler) GetAlerts(c *fiber.Ctx) error {
	res := h.insightService.GetAlerts(c.Context())
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAlerts)
}
