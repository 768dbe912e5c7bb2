package handlers

import (
	"errors"

	"usana-backend/domain"

	"github.com/gofiber/fiber/v2"
)

// errorStatusCode maps domain errors onto HTTP status codes. Missing
// resources and denied access are reported separately: a 403 confirms the
// resource exists but belongs to someone else.
func errorStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrWasteRecordNotFound),
		errors.Is(err, domain.ErrExpiryItemNotFound),
		errors.Is(err, domain.ErrDonationNotFound),
		errors.Is(err, domain.ErrFarmerNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrDeliveryNotFound),
		errors.Is(err, domain.ErrDiseaseNotFound):
		return fiber.StatusNotFound

	case errors.Is(err, domain.ErrUnauthorizedWasteAccess),
		errors.Is(err, domain.ErrUnauthorizedExpiryAccess),
		errors.Is(err, domain.ErrUnauthorizedDonationAccess),
		errors.Is(err, domain.ErrUnauthorizedFarmerAccess),
		errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		return fiber.StatusUnauthorized

	case errors.Is(err, domain.ErrInvalidWasteDate),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrInvalidExpiryDate),
		errors.Is(err, domain.ErrInvalidPurchaseDate),
		errors.Is(err, domain.ErrInvalidDonationType),
		errors.Is(err, domain.ErrMissingFoodDetail),
		errors.Is(err, domain.ErrMissingMoneyDetail),
		errors.Is(err, domain.ErrInvalidDonationStatus),
		errors.Is(err, domain.ErrEmailAlreadyRegistered),
		errors.Is(err, domain.ErrWrongCurrentPassword),
		errors.Is(err, domain.ErrFarmerProfileExists),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest

	default:
		return fiber.StatusInternalServerError
	}
}
