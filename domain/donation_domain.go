package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateDonation        = "donation created successfully"
	MessageSuccessGetDonations          = "donations retrieved successfully"
	MessageSuccessUpdateDonation        = "donation updated successfully"
	MessageSuccessDeleteDonation        = "donation removed"
	MessageSuccessGetAvailableDonations = "available food donations retrieved successfully"

	MessageFailedCreateDonation        = "failed to create donation"
	MessageFailedGetDonations          = "failed to retrieve donations"
	MessageFailedUpdateDonation        = "failed to update donation"
	MessageFailedDeleteDonation        = "failed to delete donation"
	MessageFailedGetAvailableDonations = "failed to retrieve available food donations"

	ErrDonationNotFound           = errors.New("donation not found")
	ErrUnauthorizedDonationAccess = errors.New("unauthorized access to donation")
	ErrInvalidDonationType        = errors.New("donation type must be food or money")
	ErrMissingFoodDetail          = errors.New("food donation detail is required for food donations")
	ErrMissingMoneyDetail         = errors.New("money donation detail is required for money donations")
	ErrInvalidDonationStatus      = errors.New("invalid donation status")
	ErrPaymentFailed              = errors.New("payment transaction failed")
)

type (
	FoodDonationRequest struct {
		FoodType       string                `json:"food_type" validate:"required,oneof=prepared-food fresh-produce baked-goods dairy meat pantry-items frozen beverages other"`
		Quantity       string                `json:"quantity" validate:"required"`
		Unit           string                `json:"unit" validate:"required,oneof=lbs kg pieces servings gallons liters packages cans bottles"`
		ExpiryDate     string                `json:"expiry_date" validate:"required"`
		PickupLocation string                `json:"pickup_location" validate:"required"`
		Description    string                `json:"description" validate:"omitempty"`
		Image          *multipart.FileHeader `json:"-" form:"-" validate:"omitempty"`
	}

	MoneyDonationRequest struct {
		Amount        float64 `json:"amount" validate:"required,gt=0"`
		Currency      string  `json:"currency" validate:"omitempty"`
		PaymentMethod string  `json:"payment_method" validate:"required,oneof=gateway bank-transfer mobile-money other"`
	}

	// CreateDonationRequest is a tagged union: Type selects which of the two
	// detail branches must be present; the other is ignored and never stored.
	CreateDonationRequest struct {
		Type        string                `json:"type" validate:"required,oneof=food money"`
		Food        *FoodDonationRequest  `json:"food" validate:"omitempty"`
		Money       *MoneyDonationRequest `json:"money" validate:"omitempty"`
		RecipientID string                `json:"recipient_id" validate:"omitempty,uuid"`
		Notes       string                `json:"notes" validate:"omitempty"`
	}

	UpdateDonationRequest struct {
		Status      string `json:"status" validate:"omitempty,oneof=Pending Approved Collected Delivered Cancelled"`
		RecipientID string `json:"recipient_id" validate:"omitempty,uuid"`
		Notes       string `json:"notes" validate:"omitempty"`
	}

	FoodDonationDetail struct {
		FoodType       string    `json:"food_type"`
		Quantity       string    `json:"quantity"`
		Unit           string    `json:"unit"`
		ExpiryDate     time.Time `json:"expiry_date"`
		PickupLocation string    `json:"pickup_location"`
		Description    string    `json:"description,omitempty"`
		ImageURL       string    `json:"image_url,omitempty"`
	}

	MoneyDonationDetail struct {
		Amount        float64 `json:"amount"`
		Currency      string  `json:"currency"`
		PaymentMethod string  `json:"payment_method"`
		TransactionID string  `json:"transaction_id,omitempty"`
	}

	PaymentInfo struct {
		Token       string `json:"token"`
		RedirectURL string `json:"redirect_url"`
	}

	DonationResponse struct {
		ID          string               `json:"id"`
		DonorID     string               `json:"donor_id"`
		DonorName   string               `json:"donor_name,omitempty"`
		Type        string               `json:"type"`
		Status      string               `json:"status"`
		RecipientID string               `json:"recipient_id,omitempty"`
		Notes       string               `json:"notes,omitempty"`
		Food        *FoodDonationDetail  `json:"food,omitempty"`
		Money       *MoneyDonationDetail `json:"money,omitempty"`
		Payment     *PaymentInfo         `json:"payment,omitempty"`
		CreatedAt   time.Time            `json:"created_at"`
	}
)
