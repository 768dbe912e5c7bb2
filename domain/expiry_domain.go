package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateExpiryItem = "expiry item created successfully"
	MessageSuccessGetExpiryItems   = "expiry items retrieved successfully"
	MessageSuccessUpdateExpiryItem = "expiry item updated successfully"
	MessageSuccessDeleteExpiryItem = "expiry item removed"
	MessageSuccessNotifyExpiry     = "expiry notifications sent"

	MessageFailedCreateExpiryItem = "failed to create expiry item"
	MessageFailedGetExpiryItems   = "failed to retrieve expiry items"
	MessageFailedUpdateExpiryItem = "failed to update expiry item"
	MessageFailedDeleteExpiryItem = "failed to delete expiry item"
	MessageFailedNotifyExpiry     = "failed to send expiry notifications"

	ErrExpiryItemNotFound       = errors.New("expiry item not found")
	ErrUnauthorizedExpiryAccess = errors.New("unauthorized access to expiry item")
	ErrInvalidExpiryDate        = errors.New("invalid expiry date")
	ErrInvalidPurchaseDate      = errors.New("invalid purchase date")
)

type (
	CreateExpiryItemRequest struct {
		ItemName     string `json:"item_name" validate:"required"`
		Category     string `json:"category" validate:"required,oneof=Fruits Vegetables Dairy Meat Bakery 'Pantry Items' Frozen Beverages"`
		PurchaseDate string `json:"purchase_date" validate:"required"`
		ExpiryDate   string `json:"expiry_date" validate:"required"`
		Quantity     string `json:"quantity" validate:"required"`
		Location     string `json:"location" validate:"required,oneof=Refrigerator Freezer Pantry Counter Cupboard"`
		Notes        string `json:"notes" validate:"omitempty"`
	}

	UpdateExpiryItemRequest struct {
		ItemName     string `json:"item_name" validate:"omitempty"`
		Category     string `json:"category" validate:"omitempty,oneof=Fruits Vegetables Dairy Meat Bakery 'Pantry Items' Frozen Beverages"`
		PurchaseDate string `json:"purchase_date" validate:"omitempty"`
		ExpiryDate   string `json:"expiry_date" validate:"omitempty"`
		Quantity     string `json:"quantity" validate:"omitempty"`
		Location     string `json:"location" validate:"omitempty,oneof=Refrigerator Freezer Pantry Counter Cupboard"`
		Notes        string `json:"notes" validate:"omitempty"`
	}

	ExpiryItemResponse struct {
		ID               string    `json:"id"`
		ItemName         string    `json:"item_name"`
		Category         string    `json:"category"`
		PurchaseDate     time.Time `json:"purchase_date"`
		ExpiryDate       time.Time `json:"expiry_date"`
		Quantity         string    `json:"quantity"`
		Location         string    `json:"location"`
		Status           string    `json:"status"`
		NotificationSent bool      `json:"notification_sent"`
		Notes            string    `json:"notes,omitempty"`
		CreatedAt        time.Time `json:"created_at"`
	}

	NotifyExpiryResponse struct {
		NotifiedItems int `json:"notified_items"`
	}
)
