package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateWasteRecord = "waste record created successfully"
	MessageSuccessGetWasteRecords   = "waste records retrieved successfully"
	MessageSuccessUpdateWasteRecord = "waste record updated successfully"
	MessageSuccessDeleteWasteRecord = "waste record removed"
	MessageSuccessGetWasteAnalytics = "waste analytics retrieved successfully"

	MessageFailedCreateWasteRecord = "failed to create waste record"
	MessageFailedGetWasteRecords   = "failed to retrieve waste records"
	MessageFailedUpdateWasteRecord = "failed to update waste record"
	MessageFailedDeleteWasteRecord = "failed to delete waste record"
	MessageFailedGetWasteAnalytics = "failed to retrieve waste analytics"

	ErrWasteRecordNotFound     = errors.New("waste record not found")
	ErrUnauthorizedWasteAccess = errors.New("unauthorized access to waste record")
	ErrInvalidWasteDate        = errors.New("invalid waste date")
	ErrInvalidDateRange        = errors.New("invalid date range")
)

type (
	CreateWasteRecordRequest struct {
		Date     string  `json:"date" validate:"required"`
		FoodType string  `json:"food_type" validate:"required,oneof='Fruits & Vegetables' 'Dairy' 'Meat' 'Grains' 'Prepared Food' 'Other'"`
		Quantity float64 `json:"quantity" validate:"min=0"`
		Unit     string  `json:"unit" validate:"required,oneof=lbs kg pieces servings gallons liters packages cans bottles"`
		Reason   string  `json:"reason" validate:"required,oneof=Expired Spoiled Over-prepared Leftovers Other"`
		Cost     float64 `json:"cost" validate:"min=0"`
		Location string  `json:"location" validate:"required"`
		Notes    string  `json:"notes" validate:"omitempty"`
	}

	UpdateWasteRecordRequest struct {
		Date     string   `json:"date" validate:"omitempty"`
		FoodType string   `json:"food_type" validate:"omitempty,oneof='Fruits & Vegetables' 'Dairy' 'Meat' 'Grains' 'Prepared Food' 'Other'"`
		Quantity *float64 `json:"quantity" validate:"omitempty,min=0"`
		Unit     string   `json:"unit" validate:"omitempty,oneof=lbs kg pieces servings gallons liters packages cans bottles"`
		Reason   string   `json:"reason" validate:"omitempty,oneof=Expired Spoiled Over-prepared Leftovers Other"`
		Cost     *float64 `json:"cost" validate:"omitempty,min=0"`
		Location string   `json:"location" validate:"omitempty"`
		Notes    string   `json:"notes" validate:"omitempty"`
	}

	WasteRecordResponse struct {
		ID        string    `json:"id"`
		Date      time.Time `json:"date"`
		FoodType  string    `json:"food_type"`
		Quantity  float64   `json:"quantity"`
		Unit      string    `json:"unit"`
		Reason    string    `json:"reason"`
		Cost      float64   `json:"cost"`
		Location  string    `json:"location"`
		Notes     string    `json:"notes,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}

	// WasteListFilter bounds a waste record listing. Zero-value fields are
	// ignored; StartDate/EndDate must be set together.
	WasteListFilter struct {
		StartDate time.Time
		EndDate   time.Time
		FoodType  string
	}

	// WasteSummary is the degenerate single-level aggregate returned with
	// the plain listing, scoped by the same filter set.
	WasteSummary struct {
		TotalQuantity float64 `json:"total_quantity"`
		TotalCost     float64 `json:"total_cost"`
		Count         int64   `json:"count"`
	}

	ReasonBreakdown struct {
		Reason   string  `json:"reason"`
		Quantity float64 `json:"quantity"`
		Cost     float64 `json:"cost"`
		Count    int64   `json:"count"`
	}

	FoodTypeWasteGroup struct {
		FoodType      string             `json:"food_type"`
		TotalQuantity float64            `json:"total_quantity"`
		TotalCost     float64            `json:"total_cost"`
		TotalEntries  int64              `json:"total_entries"`
		Reasons       []*ReasonBreakdown `json:"reasons"`
	}

	WasteAnalyticsResponse struct {
		Period    string                `json:"period"`
		StartDate time.Time             `json:"start_date"`
		Groups    []*FoodTypeWasteGroup `json:"groups"`
	}
)
