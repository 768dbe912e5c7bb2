package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateFarmer = "farmer profile created successfully"
	MessageSuccessGetFarmers   = "farmers retrieved successfully"
	MessageSuccessUpdateFarmer = "farmer profile updated successfully"
	MessageSuccessDeleteFarmer = "farmer profile removed"
	MessageSuccessAddYield     = "yield data added successfully"

	MessageFailedCreateFarmer = "failed to create farmer profile"
	MessageFailedGetFarmers   = "failed to retrieve farmers"
	MessageFailedUpdateFarmer = "failed to update farmer profile"
	MessageFailedDeleteFarmer = "failed to delete farmer profile"
	MessageFailedAddYield     = "failed to add yield data"

	ErrFarmerNotFound           = errors.New("farmer not found")
	ErrFarmerProfileExists      = errors.New("user already has a farmer profile")
	ErrUnauthorizedFarmerAccess = errors.New("unauthorized access to farmer profile")
)

type (
	CreateFarmerRequest struct {
		FarmName          string   `json:"farm_name" validate:"required,min=3"`
		FarmSize          float64  `json:"farm_size" validate:"required,gt=0"`
		Location          string   `json:"location" validate:"required,min=2"`
		PrimaryCrops      []string `json:"primary_crops" validate:"omitempty,dive,min=1"`
		FarmingExperience string   `json:"farming_experience" validate:"required,oneof=0-2 3-5 6-10 11-20 20+"`
		FarmingType       string   `json:"farming_type" validate:"required,oneof=conventional organic sustainable permaculture hydroponic"`
		Certifications    []string `json:"certifications" validate:"omitempty"`
		ContactNumber     string   `json:"contact_number" validate:"omitempty"`
		FarmAddress       string   `json:"farm_address" validate:"omitempty"`
	}

	UpdateFarmerRequest struct {
		FarmName          string   `json:"farm_name" validate:"omitempty,min=3"`
		FarmSize          *float64 `json:"farm_size" validate:"omitempty,gt=0"`
		Location          string   `json:"location" validate:"omitempty,min=2"`
		PrimaryCrops      []string `json:"primary_crops" validate:"omitempty,dive,min=1"`
		FarmingExperience string   `json:"farming_experience" validate:"omitempty,oneof=0-2 3-5 6-10 11-20 20+"`
		FarmingType       string   `json:"farming_type" validate:"omitempty,oneof=conventional organic sustainable permaculture hydroponic"`
		Certifications    []string `json:"certifications" validate:"omitempty"`
		ContactNumber     string   `json:"contact_number" validate:"omitempty"`
		FarmAddress       string   `json:"farm_address" validate:"omitempty"`
	}

	AddYieldRequest struct {
		Crop    string  `json:"crop" validate:"required"`
		Year    int     `json:"year" validate:"required,min=1900"`
		Yield   float64 `json:"yield" validate:"min=0"`
		Area    float64 `json:"area" validate:"min=0"`
		Quality string  `json:"quality" validate:"omitempty"`
		Revenue float64 `json:"revenue" validate:"min=0"`
	}

	YieldEntry struct {
		Crop    string  `json:"crop"`
		Year    int     `json:"year"`
		Yield   float64 `json:"yield"`
		Area    float64 `json:"area"`
		Quality string  `json:"quality,omitempty"`
		Revenue float64 `json:"revenue"`
	}

	FarmerResponse struct {
		ID                string        `json:"id"`
		UserID            string        `json:"user_id"`
		FarmerCode        string        `json:"farmer_code"`
		FarmName          string        `json:"farm_name"`
		FarmSize          float64       `json:"farm_size"`
		Location          string        `json:"location"`
		PrimaryCrops      []string      `json:"primary_crops"`
		FarmingExperience string        `json:"farming_experience"`
		FarmingType       string        `json:"farming_type"`
		Certifications    []string      `json:"certifications,omitempty"`
		ContactNumber     string        `json:"contact_number,omitempty"`
		FarmAddress       string        `json:"farm_address,omitempty"`
		IsVerified        bool          `json:"is_verified"`
		YieldHistory      []*YieldEntry `json:"yield_history,omitempty"`
		CreatedAt         time.Time     `json:"created_at"`
	}
)
