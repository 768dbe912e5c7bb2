package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAnalyzeDisease  = "disease analysis completed successfully"
	MessageSuccessGetDiseases     = "disease library retrieved successfully"
	MessageSuccessGetDeliveries   = "deliveries retrieved successfully"
	MessageSuccessUpdateDelivery  = "delivery status updated successfully"
	MessageSuccessGetSCAnalytics  = "supply chain analytics retrieved successfully"
	MessageSuccessGetVehicles     = "vehicles retrieved successfully"
	MessageSuccessGetAlerts       = "alerts retrieved successfully"
	MessageSuccessOptimizeRoutes  = "routes optimized successfully"
	MessageFailedAnalyzeDisease   = "failed to analyze disease"
	MessageFailedGetDeliveries    = "failed to retrieve deliveries"
	MessageFailedUpdateDelivery   = "failed to update delivery status"

	ErrDeliveryNotFound = errors.New("delivery not found")
	ErrDiseaseNotFound  = errors.New("disease information not found")
)

type (
	AnalyzeDiseaseRequest struct {
		Image    string `json:"image" validate:"omitempty"`
		CropType string `json:"crop_type" validate:"required"`
		Location string `json:"location" validate:"omitempty"`
	}

	DiseaseTreatments struct {
		Organic    []string `json:"organic"`
		Chemical   []string `json:"chemical"`
		Preventive []string `json:"preventive"`
	}

	DiseaseProfile struct {
		Disease          string            `json:"disease"`
		Severity         string            `json:"severity"`
		Description      string            `json:"description"`
		Symptoms         []string          `json:"symptoms"`
		Causes           []string          `json:"causes"`
		Treatments       DiseaseTreatments `json:"treatments"`
		ExpectedRecovery string            `json:"expected_recovery"`
		YieldImpact      string            `json:"yield_impact"`
	}

	DiseaseAnalysisResponse struct {
		AnalysisID string         `json:"analysis_id"`
		Result     DiseaseProfile `json:"result"`
		CropType   string         `json:"crop_type"`
		Location   string         `json:"location,omitempty"`
		AnalyzedAt time.Time      `json:"analyzed_at"`
	}

	DiseaseSummary struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Severity    string `json:"severity"`
		Description string `json:"description"`
	}

	DiseaseTreatmentsResponse struct {
		Disease    string            `json:"disease"`
		Treatments DiseaseTreatments `json:"treatments"`
	}

	AnalysisHistoryEntry struct {
		ID         string    `json:"id"`
		CropType   string    `json:"crop_type"`
		Disease    string    `json:"disease"`
		Confidence float64   `json:"confidence"`
		Severity   string    `json:"severity"`
		AnalyzedAt time.Time `json:"analyzed_at"`
		Location   string    `json:"location"`
	}

	OptimizeRoutesRequest struct {
		Stops       []string `json:"stops" validate:"omitempty,dive,min=1"`
		Constraints []string `json:"constraints" validate:"omitempty"`
	}

	GeoPoint struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}

	DeliveryStop struct {
		Location string `json:"location"`
		Status   string `json:"status"` // "completed", "in-progress", "pending"
		Time     string `json:"time"`
	}

	Delivery struct {
		ID               string         `json:"id"`
		Status           string         `json:"status"` // "loading", "in-transit", "delivered"
		Driver           string         `json:"driver"`
		Vehicle          string         `json:"vehicle"`
		Route            string         `json:"route"`
		Stops            []DeliveryStop `json:"stops"`
		TotalMeals       int            `json:"total_meals"`
		EstimatedArrival string         `json:"estimated_arrival"`
		CurrentLocation  GeoPoint       `json:"current_location"`
	}

	UpdateDeliveryStatusRequest struct {
		Status   string    `json:"status" validate:"required,oneof=loading in-transit delivered cancelled"`
		Location *GeoPoint `json:"location" validate:"omitempty"`
		Notes    string    `json:"notes" validate:"omitempty"`
	}

	SupplyChainAnalytics struct {
		TotalDeliveries     int     `json:"total_deliveries"`
		TotalMeals          int     `json:"total_meals"`
		AverageDeliveryTime int     `json:"average_delivery_time"` // minutes
		OnTimePercentage    float64 `json:"on_time_percentage"`
		FuelEfficiency      float64 `json:"fuel_efficiency"`
		CostSavings         float64 `json:"cost_savings"`
		CO2Reduced          float64 `json:"co2_reduced"` // kg
	}

	Vehicle struct {
		ID        string   `json:"id"`
		Name      string   `json:"name"`
		Driver    string   `json:"driver"`
		Status    string   `json:"status"`
		Location  GeoPoint `json:"location"`
		Speed     int      `json:"speed"`
		FuelLevel int      `json:"fuel_level"`
		NextStop  string   `json:"next_stop"`
		ETA       string   `json:"eta"`
	}

	Alert struct {
		ID        string    `json:"id"`
		Type      string    `json:"type"` // "delay", "delivery", "maintenance"
		Severity  string    `json:"severity"`
		Message   string    `json:"message"`
		Timestamp time.Time `json:"timestamp"`
		Vehicle   string    `json:"vehicle"`
		Location  string    `json:"location"`
	}

	RouteStop struct {
		Stop        string `json:"stop"`
		Order       int    `json:"order"`
		ArrivalTime string `json:"arrival_time"`
	}

	RouteSavings struct {
		Distance float64 `json:"distance"`
		Time     int     `json:"time"`
		Fuel     float64 `json:"fuel"`
		Cost     float64 `json:"cost"`
	}

	OptimizedRoute struct {
		OriginalDistance  float64      `json:"original_distance"`
		OptimizedDistance float64      `json:"optimized_distance"`
		Savings           RouteSavings `json:"savings"`
		Route             []RouteStop  `json:"route"`
	}
)
