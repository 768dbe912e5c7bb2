package insight

import (
	"time"

	"usana-backend/domain"
)

// Dataset bundles the reference data backing the insight endpoints. It is
// built once at startup and treated as read only: handlers that report
// changes (delivery status updates) return modified copies, never touch
// the dataset itself.
type Dataset struct {
	diseaseIDs []string
	diseases   map[string]domain.DiseaseProfile

	deliveries []domain.Delivery
	analytics  domain.SupplyChainAnalytics
	vehicles   []domain.Vehicle
	history    []domain.AnalysisHistoryEntry
}

func NewDataset() *Dataset {
	now := time.Now()
	return &Dataset{
		diseaseIDs: []string{"blight", "rust"},
		diseases:   diseaseLibrary(),
		deliveries: deliveryRecords(),
		analytics:  supplyChainAnalytics(),
		vehicles:   vehicleFleet(),
		history:    analysisHistory(now),
	}
}

func diseaseLibrary() map[string]domain.DiseaseProfile {
	return map[string]domain.DiseaseProfile{
		"blight": {
			Disease:     "Late Blight",
			Severity:    "high",
			Description: "Late blight is a destructive disease that affects tomatoes and potatoes, caused by the pathogen Phytophthora infestans.",
			Symptoms: []string{
				"Dark, water-soaked lesions on leaves",
				"White fuzzy growth on leaf undersides",
				"Brown spots on stems and fruits",
				"Rapid wilting and death of plant parts",
			},
			Causes: []string{
				"High humidity (>90%)",
				"Cool temperatures (60-70°F)",
				"Poor air circulation",
				"Overhead watering",
				"Infected plant debris",
			},
			Treatments: domain.DiseaseTreatments{
				Organic: []string{
					"Apply copper-based fungicides",
					"Use baking soda spray (1 tsp per quart water)",
					"Remove affected plant parts immediately",
					"Improve air circulation around plants",
				},
				Chemical: []string{
					"Apply chlorothalonil fungicide",
					"Use mancozeb-based treatments",
					"Spray with propamocarb hydrochloride",
					"Apply metalaxyl for severe cases",
				},
				Preventive: []string{
					"Plant resistant varieties",
					"Ensure proper spacing between plants",
					"Water at soil level, not on leaves",
					"Remove plant debris after harvest",
					"Rotate crops annually",
				},
			},
			ExpectedRecovery: "2-3 weeks with proper treatment",
			YieldImpact:      "Can reduce yield by 30-70% if untreated",
		},
		"rust": {
			Disease:     "Wheat Rust",
			Severity:    "medium",
			Description: "Wheat rust is a fungal disease that affects wheat crops, causing orange-red pustules on leaves and stems.",
			Symptoms: []string{
				"Orange-red pustules on leaves",
				"Yellow spots that turn brown",
				"Premature leaf drop",
				"Weakened stems",
			},
			Causes: []string{
				"Moderate temperatures (60-70°F)",
				"High humidity",
				"Wind-dispersed spores",
				"Susceptible wheat varieties",
			},
			Treatments: domain.DiseaseTreatments{
				Organic: []string{
					"Apply sulfur-based fungicides",
					"Use neem oil spray",
					"Remove infected plant debris",
					"Encourage beneficial insects",
				},
				Chemical: []string{
					"Apply triazole fungicides",
					"Use strobilurin-based treatments",
					"Spray with tebuconazole",
					"Apply propiconazole for severe infections",
				},
				Preventive: []string{
					"Plant rust-resistant varieties",
					"Monitor weather conditions",
					"Apply preventive fungicide sprays",
					"Maintain proper field hygiene",
				},
			},
			ExpectedRecovery: "3-4 weeks with treatment",
			YieldImpact:      "Can reduce yield by 20-40% if untreated",
		},
	}
}

func deliveryRecords() []domain.Delivery {
	return []domain.Delivery{
		{
			ID:      "DEL-001",
			Status:  "in-transit",
			Driver:  "John Onyango",
			Vehicle: "Truck #001",
			Route:   "kasarani-mwiki route",
			Stops: []domain.DeliveryStop{
				{Location: "Seasons", Status: "completed", Time: "09:30"},
				{Location: "Hunters", Status: "in-progress", Time: "10:00"},
				{Location: "Sunton", Status: "pending", Time: "10:15"},
			},
			TotalMeals:       500,
			EstimatedArrival: "10:30",
			CurrentLocation:  domain.GeoPoint{Lat: -1.218, Lng: 36.886},
		},
		{
			ID:      "DEL-002",
			Status:  "loading",
			Driver:  "Papa Okenye",
			Vehicle: "Truck #002",
			Route:   "Thika road route",
			Stops: []domain.DeliveryStop{
				{Location: "Bypass", Status: "completed", Time: "11:00"},
				{Location: "Juja", Status: "pending", Time: "12:00"},
			},
			TotalMeals:       300,
			EstimatedArrival: "12:30",
			CurrentLocation:  domain.GeoPoint{Lat: -1.2064, Lng: 36.9138},
		},
	}
}

func supplyChainAnalytics() domain.SupplyChainAnalytics {
	return domain.SupplyChainAnalytics{
		TotalDeliveries:     200,
		TotalMeals:          1250,
		AverageDeliveryTime: 60,
		OnTimePercentage:    90,
		FuelEfficiency:      8.5,
		CostSavings:         5000,
		CO2Reduced:          500,
	}
}

func vehicleFleet() []domain.Vehicle {
	return []domain.Vehicle{
		{
			ID:        "V001",
			Name:      "Truck #001",
			Driver:    "John Onyango",
			Status:    "active",
			Location:  domain.GeoPoint{Lat: -1.218, Lng: 36.886},
			Speed:     50,
			FuelLevel: 75,
			NextStop:  "Hunters",
			ETA:       "10:00",
		},
		{
			ID:        "V002",
			Name:      "Truck #002",
			Driver:    "Papa Okenye",
			Status:    "loading",
			Location:  domain.GeoPoint{Lat: -1.2064, Lng: 36.9138},
			Speed:     0,
			FuelLevel: 90,
			NextStop:  "Bypass",
			ETA:       "11:00",
		},
	}
}

func analysisHistory(now time.Time) []domain.AnalysisHistoryEntry {
	return []domain.AnalysisHistoryEntry{
		{
			ID:         "ANALYSIS-001",
			CropType:   "Tomato",
			Disease:    "Late Blight",
			Confidence: 92.5,
			Severity:   "high",
			AnalyzedAt: now.Add(-2 * 24 * time.Hour),
			Location:   "Farm A",
		},
		{
			ID:         "ANALYSIS-002",
			CropType:   "Wheat",
			Disease:    "Wheat Rust",
			Confidence: 88.3,
			Severity:   "medium",
			AnalyzedAt: now.Add(-5 * 24 * time.Hour),
			Location:   "Field B",
		},
	}
}

// alerts carry timestamps relative to the request time, so they are built
// per call rather than stored on the dataset.
func buildAlerts(now time.Time) []domain.Alert {
	return []domain.Alert{
		{
			ID:        "ALT-001",
			Type:      "delay",
			Severity:  "medium",
			Message:   "Truck #001 experiencing 15-minute delay due to traffic",
			Timestamp: now.Add(-5 * time.Minute),
			Vehicle:   "Truck #001",
			Location:  "Powerstar",
		},
		{
			ID:        "ALT-002",
			Type:      "delivery",
			Severity:  "low",
			Message:   "Delivery completed at Githurai - 200 meals delivered",
			Timestamp: now.Add(-10 * time.Minute),
			Vehicle:   "Truck #002",
			Location:  "Githurai",
		},
	}
}

func buildOptimizedRoute() domain.OptimizedRoute {
	return domain.OptimizedRoute{
		OriginalDistance:  45.2,
		OptimizedDistance: 38.7,
		Savings: domain.RouteSavings{
			Distance: 6.5,
			Time:     12,
			Fuel:     2.1,
			Cost:     8.40,
		},
		Route: []domain.RouteStop{
			{Stop: "Seasons", Order: 1, ArrivalTime: "09:30"},
			{Stop: "Hunters", Order: 2, ArrivalTime: "10:00"},
			{Stop: "Sunton", Order: 3, ArrivalTime: "10:15"},
			{Stop: "Bypass", Order: 4, ArrivalTime: "11:00"},
		},
	}
}
