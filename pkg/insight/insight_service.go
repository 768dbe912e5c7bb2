package insight

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"usana-backend/domain"
)

type (
	InsightService interface {
		AnalyzeDisease(ctx context.Context, req domain.AnalyzeDiseaseRequest) (*domain.DiseaseAnalysisResponse, error)
		GetDiseases(ctx context.Context) []domain.DiseaseSummary
		GetDiseaseInfo(ctx context.Context, diseaseID string) (*domain.DiseaseProfile, error)
		GetTreatments(ctx context.Context, diseaseID, treatmentType string) (*domain.DiseaseTreatmentsResponse, error)
		GetAnalysisHistory(ctx context.Context) []domain.AnalysisHistoryEntry

		GetDeliveries(ctx context.Context, status, driver, route string) []domain.Delivery
		GetDeliveryByID(ctx context.Context, id string) (*domain.Delivery, error)
		UpdateDeliveryStatus(ctx context.Context, id string, req domain.UpdateDeliveryStatusRequest) (*domain.Delivery, error)
		GetAnalytics(ctx context.Context, period string) (string, domain.SupplyChainAnalytics)
		OptimizeRoutes(ctx context.Context, req domain.OptimizeRoutesRequest) domain.OptimizedRoute
		GetVehicles(ctx context.Context) []domain.Vehicle
		GetAlerts(ctx context.Context) []domain.Alert
	}

	insightService struct {
		data          *Dataset
		analysisDelay time.Duration
	}
)

func NewInsightService(data *Dataset, analysisDelay time.Duration) InsightService {
	return &insightService{
		data:          data,
		analysisDelay: analysisDelay,
	}
}

// AnalyzeDisease simulates a slow analysis pipeline: it waits out the
// configured delay (honoring cancellation) and picks a profile from the
// disease library.
func (s *insightService) AnalyzeDisease(ctx context.Context, req domain.AnalyzeDiseaseRequest) (*domain.DiseaseAnalysisResponse, error) {
	if s.analysisDelay > 0 {
		select {
		case <-time.After(s.analysisDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	diseaseID := s.data.diseaseIDs[rand.Intn(len(s.data.diseaseIDs))]
	result := s.data.diseases[diseaseID]

	return &domain.DiseaseAnalysisResponse{
		AnalysisID: fmt.Sprintf("ANALYSIS-%d", time.Now().UnixMilli()),
		Result:     result,
		CropType:   req.CropType,
		Location:   req.Location,
		AnalyzedAt: time.Now(),
	}, nil
}

func (s *insightService) GetDiseases(ctx context.Context) []domain.DiseaseSummary {
	summaries := make([]domain.DiseaseSummary, 0, len(s.data.diseaseIDs))
	for _, id := range s.data.diseaseIDs {
		profile := s.data.diseases[id]
		summaries = append(summaries, domain.DiseaseSummary{
			ID:          id,
			Name:        profile.Disease,
			Severity:    profile.Severity,
			Description: profile.Description,
		})
	}
	return summaries
}

func (s *insightService) GetDiseaseInfo(ctx context.Context, diseaseID string) (*domain.DiseaseProfile, error) {
	profile, ok := s.data.diseases[diseaseID]
	if !ok {
		return nil, domain.ErrDiseaseNotFound
	}
	return &profile, nil
}

func (s *insightService) GetTreatments(ctx context.Context, diseaseID, treatmentType string) (*domain.DiseaseTreatmentsResponse, error) {
	profile, ok := s.data.diseases[diseaseID]
	if !ok {
		return nil, domain.ErrDiseaseNotFound
	}

	treatments := profile.Treatments
	switch treatmentType {
	case "organic":
		treatments = domain.DiseaseTreatments{Organic: profile.Treatments.Organic}
	case "chemical":
		treatments = domain.DiseaseTreatments{Chemical: profile.Treatments.Chemical}
	case "preventive":
		treatments = domain.DiseaseTreatments{Preventive: profile.Treatments.Preventive}
	}

	return &domain.DiseaseTreatmentsResponse{
		Disease:    profile.Disease,
		Treatments: treatments,
	}, nil
}

func (s *insightService) GetAnalysisHistory(ctx context.Context) []domain.AnalysisHistoryEntry {
	history := make([]domain.AnalysisHistoryEntry, len(s.data.history))
	copy(history, s.data.history)
	return history
}

func (s *insightService) GetDeliveries(ctx context.Context, status, driver, route string) []domain.Delivery {
	deliveries := make([]domain.Delivery, 0, len(s.data.deliveries))
	for _, d := range s.data.deliveries {
		if status != "" && d.Status != status {
			continue
		}
		if driver != "" && !strings.Contains(strings.ToLower(d.Driver), strings.ToLower(driver)) {
			continue
		}
		if route != "" && !strings.Contains(strings.ToLower(d.Route), strings.ToLower(route)) {
			continue
		}
		deliveries = append(deliveries, d)
	}
	return deliveries
}

func (s *insightService) GetDeliveryByID(ctx context.Context, id string) (*domain.Delivery, error) {
	for _, d := range s.data.deliveries {
		if d.ID == id {
			delivery := d
			return &delivery, nil
		}
	}
	return nil, domain.ErrDeliveryNotFound
}

// UpdateDeliveryStatus returns the delivery as it would look after the
// update. The dataset itself is never mutated, so concurrent readers
// always see consistent reference data.
func (s *insightService) UpdateDeliveryStatus(ctx context.Context, id string, req domain.UpdateDeliveryStatusRequest) (*domain.Delivery, error) {
	delivery, err := s.GetDeliveryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *delivery
	updated.Stops = make([]domain.DeliveryStop, len(delivery.Stops))
	copy(updated.Stops, delivery.Stops)

	updated.Status = req.Status
	if req.Location != nil {
		updated.CurrentLocation = *req.Location
	}

	return &updated, nil
}

func (s *insightService) GetAnalytics(ctx context.Context, period string) (string, domain.SupplyChainAnalytics) {
	if period == "" {
		period = "month"
	}
	return period, s.data.analytics
}

func (s *insightService) OptimizeRoutes(ctx context.Context, req domain.OptimizeRoutesRequest) domain.OptimizedRoute {
	return buildOptimizedRoute()
}

func (s *insightService) GetVehicles(ctx context.Context) []domain.Vehicle {
	vehicles := make([]domain.Vehicle, len(s.data.vehicles))
	copy(vehicles, s.data.vehicles)
	return vehicles
}

func (s *insightService) GetAlerts(ctx context.Context) []domain.Alert {
	return buildAlerts(time.Now())
}
