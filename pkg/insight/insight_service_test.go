package insight

import (
	"context"
	"testing"
	"time"

	"usana-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInsightService() InsightService {
	return NewInsightService(NewDataset(), 0)
}

func TestAnalyzeDiseaseReturnsKnownProfile(t *testing.T) {
	service := newTestInsightService()

	res, err := service.AnalyzeDisease(context.Background(), domain.AnalyzeDiseaseRequest{
		CropType: "Tomato",
		Location: "Farm A",
	})

	require.NoError(t, err)
	assert.Contains(t, res.AnalysisID, "ANALYSIS-")
	assert.Equal(t, "Tomato", res.CropType)
	assert.Contains(t, []string{"Late Blight", "Wheat Rust"}, res.Result.Disease)
	assert.NotEmpty(t, res.Result.Symptoms)
	assert.NotEmpty(t, res.Result.Treatments.Organic)
	assert.WithinDuration(t, time.Now(), res.AnalyzedAt, time.Minute)
}

func TestAnalyzeDiseaseHonorsCancellation(t *testing.T) {
	service := NewInsightService(NewDataset(), time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.AnalyzeDisease(ctx, domain.AnalyzeDiseaseRequest{CropType: "Wheat"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGetDiseases(t *testing.T) {
	service := newTestInsightService()

	diseases := service.GetDiseases(context.Background())
	require.Len(t, diseases, 2)
	assert.Equal(t, "blight", diseases[0].ID)
	assert.Equal(t, "Late Blight", diseases[0].Name)
	assert.Equal(t, "rust", diseases[1].ID)
}

func TestGetDiseaseInfo(t *testing.T) {
	service := newTestInsightService()

	profile, err := service.GetDiseaseInfo(context.Background(), "rust")
	require.NoError(t, err)
	assert.Equal(t, "Wheat Rust", profile.Disease)

	_, err = service.GetDiseaseInfo(context.Background(), "mildew")
	assert.ErrorIs(t, err, domain.ErrDiseaseNotFound)
}

func TestGetTreatmentsFiltersByType(t *testing.T) {
	service := newTestInsightService()

	res, err := service.GetTreatments(context.Background(), "blight", "organic")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Treatments.Organic)
	assert.Empty(t, res.Treatments.Chemical)
	assert.Empty(t, res.Treatments.Preventive)

	res, err = service.GetTreatments(context.Background(), "blight", "")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Treatments.Chemical)

	// unknown type falls back to the full treatment set
	res, err = service.GetTreatments(context.Background(), "blight", "homeopathic")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Treatments.Preventive)
}

func TestGetDeliveriesFilters(t *testing.T) {
	service := newTestInsightService()

	all := service.GetDeliveries(context.Background(), "", "", "")
	assert.Len(t, all, 2)

	inTransit := service.GetDeliveries(context.Background(), "in-transit", "", "")
	require.Len(t, inTransit, 1)
	assert.Equal(t, "DEL-001", inTransit[0].ID)

	byDriver := service.GetDeliveries(context.Background(), "", "onyango", "")
	require.Len(t, byDriver, 1)
	assert.Equal(t, "John Onyango", byDriver[0].Driver)

	byRoute := service.GetDeliveries(context.Background(), "", "", "THIKA")
	require.Len(t, byRoute, 1)
	assert.Equal(t, "DEL-002", byRoute[0].ID)

	none := service.GetDeliveries(context.Background(), "delivered", "", "")
	assert.Empty(t, none)
}

func TestUpdateDeliveryStatusDoesNotMutateDataset(t *testing.T) {
	data := NewDataset()
	service := NewInsightService(data, 0)

	updated, err := service.UpdateDeliveryStatus(context.Background(), "DEL-001", domain.UpdateDeliveryStatusRequest{
		Status:   "delivered",
		Location: &domain.GeoPoint{Lat: -1.3, Lng: 36.9},
	})
	require.NoError(t, err)
	assert.Equal(t, "delivered", updated.Status)
	assert.Equal(t, -1.3, updated.CurrentLocation.Lat)

	// the reference data still shows the original state
	original, err := service.GetDeliveryByID(context.Background(), "DEL-001")
	require.NoError(t, err)
	assert.Equal(t, "in-transit", original.Status)
	assert.Equal(t, -1.218, original.CurrentLocation.Lat)
}

func TestUpdateDeliveryStatusUnknownDelivery(t *testing.T) {
	service := newTestInsightService()

	_, err := service.UpdateDeliveryStatus(context.Background(), "DEL-999", domain.UpdateDeliveryStatusRequest{Status: "delivered"})
	assert.ErrorIs(t, err, domain.ErrDeliveryNotFound)
}

func TestGetAnalyticsEchoesPeriod(t *testing.T) {
	service := newTestInsightService()

	period, analytics := service.GetAnalytics(context.Background(), "week")
	assert.Equal(t, "week", period)
	assert.Equal(t, 200, analytics.TotalDeliveries)

	period, _ = service.GetAnalytics(context.Background(), "")
	assert.Equal(t, "month", period)
}

func TestOptimizeRoutes(t *testing.T) {
	service := newTestInsightService()

	res := service.OptimizeRoutes(context.Background(), domain.OptimizeRoutesRequest{})
	assert.Greater(t, res.OriginalDistance, res.OptimizedDistance)
	require.Len(t, res.Route, 4)
	assert.Equal(t, 1, res.Route[0].Order)
}

func TestGetAlertsTimestampsAreRecent(t *testing.T) {
	service := newTestInsightService()

	alerts := service.GetAlerts(context.Background())
	require.Len(t, alerts, 2)
	for _, alert := range alerts {
		assert.WithinDuration(t, time.Now(), alert.Timestamp, 15*time.Minute)
	}
}
