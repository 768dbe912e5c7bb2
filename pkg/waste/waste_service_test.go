package waste

import (
	"context"
	"errors"
	"testing"
	"time"

	"usana-backend/domain"
	"usana-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubWasteRepository struct {
	records       map[string]*entities.WasteRecord
	breakdownRows []BreakdownRow
	breakdownErr  error
	lastSince     time.Time
}

func newStubWasteRepository() *stubWasteRepository {
	return &stubWasteRepository{records: make(map[string]*entities.WasteRecord)}
}

func (s *stubWasteRepository) CreateWasteRecord(ctx context.Context, record *entities.WasteRecord) error {
	s.records[record.ID.String()] = record
	return nil
}

func (s *stubWasteRepository) GetWasteRecordByID(ctx context.Context, id string) (*entities.WasteRecord, error) {
	record, ok := s.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return record, nil
}

func (s *stubWasteRepository) UpdateWasteRecord(ctx context.Context, record *entities.WasteRecord) error {
	s.records[record.ID.String()] = record
	return nil
}

func (s *stubWasteRepository) DeleteWasteRecord(ctx context.Context, id string) error {
	delete(s.records, id)
	return nil
}

func (s *stubWasteRepository) GetWasteRecords(ctx context.Context, userID string, filter domain.WasteListFilter, page, limit int) ([]*entities.WasteRecord, int64, error) {
	var records []*entities.WasteRecord
	for _, record := range s.records {
		if record.UserID.String() == userID {
			records = append(records, record)
		}
	}
	return records, int64(len(records)), nil
}

func (s *stubWasteRepository) GetWasteSummary(ctx context.Context, userID string, filter domain.WasteListFilter) (domain.WasteSummary, error) {
	var summary domain.WasteSummary
	for _, record := range s.records {
		if record.UserID.String() == userID {
			summary.TotalQuantity += record.Quantity
			summary.TotalCost += record.Cost
			summary.Count++
		}
	}
	return summary, nil
}

func (s *stubWasteRepository) GetWasteBreakdown(ctx context.Context, userID string, since time.Time) ([]BreakdownRow, error) {
	s.lastSince = since
	if s.breakdownErr != nil {
		return nil, s.breakdownErr
	}
	return s.breakdownRows, nil
}

func TestCreateWasteRecord(t *testing.T) {
	repo := newStubWasteRepository()
	service := NewWasteService(repo)
	userID := uuid.New().String()

	res, err := service.CreateWasteRecord(context.Background(), domain.CreateWasteRecordRequest{
		Date:     "2025-06-10",
		FoodType: "Dairy",
		Quantity: 2,
		Unit:     "kg",
		Reason:   "Expired",
		Cost:     100,
		Location: "Kitchen",
	}, userID)

	require.NoError(t, err)
	assert.Equal(t, "Dairy", res.FoodType)
	assert.Equal(t, float64(2), res.Quantity)
	assert.Len(t, repo.records, 1)
}

func TestCreateWasteRecordRejectsBadDate(t *testing.T) {
	service := NewWasteService(newStubWasteRepository())

	_, err := service.CreateWasteRecord(context.Background(), domain.CreateWasteRecordRequest{
		Date:     "10/06/2025",
		FoodType: "Dairy",
		Unit:     "kg",
		Reason:   "Expired",
		Location: "Kitchen",
	}, uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrInvalidWasteDate)
}

func TestWasteRecordOwnership(t *testing.T) {
	repo := newStubWasteRepository()
	service := NewWasteService(repo)

	owner := uuid.New()
	record := &entities.WasteRecord{ID: uuid.New(), UserID: owner, FoodType: "Meat"}
	repo.records[record.ID.String()] = record

	t.Run("stranger gets forbidden, not missing", func(t *testing.T) {
		_, err := service.GetWasteRecordByID(context.Background(), record.ID.String(), uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrUnauthorizedWasteAccess)
	})

	t.Run("unknown id is missing", func(t *testing.T) {
		_, err := service.GetWasteRecordByID(context.Background(), uuid.New().String(), owner.String())
		assert.ErrorIs(t, err, domain.ErrWasteRecordNotFound)
	})

	t.Run("owner reads it back", func(t *testing.T) {
		res, err := service.GetWasteRecordByID(context.Background(), record.ID.String(), owner.String())
		require.NoError(t, err)
		assert.Equal(t, "Meat", res.FoodType)
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		err := service.DeleteWasteRecord(context.Background(), record.ID.String(), uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrUnauthorizedWasteAccess)
		assert.Len(t, repo.records, 1)
	})
}

func TestGetWasteAnalyticsGroupsByFoodType(t *testing.T) {
	repo := newStubWasteRepository()
	repo.breakdownRows = []BreakdownRow{
		{FoodType: "Dairy", Reason: "Expired", TotalQuantity: 2, TotalCost: 100, Count: 1},
		{FoodType: "Dairy", Reason: "Spoiled", TotalQuantity: 1, TotalCost: 50, Count: 1},
		{FoodType: "Meat", Reason: "Leftovers", TotalQuantity: 3, TotalCost: 200, Count: 2},
	}
	service := NewWasteService(repo)

	res, err := service.GetWasteAnalytics(context.Background(), uuid.New().String(), "week")
	require.NoError(t, err)

	assert.Equal(t, "week", res.Period)
	require.Len(t, res.Groups, 2)

	dairy := res.Groups[0]
	assert.Equal(t, "Dairy", dairy.FoodType)
	assert.Equal(t, float64(3), dairy.TotalQuantity)
	assert.Equal(t, float64(150), dairy.TotalCost)
	assert.Equal(t, int64(2), dairy.TotalEntries)
	require.Len(t, dairy.Reasons, 2)
	assert.Equal(t, "Expired", dairy.Reasons[0].Reason)
	assert.Equal(t, "Spoiled", dairy.Reasons[1].Reason)

	meat := res.Groups[1]
	assert.Equal(t, "Meat", meat.FoodType)
	assert.Equal(t, int64(2), meat.TotalEntries)
}

func TestGetWasteAnalyticsEmptyWindow(t *testing.T) {
	repo := newStubWasteRepository()
	service := NewWasteService(repo)

	res, err := service.GetWasteAnalytics(context.Background(), uuid.New().String(), "year")
	require.NoError(t, err)
	assert.Equal(t, "year", res.Period)
	assert.Empty(t, res.Groups)
	assert.NotNil(t, res.Groups)
}

func TestGetWasteAnalyticsDefaultsToMonth(t *testing.T) {
	repo := newStubWasteRepository()
	service := NewWasteService(repo)

	res, err := service.GetWasteAnalytics(context.Background(), uuid.New().String(), "")
	require.NoError(t, err)
	assert.Equal(t, PeriodMonth, res.Period)
	// the month window starts on the first of the current month
	assert.Equal(t, 1, repo.lastSince.Day())
	assert.Equal(t, 0, repo.lastSince.Hour())
}

func TestGetWasteAnalyticsPropagatesRepositoryError(t *testing.T) {
	repo := newStubWasteRepository()
	repo.breakdownErr = errors.New("connection refused")
	service := NewWasteService(repo)

	res, err := service.GetWasteAnalytics(context.Background(), uuid.New().String(), "month")
	assert.Error(t, err)
	assert.Empty(t, res.Groups)
	assert.Empty(t, res.Period)
}
