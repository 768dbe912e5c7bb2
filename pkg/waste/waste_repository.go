package waste

import (
	"context"
	"time"

	"usana-backend/domain"
	"usana-backend/entities"

	"gorm.io/gorm"
)

// BreakdownRow is one (foodType, reason) bucket of the grouped waste query.
type BreakdownRow struct {
	FoodType      string
	Reason        string
	TotalQuantity float64
	TotalCost     float64
	Count         int64
}

type (
	WasteRepository interface {
		CreateWasteRecord(ctx context.Context, record *entities.WasteRecord) error
		GetWasteRecordByID(ctx context.Context, id string) (*entities.WasteRecord, error)
		UpdateWasteRecord(ctx context.Context, record *entities.WasteRecord) error
		DeleteWasteRecord(ctx context.Context, id string) error
		GetWasteRecords(ctx context.Context, userID string, filter domain.WasteListFilter, page, limit int) ([]*entities.WasteRecord, int64, error)
		GetWasteSummary(ctx context.Context, userID string, filter domain.WasteListFilter) (domain.WasteSummary, error)
		GetWasteBreakdown(ctx context.Context, userID string, since time.Time) ([]BreakdownRow, error)
	}

	wasteRepository struct {
		db *gorm.DB
	}
)

func NewWasteRepository(db *gorm.DB) WasteRepository {
	return &wasteRepository{db: db}
}

func (r *wasteRepository) CreateWasteRecord(ctx context.Context, record *entities.WasteRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *wasteRepository) GetWasteRecordByID(ctx context.Context, id string) (*entities.WasteRecord, error) {
	var record entities.WasteRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *wasteRepository) UpdateWasteRecord(ctx context.Context, record *entities.WasteRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *wasteRepository) DeleteWasteRecord(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.WasteRecord{}).Error
}

func (r *wasteRepository) filteredQuery(ctx context.Context, userID string, filter domain.WasteListFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entities.WasteRecord{}).Where("user_id = ?", userID)

	if !filter.StartDate.IsZero() && !filter.EndDate.IsZero() {
		query = query.Where("date BETWEEN ? AND ?", filter.StartDate, filter.EndDate)
	}
	if filter.FoodType != "" {
		query = query.Where("food_type = ?", filter.FoodType)
	}
	return query
}

func (r *wasteRepository) GetWasteRecords(ctx context.Context, userID string, filter domain.WasteListFilter, page, limit int) ([]*entities.WasteRecord, int64, error) {
	var records []*entities.WasteRecord
	var count int64

	offset := (page - 1) * limit

	query := r.filteredQuery(ctx, userID, filter)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("date desc").Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, count, nil
}

func (r *wasteRepository) GetWasteSummary(ctx context.Context, userID string, filter domain.WasteListFilter) (domain.WasteSummary, error) {
	var summary domain.WasteSummary

	err := r.filteredQuery(ctx, userID, filter).
		Select("COALESCE(SUM(quantity), 0) AS total_quantity, COALESCE(SUM(cost), 0) AS total_cost, COUNT(*) AS count").
		Scan(&summary).Error
	if err != nil {
		return domain.WasteSummary{}, err
	}

	return summary, nil
}

func (r *wasteRepository) GetWasteBreakdown(ctx context.Context, userID string, since time.Time) ([]BreakdownRow, error) {
	var rows []BreakdownRow

	err := r.db.WithContext(ctx).Model(&entities.WasteRecord{}).
		Select("food_type, reason, SUM(quantity) AS total_quantity, SUM(cost) AS total_cost, COUNT(*) AS count").
		Where("user_id = ? AND date >= ?", userID, since).
		Group("food_type, reason").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
