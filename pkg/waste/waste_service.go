package waste

import (
	"context"
	"errors"
	"time"

	"usana-backend/domain"
	"usana-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	WasteService interface {
		CreateWasteRecord(ctx context.Context, req domain.CreateWasteRecordRequest, userID string) (domain.WasteRecordResponse, error)
		GetWasteRecordByID(ctx context.Context, id string, userID string) (domain.WasteRecordResponse, error)
		GetWasteRecords(ctx context.Context, userID string, startDate, endDate, foodType string, page, limit int) ([]domain.WasteRecordResponse, domain.WasteSummary, int64, error)
		UpdateWasteRecord(ctx context.Context, id string, req domain.UpdateWasteRecordRequest, userID string) (domain.WasteRecordResponse, error)
		DeleteWasteRecord(ctx context.Context, id string, userID string) error
		GetWasteAnalytics(ctx context.Context, userID string, period string) (domain.WasteAnalyticsResponse, error)
	}

	wasteService struct {
		wasteRepository WasteRepository
	}
)

func NewWasteService(wasteRepository WasteRepository) WasteService {
	return &wasteService{wasteRepository: wasteRepository}
}

func parseWasteDate(value string) (time.Time, error) {
	if date, err := time.Parse("2006-01-02", value); err == nil {
		return date, nil
	}
	return time.Parse(time.RFC3339, value)
}

func (s *wasteService) CreateWasteRecord(ctx context.Context, req domain.CreateWasteRecordRequest, userID string) (domain.WasteRecordResponse, error) {
	date, err := parseWasteDate(req.Date)
	if err != nil {
		return domain.WasteRecordResponse{}, domain.ErrInvalidWasteDate
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.WasteRecordResponse{}, domain.ErrParseUUID
	}

	record := &entities.WasteRecord{
		ID:       uuid.New(),
		UserID:   userUUID,
		Date:     date,
		FoodType: req.FoodType,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Reason:   req.Reason,
		Cost:     req.Cost,
		Location: req.Location,
		Notes:    req.Notes,
	}

	if err := s.wasteRepository.CreateWasteRecord(ctx, record); err != nil {
		return domain.WasteRecordResponse{}, err
	}

	return toWasteRecordResponse(record), nil
}

func (s *wasteService) GetWasteRecordByID(ctx context.Context, id string, userID string) (domain.WasteRecordResponse, error) {
	record, err := s.wasteRepository.GetWasteRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.WasteRecordResponse{}, domain.ErrWasteRecordNotFound
		}
		return domain.WasteRecordResponse{}, err
	}

	if record.UserID.String() != userID {
		return domain.WasteRecordResponse{}, domain.ErrUnauthorizedWasteAccess
	}

	return toWasteRecordResponse(record), nil
}

func (s *wasteService) GetWasteRecords(ctx context.Context, userID string, startDate, endDate, foodType string, page, limit int) ([]domain.WasteRecordResponse, domain.WasteSummary, int64, error) {
	var filter domain.WasteListFilter

	if startDate != "" && endDate != "" {
		start, err := parseWasteDate(startDate)
		if err != nil {
			return nil, domain.WasteSummary{}, 0, domain.ErrInvalidDateRange
		}
		end, err := parseWasteDate(endDate)
		if err != nil {
			return nil, domain.WasteSummary{}, 0, domain.ErrInvalidDateRange
		}
		filter.StartDate = start
		filter.EndDate = end
	}
	filter.FoodType = foodType

	records, count, err := s.wasteRepository.GetWasteRecords(ctx, userID, filter, page, limit)
	if err != nil {
		return nil, domain.WasteSummary{}, 0, err
	}

	summary, err := s.wasteRepository.GetWasteSummary(ctx, userID, filter)
	if err != nil {
		return nil, domain.WasteSummary{}, 0, err
	}

	response := make([]domain.WasteRecordResponse, 0, len(records))
	for _, record := range records {
		response = append(response, toWasteRecordResponse(record))
	}

	return response, summary, count, nil
}

func (s *wasteService) UpdateWasteRecord(ctx context.Context, id string, req domain.UpdateWasteRecordRequest, userID string) (domain.WasteRecordResponse, error) {
	record, err := s.wasteRepository.GetWasteRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.WasteRecordResponse{}, domain.ErrWasteRecordNotFound
		}
		return domain.WasteRecordResponse{}, err
	}

	if record.UserID.String() != userID {
		return domain.WasteRecordResponse{}, domain.ErrUnauthorizedWasteAccess
	}

	if req.Date != "" {
		date, err := parseWasteDate(req.Date)
		if err != nil {
			return domain.WasteRecordResponse{}, domain.ErrInvalidWasteDate
		}
		record.Date = date
	}
	if req.FoodType != "" {
		record.FoodType = req.FoodType
	}
	if req.Quantity != nil {
		record.Quantity = *req.Quantity
	}
	if req.Unit != "" {
		record.Unit = req.Unit
	}
	if req.Reason != "" {
		record.Reason = req.Reason
	}
	if req.Cost != nil {
		record.Cost = *req.Cost
	}
	if req.Location != "" {
		record.Location = req.Location
	}
	if req.Notes != "" {
		record.Notes = req.Notes
	}

	if err := s.wasteRepository.UpdateWasteRecord(ctx, record); err != nil {
		return domain.WasteRecordResponse{}, err
	}

	return toWasteRecordResponse(record), nil
}

func (s *wasteService) DeleteWasteRecord(ctx context.Context, id string, userID string) error {
	record, err := s.wasteRepository.GetWasteRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrWasteRecordNotFound
		}
		return err
	}

	if record.UserID.String() != userID {
		return domain.ErrUnauthorizedWasteAccess
	}

	return s.wasteRepository.DeleteWasteRecord(ctx, id)
}

// GetWasteAnalytics builds the two-level waste report for one reporting
// period: records are bucketed by (foodType, reason) in a single grouped
// query, then the buckets are folded into one group per food type carrying
// a reason breakdown and food-type totals. An empty window yields an empty
// group list, not an error.
func (s *wasteService) GetWasteAnalytics(ctx context.Context, userID string, period string) (domain.WasteAnalyticsResponse, error) {
	if period == "" {
		period = PeriodMonth
	}
	startDate := ResolvePeriodStart(period, time.Now())

	rows, err := s.wasteRepository.GetWasteBreakdown(ctx, userID, startDate)
	if err != nil {
		return domain.WasteAnalyticsResponse{}, err
	}

	return domain.WasteAnalyticsResponse{
		Period:    period,
		StartDate: startDate,
		Groups:    groupBreakdown(rows),
	}, nil
}

// groupBreakdown folds flat (foodType, reason) buckets into per-food-type
// groups. Group order follows first appearance in rows; no sorting is
// applied.
func groupBreakdown(rows []BreakdownRow) []*domain.FoodTypeWasteGroup {
	groups := make([]*domain.FoodTypeWasteGroup, 0)
	index := make(map[string]*domain.FoodTypeWasteGroup)

	for _, row := range rows {
		group, ok := index[row.FoodType]
		if !ok {
			group = &domain.FoodTypeWasteGroup{FoodType: row.FoodType}
			index[row.FoodType] = group
			groups = append(groups, group)
		}

		group.Reasons = append(group.Reasons, &domain.ReasonBreakdown{
			Reason:   row.Reason,
			Quantity: row.TotalQuantity,
			Cost:     row.TotalCost,
			Count:    row.Count,
		})
		group.TotalQuantity += row.TotalQuantity
		group.TotalCost += row.TotalCost
		group.TotalEntries += row.Count
	}

	return groups
}

func toWasteRecordResponse(record *entities.WasteRecord) domain.WasteRecordResponse {
	return domain.WasteRecordResponse{
		ID:        record.ID.String(),
		Date:      record.Date,
		FoodType:  record.FoodType,
		Quantity:  record.Quantity,
		Unit:      record.Unit,
		Reason:    record.Reason,
		Cost:      record.Cost,
		Location:  record.Location,
		Notes:     record.Notes,
		CreatedAt: record.CreatedAt,
	}
}
