package farmer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"usana-backend/domain"
	"usana-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FarmerService interface {
		CreateFarmer(ctx context.Context, req domain.CreateFarmerRequest, userID string) (*domain.FarmerResponse, error)
		GetFarmers(ctx context.Context, page, limit int) ([]*domain.FarmerResponse, int64, error)
		GetFarmerByID(ctx context.Context, id string) (*domain.FarmerResponse, error)
		GetMyFarmerProfile(ctx context.Context, userID string) (*domain.FarmerResponse, error)
		UpdateFarmer(ctx context.Context, id string, req domain.UpdateFarmerRequest, userID, role string) (*domain.FarmerResponse, error)
		DeleteFarmer(ctx context.Context, id string, userID, role string) error
		AddYield(ctx context.Context, farmerID string, req domain.AddYieldRequest, userID, role string) (*domain.FarmerResponse, error)
	}

	farmerService struct {
		farmerRepository FarmerRepository
	}
)

func NewFarmerService(farmerRepository FarmerRepository) FarmerService {
	return &farmerService{farmerRepository: farmerRepository}
}

// One farmer profile per user. The farmer code is generated server side
// and never taken from the request.
func (s *farmerService) CreateFarmer(ctx context.Context, req domain.CreateFarmerRequest, userID string) (*domain.FarmerResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if _, err := s.farmerRepository.GetFarmerByUserID(ctx, userID); err == nil {
		return nil, domain.ErrFarmerProfileExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	farmer := &entities.Farmer{
		ID:                uuid.New(),
		UserID:            userUUID,
		FarmerCode:        fmt.Sprintf("FARM-%d", time.Now().UnixMilli()),
		FarmName:          req.FarmName,
		FarmSize:          req.FarmSize,
		Location:          req.Location,
		PrimaryCrops:      strings.Join(req.PrimaryCrops, ","),
		FarmingExperience: req.FarmingExperience,
		FarmingType:       req.FarmingType,
		Certifications:    strings.Join(req.Certifications, ","),
		ContactNumber:     req.ContactNumber,
		FarmAddress:       req.FarmAddress,
	}

	if err := s.farmerRepository.CreateFarmer(ctx, farmer); err != nil {
		return nil, err
	}

	return toFarmerResponse(farmer), nil
}

func (s *farmerService) GetFarmers(ctx context.Context, page, limit int) ([]*domain.FarmerResponse, int64, error) {
	farmers, count, err := s.farmerRepository.GetFarmers(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]*domain.FarmerResponse, 0, len(farmers))
	for _, f := range farmers {
		response = append(response, toFarmerResponse(f))
	}
	return response, count, nil
}

func (s *farmerService) GetFarmerByID(ctx context.Context, id string) (*domain.FarmerResponse, error) {
	farmer, err := s.farmerRepository.GetFarmerByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFarmerNotFound
		}
		return nil, err
	}
	return toFarmerResponse(farmer), nil
}

func (s *farmerService) GetMyFarmerProfile(ctx context.Context, userID string) (*domain.FarmerResponse, error) {
	farmer, err := s.farmerRepository.GetFarmerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFarmerNotFound
		}
		return nil, err
	}
	return toFarmerResponse(farmer), nil
}

func (s *farmerService) UpdateFarmer(ctx context.Context, id string, req domain.UpdateFarmerRequest, userID, role string) (*domain.FarmerResponse, error) {
	farmer, err := s.farmerRepository.GetFarmerByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFarmerNotFound
		}
		return nil, err
	}

	if farmer.UserID.String() != userID && role != domain.RoleAdmin {
		return nil, domain.ErrUnauthorizedFarmerAccess
	}

	if req.FarmName != "" {
		farmer.FarmName = req.FarmName
	}
	if req.FarmSize != nil {
		farmer.FarmSize = *req.FarmSize
	}
	if req.Location != "" {
		farmer.Location = req.Location
	}
	if len(req.PrimaryCrops) > 0 {
		farmer.PrimaryCrops = strings.Join(req.PrimaryCrops, ",")
	}
	if req.FarmingExperience != "" {
		farmer.FarmingExperience = req.FarmingExperience
	}
	if req.FarmingType != "" {
		farmer.FarmingType = req.FarmingType
	}
	if len(req.Certifications) > 0 {
		farmer.Certifications = strings.Join(req.Certifications, ",")
	}
	if req.ContactNumber != "" {
		farmer.ContactNumber = req.ContactNumber
	}
	if req.FarmAddress != "" {
		farmer.FarmAddress = req.FarmAddress
	}

	if err := s.farmerRepository.UpdateFarmer(ctx, farmer); err != nil {
		return nil, err
	}

	return toFarmerResponse(farmer), nil
}

func (s *farmerService) DeleteFarmer(ctx context.Context, id string, userID, role string) error {
	farmer, err := s.farmerRepository.GetFarmerByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFarmerNotFound
		}
		return err
	}

	if farmer.UserID.String() != userID && role != domain.RoleAdmin {
		return domain.ErrUnauthorizedFarmerAccess
	}

	return s.farmerRepository.DeleteFarmer(ctx, id)
}

func (s *farmerService) AddYield(ctx context.Context, farmerID string, req domain.AddYieldRequest, userID, role string) (*domain.FarmerResponse, error) {
	farmer, err := s.farmerRepository.GetFarmerByID(ctx, farmerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFarmerNotFound
		}
		return nil, err
	}

	if farmer.UserID.String() != userID && role != domain.RoleAdmin {
		return nil, domain.ErrUnauthorizedFarmerAccess
	}

	record := &entities.YieldRecord{
		ID:       uuid.New(),
		FarmerID: farmer.ID,
		Crop:     req.Crop,
		Year:     req.Year,
		Yield:    req.Yield,
		Area:     req.Area,
		Quality:  req.Quality,
		Revenue:  req.Revenue,
	}

	if err := s.farmerRepository.AddYieldRecord(ctx, record); err != nil {
		return nil, err
	}

	updated, err := s.farmerRepository.GetFarmerByID(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	return toFarmerResponse(updated), nil
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}

func toFarmerResponse(f *entities.Farmer) *domain.FarmerResponse {
	response := &domain.FarmerResponse{
		ID:                f.ID.String(),
		UserID:            f.UserID.String(),
		FarmerCode:        f.FarmerCode,
		FarmName:          f.FarmName,
		FarmSize:          f.FarmSize,
		Location:          f.Location,
		PrimaryCrops:      splitList(f.PrimaryCrops),
		FarmingExperience: f.FarmingExperience,
		FarmingType:       f.FarmingType,
		Certifications:    splitList(f.Certifications),
		ContactNumber:     f.ContactNumber,
		FarmAddress:       f.FarmAddress,
		IsVerified:        f.IsVerified,
		CreatedAt:         f.CreatedAt,
	}

	for _, record := range f.YieldHistory {
		response.YieldHistory = append(response.YieldHistory, &domain.YieldEntry{
			Crop:    record.Crop,
			Year:    record.Year,
			Yield:   record.Yield,
			Area:    record.Area,
			Quality: record.Quality,
			Revenue: record.Revenue,
		})
	}

	return response
}
