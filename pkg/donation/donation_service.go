package donation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"usana-backend/domain"
	"usana-backend/entities"
	"usana-backend/internal/utils/storage"
	"usana-backend/pkg/payment"
	"usana-backend/pkg/user"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultCurrency = "KES"

type (
	DonationService interface {
		CreateDonation(ctx context.Context, req domain.CreateDonationRequest, userID string) (*domain.DonationResponse, error)
		GetDonations(ctx context.Context, userID, role, donationType, status string, page, limit int) ([]*domain.DonationResponse, int64, error)
		GetDonationByID(ctx context.Context, id string, userID, role string) (*domain.DonationResponse, error)
		UpdateDonation(ctx context.Context, id string, req domain.UpdateDonationRequest, userID, role string) (*domain.DonationResponse, error)
		DeleteDonation(ctx context.Context, id string, userID, role string) error
		GetAvailableFoodDonations(ctx context.Context) ([]*domain.DonationResponse, error)
	}

	donationService struct {
		donationRepository DonationRepository
		userRepository     user.UserRepository
		paymentService     payment.PaymentService
		s3                 storage.AwsS3
	}
)

func NewDonationService(donationRepository DonationRepository, userRepository user.UserRepository, paymentService payment.PaymentService, s3 storage.AwsS3) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		userRepository:     userRepository,
		paymentService:     paymentService,
		s3:                 s3,
	}
}

// CreateDonation persists exactly one variant of the donation union. The
// branch not selected by req.Type is discarded, never stored. Money
// donations paid through the gateway get a payment transaction whose
// token/redirect is echoed once in the response.
func (s *donationService) CreateDonation(ctx context.Context, req domain.CreateDonationRequest, userID string) (*domain.DonationResponse, error) {
	donorUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	var recipientID *uuid.UUID
	if req.RecipientID != "" {
		recipientUUID, err := uuid.Parse(req.RecipientID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		recipientID = &recipientUUID
	}

	donationID := uuid.New()
	donation := &entities.Donation{
		ID:          donationID,
		DonorID:     donorUUID,
		Type:        req.Type,
		Status:      "Pending",
		RecipientID: recipientID,
		Notes:       req.Notes,
	}

	var paymentInfo *domain.PaymentInfo

	switch req.Type {
	case "food":
		if req.Food == nil {
			return nil, domain.ErrMissingFoodDetail
		}

		expiryDate, err := time.Parse("2006-01-02", req.Food.ExpiryDate)
		if err != nil {
			return nil, domain.ErrInvalidExpiryDate
		}

		var imageURL string
		if req.Food.Image != nil {
			objectKey, err := s.s3.UploadFile(
				fmt.Sprintf("donation-%s", donationID.String()),
				req.Food.Image,
				"donations",
				storage.AllowImage...,
			)
			if err != nil {
				return nil, err
			}
			imageURL = s.s3.GetPublicLinkKey(objectKey)
		}

		donation.FoodDetail = &entities.FoodDonationDetail{
			ID:             uuid.New(),
			DonationID:     donationID,
			FoodType:       req.Food.FoodType,
			Quantity:       req.Food.Quantity,
			Unit:           req.Food.Unit,
			ExpiryDate:     expiryDate,
			PickupLocation: req.Food.PickupLocation,
			Description:    req.Food.Description,
			ImageURL:       imageURL,
		}

	case "money":
		if req.Money == nil {
			return nil, domain.ErrMissingMoneyDetail
		}

		currency := req.Money.Currency
		if currency == "" {
			currency = defaultCurrency
		}

		detail := &entities.MoneyDonationDetail{
			ID:            uuid.New(),
			DonationID:    donationID,
			Amount:        req.Money.Amount,
			Currency:      currency,
			PaymentMethod: req.Money.PaymentMethod,
		}

		if req.Money.PaymentMethod == "gateway" {
			donor, err := s.userRepository.GetUserByID(ctx, userID)
			if err != nil {
				return nil, err
			}

			orderID := fmt.Sprintf("DON-%s", donationID.String())
			paymentInfo, err = s.paymentService.CreateDonationTransaction(orderID, req.Money.Amount, donor.Name, donor.Email)
			if err != nil {
				return nil, domain.ErrPaymentFailed
			}
			detail.TransactionID = orderID
		}

		donation.MoneyDetail = detail

	default:
		return nil, domain.ErrInvalidDonationType
	}

	if err := s.donationRepository.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	response := toDonationResponse(donation)
	response.Payment = paymentInfo
	return response, nil
}

func (s *donationService) GetDonations(ctx context.Context, userID, role, donationType, status string, page, limit int) ([]*domain.DonationResponse, int64, error) {
	donorID := userID
	if role == domain.RoleAdmin {
		donorID = ""
	}

	donations, count, err := s.donationRepository.GetDonations(ctx, donorID, donationType, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]*domain.DonationResponse, 0, len(donations))
	for _, d := range donations {
		response = append(response, toDonationResponse(d))
	}
	return response, count, nil
}

func (s *donationService) GetDonationByID(ctx context.Context, id string, userID, role string) (*domain.DonationResponse, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	if donation.DonorID.String() != userID && role != domain.RoleAdmin {
		return nil, domain.ErrUnauthorizedDonationAccess
	}

	return toDonationResponse(donation), nil
}

func (s *donationService) UpdateDonation(ctx context.Context, id string, req domain.UpdateDonationRequest, userID, role string) (*domain.DonationResponse, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	if donation.DonorID.String() != userID && role != domain.RoleAdmin {
		return nil, domain.ErrUnauthorizedDonationAccess
	}

	if req.Status != "" {
		donation.Status = req.Status
	}
	if req.RecipientID != "" {
		recipientUUID, err := uuid.Parse(req.RecipientID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		donation.RecipientID = &recipientUUID
	}
	if req.Notes != "" {
		donation.Notes = req.Notes
	}

	if err := s.donationRepository.UpdateDonation(ctx, donation); err != nil {
		return nil, err
	}

	return toDonationResponse(donation), nil
}

func (s *donationService) DeleteDonation(ctx context.Context, id string, userID, role string) error {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return err
	}

	if donation.DonorID.String() != userID && role != domain.RoleAdmin {
		return domain.ErrUnauthorizedDonationAccess
	}

	// image cleanup must not block the delete, but orphaned objects
	// should be visible in the logs
	if donation.FoodDetail != nil && donation.FoodDetail.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(donation.FoodDetail.ImageURL)
		if objectKey != "" {
			if err := s.s3.DeleteFile(objectKey); err != nil {
				log.Errorf("failed to delete donation image %s: %v", objectKey, err)
			}
		}
	}

	return s.donationRepository.DeleteDonation(ctx, id)
}

func (s *donationService) GetAvailableFoodDonations(ctx context.Context) ([]*domain.DonationResponse, error) {
	donations, err := s.donationRepository.GetAvailableFoodDonations(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]*domain.DonationResponse, 0, len(donations))
	for _, d := range donations {
		response = append(response, toDonationResponse(d))
	}
	return response, nil
}

func toDonationResponse(d *entities.Donation) *domain.DonationResponse {
	response := &domain.DonationResponse{
		ID:        d.ID.String(),
		DonorID:   d.DonorID.String(),
		Type:      d.Type,
		Status:    d.Status,
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
	}

	if d.Donor != nil {
		response.DonorName = d.Donor.Name
	}
	if d.RecipientID != nil {
		response.RecipientID = d.RecipientID.String()
	}
	if d.FoodDetail != nil {
		response.Food = &domain.FoodDonationDetail{
			FoodType:       d.FoodDetail.FoodType,
			Quantity:       d.FoodDetail.Quantity,
			Unit:           d.FoodDetail.Unit,
			ExpiryDate:     d.FoodDetail.ExpiryDate,
			PickupLocation: d.FoodDetail.PickupLocation,
			Description:    d.FoodDetail.Description,
			ImageURL:       d.FoodDetail.ImageURL,
		}
	}
	if d.MoneyDetail != nil {
		response.Money = &domain.MoneyDonationDetail{
			Amount:        d.MoneyDetail.Amount,
			Currency:      d.MoneyDetail.Currency,
			PaymentMethod: d.MoneyDetail.PaymentMethod,
			TransactionID: d.MoneyDetail.TransactionID,
		}
	}

	return response
}
