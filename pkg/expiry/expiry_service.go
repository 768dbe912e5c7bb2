package expiry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"usana-backend/domain"
	"usana-backend/entities"
	"usana-backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MailerFunc sends a notification email. Wired to mailing.SendMail in
// production, stubbed in tests.
type MailerFunc func(toEmail, subject, body string) error

type (
	ExpiryService interface {
		CreateExpiryItem(ctx context.Context, req domain.CreateExpiryItemRequest, userID string) (domain.ExpiryItemResponse, error)
		GetExpiryItems(ctx context.Context, userID string) ([]domain.ExpiryItemResponse, error)
		UpdateExpiryItem(ctx context.Context, id string, req domain.UpdateExpiryItemRequest, userID string) error
		DeleteExpiryItem(ctx context.Context, id string, userID string) error
		NotifyExpiring(ctx context.Context, userID string) (domain.NotifyExpiryResponse, error)
	}

	expiryService struct {
		expiryRepository ExpiryRepository
		userRepository   user.UserRepository
		sendMail         MailerFunc
	}
)

func NewExpiryService(expiryRepository ExpiryRepository, userRepository user.UserRepository, sendMail MailerFunc) ExpiryService {
	return &expiryService{
		expiryRepository: expiryRepository,
		userRepository:   userRepository,
		sendMail:         sendMail,
	}
}

func (s *expiryService) CreateExpiryItem(ctx context.Context, req domain.CreateExpiryItemRequest, userID string) (domain.ExpiryItemResponse, error) {
	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		return domain.ExpiryItemResponse{}, domain.ErrInvalidPurchaseDate
	}

	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.ExpiryItemResponse{}, domain.ErrInvalidExpiryDate
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ExpiryItemResponse{}, domain.ErrParseUUID
	}

	item := &entities.ExpiryItem{
		ID:           uuid.New(),
		UserID:       userUUID,
		ItemName:     req.ItemName,
		Category:     req.Category,
		PurchaseDate: purchaseDate,
		ExpiryDate:   expiryDate,
		Quantity:     req.Quantity,
		Location:     req.Location,
		Status:       ClassifyExpiry(expiryDate, time.Now()),
		Notes:        req.Notes,
	}

	if err := s.expiryRepository.CreateExpiryItem(ctx, item); err != nil {
		return domain.ExpiryItemResponse{}, err
	}

	return toExpiryItemResponse(item), nil
}

func (s *expiryService) GetExpiryItems(ctx context.Context, userID string) ([]domain.ExpiryItemResponse, error) {
	items, err := s.expiryRepository.GetExpiryItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	items = WithComputedStatus(items, time.Now())

	response := make([]domain.ExpiryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toExpiryItemResponse(item))
	}
	return response, nil
}

func (s *expiryService) UpdateExpiryItem(ctx context.Context, id string, req domain.UpdateExpiryItemRequest, userID string) error {
	item, err := s.expiryRepository.GetExpiryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrExpiryItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUnauthorizedExpiryAccess
	}

	if req.ItemName != "" {
		item.ItemName = req.ItemName
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Quantity != "" {
		item.Quantity = req.Quantity
	}
	if req.Location != "" {
		item.Location = req.Location
	}
	if req.Notes != "" {
		item.Notes = req.Notes
	}
	if req.PurchaseDate != "" {
		purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			return domain.ErrInvalidPurchaseDate
		}
		item.PurchaseDate = purchaseDate
	}
	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		item.ExpiryDate = expiryDate
		item.Status = ClassifyExpiry(expiryDate, time.Now())
		item.NotificationSent = false
	}

	return s.expiryRepository.UpdateExpiryItem(ctx, item)
}

func (s *expiryService) DeleteExpiryItem(ctx context.Context, id string, userID string) error {
	item, err := s.expiryRepository.GetExpiryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrExpiryItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUnauthorizedExpiryAccess
	}

	return s.expiryRepository.DeleteExpiryItem(ctx, id)
}

// NotifyExpiring emails the owner one summary of all expiring-soon items
// that have not been notified about yet, then flags them so repeated calls
// do not re-send.
func (s *expiryService) NotifyExpiring(ctx context.Context, userID string) (domain.NotifyExpiryResponse, error) {
	owner, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotifyExpiryResponse{}, domain.ErrUserNotFound
		}
		return domain.NotifyExpiryResponse{}, err
	}

	items, err := s.expiryRepository.GetExpiryItems(ctx, userID)
	if err != nil {
		return domain.NotifyExpiryResponse{}, err
	}

	items = WithComputedStatus(items, time.Now())

	var pending []*entities.ExpiryItem
	for _, item := range items {
		if item.Status == StatusExpiringSoon && !item.NotificationSent {
			pending = append(pending, item)
		}
	}

	if len(pending) == 0 {
		return domain.NotifyExpiryResponse{NotifiedItems: 0}, nil
	}

	var lines []string
	for _, item := range pending {
		lines = append(lines, fmt.Sprintf("<li>%s (%s) expires on %s</li>", item.ItemName, item.Quantity, item.ExpiryDate.Format("2006-01-02")))
	}
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>The following items in your pantry are expiring soon:</p><ul>%s</ul><p>Consider using or donating them before they go to waste.</p>",
		owner.Name, strings.Join(lines, ""),
	)

	if err := s.sendMail(owner.Email, "Items expiring soon", body); err != nil {
		return domain.NotifyExpiryResponse{}, err
	}

	ids := make([]string, 0, len(pending))
	for _, item := range pending {
		ids = append(ids, item.ID.String())
	}
	if err := s.expiryRepository.MarkNotificationSent(ctx, ids); err != nil {
		return domain.NotifyExpiryResponse{}, err
	}

	return domain.NotifyExpiryResponse{NotifiedItems: len(pending)}, nil
}

func toExpiryItemResponse(item *entities.ExpiryItem) domain.ExpiryItemResponse {
	return domain.ExpiryItemResponse{
		ID:               item.ID.String(),
		ItemName:         item.ItemName,
		Category:         item.Category,
		PurchaseDate:     item.PurchaseDate,
		ExpiryDate:       item.ExpiryDate,
		Quantity:         item.Quantity,
		Location:         item.Location,
		Status:           item.Status,
		NotificationSent: item.NotificationSent,
		Notes:            item.Notes,
		CreatedAt:        item.CreatedAt,
	}
}
