package expiry

import (
	"context"

	"usana-backend/entities"

	"gorm.io/gorm"
)

type (
	ExpiryRepository interface {
		CreateExpiryItem(ctx context.Context, item *entities.ExpiryItem) error
		GetExpiryItemByID(ctx context.Context, id string) (*entities.ExpiryItem, error)
		UpdateExpiryItem(ctx context.Context, item *entities.ExpiryItem) error
		DeleteExpiryItem(ctx context.Context, id string) error
		GetExpiryItems(ctx context.Context, userID string) ([]*entities.ExpiryItem, error)
		MarkNotificationSent(ctx context.Context, ids []string) error
	}

	expiryRepository struct {
		db *gorm.DB
	}
)

func NewExpiryRepository(db *gorm.DB) ExpiryRepository {
	return &expiryRepository{db: db}
}

func (r *expiryRepository) CreateExpiryItem(ctx context.Context, item *entities.ExpiryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *expiryRepository) GetExpiryItemByID(ctx context.Context, id string) (*entities.ExpiryItem, error) {
	var item entities.ExpiryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *expiryRepository) UpdateExpiryItem(ctx context.Context, item *entities.ExpiryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *expiryRepository) DeleteExpiryItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ExpiryItem{}).Error
}

func (r *expiryRepository) GetExpiryItems(ctx context.Context, userID string) ([]*entities.ExpiryItem, error) {
	var items []*entities.ExpiryItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *expiryRepository) MarkNotificationSent(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entities.ExpiryItem{}).
		Where("id IN ?", ids).
		Update("notification_sent", true).Error
}
