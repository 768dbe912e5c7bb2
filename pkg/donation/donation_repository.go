package donation

import (
	"context"

	"usana-backend/entities"

	"gorm.io/gorm"
)

type (
	DonationRepository interface {
		CreateDonation(ctx context.Context, donation *entities.Donation) error
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		UpdateDonation(ctx context.Context, donation *entities.Donation) error
		DeleteDonation(ctx context.Context, id string) error
		GetDonations(ctx context.Context, donorID, donationType, status string, page, limit int) ([]*entities.Donation, int64, error)
		GetAvailableFoodDonations(ctx context.Context) ([]*entities.Donation, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Preload("Recipient").
		Preload("FoodDetail").
		Preload("MoneyDetail").
		Where("id = ?", id).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) UpdateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Save(donation).Error
}

func (r *donationRepository) DeleteDonation(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("donation_id = ?", id).Delete(&entities.FoodDonationDetail{}).Error; err != nil {
			return err
		}
		if err := tx.Where("donation_id = ?", id).Delete(&entities.MoneyDonationDetail{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Donation{}).Error
	})
}

// GetDonations lists donations newest first. An empty donorID lists across
// all donors (admin view).
func (r *donationRepository) GetDonations(ctx context.Context, donorID, donationType, status string, page, limit int) ([]*entities.Donation, int64, error) {
	var donations []*entities.Donation
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Donation{})
	if donorID != "" {
		query = query.Where("donor_id = ?", donorID)
	}
	if donationType != "" {
		query = query.Where("type = ?", donationType)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Donor").
		Preload("Recipient").
		Preload("FoodDetail").
		Preload("MoneyDetail").
		Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}

	return donations, count, nil
}

func (r *donationRepository) GetAvailableFoodDonations(ctx context.Context) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Preload("FoodDetail").
		Where("type = ? AND status = ?", "food", "Approved").
		Order("created_at desc").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}
