package farmer

import (
	"context"

	"usana-backend/entities"

	"gorm.io/gorm"
)

type (
	FarmerRepository interface {
		CreateFarmer(ctx context.Context, farmer *entities.Farmer) error
		GetFarmerByID(ctx context.Context, id string) (*entities.Farmer, error)
		GetFarmerByUserID(ctx context.Context, userID string) (*entities.Farmer, error)
		GetFarmers(ctx context.Context, page, limit int) ([]*entities.Farmer, int64, error)
		UpdateFarmer(ctx context.Context, farmer *entities.Farmer) error
		DeleteFarmer(ctx context.Context, id string) error
		AddYieldRecord(ctx context.Context, record *entities.YieldRecord) error
	}

	farmerRepository struct {
		db *gorm.DB
	}
)

func NewFarmerRepository(db *gorm.DB) FarmerRepository {
	return &farmerRepository{db: db}
}

func (r *farmerRepository) CreateFarmer(ctx context.Context, farmer *entities.Farmer) error {
	return r.db.WithContext(ctx).Create(farmer).Error
}

func (r *farmerRepository) GetFarmerByID(ctx context.Context, id string) (*entities.Farmer, error) {
	var farmer entities.Farmer
	if err := r.db.WithContext(ctx).
		Preload("YieldHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("year desc")
		}).
		Where("id = ?", id).
		First(&farmer).Error; err != nil {
		return nil, err
	}
	return &farmer, nil
}

func (r *farmerRepository) GetFarmerByUserID(ctx context.Context, userID string) (*entities.Farmer, error) {
	var farmer entities.Farmer
	if err := r.db.WithContext(ctx).
		Preload("YieldHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("year desc")
		}).
		Where("user_id = ?", userID).
		First(&farmer).Error; err != nil {
		return nil, err
	}
	return &farmer, nil
}

func (r *farmerRepository) GetFarmers(ctx context.Context, page, limit int) ([]*entities.Farmer, int64, error) {
	var farmers []*entities.Farmer
	var count int64

	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Farmer{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&farmers).Error; err != nil {
		return nil, 0, err
	}

	return farmers, count, nil
}

func (r *farmerRepository) UpdateFarmer(ctx context.Context, farmer *entities.Farmer) error {
	return r.db.WithContext(ctx).Save(farmer).Error
}

func (r *farmerRepository) DeleteFarmer(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("farmer_id = ?", id).Delete(&entities.YieldRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Farmer{}).Error
	})
}

func (r *farmerRepository) AddYieldRecord(ctx context.Context, record *entities.YieldRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}
