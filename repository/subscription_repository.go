package repository

import (
	"context"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/entity"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	DB *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, s *entity.Subscription) error {
	return r.DB.WithContext(ctx).Create(s).Error
}

func (r *SubscriptionRepository) GetWithVendor(ctx context.Context, id uint) (*entity.Subscription, error) {
	var s entity.Subscription
	if err := r.DB.WithContext(ctx).Preload("Vendor").First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubscriptionRepository) ListForCustomer(ctx context.Context, customerID uint, status string) ([]entity.Subscription, error) {
	var out []entity.Subscription
	q := r.DB.WithContext(ctx).Where("customer_id = ?", customerID)
	if status != "" {
		q = q.Where("subscription_status = ?", status)
	}
	err := q.Preload("Vendor").Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *SubscriptionRepository) ListForVendor(ctx context.Context, vendorID uint, status string, limit int) ([]entity.Subscription, error) {
	var out []entity.Subscription
	q := r.DB.WithContext(ctx).Where("vendor_id = ?", vendorID)
	if status != "" {
		q = q.Where("subscription_status = ?", status)
	}
	err := q.Preload("Customer").Order("created_at DESC, id DESC").Limit(limit).Find(&out).Error
	return out, err
}

// UpdateStatusForCustomer reports false when the subscription is not the customer's.
func (r *SubscriptionRepository) UpdateStatusForCustomer(ctx context.Context, customerID, id uint, status entity.SubscriptionStatus) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&entity.Subscription{}).
		Where("id = ? AND customer_id = ?", id, customerID).
		Update("subscription_status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
