package repository

import (
	"context"
	"time"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/entity"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) ExistsForOrder(ctx context.Context, orderID uint) (bool, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).Model(&entity.Feedback{}).Where("order_id = ?", orderID).Count(&cnt).Error
	return cnt > 0, err
}

func (r *FeedbackRepository) Create(ctx context.Context, f *entity.Feedback) error {
	return r.DB.WithContext(ctx).Create(f).Error
}

func (r *FeedbackRepository) GetWithRelations(ctx context.Context, id uint) (*entity.Feedback, error) {
	var f entity.Feedback
	err := r.DB.WithContext(ctx).Preload("Vendor").Preload("Menu").Preload("Customer").First(&f, id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FeedbackRepository) ListForCustomer(ctx context.Context, customerID uint, offset, limit int) ([]entity.Feedback, int64, error) {
	db := r.DB.WithContext(ctx)

	var total int64
	if err := db.Model(&entity.Feedback{}).Where("customer_id = ?", customerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Feedback
	err := db.Where("customer_id = ?", customerID).
		Preload("Vendor").Preload("Menu").
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&out).Error
	return out, total, err
}

func (r *FeedbackRepository) ListForVendor(ctx context.Context, vendorID uint) ([]entity.Feedback, error) {
	var out []entity.Feedback
	err := r.DB.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Preload("Customer").Preload("Menu").
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

// SaveResponse reports false when the feedback does not belong to the vendor.
func (r *FeedbackRepository) SaveResponse(ctx context.Context, vendorID, id uint, response string, at time.Time) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&entity.Feedback{}).
		Where("id = ? AND vendor_id = ?", id, vendorID).
		Updates(map[string]any{"vendor_response": response, "vendor_responded_at": at})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
