package repository

import (
	"context"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/entity"

	"gorm.io/gorm"
)

type VendorRepository struct {
	DB *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{DB: db}
}

func (r *VendorRepository) Create(ctx context.Context, v *entity.Vendor) error {
	return r.DB.WithContext(ctx).Create(v).Error
}

func (r *VendorRepository) FindByID(ctx context.Context, id uint) (*entity.Vendor, error) {
	var v entity.Vendor
	if err := r.DB.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VendorRepository) FindActiveByID(ctx context.Context, id uint) (*entity.Vendor, error) {
	var v entity.Vendor
	err := r.DB.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// vendors log in with username, email or license number
func (r *VendorRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.Vendor, error) {
	var v entity.Vendor
	err := r.DB.WithContext(ctx).
		Where("username = ? OR email = ? OR license_number = ?", identifier, identifier, identifier).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VendorRepository) CountDuplicates(ctx context.Context, username, email, license string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&entity.Vendor{}).
		Where("username = ? OR email = ? OR license_number = ?", username, email, license).
		Count(&count).Error
	return count, err
}

func (r *VendorRepository) Update(ctx context.Context, id uint, updates map[string]any) error {
	return r.DB.WithContext(ctx).Model(&entity.Vendor{}).Where("id = ?", id).Updates(updates).Error
}
