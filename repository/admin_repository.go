package repository

import (
	"context"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/entity"

	"gorm.io/gorm"
)

type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	var a entity.Admin
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
