package repository

import (
	"context"
	"errors"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/entity"

	"gorm.io/gorm"
)

type TrackingRepository struct {
	DB *gorm.DB
}

func NewTrackingRepository(db *gorm.DB) *TrackingRepository {
	return &TrackingRepository{DB: db}
}

func withOrderedLogs(q *gorm.DB) *gorm.DB {
	return q.
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB { return db.Order("timestamp ASC, id ASC") }).
		Preload("DeliveryRoute", func(db *gorm.DB) *gorm.DB { return db.Order("timestamp ASC, id ASC") })
}

// FindByOrderID returns (nil, nil) when the order has no tracking row yet.
func (r *TrackingRepository) FindByOrderID(tx *gorm.DB, orderID uint) (*entity.OrderTracking, error) {
	var t entity.OrderTracking
	err := tx.Where("order_id = ?", orderID).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TrackingRepository) GetFull(ctx context.Context, orderID uint) (*entity.OrderTracking, error) {
	var t entity.OrderTracking
	err := withOrderedLogs(r.DB.WithContext(ctx)).Where("order_id = ?", orderID).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TrackingRepository) Create(tx *gorm.DB, t *entity.OrderTracking) error {
	return tx.Omit("StatusHistory", "DeliveryRoute", "Order").Create(t).Error
}

// Save writes the scalar columns; history and route rows are appended separately.
func (r *TrackingRepository) Save(tx *gorm.DB, t *entity.OrderTracking) error {
	return tx.Omit("StatusHistory", "DeliveryRoute", "Order").Save(t).Error
}

func (r *TrackingRepository) AppendHistory(tx *gorm.DB, h *entity.StatusHistory) error {
	return tx.Create(h).Error
}

func (r *TrackingRepository) AppendRoute(tx *gorm.DB, p *entity.RoutePoint) error {
	return tx.Create(p).Error
}

// ListLive returns active tracking rows for the given orders, restricted in
// the query itself to orders where ownerCol (customer_id or vendor_id) matches.
func (r *TrackingRepository) ListLive(ctx context.Context, ownerCol string, ownerID uint, orderIDs []uint) ([]entity.OrderTracking, error) {
	var out []entity.OrderTracking
	if len(orderIDs) == 0 {
		return out, nil
	}
	err := r.DB.WithContext(ctx).
		Joins("JOIN orders o ON o.id = order_trackings.order_id AND o.deleted_at IS NULL").
		Where("order_trackings.order_id IN ? AND order_trackings.is_active = ?", orderIDs, true).
		Where("o."+ownerCol+" = ?", ownerID).
		Order("order_trackings.order_id ASC").
		Find(&out).Error
	return out, err
}
