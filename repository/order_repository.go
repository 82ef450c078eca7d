package repository

import (
	"context"
	"time"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// GetOrderForCustomer loads an order with the menu and vendor summaries.
func (r *OrderRepository) GetOrderForCustomer(ctx context.Context, customerID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.WithContext(ctx).
		Preload("Menu").Preload("Vendor").
		Where("id = ? AND customer_id = ?", orderID, customerID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForVendor(ctx context.Context, vendorID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.WithContext(ctx).
		Preload("Menu").Preload("Customer").
		Where("id = ? AND vendor_id = ?", orderID, vendorID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetWithSummaries(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.Preload("Menu").Preload("Vendor").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderFilter struct {
	Status string
	// restricts created_at to one calendar day
	Day *time.Time
}

func (f OrderFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Status != "" && f.Status != "all" {
		q = q.Where("order_status = ?", f.Status)
	}
	if f.Day != nil {
		q = q.Where("created_at >= ? AND created_at < ?", *f.Day, f.Day.AddDate(0, 0, 1))
	}
	return q
}

// ListForCustomer returns one page (newest first) and the total match count.
func (r *OrderRepository) ListForCustomer(ctx context.Context, customerID uint, f OrderFilter, offset, limit int) ([]entity.Order, int64, error) {
	return r.list(ctx, "customer_id", customerID, f, offset, limit, "Vendor")
}

func (r *OrderRepository) ListForVendor(ctx context.Context, vendorID uint, f OrderFilter, offset, limit int) ([]entity.Order, int64, error) {
	return r.list(ctx, "vendor_id", vendorID, f, offset, limit, "Customer")
}

func (r *OrderRepository) list(ctx context.Context, ownerCol string, ownerID uint, f OrderFilter, offset, limit int, party string) ([]entity.Order, int64, error) {
	db := r.DB.WithContext(ctx)

	var total int64
	countQ := f.apply(db.Model(&entity.Order{}).Where(ownerCol+" = ?", ownerID))
	if err := countQ.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	q := f.apply(db.Where(ownerCol+" = ?", ownerID))
	err := q.Preload("Menu").Preload(party).
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&orders).Error
	return orders, total, err
}

// ListWithTracking is the tracking-dashboard variant: no count, tracking preloaded.
func (r *OrderRepository) ListWithTracking(ctx context.Context, ownerCol string, ownerID uint, f OrderFilter, limit int) ([]entity.Order, error) {
	var orders []entity.Order
	q := f.apply(r.DB.WithContext(ctx).Where(ownerCol+" = ?", ownerID))
	err := q.Preload("Menu").Preload("Vendor").Preload("Customer").
		Preload("Tracking").
		Preload("Tracking.StatusHistory", func(db *gorm.DB) *gorm.DB { return db.Order("timestamp ASC, id ASC") }).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

// UpdateStatus overwrites the summary status.
func (r *OrderRepository) UpdateStatus(tx *gorm.DB, orderID uint, status entity.OrderStatus) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Update("order_status", status).Error
}

// ---------------- Payments ----------------

func (r *OrderRepository) FindByRazorpayOrderID(ctx context.Context, customerID uint, rzpOrderID string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.WithContext(ctx).
		Where("razorpay_order_id = ? AND customer_id = ?", rzpOrderID, customerID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) UpdatePayment(tx *gorm.DB, orderID uint, updates map[string]any) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates).Error
}
