package services

import (
	"context"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/entity"

	"gorm.io/gorm"
)

// ----- Vendor actions -----

// UpdateStatus overwrites the order's summary status. Any enum value is
// accepted except "placed": an order never goes back to placed.
func (s *OrderService) UpdateStatus(ctx context.Context, vendorID, orderID uint, status string) (*OrderView, error) {
	if status == "" {
		return nil, Validation("Status is required")
	}
	next := entity.OrderStatus(status)
	if !next.Valid() {
		return nil, Validation("Invalid order status")
	}
	if next == entity.OrderPlaced {
		return nil, Validation("Order status cannot be set back to placed")
	}

	o, err := s.Repo.GetOrderForVendor(ctx, vendorID, orderID)
	if err != nil {
		return nil, notFoundOr(err, "Order not found")
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdateStatus(tx, o.ID, next)
	})
	if err != nil {
		return nil, err
	}
	o.OrderStatus = next

	s.publish(ctx, EventOrderStatusUpdated, o)
	view := NewOrderView(o)
	return &view, nil
}
