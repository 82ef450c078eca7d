package services

import (
	"context"
	"time"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusUpdated = "order.status_updated"
	EventTrackingUpdated    = "tracking.updated"
	EventPaymentVerified    = "payment.verified"
)

// OrderEvent is published after a committed order or tracking change.
type OrderEvent struct {
	Type       string    `json:"type"`
	OrderID    uint      `json:"order_id"`
	VendorID   uint      `json:"vendor_id"`
	CustomerID uint      `json:"customer_id"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher is best effort; services log publish failures and move on.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, ev OrderEvent) error
}

type NopPublisher struct{}

func (NopPublisher) PublishOrderEvent(context.Context, OrderEvent) error { return nil }

// TrackingNotifier pushes live tracking views to connected clients.
type TrackingNotifier interface {
	NotifyTracking(orderID uint, view LiveTracking)
}

type NopNotifier struct{}

func (NopNotifier) NotifyTracking(uint, LiveTracking) {}
