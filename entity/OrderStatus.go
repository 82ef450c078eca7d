package entity

// OrderStatus is the summary status stored on an order row.
type OrderStatus string

const (
	OrderPlaced         OrderStatus = "placed"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderPreparing      OrderStatus = "preparing"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

var orderStatuses = map[OrderStatus]bool{
	OrderPlaced: true, OrderConfirmed: true, OrderPreparing: true,
	OrderOutForDelivery: true, OrderDelivered: true, OrderCancelled: true,
}

func (s OrderStatus) Valid() bool { return orderStatuses[s] }

// TrackingStatus is the finer-grained status kept on the tracking row.
// It is the canonical set; the order row only ever stores its projection.
type TrackingStatus string

const (
	TrackingPlaced         TrackingStatus = "placed"
	TrackingConfirmed      TrackingStatus = "confirmed"
	TrackingPreparing      TrackingStatus = "preparing"
	TrackingReady          TrackingStatus = "ready"
	TrackingOutForDelivery TrackingStatus = "out_for_delivery"
	TrackingDelivered      TrackingStatus = "delivered"
	TrackingCancelled      TrackingStatus = "cancelled"
)

func (s TrackingStatus) Valid() bool {
	return s == TrackingReady || orderStatuses[OrderStatus(s)]
}

// OrderStatus maps a tracking status onto the order enum.
// "ready" has no order counterpart and is reported as "preparing".
func (s TrackingStatus) OrderStatus() OrderStatus {
	if s == TrackingReady {
		return OrderPreparing
	}
	return OrderStatus(s)
}

const (
	OrderTypeOneTime      = "one_time"
	OrderTypeSubscription = "subscription"
)
