package entity

import "testing"

func TestTrackingStatusProjection(t *testing.T) {
	tests := []struct {
		in   TrackingStatus
		want OrderStatus
	}{
		{TrackingPlaced, OrderPlaced},
		{TrackingConfirmed, OrderConfirmed},
		{TrackingPreparing, OrderPreparing},
		{TrackingReady, OrderPreparing},
		{TrackingOutForDelivery, OrderOutForDelivery},
		{TrackingDelivered, OrderDelivered},
		{TrackingCancelled, OrderCancelled},
	}
	for _, tt := range tests {
		if !tt.in.Valid() {
			t.Errorf("%s should be valid", tt.in)
		}
		got := tt.in.OrderStatus()
		if got != tt.want || !got.Valid() {
			t.Errorf("%s projects to %s, want %s", tt.in, got, tt.want)
		}
	}
	if OrderStatus("ready").Valid() {
		t.Error("ready is not an order status")
	}
	if TrackingStatus("lost").Valid() {
		t.Error("unknown tracking status accepted")
	}
}

func TestMenuRemaining(t *testing.T) {
	m := Menu{MaxDabbas: 30, DabbasSold: 28}
	if m.Remaining() != 2 {
		t.Fatalf("remaining = %d", m.Remaining())
	}
	m.MainItems = []uint{1, 2}
	m.Extras = []uint{3}
	if ids := m.ItemIDs(); len(ids) != 3 {
		t.Fatalf("item ids = %v", ids)
	}
}

func TestOrderNumber(t *testing.T) {
	o := Order{}
	o.ID = 42
	if got := o.OrderNumber(); got != "#ORD000042" {
		t.Fatalf("order number = %s", got)
	}
}
