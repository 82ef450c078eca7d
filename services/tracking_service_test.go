package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/entity"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/utils"
)

func intPtr(v int) *int { return &v }

func TestTrackingUpsertLifecycle(t *testing.T) {
	db := newTestDB(t)
	notifier := &recordingNotifier{}
	pub := &recordingPublisher{}
	orders := newOrderSvc(db, nil)
	svc := newTrackingSvc(db, notifier, pub)
	customer := seedCustomer(t, db)
	menu := seedMenu(t, db, seedVendor(t, db, true, true).ID, 100, 10)
	order := mustOrder(t, orders, customer.ID, menu, 1)
	ctx := context.Background()

	// no tracking before the first vendor update
	_, view, err := svc.ConsumerDetail(ctx, customer.ID, order.ID)
	if err != nil {
		t.Fatal(err)
	}
	if view != nil {
		t.Fatalf("tracking before first update = %+v", view)
	}

	updates := []TrackingUpdateInput{
		{CurrentStatus: "confirmed", Notes: "accepted"},
		{CurrentStatus: "ready", ProgressPercentage: intPtr(40)},
		{
			CurrentStatus:   "out_for_delivery",
			DeliveryPerson:  &entity.DeliveryPerson{Name: "Ravi", Phone: "9222222222"},
			CurrentLocation: &entity.Location{Latitude: 19.07, Longitude: 72.87, Address: "Bandra"},
		},
		{CurrentLocation: &entity.Location{Latitude: 19.10, Longitude: 72.88}},
		{DeliveryPerson: &entity.DeliveryPerson{VehicleNumber: "MH01AB1234"}, ProgressPercentage: intPtr(250)},
	}
	for i, in := range updates {
		if _, err := svc.Upsert(ctx, menu.VendorID, order.ID, in); err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
	}

	var saved entity.Order
	db.First(&saved, order.ID)
	if saved.OrderStatus != entity.OrderOutForDelivery {
		t.Fatalf("order status = %s", saved.OrderStatus)
	}

	_, view, err = svc.ConsumerDetail(ctx, customer.ID, order.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(view.StatusHistory) != 3 {
		t.Fatalf("history = %d entries, want 3", len(view.StatusHistory))
	}
	if view.StatusHistory[1].Status != entity.TrackingReady || view.StatusHistory[0].Notes != "accepted" {
		t.Fatalf("history = %+v", view.StatusHistory)
	}
	if len(view.DeliveryRoute) != 2 {
		t.Fatalf("route = %d points, want 2", len(view.DeliveryRoute))
	}
	if view.ProgressPercentage != 100 {
		t.Fatalf("progress clamp = %d, want 100", view.ProgressPercentage)
	}
	p := view.DeliveryPerson
	if p == nil || p.Name != "Ravi" || p.VehicleNumber != "MH01AB1234" {
		t.Fatalf("delivery person merge = %+v", p)
	}
	if view.ActualDeliveryTime != nil {
		t.Fatal("actual delivery time set before delivery")
	}

	delivered, err := svc.Upsert(ctx, menu.VendorID, order.ID, TrackingUpdateInput{CurrentStatus: "delivered", ProgressPercentage: intPtr(10)})
	if err != nil {
		t.Fatal(err)
	}
	if delivered.ProgressPercentage != 100 {
		t.Fatalf("delivered progress = %d", delivered.ProgressPercentage)
	}
	_, view, _ = svc.ConsumerDetail(ctx, customer.ID, order.ID)
	if view.ActualDeliveryTime == nil {
		t.Fatal("actual delivery time not set")
	}

	// a delivered order keeps full progress on later status-less updates
	after, err := svc.Upsert(ctx, menu.VendorID, order.ID, TrackingUpdateInput{ProgressPercentage: intPtr(40), Notes: "left at door"})
	if err != nil {
		t.Fatal(err)
	}
	if after.ProgressPercentage != 100 || after.CurrentStatus != entity.TrackingDelivered {
		t.Fatalf("post-delivery update = %+v", after)
	}

	if n := len(notifier.views[order.ID]); n != len(updates)+2 {
		t.Fatalf("notifications = %d", n)
	}
	if n := len(pub.types()); n != len(updates)+2 {
		t.Fatalf("events = %d", n)
	}
}

func TestTrackingUpsertRejections(t *testing.T) {
	db := newTestDB(t)
	svc := newTrackingSvc(db, nil, nil)
	customer := seedCustomer(t, db)
	menu := seedMenu(t, db, seedVendor(t, db, true, true).ID, 100, 10)
	order := mustOrder(t, newOrderSvc(db, nil), customer.ID, menu, 1)
	other := seedVendor(t, db, true, true)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, menu.VendorID, order.ID, TrackingUpdateInput{CurrentStatus: "placed"})
	wantKind(t, err, KindValidation)
	_, err = svc.Upsert(ctx, menu.VendorID, order.ID, TrackingUpdateInput{CurrentStatus: "lost"})
	wantKind(t, err, KindValidation)
	_, err = svc.Upsert(ctx, menu.VendorID, order.ID, TrackingUpdateInput{EstimatedDeliveryTime: "soon"})
	wantKind(t, err, KindValidation)
	_, err = svc.Upsert(ctx, other.ID, order.ID, TrackingUpdateInput{CurrentStatus: "confirmed"})
	wantKind(t, err, KindNotFound)
}

func TestLiveTrackingOwnership(t *testing.T) {
	db := newTestDB(t)
	orders := newOrderSvc(db, nil)
	svc := newTrackingSvc(db, nil, nil)
	alice := seedCustomer(t, db)
	bob := seedCustomer(t, db)
	menu := seedMenu(t, db, seedVendor(t, db, true, true).ID, 100, 10)
	otherMenu := seedMenu(t, db, seedVendor(t, db, true, true).ID, 100, 10)
	mine := mustOrder(t, orders, alice.ID, menu, 1)
	theirs := mustOrder(t, orders, bob.ID, menu, 1)
	elsewhere := mustOrder(t, orders, alice.ID, otherMenu, 1)
	ctx := context.Background()

	for _, o := range []*OrderView{mine, theirs} {
		if _, err := svc.Upsert(ctx, menu.VendorID, o.ID, TrackingUpdateInput{CurrentStatus: "preparing"}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := svc.Upsert(ctx, otherMenu.VendorID, elsewhere.ID, TrackingUpdateInput{CurrentStatus: "confirmed"}); err != nil {
		t.Fatal(err)
	}

	csv := fmt.Sprintf("%d, %d,%d", mine.ID, theirs.ID, elsewhere.ID)

	got, err := svc.Live(ctx, Requester{ID: alice.ID, Role: utils.AudienceCustomer}, csv)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("customer sees %d orders, want 2", len(got))
	}
	for _, lt := range got {
		if lt.OrderID == theirs.ID {
			t.Fatal("customer sees another customer's order")
		}
	}

	got, err = svc.Live(ctx, Requester{ID: menu.VendorID, Role: utils.AudienceVendor}, csv)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("vendor sees %d orders, want 2", len(got))
	}

	_, err = svc.Live(ctx, Requester{ID: alice.ID, Role: utils.AudienceCustomer}, " ")
	wantKind(t, err, KindValidation)
	_, err = svc.Live(ctx, Requester{ID: alice.ID, Role: utils.AudienceCustomer}, "1,abc")
	wantKind(t, err, KindValidation)

	_, ok, err := svc.LiveOne(ctx, Requester{ID: bob.ID, Role: utils.AudienceCustomer}, mine.ID)
	if err != nil || ok {
		t.Fatalf("LiveOne for stranger = ok %v err %v", ok, err)
	}
	view, ok, err := svc.LiveOne(ctx, Requester{ID: alice.ID, Role: utils.AudienceCustomer}, mine.ID)
	if err != nil || !ok || view == nil || view.CurrentStatus != entity.TrackingPreparing {
		t.Fatalf("LiveOne for owner = %+v ok %v err %v", view, ok, err)
	}
}

func TestTrackingDashboards(t *testing.T) {
	db := newTestDB(t)
	orders := newOrderSvc(db, nil)
	svc := newTrackingSvc(db, nil, nil)
	customer := seedCustomer(t, db)
	menu := seedMenu(t, db, seedVendor(t, db, true, true).ID, 100, 10)
	tracked := mustOrder(t, orders, customer.ID, menu, 1)
	untracked := mustOrder(t, orders, customer.ID, menu, 1)
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, menu.VendorID, tracked.ID, TrackingUpdateInput{CurrentStatus: "ready", ProgressPercentage: intPtr(60)}); err != nil {
		t.Fatal(err)
	}

	rows, err := svc.ConsumerList(ctx, customer.ID, "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d", len(rows))
	}
	byID := map[uint]TrackedOrder{}
	for _, r := range rows {
		byID[r.OrderID] = r
	}
	if r := byID[tracked.ID]; r.CurrentStatus != entity.TrackingReady || r.OrderStatus != entity.OrderPreparing || r.ProgressPercentage != 60 {
		t.Fatalf("tracked row = %+v", r)
	}
	if r := byID[untracked.ID]; r.CurrentStatus != entity.TrackingPlaced || r.ProgressPercentage != 0 {
		t.Fatalf("untracked row = %+v", r)
	}

	vendorRows, err := svc.VendorList(ctx, menu.VendorID, "preparing", nil, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(vendorRows) != 1 || vendorRows[0].CustomerEmail != customer.Email || len(vendorRows[0].StatusHistory) != 1 {
		t.Fatalf("vendor rows = %+v", vendorRows)
	}
}
