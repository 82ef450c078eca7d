package services

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/entity"

	"gorm.io/gorm"
)

func TestCreateOrderTotalsAndInventory(t *testing.T) {
	db := newTestDB(t)
	pub := &recordingPublisher{}
	svc := newOrderSvc(db, pub)
	customer := seedCustomer(t, db)
	vendor := seedVendor(t, db, true, true)
	menu := seedMenu(t, db, vendor.ID, 120, 5)

	first := mustOrder(t, svc, customer.ID, menu, 3)
	if first.TotalAmount != 360 {
		t.Fatalf("total = %v, want 360", first.TotalAmount)
	}
	if first.OrderStatus != entity.OrderPlaced || first.PaymentStatus != entity.PaymentPending {
		t.Fatalf("new order status = %s/%s", first.OrderStatus, first.PaymentStatus)
	}
	if first.PaymentMethod != entity.PaymentCOD {
		t.Fatalf("payment method = %s, want cod", first.PaymentMethod)
	}
	if first.Vendor == nil || first.Vendor.BusinessName != vendor.BusinessName {
		t.Fatalf("vendor summary missing: %+v", first.Vendor)
	}

	_, err := svc.Create(context.Background(), customer.ID, orderInput(menu, 3))
	wantKind(t, err, KindInsufficientInventory)
	if err.Error() != "Only 2 dabbas available" {
		t.Fatalf("message = %q", err.Error())
	}

	mustOrder(t, svc, customer.ID, menu, 2)

	var saved entity.Menu
	if err := db.First(&saved, menu.ID).Error; err != nil {
		t.Fatal(err)
	}
	if saved.DabbasSold != 5 {
		t.Fatalf("dabbas_sold = %d, want 5", saved.DabbasSold)
	}

	_, err = svc.Create(context.Background(), customer.ID, orderInput(menu, 1))
	wantKind(t, err, KindInsufficientInventory)

	var count int64
	db.Model(&entity.Order{}).Count(&count)
	if count != 2 {
		t.Fatalf("orders = %d, want 2 (rejected orders must not persist)", count)
	}
	if got := pub.types(); len(got) != 2 || got[0] != EventOrderCreated {
		t.Fatalf("events = %v", got)
	}
}

func TestCreateOrderDefaultsQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderSvc(db, nil)
	customer := seedCustomer(t, db)
	menu := seedMenu(t, db, seedVendor(t, db, true, true).ID, 80, 10)

	o := mustOrder(t, svc, customer.ID, menu, 0)
	if o.Quantity != 1 || o.TotalAmount != 80 {
		t.Fatalf("quantity/total = %d/%v, want 1/80", o.Quantity, o.TotalAmount)
	}
}

func TestCreateOrderRejections(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderSvc(db, nil)
	customer := seedCustomer(t, db)

	unverified := seedMenu(t, db, seedVendor(t, db, false, true).ID, 100, 10)
	inactiveVendor := seedMenu(t, db, seedVendor(t, db, true, false).ID, 100, 10)
	good := seedMenu(t, db, seedVendor(t, db, true, true).ID, 100, 10)
	inactiveMenu := seedMenu(t, db, good.VendorID, 100, 10)
	if err := db.Model(inactiveMenu).Update("is_active", false).Error; err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		in   CreateOrderInput
		kind ErrorKind
	}{
		{"missing address", func() CreateOrderInput { in := orderInput(good, 1); in.DeliveryAddress = " "; return in }(), KindValidation},
		{"bad slot", func() CreateOrderInput { in := orderInput(good, 1); in.DeliveryTimeSlot = "09:00-10:00"; return in }(), KindValidation},
		{"bad date", func() CreateOrderInput { in := orderInput(good, 1); in.DeliveryDate = "tomorrow"; return in }(), KindValidation},
		{"negative quantity", orderInput(good, -2), KindValidation},
		{"bad payment method", func() CreateOrderInput { in := orderInput(good, 1); in.PaymentMethod = "cheque"; return in }(), KindValidation},
		{"unknown menu", func() CreateOrderInput { in := orderInput(good, 1); in.MenuID = 9999; return in }(), KindNotFound},
		{"vendor mismatch", func() CreateOrderInput { in := orderInput(good, 1); in.VendorID = unverified.VendorID; return in }(), KindNotFound},
		{"unverified vendor", orderInput(unverified, 1), KindUnavailable},
		{"inactive vendor", orderInput(inactiveVendor, 1), KindUnavailable},
		{"inactive menu", orderInput(inactiveMenu, 1), KindUnavailable},
		{"over capacity", orderInput(good, 11), KindInsufficientInventory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), customer.ID, tt.in)
			wantKind(t, err, tt.kind)
		})
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	db := newTestDB(t)
	pub := &recordingPublisher{}
	svc := newOrderSvc(db, pub)
	customer := seedCustomer(t, db)
	menu := seedMenu(t, db, seedVendor(t, db, true, true).ID, 100, 10)
	other := seedVendor(t, db, true, true)
	order := mustOrder(t, svc, customer.ID, menu, 1)
	ctx := context.Background()

	updated, err := svc.UpdateStatus(ctx, menu.VendorID, order.ID, "confirmed")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.OrderStatus != entity.OrderConfirmed {
		t.Fatalf("status = %s", updated.OrderStatus)
	}

	_, err = svc.UpdateStatus(ctx, menu.VendorID, order.ID, "placed")
	wantKind(t, err, KindValidation)
	_, err = svc.UpdateStatus(ctx, menu.VendorID, order.ID, "")
	wantKind(t, err, KindValidation)
	_, err = svc.UpdateStatus(ctx, menu.VendorID, order.ID, "shipped")
	wantKind(t, err, KindValidation)
	_, err = svc.UpdateStatus(ctx, other.ID, order.ID, "delivered")
	wantKind(t, err, KindNotFound)

	// permissive: any non-placed value is accepted, even backwards
	if _, err := svc.UpdateStatus(ctx, menu.VendorID, order.ID, "cancelled"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, menu.VendorID, order.ID, "preparing"); err != nil {
		t.Fatalf("preparing after cancel: %v", err)
	}

	var saved entity.Order
	db.First(&saved, order.ID)
	if saved.OrderStatus != entity.OrderPreparing {
		t.Fatalf("stored status = %s", saved.OrderStatus)
	}
	if got := pub.types(); len(got) != 4 || got[3] != EventOrderStatusUpdated {
		t.Fatalf("events = %v", got)
	}
}

func TestListOrdersPagination(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderSvc(db, nil)
	customer := seedCustomer(t, db)
	other := seedCustomer(t, db)
	menu := seedMenu(t, db, seedVendor(t, db, true, true).ID, 50, 30)
	for i := 0; i < 5; i++ {
		mustOrder(t, svc, customer.ID, menu, 1)
	}
	mustOrder(t, svc, other.ID, menu, 1)
	ctx := context.Background()

	page, err := svc.ListForCustomer(ctx, customer.ID, "", 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Orders) != 2 {
		t.Fatalf("page size = %d, want 2", len(page.Orders))
	}
	if page.Pagination.TotalPages != 3 || page.Pagination.Total != 5 || page.Pagination.CurrentPage != 2 {
		t.Fatalf("pagination = %+v", page.Pagination)
	}
	for _, o := range page.Orders {
		if o.CustomerID != customer.ID {
			t.Fatalf("leaked order %d of customer %d", o.ID, o.CustomerID)
		}
	}

	vendorPage, err := svc.ListForVendor(ctx, menu.VendorID, "all", 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if vendorPage.Pagination.Total != 6 || vendorPage.Orders[0].Customer == nil {
		t.Fatalf("vendor page = %d orders, customer %+v", vendorPage.Pagination.Total, vendorPage.Orders[0].Customer)
	}

	empty, err := svc.ListForCustomer(ctx, customer.ID, "delivered", 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(empty.Orders) != 0 || empty.Pagination.TotalPages != 0 {
		t.Fatalf("filtered page = %+v", empty.Pagination)
	}
}

func TestCreateOrderConcurrentInventory(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderSvc(db, nil)
	menu := seedMenu(t, db, seedVendor(t, db, true, true).ID, 100, 5)
	customers := make([]*entity.User, 10)
	for i := range customers {
		customers[i] = seedCustomer(t, db)
	}

	var (
		wg   sync.WaitGroup
		ok   atomic.Int32
		errs = make(chan error, len(customers))
	)
	for _, c := range customers {
		wg.Add(1)
		go func(customerID uint) {
			defer wg.Done()
			if _, err := svc.Create(context.Background(), customerID, orderInput(menu, 3)); err != nil {
				errs <- err
				return
			}
			ok.Add(1)
		}(c.ID)
	}
	wg.Wait()
	close(errs)

	if ok.Load() != 1 {
		t.Fatalf("successful orders = %d, want 1", ok.Load())
	}
	for err := range errs {
		wantKind(t, err, KindInsufficientInventory)
	}

	var saved entity.Menu
	if err := db.First(&saved, menu.ID).Error; err != nil {
		t.Fatal(err)
	}
	if saved.DabbasSold != 3 || saved.DabbasSold > saved.MaxDabbas {
		t.Fatalf("dabbas_sold = %d, want 3", saved.DabbasSold)
	}
	var count int64
	db.Model(&entity.Order{}).Count(&count)
	if count != 1 {
		t.Fatalf("orders = %d, want 1", count)
	}
}

// A competing order that commits between the availability check and the
// guarded increment must roll back the losing insert.
func TestCreateOrderLosesRaceAfterCheck(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderSvc(db, nil)
	menu := seedMenu(t, db, seedVendor(t, db, true, true).ID, 100, 5)
	customer := seedCustomer(t, db)

	var fired atomic.Bool
	err := db.Callback().Create().After("gorm:create").Register("test:sell_out", func(tx *gorm.DB) {
		if tx.Statement.Schema == nil || tx.Statement.Schema.Table != "orders" || !fired.CompareAndSwap(false, true) {
			return
		}
		tx.Session(&gorm.Session{NewDB: true}).Exec("UPDATE menus SET dabbas_sold = max_dabbas WHERE id = ?", menu.ID)
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.Create(context.Background(), customer.ID, orderInput(menu, 2))
	wantKind(t, err, KindInsufficientInventory)
	if err.Error() != "Only 0 dabbas available" {
		t.Fatalf("message = %q", err.Error())
	}
	if !fired.Load() {
		t.Fatal("sell-out hook never ran")
	}

	var saved entity.Menu
	if err := db.First(&saved, menu.ID).Error; err != nil {
		t.Fatal(err)
	}
	if saved.DabbasSold != 0 {
		t.Fatalf("dabbas_sold = %d, want 0 after rollback", saved.DabbasSold)
	}
	var count int64
	db.Model(&entity.Order{}).Count(&count)
	if count != 0 {
		t.Fatalf("orders = %d, want 0 after rollback", count)
	}
}
