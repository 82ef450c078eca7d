package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/configs"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/entity"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/repository"

	"gorm.io/gorm"
)

var fixtureSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := configs.Open("sqlite", "file:"+name+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := configs.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()
	n := fixtureSeq.Add(1)
	u := &entity.User{
		Username:  fmt.Sprintf("customer%d", n),
		Email:     fmt.Sprintf("customer%d@example.com", n),
		Password:  "x",
		FirstName: "Asha",
		LastName:  "Rao",
		Phone:     "9000000000",
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return u
}

func seedVendor(t *testing.T, db *gorm.DB, verified, active bool) *entity.Vendor {
	t.Helper()
	n := fixtureSeq.Add(1)
	v := &entity.Vendor{
		Username:      fmt.Sprintf("vendor%d", n),
		Email:         fmt.Sprintf("vendor%d@example.com", n),
		Password:      "x",
		BusinessName:  fmt.Sprintf("Kitchen %d", n),
		Address:       "12 MG Road",
		PhoneNumber:   "9111111111",
		LicenseNumber: fmt.Sprintf("LIC-%d", n),
		IsVerified:    verified,
		IsActive:      active,
	}
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("seed vendor: %v", err)
	}
	return v
}

func seedMenu(t *testing.T, db *gorm.DB, vendorID uint, price float64, max int) *entity.Menu {
	t.Helper()
	m := &entity.Menu{
		Name:           fmt.Sprintf("Thali %d", fixtureSeq.Add(1)),
		Date:           time.Now().UTC().Truncate(24 * time.Hour),
		FullDabbaPrice: price,
		MaxDabbas:      max,
		IsActive:       true,
		VendorID:       vendorID,
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("seed menu: %v", err)
	}
	return m
}

func orderInput(menu *entity.Menu, qty int) CreateOrderInput {
	return CreateOrderInput{
		MenuID:           menu.ID,
		VendorID:         menu.VendorID,
		Quantity:         qty,
		DeliveryAddress:  "Flat 4, Andheri",
		DeliveryDate:     time.Now().Format("2006-01-02"),
		DeliveryTimeSlot: string(entity.SlotLunchEarly),
	}
}

func newOrderSvc(db *gorm.DB, events EventPublisher) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewMenuRepository(db), events, nil)
}

func newTrackingSvc(db *gorm.DB, notifier TrackingNotifier, events EventPublisher) *TrackingService {
	return NewTrackingService(db, repository.NewTrackingRepository(db), repository.NewOrderRepository(db), notifier, events, nil)
}

func mustOrder(t *testing.T, svc *OrderService, customerID uint, menu *entity.Menu, qty int) *OrderView {
	t.Helper()
	o, err := svc.Create(context.Background(), customerID, orderInput(menu, qty))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return o
}

func wantKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error of kind %d, got nil", kind)
	}
	if got := KindOf(err); got != kind {
		t.Fatalf("error kind = %d, want %d (%v)", got, kind, err)
	}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []OrderEvent
}

func (p *recordingPublisher) PublishOrderEvent(_ context.Context, ev OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}

type recordingNotifier struct {
	mu    sync.Mutex
	views map[uint][]LiveTracking
}

func (n *recordingNotifier) NotifyTracking(orderID uint, view LiveTracking) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.views == nil {
		n.views = map[uint][]LiveTracking{}
	}
	n.views[orderID] = append(n.views[orderID], view)
}
