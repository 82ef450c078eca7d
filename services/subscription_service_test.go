package services

import (
	"context"
	"testing"
	"time"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/entity"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/repository"
)

func TestMealPlan(t *testing.T) {
	day := func(s string) time.Time {
		d, _ := time.Parse("2006-01-02", s)
		return d
	}
	tests := []struct {
		name       string
		start, end string
		days       int
		price      float64
		wantMeals  int
		wantAmount float64
	}{
		{"one week", "2025-01-01", "2025-01-08", 5, 100, 5, 500},
		{"partial second week", "2025-01-01", "2025-01-10", 5, 100, 10, 1000},
		{"four weeks", "2025-01-01", "2025-01-29", 3, 90, 12, 1080},
		{"same day", "2025-01-01", "2025-01-01", 7, 100, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meals, amount := MealPlan(day(tt.start), day(tt.end), tt.days, tt.price)
			if meals != tt.wantMeals || amount != tt.wantAmount {
				t.Fatalf("MealPlan = %d/%v, want %d/%v", meals, amount, tt.wantMeals, tt.wantAmount)
			}
		})
	}
}

func TestSubscriptionLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubscriptionService(repository.NewSubscriptionRepository(db), repository.NewVendorRepository(db))
	customer := seedCustomer(t, db)
	other := seedCustomer(t, db)
	vendor := seedVendor(t, db, true, true)
	inactive := seedVendor(t, db, true, false)
	ctx := context.Background()

	in := CreateSubscriptionInput{
		VendorID:         vendor.ID,
		PlanType:         "weekly",
		DeliveryAddress:  "Flat 4, Andheri",
		DeliveryTimeSlot: string(entity.SlotDinnerEarly),
		DeliveryDays:     []string{"Monday", "wednesday", "friday", "monday"},
		StartDate:        "2025-01-01",
		EndDate:          "2025-01-15",
		PricePerMeal:     120,
	}
	sub, err := svc.Create(ctx, customer.ID, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(sub.DeliveryDays) != 3 {
		t.Fatalf("days = %v, want deduplicated", sub.DeliveryDays)
	}
	if sub.TotalMeals != 6 || sub.TotalAmount != 720 {
		t.Fatalf("meals/amount = %d/%v", sub.TotalMeals, sub.TotalAmount)
	}
	if sub.SubscriptionStatus != entity.SubscriptionActive || sub.PaymentStatus != entity.SubPaymentPending || sub.MealsDelivered != 0 {
		t.Fatalf("initial state = %s/%s/%d", sub.SubscriptionStatus, sub.PaymentStatus, sub.MealsDelivered)
	}
	if sub.MealPreferences.SpiceLevel != entity.SpiceMedium {
		t.Fatalf("default spice = %s", sub.MealPreferences.SpiceLevel)
	}
	if sub.Vendor == nil || sub.Vendor.ID != vendor.ID {
		t.Fatalf("vendor summary = %+v", sub.Vendor)
	}

	bad := in
	bad.VendorID = inactive.ID
	_, err = svc.Create(ctx, customer.ID, bad)
	wantKind(t, err, KindNotFound)

	bad = in
	bad.DeliveryDays = nil
	_, err = svc.Create(ctx, customer.ID, bad)
	wantKind(t, err, KindValidation)

	bad = in
	bad.DeliveryDays = []string{"funday"}
	_, err = svc.Create(ctx, customer.ID, bad)
	wantKind(t, err, KindValidation)

	bad = in
	bad.EndDate = "2024-12-01"
	_, err = svc.Create(ctx, customer.ID, bad)
	wantKind(t, err, KindValidation)

	paused, err := svc.UpdateStatus(ctx, customer.ID, sub.ID, "paused")
	if err != nil {
		t.Fatal(err)
	}
	if paused.SubscriptionStatus != entity.SubscriptionPaused {
		t.Fatalf("status = %s", paused.SubscriptionStatus)
	}
	_, err = svc.UpdateStatus(ctx, other.ID, sub.ID, "cancelled")
	wantKind(t, err, KindNotFound)
	_, err = svc.UpdateStatus(ctx, customer.ID, sub.ID, "expired")
	wantKind(t, err, KindValidation)

	mine, err := svc.ListForCustomer(ctx, customer.ID, "paused")
	if err != nil || len(mine) != 1 {
		t.Fatalf("customer list = %d, %v", len(mine), err)
	}
	none, err := svc.ListForCustomer(ctx, customer.ID, "active")
	if err != nil || len(none) != 0 {
		t.Fatalf("filtered list = %d, %v", len(none), err)
	}
	forVendor, err := svc.ListForVendor(ctx, vendor.ID, "", 100)
	if err != nil || len(forVendor) != 1 || forVendor[0].Customer == nil {
		t.Fatalf("vendor list = %+v, %v", forVendor, err)
	}
}
