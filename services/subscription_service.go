package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/entity"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/repository"

	"gorm.io/datatypes"
)

type SubscriptionService struct {
	Repo       *repository.SubscriptionRepository
	VendorRepo *repository.VendorRepository
}

func NewSubscriptionService(repo *repository.SubscriptionRepository, vendorRepo *repository.VendorRepository) *SubscriptionService {
	return &SubscriptionService{Repo: repo, VendorRepo: vendorRepo}
}

type CreateSubscriptionInput struct {
	VendorID            uint                    `json:"vendor_id"`
	PlanType            string                  `json:"plan_type" binding:"omitempty,oneof=weekly monthly custom"`
	MealPreferences     *entity.MealPreferences `json:"meal_preferences"`
	DeliveryAddress     string                  `json:"delivery_address"`
	DeliveryTimeSlot    string                  `json:"delivery_time_slot" binding:"omitempty,timeslot"`
	DeliveryDays        []string                `json:"delivery_days" binding:"omitempty,dive,weekday"`
	StartDate           string                  `json:"start_date"`
	EndDate             string                  `json:"end_date"`
	PricePerMeal        float64                 `json:"price_per_meal"`
	AutoRenewal         bool                    `json:"auto_renewal"`
	SpecialInstructions string                  `json:"special_instructions"`
}

// MealPlan computes how many meals a plan covers: one per delivery day for
// every started week between start and end.
func MealPlan(start, end time.Time, deliveryDays int, pricePerMeal float64) (totalMeals int, totalAmount float64) {
	days := math.Ceil(end.Sub(start).Hours() / 24)
	weeks := int(math.Ceil(days / 7))
	totalMeals = deliveryDays * weeks
	return totalMeals, float64(totalMeals) * pricePerMeal
}

func (s *SubscriptionService) Create(ctx context.Context, customerID uint, in CreateSubscriptionInput) (*SubscriptionView, error) {
	in.DeliveryAddress = strings.TrimSpace(in.DeliveryAddress)
	if in.VendorID == 0 || in.PlanType == "" || in.DeliveryAddress == "" || in.DeliveryTimeSlot == "" ||
		len(in.DeliveryDays) == 0 || in.StartDate == "" || in.EndDate == "" || in.PricePerMeal <= 0 {
		return nil, Validation("All subscription details are required")
	}

	plan := entity.PlanType(in.PlanType)
	if !plan.Valid() {
		return nil, Validation("Invalid plan type")
	}
	slot := entity.TimeSlot(in.DeliveryTimeSlot)
	if !slot.Valid() {
		return nil, Validation("Invalid delivery time slot")
	}
	days := make([]string, 0, len(in.DeliveryDays))
	seen := map[string]bool{}
	for _, d := range in.DeliveryDays {
		d = strings.ToLower(strings.TrimSpace(d))
		if !entity.ValidWeekDay(d) {
			return nil, Validation("Invalid delivery day: " + d)
		}
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	start, ok := ParseDate(in.StartDate)
	if !ok {
		return nil, Validation("Invalid start date")
	}
	end, ok := ParseDate(in.EndDate)
	if !ok {
		return nil, Validation("Invalid end date")
	}
	if end.Before(start) {
		return nil, Validation("End date must not be before start date")
	}

	prefs := entity.MealPreferences{SpiceLevel: entity.SpiceMedium, AvoidIngredients: []string{}}
	if p := in.MealPreferences; p != nil {
		prefs.IsVegOnly = p.IsVegOnly
		if p.SpiceLevel != "" {
			if !p.SpiceLevel.Valid() {
				return nil, Validation("Invalid spice level")
			}
			prefs.SpiceLevel = p.SpiceLevel
		}
		if p.AvoidIngredients != nil {
			prefs.AvoidIngredients = p.AvoidIngredients
		}
	}

	if _, err := s.VendorRepo.FindActiveByID(ctx, in.VendorID); err != nil {
		return nil, notFoundOr(err, "Vendor not found or inactive")
	}

	totalMeals, totalAmount := MealPlan(start, end, len(days), in.PricePerMeal)
	sub := entity.Subscription{
		CustomerID:          customerID,
		VendorID:            in.VendorID,
		PlanType:            plan,
		MealPreferences:     datatypes.NewJSONType(prefs),
		DeliveryAddress:     in.DeliveryAddress,
		DeliveryTimeSlot:    slot,
		DeliveryDays:        datatypes.NewJSONSlice(days),
		StartDate:           start,
		EndDate:             end,
		PricePerMeal:        in.PricePerMeal,
		TotalMeals:          totalMeals,
		TotalAmount:         totalAmount,
		MealsDelivered:      0,
		PaymentStatus:       entity.SubPaymentPending,
		SubscriptionStatus:  entity.SubscriptionActive,
		AutoRenewal:         in.AutoRenewal,
		SpecialInstructions: strings.TrimSpace(in.SpecialInstructions),
	}
	if err := s.Repo.Create(ctx, &sub); err != nil {
		return nil, err
	}

	saved, err := s.Repo.GetWithVendor(ctx, sub.ID)
	if err != nil {
		return nil, err
	}
	view := NewSubscriptionView(saved)
	return &view, nil
}

func (s *SubscriptionService) ListForCustomer(ctx context.Context, customerID uint, status string) ([]SubscriptionView, error) {
	subs, err := s.Repo.ListForCustomer(ctx, customerID, status)
	if err != nil {
		return nil, err
	}
	return subscriptionViews(subs), nil
}

func (s *SubscriptionService) ListForVendor(ctx context.Context, vendorID uint, status string, limit int) ([]SubscriptionView, error) {
	subs, err := s.Repo.ListForVendor(ctx, vendorID, status, limit)
	if err != nil {
		return nil, err
	}
	return subscriptionViews(subs), nil
}

func subscriptionViews(subs []entity.Subscription) []SubscriptionView {
	out := make([]SubscriptionView, 0, len(subs))
	for i := range subs {
		out = append(out, NewSubscriptionView(&subs[i]))
	}
	return out
}

func (s *SubscriptionService) UpdateStatus(ctx context.Context, customerID, subscriptionID uint, status string) (*SubscriptionView, error) {
	next := entity.SubscriptionStatus(status)
	if !next.Valid() {
		return nil, Validation("Invalid subscription status")
	}
	ok, err := s.Repo.UpdateStatusForCustomer(ctx, customerID, subscriptionID, next)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NotFound("Subscription not found")
	}
	saved, err := s.Repo.GetWithVendor(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	view := NewSubscriptionView(saved)
	return &view, nil
}
