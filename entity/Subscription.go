package entity

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PlanType string

const (
	PlanWeekly  PlanType = "weekly"
	PlanMonthly PlanType = "monthly"
	PlanCustom  PlanType = "custom"
)

func (p PlanType) Valid() bool {
	return p == PlanWeekly || p == PlanMonthly || p == PlanCustom
}

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionPaused    SubscriptionStatus = "paused"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionCompleted SubscriptionStatus = "completed"
)

func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubscriptionActive, SubscriptionPaused, SubscriptionCancelled, SubscriptionCompleted:
		return true
	}
	return false
}

// SubscriptionPaymentStatus differs from PaymentStatus: plans can be partially paid.
type SubscriptionPaymentStatus string

const (
	SubPaymentPending SubscriptionPaymentStatus = "pending"
	SubPaymentPaid    SubscriptionPaymentStatus = "paid"
	SubPaymentPartial SubscriptionPaymentStatus = "partial"
	SubPaymentFailed  SubscriptionPaymentStatus = "failed"
)

var WeekDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func ValidWeekDay(d string) bool {
	for _, w := range WeekDays {
		if w == d {
			return true
		}
	}
	return false
}

type SpiceLevel string

const (
	SpiceLow    SpiceLevel = "low"
	SpiceMedium SpiceLevel = "medium"
	SpiceHigh   SpiceLevel = "high"
)

func (s SpiceLevel) Valid() bool {
	return s == SpiceLow || s == SpiceMedium || s == SpiceHigh
}

type MealPreferences struct {
	IsVegOnly        bool       `json:"is_veg_only"`
	SpiceLevel       SpiceLevel `json:"spice_level"`
	AvoidIngredients []string   `json:"avoid_ingredients"`
}

// Subscription is a recurring meal plan. MealsDelivered starts at 0.
type Subscription struct {
	gorm.Model
	PlanType            PlanType                  `gorm:"size:10;not null"`
	MealPreferences     datatypes.JSONType[MealPreferences]
	DeliveryAddress     string                    `gorm:"not null"`
	DeliveryTimeSlot    TimeSlot                  `gorm:"size:20;not null"`
	DeliveryDays        datatypes.JSONSlice[string]
	StartDate           time.Time                 `gorm:"not null"`
	EndDate             time.Time                 `gorm:"not null"`
	PricePerMeal        float64                   `gorm:"not null"`
	TotalMeals          int                       `gorm:"not null"`
	TotalAmount         float64                   `gorm:"not null"`
	MealsDelivered      int                       `gorm:"not null"`
	PaymentStatus       SubscriptionPaymentStatus `gorm:"size:10;not null"`
	SubscriptionStatus  SubscriptionStatus        `gorm:"size:10;index;not null"`
	AutoRenewal         bool
	SpecialInstructions string `gorm:"size:200"`

	CustomerID uint `gorm:"index;not null"`
	Customer   User `gorm:"foreignKey:CustomerID" json:"-"`

	VendorID uint   `gorm:"index;not null"`
	Vendor   Vendor `json:"-"`
}
