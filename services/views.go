package services

import (
	"time"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/entity"
)

type MenuSummary struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	FullDabbaPrice float64   `json:"full_dabba_price"`
	Date           time.Time `json:"date"`
}

type VendorSummary struct {
	ID           uint   `json:"id"`
	BusinessName string `json:"business_name"`
	PhoneNumber  string `json:"phone_number"`
	Address      string `json:"address"`
}

type CustomerSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func menuSummary(m *entity.Menu) *MenuSummary {
	if m == nil || m.ID == 0 {
		return nil
	}
	return &MenuSummary{ID: m.ID, Name: m.Name, FullDabbaPrice: m.FullDabbaPrice, Date: m.Date}
}

func vendorSummary(v *entity.Vendor) *VendorSummary {
	if v == nil || v.ID == 0 {
		return nil
	}
	return &VendorSummary{ID: v.ID, BusinessName: v.BusinessName, PhoneNumber: v.PhoneNumber, Address: v.Address}
}

func customerSummary(u *entity.User) *CustomerSummary {
	if u == nil || u.ID == 0 {
		return nil
	}
	return &CustomerSummary{ID: u.ID, Name: u.FullName(), Email: u.Email, Phone: u.Phone}
}

// ---------------- Orders ----------------

type OrderView struct {
	ID                  uint                 `json:"id"`
	OrderNumber         string               `json:"order_number"`
	CustomerID          uint                 `json:"customer_id"`
	VendorID            uint                 `json:"vendor_id"`
	MenuID              uint                 `json:"menu_id"`
	OrderType           string               `json:"order_type"`
	Quantity            int                  `json:"quantity"`
	TotalAmount         float64              `json:"total_amount"`
	DeliveryAddress     string               `json:"delivery_address"`
	DeliveryDate        time.Time            `json:"delivery_date"`
	DeliveryTimeSlot    entity.TimeSlot      `json:"delivery_time_slot"`
	SpecialInstructions string               `json:"special_instructions"`
	PaymentMethod       entity.PaymentMethod `json:"payment_method"`
	PaymentStatus       entity.PaymentStatus `json:"payment_status"`
	OrderStatus         entity.OrderStatus   `json:"order_status"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`

	Menu     *MenuSummary     `json:"menu,omitempty"`
	Vendor   *VendorSummary   `json:"vendor,omitempty"`
	Customer *CustomerSummary `json:"customer,omitempty"`
}

func NewOrderView(o *entity.Order) OrderView {
	return OrderView{
		ID:                  o.ID,
		OrderNumber:         o.OrderNumber(),
		CustomerID:          o.CustomerID,
		VendorID:            o.VendorID,
		MenuID:              o.MenuID,
		OrderType:           o.OrderType,
		Quantity:            o.Quantity,
		TotalAmount:         o.TotalAmount,
		DeliveryAddress:     o.DeliveryAddress,
		DeliveryDate:        o.DeliveryDate,
		DeliveryTimeSlot:    o.DeliveryTimeSlot,
		SpecialInstructions: o.SpecialInstructions,
		PaymentMethod:       o.PaymentMethod,
		PaymentStatus:       o.PaymentStatus,
		OrderStatus:         o.OrderStatus,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
		Menu:                menuSummary(&o.Menu),
		Vendor:              vendorSummary(&o.Vendor),
		Customer:            customerSummary(&o.Customer),
	}
}

// ---------------- Tracking ----------------

type TrackingView struct {
	OrderID               uint                   `json:"order_id"`
	CurrentStatus         entity.TrackingStatus  `json:"current_status"`
	EstimatedDeliveryTime *time.Time             `json:"estimated_delivery_time"`
	ActualDeliveryTime    *time.Time             `json:"actual_delivery_time"`
	DeliveryPerson        *entity.DeliveryPerson `json:"delivery_person"`
	CurrentLocation       *entity.Location       `json:"current_location"`
	ProgressPercentage    int                    `json:"progress_percentage"`
	DeliveryInstructions  string                 `json:"delivery_instructions"`
	DeliveryRoute         []entity.RoutePoint    `json:"delivery_route"`
	StatusHistory         []entity.StatusHistory `json:"status_history"`
	CreatedAt             time.Time              `json:"created_at"`
	UpdatedAt             time.Time              `json:"updated_at"`
}

func deliveryPerson(t *entity.OrderTracking) *entity.DeliveryPerson {
	if t.DeliveryPerson.IsZero() {
		return nil
	}
	p := t.DeliveryPerson
	return &p
}

func currentLocation(t *entity.OrderTracking) *entity.Location {
	if t.CurrentLocation.IsZero() {
		return nil
	}
	l := t.CurrentLocation
	return &l
}

func NewTrackingView(t *entity.OrderTracking) *TrackingView {
	if t == nil {
		return nil
	}
	route := t.DeliveryRoute
	if route == nil {
		route = []entity.RoutePoint{}
	}
	history := t.StatusHistory
	if history == nil {
		history = []entity.StatusHistory{}
	}
	return &TrackingView{
		OrderID:               t.OrderID,
		CurrentStatus:         t.CurrentStatus,
		EstimatedDeliveryTime: t.EstimatedDeliveryTime,
		ActualDeliveryTime:    t.ActualDeliveryTime,
		DeliveryPerson:        deliveryPerson(t),
		CurrentLocation:       currentLocation(t),
		ProgressPercentage:    t.ProgressPercentage,
		DeliveryInstructions:  t.DeliveryInstructions,
		DeliveryRoute:         route,
		StatusHistory:         history,
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             t.UpdatedAt,
	}
}

// TrackingSummary is what a vendor gets back from an update.
type TrackingSummary struct {
	CurrentStatus         entity.TrackingStatus  `json:"current_status"`
	EstimatedDeliveryTime *time.Time             `json:"estimated_delivery_time"`
	DeliveryPerson        *entity.DeliveryPerson `json:"delivery_person"`
	CurrentLocation       *entity.Location       `json:"current_location"`
	ProgressPercentage    int                    `json:"progress_percentage"`
}

type LiveTracking struct {
	OrderID               uint                   `json:"order_id"`
	CurrentStatus         entity.TrackingStatus  `json:"current_status"`
	CurrentLocation       *entity.Location       `json:"current_location"`
	ProgressPercentage    int                    `json:"progress_percentage"`
	EstimatedDeliveryTime *time.Time             `json:"estimated_delivery_time"`
	DeliveryPerson        *entity.DeliveryPerson `json:"delivery_person"`
	LastUpdated           time.Time              `json:"last_updated"`
}

func NewLiveTracking(t *entity.OrderTracking) LiveTracking {
	return LiveTracking{
		OrderID:               t.OrderID,
		CurrentStatus:         t.CurrentStatus,
		CurrentLocation:       currentLocation(t),
		ProgressPercentage:    t.ProgressPercentage,
		EstimatedDeliveryTime: t.EstimatedDeliveryTime,
		DeliveryPerson:        deliveryPerson(t),
		LastUpdated:           t.UpdatedAt,
	}
}

// TrackedOrder is one row of the tracking dashboards. Customer fields are
// only filled for vendors; vendor fields only for customers.
type TrackedOrder struct {
	OrderID               uint                   `json:"order_id"`
	OrderNumber           string                 `json:"order_number"`
	MenuName              string                 `json:"menu_name"`
	VendorName            string                 `json:"vendor_name,omitempty"`
	CustomerName          string                 `json:"customer_name,omitempty"`
	CustomerEmail         string                 `json:"customer_email,omitempty"`
	CustomerPhone         string                 `json:"customer_phone,omitempty"`
	Quantity              int                    `json:"quantity"`
	TotalAmount           float64                `json:"total_amount"`
	DeliveryAddress       string                 `json:"delivery_address"`
	DeliveryTimeSlot      entity.TimeSlot        `json:"delivery_time_slot"`
	SpecialInstructions   string                 `json:"special_instructions,omitempty"`
	PaymentMethod         entity.PaymentMethod   `json:"payment_method,omitempty"`
	PaymentStatus         entity.PaymentStatus   `json:"payment_status,omitempty"`
	OrderStatus           entity.OrderStatus     `json:"order_status"`
	CurrentStatus         entity.TrackingStatus  `json:"current_status"`
	ProgressPercentage    int                    `json:"progress_percentage"`
	EstimatedDeliveryTime *time.Time             `json:"estimated_delivery_time"`
	DeliveryPerson        *entity.DeliveryPerson `json:"delivery_person"`
	StatusHistory         []entity.StatusHistory `json:"status_history,omitempty"`
	CreatedAt             time.Time              `json:"created_at"`
}

// OrderDetail is the consumer-facing order header on the tracking page.
type OrderDetail struct {
	ID                  uint                 `json:"id"`
	OrderNumber         string               `json:"order_number"`
	MenuName            string               `json:"menu_name"`
	VendorName          string               `json:"vendor_name"`
	VendorPhone         string               `json:"vendor_phone"`
	VendorAddress       string               `json:"vendor_address"`
	TotalAmount         float64              `json:"total_amount"`
	Quantity            int                  `json:"quantity"`
	DeliveryAddress     string               `json:"delivery_address"`
	DeliveryTimeSlot    entity.TimeSlot      `json:"delivery_time_slot"`
	SpecialInstructions string               `json:"special_instructions"`
	PaymentMethod       entity.PaymentMethod `json:"payment_method"`
	PaymentStatus       entity.PaymentStatus `json:"payment_status"`
	OrderStatus         entity.OrderStatus   `json:"order_status"`
	CreatedAt           time.Time            `json:"created_at"`
}

// ---------------- Subscriptions ----------------

type SubscriptionView struct {
	ID                  uint                             `json:"id"`
	CustomerID          uint                             `json:"customer_id"`
	VendorID            uint                             `json:"vendor_id"`
	PlanType            entity.PlanType                  `json:"plan_type"`
	MealPreferences     entity.MealPreferences           `json:"meal_preferences"`
	DeliveryAddress     string                           `json:"delivery_address"`
	DeliveryTimeSlot    entity.TimeSlot                  `json:"delivery_time_slot"`
	DeliveryDays        []string                         `json:"delivery_days"`
	StartDate           time.Time                        `json:"start_date"`
	EndDate             time.Time                        `json:"end_date"`
	PricePerMeal        float64                          `json:"price_per_meal"`
	TotalMeals          int                              `json:"total_meals"`
	TotalAmount         float64                          `json:"total_amount"`
	MealsDelivered      int                              `json:"meals_delivered"`
	PaymentStatus       entity.SubscriptionPaymentStatus `json:"payment_status"`
	SubscriptionStatus  entity.SubscriptionStatus        `json:"subscription_status"`
	AutoRenewal         bool                             `json:"auto_renewal"`
	SpecialInstructions string                           `json:"special_instructions"`
	CreatedAt           time.Time                        `json:"created_at"`

	Vendor   *VendorSummary   `json:"vendor,omitempty"`
	Customer *CustomerSummary `json:"customer,omitempty"`
}

func NewSubscriptionView(s *entity.Subscription) SubscriptionView {
	days := []string(s.DeliveryDays)
	if days == nil {
		days = []string{}
	}
	return SubscriptionView{
		ID:                  s.ID,
		CustomerID:          s.CustomerID,
		VendorID:            s.VendorID,
		PlanType:            s.PlanType,
		MealPreferences:     s.MealPreferences.Data(),
		DeliveryAddress:     s.DeliveryAddress,
		DeliveryTimeSlot:    s.DeliveryTimeSlot,
		DeliveryDays:        days,
		StartDate:           s.StartDate,
		EndDate:             s.EndDate,
		PricePerMeal:        s.PricePerMeal,
		TotalMeals:          s.TotalMeals,
		TotalAmount:         s.TotalAmount,
		MealsDelivered:      s.MealsDelivered,
		PaymentStatus:       s.PaymentStatus,
		SubscriptionStatus:  s.SubscriptionStatus,
		AutoRenewal:         s.AutoRenewal,
		SpecialInstructions: s.SpecialInstructions,
		CreatedAt:           s.CreatedAt,
		Vendor:              vendorSummary(&s.Vendor),
		Customer:            customerSummary(&s.Customer),
	}
}

// ---------------- Feedback ----------------

type FeedbackView struct {
	ID                uint             `json:"id"`
	OrderID           uint             `json:"order_id"`
	Rating            int              `json:"rating"`
	Comment           string           `json:"comment"`
	VendorResponse    string           `json:"vendor_response,omitempty"`
	VendorRespondedAt *time.Time       `json:"vendor_responded_at,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	Menu              *MenuSummary     `json:"menu,omitempty"`
	Vendor            *VendorSummary   `json:"vendor,omitempty"`
	Customer          *CustomerSummary `json:"customer,omitempty"`
}

func NewFeedbackView(f *entity.Feedback) FeedbackView {
	return FeedbackView{
		ID:                f.ID,
		OrderID:           f.OrderID,
		Rating:            f.Rating,
		Comment:           f.Comment,
		VendorResponse:    f.VendorResponse,
		VendorRespondedAt: f.VendorRespondedAt,
		CreatedAt:         f.CreatedAt,
		Menu:              menuSummary(&f.Menu),
		Vendor:            vendorSummary(&f.Vendor),
		Customer:          customerSummary(&f.Customer),
	}
}

// ---------------- Catalog ----------------

type MenuItemView struct {
	ID               uint                `json:"id"`
	VendorID         uint                `json:"vendor_id"`
	Name             string              `json:"name"`
	Category         entity.MenuCategory `json:"category"`
	Price            float64             `json:"price"`
	Description      string              `json:"description"`
	Image            string              `json:"image"`
	IsVegetarian     bool                `json:"is_vegetarian"`
	IsSpicy          bool                `json:"is_spicy"`
	IsAvailableToday bool                `json:"is_available_today"`
}

func NewMenuItemView(m *entity.MenuItem) MenuItemView {
	return MenuItemView{
		ID: m.ID, VendorID: m.VendorID, Name: m.Name, Category: m.Category, Price: m.Price,
		Description: m.Description, Image: m.Image, IsVegetarian: m.IsVegetarian,
		IsSpicy: m.IsSpicy, IsAvailableToday: m.IsAvailableToday,
	}
}

type MenuView struct {
	ID              uint           `json:"id"`
	VendorID        uint           `json:"vendor_id"`
	Name            string         `json:"name"`
	Date            time.Time      `json:"date"`
	Image           string         `json:"image"`
	MainItems       []uint         `json:"main_items"`
	SideItems       []uint         `json:"side_items"`
	Extras          []uint         `json:"extras"`
	IsVegOnly       bool           `json:"is_veg_only"`
	FullDabbaPrice  float64        `json:"full_dabba_price"`
	MaxDabbas       int            `json:"max_dabbas"`
	DabbasSold      int            `json:"dabbas_sold"`
	DabbasRemaining int            `json:"dabbas_remaining"`
	TodaysSpecial   string         `json:"todays_special"`
	CookingStyle    string         `json:"cooking_style"`
	IsActive        bool           `json:"is_active"`
	Vendor          *VendorSummary `json:"vendor,omitempty"`
}

func nonNil(ids []uint) []uint {
	if ids == nil {
		return []uint{}
	}
	return ids
}

func NewMenuView(m *entity.Menu) MenuView {
	return MenuView{
		ID:              m.ID,
		VendorID:        m.VendorID,
		Name:            m.Name,
		Date:            m.Date,
		Image:           m.Image,
		MainItems:       nonNil(m.MainItems),
		SideItems:       nonNil(m.SideItems),
		Extras:          nonNil(m.Extras),
		IsVegOnly:       m.IsVegOnly,
		FullDabbaPrice:  m.FullDabbaPrice,
		MaxDabbas:       m.MaxDabbas,
		DabbasSold:      m.DabbasSold,
		DabbasRemaining: m.Remaining(),
		TodaysSpecial:   m.TodaysSpecial,
		CookingStyle:    m.CookingStyle,
		IsActive:        m.IsActive,
		Vendor:          vendorSummary(&m.Vendor),
	}
}

// ---------------- Accounts ----------------

type UserProfile struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

func NewUserProfile(u *entity.User) UserProfile {
	return UserProfile{ID: u.ID, Username: u.Username, Email: u.Email, FirstName: u.FirstName, LastName: u.LastName, Phone: u.Phone}
}

type VendorProfile struct {
	ID            uint   `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	BusinessName  string `json:"business_name"`
	Address       string `json:"address"`
	PhoneNumber   string `json:"phone_number"`
	LicenseNumber string `json:"license_number"`
	IsVerified    bool   `json:"is_verified"`
	IsActive      bool   `json:"is_active"`
}

func NewVendorProfile(v *entity.Vendor) VendorProfile {
	return VendorProfile{
		ID: v.ID, Username: v.Username, Email: v.Email, BusinessName: v.BusinessName,
		Address: v.Address, PhoneNumber: v.PhoneNumber, LicenseNumber: v.LicenseNumber,
		IsVerified: v.IsVerified, IsActive: v.IsActive,
	}
}
