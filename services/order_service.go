package services

import (
	"context"
	"strings"
	"time"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/entity"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/pkg/logger"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/repository"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/utils"

	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	Events   EventPublisher
	Log      *logger.Logger
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	events EventPublisher,
	log *logger.Logger,
) *OrderService {
	if events == nil {
		events = NopPublisher{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, Events: events, Log: log.WithComponent("orders")}
}

// ----- DTOs from Controller -----
type CreateOrderInput struct {
	MenuID              uint   `json:"menu_id"`
	VendorID            uint   `json:"vendor_id"`
	Quantity            int    `json:"quantity" binding:"omitempty,min=1"`
	DeliveryAddress     string `json:"delivery_address"`
	DeliveryDate        string `json:"delivery_date"`
	DeliveryTimeSlot    string `json:"delivery_time_slot" binding:"omitempty,timeslot"`
	SpecialInstructions string `json:"special_instructions"`
	PaymentMethod       string `json:"payment_method" binding:"omitempty,oneof=cod upi card wallet"`
}

type OrderPage struct {
	Orders     []OrderView
	Pagination utils.Pagination
}

// ----- Create -----
func (s *OrderService) Create(ctx context.Context, customerID uint, in CreateOrderInput) (*OrderView, error) {
	in.DeliveryAddress = strings.TrimSpace(in.DeliveryAddress)
	if in.MenuID == 0 || in.VendorID == 0 || in.DeliveryAddress == "" || in.DeliveryDate == "" || in.DeliveryTimeSlot == "" {
		return nil, Validation("Menu, vendor, delivery address, date, and time slot are required")
	}
	deliveryDate, ok := ParseDate(in.DeliveryDate)
	if !ok {
		return nil, Validation("Invalid delivery date")
	}
	slot := entity.TimeSlot(in.DeliveryTimeSlot)
	if !slot.Valid() {
		return nil, Validation("Invalid delivery time slot")
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if in.Quantity < 1 {
		return nil, Validation("Quantity must be at least 1")
	}
	method := entity.PaymentCOD
	if in.PaymentMethod != "" {
		method = entity.PaymentMethod(in.PaymentMethod)
		if !method.Valid() {
			return nil, Validation("Invalid payment method")
		}
	}

	menu, err := s.MenuRepo.FindByID(ctx, in.MenuID)
	if err != nil {
		return nil, notFoundOr(err, "Menu not found")
	}
	if menu.VendorID != in.VendorID {
		return nil, NotFound("Menu not found")
	}
	if !menu.Vendor.Orderable() {
		return nil, Unavailable("Vendor is not available for orders")
	}
	if !menu.IsActive {
		return nil, Unavailable("This menu is no longer available")
	}
	if menu.Remaining() < in.Quantity {
		return nil, InsufficientInventory(menu.Remaining())
	}

	order := entity.Order{
		CustomerID:          customerID,
		VendorID:            in.VendorID,
		MenuID:              menu.ID,
		OrderType:           entity.OrderTypeOneTime,
		Quantity:            in.Quantity,
		TotalAmount:         menu.FullDabbaPrice * float64(in.Quantity),
		DeliveryAddress:     in.DeliveryAddress,
		DeliveryDate:        deliveryDate,
		DeliveryTimeSlot:    slot,
		SpecialInstructions: strings.TrimSpace(in.SpecialInstructions),
		PaymentMethod:       method,
		PaymentStatus:       entity.PaymentPending,
		OrderStatus:         entity.OrderPlaced,
		IsActive:            true,
	}

	var created *entity.Order
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		// a concurrent order may have taken the last dabbas since the check above
		affected, err := s.MenuRepo.IncrementSoldGuard(tx, menu.ID, in.Quantity)
		if err != nil {
			return err
		}
		if affected == 0 {
			remaining, err := s.MenuRepo.Remaining(tx, menu.ID)
			if err != nil {
				return err
			}
			return InsufficientInventory(remaining)
		}
		created, err = s.Repo.GetWithSummaries(tx, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, EventOrderCreated, created)
	view := NewOrderView(created)
	return &view, nil
}

// ----- List -----
func (s *OrderService) ListForCustomer(ctx context.Context, customerID uint, status string, page, limit int) (*OrderPage, error) {
	orders, total, err := s.Repo.ListForCustomer(ctx, customerID, repository.OrderFilter{Status: status}, utils.Offset(page, limit), limit)
	if err != nil {
		return nil, err
	}
	return newOrderPage(orders, page, limit, total), nil
}

func (s *OrderService) ListForVendor(ctx context.Context, vendorID uint, status string, page, limit int) (*OrderPage, error) {
	orders, total, err := s.Repo.ListForVendor(ctx, vendorID, repository.OrderFilter{Status: status}, utils.Offset(page, limit), limit)
	if err != nil {
		return nil, err
	}
	return newOrderPage(orders, page, limit, total), nil
}

func newOrderPage(orders []entity.Order, page, limit int, total int64) *OrderPage {
	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, NewOrderView(&orders[i]))
	}
	return &OrderPage{Orders: views, Pagination: utils.NewPagination(page, limit, total)}
}

func (s *OrderService) publish(ctx context.Context, eventType string, o *entity.Order) {
	ev := OrderEvent{
		Type:       eventType,
		OrderID:    o.ID,
		VendorID:   o.VendorID,
		CustomerID: o.CustomerID,
		Status:     string(o.OrderStatus),
		OccurredAt: time.Now(),
	}
	if err := s.Events.PublishOrderEvent(ctx, ev); err != nil {
		s.Log.Warn("publish order event failed", "type", eventType, "order_id", o.ID, "error", err)
	}
}
