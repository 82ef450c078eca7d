package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/entity"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/pkg/logger"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/repository"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/utils"

	"gorm.io/gorm"
)

type TrackingService struct {
	DB        *gorm.DB
	Repo      *repository.TrackingRepository
	OrderRepo *repository.OrderRepository
	Notifier  TrackingNotifier
	Events    EventPublisher
	Log       *logger.Logger
}

func NewTrackingService(
	db *gorm.DB,
	repo *repository.TrackingRepository,
	orderRepo *repository.OrderRepository,
	notifier TrackingNotifier,
	events EventPublisher,
	log *logger.Logger,
) *TrackingService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if events == nil {
		events = NopPublisher{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TrackingService{
		DB: db, Repo: repo, OrderRepo: orderRepo,
		Notifier: notifier, Events: events, Log: log.WithComponent("tracking"),
	}
}

// ----- DTOs from Controller -----
type TrackingUpdateInput struct {
	CurrentStatus         string                 `json:"current_status"`
	EstimatedDeliveryTime string                 `json:"estimated_delivery_time"`
	DeliveryPerson        *entity.DeliveryPerson `json:"delivery_person"`
	CurrentLocation       *entity.Location       `json:"current_location"`
	ProgressPercentage    *int                   `json:"progress_percentage"`
	DeliveryInstructions  string                 `json:"delivery_instructions"`
	Notes                 string                 `json:"notes"`
}

// Requester identifies who is asking for live data.
type Requester struct {
	ID   uint
	Role string // utils.AudienceCustomer or utils.AudienceVendor
}

func (r Requester) ownerColumn() string {
	if r.Role == utils.AudienceVendor {
		return "vendor_id"
	}
	return "customer_id"
}

// ----- Vendor update -----

// Upsert applies a vendor update, creating the tracking row on first use.
// The tracking row, its history/route appends and the order status mirror
// commit together.
func (s *TrackingService) Upsert(ctx context.Context, vendorID, orderID uint, in TrackingUpdateInput) (*TrackingSummary, error) {
	var next entity.TrackingStatus
	if in.CurrentStatus != "" {
		next = entity.TrackingStatus(in.CurrentStatus)
		if !next.Valid() {
			return nil, Validation("Invalid tracking status")
		}
		if next == entity.TrackingPlaced {
			return nil, Validation("Order status cannot be set back to placed")
		}
	}
	var eta *time.Time
	if in.EstimatedDeliveryTime != "" {
		t, ok := ParseDate(in.EstimatedDeliveryTime)
		if !ok {
			return nil, Validation("Invalid estimated delivery time")
		}
		eta = &t
	}

	order, err := s.OrderRepo.GetOrderForVendor(ctx, vendorID, orderID)
	if err != nil {
		return nil, notFoundOr(err, "Order not found")
	}

	var tracking *entity.OrderTracking
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		t, err := s.Repo.FindByOrderID(tx, order.ID)
		if err != nil {
			return err
		}
		if t == nil {
			initial := next
			if initial == "" {
				initial = entity.TrackingStatus(order.OrderStatus)
			}
			t = &entity.OrderTracking{OrderID: order.ID, CurrentStatus: initial, IsActive: true}
			if err := s.Repo.Create(tx, t); err != nil {
				return err
			}
		}

		now := time.Now()
		if next != "" {
			t.CurrentStatus = next
			if err := s.OrderRepo.UpdateStatus(tx, order.ID, next.OrderStatus()); err != nil {
				return err
			}
			h := entity.StatusHistory{TrackingID: t.ID, Status: next, Timestamp: now, Notes: in.Notes, UpdatedBy: "vendor"}
			if err := s.Repo.AppendHistory(tx, &h); err != nil {
				return err
			}
			if next == entity.TrackingDelivered {
				t.ActualDeliveryTime = &now
			}
		}

		if eta != nil {
			t.EstimatedDeliveryTime = eta
		}
		if p := in.DeliveryPerson; p != nil {
			mergeDeliveryPerson(&t.DeliveryPerson, *p)
		}
		if loc := in.CurrentLocation; loc != nil {
			t.CurrentLocation = *loc
			point := entity.RoutePoint{
				TrackingID: t.ID,
				Latitude:   loc.Latitude,
				Longitude:  loc.Longitude,
				Status:     t.CurrentStatus,
				Timestamp:  now,
			}
			if err := s.Repo.AppendRoute(tx, &point); err != nil {
				return err
			}
		}
		if in.ProgressPercentage != nil {
			t.ProgressPercentage = clampProgress(*in.ProgressPercentage)
		}
		if t.CurrentStatus == entity.TrackingDelivered {
			t.ProgressPercentage = 100
		}
		if in.DeliveryInstructions != "" {
			t.DeliveryInstructions = in.DeliveryInstructions
		}

		if err := s.Repo.Save(tx, t); err != nil {
			return err
		}
		tracking = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Notifier.NotifyTracking(order.ID, NewLiveTracking(tracking))
	ev := OrderEvent{
		Type: EventTrackingUpdated, OrderID: order.ID, VendorID: order.VendorID,
		CustomerID: order.CustomerID, Status: string(tracking.CurrentStatus), OccurredAt: time.Now(),
	}
	if err := s.Events.PublishOrderEvent(ctx, ev); err != nil {
		s.Log.Warn("publish tracking event failed", "order_id", order.ID, "error", err)
	}

	return &TrackingSummary{
		CurrentStatus:         tracking.CurrentStatus,
		EstimatedDeliveryTime: tracking.EstimatedDeliveryTime,
		DeliveryPerson:        deliveryPerson(tracking),
		CurrentLocation:       currentLocation(tracking),
		ProgressPercentage:    tracking.ProgressPercentage,
	}, nil
}

// shallow merge: only supplied fields overwrite
func mergeDeliveryPerson(dst *entity.DeliveryPerson, src entity.DeliveryPerson) {
	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.Phone != "" {
		dst.Phone = src.Phone
	}
	if src.VehicleNumber != "" {
		dst.VehicleNumber = src.VehicleNumber
	}
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// ----- Reads -----

// ConsumerDetail returns the order header and its full tracking (nil before
// the vendor's first update).
func (s *TrackingService) ConsumerDetail(ctx context.Context, customerID, orderID uint) (*OrderDetail, *TrackingView, error) {
	o, err := s.OrderRepo.GetOrderForCustomer(ctx, customerID, orderID)
	if err != nil {
		return nil, nil, notFoundOr(err, "Order not found")
	}
	t, err := s.Repo.GetFull(ctx, o.ID)
	if err != nil {
		return nil, nil, err
	}

	detail := &OrderDetail{
		ID:                  o.ID,
		OrderNumber:         o.OrderNumber(),
		MenuName:            o.Menu.Name,
		VendorName:          o.Vendor.BusinessName,
		VendorPhone:         o.Vendor.PhoneNumber,
		VendorAddress:       o.Vendor.Address,
		TotalAmount:         o.TotalAmount,
		Quantity:            o.Quantity,
		DeliveryAddress:     o.DeliveryAddress,
		DeliveryTimeSlot:    o.DeliveryTimeSlot,
		SpecialInstructions: o.SpecialInstructions,
		PaymentMethod:       o.PaymentMethod,
		PaymentStatus:       o.PaymentStatus,
		OrderStatus:         o.OrderStatus,
		CreatedAt:           o.CreatedAt,
	}
	return detail, NewTrackingView(t), nil
}

func (s *TrackingService) ConsumerList(ctx context.Context, customerID uint, status string, limit int) ([]TrackedOrder, error) {
	orders, err := s.OrderRepo.ListWithTracking(ctx, "customer_id", customerID, repository.OrderFilter{Status: status}, limit)
	if err != nil {
		return nil, err
	}
	out := make([]TrackedOrder, 0, len(orders))
	for i := range orders {
		row := trackedOrder(&orders[i])
		row.VendorName = orders[i].Vendor.BusinessName
		out = append(out, row)
	}
	return out, nil
}

// VendorList adds customer contact and status history. day restricts
// created_at to one calendar day.
func (s *TrackingService) VendorList(ctx context.Context, vendorID uint, status string, day *time.Time, limit int) ([]TrackedOrder, error) {
	orders, err := s.OrderRepo.ListWithTracking(ctx, "vendor_id", vendorID, repository.OrderFilter{Status: status, Day: day}, limit)
	if err != nil {
		return nil, err
	}
	out := make([]TrackedOrder, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		row := trackedOrder(o)
		row.CustomerName = o.Customer.FullName()
		row.CustomerEmail = o.Customer.Email
		row.CustomerPhone = o.Customer.Phone
		row.SpecialInstructions = o.SpecialInstructions
		row.PaymentMethod = o.PaymentMethod
		row.PaymentStatus = o.PaymentStatus
		row.StatusHistory = []entity.StatusHistory{}
		if o.Tracking != nil && o.Tracking.StatusHistory != nil {
			row.StatusHistory = o.Tracking.StatusHistory
		}
		out = append(out, row)
	}
	return out, nil
}

// without tracking the order status stands in and progress is 0
func trackedOrder(o *entity.Order) TrackedOrder {
	row := TrackedOrder{
		OrderID:          o.ID,
		OrderNumber:      o.OrderNumber(),
		MenuName:         o.Menu.Name,
		Quantity:         o.Quantity,
		TotalAmount:      o.TotalAmount,
		DeliveryAddress:  o.DeliveryAddress,
		DeliveryTimeSlot: o.DeliveryTimeSlot,
		OrderStatus:      o.OrderStatus,
		CurrentStatus:    entity.TrackingStatus(o.OrderStatus),
		CreatedAt:        o.CreatedAt,
	}
	if t := o.Tracking; t != nil {
		row.CurrentStatus = t.CurrentStatus
		row.ProgressPercentage = t.ProgressPercentage
		row.EstimatedDeliveryTime = t.EstimatedDeliveryTime
		row.DeliveryPerson = deliveryPerson(t)
	}
	return row
}

// Live is the polling endpoint. Orders that are not the requester's are
// filtered by the query, not after it.
func (s *TrackingService) Live(ctx context.Context, who Requester, csvIDs string) ([]LiveTracking, error) {
	if strings.TrimSpace(csvIDs) == "" {
		return nil, Validation("Order IDs required")
	}
	ids, err := parseIDList(csvIDs)
	if err != nil {
		return nil, err
	}

	rows, err := s.Repo.ListLive(ctx, who.ownerColumn(), who.ID, ids)
	if err != nil {
		return nil, err
	}
	out := make([]LiveTracking, 0, len(rows))
	for i := range rows {
		out = append(out, NewLiveTracking(&rows[i]))
	}
	return out, nil
}

// LiveOne is used by the websocket stream for its initial frame.
// ok is false when the order is not the requester's.
func (s *TrackingService) LiveOne(ctx context.Context, who Requester, orderID uint) (view *LiveTracking, ok bool, err error) {
	switch who.Role {
	case utils.AudienceVendor:
		_, err = s.OrderRepo.GetOrderForVendor(ctx, who.ID, orderID)
	default:
		_, err = s.OrderRepo.GetOrderForCustomer(ctx, who.ID, orderID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	rows, err := s.Repo.ListLive(ctx, who.ownerColumn(), who.ID, []uint{orderID})
	if err != nil {
		return nil, true, err
	}
	if len(rows) == 0 {
		return nil, true, nil
	}
	v := NewLiveTracking(&rows[0])
	return &v, true, nil
}

func parseIDList(csv string) ([]uint, error) {
	parts := strings.Split(csv, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseUint(p, 10, 64)
		if err != nil || id == 0 {
			return nil, Validation("Invalid order id: " + p)
		}
		ids = append(ids, uint(id))
	}
	if len(ids) == 0 {
		return nil, Validation("Order IDs required")
	}
	return ids, nil
}
