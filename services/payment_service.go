package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/entity"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/pkg/logger"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/repository"

	"gorm.io/gorm"
)

// PaymentService verifies gateway callbacks. It never calls the gateway.
type PaymentService struct {
	DB        *gorm.DB
	Repo      *repository.PaymentRepository
	OrderRepo *repository.OrderRepository
	KeySecret string
	Events    EventPublisher
	Log       *logger.Logger
}

func NewPaymentService(
	db *gorm.DB,
	repo *repository.PaymentRepository,
	orderRepo *repository.OrderRepository,
	keySecret string,
	events EventPublisher,
	log *logger.Logger,
) *PaymentService {
	if events == nil {
		events = NopPublisher{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &PaymentService{
		DB: db, Repo: repo, OrderRepo: orderRepo, KeySecret: keySecret,
		Events: events, Log: log.WithComponent("payments"),
	}
}

type VerifyPaymentInput struct {
	OrderID           uint   `json:"order_id"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// Signature is hex(HMAC-SHA256(secret, "<order_id>|<payment_id>")).
func Signature(secret, rzpOrderID, rzpPaymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(rzpOrderID + "|" + rzpPaymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks the callback signature. When an order is referenced (by id or
// by gateway order id) the attempt is recorded and, unless the order is
// already paid, its payment status is set to paid or failed.
func (s *PaymentService) Verify(ctx context.Context, customerID uint, in VerifyPaymentInput) error {
	if in.RazorpayOrderID == "" || in.RazorpayPaymentID == "" || in.RazorpaySignature == "" {
		return Validation("Payment details are required")
	}
	if s.KeySecret == "" {
		return Unavailable("Payments are not configured")
	}

	expected := Signature(s.KeySecret, in.RazorpayOrderID, in.RazorpayPaymentID)
	valid := hmac.Equal([]byte(expected), []byte(in.RazorpaySignature))

	order, err := s.findOrder(ctx, customerID, in)
	if err != nil {
		return err
	}
	if order != nil {
		if err := s.record(ctx, order, in, valid); err != nil {
			return err
		}
	}

	if !valid {
		return Validation("Invalid payment signature")
	}
	return nil
}

func (s *PaymentService) findOrder(ctx context.Context, customerID uint, in VerifyPaymentInput) (*entity.Order, error) {
	if in.OrderID != 0 {
		o, err := s.OrderRepo.GetOrderForCustomer(ctx, customerID, in.OrderID)
		if err != nil {
			return nil, notFoundOr(err, "Order not found")
		}
		return o, nil
	}
	o, err := s.OrderRepo.FindByRazorpayOrderID(ctx, customerID, in.RazorpayOrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return o, nil
}

func (s *PaymentService) record(ctx context.Context, o *entity.Order, in VerifyPaymentInput, valid bool) error {
	status := entity.PaymentFailed
	var paidAt *time.Time
	if valid {
		status = entity.PaymentPaid
		now := time.Now()
		paidAt = &now
	}

	alreadyPaid := o.PaymentStatus == entity.PaymentPaid

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p := entity.Payment{
			OrderID:           o.ID,
			Amount:            o.TotalAmount,
			RazorpayOrderID:   in.RazorpayOrderID,
			RazorpayPaymentID: in.RazorpayPaymentID,
			Signature:         in.RazorpaySignature,
			Status:            status,
			PaidAt:            paidAt,
		}
		if err := s.Repo.Create(tx, &p); err != nil {
			return err
		}
		// a settled order keeps its payment; later callbacks are only logged
		if alreadyPaid {
			return nil
		}
		updates := map[string]any{"payment_status": status}
		if valid {
			updates["razorpay_order_id"] = in.RazorpayOrderID
			updates["razorpay_payment_id"] = in.RazorpayPaymentID
			updates["payment_signature"] = in.RazorpaySignature
		}
		return s.OrderRepo.UpdatePayment(tx, o.ID, updates)
	})
	if err != nil {
		return err
	}

	if valid && !alreadyPaid {
		ev := OrderEvent{
			Type: EventPaymentVerified, OrderID: o.ID, VendorID: o.VendorID,
			CustomerID: o.CustomerID, Status: string(status), OccurredAt: time.Now(),
		}
		if err := s.Events.PublishOrderEvent(ctx, ev); err != nil {
			s.Log.Warn("publish payment event failed", "order_id", o.ID, "error", err)
		}
	}
	return nil
}
