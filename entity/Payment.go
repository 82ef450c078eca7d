package entity

import (
	"time"

	"gorm.io/gorm"
)

// Payment records one gateway callback for an order, successful or not.
type Payment struct {
	gorm.Model
	Amount            float64       `json:"amount"`
	RazorpayOrderID   string        `gorm:"index" json:"razorpay_order_id"`
	RazorpayPaymentID string        `json:"razorpay_payment_id"`
	Signature         string        `json:"-"`
	Status            PaymentStatus `gorm:"size:20;not null" json:"status"`
	PaidAt            *time.Time    `json:"paid_at,omitempty"`

	OrderID uint  `gorm:"index;not null" json:"order_id"`
	Order   Order `json:"-"`
}
