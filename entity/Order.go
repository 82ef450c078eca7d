package entity

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Order is one purchase of a menu. Only the status fields and the
// gateway references change after creation; orders are never deleted.
type Order struct {
	gorm.Model
	OrderType           string        `gorm:"size:20;not null"`
	Quantity            int           `gorm:"not null"`
	TotalAmount         float64       `gorm:"not null"`
	DeliveryAddress     string        `gorm:"not null"`
	DeliveryDate        time.Time     `gorm:"not null"`
	DeliveryTimeSlot    TimeSlot      `gorm:"size:20;not null"`
	SpecialInstructions string        `gorm:"size:200"`
	PaymentMethod       PaymentMethod `gorm:"size:10;not null"`
	PaymentStatus       PaymentStatus `gorm:"size:10;not null"`
	OrderStatus         OrderStatus   `gorm:"size:20;index;not null"`
	IsActive            bool

	RazorpayOrderID   string `gorm:"index"`
	RazorpayPaymentID string
	PaymentSignature  string `json:"-"`

	CustomerID uint `gorm:"index;not null"`
	Customer   User `gorm:"foreignKey:CustomerID" json:"-"`

	VendorID uint   `gorm:"index;not null"`
	Vendor   Vendor `json:"-"`

	MenuID uint `gorm:"index;not null"`
	Menu   Menu `json:"-"`

	// preload only on tracking endpoints
	Tracking *OrderTracking `gorm:"foreignKey:OrderID" json:"-"`
}

// OrderNumber is the human-facing reference shown to customers.
func (o *Order) OrderNumber() string {
	return fmt.Sprintf("#ORD%06d", o.ID)
}
