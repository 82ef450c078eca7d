package entity

import (
	"time"

	"gorm.io/gorm"
)

// Feedback is a rating left on a delivered order. One per order.
type Feedback struct {
	gorm.Model
	Rating            int    `gorm:"not null"`
	Comment           string `gorm:"size:500"`
	VendorResponse    string `gorm:"size:500"`
	VendorRespondedAt *time.Time

	OrderID uint  `gorm:"uniqueIndex;not null"`
	Order   Order `json:"-"`

	CustomerID uint `gorm:"index;not null"`
	Customer   User `gorm:"foreignKey:CustomerID" json:"-"`

	VendorID uint   `gorm:"index;not null"`
	Vendor   Vendor `json:"-"`

	MenuID uint `gorm:"index"`
	Menu   Menu `json:"-"`
}
