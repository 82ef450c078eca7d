package entity

import (
	"gorm.io/gorm"
)

// Vendor is a tiffin kitchen. Vendors are deactivated, never deleted.
type Vendor struct {
	gorm.Model
	Username      string `gorm:"size:50;uniqueIndex;not null"`
	Email         string `gorm:"size:120;uniqueIndex;not null"`
	Password      string `json:"-"`
	BusinessName  string `gorm:"size:120;not null"`
	Address       string
	PhoneNumber   string `gorm:"size:20"`
	LicenseNumber string `gorm:"size:50;uniqueIndex;not null"`
	IsVerified    bool
	IsActive      bool

	Menus     []Menu     `json:"-"`
	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
}

// Orderable reports whether consumers may place orders with this vendor.
func (v *Vendor) Orderable() bool { return v.IsActive && v.IsVerified }
