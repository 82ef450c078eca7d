package entity

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const DefaultMaxDabbas = 30

// Menu is a vendor's offering for one date. DabbasSold never exceeds MaxDabbas.
type Menu struct {
	gorm.Model
	Name           string    `gorm:"size:100;not null"`
	Date           time.Time `gorm:"index;not null"`
	Image          string
	IsVegOnly      bool
	FullDabbaPrice float64 `gorm:"not null"`
	MaxDabbas      int     `gorm:"not null"`
	DabbasSold     int     `gorm:"not null"`
	TodaysSpecial  string  `gorm:"size:200"`
	CookingStyle   string  `gorm:"size:100"`
	IsActive       bool    `gorm:"index"`

	// item-id sets
	MainItems datatypes.JSONSlice[uint]
	SideItems datatypes.JSONSlice[uint]
	Extras    datatypes.JSONSlice[uint]

	VendorID uint   `gorm:"index;not null"`
	Vendor   Vendor `json:"-"` // preload when the vendor summary is needed
}

func (m *Menu) Remaining() int { return m.MaxDabbas - m.DabbasSold }

// ItemIDs returns every item id referenced by the menu.
func (m *Menu) ItemIDs() []uint {
	ids := make([]uint, 0, len(m.MainItems)+len(m.SideItems)+len(m.Extras))
	ids = append(ids, m.MainItems...)
	ids = append(ids, m.SideItems...)
	return append(ids, m.Extras...)
}
