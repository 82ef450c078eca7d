package entity

import (
	"gorm.io/gorm"
)

type MenuCategory string

const (
	CategoryRotiBread   MenuCategory = "roti_bread"
	CategorySabzi       MenuCategory = "sabzi"
	CategoryDal         MenuCategory = "dal"
	CategoryRiceItem    MenuCategory = "rice_item"
	CategoryNonVeg      MenuCategory = "non_veg"
	CategoryPicklePapad MenuCategory = "pickle_papad"
	CategorySweet       MenuCategory = "sweet"
	CategoryDrink       MenuCategory = "drink"
	CategoryRaitaSalad  MenuCategory = "raita_salad"
)

func (c MenuCategory) Valid() bool {
	switch c {
	case CategoryRotiBread, CategorySabzi, CategoryDal, CategoryRiceItem, CategoryNonVeg,
		CategoryPicklePapad, CategorySweet, CategoryDrink, CategoryRaitaSalad:
		return true
	}
	return false
}

// MenuItem is a single dish a vendor can put into a daily menu.
type MenuItem struct {
	gorm.Model
	Name             string       `gorm:"size:100;not null"`
	Category         MenuCategory `gorm:"size:30;not null"`
	Price            float64      `gorm:"not null"`
	Description      string       `gorm:"size:300"`
	Image            string
	IsVegetarian     bool
	IsSpicy          bool
	IsAvailableToday bool

	VendorID uint   `gorm:"index;not null"`
	Vendor   Vendor `json:"-"`
}
