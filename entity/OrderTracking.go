package entity

import (
	"time"

	"gorm.io/gorm"
)

type DeliveryPerson struct {
	Name          string `gorm:"size:100" json:"name"`
	Phone         string `gorm:"size:20" json:"phone"`
	VehicleNumber string `gorm:"size:20" json:"vehicle_number"`
}

func (p DeliveryPerson) IsZero() bool {
	return p.Name == "" && p.Phone == "" && p.VehicleNumber == ""
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

func (l Location) IsZero() bool {
	return l.Latitude == 0 && l.Longitude == 0 && l.Address == ""
}

// OrderTracking is the live-delivery record of an order (at most one per order).
// It is created on the first vendor update.
type OrderTracking struct {
	gorm.Model
	OrderID uint  `gorm:"uniqueIndex;not null"`
	Order   Order `json:"-"`

	CurrentStatus         TrackingStatus `gorm:"size:20;not null"`
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	DeliveryPerson        DeliveryPerson `gorm:"embedded;embeddedPrefix:delivery_person_"`
	CurrentLocation       Location       `gorm:"embedded;embeddedPrefix:current_location_"`
	ProgressPercentage    int            `gorm:"not null"`
	DeliveryInstructions  string         `gorm:"size:300"`
	IsActive              bool           `gorm:"index"`

	// append-only; rows are inserted, never updated
	StatusHistory []StatusHistory `gorm:"foreignKey:TrackingID"`
	DeliveryRoute []RoutePoint    `gorm:"foreignKey:TrackingID"`
}

type StatusHistory struct {
	ID         uint           `gorm:"primaryKey" json:"-"`
	TrackingID uint           `gorm:"index;not null" json:"-"`
	Status     TrackingStatus `gorm:"size:20;not null" json:"status"`
	Timestamp  time.Time      `gorm:"not null" json:"timestamp"`
	Notes      string         `gorm:"size:300" json:"notes"`
	UpdatedBy  string         `gorm:"size:20" json:"updated_by"`
}

type RoutePoint struct {
	ID         uint           `gorm:"primaryKey" json:"-"`
	TrackingID uint           `gorm:"index;not null" json:"-"`
	Latitude   float64        `json:"latitude"`
	Longitude  float64        `json:"longitude"`
	Status     TrackingStatus `gorm:"size:20" json:"status"`
	Timestamp  time.Time      `gorm:"not null" json:"timestamp"`
}
