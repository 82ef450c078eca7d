package entity

import (
	"gorm.io/gorm"
)

// Admin accounts are seeded from the environment; there is no signup.
type Admin struct {
	gorm.Model
	Username string `gorm:"size:50;uniqueIndex;not null"`
	Password string `json:"-"`
}
