package entity

import (
	"strings"

	"gorm.io/gorm"
)

// User is a consumer account.
type User struct {
	gorm.Model
	Username  string `gorm:"size:50;uniqueIndex;not null"`
	Email     string `gorm:"size:120;uniqueIndex;not null"`
	Password  string `json:"-"`
	FirstName string
	LastName  string
	Phone     string `gorm:"size:20"`

	Orders        []Order        `gorm:"foreignKey:CustomerID" json:"-"`
	Subscriptions []Subscription `gorm:"foreignKey:CustomerID" json:"-"`
	Feedbacks     []Feedback     `gorm:"foreignKey:CustomerID" json:"-"`
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
