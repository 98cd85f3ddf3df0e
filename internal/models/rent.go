package models

import (
	"time"
)

// Rent statuses
const (
	RentStatusPending = "pending"
	RentStatusPaid    = "paid"
)

// Rent represents the rents table. Email references the tenant by value,
// not by foreign key, matching the original schema.
type Rent struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"column:name"`
	Email     string    `json:"email" gorm:"column:email;index"`
	Month     string    `json:"month" gorm:"column:month;index"`
	Amount    float64   `json:"amount" gorm:"column:amount"`
	Status    string    `json:"status" gorm:"column:status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Rent
func (Rent) TableName() string {
	return "rents"
}
