package models

import (
	"strconv"
	"time"
)

// RoomPoolSize is the number of lettable rooms in the property
const RoomPoolSize = 15

// RoomPool returns the fixed set of room labels "1".."15"
func RoomPool() []string {
	rooms := make([]string, 0, RoomPoolSize)
	for i := 1; i <= RoomPoolSize; i++ {
		rooms = append(rooms, strconv.Itoa(i))
	}
	return rooms
}

// Tenant represents the users table
type Tenant struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"column:name"`
	Room      string    `json:"room" gorm:"column:room"`
	ContactNo string    `json:"contact_no" gorm:"column:contact_no"`
	Email     string    `json:"email" gorm:"column:email;uniqueIndex"`
	Password  string    `json:"-" gorm:"column:password"`
	Deposit   float64   `json:"deposit" gorm:"column:deposit"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Tenant
func (Tenant) TableName() string {
	return "users"
}
