package models

import (
	"time"
)

// Maintenance request statuses
const (
	MaintenanceStatusOpen       = "open"
	MaintenanceStatusInProgress = "in-progress"
	MaintenanceStatusClosed     = "closed"
)

// ValidMaintenanceStatus reports whether s is one of the three request statuses
func ValidMaintenanceStatus(s string) bool {
	switch s {
	case MaintenanceStatusOpen, MaintenanceStatusInProgress, MaintenanceStatusClosed:
		return true
	}
	return false
}

// MaintenanceRequest represents the maintenance table
type MaintenanceRequest struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"column:name"`
	Email     string    `json:"email" gorm:"column:email;index"`
	Request   string    `json:"request" gorm:"column:request"`
	Status    string    `json:"status" gorm:"column:status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for MaintenanceRequest
func (MaintenanceRequest) TableName() string {
	return "maintenance"
}
