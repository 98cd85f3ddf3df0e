package models

import (
	"time"
)

// SchedulerLog represents the scheduler_logs table, one row per state
// transition of a scheduled run (START/RUNNING/SUCCESS/FAILED).
type SchedulerLog struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	DocumentID    string    `json:"document_id" gorm:"column:document_id"`
	SchedulerCode string    `json:"scheduler_code" gorm:"column:scheduler_code"`
	Message       string    `json:"message" gorm:"column:message"`
	Status        string    `json:"status" gorm:"column:status"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName sets the insert table name for SchedulerLog
func (SchedulerLog) TableName() string {
	return "scheduler_logs"
}
