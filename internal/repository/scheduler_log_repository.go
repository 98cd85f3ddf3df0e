package repository

import (
	"gorm.io/gorm"

	"pgms-be-svc/internal/apperr"
	"pgms-be-svc/internal/models"
)

// SchedulerLogRepository defines the interface for scheduler log operations
type SchedulerLogRepository interface {
	Create(log *models.SchedulerLog) error
}

// schedulerLogRepository implements SchedulerLogRepository
type schedulerLogRepository struct {
	db *gorm.DB
}

// NewSchedulerLogRepository creates a new instance of SchedulerLogRepository
func NewSchedulerLogRepository(db *gorm.DB) SchedulerLogRepository {
	return &schedulerLogRepository{
		db: db,
	}
}

// Create inserts a new scheduler log row
func (r *schedulerLogRepository) Create(log *models.SchedulerLog) error {
	if err := r.db.Create(log).Error; err != nil {
		return apperr.FromGorm(err)
	}
	return nil
}
