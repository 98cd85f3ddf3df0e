package repository

import (
	"strings"

	"gorm.io/gorm"

	"pgms-be-svc/internal/apperr"
	"pgms-be-svc/internal/models"
)

// MaintenanceRepository defines the interface for maintenance data operations
type MaintenanceRepository interface {
	Create(request *models.MaintenanceRequest) error
	GetByID(id uint) (*models.MaintenanceRequest, error)
	GetAll() ([]*models.MaintenanceRequest, error)
	GetByEmail(email string, mode MatchMode) ([]*models.MaintenanceRequest, error)
	UpdateStatus(id uint, status string) error
	DeleteByEmail(email string) error
	CountByStatus(status string) (int64, error)
}

// maintenanceRepository implements MaintenanceRepository
type maintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new instance of MaintenanceRepository
func NewMaintenanceRepository(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepository{
		db: db,
	}
}

// Create inserts a new maintenance request row
func (r *maintenanceRepository) Create(request *models.MaintenanceRequest) error {
	if err := r.db.Create(request).Error; err != nil {
		return apperr.FromGorm(err)
	}
	return nil
}

// GetByID retrieves a maintenance request by primary key
func (r *maintenanceRepository) GetByID(id uint) (*models.MaintenanceRequest, error) {
	var request models.MaintenanceRequest
	if err := r.db.First(&request, id).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return &request, nil
}

// GetAll retrieves all maintenance requests, newest first
func (r *maintenanceRepository) GetAll() ([]*models.MaintenanceRequest, error) {
	var requests []*models.MaintenanceRequest
	if err := r.db.Order("created_at desc").Find(&requests).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return requests, nil
}

// GetByEmail retrieves the maintenance requests for the given email,
// newest first
func (r *maintenanceRepository) GetByEmail(email string, mode MatchMode) ([]*models.MaintenanceRequest, error) {
	var requests []*models.MaintenanceRequest

	query := r.db
	if mode == MatchFold {
		query = query.Where("LOWER(email) = LOWER(?)", strings.TrimSpace(email))
	} else {
		query = query.Where("email = ?", strings.TrimSpace(email))
	}

	if err := query.Order("created_at desc").Find(&requests).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return requests, nil
}

// UpdateStatus flips a request's status by primary key
func (r *maintenanceRepository) UpdateStatus(id uint, status string) error {
	result := r.db.Model(&models.MaintenanceRequest{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return apperr.FromGorm(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "maintenance request not found")
	}
	return nil
}

// DeleteByEmail removes every maintenance request for the given email
func (r *maintenanceRepository) DeleteByEmail(email string) error {
	err := r.db.Where("LOWER(email) = LOWER(?)", strings.TrimSpace(email)).
		Delete(&models.MaintenanceRequest{}).Error
	if err != nil {
		return apperr.FromGorm(err)
	}
	return nil
}

// CountByStatus counts requests with the given status
func (r *maintenanceRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.MaintenanceRequest{}).
		Where("status = ?", status).
		Count(&count).Error
	if err != nil {
		return 0, apperr.FromGorm(err)
	}
	return count, nil
}
