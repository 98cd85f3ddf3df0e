package repository

import (
	"strings"

	"gorm.io/gorm"

	"pgms-be-svc/internal/apperr"
	"pgms-be-svc/internal/models"
)

// TenantRepository defines the interface for tenant data operations
type TenantRepository interface {
	Create(tenant *models.Tenant) error
	GetByID(id uint) (*models.Tenant, error)
	GetByEmail(email string, mode MatchMode) (*models.Tenant, error)
	GetAll() ([]*models.Tenant, error)
	Count() (int64, error)
	GetOccupiedRooms() ([]string, error)
	Delete(id uint) error
}

// tenantRepository implements TenantRepository
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new instance of TenantRepository
func NewTenantRepository(db *gorm.DB) TenantRepository {
	return &tenantRepository{
		db: db,
	}
}

// Create inserts a new tenant row
func (r *tenantRepository) Create(tenant *models.Tenant) error {
	if err := r.db.Create(tenant).Error; err != nil {
		return apperr.FromGorm(err)
	}
	return nil
}

// GetByID retrieves a tenant by primary key
func (r *tenantRepository) GetByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.First(&tenant, id).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return &tenant, nil
}

// GetByEmail retrieves a tenant by email using the given match mode
func (r *tenantRepository) GetByEmail(email string, mode MatchMode) (*models.Tenant, error) {
	var tenant models.Tenant

	query := r.db
	if mode == MatchFold {
		query = query.Where("LOWER(email) = LOWER(?)", strings.TrimSpace(email))
	} else {
		query = query.Where("email = ?", strings.TrimSpace(email))
	}

	if err := query.First(&tenant).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return &tenant, nil
}

// GetAll retrieves all tenants, newest first
func (r *tenantRepository) GetAll() ([]*models.Tenant, error) {
	var tenants []*models.Tenant
	if err := r.db.Order("created_at desc").Find(&tenants).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return tenants, nil
}

// Count returns the number of tenants
func (r *tenantRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Tenant{}).Count(&count).Error; err != nil {
		return 0, apperr.FromGorm(err)
	}
	return count, nil
}

// GetOccupiedRooms returns the room labels currently assigned to tenants
func (r *tenantRepository) GetOccupiedRooms() ([]string, error) {
	var rooms []string
	err := r.db.Model(&models.Tenant{}).
		Where("room <> ''").
		Pluck("room", &rooms).Error
	if err != nil {
		return nil, apperr.FromGorm(err)
	}

	trimmed := make([]string, 0, len(rooms))
	for _, room := range rooms {
		trimmed = append(trimmed, strings.TrimSpace(room))
	}
	return trimmed, nil
}

// Delete removes a tenant row by primary key
func (r *tenantRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Tenant{}, id)
	if result.Error != nil {
		return apperr.FromGorm(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "tenant not found")
	}
	return nil
}
