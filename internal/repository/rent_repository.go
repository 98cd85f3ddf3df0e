package repository

import (
	"strings"

	"gorm.io/gorm"

	"pgms-be-svc/internal/apperr"
	"pgms-be-svc/internal/models"
)

// RentRepository defines the interface for rent data operations
type RentRepository interface {
	CreateBatch(rents []*models.Rent) error
	GetByID(id uint) (*models.Rent, error)
	GetAll() ([]*models.Rent, error)
	GetByMonth(month string) ([]*models.Rent, error)
	GetByEmail(email string, mode MatchMode) ([]*models.Rent, error)
	GetPendingByEmail(email string, mode MatchMode) ([]*models.Rent, error)
	UpdateStatus(id uint, status string) error
	DeleteByEmail(email string) error
	CountUnpaidByEmail(email string) (int64, error)
	CountByStatus(status string) (int64, error)
	SumAmountByStatus(status string) (float64, error)
}

// rentRepository implements RentRepository
type rentRepository struct {
	db *gorm.DB
}

// NewRentRepository creates a new instance of RentRepository
func NewRentRepository(db *gorm.DB) RentRepository {
	return &rentRepository{
		db: db,
	}
}

// CreateBatch inserts rent rows in batches inside one transaction
func (r *rentRepository) CreateBatch(rents []*models.Rent) error {
	if len(rents) == 0 {
		return nil
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(rents, 100).Error
	})
	if err != nil {
		return apperr.FromGorm(err)
	}
	return nil
}

// GetByID retrieves a rent row by primary key
func (r *rentRepository) GetByID(id uint) (*models.Rent, error) {
	var rent models.Rent
	if err := r.db.First(&rent, id).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return &rent, nil
}

// GetAll retrieves all rent rows, newest first
func (r *rentRepository) GetAll() ([]*models.Rent, error) {
	var rents []*models.Rent
	if err := r.db.Order("created_at desc").Find(&rents).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return rents, nil
}

// GetByMonth retrieves every rent row for the given month label
func (r *rentRepository) GetByMonth(month string) ([]*models.Rent, error) {
	var rents []*models.Rent
	if err := r.db.Where("month = ?", month).Find(&rents).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return rents, nil
}

// GetByEmail retrieves every rent row for the given email
func (r *rentRepository) GetByEmail(email string, mode MatchMode) ([]*models.Rent, error) {
	var rents []*models.Rent
	if err := r.emailQuery(email, mode).Order("month asc").Find(&rents).Error; err != nil {
		return nil, apperr.FromGorm(err)
	}
	return rents, nil
}

// GetPendingByEmail retrieves the pending rent rows for the given email,
// ordered by month label ascending
func (r *rentRepository) GetPendingByEmail(email string, mode MatchMode) ([]*models.Rent, error) {
	var rents []*models.Rent
	err := r.emailQuery(email, mode).
		Where("status = ?", models.RentStatusPending).
		Order("month asc").
		Find(&rents).Error
	if err != nil {
		return nil, apperr.FromGorm(err)
	}
	return rents, nil
}

// UpdateStatus flips a rent row's status by primary key
func (r *rentRepository) UpdateStatus(id uint, status string) error {
	result := r.db.Model(&models.Rent{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return apperr.FromGorm(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "rent not found")
	}
	return nil
}

// DeleteByEmail removes every rent row for the given email
func (r *rentRepository) DeleteByEmail(email string) error {
	err := r.db.Where("LOWER(email) = LOWER(?)", strings.TrimSpace(email)).
		Delete(&models.Rent{}).Error
	if err != nil {
		return apperr.FromGorm(err)
	}
	return nil
}

// CountUnpaidByEmail counts the rent rows for the email with status other
// than paid. Deletion of a tenant is gated on this being zero.
func (r *rentRepository) CountUnpaidByEmail(email string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Rent{}).
		Where("LOWER(email) = LOWER(?)", strings.TrimSpace(email)).
		Where("status <> ?", models.RentStatusPaid).
		Count(&count).Error
	if err != nil {
		return 0, apperr.FromGorm(err)
	}
	return count, nil
}

// CountByStatus counts rent rows with the given status
func (r *rentRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Rent{}).Where("status = ?", status).Count(&count).Error
	if err != nil {
		return 0, apperr.FromGorm(err)
	}
	return count, nil
}

// SumAmountByStatus sums rent amounts with the given status
func (r *rentRepository) SumAmountByStatus(status string) (float64, error) {
	var total float64
	err := r.db.Model(&models.Rent{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, apperr.FromGorm(err)
	}
	return total, nil
}

func (r *rentRepository) emailQuery(email string, mode MatchMode) *gorm.DB {
	if mode == MatchFold {
		return r.db.Where("LOWER(email) = LOWER(?)", strings.TrimSpace(email))
	}
	return r.db.Where("email = ?", strings.TrimSpace(email))
}
