package service

import (
	"sort"
	"strconv"
	"strings"

	"pgms-be-svc/internal/apperr"
	"pgms-be-svc/internal/auth"
	"pgms-be-svc/internal/models"
	"pgms-be-svc/internal/models/response"
	"pgms-be-svc/internal/repository"
	"pgms-be-svc/pkg/logger"
)

// CreateTenantInput holds the add-tenant form fields
type CreateTenantInput struct {
	Name      string  `json:"name" binding:"required"`
	Room      string  `json:"room" binding:"required"`
	ContactNo string  `json:"contact_no" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required"`
	Deposit   float64 `json:"deposit" binding:"required,gt=0"`
}

// RoomAvailability lists the rooms still open for assignment
type RoomAvailability struct {
	Rooms []string `json:"rooms"`
	Full  bool     `json:"full"`
}

// TenantService defines the interface for tenant roster operations
type TenantService interface {
	GetRoster() ([]*models.Tenant, error)
	AddTenant(input CreateTenantInput) (*models.Tenant, error)
	AvailableRooms() (*RoomAvailability, error)
	GetSettlement(id uint) (*response.SettlementResponse, error)
	DeleteTenant(id uint) error
}

// tenantService implements TenantService
type tenantService struct {
	tenantRepo      repository.TenantRepository
	rentRepo        repository.RentRepository
	maintenanceRepo repository.MaintenanceRepository
	logger          *logger.Logger
}

// NewTenantService creates a new tenant service
func NewTenantService(tenantRepo repository.TenantRepository, rentRepo repository.RentRepository, maintenanceRepo repository.MaintenanceRepository, logger *logger.Logger) TenantService {
	return &tenantService{
		tenantRepo:      tenantRepo,
		rentRepo:        rentRepo,
		maintenanceRepo: maintenanceRepo,
		logger:          logger,
	}
}

// GetRoster returns all tenants, newest first
func (s *tenantService) GetRoster() ([]*models.Tenant, error) {
	tenants, err := s.tenantRepo.GetAll()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load tenant roster")
		return nil, err
	}
	return tenants, nil
}

// AddTenant validates the form input and inserts a new tenant. The room must
// come from the currently available pool and the email must be unique.
func (s *tenantService) AddTenant(input CreateTenantInput) (*models.Tenant, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Room = strings.TrimSpace(input.Room)
	input.ContactNo = strings.TrimSpace(input.ContactNo)
	input.Email = strings.TrimSpace(input.Email)

	if input.Name == "" || input.Room == "" || input.Email == "" || input.Password == "" {
		return nil, apperr.New(apperr.Validation, "please fill in all fields")
	}
	if input.Deposit <= 0 {
		return nil, apperr.New(apperr.Validation, "deposit must be greater than zero")
	}

	availability, err := s.AvailableRooms()
	if err != nil {
		return nil, err
	}
	if !containsRoom(availability.Rooms, input.Room) {
		return nil, apperr.Newf(apperr.Conflict, "room %s is not available", input.Room)
	}

	// Email uniqueness is case-insensitive; the column's unique index alone
	// would admit a folded duplicate, which every email-keyed query and the
	// delete cascade would then merge with the existing tenant's rows.
	existing, err := s.tenantRepo.GetByEmail(input.Email, repository.MatchFold)
	if err == nil {
		s.logger.WithField("email", input.Email).Warn("Tenant creation rejected: duplicate email")
		return nil, apperr.Newf(apperr.Conflict, "a tenant with email %s already exists", existing.Email)
	}
	if !apperr.IsKind(err, apperr.NotFound) {
		s.logger.WithError(err).WithField("email", input.Email).Error("Failed to check for existing tenant")
		return nil, err
	}

	hash, err := auth.HashPassword(strings.TrimSpace(input.Password))
	if err != nil {
		s.logger.WithError(err).Error("Failed to hash tenant password")
		return nil, err
	}

	tenant := &models.Tenant{
		Name:      input.Name,
		Room:      input.Room,
		ContactNo: input.ContactNo,
		Email:     input.Email,
		Password:  hash,
		Deposit:   input.Deposit,
	}

	if err := s.tenantRepo.Create(tenant); err != nil {
		if apperr.IsKind(err, apperr.Conflict) {
			s.logger.WithField("email", input.Email).Warn("Tenant creation rejected: duplicate email")
			return nil, apperr.Newf(apperr.Conflict, "a tenant with email %s already exists", input.Email)
		}
		s.logger.WithError(err).Error("Failed to create tenant")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"tenant_id": tenant.ID,
		"email":     tenant.Email,
		"room":      tenant.Room,
	}).Info("Tenant added successfully")

	return tenant, nil
}

// AvailableRooms computes the room pool complement: every room in "1".."15"
// not currently assigned to a tenant, in numeric order.
func (s *tenantService) AvailableRooms() (*RoomAvailability, error) {
	occupied, err := s.tenantRepo.GetOccupiedRooms()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load occupied rooms")
		return nil, err
	}

	taken := make(map[string]bool, len(occupied))
	for _, room := range occupied {
		taken[room] = true
	}

	var available []string
	for _, room := range models.RoomPool() {
		if !taken[room] {
			available = append(available, room)
		}
	}
	sort.Slice(available, func(i, j int) bool {
		a, _ := strconv.Atoi(available[i])
		b, _ := strconv.Atoi(available[j])
		return a < b
	})

	return &RoomAvailability{
		Rooms: available,
		Full:  len(available) == 0,
	}, nil
}

// GetSettlement builds the delete-confirmation view for a tenant: all rent
// rows for their email, the deposit to return, and whether deletion is allowed.
func (s *tenantService) GetSettlement(id uint) (*response.SettlementResponse, error) {
	tenant, err := s.tenantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	rents, err := s.rentRepo.GetByEmail(tenant.Email, repository.MatchFold)
	if err != nil {
		s.logger.WithError(err).WithField("email", tenant.Email).Error("Failed to load rents for settlement")
		return nil, err
	}

	unpaid := 0
	for _, rent := range rents {
		if rent.Status != models.RentStatusPaid {
			unpaid++
		}
	}

	return &response.SettlementResponse{
		TenantID:    tenant.ID,
		Name:        tenant.Name,
		Email:       tenant.Email,
		Deposit:     tenant.Deposit,
		Rents:       rents,
		UnpaidCount: unpaid,
		CanDelete:   unpaid == 0,
	}, nil
}

// DeleteTenant removes a tenant and their rent and maintenance rows. The
// deletes run sequentially and abort on the first failure; a failure midway
// leaves the later steps unexecuted.
func (s *tenantService) DeleteTenant(id uint) error {
	tenant, err := s.tenantRepo.GetByID(id)
	if err != nil {
		return err
	}

	unpaid, err := s.rentRepo.CountUnpaidByEmail(tenant.Email)
	if err != nil {
		s.logger.WithError(err).WithField("email", tenant.Email).Error("Failed to count unpaid rents")
		return err
	}
	if unpaid > 0 {
		s.logger.WithFields(map[string]interface{}{
			"tenant_id": tenant.ID,
			"unpaid":    unpaid,
		}).Warn("Tenant deletion refused: unpaid rents")
		return apperr.Newf(apperr.Conflict, "tenant has %d unpaid rent(s), collect payment before deletion", unpaid)
	}

	if err := s.rentRepo.DeleteByEmail(tenant.Email); err != nil {
		s.logger.WithError(err).Error("Failed to delete tenant rents")
		return err
	}
	if err := s.maintenanceRepo.DeleteByEmail(tenant.Email); err != nil {
		s.logger.WithError(err).Error("Failed to delete tenant maintenance requests")
		return err
	}
	if err := s.tenantRepo.Delete(tenant.ID); err != nil {
		s.logger.WithError(err).Error("Failed to delete tenant")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"tenant_id": tenant.ID,
		"email":     tenant.Email,
		"room":      tenant.Room,
	}).Info("Tenant deleted successfully")

	return nil
}

func containsRoom(rooms []string, room string) bool {
	for _, r := range rooms {
		if r == room {
			return true
		}
	}
	return false
}
