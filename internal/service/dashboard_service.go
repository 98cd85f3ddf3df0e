package service

import (
	"pgms-be-svc/internal/models"
	"pgms-be-svc/internal/models/response"
	"pgms-be-svc/internal/repository"
	"pgms-be-svc/pkg/logger"
)

// DashboardService defines the interface for owner dashboard aggregates
type DashboardService interface {
	GetSummary() (*response.DashboardSummaryResponse, error)
}

// dashboardService implements DashboardService
type dashboardService struct {
	tenantRepo      repository.TenantRepository
	rentRepo        repository.RentRepository
	maintenanceRepo repository.MaintenanceRepository
	tenantService   TenantService
	logger          *logger.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(tenantRepo repository.TenantRepository, rentRepo repository.RentRepository, maintenanceRepo repository.MaintenanceRepository, tenantService TenantService, logger *logger.Logger) DashboardService {
	return &dashboardService{
		tenantRepo:      tenantRepo,
		rentRepo:        rentRepo,
		maintenanceRepo: maintenanceRepo,
		tenantService:   tenantService,
		logger:          logger,
	}
}

// GetSummary aggregates the owner dashboard counters
func (s *dashboardService) GetSummary() (*response.DashboardSummaryResponse, error) {
	tenants, err := s.tenantRepo.Count()
	if err != nil {
		s.logger.WithError(err).Error("Failed to count tenants")
		return nil, err
	}

	availability, err := s.tenantService.AvailableRooms()
	if err != nil {
		return nil, err
	}

	pending, err := s.rentRepo.CountByStatus(models.RentStatusPending)
	if err != nil {
		s.logger.WithError(err).Error("Failed to count pending rents")
		return nil, err
	}

	paid, err := s.rentRepo.CountByStatus(models.RentStatusPaid)
	if err != nil {
		s.logger.WithError(err).Error("Failed to count paid rents")
		return nil, err
	}

	pendingTotal, err := s.rentRepo.SumAmountByStatus(models.RentStatusPending)
	if err != nil {
		s.logger.WithError(err).Error("Failed to sum pending rent amounts")
		return nil, err
	}

	openMaintenance, err := s.maintenanceRepo.CountByStatus(models.MaintenanceStatusOpen)
	if err != nil {
		s.logger.WithError(err).Error("Failed to count open maintenance requests")
		return nil, err
	}

	summary := &response.DashboardSummaryResponse{
		TotalTenants:       tenants,
		OccupiedRooms:      models.RoomPoolSize - len(availability.Rooms),
		AvailableRooms:     availability.Rooms,
		PendingRents:       pending,
		PaidRents:          paid,
		TotalPendingAmount: pendingTotal,
		OpenMaintenance:    openMaintenance,
	}

	s.logger.WithFields(map[string]interface{}{
		"tenants":       summary.TotalTenants,
		"pending_rents": summary.PendingRents,
	}).Info("Dashboard summary retrieved successfully")

	return summary, nil
}
