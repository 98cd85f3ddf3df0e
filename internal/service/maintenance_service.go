package service

import (
	"strings"

	"pgms-be-svc/internal/apperr"
	"pgms-be-svc/internal/auth"
	"pgms-be-svc/internal/models"
	"pgms-be-svc/internal/repository"
	"pgms-be-svc/pkg/logger"
)

// MaintenanceService defines the interface for maintenance request operations
type MaintenanceService interface {
	Submit(session *auth.Session, request string) (*models.MaintenanceRequest, error)
	GetAll() ([]*models.MaintenanceRequest, error)
	GetForTenant(session *auth.Session) ([]*models.MaintenanceRequest, error)
	UpdateStatus(id uint, status string) (*models.MaintenanceRequest, error)
}

// maintenanceService implements MaintenanceService
type maintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
	logger          *logger.Logger
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(maintenanceRepo repository.MaintenanceRepository, logger *logger.Logger) MaintenanceService {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		logger:          logger,
	}
}

// Submit creates an open maintenance request with the session tenant's
// name and email
func (s *maintenanceService) Submit(session *auth.Session, request string) (*models.MaintenanceRequest, error) {
	request = strings.TrimSpace(request)
	if request == "" {
		return nil, apperr.New(apperr.Validation, "please enter a request description")
	}

	req := &models.MaintenanceRequest{
		Name:    session.Name,
		Email:   session.Email,
		Request: request,
		Status:  models.MaintenanceStatusOpen,
	}

	if err := s.maintenanceRepo.Create(req); err != nil {
		s.logger.WithError(err).WithField("email", session.Email).Error("Failed to submit maintenance request")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"request_id": req.ID,
		"email":      req.Email,
	}).Info("Maintenance request submitted successfully")

	return req, nil
}

// GetAll returns every maintenance request, newest first
func (s *maintenanceService) GetAll() ([]*models.MaintenanceRequest, error) {
	requests, err := s.maintenanceRepo.GetAll()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load maintenance requests")
		return nil, err
	}
	return requests, nil
}

// GetForTenant returns the session tenant's own requests, newest first
func (s *maintenanceService) GetForTenant(session *auth.Session) ([]*models.MaintenanceRequest, error) {
	requests, err := s.maintenanceRepo.GetByEmail(session.Email, repository.MatchExact)
	if err != nil {
		s.logger.WithError(err).WithField("email", session.Email).Error("Failed to load tenant maintenance requests")
		return nil, err
	}
	return requests, nil
}

// UpdateStatus moves a request to one of the three enumerated statuses
func (s *maintenanceService) UpdateStatus(id uint, status string) (*models.MaintenanceRequest, error) {
	if !models.ValidMaintenanceStatus(status) {
		return nil, apperr.Newf(apperr.Validation, "invalid status %q, must be one of open, in-progress, closed", status)
	}

	request, err := s.maintenanceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.maintenanceRepo.UpdateStatus(id, status); err != nil {
		s.logger.WithError(err).WithField("request_id", id).Error("Failed to update maintenance status")
		return nil, err
	}
	request.Status = status

	s.logger.WithFields(map[string]interface{}{
		"request_id": id,
		"status":     status,
	}).Info("Maintenance status updated successfully")

	return request, nil
}
