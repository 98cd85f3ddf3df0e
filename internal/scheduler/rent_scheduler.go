package scheduler

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"pgms-be-svc/internal/models"
	"pgms-be-svc/internal/repository"
	"pgms-be-svc/internal/service"
	"pgms-be-svc/pkg/logger"
)

const schedulerCode = "MONTHLY_RENT_GENERATION"

// RentScheduler handles scheduled rent generation
type RentScheduler struct {
	rentService    service.RentService
	logRepo        repository.SchedulerLogRepository
	logger         *logger.Logger
	cron           *cron.Cron
	cronExpression string
	defaultAmount  float64
}

// NewRentScheduler creates a new rent scheduler
func NewRentScheduler(rentService service.RentService, logRepo repository.SchedulerLogRepository, logger *logger.Logger, cronExpression string, defaultAmount float64) *RentScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &RentScheduler{
		rentService:    rentService,
		logRepo:        logRepo,
		logger:         logger,
		cron:           c,
		cronExpression: cronExpression,
		defaultAmount:  defaultAmount,
	}
}

// Start initializes and starts the scheduled job
func (s *RentScheduler) Start() error {
	s.logger.Info("Starting rent scheduler...")

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling rent generation job")
	_, err := s.cron.AddFunc(s.cronExpression, s.generateMonthlyRents)
	if err != nil {
		return fmt.Errorf("failed to schedule monthly rent job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Rent scheduler started successfully")

	return nil
}

// Stop gracefully stops the scheduler
func (s *RentScheduler) Stop() {
	s.logger.Info("Stopping rent scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Rent scheduler stopped successfully")
}

// generateMonthlyRents is the scheduled job that generates rent for the
// current month with the configured default amount
func (s *RentScheduler) generateMonthlyRents() {
	now := time.Now()
	docID := uuid.New().String()
	month := now.Format("January 2006")

	s.logScheduler(docID, "Starting scheduled monthly rent generation", "START")
	s.logger.WithField("month", month).Info("Starting scheduled monthly rent generation...")

	if s.defaultAmount <= 0 {
		message := "Scheduled rent generation skipped: no default amount configured"
		s.logScheduler(docID, message, "FAILED")
		s.logger.Warn(message)
		return
	}

	s.logScheduler(docID, fmt.Sprintf("Generating rent for month %s", month), "RUNNING")

	result, err := s.rentService.Generate(month, s.defaultAmount)
	if err != nil {
		failedMessage := fmt.Sprintf("Failed to generate monthly rents: %v", err)
		s.logScheduler(docID, failedMessage, "FAILED")
		s.logger.WithField("error", err).Error("Failed to generate monthly rents")
		return
	}

	resultJSON, _ := json.Marshal(result)
	s.logScheduler(docID, fmt.Sprintf("Monthly rents generated successfully: %s", string(resultJSON)), "SUCCESS")

	s.logger.WithFields(map[string]interface{}{
		"month":     result.Month,
		"generated": result.Generated,
		"skipped":   result.Skipped,
	}).Info("Scheduled monthly rent generation completed")
}

// logScheduler creates a new log entry in the database
func (s *RentScheduler) logScheduler(documentID, message, status string) {
	logEntry := &models.SchedulerLog{
		DocumentID:    documentID,
		SchedulerCode: schedulerCode,
		Message:       message,
		Status:        status,
	}

	if err := s.logRepo.Create(logEntry); err != nil {
		s.logger.WithField("error", err).WithField("status", status).Error("Failed to create scheduler log entry")
	}
}
