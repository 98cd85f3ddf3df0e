package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"pgms-be-svc/internal/apperr"
	"pgms-be-svc/internal/auth"
	"pgms-be-svc/internal/metrics"
	"pgms-be-svc/internal/models"
	"pgms-be-svc/internal/models/response"
	"pgms-be-svc/internal/repository"
	"pgms-be-svc/pkg/logger"
	"pgms-be-svc/pkg/utils"
)

// GenerateRentResult reports a bulk rent generation run
type GenerateRentResult struct {
	Month     string `json:"month"`
	Generated int    `json:"generated"`
	Skipped   int    `json:"skipped"`
	Message   string `json:"message"`
}

// RentService defines the interface for rent business operations
type RentService interface {
	Generate(month string, amount float64) (*GenerateRentResult, error)
	GetAll() ([]*models.Rent, error)
	MarkPaid(id uint) (*models.Rent, error)
	GetPendingForTenant(session *auth.Session) (*response.PendingRentsResponse, error)
	Pay(session *auth.Session, rentID uint, upiID string) (*response.PaymentResponse, error)
	ExportToExcel() ([]byte, string, error)
}

// rentService implements RentService
type rentService struct {
	rentRepo   repository.RentRepository
	tenantRepo repository.TenantRepository
	logger     *logger.Logger
}

// NewRentService creates a new rent service
func NewRentService(rentRepo repository.RentRepository, tenantRepo repository.TenantRepository, logger *logger.Logger) RentService {
	return &rentService{
		rentRepo:   rentRepo,
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

// Generate creates one pending rent row per tenant lacking a record for the
// month. Generation is idempotent per (email, month): tenants already covered
// are skipped, compared case-insensitively.
func (s *rentService) Generate(month string, amount float64) (*GenerateRentResult, error) {
	month = strings.TrimSpace(month)
	if month == "" || amount <= 0 {
		return nil, apperr.New(apperr.Validation, "please enter valid month and amount")
	}

	tenants, err := s.tenantRepo.GetAll()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load tenants for rent generation")
		return nil, err
	}
	if len(tenants) == 0 {
		return nil, apperr.New(apperr.NotFound, "no tenants found to generate rent for")
	}

	existing, err := s.rentRepo.GetByMonth(month)
	if err != nil {
		s.logger.WithError(err).WithField("month", month).Error("Failed to check existing rents")
		return nil, err
	}

	covered := make(map[string]bool, len(existing))
	for _, rent := range existing {
		covered[strings.ToLower(strings.TrimSpace(rent.Email))] = true
	}

	var rents []*models.Rent
	for _, tenant := range tenants {
		// Marking the email covered as we go keeps generation one row per
		// folded email even if the roster carries fold-equal duplicates
		key := strings.ToLower(strings.TrimSpace(tenant.Email))
		if covered[key] {
			continue
		}
		covered[key] = true
		rents = append(rents, &models.Rent{
			Name:   tenant.Name,
			Email:  tenant.Email,
			Month:  month,
			Amount: amount,
			Status: models.RentStatusPending,
		})
	}

	skipped := len(tenants) - len(rents)

	if len(rents) == 0 {
		s.logger.WithField("month", month).Info("Rent generation skipped: all tenants already covered")
		return &GenerateRentResult{
			Month:   month,
			Skipped: skipped,
			Message: fmt.Sprintf("All tenants already have rent generated for %s", month),
		}, nil
	}

	if err := s.rentRepo.CreateBatch(rents); err != nil {
		s.logger.WithError(err).WithField("month", month).Error("Failed to create rent rows")
		return nil, err
	}

	metrics.RentsGenerated.Add(float64(len(rents)))

	message := fmt.Sprintf("Rent generated successfully for %d tenant(s)", len(rents))
	if skipped > 0 {
		message += fmt.Sprintf(" (%d tenant(s) already have rent for %s)", skipped, month)
	}

	s.logger.WithFields(map[string]interface{}{
		"month":     month,
		"amount":    amount,
		"generated": len(rents),
		"skipped":   skipped,
	}).Info("Rent generation completed")

	return &GenerateRentResult{
		Month:     month,
		Generated: len(rents),
		Skipped:   skipped,
		Message:   message,
	}, nil
}

// GetAll returns every rent row, newest first
func (s *rentService) GetAll() ([]*models.Rent, error) {
	rents, err := s.rentRepo.GetAll()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load rents")
		return nil, err
	}
	return rents, nil
}

// MarkPaid flips a rent row to paid by the owner
func (s *rentService) MarkPaid(id uint) (*models.Rent, error) {
	rent, err := s.rentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if rent.Status == models.RentStatusPaid {
		return nil, apperr.Newf(apperr.Conflict, "rent for %s is already paid", rent.Month)
	}

	if err := s.rentRepo.UpdateStatus(rent.ID, models.RentStatusPaid); err != nil {
		s.logger.WithError(err).WithField("rent_id", rent.ID).Error("Failed to mark rent as paid")
		return nil, err
	}
	rent.Status = models.RentStatusPaid

	metrics.PaymentsConfirmed.Inc()

	s.logger.WithFields(map[string]interface{}{
		"rent_id": rent.ID,
		"email":   rent.Email,
		"month":   rent.Month,
	}).Info("Rent marked as paid")

	return rent, nil
}

// GetPendingForTenant lists the session tenant's pending rents ordered by
// month label, with the summed total.
func (s *rentService) GetPendingForTenant(session *auth.Session) (*response.PendingRentsResponse, error) {
	rents, err := s.rentRepo.GetPendingByEmail(session.Email, repository.MatchFold)
	if err != nil && apperr.IsKind(err, apperr.PermissionDenied) {
		s.logger.WithError(err).Warn("Folded pending-rent lookup rejected, retrying exact match")
		rents, err = s.rentRepo.GetPendingByEmail(session.Email, repository.MatchExact)
	}
	if err != nil {
		s.logger.WithError(err).WithField("email", session.Email).Error("Failed to load pending rents")
		return nil, err
	}

	var total float64
	for _, rent := range rents {
		total += rent.Amount
	}

	return &response.PendingRentsResponse{
		Rents: rents,
		Total: total,
	}, nil
}

// Pay confirms a tenant's rent payment. The UPI id is validated locally and
// an invalid one never reaches the data layer; the payment itself is a
// status flip with a generated reference, there is no gateway behind it.
func (s *rentService) Pay(session *auth.Session, rentID uint, upiID string) (*response.PaymentResponse, error) {
	upiID = strings.TrimSpace(upiID)
	if !utils.IsValidUPIID(upiID) {
		return nil, apperr.New(apperr.Validation, "please enter a valid UPI ID (e.g., yourname@paytm)")
	}

	rent, err := s.rentRepo.GetByID(rentID)
	if err != nil {
		return nil, err
	}

	// A rent belonging to another tenant is reported as absent
	if !strings.EqualFold(strings.TrimSpace(rent.Email), strings.TrimSpace(session.Email)) {
		s.logger.WithFields(map[string]interface{}{
			"rent_id": rentID,
			"email":   session.Email,
		}).Warn("Payment attempted on a rent not owned by the session tenant")
		return nil, apperr.New(apperr.NotFound, "rent not found")
	}

	if rent.Status == models.RentStatusPaid {
		return nil, apperr.Newf(apperr.Conflict, "rent for %s is already paid", rent.Month)
	}

	if err := s.rentRepo.UpdateStatus(rent.ID, models.RentStatusPaid); err != nil {
		s.logger.WithError(err).WithField("rent_id", rent.ID).Error("Failed to confirm payment")
		return nil, err
	}

	metrics.PaymentsConfirmed.Inc()

	reference := "upi-" + uuid.New().String()
	s.logger.WithFields(map[string]interface{}{
		"rent_id":   rent.ID,
		"email":     rent.Email,
		"month":     rent.Month,
		"reference": reference,
	}).Info("Payment confirmed successfully")

	return &response.PaymentResponse{
		RentID:    rent.ID,
		Month:     rent.Month,
		Amount:    rent.Amount,
		Status:    models.RentStatusPaid,
		Reference: reference,
	}, nil
}

// ExportToExcel exports all rent rows to an xlsx workbook
func (s *rentService) ExportToExcel() ([]byte, string, error) {
	rents, err := s.rentRepo.GetAll()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get rent data: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Error("Failed to close Excel file")
		}
	}()

	sheetName := "Rent Data"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"No", "Name", "Email", "Month", "Amount", "Status", "Created"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "G1", headerStyle)
	}

	for i, rent := range rents {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), rent.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), rent.Email)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), rent.Month)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), utils.FormatCurrency(rent.Amount))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), rent.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), utils.FormatDate(rent.CreatedAt))
	}

	for i := 1; i <= len(headers); i++ {
		col, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(sheetName, col, col, 18)
	}

	if f.GetSheetName(0) == "Sheet1" && sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("rent_export_%s.xlsx", timestamp)

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buffer.Bytes(), filename, nil
}
