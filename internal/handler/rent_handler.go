package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pgms-be-svc/internal/middleware"
	"pgms-be-svc/internal/service"
	"pgms-be-svc/pkg/logger"
	"pgms-be-svc/pkg/utils"
)

// GenerateRentRequest represents the bulk rent generation form
type GenerateRentRequest struct {
	Month  string  `json:"month" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// PayRentRequest represents the tenant payment form
type PayRentRequest struct {
	UPIID string `json:"upi_id" binding:"required"`
}

// RentHandler handles rent HTTP requests
type RentHandler struct {
	rentService service.RentService
	logger      *logger.Logger
}

// NewRentHandler creates a new rent handler
func NewRentHandler(rentService service.RentService, logger *logger.Logger) *RentHandler {
	return &RentHandler{
		rentService: rentService,
		logger:      logger,
	}
}

// Generate handles POST /api/v1/rents/generate
// @Summary Generate monthly rent
// @Description Create one pending rent row per tenant lacking a record for the month; repeat calls skip covered tenants
// @Tags rents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateRentRequest true "Month label and amount"
// @Success 200 {object} utils.APIResponse{data=service.GenerateRentResult} "Generation result"
// @Failure 400 {object} utils.APIResponse "Invalid month or amount"
// @Failure 404 {object} utils.APIResponse "No tenants"
// @Router /api/v1/rents/generate [post]
func (h *RentHandler) Generate(c *gin.Context) {
	var req GenerateRentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Please enter valid month and amount", err)
		return
	}

	result, err := h.rentService.Generate(req.Month, req.Amount)
	if err != nil {
		respondError(c, err, "Failed to generate rents")
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"month":     result.Month,
		"generated": result.Generated,
		"skipped":   result.Skipped,
	}).Info("Rent generation handled")

	utils.SuccessResponse(c, result.Message, result)
}

// GetAll handles GET /api/v1/rents
// @Summary List all rents
// @Description Get every rent row, newest first
// @Tags rents
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=[]models.Rent} "Rents retrieved successfully"
// @Router /api/v1/rents [get]
func (h *RentHandler) GetAll(c *gin.Context) {
	rents, err := h.rentService.GetAll()
	if err != nil {
		respondError(c, err, "Failed to load rents")
		return
	}
	utils.SuccessResponse(c, "Rents retrieved successfully", rents)
}

// MarkPaid handles PATCH /api/v1/rents/:id/paid
// @Summary Mark a rent as paid
// @Description Owner status flip for a single rent row
// @Tags rents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rent ID"
// @Success 200 {object} utils.APIResponse{data=models.Rent} "Rent marked as paid"
// @Failure 404 {object} utils.APIResponse "Rent not found"
// @Failure 409 {object} utils.APIResponse "Already paid"
// @Router /api/v1/rents/{id}/paid [patch]
func (h *RentHandler) MarkPaid(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid rent ID", err)
		return
	}

	rent, err := h.rentService.MarkPaid(id)
	if err != nil {
		respondError(c, err, "Failed to update rent status")
		return
	}
	utils.SuccessResponse(c, "Rent marked as paid", rent)
}

// GetPending handles GET /api/v1/rents/pending
// @Summary List the session tenant's pending rents
// @Description Pending rents for the logged-in tenant ordered by month, with the summed total
// @Tags rents
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=response.PendingRentsResponse} "Pending rents retrieved successfully"
// @Router /api/v1/rents/pending [get]
func (h *RentHandler) GetPending(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "No active session")
		return
	}

	pending, err := h.rentService.GetPendingForTenant(session)
	if err != nil {
		respondError(c, err, "Failed to load pending rents")
		return
	}
	utils.SuccessResponse(c, "Pending rents retrieved successfully", pending)
}

// Pay handles POST /api/v1/rents/:id/pay
// @Summary Pay a pending rent
// @Description Validates the UPI ID locally and flips the tenant's own pending rent to paid
// @Tags rents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rent ID"
// @Param request body PayRentRequest true "UPI ID"
// @Success 200 {object} utils.APIResponse{data=response.PaymentResponse} "Payment successful"
// @Failure 400 {object} utils.APIResponse "Invalid UPI ID"
// @Failure 404 {object} utils.APIResponse "Rent not found"
// @Failure 409 {object} utils.APIResponse "Already paid"
// @Router /api/v1/rents/{id}/pay [post]
func (h *RentHandler) Pay(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "No active session")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid rent ID", err)
		return
	}

	var req PayRentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Please enter UPI ID", err)
		return
	}

	payment, err := h.rentService.Pay(session, id, req.UPIID)
	if err != nil {
		respondError(c, err, "Failed to process payment")
		return
	}

	message := fmt.Sprintf("Payment successful! Rent for %s marked as paid.", payment.Month)
	utils.SuccessResponse(c, message, payment)
}

// Export handles GET /api/v1/rents/export
// @Summary Export rents to Excel
// @Description Download every rent row as an xlsx workbook
// @Tags rents
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary "Excel file"
// @Router /api/v1/rents/export [get]
func (h *RentHandler) Export(c *gin.Context) {
	content, filename, err := h.rentService.ExportToExcel()
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to export rents", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}
