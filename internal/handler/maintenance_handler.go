package handler

import (
	"github.com/gin-gonic/gin"

	"pgms-be-svc/internal/middleware"
	"pgms-be-svc/internal/service"
	"pgms-be-svc/pkg/logger"
	"pgms-be-svc/pkg/utils"
)

// SubmitMaintenanceRequest represents the tenant maintenance form
type SubmitMaintenanceRequest struct {
	Request string `json:"request" binding:"required"`
}

// UpdateMaintenanceStatusRequest represents the owner status-change form
type UpdateMaintenanceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open in-progress closed"`
}

// MaintenanceHandler handles maintenance HTTP requests
type MaintenanceHandler struct {
	maintenanceService service.MaintenanceService
	logger             *logger.Logger
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(maintenanceService service.MaintenanceService, logger *logger.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
		logger:             logger,
	}
}

// Submit handles POST /api/v1/maintenance
// @Summary Submit a maintenance request
// @Description Create an open request with the session tenant's name and email
// @Tags maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SubmitMaintenanceRequest true "Request description"
// @Success 201 {object} utils.APIResponse{data=models.MaintenanceRequest} "Request submitted successfully"
// @Failure 400 {object} utils.APIResponse "Empty description"
// @Router /api/v1/maintenance [post]
func (h *MaintenanceHandler) Submit(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "No active session")
		return
	}

	var req SubmitMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Please enter a request description", err)
		return
	}

	request, err := h.maintenanceService.Submit(session, req.Request)
	if err != nil {
		respondError(c, err, "Failed to submit request")
		return
	}

	utils.CreatedResponse(c, "Maintenance request submitted successfully", request)
}

// GetAll handles GET /api/v1/maintenance
// @Summary List all maintenance requests
// @Description Get every maintenance request, newest first
// @Tags maintenance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=[]models.MaintenanceRequest} "Requests retrieved successfully"
// @Router /api/v1/maintenance [get]
func (h *MaintenanceHandler) GetAll(c *gin.Context) {
	requests, err := h.maintenanceService.GetAll()
	if err != nil {
		respondError(c, err, "Failed to load maintenance requests")
		return
	}
	utils.SuccessResponse(c, "Maintenance requests retrieved successfully", requests)
}

// GetMine handles GET /api/v1/maintenance/mine
// @Summary List the session tenant's maintenance requests
// @Tags maintenance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=[]models.MaintenanceRequest} "Requests retrieved successfully"
// @Router /api/v1/maintenance/mine [get]
func (h *MaintenanceHandler) GetMine(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "No active session")
		return
	}

	requests, err := h.maintenanceService.GetForTenant(session)
	if err != nil {
		respondError(c, err, "Failed to load maintenance requests")
		return
	}
	utils.SuccessResponse(c, "Maintenance requests retrieved successfully", requests)
}

// UpdateStatus handles PATCH /api/v1/maintenance/:id/status
// @Summary Update a maintenance request status
// @Description Move a request to open, in-progress or closed
// @Tags maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body UpdateMaintenanceStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse "Status updated successfully"
// @Failure 400 {object} utils.APIResponse "Invalid status"
// @Failure 404 {object} utils.APIResponse "Request not found"
// @Router /api/v1/maintenance/{id}/status [patch]
func (h *MaintenanceHandler) UpdateStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid request ID", err)
		return
	}

	var req UpdateMaintenanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Status must be one of open, in-progress, closed", err)
		return
	}

	updated, err := h.maintenanceService.UpdateStatus(id, req.Status)
	if err != nil {
		respondError(c, err, "Failed to update maintenance status")
		return
	}
	utils.SuccessResponse(c, "Maintenance status updated successfully", updated)
}
