package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"pgms-be-svc/internal/service"
	"pgms-be-svc/pkg/logger"
	"pgms-be-svc/pkg/utils"
)

// TenantHandler handles tenant roster HTTP requests
type TenantHandler struct {
	tenantService service.TenantService
	logger        *logger.Logger
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService service.TenantService, logger *logger.Logger) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
		logger:        logger,
	}
}

// GetRoster handles GET /api/v1/users
// @Summary List all tenants
// @Description Get the tenant roster, newest first
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=[]models.Tenant} "Tenants retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/users [get]
func (h *TenantHandler) GetRoster(c *gin.Context) {
	tenants, err := h.tenantService.GetRoster()
	if err != nil {
		respondError(c, err, "Failed to load tenants")
		return
	}
	utils.SuccessResponse(c, "Tenants retrieved successfully", tenants)
}

// AddTenant handles POST /api/v1/users
// @Summary Add a tenant
// @Description Create a tenant with an available room and unique email
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateTenantInput true "Tenant form"
// @Success 201 {object} utils.APIResponse{data=models.Tenant} "Tenant added successfully"
// @Failure 400 {object} utils.APIResponse "Invalid form"
// @Failure 409 {object} utils.APIResponse "Room taken or email exists"
// @Router /api/v1/users [post]
func (h *TenantHandler) AddTenant(c *gin.Context) {
	var input service.CreateTenantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	tenant, err := h.tenantService.AddTenant(input)
	if err != nil {
		respondError(c, err, "Failed to add tenant")
		return
	}

	utils.CreatedResponse(c, "Tenant added successfully", tenant)
}

// AvailableRooms handles GET /api/v1/rooms/available
// @Summary List available rooms
// @Description Room pool 1-15 minus rooms currently assigned to tenants
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=service.RoomAvailability} "Available rooms retrieved successfully"
// @Router /api/v1/rooms/available [get]
func (h *TenantHandler) AvailableRooms(c *gin.Context) {
	availability, err := h.tenantService.AvailableRooms()
	if err != nil {
		respondError(c, err, "Failed to compute available rooms")
		return
	}
	utils.SuccessResponse(c, "Available rooms retrieved successfully", availability)
}

// GetSettlement handles GET /api/v1/users/:id/settlement
// @Summary Get the delete-confirmation view for a tenant
// @Description Rent rows for the tenant's email, deposit to return and whether deletion is permitted
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tenant ID"
// @Success 200 {object} utils.APIResponse{data=response.SettlementResponse} "Settlement retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Tenant not found"
// @Router /api/v1/users/{id}/settlement [get]
func (h *TenantHandler) GetSettlement(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid tenant ID", err)
		return
	}

	settlement, err := h.tenantService.GetSettlement(id)
	if err != nil {
		respondError(c, err, "Failed to load settlement")
		return
	}
	utils.SuccessResponse(c, "Settlement retrieved successfully", settlement)
}

// DeleteTenant handles DELETE /api/v1/users/:id
// @Summary Delete a tenant
// @Description Deletes rents, maintenance requests and the tenant row, refusing while any rent is unpaid
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tenant ID"
// @Success 200 {object} utils.APIResponse "Tenant deleted successfully"
// @Failure 404 {object} utils.APIResponse "Tenant not found"
// @Failure 409 {object} utils.APIResponse "Unpaid rents remain"
// @Router /api/v1/users/{id} [delete]
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid tenant ID", err)
		return
	}

	if err := h.tenantService.DeleteTenant(id); err != nil {
		respondError(c, err, "Failed to delete tenant")
		return
	}
	utils.SuccessResponse(c, "Tenant deleted successfully", nil)
}

// parseIDParam parses a numeric path parameter
func parseIDParam(c *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}
