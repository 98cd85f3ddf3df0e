package handler

import (
	"github.com/gin-gonic/gin"

	"pgms-be-svc/internal/service"
	"pgms-be-svc/pkg/logger"
	"pgms-be-svc/pkg/utils"
)

// DashboardHandler handles owner dashboard HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetSummary handles GET /api/v1/dashboard/summary
// @Summary Get owner dashboard summary
// @Description Tenant, room, rent and maintenance counters for the owner dashboard
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=response.DashboardSummaryResponse} "Summary retrieved successfully"
// @Router /api/v1/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary()
	if err != nil {
		respondError(c, err, "Failed to load dashboard summary")
		return
	}
	utils.SuccessResponse(c, "Dashboard summary retrieved successfully", summary)
}
