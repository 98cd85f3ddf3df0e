package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pgms-be-svc/internal/auth"
	"pgms-be-svc/internal/middleware"
	"pgms-be-svc/internal/service"
	"pgms-be-svc/pkg/logger"
)

// SetupRoutes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	jwtManager *auth.JWTManager,
	authService service.AuthService,
	tenantService service.TenantService,
	rentService service.RentService,
	maintenanceService service.MaintenanceService,
	dashboardService service.DashboardService,
	logger *logger.Logger,
) {
	// Initialize handlers
	authHandler := NewAuthHandler(authService, logger)
	tenantHandler := NewTenantHandler(tenantService, logger)
	rentHandler := NewRentHandler(rentService, logger)
	maintenanceHandler := NewMaintenanceHandler(maintenanceService, logger)
	dashboardHandler := NewDashboardHandler(dashboardService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authenticated := middleware.Authenticate(jwtManager)
	ownerOnly := middleware.RequireRole(auth.RoleOwner)
	tenantOnly := middleware.RequireRole(auth.RoleTenant)

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Auth routes
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authenticated, authHandler.Logout)
			authGroup.GET("/session", authenticated, authHandler.Session)
		}

		// Tenant roster routes (owner)
		users := v1.Group("/users", authenticated, ownerOnly)
		{
			users.GET("", tenantHandler.GetRoster)
			users.POST("", tenantHandler.AddTenant)
			users.GET("/:id/settlement", tenantHandler.GetSettlement)
			users.DELETE("/:id", tenantHandler.DeleteTenant)
		}

		// Room availability (owner)
		rooms := v1.Group("/rooms", authenticated, ownerOnly)
		{
			rooms.GET("/available", tenantHandler.AvailableRooms)
		}

		// Rent routes
		rents := v1.Group("/rents", authenticated)
		{
			rents.GET("", ownerOnly, rentHandler.GetAll)
			rents.POST("/generate", ownerOnly, rentHandler.Generate)
			rents.PATCH("/:id/paid", ownerOnly, rentHandler.MarkPaid)
			rents.GET("/export", ownerOnly, rentHandler.Export)
			rents.GET("/pending", tenantOnly, rentHandler.GetPending)
			rents.POST("/:id/pay", tenantOnly, rentHandler.Pay)
		}

		// Maintenance routes
		maintenance := v1.Group("/maintenance", authenticated)
		{
			maintenance.GET("", ownerOnly, maintenanceHandler.GetAll)
			maintenance.PATCH("/:id/status", ownerOnly, maintenanceHandler.UpdateStatus)
			maintenance.POST("", tenantOnly, maintenanceHandler.Submit)
			maintenance.GET("/mine", tenantOnly, maintenanceHandler.GetMine)
		}

		// Dashboard routes (owner)
		dashboard := v1.Group("/dashboard", authenticated, ownerOnly)
		{
			dashboard.GET("/summary", dashboardHandler.GetSummary)
		}
	}
}

// HealthCheck reports service liveness
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "PG Management Backend Service",
	})
}
