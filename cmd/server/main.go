package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"pgms-be-svc/docs"
	"pgms-be-svc/internal/auth"
	"pgms-be-svc/internal/config"
	"pgms-be-svc/internal/database"
	"pgms-be-svc/internal/handler"
	"pgms-be-svc/internal/middleware"
	"pgms-be-svc/internal/repository"
	"pgms-be-svc/internal/scheduler"
	"pgms-be-svc/internal/service"
	"pgms-be-svc/pkg/logger"
)

// @title PG Management Backend Service API
// @version 1.0
// @description RESTful API for the PG management owner and tenant dashboards
// @termsOfService http://swagger.io/terms/

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting PG Management Backend Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize repositories
	tenantRepo := repository.NewTenantRepository(db.DB)
	rentRepo := repository.NewRentRepository(db.DB)
	maintenanceRepo := repository.NewMaintenanceRepository(db.DB)
	schedulerLogRepo := repository.NewSchedulerLogRepository(db.DB)

	// Initialize services
	jwtManager := auth.NewJWTManager(&cfg.JWT)
	authService := service.NewAuthService(tenantRepo, jwtManager, &cfg.Owner, appLogger)
	tenantService := service.NewTenantService(tenantRepo, rentRepo, maintenanceRepo, appLogger)
	rentService := service.NewRentService(rentRepo, tenantRepo, appLogger)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, appLogger)
	dashboardService := service.NewDashboardService(tenantRepo, rentRepo, maintenanceRepo, tenantService, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Metrics())
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Setup routes
	handler.SetupRoutes(router, jwtManager, authService, tenantService, rentService, maintenanceService, dashboardService, appLogger)

	// Start rent scheduler when configured
	var rentScheduler *scheduler.RentScheduler
	if cfg.Scheduler.RentCronExpression != "" {
		rentScheduler = scheduler.NewRentScheduler(rentService, schedulerLogRepo, appLogger, cfg.Scheduler.RentCronExpression, cfg.Scheduler.DefaultRentAmount)
		if err := rentScheduler.Start(); err != nil {
			appLogger.WithField("error", err).Fatal("Failed to start rent scheduler")
		}
	} else {
		appLogger.Info("Rent scheduler disabled: no cron expression configured")
	}

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	if rentScheduler != nil {
		rentScheduler.Stop()
	}

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
