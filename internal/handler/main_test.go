package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pgms-be-svc/internal/auth"
	"pgms-be-svc/internal/config"
	"pgms-be-svc/internal/middleware"
	"pgms-be-svc/internal/models"
	"pgms-be-svc/internal/repository"
	"pgms-be-svc/internal/service"
	"pgms-be-svc/pkg/logger"
	"pgms-be-svc/pkg/utils"
)

const (
	testOwnerEmail    = "owner@pgms.local"
	testOwnerPassword = "owner-secret"
)

// testServer wires the full router against an in-memory database
type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	jwt    *auth.JWTManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Tenant{},
		&models.Rent{},
		&models.MaintenanceRequest{},
		&models.SchedulerLog{},
	))

	appLogger := logger.NewLogger("error", "text")

	ownerHash, err := auth.HashPassword(testOwnerPassword)
	require.NoError(t, err)

	jwtManager := auth.NewJWTManager(&config.JWTConfig{
		Secret:          "test-secret",
		ExpirationHours: 1,
		Issuer:          "pgms-test",
	})

	tenantRepo := repository.NewTenantRepository(db)
	rentRepo := repository.NewRentRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)

	authService := service.NewAuthService(tenantRepo, jwtManager, &config.OwnerConfig{
		Email:        testOwnerEmail,
		PasswordHash: ownerHash,
	}, appLogger)
	tenantService := service.NewTenantService(tenantRepo, rentRepo, maintenanceRepo, appLogger)
	rentService := service.NewRentService(rentRepo, tenantRepo, appLogger)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, appLogger)
	dashboardService := service.NewDashboardService(tenantRepo, rentRepo, maintenanceRepo, tenantService, appLogger)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())
	SetupRoutes(router, jwtManager, authService, tenantService, rentService, maintenanceService, dashboardService, appLogger)

	return &testServer{router: router, db: db, jwt: jwtManager}
}

func (s *testServer) ownerToken(t *testing.T) string {
	t.Helper()

	token, err := s.jwt.GenerateToken(&auth.Session{
		Email: testOwnerEmail,
		Name:  "Owner",
		Role:  auth.RoleOwner,
	})
	require.NoError(t, err)
	return token
}

func (s *testServer) tenantToken(t *testing.T, tenant *models.Tenant) string {
	t.Helper()

	token, err := s.jwt.GenerateToken(&auth.Session{
		UserID: tenant.ID,
		Email:  tenant.Email,
		Name:   tenant.Name,
		Room:   tenant.Room,
		Role:   auth.RoleTenant,
	})
	require.NoError(t, err)
	return token
}

func (s *testServer) seedTenant(t *testing.T, name, room, email, password string) *models.Tenant {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	tenant := &models.Tenant{
		Name:      name,
		Room:      room,
		ContactNo: "9999999999",
		Email:     email,
		Password:  hash,
		Deposit:   5000,
	}
	require.NoError(t, s.db.Create(tenant).Error)
	return tenant
}

func (s *testServer) seedRent(t *testing.T, name, email, month string, amount float64, status string) *models.Rent {
	t.Helper()

	rent := &models.Rent{Name: name, Email: email, Month: month, Amount: amount, Status: status}
	require.NoError(t, s.db.Create(rent).Error)
	return rent
}

// do performs a request and decodes the envelope
func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, *utils.APIResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)

	var envelope utils.APIResponse
	if recorder.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	}
	return recorder, &envelope
}

func TestHealthCheck(t *testing.T) {
	server := newTestServer(t)

	recorder, _ := server.do(t, http.MethodGet, "/api/v1/health", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestUnknownRoute(t *testing.T) {
	server := newTestServer(t)

	recorder, envelope := server.do(t, http.MethodGet, "/api/v1/nope", "", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	require.False(t, envelope.Success)
}
