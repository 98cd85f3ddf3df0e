package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pgms-be-svc/internal/auth"
	"pgms-be-svc/internal/models"
	"pgms-be-svc/pkg/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Tenant{},
		&models.Rent{},
		&models.MaintenanceRequest{},
		&models.SchedulerLog{},
	)
	require.NoError(t, err)

	return db
}

func newTestLogger() *logger.Logger {
	return logger.NewLogger("error", "text")
}

func seedTenant(t *testing.T, db *gorm.DB, name, room, email, password string, deposit float64) *models.Tenant {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	tenant := &models.Tenant{
		Name:      name,
		Room:      room,
		ContactNo: "9999999999",
		Email:     email,
		Password:  hash,
		Deposit:   deposit,
	}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}

func seedRent(t *testing.T, db *gorm.DB, name, email, month string, amount float64, status string) *models.Rent {
	t.Helper()

	rent := &models.Rent{
		Name:   name,
		Email:  email,
		Month:  month,
		Amount: amount,
		Status: status,
	}
	require.NoError(t, db.Create(rent).Error)
	return rent
}

func tenantSession(tenant *models.Tenant) *auth.Session {
	return &auth.Session{
		UserID: tenant.ID,
		Email:  tenant.Email,
		Name:   tenant.Name,
		Room:   tenant.Room,
		Role:   auth.RoleTenant,
	}
}
