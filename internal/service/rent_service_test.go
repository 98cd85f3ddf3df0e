package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"pgms-be-svc/internal/apperr"
	"pgms-be-svc/internal/models"
	"pgms-be-svc/internal/repository"
)

func newRentService(t *testing.T) (RentService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	svc := NewRentService(
		repository.NewRentRepository(db),
		repository.NewTenantRepository(db),
		newTestLogger(),
	)
	return svc, db
}

func TestGenerateRentForAllTenants(t *testing.T) {
	svc, db := newRentService(t)
	seedTenant(t, db, "A", "1", "a@x.com", "p", 5000)
	seedTenant(t, db, "B", "2", "b@x.com", "p", 5000)

	result, err := svc.Generate("2025-01", 1000)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Generated)
	assert.Zero(t, result.Skipped)

	rents, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, rents, 2)
	for _, rent := range rents {
		assert.Equal(t, "2025-01", rent.Month)
		assert.EqualValues(t, 1000, rent.Amount)
		assert.Equal(t, models.RentStatusPending, rent.Status)
	}
}

func TestGenerateRentIdempotentPerMonth(t *testing.T) {
	svc, db := newRentService(t)
	seedTenant(t, db, "A", "1", "a@x.com", "p", 5000)
	seedTenant(t, db, "B", "2", "b@x.com", "p", 5000)

	first, err := svc.Generate("2025-01", 1000)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Generated)

	// Repeating the same month yields no new rows, regardless of amount
	second, err := svc.Generate("2025-01", 2500)
	require.NoError(t, err)
	assert.Zero(t, second.Generated)
	assert.Equal(t, 2, second.Skipped)
	assert.Contains(t, second.Message, "already have rent generated")

	var count int64
	db.Model(&models.Rent{}).Where("month = ?", "2025-01").Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestGenerateRentSkipsCaseInsensitiveEmail(t *testing.T) {
	svc, db := newRentService(t)
	seedTenant(t, db, "A", "1", "foo@bar.com", "p", 5000)
	seedTenant(t, db, "B", "2", "b@x.com", "p", 5000)
	// Existing row stored with different email casing
	seedRent(t, db, "A", "Foo@Bar.com", "2025-01", 1000, models.RentStatusPending)

	result, err := svc.Generate("2025-01", 1000)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Generated)
	assert.Equal(t, 1, result.Skipped)
}

func TestGenerateRentFoldEqualRosterEmails(t *testing.T) {
	svc, db := newRentService(t)
	// Fold-equal duplicates slip past the case-sensitive unique index; the
	// run must still produce one row per folded email
	seedTenant(t, db, "A", "1", "Foo@Bar.com", "p", 5000)
	seedTenant(t, db, "A2", "2", "foo@bar.com", "p", 5000)

	result, err := svc.Generate("2025-01", 1000)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Generated)
	assert.Equal(t, 1, result.Skipped)

	var count int64
	db.Model(&models.Rent{}).Where("month = ?", "2025-01").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestGenerateRentOnlyCoversMissingMonth(t *testing.T) {
	svc, db := newRentService(t)
	seedTenant(t, db, "A", "1", "a@x.com", "p", 5000)
	seedRent(t, db, "A", "a@x.com", "2025-01", 1000, models.RentStatusPaid)

	// A different month is unaffected by January's rows
	result, err := svc.Generate("2025-02", 1200)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Generated)
}

func TestGenerateRentInvalidInput(t *testing.T) {
	svc, db := newRentService(t)
	seedTenant(t, db, "A", "1", "a@x.com", "p", 5000)

	_, err := svc.Generate("", 1000)
	assert.True(t, apperr.IsKind(err, apperr.Validation))

	_, err = svc.Generate("2025-01", 0)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestGenerateRentNoTenants(t *testing.T) {
	svc, _ := newRentService(t)

	_, err := svc.Generate("2025-01", 1000)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestMarkPaid(t *testing.T) {
	svc, db := newRentService(t)
	rent := seedRent(t, db, "A", "a@x.com", "2025-01", 1000, models.RentStatusPending)

	updated, err := svc.MarkPaid(rent.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RentStatusPaid, updated.Status)

	// A second flip is a conflict
	_, err = svc.MarkPaid(rent.ID)
	assert.True(t, apperr.IsKind(err, apperr.Conflict))
}

func TestMarkPaidNotFound(t *testing.T) {
	svc, _ := newRentService(t)

	_, err := svc.MarkPaid(99)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestGetPendingForTenant(t *testing.T) {
	svc, db := newRentService(t)
	tenant := seedTenant(t, db, "A", "1", "a@x.com", "p", 5000)
	seedRent(t, db, "A", "A@X.com", "2025-02", 1200, models.RentStatusPending)
	seedRent(t, db, "A", "a@x.com", "2025-01", 1000, models.RentStatusPending)
	seedRent(t, db, "A", "a@x.com", "2024-12", 900, models.RentStatusPaid)
	seedRent(t, db, "B", "b@x.com", "2025-01", 1000, models.RentStatusPending)

	pending, err := svc.GetPendingForTenant(tenantSession(tenant))
	require.NoError(t, err)
	require.Len(t, pending.Rents, 2, "paid and foreign rows are excluded, casing is ignored")
	assert.EqualValues(t, 2200, pending.Total)

	// Sorted by month label ascending
	assert.Equal(t, "2025-01", pending.Rents[0].Month)
	assert.Equal(t, "2025-02", pending.Rents[1].Month)
}

func TestPayRent(t *testing.T) {
	svc, db := newRentService(t)
	tenant := seedTenant(t, db, "A", "1", "a@x.com", "p", 5000)
	rent := seedRent(t, db, "A", "a@x.com", "2025-01", 1200, models.RentStatusPending)

	payment, err := svc.Pay(tenantSession(tenant), rent.ID, "name@bank")
	require.NoError(t, err)
	assert.Equal(t, rent.ID, payment.RentID)
	assert.Equal(t, models.RentStatusPaid, payment.Status)
	assert.True(t, strings.HasPrefix(payment.Reference, "upi-"))

	pending, err := svc.GetPendingForTenant(tenantSession(tenant))
	require.NoError(t, err)
	assert.Empty(t, pending.Rents)
	assert.Zero(t, pending.Total)
}

func TestPayRentInvalidUPIID(t *testing.T) {
	svc, db := newRentService(t)
	tenant := seedTenant(t, db, "A", "1", "a@x.com", "p", 5000)
	rent := seedRent(t, db, "A", "a@x.com", "2025-01", 1200, models.RentStatusPending)

	_, err := svc.Pay(tenantSession(tenant), rent.ID, "bad-format")
	assert.True(t, apperr.IsKind(err, apperr.Validation))

	// Rejected locally: the row is untouched
	var stored models.Rent
	require.NoError(t, db.First(&stored, rent.ID).Error)
	assert.Equal(t, models.RentStatusPending, stored.Status)
}

func TestPayRentOwnedByAnotherTenant(t *testing.T) {
	svc, db := newRentService(t)
	tenant := seedTenant(t, db, "A", "1", "a@x.com", "p", 5000)
	foreign := seedRent(t, db, "B", "b@x.com", "2025-01", 1200, models.RentStatusPending)

	_, err := svc.Pay(tenantSession(tenant), foreign.ID, "name@bank")
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestPayRentAlreadyPaid(t *testing.T) {
	svc, db := newRentService(t)
	tenant := seedTenant(t, db, "A", "1", "a@x.com", "p", 5000)
	rent := seedRent(t, db, "A", "a@x.com", "2025-01", 1200, models.RentStatusPaid)

	_, err := svc.Pay(tenantSession(tenant), rent.ID, "name@bank")
	assert.True(t, apperr.IsKind(err, apperr.Conflict))
}

func TestExportToExcel(t *testing.T) {
	svc, db := newRentService(t)
	seedRent(t, db, "A", "a@x.com", "2025-01", 1000, models.RentStatusPending)
	seedRent(t, db, "B", "b@x.com", "2025-01", 1000, models.RentStatusPaid)

	content, filename, err := svc.ExportToExcel()
	require.NoError(t, err)
	assert.NotEmpty(t, content)
	assert.True(t, strings.HasPrefix(filename, "rent_export_"))
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))
}

func TestExportToExcelFormatsCurrency(t *testing.T) {
	svc, db := newRentService(t)
	seedRent(t, db, "A", "a@x.com", "2025-01", 1234.5, models.RentStatusPending)

	content, _, err := svc.ExportToExcel()
	require.NoError(t, err)

	workbook, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer workbook.Close()

	amount, err := workbook.GetCellValue("Rent Data", "E2")
	require.NoError(t, err)
	assert.Equal(t, "₹1234.50", amount)
}
