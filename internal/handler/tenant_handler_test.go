package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pgms-be-svc/internal/models"
)

func TestAddTenantEndpoint(t *testing.T) {
	server := newTestServer(t)
	token := server.ownerToken(t)

	recorder, envelope := server.do(t, http.MethodPost, "/api/v1/users", token, map[string]interface{}{
		"name":       "Asha",
		"room":       "3",
		"contact_no": "9876543210",
		"email":      "asha@x.com",
		"password":   "p4ssword",
		"deposit":    5000,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.True(t, envelope.Success)

	// The hash never leaves the API
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, data, "password")
}

func TestAddTenantOccupiedRoomEndpoint(t *testing.T) {
	server := newTestServer(t)
	server.seedTenant(t, "Asha", "3", "asha@x.com", "p")
	token := server.ownerToken(t)

	recorder, _ := server.do(t, http.MethodPost, "/api/v1/users", token, map[string]interface{}{
		"name":       "Ravi",
		"room":       "3",
		"contact_no": "123",
		"email":      "ravi@x.com",
		"password":   "p",
		"deposit":    5000,
	})
	require.Equal(t, http.StatusConflict, recorder.Code)
}

func TestGetRosterRequiresOwnerRole(t *testing.T) {
	server := newTestServer(t)
	tenant := server.seedTenant(t, "Asha", "3", "asha@x.com", "p")

	recorder, _ := server.do(t, http.MethodGet, "/api/v1/users", server.tenantToken(t, tenant), nil)
	require.Equal(t, http.StatusForbidden, recorder.Code)

	recorder, _ = server.do(t, http.MethodGet, "/api/v1/users", server.ownerToken(t), nil)
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestAvailableRoomsEndpoint(t *testing.T) {
	server := newTestServer(t)
	server.seedTenant(t, "Asha", "3", "asha@x.com", "p")
	token := server.ownerToken(t)

	recorder, envelope := server.do(t, http.MethodGet, "/api/v1/rooms/available", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	rooms, ok := data["rooms"].([]interface{})
	require.True(t, ok)
	assert.Len(t, rooms, models.RoomPoolSize-1)
	assert.NotContains(t, rooms, "3")
}

func TestSettlementEndpoint(t *testing.T) {
	server := newTestServer(t)
	tenant := server.seedTenant(t, "Asha", "3", "asha@x.com", "p")
	server.seedRent(t, "Asha", "asha@x.com", "2025-01", 1000, models.RentStatusPending)
	token := server.ownerToken(t)

	recorder, envelope := server.do(t, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/settlement", tenant.ID), token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 1, data["unpaid_count"])
	assert.Equal(t, false, data["can_delete"])
}

func TestDeleteTenantEndpointRefusedWithUnpaidRents(t *testing.T) {
	server := newTestServer(t)
	tenant := server.seedTenant(t, "Asha", "3", "asha@x.com", "p")
	server.seedRent(t, "Asha", "asha@x.com", "2025-01", 1000, models.RentStatusPending)
	token := server.ownerToken(t)

	recorder, _ := server.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/users/%d", tenant.ID), token, nil)
	require.Equal(t, http.StatusConflict, recorder.Code)
}

func TestDeleteTenantEndpoint(t *testing.T) {
	server := newTestServer(t)
	tenant := server.seedTenant(t, "Asha", "3", "asha@x.com", "p")
	server.seedRent(t, "Asha", "asha@x.com", "2025-01", 1000, models.RentStatusPaid)
	token := server.ownerToken(t)

	recorder, envelope := server.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/users/%d", tenant.ID), token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, envelope.Success)

	var count int64
	server.db.Model(&models.Tenant{}).Count(&count)
	assert.Zero(t, count)
}

func TestDeleteTenantEndpointInvalidID(t *testing.T) {
	server := newTestServer(t)
	token := server.ownerToken(t)

	recorder, _ := server.do(t, http.MethodDelete, "/api/v1/users/abc", token, nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}
