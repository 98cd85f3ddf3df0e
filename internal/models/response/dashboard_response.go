package response

// DashboardSummaryResponse aggregates the owner dashboard counters
type DashboardSummaryResponse struct {
	TotalTenants       int64    `json:"total_tenants"`
	OccupiedRooms      int      `json:"occupied_rooms"`
	AvailableRooms     []string `json:"available_rooms"`
	PendingRents       int64    `json:"pending_rents"`
	PaidRents          int64    `json:"paid_rents"`
	TotalPendingAmount float64  `json:"total_pending_amount"`
	OpenMaintenance    int64    `json:"open_maintenance"`
}
