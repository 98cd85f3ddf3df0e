package response

import "pgms-be-svc/internal/models"

// SettlementResponse is the delete-confirmation view for a tenant: every
// rent row for their email, the deposit to return, and whether deletion
// is currently permitted.
type SettlementResponse struct {
	TenantID    uint           `json:"tenant_id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Deposit     float64        `json:"deposit"`
	Rents       []*models.Rent `json:"rents"`
	UnpaidCount int            `json:"unpaid_count"`
	CanDelete   bool           `json:"can_delete"`
}
