package response

import "pgms-be-svc/internal/models"

// PendingRentsResponse lists a tenant's pending rents with the summed total
type PendingRentsResponse struct {
	Rents []*models.Rent `json:"rents"`
	Total float64        `json:"total"`
}

// PaymentResponse reports a confirmed rent payment
type PaymentResponse struct {
	RentID    uint    `json:"rent_id"`
	Month     string  `json:"month"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	Reference string  `json:"reference"`
}
