package inquiries

// CreateInquiryRequest logs a new customer inquiry. Products are free-text
// names as captured from the customer, not catalog ids.
type CreateInquiryRequest struct {
	CustomerID string   `json:"customerId" validate:"required"`
	Products   []string `json:"products" validate:"required,min=1,dive,required"`
	Notes      string   `json:"notes"`
}

// LogFollowUpRequest appends an interaction to the follow-up log.
type LogFollowUpRequest struct {
	Type    string `json:"type" validate:"required,oneof=Email Call Meeting Note"`
	Summary string `json:"summary" validate:"required"`
}

// UpdateStatusRequest moves an inquiry to an explicit status. All declared
// statuses are accepted; the lifecycle deliberately has no guard rails.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
