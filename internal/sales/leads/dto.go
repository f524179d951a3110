package leads

// CreateLeadRequest registers a new lead at the top of the pipeline.
type CreateLeadRequest struct {
	CompanyName    string `json:"companyName" validate:"required"`
	ContactPerson  string `json:"contactPerson" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone"`
	EstimatedValue string `json:"estimatedValue"`
	Source         string `json:"source"`
}

// CloseLeadRequest records the final outcome of a lead.
type CloseLeadRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=WON LOST"`
	Reason  string `json:"reason" validate:"required"`
}
