package quotations

// CreateQuotationItemRequest is one line of an incoming draft. Quantity 0
// applies the builder default.
type CreateQuotationItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

// CreateQuotationRequest submits an assembled draft for finalization.
// InquiryID is optional; quotations without one are recorded as "Direct".
type CreateQuotationRequest struct {
	InquiryID  string                       `json:"inquiryId"`
	CustomerID string                       `json:"customerId" validate:"required"`
	Items      []CreateQuotationItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateStatusRequest moves a quotation to an explicit status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
