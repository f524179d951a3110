package customers

// CreateCustomerRequest registers a new buying organization.
type CreateCustomerRequest struct {
	Name          string `json:"name" validate:"required"`
	ContactPerson string `json:"contactPerson" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	Type          string `json:"type" validate:"required,oneof=Hospital Pharmacy Distributor Clinic"`
	Address       string `json:"address"`
}
