package users

// CreateUserRequest registers a new operator account.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,oneof=ADMIN USER"`
	Password string `json:"password" validate:"required,min=8"`
}

// SetActiveRequest toggles whether an account may sign in.
type SetActiveRequest struct {
	IsActive bool `json:"isActive"`
}
