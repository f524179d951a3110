package users

import "time"

// Role partitions the admin screens from the marketing workspace. There is
// no authorization layer behind it; the role only drives UI routing.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Valid reports whether r is a declared role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User is an operator account. PasswordHash is a bcrypt hash and never
// leaves the service in responses.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	PasswordHash string     `json:"passwordHash,omitempty"`
}

// Public returns a copy safe for JSON responses.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
