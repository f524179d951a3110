package users

import "golang.org/x/crypto/bcrypt"

// defaultPassword is the bootstrap credential for seeded accounts. Deploys
// are expected to rotate it through the admin panel.
const defaultPassword = "pharmaflow"

func hash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}

// Seed returns the default accounts used when no snapshot exists.
func Seed() []User {
	return []User{
		{ID: "1", Name: "John Admin", Email: "admin@pharmaflow.com", Role: RoleAdmin, IsActive: true, PasswordHash: hash(defaultPassword)},
		{ID: "2", Name: "Sarah Executive", Email: "sarah@pharmaflow.com", Role: RoleUser, IsActive: true, PasswordHash: hash(defaultPassword)},
	}
}
