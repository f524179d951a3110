package users

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/shared"
)

// Service implements operator account administration.
type Service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService constructs a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Create registers an active account with a bcrypt password hash.
func (s *Service) Create(ctx context.Context, req CreateUserRequest) (*User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := User{
		ID:           shared.NewID("USR"),
		Name:         req.Name,
		Email:        req.Email,
		Role:         Role(req.Role),
		IsActive:     true,
		PasswordHash: string(hashed),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	public := user.Public()
	return &public, nil
}

// SetActive toggles whether the account may sign in.
func (s *Service) SetActive(ctx context.Context, id string, active bool) (*User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	user.IsActive = active
	if err := s.repo.Update(ctx, *user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	public := user.Public()
	return &public, nil
}

// List returns all accounts without password hashes.
func (s *Service) List(ctx context.Context) ([]User, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]User, 0, len(records))
	for _, user := range records {
		out = append(out, user.Public())
	}
	return out, nil
}

// Get returns one account without its password hash.
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	public := user.Public()
	return &public, nil
}
