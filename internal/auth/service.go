// Package auth implements the login stub: credential verification against
// the stored accounts and session binding. There is no authorization layer;
// a signed-in user can reach every screen.
package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/platform/kv"
	"github.com/pharmaflow/pharmaflow/internal/shared"
	"github.com/pharmaflow/pharmaflow/internal/store"
	"github.com/pharmaflow/pharmaflow/internal/users"
)

// Service wraps authentication business rules.
type Service struct {
	repo    users.Repository
	kvStore kv.Store
	now     shared.Clock
}

// NewService constructs a Service.
func NewService(repo users.Repository, kvStore kv.Store) *Service {
	return &Service{repo: repo, kvStore: kvStore, now: shared.SystemClock}
}

// Authenticate validates email/password credentials against the stored
// accounts. Unknown accounts, deactivated accounts, and wrong passwords all
// return the same error.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*users.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", httpx.ErrUnauthorized)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: invalid credentials", httpx.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", httpx.ErrUnauthorized)
	}

	stamp := s.now()
	user.LastLogin = &stamp
	if err := s.repo.Update(ctx, *user); err != nil {
		return nil, fmt.Errorf("record login: %w", err)
	}
	if err := s.storeActiveUser(ctx, *user); err != nil {
		return nil, err
	}
	public := user.Public()
	return &public, nil
}

// storeActiveUser snapshots the signed-in user under pharmaflow_active_user.
func (s *Service) storeActiveUser(ctx context.Context, user users.User) error {
	payload, err := json.Marshal(user.Public())
	if err != nil {
		return fmt.Errorf("encode active user: %w", err)
	}
	if err := s.kvStore.Set(ctx, store.KeyActiveUser, string(payload)); err != nil {
		return fmt.Errorf("persist active user: %w", err)
	}
	return nil
}

// ClearActiveUser removes the active-user snapshot on logout.
func (s *Service) ClearActiveUser(ctx context.Context) error {
	if err := s.kvStore.Delete(ctx, store.KeyActiveUser); err != nil {
		return fmt.Errorf("clear active user: %w", err)
	}
	return nil
}

// CurrentUser resolves the account bound to the session.
func (s *Service) CurrentUser(ctx context.Context, userID string) (*users.User, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: not signed in", httpx.ErrUnauthorized)
	}
	user, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: not signed in", httpx.ErrUnauthorized)
	}
	public := user.Public()
	return &public, nil
}
