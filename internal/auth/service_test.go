package auth

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/platform/kv"
	"github.com/pharmaflow/pharmaflow/internal/store"
	"github.com/pharmaflow/pharmaflow/internal/users"
)

func newTestService(t *testing.T) (*Service, kv.Store) {
	t.Helper()
	s := kv.NewMemory()
	repo, err := users.NewRepository(context.Background(), s)
	require.NoError(t, err)
	svc := NewService(repo, s)
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) }
	return svc, s
}

func TestAuthenticate(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()

	user, err := svc.Authenticate(ctx, "admin@pharmaflow.com", "pharmaflow")
	require.NoError(t, err)
	require.Equal(t, "John Admin", user.Name)
	require.Empty(t, user.PasswordHash)
	require.NotNil(t, user.LastLogin)

	// Signed-in user is snapshotted for the dashboard header.
	payload, err := s.Get(ctx, store.KeyActiveUser)
	require.NoError(t, err)
	var active users.User
	require.NoError(t, json.Unmarshal([]byte(payload), &active))
	require.Equal(t, user.ID, active.ID)
	require.Empty(t, active.PasswordHash)
}

func TestAuthenticateRejections(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, "admin@pharmaflow.com", "wrong")
	require.ErrorIs(t, err, httpx.ErrUnauthorized)

	_, err = svc.Authenticate(ctx, "nobody@pharmaflow.com", "pharmaflow")
	require.ErrorIs(t, err, httpx.ErrUnauthorized)
}

func TestAuthenticateDeactivatedAccount(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.repo.FindByEmail(ctx, "sarah@pharmaflow.com")
	require.NoError(t, err)
	user.IsActive = false
	require.NoError(t, svc.repo.Update(ctx, *user))

	_, err = svc.Authenticate(ctx, "sarah@pharmaflow.com", "pharmaflow")
	require.ErrorIs(t, err, httpx.ErrUnauthorized)
}

func TestLogoutClearsActiveUser(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, "admin@pharmaflow.com", "pharmaflow")
	require.NoError(t, err)
	require.NoError(t, svc.ClearActiveUser(ctx))

	_, err = s.Get(ctx, store.KeyActiveUser)
	require.ErrorIs(t, err, kv.ErrNotFound)
}

func TestCurrentUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.CurrentUser(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, "admin@pharmaflow.com", user.Email)

	_, err = svc.CurrentUser(ctx, "")
	require.ErrorIs(t, err, httpx.ErrUnauthorized)

	_, err = svc.CurrentUser(ctx, "404")
	require.ErrorIs(t, err, httpx.ErrUnauthorized)
}
