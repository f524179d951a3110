package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/platform/kv"
)

func newTestService(t *testing.T, store kv.Store) *Service {
	t.Helper()
	repo, err := NewRepository(context.Background(), store)
	require.NoError(t, err)
	return NewService(repo)
}

func TestSeededAccounts(t *testing.T) {
	svc := newTestService(t, kv.NewMemory())
	records, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, RoleAdmin, records[0].Role)
	require.Empty(t, records[0].PasswordHash, "hashes never leave the service")
}

func TestCreateUserHashesPassword(t *testing.T) {
	store := kv.NewMemory()
	svc := newTestService(t, store)
	ctx := context.Background()

	user, err := svc.Create(ctx, CreateUserRequest{
		Name:     "Maya Ops",
		Email:    "maya@pharmaflow.com",
		Role:     "USER",
		Password: "maya-secret-1",
	})
	require.NoError(t, err)
	require.True(t, user.IsActive)
	require.Empty(t, user.PasswordHash)

	reloaded, err := NewRepository(ctx, store)
	require.NoError(t, err)
	stored, err := reloaded.Get(ctx, user.ID)
	require.NoError(t, err)
	require.NotEqual(t, "maya-secret-1", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("maya-secret-1")))
}

func TestCreateUserValidation(t *testing.T) {
	svc := newTestService(t, kv.NewMemory())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateUserRequest{Name: "X", Email: "x@y.com", Role: "ROOT", Password: "long-enough"})
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.Create(ctx, CreateUserRequest{Name: "X", Email: "x@y.com", Role: "USER", Password: "short"})
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.Create(ctx, CreateUserRequest{Name: "X", Email: "admin@pharmaflow.com", Role: "USER", Password: "long-enough"})
	require.ErrorIs(t, err, httpx.ErrDuplicate, "duplicate email")
}

func TestSetActive(t *testing.T) {
	svc := newTestService(t, kv.NewMemory())
	ctx := context.Background()

	user, err := svc.SetActive(ctx, "2", false)
	require.NoError(t, err)
	require.False(t, user.IsActive)

	user, err = svc.SetActive(ctx, "2", true)
	require.NoError(t, err)
	require.True(t, user.IsActive)

	_, err = svc.SetActive(ctx, "404", false)
	require.ErrorIs(t, err, httpx.ErrNotFound)
}
