package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/platform/kv"
	"github.com/pharmaflow/pharmaflow/internal/store"
)

// Repository owns the canonical user collection.
type Repository interface {
	Get(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, user User) error
	Update(ctx context.Context, user User) error
}

type memoryRepository struct {
	mu      sync.RWMutex
	records []User
	col     *store.Collection[[]User]
}

// NewRepository rehydrates the collection from the snapshot store, seeding
// defaults on first run.
func NewRepository(ctx context.Context, s kv.Store) (Repository, error) {
	col := store.NewCollection[[]User](s, store.KeyUsers)
	records, err := col.Load(ctx)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			return nil, fmt.Errorf("load users: %w", err)
		}
		records = Seed()
		if err := col.Save(ctx, records); err != nil {
			return nil, fmt.Errorf("seed users: %w", err)
		}
	}
	return &memoryRepository{records: records, col: col}, nil
}

func (r *memoryRepository) Get(_ context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.records {
		if r.records[i].ID == id {
			user := r.records[i]
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id, httpx.ErrNotFound)
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.records {
		if strings.EqualFold(r.records[i].Email, email) {
			user := r.records[i]
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, httpx.ErrNotFound)
}

func (r *memoryRepository) List(_ context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]User, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *memoryRepository) Create(ctx context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == user.ID || strings.EqualFold(r.records[i].Email, user.Email) {
			return fmt.Errorf("user %s: %w", user.Email, httpx.ErrDuplicate)
		}
	}
	r.records = append(r.records, user)
	if err := r.col.Save(ctx, r.records); err != nil {
		r.records = r.records[:len(r.records)-1]
		return fmt.Errorf("persist users: %w", err)
	}
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == user.ID {
			previous := r.records[i]
			r.records[i] = user
			if err := r.col.Save(ctx, r.records); err != nil {
				r.records[i] = previous
				return fmt.Errorf("persist users: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("user %s: %w", user.ID, httpx.ErrNotFound)
}
