package customers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/platform/kv"
	"github.com/pharmaflow/pharmaflow/internal/store"
)

// Repository owns the canonical customer collection.
type Repository interface {
	Get(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context) ([]Customer, error)
	Create(ctx context.Context, customer Customer) error
}

type memoryRepository struct {
	mu      sync.RWMutex
	records []Customer
	col     *store.Collection[[]Customer]
}

// NewRepository rehydrates the collection from the snapshot store, seeding
// defaults on first run.
func NewRepository(ctx context.Context, s kv.Store) (Repository, error) {
	col := store.NewCollection[[]Customer](s, store.KeyCustomers)
	records, err := col.Load(ctx)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			return nil, fmt.Errorf("load customers: %w", err)
		}
		records = Seed()
		if err := col.Save(ctx, records); err != nil {
			return nil, fmt.Errorf("seed customers: %w", err)
		}
	}
	return &memoryRepository{records: records, col: col}, nil
}

func (r *memoryRepository) Get(_ context.Context, id string) (*Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.records {
		if r.records[i].ID == id {
			c := r.records[i]
			return &c, nil
		}
	}
	return nil, fmt.Errorf("customer %s: %w", id, httpx.ErrNotFound)
}

func (r *memoryRepository) List(_ context.Context) ([]Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Customer, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *memoryRepository) Create(ctx context.Context, customer Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == customer.ID {
			return fmt.Errorf("customer %s: %w", customer.ID, httpx.ErrDuplicate)
		}
	}
	r.records = append(r.records, customer)
	if err := r.col.Save(ctx, r.records); err != nil {
		r.records = r.records[:len(r.records)-1]
		return fmt.Errorf("persist customers: %w", err)
	}
	return nil
}
