package inventory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/platform/kv"
	"github.com/pharmaflow/pharmaflow/internal/store"
)

// Repository owns the canonical inventory collection.
type Repository interface {
	Get(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context) ([]Item, error)
	Create(ctx context.Context, item Item) error
	Update(ctx context.Context, item Item) error
}

type memoryRepository struct {
	mu      sync.RWMutex
	records []Item
	col     *store.Collection[[]Item]
}

// NewRepository rehydrates the collection from the snapshot store, seeding
// defaults on first run.
func NewRepository(ctx context.Context, s kv.Store) (Repository, error) {
	col := store.NewCollection[[]Item](s, store.KeyInventory)
	records, err := col.Load(ctx)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			return nil, fmt.Errorf("load inventory: %w", err)
		}
		records = Seed()
		if err := col.Save(ctx, records); err != nil {
			return nil, fmt.Errorf("seed inventory: %w", err)
		}
	}
	return &memoryRepository{records: records, col: col}, nil
}

func (r *memoryRepository) Get(_ context.Context, id string) (*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.records {
		if r.records[i].ID == id {
			item := r.records[i]
			return &item, nil
		}
	}
	return nil, fmt.Errorf("inventory item %s: %w", id, httpx.ErrNotFound)
}

func (r *memoryRepository) List(_ context.Context) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Item, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *memoryRepository) Create(ctx context.Context, item Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == item.ID {
			return fmt.Errorf("inventory item %s: %w", item.ID, httpx.ErrDuplicate)
		}
	}
	r.records = append(r.records, item)
	if err := r.col.Save(ctx, r.records); err != nil {
		r.records = r.records[:len(r.records)-1]
		return fmt.Errorf("persist inventory: %w", err)
	}
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, item Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == item.ID {
			previous := r.records[i]
			r.records[i] = item
			if err := r.col.Save(ctx, r.records); err != nil {
				r.records[i] = previous
				return fmt.Errorf("persist inventory: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("inventory item %s: %w", item.ID, httpx.ErrNotFound)
}
