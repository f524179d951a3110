package leads

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/platform/kv"
	"github.com/pharmaflow/pharmaflow/internal/store"
)

// Repository owns the canonical lead collection.
type Repository interface {
	Get(ctx context.Context, id string) (*Lead, error)
	List(ctx context.Context) ([]Lead, error)
	Create(ctx context.Context, lead Lead) error
	Update(ctx context.Context, lead Lead) error
}

type memoryRepository struct {
	mu      sync.RWMutex
	records []Lead
	col     *store.Collection[[]Lead]
}

// NewRepository rehydrates the collection from the snapshot store, seeding
// defaults on first run.
func NewRepository(ctx context.Context, s kv.Store) (Repository, error) {
	col := store.NewCollection[[]Lead](s, store.KeyLeads)
	records, err := col.Load(ctx)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			return nil, fmt.Errorf("load leads: %w", err)
		}
		records = Seed()
		if err := col.Save(ctx, records); err != nil {
			return nil, fmt.Errorf("seed leads: %w", err)
		}
	}
	return &memoryRepository{records: records, col: col}, nil
}

func (r *memoryRepository) Get(_ context.Context, id string) (*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.records {
		if r.records[i].ID == id {
			lead := r.records[i]
			return &lead, nil
		}
	}
	return nil, fmt.Errorf("lead %s: %w", id, httpx.ErrNotFound)
}

func (r *memoryRepository) List(_ context.Context) ([]Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Lead, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *memoryRepository) Create(ctx context.Context, lead Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == lead.ID {
			return fmt.Errorf("lead %s: %w", lead.ID, httpx.ErrDuplicate)
		}
	}
	r.records = append(r.records, lead)
	if err := r.col.Save(ctx, r.records); err != nil {
		r.records = r.records[:len(r.records)-1]
		return fmt.Errorf("persist leads: %w", err)
	}
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, lead Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == lead.ID {
			previous := r.records[i]
			r.records[i] = lead
			if err := r.col.Save(ctx, r.records); err != nil {
				r.records[i] = previous
				return fmt.Errorf("persist leads: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("lead %s: %w", lead.ID, httpx.ErrNotFound)
}
