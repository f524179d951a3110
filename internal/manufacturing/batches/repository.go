package batches

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/platform/kv"
	"github.com/pharmaflow/pharmaflow/internal/store"
)

// Repository owns the canonical batch collection.
type Repository interface {
	Get(ctx context.Context, id string) (*Batch, error)
	List(ctx context.Context) ([]Batch, error)
	Create(ctx context.Context, batch Batch) error
	Update(ctx context.Context, batch Batch) error
}

type memoryRepository struct {
	mu      sync.RWMutex
	records []Batch
	col     *store.Collection[[]Batch]
}

// NewRepository rehydrates the collection from the snapshot store, seeding
// defaults on first run.
func NewRepository(ctx context.Context, s kv.Store) (Repository, error) {
	col := store.NewCollection[[]Batch](s, store.KeyBatches)
	records, err := col.Load(ctx)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			return nil, fmt.Errorf("load batches: %w", err)
		}
		records = Seed()
		if err := col.Save(ctx, records); err != nil {
			return nil, fmt.Errorf("seed batches: %w", err)
		}
	}
	return &memoryRepository{records: records, col: col}, nil
}

func (r *memoryRepository) Get(_ context.Context, id string) (*Batch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.records {
		if r.records[i].ID == id {
			batch := r.records[i]
			return &batch, nil
		}
	}
	return nil, fmt.Errorf("batch %s: %w", id, httpx.ErrNotFound)
}

func (r *memoryRepository) List(_ context.Context) ([]Batch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Batch, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *memoryRepository) Create(ctx context.Context, batch Batch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == batch.ID {
			return fmt.Errorf("batch %s: %w", batch.ID, httpx.ErrDuplicate)
		}
	}
	r.records = append(r.records, batch)
	if err := r.col.Save(ctx, r.records); err != nil {
		r.records = r.records[:len(r.records)-1]
		return fmt.Errorf("persist batches: %w", err)
	}
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, batch Batch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == batch.ID {
			previous := r.records[i]
			r.records[i] = batch
			if err := r.col.Save(ctx, r.records); err != nil {
				r.records[i] = previous
				return fmt.Errorf("persist batches: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("batch %s: %w", batch.ID, httpx.ErrNotFound)
}
