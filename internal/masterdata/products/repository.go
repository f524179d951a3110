package products

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/platform/kv"
	"github.com/pharmaflow/pharmaflow/internal/store"
)

// Repository owns the canonical product catalog.
type Repository interface {
	Get(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, product Product) error
}

type memoryRepository struct {
	mu      sync.RWMutex
	records []Product
	col     *store.Collection[[]Product]
}

// NewRepository rehydrates the catalog from the snapshot store, seeding
// defaults on first run.
func NewRepository(ctx context.Context, s kv.Store) (Repository, error) {
	col := store.NewCollection[[]Product](s, store.KeyProducts)
	records, err := col.Load(ctx)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			return nil, fmt.Errorf("load products: %w", err)
		}
		records = Seed()
		if err := col.Save(ctx, records); err != nil {
			return nil, fmt.Errorf("seed products: %w", err)
		}
	}
	return &memoryRepository{records: records, col: col}, nil
}

func (r *memoryRepository) Get(_ context.Context, id string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.records {
		if r.records[i].ID == id {
			p := r.records[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product %s: %w", id, httpx.ErrNotFound)
}

func (r *memoryRepository) List(_ context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *memoryRepository) Create(ctx context.Context, product Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == product.ID {
			return fmt.Errorf("product %s: %w", product.ID, httpx.ErrDuplicate)
		}
	}
	r.records = append(r.records, product)
	if err := r.col.Save(ctx, r.records); err != nil {
		r.records = r.records[:len(r.records)-1]
		return fmt.Errorf("persist products: %w", err)
	}
	return nil
}
