package inquiries

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/platform/kv"
	"github.com/pharmaflow/pharmaflow/internal/store"
)

// Repository owns the canonical inquiry collection.
type Repository interface {
	Get(ctx context.Context, id string) (*Inquiry, error)
	List(ctx context.Context) ([]Inquiry, error)
	Create(ctx context.Context, inquiry Inquiry) error
	Update(ctx context.Context, inquiry Inquiry) error
}

type memoryRepository struct {
	mu      sync.RWMutex
	records []Inquiry
	col     *store.Collection[[]Inquiry]
}

// NewRepository rehydrates the collection from the snapshot store, seeding
// defaults on first run.
func NewRepository(ctx context.Context, s kv.Store) (Repository, error) {
	col := store.NewCollection[[]Inquiry](s, store.KeyInquiries)
	records, err := col.Load(ctx)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			return nil, fmt.Errorf("load inquiries: %w", err)
		}
		records = Seed()
		if err := col.Save(ctx, records); err != nil {
			return nil, fmt.Errorf("seed inquiries: %w", err)
		}
	}
	return &memoryRepository{records: records, col: col}, nil
}

func (r *memoryRepository) Get(_ context.Context, id string) (*Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.records {
		if r.records[i].ID == id {
			inq := cloneInquiry(r.records[i])
			return &inq, nil
		}
	}
	return nil, fmt.Errorf("inquiry %s: %w", id, httpx.ErrNotFound)
}

func (r *memoryRepository) List(_ context.Context) ([]Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Inquiry, 0, len(r.records))
	for i := range r.records {
		out = append(out, cloneInquiry(r.records[i]))
	}
	return out, nil
}

func (r *memoryRepository) Create(ctx context.Context, inquiry Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == inquiry.ID {
			return fmt.Errorf("inquiry %s: %w", inquiry.ID, httpx.ErrDuplicate)
		}
	}
	r.records = append(r.records, cloneInquiry(inquiry))
	if err := r.col.Save(ctx, r.records); err != nil {
		r.records = r.records[:len(r.records)-1]
		return fmt.Errorf("persist inquiries: %w", err)
	}
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, inquiry Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == inquiry.ID {
			previous := r.records[i]
			r.records[i] = cloneInquiry(inquiry)
			if err := r.col.Save(ctx, r.records); err != nil {
				r.records[i] = previous
				return fmt.Errorf("persist inquiries: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("inquiry %s: %w", inquiry.ID, httpx.ErrNotFound)
}

// cloneInquiry copies the slices so callers cannot mutate stored state.
func cloneInquiry(inq Inquiry) Inquiry {
	out := inq
	out.Products = append([]string(nil), inq.Products...)
	out.FollowUps = append([]FollowUp(nil), inq.FollowUps...)
	return out
}
