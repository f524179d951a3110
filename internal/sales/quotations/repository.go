package quotations

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/platform/kv"
	"github.com/pharmaflow/pharmaflow/internal/store"
)

// Repository owns the canonical quotation collection.
type Repository interface {
	Get(ctx context.Context, id string) (*Quotation, error)
	List(ctx context.Context) ([]Quotation, error)
	Create(ctx context.Context, quotation Quotation) error
	Update(ctx context.Context, quotation Quotation) error
}

type memoryRepository struct {
	mu      sync.RWMutex
	records []Quotation
	col     *store.Collection[[]Quotation]
}

// NewRepository rehydrates the collection from the snapshot store, seeding
// defaults on first run.
func NewRepository(ctx context.Context, s kv.Store) (Repository, error) {
	col := store.NewCollection[[]Quotation](s, store.KeyQuotations)
	records, err := col.Load(ctx)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			return nil, fmt.Errorf("load quotations: %w", err)
		}
		records = Seed()
		if err := col.Save(ctx, records); err != nil {
			return nil, fmt.Errorf("seed quotations: %w", err)
		}
	}
	return &memoryRepository{records: records, col: col}, nil
}

func (r *memoryRepository) Get(_ context.Context, id string) (*Quotation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.records {
		if r.records[i].ID == id {
			q := cloneQuotation(r.records[i])
			return &q, nil
		}
	}
	return nil, fmt.Errorf("quotation %s: %w", id, httpx.ErrNotFound)
}

func (r *memoryRepository) List(_ context.Context) ([]Quotation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Quotation, 0, len(r.records))
	for i := range r.records {
		out = append(out, cloneQuotation(r.records[i]))
	}
	return out, nil
}

func (r *memoryRepository) Create(ctx context.Context, quotation Quotation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == quotation.ID {
			return fmt.Errorf("quotation %s: %w", quotation.ID, httpx.ErrDuplicate)
		}
	}
	r.records = append(r.records, cloneQuotation(quotation))
	if err := r.col.Save(ctx, r.records); err != nil {
		r.records = r.records[:len(r.records)-1]
		return fmt.Errorf("persist quotations: %w", err)
	}
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, quotation Quotation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == quotation.ID {
			previous := r.records[i]
			r.records[i] = cloneQuotation(quotation)
			if err := r.col.Save(ctx, r.records); err != nil {
				r.records[i] = previous
				return fmt.Errorf("persist quotations: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("quotation %s: %w", quotation.ID, httpx.ErrNotFound)
}

func cloneQuotation(q Quotation) Quotation {
	out := q
	out.Items = append([]Item(nil), q.Items...)
	out.Comments = append([]Comment(nil), q.Comments...)
	out.Attachments = append([]Attachment(nil), q.Attachments...)
	return out
}
