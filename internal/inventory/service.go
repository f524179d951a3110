package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/shared"
)

// defaultMinThreshold is applied when an item is stocked without one.
const defaultMinThreshold = 10

// Service implements resource inventory control.
type Service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService constructs a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Create stocks a new item. The id prefix follows the type: RM- for raw
// materials, PK- for packaging, FG- for finished goods.
func (s *Service) Create(ctx context.Context, req CreateItemRequest) (*Item, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}
	threshold := req.MinThreshold
	if threshold == 0 {
		threshold = defaultMinThreshold
	}
	prefix := "RM"
	switch ItemType(req.Type) {
	case TypePackaging:
		prefix = "PK"
	case TypeFinishedGood:
		prefix = "FG"
	}
	item := Item{
		ID:           shared.NewID(prefix),
		Name:         strings.TrimSpace(req.Name),
		Type:         ItemType(req.Type),
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		MinThreshold: threshold,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create inventory item: %w", err)
	}
	return &item, nil
}

// Adjust applies a signed stock movement. The resulting quantity must not
// go negative.
func (s *Service) Adjust(ctx context.Context, id string, delta int) (*Item, error) {
	if delta == 0 {
		return nil, fmt.Errorf("%w: delta must not be zero", httpx.ErrValidation)
	}
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	next := item.Quantity + delta
	if next < 0 {
		return nil, fmt.Errorf("%w: adjustment of %d would leave %s at %d", httpx.ErrValidation, delta, id, next)
	}
	item.Quantity = next
	if err := s.repo.Update(ctx, *item); err != nil {
		return nil, fmt.Errorf("adjust inventory item: %w", err)
	}
	return item, nil
}

// LowStock returns the items strictly below their reorder threshold.
func (s *Service) LowStock(ctx context.Context) ([]Item, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	low := make([]Item, 0)
	for _, item := range records {
		if item.LowStock() {
			low = append(low, item)
		}
	}
	return low, nil
}

// Get returns one item by id.
func (s *Service) Get(ctx context.Context, id string) (*Item, error) {
	return s.repo.Get(ctx, id)
}

// List returns all items.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx)
}
