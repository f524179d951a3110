package batches

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/shared"
)

// shelfLifeDays is the fixed expiry window from the manufacturing date.
const shelfLifeDays = 730

// ProductResolver resolves a catalog product id to its display name.
type ProductResolver func(ctx context.Context, productID string) (name string, err error)

// Service implements batch production tracking.
type Service struct {
	repo     Repository
	resolve  ProductResolver
	validate *validator.Validate
	now      shared.Clock
}

// NewService constructs a Service.
func NewService(repo Repository, resolve ProductResolver) *Service {
	return &Service{
		repo:     repo,
		resolve:  resolve,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      shared.SystemClock,
	}
}

// Create plans a batch dated today: status PLANNED, expiry 730 days out,
// product name snapshotted from the catalog.
func (s *Service) Create(ctx context.Context, req CreateBatchRequest) (*Batch, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}
	name, err := s.resolve(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("%w: productId %s does not resolve to a known product", httpx.ErrValidation, req.ProductID)
	}

	unit := Unit(req.Unit)
	if unit == "" {
		unit = UnitBox
	}

	manufactured := shared.DateOnly(s.now())
	batch := Batch{
		ID:                shared.NewID("B"),
		BatchNumber:       req.BatchNumber,
		ProductID:         req.ProductID,
		ProductName:       name,
		Quantity:          req.Quantity,
		Unit:              unit,
		Status:            StatusPlanned,
		ManufacturingDate: manufactured,
		ExpiryDate:        manufactured.AddDate(0, 0, shelfLifeDays),
	}
	if err := s.repo.Create(ctx, batch); err != nil {
		return nil, fmt.Errorf("create batch: %w", err)
	}
	return &batch, nil
}

// UpdateStatus moves the batch to the given production status.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (*Batch, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown batch status %q", httpx.ErrValidation, status)
	}
	batch, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get batch: %w", err)
	}
	batch.Status = status
	if err := s.repo.Update(ctx, *batch); err != nil {
		return nil, fmt.Errorf("update batch status: %w", err)
	}
	return batch, nil
}

// Get returns one batch by id.
func (s *Service) Get(ctx context.Context, id string) (*Batch, error) {
	return s.repo.Get(ctx, id)
}

// List returns all batches.
func (s *Service) List(ctx context.Context) ([]Batch, error) {
	return s.repo.List(ctx)
}
