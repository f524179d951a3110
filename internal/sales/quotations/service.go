package quotations

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/sales/customers"
	"github.com/pharmaflow/pharmaflow/internal/sales/inquiries"
)

// Service implements the quotation builder and approval workflow.
type Service struct {
	repo         Repository
	customerRepo customers.Repository
	builder      *Builder
	validate     *validator.Validate
}

// NewService constructs a Service.
func NewService(repo Repository, customerRepo customers.Repository, builder *Builder) *Service {
	return &Service{
		repo:         repo,
		customerRepo: customerRepo,
		builder:      builder,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Create assembles and finalizes a quotation from a submitted draft. The
// customer must resolve; each line is priced from the catalog at add-time.
func (s *Service) Create(ctx context.Context, req CreateQuotationRequest) (*Quotation, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}
	customer, err := s.customerRepo.Get(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("%w: customerId %s does not resolve to a known customer", httpx.ErrValidation, req.CustomerID)
	}

	draft := s.builder.StartDraft(&inquiries.QuoteDraftPrefill{
		InquiryID:    req.InquiryID,
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
	})
	for _, line := range req.Items {
		if err := s.builder.AddLineItem(ctx, &draft, line.ProductID, line.Quantity); err != nil {
			return nil, err
		}
	}

	quotation, err := s.builder.Finalize(draft)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, *quotation); err != nil {
		return nil, fmt.Errorf("create quotation: %w", err)
	}
	return quotation, nil
}

// Approve marks the quotation Approved. Approving an already-approved
// quotation is a no-op, not an error.
func (s *Service) Approve(ctx context.Context, id string) (*Quotation, error) {
	quotation, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	if quotation.Status == StatusApproved {
		return quotation, nil
	}
	quotation.Status = StatusApproved
	if err := s.repo.Update(ctx, *quotation); err != nil {
		return nil, fmt.Errorf("approve quotation: %w", err)
	}
	return quotation, nil
}

// UpdateStatus moves the quotation to the given status. Approved is
// one-way: once approved, no other status is accepted.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (*Quotation, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown quotation status %q", httpx.ErrValidation, status)
	}
	quotation, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	if quotation.Status == StatusApproved && status != StatusApproved {
		return nil, fmt.Errorf("%w: approved quotation cannot be downgraded", httpx.ErrValidation)
	}
	quotation.Status = status
	if err := s.repo.Update(ctx, *quotation); err != nil {
		return nil, fmt.Errorf("update quotation status: %w", err)
	}
	return quotation, nil
}

// ExpireOverdue moves Draft and Sent quotations past their expiry date to
// Expired. It returns the ids that changed. Run from the background sweep.
func (s *Service) ExpireOverdue(ctx context.Context, asOf time.Time) ([]string, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	var expired []string
	for _, q := range records {
		if q.Status != StatusDraft && q.Status != StatusSent {
			continue
		}
		if !q.ExpiryDate.Before(asOf) {
			continue
		}
		q.Status = StatusExpired
		if err := s.repo.Update(ctx, q); err != nil {
			return expired, fmt.Errorf("expire quotation %s: %w", q.ID, err)
		}
		expired = append(expired, q.ID)
	}
	return expired, nil
}

// Get returns one quotation by id.
func (s *Service) Get(ctx context.Context, id string) (*Quotation, error) {
	return s.repo.Get(ctx, id)
}

// List returns all quotations.
func (s *Service) List(ctx context.Context) ([]Quotation, error) {
	return s.repo.List(ctx)
}
