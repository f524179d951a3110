package inquiries

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/sales/customers"
	"github.com/pharmaflow/pharmaflow/internal/shared"
)

// followUpOutcome is the fixed marker written for manually logged entries.
const followUpOutcome = "Logged interaction"

// defaultAssignee is used when no user is bound to the session.
const defaultAssignee = "John Doe"

// Service implements the inquiry lifecycle.
type Service struct {
	repo         Repository
	customerRepo customers.Repository
	validate     *validator.Validate
	now          shared.Clock
}

// NewService constructs a Service.
func NewService(repo Repository, customerRepo customers.Repository) *Service {
	return &Service{
		repo:         repo,
		customerRepo: customerRepo,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		now:          shared.SystemClock,
	}
}

// Create logs a new inquiry with status NEW and an empty follow-up log.
// The customer name is snapshotted at creation time.
func (s *Service) Create(ctx context.Context, req CreateInquiryRequest) (*Inquiry, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}
	customer, err := s.customerRepo.Get(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("%w: customerId %s does not resolve to a known customer", httpx.ErrValidation, req.CustomerID)
	}

	assignedTo := shared.UserFromContext(ctx)
	if assignedTo == "" {
		assignedTo = defaultAssignee
	}

	inquiry := Inquiry{
		ID:           shared.NewID("INQ"),
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Status:       StatusNew,
		Date:         shared.DateOnly(s.now()),
		Products:     req.Products,
		Notes:        req.Notes,
		AssignedTo:   assignedTo,
		FollowUps:    []FollowUp{},
	}
	if err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}
	return &inquiry, nil
}

// LogFollowUp appends an immutable follow-up entry and sets the inquiry
// status to FOLLOW_UP. The status write is unconditional, even from
// CONVERTED or LOST; that matches the shipped behavior and is pinned by a
// regression test rather than guarded.
func (s *Service) LogFollowUp(ctx context.Context, inquiryID string, req LogFollowUpRequest) (*Inquiry, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}
	inquiry, err := s.repo.Get(ctx, inquiryID)
	if err != nil {
		return nil, fmt.Errorf("get inquiry: %w", err)
	}

	entry := FollowUp{
		ID:      shared.NewID("f"),
		Date:    shared.DateOnly(s.now()),
		Type:    FollowUpType(req.Type),
		Summary: req.Summary,
		Outcome: followUpOutcome,
	}
	inquiry.FollowUps = append(inquiry.FollowUps, entry)
	inquiry.Status = StatusFollowUp

	if err := s.repo.Update(ctx, *inquiry); err != nil {
		return nil, fmt.Errorf("log follow-up: %w", err)
	}
	return inquiry, nil
}

// ConvertToQuoteDraft returns the snapshot that seeds a quotation draft.
// The inquiry itself is not mutated.
func (s *Service) ConvertToQuoteDraft(ctx context.Context, inquiryID string) (*QuoteDraftPrefill, error) {
	inquiry, err := s.repo.Get(ctx, inquiryID)
	if err != nil {
		return nil, fmt.Errorf("get inquiry: %w", err)
	}
	return &QuoteDraftPrefill{
		InquiryID:    inquiry.ID,
		CustomerID:   inquiry.CustomerID,
		CustomerName: inquiry.CustomerName,
	}, nil
}

// UpdateStatus moves the inquiry to the given status. Any declared status is
// reachable from any other; marking CONVERTED after a quote is created is an
// explicit call, never automatic.
func (s *Service) UpdateStatus(ctx context.Context, inquiryID string, status Status) (*Inquiry, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown inquiry status %q", httpx.ErrValidation, status)
	}
	inquiry, err := s.repo.Get(ctx, inquiryID)
	if err != nil {
		return nil, fmt.Errorf("get inquiry: %w", err)
	}
	inquiry.Status = status
	if err := s.repo.Update(ctx, *inquiry); err != nil {
		return nil, fmt.Errorf("update inquiry status: %w", err)
	}
	return inquiry, nil
}

// Get returns one inquiry by id.
func (s *Service) Get(ctx context.Context, id string) (*Inquiry, error) {
	return s.repo.Get(ctx, id)
}

// List returns all inquiries.
func (s *Service) List(ctx context.Context) ([]Inquiry, error) {
	return s.repo.List(ctx)
}
