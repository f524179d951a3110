package leads

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/shared"
)

// nextStage is the forward pipeline order walked by Advance.
var nextStage = map[Status]Status{
	StatusProspect:  StatusQualified,
	StatusQualified: StatusNegotiation,
}

// Service implements the lead pipeline.
type Service struct {
	repo     Repository
	validate *validator.Validate
	now      shared.Clock
}

// NewService constructs a Service.
func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      shared.SystemClock,
	}
}

// Create registers a lead as PROSPECT dated today.
func (s *Service) Create(ctx context.Context, req CreateLeadRequest) (*Lead, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}
	value := decimal.Zero
	if req.EstimatedValue != "" {
		parsed, err := decimal.NewFromString(req.EstimatedValue)
		if err != nil {
			return nil, fmt.Errorf("%w: estimatedValue %q is not a number", httpx.ErrValidation, req.EstimatedValue)
		}
		if parsed.IsNegative() {
			return nil, fmt.Errorf("%w: estimatedValue must not be negative", httpx.ErrValidation)
		}
		value = parsed
	}

	lead := Lead{
		ID:             shared.NewID("LD"),
		CompanyName:    req.CompanyName,
		ContactPerson:  req.ContactPerson,
		Email:          req.Email,
		Phone:          req.Phone,
		EstimatedValue: value,
		Status:         StatusProspect,
		Source:         req.Source,
		CreatedAt:      shared.DateOnly(s.now()),
	}
	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}
	return &lead, nil
}

// Advance moves the lead one stage forward along
// PROSPECT, QUALIFIED, NEGOTIATION. Closed leads and leads already in
// NEGOTIATION are rejected; closing is a separate, reasoned action.
func (s *Service) Advance(ctx context.Context, id string) (*Lead, error) {
	lead, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get lead: %w", err)
	}
	if lead.Status.Terminal() {
		return nil, fmt.Errorf("%w: lead %s is closed as %s", httpx.ErrValidation, id, lead.Status)
	}
	next, ok := nextStage[lead.Status]
	if !ok {
		return nil, fmt.Errorf("%w: lead %s in %s can only be closed", httpx.ErrValidation, id, lead.Status)
	}
	lead.Status = next
	if err := s.repo.Update(ctx, *lead); err != nil {
		return nil, fmt.Errorf("advance lead: %w", err)
	}
	return lead, nil
}

// CloseOutcome records the lead's final WON or LOST outcome with its
// reason. A closed lead cannot be closed again.
func (s *Service) CloseOutcome(ctx context.Context, id string, req CloseLeadRequest) (*Lead, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}
	lead, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get lead: %w", err)
	}
	if lead.Status.Terminal() {
		return nil, fmt.Errorf("%w: lead %s is already closed as %s", httpx.ErrValidation, id, lead.Status)
	}
	lead.Status = Status(req.Outcome)
	lead.OutcomeReason = req.Reason
	if err := s.repo.Update(ctx, *lead); err != nil {
		return nil, fmt.Errorf("close lead: %w", err)
	}
	return lead, nil
}

// Get returns one lead by id.
func (s *Service) Get(ctx context.Context, id string) (*Lead, error) {
	return s.repo.Get(ctx, id)
}

// List returns all leads.
func (s *Service) List(ctx context.Context) ([]Lead, error) {
	return s.repo.List(ctx)
}
