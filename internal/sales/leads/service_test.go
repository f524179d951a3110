package leads

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/platform/kv"
)

func newTestService(t *testing.T, store kv.Store) *Service {
	t.Helper()
	repo, err := NewRepository(context.Background(), store)
	require.NoError(t, err)
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC) }
	return svc
}

func TestSeededPipeline(t *testing.T) {
	svc := newTestService(t, kv.NewMemory())
	records, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, "LD-001", records[0].ID)
	require.Equal(t, StatusWon, records[2].Status)
	require.Equal(t, "Strategic partnership discount", records[2].OutcomeReason)
}

func TestCreateLead(t *testing.T) {
	store := kv.NewMemory()
	svc := newTestService(t, store)
	ctx := context.Background()

	lead, err := svc.Create(ctx, CreateLeadRequest{
		CompanyName:    "Lakeside Diagnostics",
		ContactPerson:  "Priya Patel",
		Email:          "priya@lakeside.med",
		Phone:          "555-9100",
		EstimatedValue: "23000",
		Source:         "Cold Call",
	})
	require.NoError(t, err)
	require.Equal(t, StatusProspect, lead.Status)
	require.Empty(t, lead.OutcomeReason)
	require.True(t, lead.EstimatedValue.Equal(decimal.NewFromInt(23000)))
	require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), lead.CreatedAt)

	reloaded, err := NewRepository(ctx, store)
	require.NoError(t, err)
	_, err = reloaded.Get(ctx, lead.ID)
	require.NoError(t, err)
}

func TestCreateLeadValidation(t *testing.T) {
	svc := newTestService(t, kv.NewMemory())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateLeadRequest{CompanyName: "X", ContactPerson: "Y", Email: "not-an-email"})
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.Create(ctx, CreateLeadRequest{CompanyName: "X", ContactPerson: "Y", Email: "y@x.com", EstimatedValue: "-5"})
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.Create(ctx, CreateLeadRequest{CompanyName: "X", ContactPerson: "Y", Email: "y@x.com", EstimatedValue: "lots"})
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestAdvanceWalksPipeline(t *testing.T) {
	svc := newTestService(t, kv.NewMemory())
	ctx := context.Background()

	lead, err := svc.Advance(ctx, "LD-001")
	require.NoError(t, err)
	require.Equal(t, StatusQualified, lead.Status)

	lead, err = svc.Advance(ctx, "LD-001")
	require.NoError(t, err)
	require.Equal(t, StatusNegotiation, lead.Status)

	// NEGOTIATION has no forward stage; the lead must be closed instead.
	_, err = svc.Advance(ctx, "LD-001")
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestCloseOutcomeSetsReason(t *testing.T) {
	svc := newTestService(t, kv.NewMemory())
	ctx := context.Background()

	lead, err := svc.CloseOutcome(ctx, "LD-002", CloseLeadRequest{Outcome: "LOST", Reason: "Chose competitor on price"})
	require.NoError(t, err)
	require.Equal(t, StatusLost, lead.Status)
	require.Equal(t, "Chose competitor on price", lead.OutcomeReason)
}

func TestClosedLeadIsTerminal(t *testing.T) {
	svc := newTestService(t, kv.NewMemory())
	ctx := context.Background()

	_, err := svc.Advance(ctx, "LD-003")
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.CloseOutcome(ctx, "LD-003", CloseLeadRequest{Outcome: "LOST", Reason: "changed mind"})
	require.ErrorIs(t, err, httpx.ErrValidation)

	got, err := svc.Get(ctx, "LD-003")
	require.NoError(t, err)
	require.Equal(t, StatusWon, got.Status)
	require.Equal(t, "Strategic partnership discount", got.OutcomeReason)
}

func TestOutcomeReasonOnlyWhenClosed(t *testing.T) {
	svc := newTestService(t, kv.NewMemory())
	records, err := svc.List(context.Background())
	require.NoError(t, err)
	for _, lead := range records {
		require.Equal(t, lead.Status.Terminal(), lead.OutcomeReason != "",
			"lead %s: reason %q with status %s", lead.ID, lead.OutcomeReason, lead.Status)
	}
}

func TestCloseValidatesOutcome(t *testing.T) {
	svc := newTestService(t, kv.NewMemory())
	ctx := context.Background()

	_, err := svc.CloseOutcome(ctx, "LD-001", CloseLeadRequest{Outcome: "PAUSED", Reason: "x"})
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.CloseOutcome(ctx, "LD-001", CloseLeadRequest{Outcome: "WON"})
	require.ErrorIs(t, err, httpx.ErrValidation, "missing reason")
}
