package quotations

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/sales/inquiries"
)

func testLookup(t *testing.T) ProductLookup {
	t.Helper()
	catalog := map[string]struct {
		name  string
		price string
	}{
		"P1": {"Amoxicillin 500mg", "12.50"},
		"P2": {"Paracetamol 650mg", "5.20"},
	}
	return func(_ context.Context, id string) (string, decimal.Decimal, error) {
		p, ok := catalog[id]
		if !ok {
			return "", decimal.Zero, fmt.Errorf("product %s: %w", id, httpx.ErrNotFound)
		}
		return p.name, decimal.RequireFromString(p.price), nil
	}
}

func testBuilder(t *testing.T) *Builder {
	b := NewBuilder(testLookup(t))
	b.now = func() time.Time { return time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC) }
	return b
}

func TestScenarioInquiryToPendingApproval(t *testing.T) {
	b := testBuilder(t)
	ctx := context.Background()

	draft := b.StartDraft(&inquiries.QuoteDraftPrefill{
		InquiryID:    "INQ-001",
		CustomerID:   "C1",
		CustomerName: "St. Mary's General Hospital",
	})
	require.NoError(t, b.AddLineItem(ctx, &draft, "P1", 50))
	require.True(t, draft.Items[0].Total.Equal(decimal.RequireFromString("625.00")),
		"item total = %s, want 625.00", draft.Items[0].Total)

	q, err := b.Finalize(draft)
	require.NoError(t, err)
	require.True(t, q.TotalAmount.Equal(decimal.RequireFromString("625.00")))
	require.Equal(t, StatusPendingApproval, q.Status)
	require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), q.Date)
	require.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), q.ExpiryDate)
	require.Equal(t, "INQ-001", q.InquiryID)
}

func TestTotalsAlwaysSumOfLines(t *testing.T) {
	b := testBuilder(t)
	ctx := context.Background()

	draft := b.StartDraft(nil)
	draft.CustomerID = "C2"
	draft.CustomerName = "HealthFirst Pharmacy"
	require.NoError(t, b.AddLineItem(ctx, &draft, "P1", 3))
	require.NoError(t, b.AddLineItem(ctx, &draft, "P2", 0)) // default quantity

	require.Equal(t, DefaultQuantity, draft.Items[1].Quantity)

	q, err := b.Finalize(draft)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, item := range q.Items {
		require.True(t, item.Total.Equal(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))))
		sum = sum.Add(item.Total)
	}
	require.True(t, q.TotalAmount.Equal(sum))
	require.Equal(t, InquiryDirect, q.InquiryID)
}

func TestRepeatedAdditionHasNoDrift(t *testing.T) {
	// 0.1-style drift is why money is decimal: 1000 lines of 5.20 must sum
	// exactly to 52000.00, not 51999.99....
	b := testBuilder(t)
	ctx := context.Background()

	draft := b.StartDraft(nil)
	draft.CustomerID = "C2"
	for i := 0; i < 1000; i++ {
		require.NoError(t, b.AddLineItem(ctx, &draft, "P2", 10))
	}
	q, err := b.Finalize(draft)
	require.NoError(t, err)
	require.True(t, q.TotalAmount.Equal(decimal.RequireFromString("52000.00")),
		"total = %s", q.TotalAmount)
}

func TestAddLineItemUnknownProduct(t *testing.T) {
	b := testBuilder(t)
	draft := b.StartDraft(nil)
	err := b.AddLineItem(context.Background(), &draft, "P404", 1)
	require.ErrorIs(t, err, httpx.ErrNotFound)
	require.Empty(t, draft.Items)
}

func TestUpdateLineItemQuantity(t *testing.T) {
	b := testBuilder(t)
	ctx := context.Background()
	draft := b.StartDraft(nil)
	require.NoError(t, b.AddLineItem(ctx, &draft, "P1", 5))

	require.NoError(t, b.UpdateLineItemQuantity(&draft, 0, 8))
	require.True(t, draft.Items[0].Total.Equal(decimal.RequireFromString("100.00")))

	require.ErrorIs(t, b.UpdateLineItemQuantity(&draft, 0, 0), httpx.ErrValidation)
	require.ErrorIs(t, b.UpdateLineItemQuantity(&draft, 0, -2), httpx.ErrValidation)
	require.ErrorIs(t, b.UpdateLineItemQuantity(&draft, 3, 1), httpx.ErrNotFound)
}

func TestRemoveLineItemCompacts(t *testing.T) {
	b := testBuilder(t)
	ctx := context.Background()
	draft := b.StartDraft(nil)
	require.NoError(t, b.AddLineItem(ctx, &draft, "P1", 1))
	require.NoError(t, b.AddLineItem(ctx, &draft, "P2", 2))

	require.NoError(t, b.RemoveLineItem(&draft, 0))
	require.Len(t, draft.Items, 1)
	require.Equal(t, "P2", draft.Items[0].ProductID)

	require.ErrorIs(t, b.RemoveLineItem(&draft, 5), httpx.ErrNotFound)
}

func TestFinalizeValidation(t *testing.T) {
	b := testBuilder(t)
	ctx := context.Background()

	empty := b.StartDraft(nil)
	empty.CustomerID = "C1"
	_, err := b.Finalize(empty)
	require.ErrorIs(t, err, httpx.ErrValidation, "empty item list")

	noCustomer := b.StartDraft(nil)
	require.NoError(t, b.AddLineItem(ctx, &noCustomer, "P1", 1))
	_, err = b.Finalize(noCustomer)
	require.ErrorIs(t, err, httpx.ErrValidation, "missing customer")
}

func TestDiscountIsInert(t *testing.T) {
	b := testBuilder(t)
	ctx := context.Background()
	draft := b.StartDraft(nil)
	draft.CustomerID = "C1"
	require.NoError(t, b.AddLineItem(ctx, &draft, "P1", 50))

	// Recording a discount must not change the line total.
	draft.Items[0].Discount = decimal.NewFromInt(5)
	q, err := b.Finalize(draft)
	require.NoError(t, err)
	require.True(t, q.Items[0].Total.Equal(decimal.RequireFromString("625.00")))
	require.True(t, q.TotalAmount.Equal(decimal.RequireFromString("625.00")))
}
