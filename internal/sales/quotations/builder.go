package quotations

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/sales/inquiries"
	"github.com/pharmaflow/pharmaflow/internal/shared"
)

const (
	// DefaultQuantity is applied when a line is added without a quantity.
	DefaultQuantity = 10
	// validityDays is the quotation validity window from the quote date.
	validityDays = 30
)

// ProductLookup resolves a catalog product for line pricing.
type ProductLookup func(ctx context.Context, productID string) (name string, unitPrice decimal.Decimal, err error)

// Draft is a quotation under assembly. It is not in the store; Finalize
// produces the stored Quotation.
type Draft struct {
	InquiryID    string
	CustomerID   string
	CustomerName string
	Date         time.Time
	Items        []Item
}

// Builder assembles priced quotation drafts.
type Builder struct {
	lookup ProductLookup
	now    shared.Clock
}

// NewBuilder constructs a Builder.
func NewBuilder(lookup ProductLookup) *Builder {
	return &Builder{lookup: lookup, now: shared.SystemClock}
}

// StartDraft initializes an empty-items draft dated today. A non-nil prefill
// copies the customer linkage from an inquiry conversion snapshot.
func (b *Builder) StartDraft(prefill *inquiries.QuoteDraftPrefill) Draft {
	draft := Draft{
		InquiryID: InquiryDirect,
		Date:      shared.DateOnly(b.now()),
		Items:     []Item{},
	}
	if prefill != nil {
		draft.InquiryID = prefill.InquiryID
		draft.CustomerID = prefill.CustomerID
		draft.CustomerName = prefill.CustomerName
	}
	return draft
}

// AddLineItem appends a line priced from the catalog. Quantity 0 applies
// DefaultQuantity. The unit price is copied, not live-linked.
func (b *Builder) AddLineItem(ctx context.Context, draft *Draft, productID string, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: quantity must be a positive integer", httpx.ErrValidation)
	}
	if quantity == 0 {
		quantity = DefaultQuantity
	}
	name, unitPrice, err := b.lookup(ctx, productID)
	if err != nil {
		return fmt.Errorf("resolve product %s: %w", productID, err)
	}
	draft.Items = append(draft.Items, Item{
		ProductID:   productID,
		ProductName: name,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Discount:    decimal.Zero,
		Total:       lineTotal(quantity, unitPrice),
	})
	return nil
}

// UpdateLineItemQuantity replaces a line's quantity and recomputes its total.
func (b *Builder) UpdateLineItemQuantity(draft *Draft, index, quantity int) error {
	if index < 0 || index >= len(draft.Items) {
		return fmt.Errorf("%w: line item %d", httpx.ErrNotFound, index)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be a positive integer", httpx.ErrValidation)
	}
	item := &draft.Items[index]
	item.Quantity = quantity
	item.Total = lineTotal(quantity, item.UnitPrice)
	return nil
}

// RemoveLineItem drops a line; remaining lines compact in order.
func (b *Builder) RemoveLineItem(draft *Draft, index int) error {
	if index < 0 || index >= len(draft.Items) {
		return fmt.Errorf("%w: line item %d", httpx.ErrNotFound, index)
	}
	draft.Items = append(draft.Items[:index], draft.Items[index+1:]...)
	return nil
}

// Finalize prices the draft into a stored-ready quotation: generated id,
// expiry 30 days out, grand total as the exact sum of line totals, status
// Pending Approval.
func (b *Builder) Finalize(draft Draft) (*Quotation, error) {
	if draft.CustomerID == "" {
		return nil, fmt.Errorf("%w: quotation requires a customer", httpx.ErrValidation)
	}
	if len(draft.Items) == 0 {
		return nil, fmt.Errorf("%w: cannot finalize empty quotation", httpx.ErrValidation)
	}

	total := decimal.Zero
	for _, item := range draft.Items {
		total = total.Add(item.Total)
	}

	inquiryID := draft.InquiryID
	if inquiryID == "" {
		inquiryID = InquiryDirect
	}

	return &Quotation{
		ID:           shared.NewID("QUO"),
		InquiryID:    inquiryID,
		CustomerID:   draft.CustomerID,
		CustomerName: draft.CustomerName,
		Date:         draft.Date,
		ExpiryDate:   draft.Date.AddDate(0, 0, validityDays),
		Items:        append([]Item(nil), draft.Items...),
		TotalAmount:  total,
		Status:       StatusPendingApproval,
	}, nil
}

// lineTotal is quantity × unit price. Discount is intentionally not part of
// this computation.
func lineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
