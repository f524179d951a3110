// Package reports computes read-only derived statistics over the entity
// store for dashboard tiles and report exports. Every aggregate is a pure
// function of the collection snapshots passed in.
package reports

import (
	"github.com/shopspring/decimal"

	"github.com/pharmaflow/pharmaflow/internal/inventory"
	"github.com/pharmaflow/pharmaflow/internal/sales/leads"
)

// ConversionRate is won leads over leads that have left PROSPECT. The
// denominator is clamped to at least 1 so an empty or all-prospect pipeline
// reports 0 instead of dividing by zero.
func ConversionRate(records []leads.Lead) decimal.Decimal {
	won := 0
	engaged := 0
	for _, lead := range records {
		switch lead.Status {
		case leads.StatusWon:
			won++
			engaged++
		case leads.StatusLost, leads.StatusNegotiation, leads.StatusQualified:
			engaged++
		}
	}
	if engaged < 1 {
		engaged = 1
	}
	return decimal.NewFromInt(int64(won)).Div(decimal.NewFromInt(int64(engaged)))
}

// TotalLeadValue sums estimated value across all leads regardless of status.
func TotalLeadValue(records []leads.Lead) decimal.Decimal {
	total := decimal.Zero
	for _, lead := range records {
		total = total.Add(lead.EstimatedValue)
	}
	return total
}

// StatusCount is one bucket of a status distribution.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// StatusDistribution counts records per status value. Bucket order is the
// first-seen order of status values in the scan.
func StatusDistribution[T any](records []T, status func(T) string) []StatusCount {
	index := make(map[string]int)
	out := make([]StatusCount, 0)
	for _, record := range records {
		key := status(record)
		i, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, StatusCount{Status: key})
			i = index[key]
		}
		out[i].Count++
	}
	return out
}

// LowStockItems filters the items strictly below their reorder threshold.
func LowStockItems(items []inventory.Item) []inventory.Item {
	low := make([]inventory.Item, 0)
	for _, item := range items {
		if item.LowStock() {
			low = append(low, item)
		}
	}
	return low
}
