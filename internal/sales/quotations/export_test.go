package quotations

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/pharmaflow/pharmaflow/internal/store"
)

// parseExport pulls the machine-readable facts back out of the rendered
// document: one (name, qty, price, total) tuple per line item, plus the
// grand total. The Generated line is deliberately not parsed.
func parseExport(t *testing.T, doc string) (items [][4]string, grandTotal string) {
	t.Helper()
	inItems := false
	for _, line := range strings.Split(doc, "\n") {
		switch {
		case line == "LINE ITEMS:":
			inItems = true
		case inItems && strings.HasPrefix(line, "-"):
			inItems = false
		case inItems:
			parts := strings.Split(line, " | ")
			require.Len(t, parts, 4, "line item %q", line)
			items = append(items, [4]string{
				strings.TrimRight(parts[0], " "),
				strings.TrimSpace(strings.TrimPrefix(parts[1], "Qty:")),
				strings.TrimSpace(strings.TrimPrefix(parts[2], "Price: $")),
				strings.TrimSpace(strings.TrimPrefix(parts[3], "Total: $")),
			})
		case strings.HasPrefix(line, "GRAND TOTAL: $"):
			grandTotal = strings.TrimPrefix(line, "GRAND TOTAL: $")
		}
	}
	return items, grandTotal
}

func TestExportRoundTrip(t *testing.T) {
	q := Seed()[0]
	doc := ExportDocument(q, store.DefaultBranding(), time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC))

	items, grandTotal := parseExport(t, doc)
	require.Len(t, items, len(q.Items))
	for i, item := range q.Items {
		require.Equal(t, item.ProductName, items[i][0])
		require.Equal(t, "50", items[i][1])
		require.Equal(t, item.UnitPrice.StringFixed(2), items[i][2])
		require.Equal(t, item.Total.StringFixed(2), items[i][3])
	}
	require.True(t, decimal.RequireFromString(strings.ReplaceAll(grandTotal, ",", "")).Equal(q.TotalAmount),
		"grand total %q", grandTotal)
}

func TestExportOnlyGeneratedLineVaries(t *testing.T) {
	q := Seed()[0]
	branding := store.DefaultBranding()
	first := ExportDocument(q, branding, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	second := ExportDocument(q, branding, time.Date(2024, 6, 15, 17, 30, 0, 0, time.UTC))

	a := strings.Split(first, "\n")
	b := strings.Split(second, "\n")
	require.Equal(t, len(a), len(b))
	for i := range a {
		if strings.HasPrefix(a[i], "Generated: ") {
			require.NotEqual(t, a[i], b[i])
			continue
		}
		require.Equal(t, a[i], b[i], "line %d", i)
	}
}

func TestExportFixedFraming(t *testing.T) {
	q := Seed()[0]
	doc := ExportDocument(q, store.DefaultBranding(), time.Now())

	require.True(t, strings.HasPrefix(doc, "\n"+exportRule+"\n"))
	require.Contains(t, doc, "PHARMAFLOW CRM - OFFICIAL SALES QUOTATION")
	require.Contains(t, doc, "Company: PharmaFlow Enterprise")
	require.Contains(t, doc, "Quote ID: QUO-23-001")
	require.Contains(t, doc, "CUSTOMER INFORMATION:")
	require.Contains(t, doc, "This quotation is valid for 30 days. Prices are inclusive of applicable \npharmaceutical taxes. \n")
	require.Contains(t, doc, "Authorized Signature: _________________________  Date: ______________")
	require.Equal(t, 80, len(exportRule))
	require.Equal(t, 80, len(exportDivider))
}

func TestExportPadsByRuneCount(t *testing.T) {
	q := Seed()[0]
	q.Items = []Item{
		{ProductID: "P9", ProductName: "Paracetamol Niños 120mg", Quantity: 10, UnitPrice: decimal.RequireFromString("4.00"), Total: decimal.RequireFromString("40.00")},
		{ProductID: "P1", ProductName: "Amoxicillin 500mg", Quantity: 10, UnitPrice: decimal.RequireFromString("12.50"), Total: decimal.RequireFromString("125.00")},
	}
	doc := ExportDocument(q, store.DefaultBranding(), time.Now())

	var widths []int
	for _, line := range strings.Split(doc, "\n") {
		if strings.Contains(line, " | Qty: ") {
			name, _, _ := strings.Cut(line, " | Qty: ")
			widths = append(widths, utf8.RuneCountInString(name))
		}
	}
	require.Len(t, widths, 2)
	require.Equal(t, widths[0], widths[1], "name column must align regardless of multi-byte characters")
}

func TestExportThousandSeparators(t *testing.T) {
	q := Seed()[0]
	q.TotalAmount = decimal.RequireFromString("12625.00")
	doc := ExportDocument(q, store.DefaultBranding(), time.Now())
	require.Contains(t, doc, "GRAND TOTAL: $12,625.00")
}
