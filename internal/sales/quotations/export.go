package quotations

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pharmaflow/pharmaflow/internal/store"
)

const (
	exportRule    = "================================================================================"
	exportDivider = "--------------------------------------------------------------------------------"
)

var exportPrinter = message.NewPrinter(language.AmericanEnglish)

// ExportDocument renders the formal plain-text quotation. The delimiter
// lines, field labels, and legal notice are a textual contract with
// downstream consumers; only the Generated line varies between renders of
// the same quotation.
func ExportDocument(q Quotation, branding store.Branding, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(exportRule + "\n")
	b.WriteString("PHARMAFLOW CRM - OFFICIAL SALES QUOTATION\n")
	b.WriteString(exportRule + "\n")
	fmt.Fprintf(&b, "Company: %s\n", branding.Name)
	fmt.Fprintf(&b, "Address: %s\n", branding.Address)
	fmt.Fprintf(&b, "Quote ID: %s\n", q.ID)
	fmt.Fprintf(&b, "Date: %s\n", q.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "Expiry: %s\n", q.ExpiryDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "Generated: %s\n", generatedAt.UTC().Format(time.RFC3339))
	b.WriteString(exportDivider + "\n")
	b.WriteString("CUSTOMER INFORMATION:\n")
	fmt.Fprintf(&b, "Name: %s\n", q.CustomerName)
	fmt.Fprintf(&b, "Customer ID: %s\n", q.CustomerID)
	b.WriteString(exportDivider + "\n")
	b.WriteString("LINE ITEMS:\n")
	for _, item := range q.Items {
		fmt.Fprintf(&b, "%s | Qty: %s | Price: $%s | Total: $%s\n",
			padEnd(item.ProductName, 30),
			padEnd(fmt.Sprintf("%d", item.Quantity), 5),
			padEnd(item.UnitPrice.StringFixed(2), 8),
			item.Total.StringFixed(2),
		)
	}
	b.WriteString(exportDivider + "\n")
	fmt.Fprintf(&b, "GRAND TOTAL: $%s\n", formatAmount(q.TotalAmount))
	b.WriteString(exportDivider + "\n")
	b.WriteString("NOTES:\n")
	b.WriteString("This quotation is valid for 30 days. Prices are inclusive of applicable \n")
	b.WriteString("pharmaceutical taxes. \n")
	b.WriteString("\n")
	b.WriteString("Authorized Signature: _________________________  Date: ______________\n")
	b.WriteString(exportRule + "\n")

	return b.String()
}

// formatAmount renders a money amount with locale thousand separators and
// two decimal places, e.g. 12625 -> "12,625.00".
func formatAmount(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return exportPrinter.Sprintf("%.2f", f)
}

// padEnd pads to a rune count, not a byte count, so non-ASCII product names
// keep the column aligned.
func padEnd(s string, width int) string {
	runes := utf8.RuneCountInString(s)
	if runes >= width {
		return s
	}
	return s + strings.Repeat(" ", width-runes)
}
