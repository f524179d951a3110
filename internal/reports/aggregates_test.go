package reports

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/pharmaflow/pharmaflow/internal/inventory"
	"github.com/pharmaflow/pharmaflow/internal/sales/leads"
)

func lead(status leads.Status, value int64) leads.Lead {
	return leads.Lead{Status: status, EstimatedValue: decimal.NewFromInt(value)}
}

func TestConversionRateScenario(t *testing.T) {
	// 1 WON, 1 LOST, 1 PROSPECT: 1 / max(1, 2) = 0.5.
	records := []leads.Lead{
		lead(leads.StatusWon, 0),
		lead(leads.StatusLost, 0),
		lead(leads.StatusProspect, 0),
	}
	require.True(t, ConversionRate(records).Equal(decimal.RequireFromString("0.5")))
}

func TestConversionRateEmptyPipeline(t *testing.T) {
	require.True(t, ConversionRate(nil).IsZero())
	require.True(t, ConversionRate([]leads.Lead{}).IsZero())

	// All-prospect pipelines have engaged=0; the clamp keeps the rate 0.
	records := []leads.Lead{lead(leads.StatusProspect, 0), lead(leads.StatusProspect, 0)}
	require.True(t, ConversionRate(records).IsZero())
}

func TestConversionRateCountsEngagedStages(t *testing.T) {
	records := []leads.Lead{
		lead(leads.StatusWon, 0),
		lead(leads.StatusQualified, 0),
		lead(leads.StatusNegotiation, 0),
		lead(leads.StatusLost, 0),
		lead(leads.StatusProspect, 0),
	}
	require.True(t, ConversionRate(records).Equal(decimal.RequireFromString("0.25")))
}

func TestTotalLeadValueIgnoresStatus(t *testing.T) {
	records := []leads.Lead{
		lead(leads.StatusProspect, 12000),
		lead(leads.StatusNegotiation, 45000),
		lead(leads.StatusWon, 85000),
		lead(leads.StatusLost, 3000),
	}
	require.True(t, TotalLeadValue(records).Equal(decimal.NewFromInt(145000)))
	require.True(t, TotalLeadValue(nil).IsZero())
}

func TestStatusDistributionFirstSeenOrder(t *testing.T) {
	records := []leads.Lead{
		lead(leads.StatusNegotiation, 0),
		lead(leads.StatusProspect, 0),
		lead(leads.StatusNegotiation, 0),
		lead(leads.StatusWon, 0),
		lead(leads.StatusProspect, 0),
	}
	got := StatusDistribution(records, func(l leads.Lead) string { return string(l.Status) })
	require.Equal(t, []StatusCount{
		{Status: "NEGOTIATION", Count: 2},
		{Status: "PROSPECT", Count: 2},
		{Status: "WON", Count: 1},
	}, got)
}

func TestLowStockItemsScenario(t *testing.T) {
	below := inventory.Item{ID: "RM-900", Quantity: 45, MinThreshold: 50}
	above := inventory.Item{ID: "RM-901", Quantity: 51, MinThreshold: 50}
	got := LowStockItems([]inventory.Item{below, above})
	require.Len(t, got, 1)
	require.Equal(t, "RM-900", got[0].ID)
}

func TestExportReport(t *testing.T) {
	doc := ExportReport(
		"Product Demand Analysis",
		[]string{"Amoxicillin 500mg: 1200", "Paracetamol 650mg: 5000"},
		"",
		time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	)
	require.True(t, strings.HasPrefix(doc, "PHARMAFLOW REPORT: Product Demand Analysis\n"))
	require.Contains(t, doc, "Generated: 2024-03-01T10:00:00Z")
	require.Contains(t, doc, "DATA:\nAmoxicillin 500mg: 1200\nParacetamol 650mg: 5000")
	require.Contains(t, doc, "AI Insights Summary:\n"+NoInsight)

	withInsight := ExportReport("Monthly Sales vs Target", []string{"Jul: Actual $4000, Target $4500"}, "Demand is trending up.", time.Now())
	require.Contains(t, withInsight, "AI Insights Summary:\nDemand is trending up.")
	require.NotContains(t, withInsight, NoInsight)
}
