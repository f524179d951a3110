package reports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pharmaflow/pharmaflow/internal/inventory"
	"github.com/pharmaflow/pharmaflow/internal/masterdata/products"
	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/platform/kv"
	"github.com/pharmaflow/pharmaflow/internal/sales/customers"
	"github.com/pharmaflow/pharmaflow/internal/sales/inquiries"
	"github.com/pharmaflow/pharmaflow/internal/sales/leads"
	"github.com/pharmaflow/pharmaflow/internal/sales/quotations"
)

func newTestService(t *testing.T, insight InsightFunc) *Service {
	t.Helper()
	ctx := context.Background()
	store := kv.NewMemory()
	customerRepo, err := customers.NewRepository(ctx, store)
	require.NoError(t, err)
	productRepo, err := products.NewRepository(ctx, store)
	require.NoError(t, err)
	inquiryRepo, err := inquiries.NewRepository(ctx, store)
	require.NoError(t, err)
	quotationRepo, err := quotations.NewRepository(ctx, store)
	require.NoError(t, err)
	leadRepo, err := leads.NewRepository(ctx, store)
	require.NoError(t, err)
	inventoryRepo, err := inventory.NewRepository(ctx, store)
	require.NoError(t, err)
	return NewService(customerRepo, productRepo, inquiryRepo, quotationRepo, leadRepo, inventoryRepo, insight)
}

func TestDashboardFromSeeds(t *testing.T) {
	svc := newTestService(t, nil)
	dashboard, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	require.Equal(t, 3, dashboard.TotalCustomers)
	require.Equal(t, 6, dashboard.TotalProducts)
	require.Equal(t, 0, dashboard.LowStockCount, "seeded inventory is all above threshold")
	// Seeded pipeline: 1 PROSPECT, 1 NEGOTIATION, 1 WON -> 1 / max(1, 2).
	require.Equal(t, "0.5", dashboard.ConversionRate.String())
	require.Equal(t, "142000", dashboard.TotalLeadValue.String())
	require.NotEmpty(t, dashboard.InquiriesByStatus)
	require.NotEmpty(t, dashboard.QuotationsByStatus)
}

func TestReportData(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	title, lines, err := svc.ReportData(ctx, "products")
	require.NoError(t, err)
	require.Equal(t, "Product Demand Analysis", title)
	require.Len(t, lines, 6)
	require.Equal(t, "Amoxicillin 500mg: 1250", lines[0])

	title, lines, err = svc.ReportData(ctx, "sales")
	require.NoError(t, err)
	require.Equal(t, "Monthly Sales vs Target", title)
	require.Equal(t, "Jul: Actual $4000, Target $4500", lines[0])

	_, _, err = svc.ReportData(ctx, "finance")
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestInsightUsesConfiguredBackend(t *testing.T) {
	var gotTitle, gotData string
	svc := newTestService(t, func(_ context.Context, title, data string) (string, error) {
		gotTitle, gotData = title, data
		return "Demand is concentrated in antibiotics.", nil
	})

	insight, err := svc.Insight(context.Background(), "products")
	require.NoError(t, err)
	require.Equal(t, "Demand is concentrated in antibiotics.", insight)
	require.Equal(t, "Product Demand Analysis", gotTitle)
	require.Contains(t, gotData, "Amoxicillin 500mg: 1250")

	none := newTestService(t, nil)
	insight, err = none.Insight(context.Background(), "products")
	require.NoError(t, err)
	require.Empty(t, insight)
}
