package reports

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pharmaflow/pharmaflow/internal/inventory"
	"github.com/pharmaflow/pharmaflow/internal/masterdata/products"
	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/sales/customers"
	"github.com/pharmaflow/pharmaflow/internal/sales/inquiries"
	"github.com/pharmaflow/pharmaflow/internal/sales/leads"
	"github.com/pharmaflow/pharmaflow/internal/sales/quotations"
)

// InsightFunc produces an AI analysis of a report's data. It may be nil when
// no assist backend is configured.
type InsightFunc func(ctx context.Context, reportTitle, data string) (string, error)

// trendPoint is one month of the sales-vs-target series. The series is a
// fixed demo dataset until order history lands.
type trendPoint struct {
	Month  string `json:"month"`
	Actual int    `json:"actual"`
	Target int    `json:"target"`
}

var salesTrend = []trendPoint{
	{Month: "Jul", Actual: 4000, Target: 4500},
	{Month: "Aug", Actual: 3000, Target: 3500},
	{Month: "Sep", Actual: 5000, Target: 4000},
	{Month: "Oct", Actual: 4500, Target: 4800},
	{Month: "Nov", Actual: 6000, Target: 5000},
}

// Dashboard is the tile payload for the landing screen.
type Dashboard struct {
	TotalCustomers     int             `json:"totalCustomers"`
	TotalProducts      int             `json:"totalProducts"`
	ConversionRate     decimal.Decimal `json:"conversionRate"`
	TotalLeadValue     decimal.Decimal `json:"totalLeadValue"`
	LowStockCount      int             `json:"lowStockCount"`
	InquiriesByStatus  []StatusCount   `json:"inquiriesByStatus"`
	QuotationsByStatus []StatusCount   `json:"quotationsByStatus"`
	LeadsByStatus      []StatusCount   `json:"leadsByStatus"`
}

// Service assembles dashboards and report exports from the entity store.
type Service struct {
	customerRepo  customers.Repository
	productRepo   products.Repository
	inquiryRepo   inquiries.Repository
	quotationRepo quotations.Repository
	leadRepo      leads.Repository
	inventoryRepo inventory.Repository
	insight       InsightFunc
}

// NewService constructs a Service. insight may be nil.
func NewService(
	customerRepo customers.Repository,
	productRepo products.Repository,
	inquiryRepo inquiries.Repository,
	quotationRepo quotations.Repository,
	leadRepo leads.Repository,
	inventoryRepo inventory.Repository,
	insight InsightFunc,
) *Service {
	return &Service{
		customerRepo:  customerRepo,
		productRepo:   productRepo,
		inquiryRepo:   inquiryRepo,
		quotationRepo: quotationRepo,
		leadRepo:      leadRepo,
		inventoryRepo: inventoryRepo,
		insight:       insight,
	}
}

// Dashboard computes the landing-screen tiles from the current snapshots.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	customerRecords, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	productRecords, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	inquiryRecords, err := s.inquiryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	quotationRecords, err := s.quotationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	leadRecords, err := s.leadRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	inventoryRecords, err := s.inventoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}

	return &Dashboard{
		TotalCustomers: len(customerRecords),
		TotalProducts:  len(productRecords),
		ConversionRate: ConversionRate(leadRecords),
		TotalLeadValue: TotalLeadValue(leadRecords),
		LowStockCount:  len(LowStockItems(inventoryRecords)),
		InquiriesByStatus: StatusDistribution(inquiryRecords, func(i inquiries.Inquiry) string {
			return string(i.Status)
		}),
		QuotationsByStatus: StatusDistribution(quotationRecords, func(q quotations.Quotation) string {
			return string(q.Status)
		}),
		LeadsByStatus: StatusDistribution(leadRecords, func(l leads.Lead) string {
			return string(l.Status)
		}),
	}, nil
}

// report titles per type, as shown on the report screen.
var reportTitles = map[string]string{
	"products":  "Product Demand Analysis",
	"customers": "Customer Segment Distribution",
	"sales":     "Monthly Sales vs Target",
}

// ReportData resolves the data lines for one report type.
func (s *Service) ReportData(ctx context.Context, reportType string) (title string, lines []string, err error) {
	title, ok := reportTitles[reportType]
	if !ok {
		return "", nil, fmt.Errorf("%w: unknown report type %q", httpx.ErrValidation, reportType)
	}
	switch reportType {
	case "products":
		records, err := s.productRepo.List(ctx)
		if err != nil {
			return "", nil, fmt.Errorf("list products: %w", err)
		}
		for _, p := range records {
			lines = append(lines, fmt.Sprintf("%s: %d", p.Name, p.Stock))
		}
	case "customers":
		records, err := s.customerRepo.List(ctx)
		if err != nil {
			return "", nil, fmt.Errorf("list customers: %w", err)
		}
		total := len(records)
		if total == 0 {
			total = 1
		}
		for _, bucket := range StatusDistribution(records, func(c customers.Customer) string {
			return string(c.Type)
		}) {
			lines = append(lines, fmt.Sprintf("%s: %d%%", bucket.Status, bucket.Count*100/total))
		}
	case "sales":
		for _, point := range salesTrend {
			lines = append(lines, fmt.Sprintf("%s: Actual $%d, Target $%d", point.Month, point.Actual, point.Target))
		}
	}
	return title, lines, nil
}

// Insight runs the AI analysis for one report type. Without a configured
// insight backend the report exports with the NoInsight placeholder.
func (s *Service) Insight(ctx context.Context, reportType string) (string, error) {
	title, lines, err := s.ReportData(ctx, reportType)
	if err != nil {
		return "", err
	}
	if s.insight == nil {
		return "", nil
	}
	return s.insight(ctx, title, strings.Join(lines, "\n"))
}
