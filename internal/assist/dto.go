package assist

// FollowUpEmailRequest asks for a drafted follow-up email.
type FollowUpEmailRequest struct {
	CustomerName string `json:"customerName" validate:"required"`
	Context      string `json:"context" validate:"required"`
}

// SalesTrendsRequest asks for an analysis of inquiry trend data.
type SalesTrendsRequest struct {
	DataSummary string `json:"dataSummary" validate:"required"`
}

// ReportSummaryRequest asks for a report insight summary.
type ReportSummaryRequest struct {
	ReportType string `json:"reportType" validate:"required"`
	Data       string `json:"data" validate:"required"`
}

// GeneratedText is the assist response envelope.
type GeneratedText struct {
	Text string `json:"text"`
}
