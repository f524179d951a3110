package quotations

import (
	"time"

	"github.com/shopspring/decimal"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

// Seed returns the default quotations used when no snapshot exists.
// QUO-23-001 predates the inert-discount rule and keeps its shipped total.
func Seed() []Quotation {
	return []Quotation{
		{
			ID:           "QUO-23-001",
			InquiryID:    "INQ-001",
			CustomerID:   "C1",
			CustomerName: "St. Mary's General Hospital",
			Date:         day("2023-11-22"),
			ExpiryDate:   day("2023-12-22"),
			Items: []Item{
				{
					ProductID:   "P1",
					ProductName: "Amoxicillin 500mg",
					Quantity:    50,
					UnitPrice:   decimal.RequireFromString("12.50"),
					Discount:    decimal.NewFromInt(5),
					Total:       decimal.RequireFromString("593.75"),
				},
			},
			TotalAmount: decimal.RequireFromString("593.75"),
			Status:      StatusPendingApproval,
			Comments: []Comment{
				{ID: "cm-1", Author: "John Doe", Text: "Sent for manager review regarding high discount.", Timestamp: "2023-11-22 10:00"},
			},
			Attachments: []Attachment{
				{ID: "at-1", Name: "Special_Pricing_Justification.pdf", Size: "1.2 MB", Type: "application/pdf", Status: "Pending Review", UploadedBy: "John Doe", UploadedAt: "2023-11-22 10:05"},
			},
		},
	}
}
