package quotations

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status tracks a quotation through its approval workflow. Approved is
// terminal: no operation downgrades an approved quotation.
type Status string

const (
	StatusDraft           Status = "Draft"
	StatusSent            Status = "Sent"
	StatusAccepted        Status = "Accepted"
	StatusExpired         Status = "Expired"
	StatusPendingApproval Status = "Pending Approval"
	StatusApproved        Status = "Approved"
)

// Valid reports whether s is a declared status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusAccepted, StatusExpired, StatusPendingApproval, StatusApproved:
		return true
	}
	return false
}

// InquiryDirect is the sentinel inquiry reference for quotations created
// without an originating inquiry.
const InquiryDirect = "Direct"

// Item is one priced line. UnitPrice is copied from the product at add-time
// and not live-linked. Discount is a recorded percentage that is NOT applied
// to Total; whether it should be is an open product decision, so the field
// stays informational: Total is always Quantity × UnitPrice.
type Item struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
}

// Comment is a review note attached during approval.
type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// Attachment is a supporting document reference.
type Attachment struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Size       string `json:"size"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	UploadedBy string `json:"uploadedBy"`
	UploadedAt string `json:"uploadedAt"`
}

// Quotation is a priced, itemized offer document. CustomerName is a
// creation-time snapshot. TotalAmount always equals the sum of item totals.
type Quotation struct {
	ID           string          `json:"id"`
	InquiryID    string          `json:"inquiryId"`
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	Date         time.Time       `json:"date"`
	ExpiryDate   time.Time       `json:"expiryDate"`
	Items        []Item          `json:"items"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Status       Status          `json:"status"`
	Comments     []Comment       `json:"comments,omitempty"`
	Attachments  []Attachment    `json:"attachments,omitempty"`
}
