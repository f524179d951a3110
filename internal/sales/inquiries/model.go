package inquiries

import "time"

// Status tracks an inquiry through its follow-up/conversion lifecycle.
type Status string

const (
	StatusNew        Status = "NEW"
	StatusInProgress Status = "IN_PROGRESS"
	StatusQuoted     Status = "QUOTED"
	StatusFollowUp   Status = "FOLLOW_UP"
	StatusConverted  Status = "CONVERTED"
	StatusLost       Status = "LOST"
)

// Valid reports whether s is a declared status.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusQuoted, StatusFollowUp, StatusConverted, StatusLost:
		return true
	}
	return false
}

// FollowUpType classifies a logged interaction.
type FollowUpType string

const (
	FollowUpEmail   FollowUpType = "Email"
	FollowUpCall    FollowUpType = "Call"
	FollowUpMeeting FollowUpType = "Meeting"
	FollowUpNote    FollowUpType = "Note"
)

// FollowUp is an immutable logged interaction. Entries are append-only and
// keep insertion order, which is chronological by construction.
type FollowUp struct {
	ID      string       `json:"id"`
	Date    time.Time    `json:"date"`
	Type    FollowUpType `json:"type"`
	Summary string       `json:"summary"`
	Outcome string       `json:"outcome"`
}

// Inquiry is a logged customer request for one or more products.
// CustomerName is a snapshot taken at creation; it is not re-synced when the
// customer record changes. Products are free-text names, not catalog ids:
// an inquiry captures customer intent before catalog matching.
type Inquiry struct {
	ID           string     `json:"id"`
	CustomerID   string     `json:"customerId"`
	CustomerName string     `json:"customerName"`
	Status       Status     `json:"status"`
	Date         time.Time  `json:"date"`
	Products     []string   `json:"products"`
	Notes        string     `json:"notes"`
	AssignedTo   string     `json:"assignedTo"`
	FollowUps    []FollowUp `json:"followUps"`
}

// QuoteDraftPrefill is the immutable partial snapshot handed to the
// quotation builder by the convert-to-quote action. Converting does not
// change the inquiry's status; marking it CONVERTED remains a separate,
// explicit step.
type QuoteDraftPrefill struct {
	InquiryID    string `json:"inquiryId"`
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
}
