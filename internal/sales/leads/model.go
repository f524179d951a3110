package leads

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status tracks a lead through the pipeline. WON and LOST are terminal:
// a closed lead accepts no further transitions.
type Status string

const (
	StatusProspect    Status = "PROSPECT"
	StatusQualified   Status = "QUALIFIED"
	StatusNegotiation Status = "NEGOTIATION"
	StatusWon         Status = "WON"
	StatusLost        Status = "LOST"
)

// Valid reports whether s is a declared status.
func (s Status) Valid() bool {
	switch s {
	case StatusProspect, StatusQualified, StatusNegotiation, StatusWon, StatusLost:
		return true
	}
	return false
}

// Terminal reports whether s is a closed outcome.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Lead is a prospective sales opportunity tracked independently of
// inquiries. OutcomeReason is set if and only if the lead is WON or LOST.
type Lead struct {
	ID             string          `json:"id"`
	CompanyName    string          `json:"companyName"`
	ContactPerson  string          `json:"contactPerson"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	EstimatedValue decimal.Decimal `json:"estimatedValue"`
	Status         Status          `json:"status"`
	Source         string          `json:"source"`
	OutcomeReason  string          `json:"outcomeReason,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}
