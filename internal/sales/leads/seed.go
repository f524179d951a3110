package leads

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

// Seed returns the default leads used when no snapshot exists.
func Seed() []Lead {
	return []Lead{
		{
			ID:             "LD-001",
			CompanyName:    "City Children's Clinic",
			ContactPerson:  "Dr. Liam Neeson",
			Email:          "liam@citykids.med",
			Phone:          "555-9001",
			EstimatedValue: decimal.NewFromInt(12000),
			Status:         StatusProspect,
			Source:         "Website",
			CreatedAt:      day("2023-11-15"),
		},
		{
			ID:             "LD-002",
			CompanyName:    "MediTrust Pharmacies",
			ContactPerson:  "Susan Bones",
			Email:          "s.bones@meditrust.com",
			Phone:          "555-9002",
			EstimatedValue: decimal.NewFromInt(45000),
			Status:         StatusNegotiation,
			Source:         "Referral",
			CreatedAt:      day("2023-11-18"),
		},
		{
			ID:             "LD-003",
			CompanyName:    "North Star Hospital",
			ContactPerson:  "James Gordon",
			Email:          "gordon@nstar.org",
			Phone:          "555-9003",
			EstimatedValue: decimal.NewFromInt(85000),
			Status:         StatusWon,
			Source:         "Trade Show",
			OutcomeReason:  "Strategic partnership discount",
			CreatedAt:      day("2023-11-10"),
		},
	}
}
