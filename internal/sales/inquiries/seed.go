package inquiries

import "time"

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

// Seed returns the default inquiries used when no snapshot exists.
func Seed() []Inquiry {
	return []Inquiry{
		{
			ID:           "INQ-001",
			CustomerID:   "C1",
			CustomerName: "St. Mary's General Hospital",
			Status:       StatusNew,
			Date:         day("2023-11-20"),
			Products:     []string{"Amoxicillin 500mg"},
			Notes:        "Immediate requirement for ICU",
			AssignedTo:   "John Doe",
			FollowUps: []FollowUp{
				{ID: "f1", Date: day("2023-11-20"), Type: FollowUpEmail, Summary: "Sent introductory catalog", Outcome: "Awaiting reply"},
			},
		},
		{
			ID:           "INQ-002",
			CustomerID:   "C2",
			CustomerName: "HealthFirst Pharmacy",
			Status:       StatusFollowUp,
			Date:         day("2023-11-21"),
			Products:     []string{"Metformin 500mg", "Paracetamol 650mg"},
			Notes:        "Looking for bulk pricing",
			AssignedTo:   "John Doe",
			FollowUps: []FollowUp{
				{ID: "f2", Date: day("2023-11-21"), Type: FollowUpCall, Summary: "Spoke with pharmacist regarding discounts", Outcome: "Requested official quote"},
			},
		},
	}
}
