package batches

import "time"

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

// Seed returns the default batches used when no snapshot exists.
func Seed() []Batch {
	return []Batch{
		{
			ID:                "B-101",
			BatchNumber:       "AX2023-01",
			ProductID:         "P1",
			ProductName:       "Amoxicillin 500mg",
			Quantity:          5000,
			Unit:              UnitBox,
			Status:            StatusReleased,
			ManufacturingDate: day("2023-11-01"),
			ExpiryDate:        day("2025-11-01"),
		},
		{
			ID:                "B-102",
			BatchNumber:       "PM2023-12",
			ProductID:         "P2",
			ProductName:       "Paracetamol 650mg",
			Quantity:          120,
			Unit:              UnitDrum,
			Status:            StatusInProduction,
			ManufacturingDate: day("2023-11-15"),
			ExpiryDate:        day("2026-11-15"),
		},
	}
}
