package products

import "github.com/shopspring/decimal"

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// Seed returns the default catalog used when no snapshot exists.
func Seed() []Product {
	return []Product{
		{ID: "P1", Name: "Amoxicillin 500mg", DosageForm: "Capsule", Strength: "500mg", PackSize: "10x10", UnitPrice: price("12.50"), Category: CategoryAntibiotics, Stock: 1250},
		{ID: "P2", Name: "Paracetamol 650mg", DosageForm: "Tablet", Strength: "650mg", PackSize: "10x10", UnitPrice: price("5.20"), Category: CategoryOTC, Stock: 5000},
		{ID: "P3", Name: "Omeprazole 20mg", DosageForm: "Delayed-Release", Strength: "20mg", PackSize: "14s", UnitPrice: price("8.75"), Category: CategoryChronic, Stock: 840},
		{ID: "P4", Name: "Metformin 500mg", DosageForm: "Tablet", Strength: "500mg", PackSize: "30s", UnitPrice: price("4.50"), Category: CategoryChronic, Stock: 2100},
		{ID: "P5", Name: "Azithromycin 250mg", DosageForm: "Tablet", Strength: "250mg", PackSize: "6s", UnitPrice: price("15.00"), Category: CategoryAntibiotics, Stock: 450},
		{ID: "P6", Name: "Insulin Glargine", DosageForm: "Injection", Strength: "100U/ml", PackSize: "3ml Pen", UnitPrice: price("45.00"), Category: CategorySpecialty, Stock: 120},
	}
}
