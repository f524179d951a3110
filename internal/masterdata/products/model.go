package products

import "github.com/shopspring/decimal"

// Category groups catalog products by therapeutic class.
type Category string

const (
	CategoryAntibiotics Category = "Antibiotics"
	CategoryChronic     Category = "Chronic"
	CategoryOTC         Category = "OTC"
	CategorySpecialty   Category = "Specialty"
)

// Product is a catalog entry. Quotation lines copy UnitPrice at add-time;
// later price changes do not reprice existing documents.
type Product struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	DosageForm string          `json:"dosageForm"`
	Strength   string          `json:"strength"`
	PackSize   string          `json:"packSize"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Category   Category        `json:"category"`
	Stock      int             `json:"stock"`
}
