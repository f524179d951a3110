package products

// CreateProductRequest adds a catalog entry.
type CreateProductRequest struct {
	Name       string `json:"name" validate:"required"`
	DosageForm string `json:"dosageForm" validate:"required"`
	Strength   string `json:"strength"`
	PackSize   string `json:"packSize"`
	UnitPrice  string `json:"unitPrice" validate:"required"`
	Category   string `json:"category" validate:"required,oneof=Antibiotics Chronic OTC Specialty"`
	Stock      int    `json:"stock" validate:"gte=0"`
}
