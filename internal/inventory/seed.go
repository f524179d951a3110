package inventory

// Seed returns the default inventory used when no snapshot exists.
func Seed() []Item {
	return []Item{
		{ID: "RM-001", Name: "Amoxicillin API", Type: TypeRawMaterial, Quantity: 250, Unit: "KG", MinThreshold: 50},
		{ID: "RM-002", Name: "Paracetamol Powder", Type: TypeRawMaterial, Quantity: 500, Unit: "KG", MinThreshold: 100},
		{ID: "PK-001", Name: "Standard Outer Box", Type: TypePackaging, Quantity: 1200, Unit: "BOX", MinThreshold: 200},
		{ID: "PK-002", Name: "Bulk Industrial Drum", Type: TypePackaging, Quantity: 45, Unit: "DRUM", MinThreshold: 10},
		{ID: "PK-003", Name: "Retail Foil Packet", Type: TypePackaging, Quantity: 15000, Unit: "PACKET", MinThreshold: 1000},
	}
}
